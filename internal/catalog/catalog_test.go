package catalog

import (
	"testing"

	"github.com/alexanderramin/examseat/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEffectiveCapacity(t *testing.T) {
	tests := []struct {
		name   string
		raw    int
		buffer int
		mode   domain.Mode
		want   int
	}{
		{"dense with buffer", 40, 5, domain.ModeDense, 35},
		{"sparse halves after buffer", 40, 5, domain.ModeSparse, 17},
		{"dense no buffer", 20, 0, domain.ModeDense, 20},
		{"sparse odd rounds down", 21, 0, domain.ModeSparse, 10},
		{"buffer exceeds capacity", 4, 10, domain.ModeDense, 0},
		{"buffer exceeds capacity sparse", 4, 10, domain.ModeSparse, 0},
		{"zero capacity", 0, 0, domain.ModeDense, 0},
		{"sparse one seat", 1, 0, domain.ModeSparse, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EffectiveCapacity(tt.raw, tt.buffer, tt.mode))
		})
	}
}

func TestClassifyBlock(t *testing.T) {
	tests := []struct {
		id   string
		want domain.Block
	}{
		{"B-12", domain.BlockB2},
		{" B-201 ", domain.BlockB2},
		{"6102", domain.BlockB1},
		{"LT3", domain.BlockB1},
		{"R104", domain.BlockB1},
		{"10502", domain.BlockB1},
		{"XYZ", domain.BlockB1},
		{"B12", domain.BlockB1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ClassifyBlock(tt.id), tt.id)
	}
}

func TestBlockRules_DefaultIsB1(t *testing.T) {
	assert.Equal(t, domain.BlockB1, DefaultBlock)
	require.NotEmpty(t, BlockRules)
	assert.Equal(t, "B-", BlockRules[0].Prefix)
}

func TestSortKey(t *testing.T) {
	tests := []struct {
		id   string
		want int
	}{
		{"6102", 6102},
		{"B-12", 12},
		{"LT3", 3},
		{"R104A2", 104},
		{"XYZ", 0},
		{"", 0},
		{"Hall-007", 7},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SortKey(tt.id), tt.id)
	}
}

func TestNew_DerivesFieldsInInputOrder(t *testing.T) {
	c, err := New([]domain.RoomInput{
		{ID: " 6102 ", Capacity: 40},
		{ID: "B-12", Capacity: 30},
	}, 5, domain.ModeSparse)
	require.NoError(t, err)

	rooms := c.Rooms()
	require.Len(t, rooms, 2)
	assert.Equal(t, domain.Room{ID: "6102", Capacity: 40, EffectiveCapacity: 17, Block: domain.BlockB1, SortNumber: 6102, Index: 0}, rooms[0])
	assert.Equal(t, domain.Room{ID: "B-12", Capacity: 30, EffectiveCapacity: 12, Block: domain.BlockB2, SortNumber: 12, Index: 1}, rooms[1])
	assert.Equal(t, 29, c.TotalEffectiveCapacity())
	assert.Equal(t, 2, c.Len())
	assert.Equal(t, 5, c.Buffer())
	assert.Equal(t, domain.ModeSparse, c.Mode())

	got, ok := c.Get("B-12 ")
	require.True(t, ok)
	assert.Equal(t, "B-12", got.ID)
	_, ok = c.Get("missing")
	assert.False(t, ok)
}

func TestNew_RejectsInvalidRooms(t *testing.T) {
	_, err := New([]domain.RoomInput{{ID: "101", Capacity: 10}, {ID: " 101", Capacity: 5}}, 0, domain.ModeDense)
	assert.ErrorContains(t, err, "duplicate")

	_, err = New([]domain.RoomInput{{ID: "101", Capacity: -1}}, 0, domain.ModeDense)
	assert.ErrorContains(t, err, "non-negative")

	_, err = New([]domain.RoomInput{{ID: "  ", Capacity: 1}}, 0, domain.ModeDense)
	assert.ErrorContains(t, err, "id is required")
}
