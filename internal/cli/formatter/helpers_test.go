package formatter

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestHumanTimestamp(t *testing.T) {
	now := time.Date(2025, 11, 3, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		input time.Time
		want  string
	}{
		{"now", now, "Just now"},
		{"minutes", now.Add(-5 * time.Minute), "5m ago"},
		{"hours", now.Add(-3 * time.Hour), "3h ago"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HumanTimestamp(tt.input, now))
		})
	}

	old := now.AddDate(0, -2, 0)
	assert.Equal(t, old.Local().Format("Jan 2, 2006 15:04"), HumanTimestamp(old, now))
}

func TestTruncID(t *testing.T) {
	assert.Contains(t, TruncID("0123456789abcdef"), "01234567")
	assert.NotContains(t, TruncID("0123456789abcdef"), "89")
	assert.Contains(t, TruncID("abc"), "abc")
}

func TestPlural(t *testing.T) {
	assert.Equal(t, "1 room", Plural(1, "room"))
	assert.Equal(t, "0 rooms", Plural(0, "room"))
	assert.Equal(t, "3 students", Plural(3, "student"))
}

func TestCount(t *testing.T) {
	assert.Contains(t, Count(0), "-")
	assert.Contains(t, Count(12), "12")
}

func TestRenderBox(t *testing.T) {
	out := RenderBox("rooms", "body text")
	assert.Contains(t, out, "ROOMS")
	assert.Contains(t, out, "body text")
	assert.True(t, strings.Contains(out, "╭"), "expected rounded border")
}

func TestTable_AlignsColumns(t *testing.T) {
	out := Table{
		Headers: []string{"ROOM", "SEATS"},
		Rows: [][]string{
			{"6101", "4"},
			{"LT1", "120"},
		},
		Align: []Align{AlignLeft, AlignRight},
	}.Render()

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 4)
	assert.True(t, strings.HasSuffix(lines[2], "    4"), "right-aligned cell: %q", lines[2])
	assert.True(t, strings.HasPrefix(lines[3], "LT1 "), "left-aligned cell: %q", lines[3])
}

func TestRenderTable_Empty(t *testing.T) {
	assert.Empty(t, RenderTable(nil, nil))
}
