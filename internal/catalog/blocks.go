package catalog

import (
	"strings"

	"github.com/alexanderramin/examseat/internal/domain"
)

// BlockRule maps a room id prefix to the block it belongs to.
type BlockRule struct {
	Prefix string
	Block  domain.Block
}

// BlockRules is the fixed classification table. Rules are tried in order and
// the first matching prefix wins; ids matching no rule fall into DefaultBlock.
var BlockRules = []BlockRule{
	{Prefix: "B-", Block: domain.BlockB2},
	{Prefix: "6", Block: domain.BlockB1},
	{Prefix: "8", Block: domain.BlockB1},
	{Prefix: "9", Block: domain.BlockB1},
	{Prefix: "10", Block: domain.BlockB1},
	{Prefix: "LT", Block: domain.BlockB1},
	{Prefix: "R", Block: domain.BlockB1},
}

// DefaultBlock is assigned to room ids that match no rule.
const DefaultBlock = domain.BlockB1

// ClassifyBlock returns the block of a room id.
func ClassifyBlock(roomID string) domain.Block {
	id := NormalizeID(roomID)
	for _, rule := range BlockRules {
		if strings.HasPrefix(id, rule.Prefix) {
			return rule.Block
		}
	}
	return DefaultBlock
}
