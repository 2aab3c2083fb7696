package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestBlockKind_String tests the block kind names
func TestBlockKind_String(t *testing.T) {
	assert.Equal(t, "paragraph", BlockParagraph.String())
	assert.Equal(t, "table", BlockTable.String())
	assert.Equal(t, "header", BlockHeader.String())
	assert.Equal(t, "footer", BlockFooter.String())
	assert.Equal(t, "unknown", BlockKind(99).String())
}

// TestDocument_Tables tests table index lookup
func TestDocument_Tables(t *testing.T) {
	doc := Document{
		Blocks: []Block{
			{Kind: BlockParagraph, Text: "intro"},
			{Kind: BlockTable, Rows: [][]string{{"a", "b"}}},
			{Kind: BlockParagraph, Text: "middle"},
			{Kind: BlockTable, Rows: [][]string{{"c"}}},
			{Kind: BlockFooter, Text: "end"},
		},
	}

	assert.Equal(t, []int{1, 3}, doc.Tables())
}

// TestDocument_Tables_Empty tests a document with no tables
func TestDocument_Tables_Empty(t *testing.T) {
	doc := Document{Blocks: []Block{{Kind: BlockParagraph, Text: "only text"}}}

	assert.Nil(t, doc.Tables())
}
