package domain

// BlockKind identifies the structural role of a Block.
type BlockKind int

const (
	// BlockParagraph is a body paragraph.
	BlockParagraph BlockKind = iota
	// BlockTable is a grid of cell strings.
	BlockTable
	// BlockHeader is text from a distinct header definition.
	BlockHeader
	// BlockFooter is text from a distinct footer definition.
	BlockFooter
)

// String returns the block kind name.
func (k BlockKind) String() string {
	switch k {
	case BlockParagraph:
		return "paragraph"
	case BlockTable:
		return "table"
	case BlockHeader:
		return "header"
	case BlockFooter:
		return "footer"
	default:
		return "unknown"
	}
}

// Block is one structural unit of document content.
// Text is set for paragraph, header and footer blocks; Rows for tables.
// Blocks are produced in document order and are immutable once constructed,
// except for the table normalisation pass which replaces jagged Rows with a
// rectangular grid.
type Block struct {
	// Kind identifies the block variant.
	Kind BlockKind

	// Text is the block content for non-table blocks.
	Text string

	// StyleHint is the source style identifier, if any (e.g. "Heading1").
	// Purely informational; rendering never depends on it.
	StyleHint string

	// Rows holds table cell text, outer slice ordered by row.
	Rows [][]string
}

// Document is the intermediate representation produced by a reader.
// Blocks preserve original document order.
type Document struct {
	// SourcePath is the file the document was read from.
	SourcePath string

	// Format is the input format tag (e.g. "docx").
	Format string

	// Title is the document title from container metadata, if present.
	Title string

	// Blocks is the ordered block sequence.
	Blocks []Block
}

// Tables returns the indices of all table blocks, in order.
func (d *Document) Tables() []int {
	var idx []int
	for i := range d.Blocks {
		if d.Blocks[i].Kind == BlockTable {
			idx = append(idx, i)
		}
	}
	return idx
}
