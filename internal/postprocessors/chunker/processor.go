// Package chunker splits rendered output into bounded-size parts.
package chunker

import (
	"fmt"
	"strings"

	"github.com/papyrus-labs/papyrus-cli/internal/core/domain"
	"github.com/papyrus-labs/papyrus-cli/internal/core/ports/driven"
)

// Ensure Splitter implements the interface.
var _ driven.TextSplitter = (*Splitter)(nil)

// Splitter splits text at line boundaries so each part stays within a
// byte limit. A line longer than the limit becomes its own oversized
// part rather than being cut mid-line.
type Splitter struct{}

// New creates a new line-boundary splitter.
func New() *Splitter {
	return &Splitter{}
}

// Split returns the ordered parts for content. With no configured limit
// the whole content is a single part. Concatenating the returned parts
// in order reproduces content byte for byte.
func (s *Splitter) Split(content string, limit int, limitSet bool) ([]domain.OutputPart, error) {
	if !limitSet {
		return []domain.OutputPart{{Index: 0, Content: content}}, nil
	}
	if limit <= 0 {
		return nil, fmt.Errorf("%w: %d", domain.ErrInvalidChunkSize, limit)
	}

	var parts []domain.OutputPart
	var current strings.Builder

	flush := func() {
		if current.Len() == 0 {
			return
		}
		parts = append(parts, domain.OutputPart{Index: len(parts), Content: current.String()})
		current.Reset()
	}

	for len(content) > 0 {
		line := content
		if i := strings.IndexByte(content, '\n'); i >= 0 {
			line = content[:i+1]
		}
		content = content[len(line):]

		if current.Len() > 0 && current.Len()+len(line) > limit {
			flush()
		}
		// An oversized single line forms its own part; documented
		// exception, not an error.
		current.WriteString(line)
		if current.Len() >= limit {
			flush()
		}
	}
	flush()

	if parts == nil {
		parts = []domain.OutputPart{{Index: 0, Content: ""}}
	}
	return parts, nil
}
