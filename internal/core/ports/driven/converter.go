package driven

import (
	"context"

	"github.com/papyrus-labs/papyrus-cli/internal/core/domain"
)

// Converter turns one input format into one output format.
// Implementations compose a reader, block processors, a renderer and a
// splitter into a single pipeline.
type Converter interface {
	// Formats returns the (input, output) format pair this converter serves.
	Formats() (in string, out string)

	// Convert runs the full pipeline for one job and returns the ordered
	// output parts. Parts are not yet written to disk.
	Convert(ctx context.Context, job domain.ConversionJob) ([]domain.OutputPart, error)
}

// ConverterRegistry resolves format pairs to converter implementations.
// Registration happens once at startup; lookups are safe for concurrent use
// after that.
type ConverterRegistry interface {
	// Register adds a converter. Later registrations for the same pair win.
	Register(c Converter)

	// Resolve returns the converter for the pair, or
	// domain.ErrUnsupportedConversion when none is registered.
	Resolve(in, out string) (Converter, error)

	// Pairs returns all registered (input, output) pairs, sorted.
	Pairs() [][2]string
}
