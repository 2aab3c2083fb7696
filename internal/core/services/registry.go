package services

import (
	"fmt"
	"sort"
	"strings"

	"github.com/papyrus-labs/papyrus-cli/internal/core/domain"
	"github.com/papyrus-labs/papyrus-cli/internal/core/ports/driven"
)

// Ensure ConverterRegistry implements the interface.
var _ driven.ConverterRegistry = (*ConverterRegistry)(nil)

// ConverterRegistry maps (input, output) format pairs to converters.
// Registration happens once in the composition root before any request
// is served; afterwards the map is read-only and safe for concurrent
// lookups from parallel jobs.
type ConverterRegistry struct {
	converters map[[2]string]driven.Converter
}

// NewConverterRegistry creates an empty registry.
func NewConverterRegistry() *ConverterRegistry {
	return &ConverterRegistry{
		converters: make(map[[2]string]driven.Converter),
	}
}

// Register adds a converter. Later registrations for the same pair win.
func (r *ConverterRegistry) Register(c driven.Converter) {
	in, out := c.Formats()
	r.converters[[2]string{strings.ToLower(in), strings.ToLower(out)}] = c
}

// Resolve returns the converter for the pair.
func (r *ConverterRegistry) Resolve(in, out string) (driven.Converter, error) {
	c, ok := r.converters[[2]string{strings.ToLower(in), strings.ToLower(out)}]
	if !ok {
		return nil, fmt.Errorf("%w: %s -> %s", domain.ErrUnsupportedConversion, in, out)
	}
	return c, nil
}

// Pairs returns all registered format pairs, sorted.
func (r *ConverterRegistry) Pairs() [][2]string {
	pairs := make([][2]string, 0, len(r.converters))
	for pair := range r.converters {
		pairs = append(pairs, pair)
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i][0] != pairs[j][0] {
			return pairs[i][0] < pairs[j][0]
		}
		return pairs[i][1] < pairs[j][1]
	})
	return pairs
}
