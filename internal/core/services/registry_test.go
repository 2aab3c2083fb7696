package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/papyrus-labs/papyrus-cli/internal/core/domain"
)

// fakeConverter is a minimal converter for registry and service tests.
type fakeConverter struct {
	in, out string
	parts   []domain.OutputPart
	err     error
	calls   int
}

func (f *fakeConverter) Formats() (string, string) {
	return f.in, f.out
}

func (f *fakeConverter) Convert(_ context.Context, _ domain.ConversionJob) ([]domain.OutputPart, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.parts, nil
}

func TestConverterRegistry_Resolve(t *testing.T) {
	r := NewConverterRegistry()
	c := &fakeConverter{in: "docx", out: "txt"}
	r.Register(c)

	resolved, err := r.Resolve("docx", "txt")

	require.NoError(t, err)
	assert.Same(t, c, resolved)
}

func TestConverterRegistry_Resolve_CaseInsensitive(t *testing.T) {
	r := NewConverterRegistry()
	r.Register(&fakeConverter{in: "docx", out: "txt"})

	_, err := r.Resolve("DOCX", "TXT")

	assert.NoError(t, err)
}

func TestConverterRegistry_Resolve_Unregistered(t *testing.T) {
	r := NewConverterRegistry()
	r.Register(&fakeConverter{in: "docx", out: "txt"})

	resolved, err := r.Resolve("pdf", "txt")

	assert.Nil(t, resolved)
	assert.ErrorIs(t, err, domain.ErrUnsupportedConversion)
}

func TestConverterRegistry_LaterRegistrationWins(t *testing.T) {
	r := NewConverterRegistry()
	first := &fakeConverter{in: "docx", out: "txt"}
	second := &fakeConverter{in: "docx", out: "txt"}
	r.Register(first)
	r.Register(second)

	resolved, err := r.Resolve("docx", "txt")

	require.NoError(t, err)
	assert.Same(t, second, resolved)
}

func TestConverterRegistry_Pairs_Sorted(t *testing.T) {
	r := NewConverterRegistry()
	r.Register(&fakeConverter{in: "odt", out: "txt"})
	r.Register(&fakeConverter{in: "docx", out: "txt"})
	r.Register(&fakeConverter{in: "docx", out: "md"})

	pairs := r.Pairs()

	assert.Equal(t, [][2]string{
		{"docx", "md"},
		{"docx", "txt"},
		{"odt", "txt"},
	}, pairs)
}

func TestConverterRegistry_Pairs_Empty(t *testing.T) {
	assert.Empty(t, NewConverterRegistry().Pairs())
}
