package domain

import (
	"path/filepath"
	"strings"
)

// TableFormat selects how table rows are rendered.
type TableFormat string

const (
	// TableTSV joins cells with tab characters.
	TableTSV TableFormat = "tsv"
	// TablePipe joins cells with " | " separators.
	TablePipe TableFormat = "pipe"
)

// IsValid reports whether the table format is a known value.
func (f TableFormat) IsValid() bool {
	return f == TableTSV || f == TablePipe
}

// String returns the format tag.
func (f TableFormat) String() string {
	return string(f)
}

// ConversionJob describes a single conversion invocation.
// A job is created per invocation, is immutable, and is never shared
// across concurrently running conversions.
type ConversionJob struct {
	// ID uniquely identifies the job.
	ID string

	// InputPath is the source file.
	InputPath string

	// InputFormat and OutputFormat are the format tags used for
	// converter registry lookup (e.g. "docx", "txt").
	InputFormat  string
	OutputFormat string

	// Locale selects the fixed UI/label strings (BCP 47 tag).
	// It never affects the document's own text content.
	Locale string

	// TableFormat selects the table rendering (tsv or pipe).
	TableFormat TableFormat

	// ChunkSize is the maximum output part size in bytes.
	// Zero means unlimited (a single part). Negative values and an
	// explicitly configured zero are rejected by the chunker.
	ChunkSize int

	// ChunkLimitSet records whether a chunk limit was explicitly
	// configured, so a configured zero can be distinguished from
	// "no limit requested".
	ChunkLimitSet bool

	// OutputDir is the directory output parts are written to.
	OutputDir string
}

// OutputBase returns the base output filename for the job: the input
// file's stem plus the output format extension.
func (j ConversionJob) OutputBase() string {
	stem := strings.TrimSuffix(filepath.Base(j.InputPath), filepath.Ext(j.InputPath))
	return stem + "." + j.OutputFormat
}

// FormatPair returns the registry lookup key for the job.
func (j ConversionJob) FormatPair() (string, string) {
	return strings.ToLower(j.InputFormat), strings.ToLower(j.OutputFormat)
}
