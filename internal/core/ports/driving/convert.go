package driving

import (
	"context"

	"github.com/papyrus-labs/papyrus-cli/internal/core/domain"
)

// ConvertResult summarises a completed conversion.
type ConvertResult struct {
	// Job is the job that ran.
	Job domain.ConversionJob

	// Paths are the written output files in part order.
	Paths []string

	// PartCount is the number of parts written.
	PartCount int
}

// ConvertService runs conversion jobs end to end.
type ConvertService interface {
	// NewJob builds a job from the given options, filling defaults from
	// the persisted settings where options are unset.
	NewJob(inputPath string, opts JobOptions) domain.ConversionJob

	// Run executes the job: resolve converter, convert, write output,
	// record history. A job fully succeeds or leaves no output files.
	Run(ctx context.Context, job domain.ConversionJob) (*ConvertResult, error)

	// Conversions returns the registered (input, output) format pairs.
	Conversions() [][2]string
}

// JobOptions carries per-invocation overrides for a job.
// Zero values fall back to persisted settings, then built-in defaults.
type JobOptions struct {
	InputFormat  string
	OutputFormat string
	Locale       string
	TableFormat  string
	ChunkSize    int
	// ChunkSizeSet distinguishes an explicit --chunk-size 0 from the flag
	// being absent.
	ChunkSizeSet bool
	OutputDir    string
}
