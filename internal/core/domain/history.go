package domain

import "time"

// JobRecord is the persisted outcome of a conversion job.
type JobRecord struct {
	// ID is the job ID.
	ID string

	// InputPath is the source file that was converted.
	InputPath string

	// InputFormat and OutputFormat are the job's format tags.
	InputFormat  string
	OutputFormat string

	// PartCount is the number of output parts written. Zero on failure.
	PartCount int

	// OutputDir is the directory parts were written to.
	OutputDir string

	// Error holds the failure message, empty on success.
	Error string

	// StartedAt and FinishedAt bound the job's execution.
	StartedAt  time.Time
	FinishedAt time.Time
}

// Succeeded reports whether the job completed without error.
func (r JobRecord) Succeeded() bool {
	return r.Error == ""
}
