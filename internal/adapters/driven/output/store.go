// Package output writes conversion results to the filesystem.
//
// Parts are staged in a temporary directory next to the destination and
// moved into place only after every part has been written, so a failed
// conversion never leaves partial files behind.
package output

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/papyrus-labs/papyrus-cli/internal/core/domain"
	"github.com/papyrus-labs/papyrus-cli/internal/core/ports/driven"
	"github.com/papyrus-labs/papyrus-cli/internal/logger"
)

// Ensure Store implements the interface.
var _ driven.OutputStore = (*Store)(nil)

// Store is a filesystem implementation of driven.OutputStore.
type Store struct{}

// NewStore creates a new filesystem output store.
func NewStore() *Store {
	return &Store{}
}

// WriteParts writes all parts for the job and returns the final paths in
// part order. A single part keeps the job's base filename; multiple parts
// get a zero-padded part-index suffix before the extension.
func (s *Store) WriteParts(ctx context.Context, job domain.ConversionJob, parts []domain.OutputPart) ([]string, error) {
	if len(parts) == 0 {
		return nil, fmt.Errorf("%w: no parts to write", domain.ErrOutputWrite)
	}

	destDir := job.OutputDir
	if destDir == "" {
		destDir = filepath.Dir(job.InputPath)
	}

	if err := os.MkdirAll(destDir, 0755); err != nil {
		return nil, fmt.Errorf("%w: creating output directory: %v", domain.ErrOutputWrite, err)
	}

	// Stage in a temp dir on the same filesystem so the final rename is atomic.
	stageDir, err := os.MkdirTemp(destDir, ".papyrus-*")
	if err != nil {
		return nil, fmt.Errorf("%w: creating staging directory: %v", domain.ErrOutputWrite, err)
	}
	defer os.RemoveAll(stageDir)

	names := partNames(job, len(parts))

	for i, part := range parts {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrOutputWrite, err)
		}
		stagePath := filepath.Join(stageDir, names[i])
		if err := os.WriteFile(stagePath, []byte(part.Content), 0644); err != nil {
			return nil, fmt.Errorf("%w: writing %s: %v", domain.ErrOutputWrite, names[i], err)
		}
	}

	// All parts staged; commit by renaming into the destination.
	paths := make([]string, 0, len(names))
	for i, name := range names {
		destPath := filepath.Join(destDir, name)
		if err := os.Rename(filepath.Join(stageDir, name), destPath); err != nil {
			// Roll back parts committed so far.
			for _, committed := range paths {
				os.Remove(committed)
			}
			return nil, fmt.Errorf("%w: committing %s: %v", domain.ErrOutputWrite, name, err)
		}
		paths = append(paths, destPath)
		logger.Debug("wrote part %d/%d: %s", i+1, len(names), destPath)
	}

	return paths, nil
}

// partNames returns the output filenames for a job with n parts.
func partNames(job domain.ConversionJob, n int) []string {
	base := job.OutputBase()
	if n == 1 {
		return []string{base}
	}

	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)

	names := make([]string, n)
	for i := range names {
		names[i] = fmt.Sprintf("%s_part%03d%s", stem, i+1, ext)
	}
	return names
}
