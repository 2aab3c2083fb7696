package output

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/papyrus-labs/papyrus-cli/internal/core/domain"
)

func testJob(outputDir string) domain.ConversionJob {
	return domain.ConversionJob{
		ID:           "job-1",
		InputPath:    "/docs/report.docx",
		InputFormat:  "docx",
		OutputFormat: "txt",
		OutputDir:    outputDir,
	}
}

func TestWriteParts_SinglePartKeepsBaseName(t *testing.T) {
	dir := t.TempDir()
	store := NewStore()

	paths, err := store.WriteParts(context.Background(), testJob(dir), []domain.OutputPart{
		{Index: 0, Content: "hello\n"},
	})

	require.NoError(t, err)
	require.Len(t, paths, 1)
	assert.Equal(t, filepath.Join(dir, "report.txt"), paths[0])

	data, err := os.ReadFile(paths[0])
	require.NoError(t, err)
	assert.Equal(t, "hello\n", string(data))
}

func TestWriteParts_MultiplePartsGetSuffix(t *testing.T) {
	dir := t.TempDir()
	store := NewStore()

	paths, err := store.WriteParts(context.Background(), testJob(dir), []domain.OutputPart{
		{Index: 0, Content: "one\n"},
		{Index: 1, Content: "two\n"},
		{Index: 2, Content: "three\n"},
	})

	require.NoError(t, err)
	require.Len(t, paths, 3)
	assert.Equal(t, filepath.Join(dir, "report_part001.txt"), paths[0])
	assert.Equal(t, filepath.Join(dir, "report_part002.txt"), paths[1])
	assert.Equal(t, filepath.Join(dir, "report_part003.txt"), paths[2])

	data, err := os.ReadFile(paths[1])
	require.NoError(t, err)
	assert.Equal(t, "two\n", string(data))
}

func TestWriteParts_CreatesOutputDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "out")
	store := NewStore()

	paths, err := store.WriteParts(context.Background(), testJob(dir), []domain.OutputPart{
		{Content: "x"},
	})

	require.NoError(t, err)
	assert.FileExists(t, paths[0])
}

func TestWriteParts_EmptyParts(t *testing.T) {
	store := NewStore()

	paths, err := store.WriteParts(context.Background(), testJob(t.TempDir()), nil)

	assert.Nil(t, paths)
	assert.ErrorIs(t, err, domain.ErrOutputWrite)
}

func TestWriteParts_NoStagingLeftovers(t *testing.T) {
	dir := t.TempDir()
	store := NewStore()

	_, err := store.WriteParts(context.Background(), testJob(dir), []domain.OutputPart{
		{Content: "a"}, {Content: "b"},
	})
	require.NoError(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	for _, e := range entries {
		assert.False(t, e.IsDir(), "staging directory left behind: %s", e.Name())
	}
	assert.Len(t, entries, 2)
}

func TestWriteParts_CancelledContext(t *testing.T) {
	dir := t.TempDir()
	store := NewStore()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	paths, err := store.WriteParts(ctx, testJob(dir), []domain.OutputPart{{Content: "x"}})

	assert.Nil(t, paths)
	assert.ErrorIs(t, err, domain.ErrOutputWrite)

	// No partial files at the destination
	entries, readErr := os.ReadDir(dir)
	require.NoError(t, readErr)
	assert.Empty(t, entries)
}

func TestWriteParts_OverwritesExisting(t *testing.T) {
	dir := t.TempDir()
	existing := filepath.Join(dir, "report.txt")
	require.NoError(t, os.WriteFile(existing, []byte("stale"), 0644))
	store := NewStore()

	paths, err := store.WriteParts(context.Background(), testJob(dir), []domain.OutputPart{
		{Content: "fresh"},
	})

	require.NoError(t, err)
	data, err := os.ReadFile(paths[0])
	require.NoError(t, err)
	assert.Equal(t, "fresh", string(data))
}

func TestPartNames(t *testing.T) {
	job := testJob("/out")

	assert.Equal(t, []string{"report.txt"}, partNames(job, 1))
	assert.Equal(t, []string{
		"report_part001.txt",
		"report_part002.txt",
	}, partNames(job, 2))
}
