package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/papyrus-labs/papyrus-cli/internal/core/domain"
)

func testRecord(id string, startedAt time.Time) *domain.JobRecord {
	return &domain.JobRecord{
		ID:           id,
		InputPath:    "/docs/" + id + ".docx",
		InputFormat:  "docx",
		OutputFormat: "txt",
		PartCount:    1,
		OutputDir:    "/out",
		StartedAt:    startedAt,
		FinishedAt:   startedAt.Add(time.Second),
	}
}

func TestHistoryStore_RecordAndGet(t *testing.T) {
	store := setupTestStore(t)
	hist := store.HistoryStore()
	ctx := context.Background()

	started := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)
	require.NoError(t, hist.Record(ctx, testRecord("job-1", started)))

	rec, err := hist.Get(ctx, "job-1")
	require.NoError(t, err)
	assert.Equal(t, "/docs/job-1.docx", rec.InputPath)
	assert.Equal(t, "docx", rec.InputFormat)
	assert.Equal(t, "txt", rec.OutputFormat)
	assert.Equal(t, 1, rec.PartCount)
	assert.Equal(t, "/out", rec.OutputDir)
	assert.True(t, rec.Succeeded())
	assert.True(t, started.Equal(rec.StartedAt))
	assert.True(t, started.Add(time.Second).Equal(rec.FinishedAt))
}

func TestHistoryStore_RecordFailure(t *testing.T) {
	store := setupTestStore(t)
	hist := store.HistoryStore()
	ctx := context.Background()

	rec := testRecord("job-err", time.Now().UTC())
	rec.PartCount = 0
	rec.Error = "corrupt document: missing word/document.xml"
	require.NoError(t, hist.Record(ctx, rec))

	got, err := hist.Get(ctx, "job-err")
	require.NoError(t, err)
	assert.False(t, got.Succeeded())
	assert.Contains(t, got.Error, "corrupt document")
	assert.Zero(t, got.PartCount)
}

func TestHistoryStore_Record_Upsert(t *testing.T) {
	store := setupTestStore(t)
	hist := store.HistoryStore()
	ctx := context.Background()

	rec := testRecord("job-1", time.Now().UTC())
	require.NoError(t, hist.Record(ctx, rec))

	rec.PartCount = 5
	require.NoError(t, hist.Record(ctx, rec))

	got, err := hist.Get(ctx, "job-1")
	require.NoError(t, err)
	assert.Equal(t, 5, got.PartCount)

	records, err := hist.List(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestHistoryStore_Record_InvalidInput(t *testing.T) {
	store := setupTestStore(t)
	hist := store.HistoryStore()
	ctx := context.Background()

	assert.ErrorIs(t, hist.Record(ctx, nil), domain.ErrInvalidInput)
	assert.ErrorIs(t, hist.Record(ctx, &domain.JobRecord{}), domain.ErrInvalidInput)
}

func TestHistoryStore_Get_NotFound(t *testing.T) {
	store := setupTestStore(t)

	rec, err := store.HistoryStore().Get(context.Background(), "missing")

	assert.Nil(t, rec)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestHistoryStore_List_NewestFirst(t *testing.T) {
	store := setupTestStore(t)
	hist := store.HistoryStore()
	ctx := context.Background()

	base := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	require.NoError(t, hist.Record(ctx, testRecord("job-old", base)))
	require.NoError(t, hist.Record(ctx, testRecord("job-mid", base.Add(time.Minute))))
	require.NoError(t, hist.Record(ctx, testRecord("job-new", base.Add(2*time.Minute))))

	records, err := hist.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "job-new", records[0].ID)
	assert.Equal(t, "job-mid", records[1].ID)
	assert.Equal(t, "job-old", records[2].ID)
}

func TestHistoryStore_List_Limit(t *testing.T) {
	store := setupTestStore(t)
	hist := store.HistoryStore()
	ctx := context.Background()

	base := time.Now().UTC()
	for i := 0; i < 5; i++ {
		require.NoError(t, hist.Record(ctx,
			testRecord("job-"+string(rune('a'+i)), base.Add(time.Duration(i)*time.Second))))
	}

	records, err := hist.List(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, records, 2)
	assert.Equal(t, "job-e", records[0].ID)
}

func TestHistoryStore_List_Empty(t *testing.T) {
	store := setupTestStore(t)

	records, err := store.HistoryStore().List(context.Background(), 10)

	require.NoError(t, err)
	assert.Empty(t, records)
}
