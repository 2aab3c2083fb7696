package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/papyrus-labs/papyrus-cli/internal/core/domain"
	"github.com/papyrus-labs/papyrus-cli/internal/core/ports/driven"
)

// historyStore implements driven.HistoryStore.
type historyStore struct {
	store *Store
}

var _ driven.HistoryStore = (*historyStore)(nil)

// Record saves the outcome of a finished job.
func (s *historyStore) Record(ctx context.Context, rec *domain.JobRecord) error {
	if rec == nil || rec.ID == "" {
		return domain.ErrInvalidInput
	}

	_, err := s.store.db.ExecContext(ctx, `
		INSERT INTO job_records
			(id, input_path, input_format, output_format, part_count, output_dir, error, started_at, finished_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			input_path = excluded.input_path,
			input_format = excluded.input_format,
			output_format = excluded.output_format,
			part_count = excluded.part_count,
			output_dir = excluded.output_dir,
			error = excluded.error,
			started_at = excluded.started_at,
			finished_at = excluded.finished_at
	`, rec.ID, rec.InputPath, rec.InputFormat, rec.OutputFormat,
		rec.PartCount, rec.OutputDir, nullString(rec.Error),
		formatNullableTime(rec.StartedAt), formatNullableTime(rec.FinishedAt))

	if err != nil {
		return fmt.Errorf("recording job: %w", err)
	}
	return nil
}

// List returns the most recent records, newest first.
func (s *historyStore) List(ctx context.Context, limit int) ([]domain.JobRecord, error) {
	query := `
		SELECT id, input_path, input_format, output_format, part_count, output_dir, error, started_at, finished_at
		FROM job_records
		ORDER BY started_at DESC, id
	`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.store.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying job records: %w", err)
	}
	defer rows.Close()

	var records []domain.JobRecord //nolint:prealloc // size unknown from query
	for rows.Next() {
		rec, err := scanJobRecordRows(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, *rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating job records: %w", err)
	}

	return records, nil
}

// Get returns a single record by job ID.
func (s *historyStore) Get(ctx context.Context, jobID string) (*domain.JobRecord, error) {
	row := s.store.db.QueryRowContext(ctx, `
		SELECT id, input_path, input_format, output_format, part_count, output_dir, error, started_at, finished_at
		FROM job_records WHERE id = ?
	`, jobID)

	return scanJobRecord(row)
}

// ==================== Helper Functions ====================

// scanJobRecord scans a single job record row.
func scanJobRecord(row *sql.Row) (*domain.JobRecord, error) {
	var rec domain.JobRecord
	var errMsg, startedAt, finishedAt sql.NullString

	if err := row.Scan(&rec.ID, &rec.InputPath, &rec.InputFormat, &rec.OutputFormat,
		&rec.PartCount, &rec.OutputDir, &errMsg, &startedAt, &finishedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scanning job record: %w", err)
	}

	if errMsg.Valid {
		rec.Error = errMsg.String
	}
	rec.StartedAt = parseNullableTime(startedAt)
	rec.FinishedAt = parseNullableTime(finishedAt)

	return &rec, nil
}

// scanJobRecordRows scans a job record from *sql.Rows.
func scanJobRecordRows(rows *sql.Rows) (*domain.JobRecord, error) {
	var rec domain.JobRecord
	var errMsg, startedAt, finishedAt sql.NullString

	if err := rows.Scan(&rec.ID, &rec.InputPath, &rec.InputFormat, &rec.OutputFormat,
		&rec.PartCount, &rec.OutputDir, &errMsg, &startedAt, &finishedAt); err != nil {
		return nil, fmt.Errorf("scanning job record: %w", err)
	}

	if errMsg.Valid {
		rec.Error = errMsg.String
	}
	rec.StartedAt = parseNullableTime(startedAt)
	rec.FinishedAt = parseNullableTime(finishedAt)

	return &rec, nil
}

// formatNullableTime formats a time to RFC3339 string, or returns nil for zero time.
func formatNullableTime(t time.Time) interface{} {
	if t.IsZero() {
		return nil
	}
	return t.UTC().Format(time.RFC3339Nano)
}

// parseNullableTime parses a nullable RFC3339 string to time.Time.
// Returns zero time if the string is empty or invalid.
func parseNullableTime(s sql.NullString) time.Time {
	if !s.Valid || s.String == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339Nano, s.String)
	if err != nil {
		return time.Time{}
	}
	return t
}

// nullString returns nil for empty strings, otherwise the string.
func nullString(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
