package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// ErrNotFound is returned when a job ID has no record.
var ErrNotFound = errors.New("job not found")

type implStore struct {
	db *sql.DB
}

const schema = `
CREATE TABLE IF NOT EXISTS jobs (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	job_id TEXT NOT NULL UNIQUE,
	source_name TEXT NOT NULL,
	status TEXT NOT NULL,
	transcript_path TEXT NOT NULL DEFAULT '',
	subtitle_path TEXT NOT NULL DEFAULT '',
	reel_path TEXT NOT NULL DEFAULT '',
	summary TEXT NOT NULL DEFAULT '',
	error TEXT NOT NULL DEFAULT '',
	created_at DATETIME NOT NULL,
	updated_at DATETIME NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_jobs_created_at ON jobs(created_at);
`

// New opens (creating if needed) the sqlite job store at dbPath.
func New(dbPath string) (Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return &implStore{db: db}, nil
}

func (s *implStore) Create(ctx context.Context, jobID, sourceName string) error {
	now := time.Now().UTC()
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO jobs (job_id, source_name, status, created_at, updated_at) VALUES (?, ?, ?, ?, ?)`,
		jobID, sourceName, StatusQueued, now, now)
	if err != nil {
		return fmt.Errorf("create job record: %w", err)
	}
	return nil
}

func (s *implStore) SetStatus(ctx context.Context, jobID, status string) error {
	_, err := s.db.ExecContext(ctx,
		`UPDATE jobs SET status = ?, updated_at = ? WHERE job_id = ?`,
		status, time.Now().UTC(), jobID)
	if err != nil {
		return fmt.Errorf("update status: %w", err)
	}
	return nil
}

func (s *implStore) SetArtifacts(ctx context.Context, jobID string, a Artifacts) error {
	_, err := s.db.ExecContext(ctx,
		`UPDATE jobs SET transcript_path = ?, subtitle_path = ?, reel_path = ?, summary = ?, updated_at = ? WHERE job_id = ?`,
		a.TranscriptPath, a.SubtitlePath, a.ReelPath, a.Summary, time.Now().UTC(), jobID)
	if err != nil {
		return fmt.Errorf("update artifacts: %w", err)
	}
	return nil
}

func (s *implStore) MarkFailed(ctx context.Context, jobID, stage, message string) error {
	_, err := s.db.ExecContext(ctx,
		`UPDATE jobs SET status = ?, error = ?, updated_at = ? WHERE job_id = ?`,
		StatusFailed, fmt.Sprintf("%s: %s", stage, message), time.Now().UTC(), jobID)
	if err != nil {
		return fmt.Errorf("mark failed: %w", err)
	}
	return nil
}

func (s *implStore) MarkCompleted(ctx context.Context, jobID string) error {
	return s.SetStatus(ctx, jobID, StatusCompleted)
}

const recordColumns = `job_id, source_name, status, transcript_path, subtitle_path, reel_path, summary, error, created_at, updated_at`

func (s *implStore) Get(ctx context.Context, jobID string) (Record, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+recordColumns+` FROM jobs WHERE job_id = ?`, jobID)

	rec, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Record{}, ErrNotFound
	}
	if err != nil {
		return Record{}, fmt.Errorf("get job: %w", err)
	}
	return rec, nil
}

func (s *implStore) List(ctx context.Context, limit int) ([]Record, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+recordColumns+` FROM jobs ORDER BY created_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("scan job: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

func (s *implStore) Close() error {
	return s.db.Close()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(row scanner) (Record, error) {
	var rec Record
	err := row.Scan(
		&rec.JobID, &rec.SourceName, &rec.Status,
		&rec.TranscriptPath, &rec.SubtitlePath, &rec.ReelPath,
		&rec.Summary, &rec.Error,
		&rec.CreatedAt, &rec.UpdatedAt,
	)
	return rec, err
}
