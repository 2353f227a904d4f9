package store

import (
	"context"
	"time"
)

// Job status values.
const (
	StatusQueued     = "queued"
	StatusProcessing = "processing"
	StatusCompleted  = "completed"
	StatusFailed     = "failed"
)

// Record is one job's persisted state.
type Record struct {
	JobID          string    `json:"job_id"`
	SourceName     string    `json:"source_name"`
	Status         string    `json:"status"`
	TranscriptPath string    `json:"transcript_path,omitempty"`
	SubtitlePath   string    `json:"subtitle_path,omitempty"`
	ReelPath       string    `json:"reel_path,omitempty"`
	Summary        string    `json:"summary,omitempty"`
	Error          string    `json:"error,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// Artifacts holds the paths a finished (or partially finished) run produced.
type Artifacts struct {
	TranscriptPath string
	SubtitlePath   string
	ReelPath       string
	Summary        string
}

// Store persists job metadata.
type Store interface {
	Create(ctx context.Context, jobID, sourceName string) error
	SetStatus(ctx context.Context, jobID, status string) error
	SetArtifacts(ctx context.Context, jobID string, a Artifacts) error
	MarkFailed(ctx context.Context, jobID, stage, message string) error
	MarkCompleted(ctx context.Context, jobID string) error
	Get(ctx context.Context, jobID string) (Record, error)
	List(ctx context.Context, limit int) ([]Record, error)
	Close() error
}
