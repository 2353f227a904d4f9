package pipeline

import (
	"context"

	"github.com/aptpath/reelforge/internal/media"
	"github.com/aptpath/reelforge/internal/transcript"
)

// Pipeline runs one job start to finish.
type Pipeline interface {
	Run(ctx context.Context, job *media.Job) (*Result, error)
}

// Result collects the artifacts of a run. On a stage failure Run returns the
// error alongside a partially filled Result: artifacts produced before the
// failing stage stay on disk and remain visible to the caller.
type Result struct {
	Job            *media.Job
	Transcript     transcript.Transcript
	TranscriptPath string
	SubtitlePath   string
	SummaryPath    string
	ReelPath       string
	Summary        string
	// SummaryErr holds a summarizer failure. It never aborts the run.
	SummaryErr error
}
