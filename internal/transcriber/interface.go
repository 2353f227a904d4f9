package transcriber

import (
	"context"

	"github.com/aptpath/reelforge/internal/transcript"
)

// Transcriber converts an audio file into ordered timed text segments. An
// empty segment list is a valid result (silent audio). Backend errors are
// surfaced verbatim; no retries.
type Transcriber interface {
	Transcribe(ctx context.Context, audioPath string) ([]transcript.Segment, error)
}
