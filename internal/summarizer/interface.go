package summarizer

import "context"

// Summarizer turns a timestamped transcript into a short list of highlight
// moments. Failures here are non-fatal to the pipeline: callers report the
// error and carry on.
type Summarizer interface {
	Summarize(ctx context.Context, transcriptText string) (string, error)
}
