package pipeline

import (
	"errors"
	"fmt"
)

// Stage names the pipeline step a failure came from.
type Stage string

const (
	StageValidate   Stage = "validate"
	StageExtract    Stage = "extract_audio"
	StageTranscribe Stage = "transcribe"
	StageSummarize  Stage = "summarize"
	StageRender     Stage = "render"
)

var (
	// ErrUnsupportedFormat is returned before any external process runs.
	ErrUnsupportedFormat = errors.New("unsupported container format")
	// ErrCorruptSource means the decode check emitted diagnostics.
	ErrCorruptSource = errors.New("source failed decode check")
)

// StageError tags a failure with the stage it came from. The underlying
// diagnostic text is preserved verbatim.
type StageError struct {
	Stage Stage
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("stage %s: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}
