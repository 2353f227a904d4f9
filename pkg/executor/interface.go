package executor

import "context"

// Output carries both streams of a finished command. Stderr is kept separate
// from the error because some tools (ffmpeg's decode check among them) report
// problems on stderr while still exiting zero.
type Output struct {
	Stdout string
	Stderr string
}

// Executor defines the interface for executing external commands
type Executor interface {
	Execute(ctx context.Context, name string, args ...string) (Output, error)
	ExecuteInDir(ctx context.Context, dir string, name string, args ...string) (Output, error)
}
