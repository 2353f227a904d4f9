package watcher

import "context"

// Watcher monitors a drop folder for new video files.
type Watcher interface {
	Start(ctx context.Context) error
	Stop() error
}

// IntakeHandler is called once per detected video file. It should return
// quickly (hand the file to a queue); processing does not happen on the
// watcher goroutine.
type IntakeHandler func(ctx context.Context, filePath string) error
