package watcher

import "context"

// Watcher monitors the audio folder and hands new files to a handler.
type Watcher interface {
	Start(ctx context.Context) error
	Stop() error
}

// EventHandler processes one newly arrived audio file.
type EventHandler func(ctx context.Context, filePath string) error
