package watcher

import (
	"fmt"

	"github.com/fsnotify/fsnotify"

	"gemini-transcriber/internal/logger"
)

// New creates a Watcher on audioDir with bounded concurrent handling.
// maxConcurrent of 1 keeps processing strictly sequential.
func New(audioDir string, handler EventHandler, log logger.Logger, maxConcurrent int) (Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	if err := fsw.Add(audioDir); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watch %s: %w", audioDir, err)
	}

	if maxConcurrent <= 0 {
		maxConcurrent = 1
	}

	return &implWatcher{
		audioDir:  audioDir,
		handler:   handler,
		logger:    log,
		watcher:   fsw,
		semaphore: make(chan struct{}, maxConcurrent),
	}, nil
}
