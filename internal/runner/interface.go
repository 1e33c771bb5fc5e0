package runner

import (
	"context"

	"gemini-transcriber/internal/discover"
	"gemini-transcriber/internal/prompt"
)

// Runner orchestrates one batch run: catalog load, template selection,
// discovery, and the per-file transcribe-and-write loop.
type Runner interface {
	Run(ctx context.Context) (*Summary, error)
	ProcessFile(ctx context.Context, f discover.File, tmpl prompt.Template) error
}

// Summary is the end-of-run report. It lives only for the process
// lifetime; nothing is persisted across runs.
type Summary struct {
	Total     int
	Succeeded int
	Failed    int
	Failures  []Failure
}

// Failure names one file that could not be transcribed or written,
// with its cause.
type Failure struct {
	Name string
	Err  error
}
