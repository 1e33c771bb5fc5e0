package runner

import (
	"context"
	"fmt"
	"os"

	"gemini-transcriber/internal/discover"
	"gemini-transcriber/internal/prompt"
	"gemini-transcriber/internal/transcribe"
)

// Run executes one batch: load the catalog, resolve the template
// selection, discover audio files, then process each in order. Catalog,
// selection and discovery failures abort the run; a single file's
// failure is recorded and the loop continues.
func (r *implRunner) Run(ctx context.Context) (*Summary, error) {
	catalog, err := prompt.Load(r.cfg.Paths.Prompts)
	if err != nil {
		return nil, fmt.Errorf("load prompt catalog: %w", err)
	}

	tmpl, err := r.source.GetSelection(catalog)
	if err != nil {
		return nil, fmt.Errorf("select prompt template: %w", err)
	}
	r.logger.Info(ctx, "Using prompt template %s: %s", tmpl.ID, tmpl.Title)

	files, err := discover.Discover(r.cfg.Paths.Audio)
	if err != nil {
		return nil, fmt.Errorf("discover audio files: %w", err)
	}

	summary := &Summary{Total: len(files)}

	if len(files) == 0 {
		r.logger.Info(ctx, "No audio files found in %s", r.cfg.Paths.Audio)
		return summary, nil
	}

	r.logger.Info(ctx, "Found %d audio file(s) in %s", len(files), r.cfg.Paths.Audio)

	for i, f := range files {
		r.logger.Info(ctx, "[%d/%d] Transcribing: %s", i+1, len(files), f.Name())

		if err := r.ProcessFile(ctx, f, tmpl); err != nil {
			r.logger.Error(ctx, "Failed to process %s: %v", f.Name(), err)
			summary.Failed++
			summary.Failures = append(summary.Failures, Failure{Name: f.Name(), Err: err})
			continue
		}

		summary.Succeeded++
	}

	r.report(ctx, summary)
	return summary, nil
}

// ProcessFile transcribes a single audio file and writes the result.
// It is also the per-event handler for watch mode.
func (r *implRunner) ProcessFile(ctx context.Context, f discover.File, tmpl prompt.Template) error {
	mimeType, err := transcribe.MimeTypeFor(f.Ext)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(f.Path)
	if err != nil {
		return fmt.Errorf("read audio file: %w", err)
	}

	text, err := r.transcriber.Transcribe(ctx, transcribe.Request{
		Data:     data,
		MimeType: mimeType,
		Prompt:   tmpl.Body,
	})
	if err != nil {
		return fmt.Errorf("transcribe: %w", err)
	}

	outPath, err := r.writer.Write(f.Name(), text)
	if err != nil {
		return fmt.Errorf("write transcription: %w", err)
	}

	r.logger.Info(ctx, "Transcription saved: %s", outPath)
	return nil
}

func (r *implRunner) report(ctx context.Context, s *Summary) {
	r.logger.Info(ctx, "========================================")
	r.logger.Info(ctx, "Run complete: %d succeeded, %d failed (of %d)", s.Succeeded, s.Failed, s.Total)
	for _, f := range s.Failures {
		r.logger.Info(ctx, "  failed: %s (%v)", f.Name, f.Err)
	}
	r.logger.Info(ctx, "========================================")
}
