package runner

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gemini-transcriber/internal/config"
	"gemini-transcriber/internal/logger"
	"gemini-transcriber/internal/prompt"
	"gemini-transcriber/internal/transcribe"
	"gemini-transcriber/internal/writer"
)

type fakeTranscriber struct {
	calls int
	fn    func(req transcribe.Request) (string, error)
}

func (f *fakeTranscriber) Transcribe(ctx context.Context, req transcribe.Request) (string, error) {
	f.calls++
	return f.fn(req)
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	root := t.TempDir()

	cfg := &config.Config{}
	if err := cfg.Validate(); err != nil {
		t.Fatal(err)
	}
	cfg.Paths.Audio = filepath.Join(root, "Audio")
	cfg.Paths.Prompts = filepath.Join(root, "prompts")
	cfg.Paths.Transcriptions = filepath.Join(root, "Transcriptions")

	for _, dir := range []string{cfg.Paths.Audio, cfg.Paths.Prompts} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			t.Fatal(err)
		}
	}

	promptFile := filepath.Join(cfg.Paths.Prompts, "1_verbatim.md")
	if err := os.WriteFile(promptFile, []byte("# Verbatim\n\nTranscribe exactly."), 0644); err != nil {
		t.Fatal(err)
	}

	return cfg
}

func newTestRunner(t *testing.T, cfg *config.Config, tr transcribe.Transcriber) Runner {
	t.Helper()
	w, err := writer.New(cfg.Paths.Transcriptions, "test-model", "txt")
	if err != nil {
		t.Fatal(err)
	}
	return New(cfg, tr, w, prompt.NewStaticSource(""), logger.New("error"))
}

func TestRunFailureIsolation(t *testing.T) {
	cfg := testConfig(t)
	for _, name := range []string{"one.mp3", "two.mp3", "three.mp3"} {
		path := filepath.Join(cfg.Paths.Audio, name)
		if err := os.WriteFile(path, []byte(name), 0644); err != nil {
			t.Fatal(err)
		}
	}

	simulated := errors.New("simulated transcription failure")
	tr := &fakeTranscriber{fn: func(req transcribe.Request) (string, error) {
		if string(req.Data) == "two.mp3" {
			return "", simulated
		}
		return "transcript of " + string(req.Data), nil
	}}

	summary, err := newTestRunner(t, cfg, tr).Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error = %v, one file's failure must not abort the run", err)
	}

	if summary.Succeeded != 2 || summary.Failed != 1 {
		t.Errorf("summary = %d succeeded / %d failed, want 2 / 1", summary.Succeeded, summary.Failed)
	}
	if len(summary.Failures) != 1 || summary.Failures[0].Name != "two.mp3" {
		t.Fatalf("Failures = %+v, want exactly two.mp3", summary.Failures)
	}
	if !errors.Is(summary.Failures[0].Err, simulated) {
		t.Errorf("failure cause = %v, want the simulated error", summary.Failures[0].Err)
	}

	// Files one and three still produced output
	for _, want := range []string{"one_transcription.txt", "three_transcription.txt"} {
		if _, err := os.Stat(filepath.Join(cfg.Paths.Transcriptions, want)); err != nil {
			t.Errorf("missing output %s: %v", want, err)
		}
	}
	if _, err := os.Stat(filepath.Join(cfg.Paths.Transcriptions, "two_transcription.txt")); err == nil {
		t.Error("failed file should not produce output")
	}
}

func TestRunEmptyAudioDir(t *testing.T) {
	cfg := testConfig(t)
	tr := &fakeTranscriber{fn: func(req transcribe.Request) (string, error) {
		return "unexpected", nil
	}}

	summary, err := newTestRunner(t, cfg, tr).Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error = %v, empty directory is a normal outcome", err)
	}
	if summary.Total != 0 || tr.calls != 0 {
		t.Errorf("summary.Total = %d, transcriber calls = %d, want 0 and 0", summary.Total, tr.calls)
	}
}

func TestRunMissingAudioDir(t *testing.T) {
	cfg := testConfig(t)
	if err := os.RemoveAll(cfg.Paths.Audio); err != nil {
		t.Fatal(err)
	}

	tr := &fakeTranscriber{fn: func(req transcribe.Request) (string, error) {
		return "unexpected", nil
	}}

	if _, err := newTestRunner(t, cfg, tr).Run(context.Background()); err == nil {
		t.Error("Run() should fail when the audio directory is missing")
	}
}

func TestRunSelectionError(t *testing.T) {
	cfg := testConfig(t)
	tr := &fakeTranscriber{fn: func(req transcribe.Request) (string, error) {
		return "unexpected", nil
	}}

	w, err := writer.New(cfg.Paths.Transcriptions, "test-model", "txt")
	if err != nil {
		t.Fatal(err)
	}
	r := New(cfg, tr, w, prompt.NewStaticSource("99"), logger.New("error"))

	_, err = r.Run(context.Background())
	if !errors.Is(err, prompt.ErrUnknownTemplate) {
		t.Errorf("Run() error = %v, want ErrUnknownTemplate", err)
	}
	if tr.calls != 0 {
		t.Errorf("transcriber called %d times before selection resolved, want 0", tr.calls)
	}
}

func TestRunUsesSelectedPromptBody(t *testing.T) {
	cfg := testConfig(t)
	path := filepath.Join(cfg.Paths.Audio, "a.wav")
	if err := os.WriteFile(path, []byte("audio"), 0644); err != nil {
		t.Fatal(err)
	}

	var gotPrompt string
	tr := &fakeTranscriber{fn: func(req transcribe.Request) (string, error) {
		gotPrompt = req.Prompt
		return "ok", nil
	}}

	if _, err := newTestRunner(t, cfg, tr).Run(context.Background()); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(gotPrompt, "Transcribe exactly.") {
		t.Errorf("prompt body = %q, want template body", gotPrompt)
	}
}
