package watch

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"gemini-transcriber/internal/config"
	"gemini-transcriber/internal/discover"
	"gemini-transcriber/internal/logger"
	"gemini-transcriber/internal/prompt"
	"gemini-transcriber/internal/runner"
	"gemini-transcriber/internal/transcribe"
	"gemini-transcriber/internal/watcher"
	"gemini-transcriber/internal/writer"
)

var (
	configPath string
	promptID   string
	inputDir   string
	outputDir  string
	promptsDir string
)

var Cmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch the audio folder and transcribe new files as they arrive",
	Long: `Watch the audio folder and transcribe new files as they arrive.

The prompt template is resolved once at startup (--prompt, or the first
template by default). Stop with Ctrl+C; in-flight transcriptions finish
before exit.`,
	RunE: runWatch,
}

func init() {
	Cmd.Flags().StringVarP(&configPath, "config", "c", "config.yaml", "config file")
	Cmd.Flags().StringVarP(&promptID, "prompt", "p", "", "prompt template id (default: first template)")
	Cmd.Flags().StringVarP(&inputDir, "input", "i", "", "audio folder (overrides config)")
	Cmd.Flags().StringVarP(&outputDir, "output", "o", "", "transcriptions folder (overrides config)")
	Cmd.Flags().StringVar(&promptsDir, "prompts-dir", "", "prompt templates folder (overrides config)")
}

func runWatch(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if inputDir != "" {
		cfg.Paths.Audio = inputDir
	}
	if outputDir != "" {
		cfg.Paths.Transcriptions = outputDir
	}
	if promptsDir != "" {
		cfg.Paths.Prompts = promptsDir
	}

	log := logger.New(cfg.Logging.Level)

	apiKey, err := config.LoadAPIKey()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(cfg.Paths.Audio, 0755); err != nil {
		return err
	}

	catalog, err := prompt.Load(cfg.Paths.Prompts)
	if err != nil {
		return err
	}
	tmpl, err := catalog.Select(promptID)
	if err != nil {
		return err
	}
	log.Info(ctx, "Using prompt template %s: %s", tmpl.ID, tmpl.Title)

	tr, err := transcribe.NewGemini(ctx, apiKey, cfg.Gemini, log)
	if err != nil {
		return err
	}

	wr, err := writer.New(cfg.Paths.Transcriptions, cfg.Gemini.Model, cfg.Output.Format)
	if err != nil {
		return err
	}

	r := runner.New(cfg, tr, wr, prompt.NewStaticSource(tmpl.ID), log)

	handler := func(ctx context.Context, path string) error {
		f := discover.File{Path: path, Ext: strings.ToLower(filepath.Ext(path))}
		return r.ProcessFile(ctx, f, tmpl)
	}

	w, err := watcher.New(cfg.Paths.Audio, handler, log, cfg.Watch.MaxConcurrent)
	if err != nil {
		return err
	}
	defer w.Stop()

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := w.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	return nil
}
