package run

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"gemini-transcriber/internal/config"
	"gemini-transcriber/internal/logger"
	"gemini-transcriber/internal/prompt"
	"gemini-transcriber/internal/runner"
	"gemini-transcriber/internal/transcribe"
	"gemini-transcriber/internal/writer"
)

var (
	configPath string
	promptID   string
	inputDir   string
	outputDir  string
	promptsDir string
	strict     bool
)

var Cmd = &cobra.Command{
	Use:   "run",
	Short: "Transcribe every audio file in the audio folder",
	Long: `Transcribe every audio file in the audio folder.

Without --prompt the available templates are listed and a selection is
read from stdin; an empty answer picks the first template. One file's
failure never aborts the batch; the summary reports every outcome.`,
	RunE: runBatch,
}

func init() {
	Cmd.Flags().StringVarP(&configPath, "config", "c", "config.yaml", "config file")
	Cmd.Flags().StringVarP(&promptID, "prompt", "p", "", "prompt template id (skips the interactive selection)")
	Cmd.Flags().StringVarP(&inputDir, "input", "i", "", "audio folder (overrides config)")
	Cmd.Flags().StringVarP(&outputDir, "output", "o", "", "transcriptions folder (overrides config)")
	Cmd.Flags().StringVar(&promptsDir, "prompts-dir", "", "prompt templates folder (overrides config)")
	Cmd.Flags().BoolVar(&strict, "strict", false, "exit non-zero if any file fails")
}

func runBatch(cmd *cobra.Command, args []string) error {
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

	// The missing credential is the single fatal precondition: nothing
	// is discovered, transcribed or written without it.
	apiKey, err := config.LoadAPIKey()
	if err != nil {
		return err
	}

	tr, err := transcribe.NewGemini(ctx, apiKey, cfg.Gemini, log)
	if err != nil {
		return err
	}

	w, err := writer.New(cfg.Paths.Transcriptions, cfg.Gemini.Model, cfg.Output.Format)
	if err != nil {
		return err
	}

	var src prompt.Source
	if promptID != "" {
		src = prompt.NewStaticSource(promptID)
	} else {
		src = prompt.NewConsoleSource(os.Stdin, os.Stdout, 3)
	}

	summary, err := runner.New(cfg, tr, w, src, log).Run(ctx)
	if err != nil {
		return err
	}

	if strict && summary.Failed > 0 {
		return fmt.Errorf("%d of %d file(s) failed", summary.Failed, summary.Total)
	}

	return nil
}
