package runner

import (
	"gemini-transcriber/internal/config"
	"gemini-transcriber/internal/logger"
	"gemini-transcriber/internal/prompt"
	"gemini-transcriber/internal/transcribe"
	"gemini-transcriber/internal/writer"
)

type implRunner struct {
	cfg         *config.Config
	transcriber transcribe.Transcriber
	writer      writer.Writer
	source      prompt.Source
	logger      logger.Logger
}

// New creates a Runner instance.
func New(cfg *config.Config, tr transcribe.Transcriber, w writer.Writer, src prompt.Source, log logger.Logger) Runner {
	return &implRunner{
		cfg:         cfg,
		transcriber: tr,
		writer:      w,
		source:      src,
		logger:      log,
	}
}
