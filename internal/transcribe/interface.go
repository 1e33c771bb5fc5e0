package transcribe

import "context"

// Transcriber converts audio bytes into text using a generative model.
type Transcriber interface {
	Transcribe(ctx context.Context, req Request) (string, error)
}

// Request carries everything for one transcription call: the raw audio,
// its mime type, and the prompt body conditioning the output style.
type Request struct {
	Data     []byte
	MimeType string
	Prompt   string
}
