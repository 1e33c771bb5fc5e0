package transcribe

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"gemini-transcriber/internal/config"
	"gemini-transcriber/internal/logger"
)

// maxInlineBytes is the inline-data request ceiling of the Gemini API.
// Larger files are rejected locally instead of wasting the round trip.
const maxInlineBytes = 20 << 20

var (
	// ErrAuthFailed covers missing, invalid or unauthorized credentials.
	ErrAuthFailed = errors.New("authentication failed")

	// ErrQuotaExceeded covers rate-limit and quota rejections.
	ErrQuotaExceeded = errors.New("quota exceeded")

	// ErrPayloadTooLarge is returned before the network call for files
	// above the inline-data limit, and for remote size rejections.
	ErrPayloadTooLarge = errors.New("audio payload too large")

	// ErrEmptyResponse is returned when the model answers with no text.
	ErrEmptyResponse = errors.New("empty response from Gemini")
)

type implTranscriber struct {
	client *genai.Client
	model  string
	temp   float32
	tokens int32
	logger logger.Logger
}

// NewGemini creates a Transcriber backed by the Gemini API.
func NewGemini(ctx context.Context, apiKey string, cfg config.GeminiConfig, log logger.Logger) (Transcriber, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create Gemini client: %w", err)
	}

	return &implTranscriber{
		client: client,
		model:  cfg.Model,
		temp:   cfg.Temperature,
		tokens: cfg.MaxOutputTokens,
		logger: log,
	}, nil
}

// Transcribe submits the audio bytes and prompt in a single
// GenerateContent call and returns the generated text. One call per
// invocation; any retry policy belongs to the caller.
func (t *implTranscriber) Transcribe(ctx context.Context, req Request) (string, error) {
	if len(req.Data) > maxInlineBytes {
		return "", fmt.Errorf("%w: %d bytes (limit %d)", ErrPayloadTooLarge, len(req.Data), maxInlineBytes)
	}

	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromText(req.Prompt),
			genai.NewPartFromBytes(req.Data, req.MimeType),
		}, genai.RoleUser),
	}

	genCfg := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(t.temp),
		MaxOutputTokens: t.tokens,
	}

	result, err := t.client.Models.GenerateContent(ctx, t.model, contents, genCfg)
	if err != nil {
		return "", classify(err)
	}

	if result == nil || len(result.Candidates) == 0 || result.Candidates[0].Content == nil {
		return "", ErrEmptyResponse
	}

	var text strings.Builder
	for _, part := range result.Candidates[0].Content.Parts {
		if part.Text != "" {
			text.WriteString(part.Text)
		}
	}

	if strings.TrimSpace(text.String()) == "" {
		return "", ErrEmptyResponse
	}

	return strings.TrimSpace(text.String()), nil
}

// classify maps a remote failure onto the error taxonomy so the caller
// can report a distinct cause. Unrecognized failures pass through
// wrapped as-is.
func classify(err error) error {
	msg := err.Error()

	switch {
	case strings.Contains(msg, "429") ||
		strings.Contains(msg, "quota") ||
		strings.Contains(msg, "RESOURCE_EXHAUSTED"):
		return fmt.Errorf("%w: %v", ErrQuotaExceeded, err)

	case strings.Contains(msg, "401") ||
		strings.Contains(msg, "403") ||
		strings.Contains(msg, "API key") ||
		strings.Contains(msg, "UNAUTHENTICATED") ||
		strings.Contains(msg, "PERMISSION_DENIED"):
		return fmt.Errorf("%w: %v", ErrAuthFailed, err)

	case strings.Contains(msg, "413") ||
		strings.Contains(msg, "payload size") ||
		strings.Contains(msg, "request entity too large"):
		return fmt.Errorf("%w: %v", ErrPayloadTooLarge, err)

	default:
		return fmt.Errorf("generate content: %w", err)
	}
}
