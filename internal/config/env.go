package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// ErrMissingAPIKey is returned when no Gemini credential can be found.
// It is the single fatal precondition of a run: nothing is transcribed
// and nothing is written without a key.
var ErrMissingAPIKey = errors.New("GEMINI_API_KEY not set in environment or .env file")

// LoadAPIKey resolves the Gemini API key from the process environment,
// consulting a local .env file first (which never overrides variables
// already set in the environment).
func LoadAPIKey() (string, error) {
	for _, envPath := range []string{".env", ".env.local"} {
		if _, err := os.Stat(envPath); err != nil {
			continue
		}
		if err := godotenv.Load(envPath); err != nil {
			return "", fmt.Errorf("load %s: %w", envPath, err)
		}
	}

	key := strings.TrimSpace(os.Getenv("GEMINI_API_KEY"))
	if key == "" {
		return "", ErrMissingAPIKey
	}

	return key, nil
}
