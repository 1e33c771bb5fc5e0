package transcribe

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnsupportedFormat is returned for an extension outside the fixed
// extension-to-mime mapping.
var ErrUnsupportedFormat = errors.New("unsupported audio format")

var mimeTypes = map[string]string{
	".mp3":  "audio/mpeg",
	".wav":  "audio/wav",
	".m4a":  "audio/mp4",
	".flac": "audio/flac",
	".ogg":  "audio/ogg",
	".webm": "audio/webm",
	".mp4":  "audio/mp4",
	".aac":  "audio/aac",
}

// MimeTypeFor maps a file extension (with leading dot, any casing) to
// the mime type submitted to the API.
func MimeTypeFor(ext string) (string, error) {
	mime, ok := mimeTypes[strings.ToLower(ext)]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
	}
	return mime, nil
}
