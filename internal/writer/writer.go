package writer

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const timestampLayout = "2006-01-02 15:04:05"

type implWriter struct {
	destDir string
	model   string
	format  string
	now     func() time.Time
}

// New creates a Writer that stores transcripts in destDir, creating it
// (with parents) on first write. Format is "txt" or "docx".
func New(destDir, model, format string) (Writer, error) {
	if format != "txt" && format != "docx" {
		return nil, fmt.Errorf("unsupported output format %q", format)
	}
	return &implWriter{
		destDir: destDir,
		model:   model,
		format:  format,
		now:     time.Now,
	}, nil
}

// Write persists the text under <stem>_transcription.<format>. A
// pre-existing file at the target path is overwritten.
func (w *implWriter) Write(sourceName, text string) (string, error) {
	if err := os.MkdirAll(w.destDir, 0755); err != nil {
		return "", fmt.Errorf("create output directory %s: %w", w.destDir, err)
	}

	stem := strings.TrimSuffix(sourceName, filepath.Ext(sourceName))
	outPath := filepath.Join(w.destDir, stem+"_transcription."+w.format)

	if w.format == "docx" {
		if err := w.writeDocx(outPath, sourceName, text); err != nil {
			return "", fmt.Errorf("write %s: %w", outPath, err)
		}
		return outPath, nil
	}

	var b strings.Builder
	b.WriteString(w.header(sourceName))
	b.WriteString("\n")
	b.WriteString(text)
	b.WriteString("\n")

	if err := os.WriteFile(outPath, []byte(b.String()), 0644); err != nil {
		return "", fmt.Errorf("write %s: %w", outPath, err)
	}

	return outPath, nil
}

func (w *implWriter) header(sourceName string) string {
	return fmt.Sprintf("Transcription of: %s\nGenerated using: %s\nGenerated at: %s\n%s\n",
		sourceName,
		w.model,
		w.now().Format(timestampLayout),
		strings.Repeat("=", 50),
	)
}
