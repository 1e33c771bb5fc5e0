package writer

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func newTestWriter(t *testing.T, dir, format string) *implWriter {
	t.Helper()
	w, err := New(dir, "gemini-2.5-pro", format)
	if err != nil {
		t.Fatal(err)
	}
	return w.(*implWriter)
}

func TestWriteDerivedName(t *testing.T) {
	tests := []struct {
		source string
		want   string
	}{
		{"interview.mp3", "interview_transcription.txt"},
		{"Interview.MP3", "Interview_transcription.txt"},
		{"team.meeting.wav", "team.meeting_transcription.txt"},
		{"lecture.FLAC", "lecture_transcription.txt"},
	}

	dir := t.TempDir()
	w := newTestWriter(t, dir, "txt")

	for _, tt := range tests {
		t.Run(tt.source, func(t *testing.T) {
			path, err := w.Write(tt.source, "hello")
			if err != nil {
				t.Fatalf("Write() error = %v", err)
			}
			if filepath.Base(path) != tt.want {
				t.Errorf("Write() path = %q, want base %q", path, tt.want)
			}
			if _, err := os.Stat(path); err != nil {
				t.Errorf("written file missing: %v", err)
			}
		})
	}
}

func TestWriteContent(t *testing.T) {
	w := newTestWriter(t, t.TempDir(), "txt")

	path, err := w.Write("episode.mp3", "First line.\n\nSecond paragraph.")
	if err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	content := string(data)

	if !strings.HasPrefix(content, "Transcription of: episode.mp3\n") {
		t.Errorf("header missing source name:\n%s", content)
	}
	if !strings.Contains(content, "Generated using: gemini-2.5-pro\n") {
		t.Errorf("header missing model:\n%s", content)
	}
	if !strings.Contains(content, strings.Repeat("=", 50)+"\n\n") {
		t.Errorf("separator and blank line missing:\n%s", content)
	}
	if !strings.HasSuffix(content, "First line.\n\nSecond paragraph.\n") {
		t.Errorf("transcribed text not verbatim:\n%s", content)
	}
}

func TestWriteIdempotent(t *testing.T) {
	w := newTestWriter(t, t.TempDir(), "txt")
	fixed := time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)
	w.now = func() time.Time { return fixed }

	first, err := w.Write("talk.ogg", "same text")
	if err != nil {
		t.Fatal(err)
	}
	a, err := os.ReadFile(first)
	if err != nil {
		t.Fatal(err)
	}

	second, err := w.Write("talk.ogg", "same text")
	if err != nil {
		t.Fatal(err)
	}
	if first != second {
		t.Fatalf("rerun wrote to %q, want overwrite of %q", second, first)
	}
	b, err := os.ReadFile(second)
	if err != nil {
		t.Fatal(err)
	}

	if string(a) != string(b) {
		t.Error("rerun with identical input should produce byte-identical output")
	}
}

func TestWriteCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "Transcriptions")
	w := newTestWriter(t, dir, "txt")

	if _, err := w.Write("a.wav", "text"); err != nil {
		t.Fatalf("Write() error = %v, want missing parents created", err)
	}
}

func TestWriteDocx(t *testing.T) {
	w := newTestWriter(t, t.TempDir(), "docx")

	path, err := w.Write("seminar.m4a", "Opening remarks.\n\nClosing remarks.")
	if err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if filepath.Base(path) != "seminar_transcription.docx" {
		t.Errorf("Write() path = %q, want seminar_transcription.docx", path)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Size() == 0 {
		t.Error("docx output is empty")
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := New(t.TempDir(), "gemini-2.5-pro", "pdf"); err == nil {
		t.Error("New() should reject unknown formats")
	}
}
