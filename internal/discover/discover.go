package discover

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// audioExtensions is the fixed allow-list of recognized audio formats.
var audioExtensions = map[string]bool{
	".mp3":  true,
	".wav":  true,
	".m4a":  true,
	".flac": true,
	".ogg":  true,
	".webm": true,
	".mp4":  true,
	".aac":  true,
}

// File is one discovered audio file. Ext is the lowercased extension
// including the leading dot, regardless of the on-disk casing.
type File struct {
	Path string
	Ext  string
}

// Name returns the file's base name.
func (f File) Name() string {
	return filepath.Base(f.Path)
}

// IsAudioFile reports whether the filename carries an allow-listed
// audio extension. The check is case-insensitive.
func IsAudioFile(name string) bool {
	return audioExtensions[strings.ToLower(filepath.Ext(name))]
}

// Discover enumerates the direct children of dir with allow-listed
// extensions, sorted by filename. Subdirectories and other extensions
// are skipped. An existing but empty directory yields an empty result,
// not an error.
func Discover(dir string) ([]File, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read audio directory %s: %w", dir, err)
	}

	var files []File
	for _, e := range entries {
		if e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		if !IsAudioFile(e.Name()) {
			continue
		}
		files = append(files, File{
			Path: filepath.Join(dir, e.Name()),
			Ext:  strings.ToLower(filepath.Ext(e.Name())),
		})
	}

	sort.Slice(files, func(i, j int) bool {
		return files[i].Name() < files[j].Name()
	})

	return files, nil
}
