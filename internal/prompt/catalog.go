package prompt

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

var (
	// ErrNoTemplates is returned when the prompt directory holds no file
	// matching the <digits>_<label>.<ext> naming convention.
	ErrNoTemplates = errors.New("no prompt templates found")

	// ErrUnknownTemplate is returned by Select for an id not in the catalog.
	ErrUnknownTemplate = errors.New("unknown prompt template")
)

// reTemplateName matches the template filename convention: a numeric id,
// an underscore, a label, and any extension. Everything else is skipped.
var reTemplateName = regexp.MustCompile(`^(\d+)_(.+)\.[^.]+$`)

// Template is one selectable transcription style. Title comes from the
// first markdown heading of the file body, falling back to the filename
// label. Body is the instruction text sent to the model verbatim.
type Template struct {
	ID    string
	Title string
	Body  string
}

// Catalog is the ordered set of templates for a run, sorted by numeric id.
// It is immutable once loaded.
type Catalog []Template

// Load scans dir for template files and parses each into a Template.
// Files not matching the naming convention are skipped silently. Returns
// ErrNoTemplates if nothing in the directory matches, and an error if two
// templates claim the same id.
func Load(dir string) (Catalog, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read prompt directory %s: %w", dir, err)
	}

	seen := make(map[string]string)
	var catalog Catalog

	for _, e := range entries {
		if e.IsDir() {
			continue
		}

		m := reTemplateName.FindStringSubmatch(e.Name())
		if m == nil {
			continue
		}
		id, label := m[1], m[2]

		if prev, ok := seen[id]; ok {
			return nil, fmt.Errorf("duplicate template id %q: %s and %s", id, prev, e.Name())
		}
		seen[id] = e.Name()

		data, err := os.ReadFile(filepath.Join(dir, e.Name()))
		if err != nil {
			return nil, fmt.Errorf("read template %s: %w", e.Name(), err)
		}

		title, body := parseBody(string(data))
		if title == "" {
			title = label
		}

		catalog = append(catalog, Template{ID: id, Title: title, Body: body})
	}

	if len(catalog) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoTemplates, dir)
	}

	sort.Slice(catalog, func(i, j int) bool {
		a, _ := strconv.Atoi(catalog[i].ID)
		b, _ := strconv.Atoi(catalog[j].ID)
		return a < b
	})

	return catalog, nil
}

// parseBody splits the template content into a heading-derived title and
// the instruction body. Without a leading heading the whole content is the
// body and the title is left empty for the caller to fill in.
func parseBody(content string) (title, body string) {
	lines := strings.Split(content, "\n")

	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if strings.HasPrefix(trimmed, "#") {
			title = strings.TrimSpace(strings.TrimLeft(trimmed, "#"))
			body = strings.TrimSpace(strings.Join(lines[i+1:], "\n"))
			return title, body
		}
		break
	}

	return "", strings.TrimSpace(content)
}

// Select resolves a user-supplied id against the catalog. An empty input
// means the default template, the numerically first one. An id that
// matches nothing is an error, never a silent fallback.
func (c Catalog) Select(input string) (Template, error) {
	input = strings.TrimSpace(input)

	if input == "" {
		return c[0], nil
	}

	for _, t := range c {
		if t.ID == input {
			return t, nil
		}
	}

	return Template{}, fmt.Errorf("%w: %q", ErrUnknownTemplate, input)
}
