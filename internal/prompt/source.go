package prompt

import (
	"bufio"
	"fmt"
	"io"
)

// Source supplies the template selection for a run, decoupling the
// orchestrator from any specific input mechanism.
type Source interface {
	GetSelection(catalog Catalog) (Template, error)
}

type staticSource struct {
	id string
}

// NewStaticSource returns a Source that always selects the given id.
// An empty id selects the default template.
func NewStaticSource(id string) Source {
	return &staticSource{id: id}
}

func (s *staticSource) GetSelection(catalog Catalog) (Template, error) {
	return catalog.Select(s.id)
}

type consoleSource struct {
	in       io.Reader
	out      io.Writer
	attempts int
}

// NewConsoleSource returns a Source that lists the catalog on out and
// reads a selection from in. Invalid input is re-solicited up to
// attempts times before giving up.
func NewConsoleSource(in io.Reader, out io.Writer, attempts int) Source {
	if attempts <= 0 {
		attempts = 3
	}
	return &consoleSource{in: in, out: out, attempts: attempts}
}

func (s *consoleSource) GetSelection(catalog Catalog) (Template, error) {
	fmt.Fprintln(s.out, "Available prompt templates:")
	for _, t := range catalog {
		fmt.Fprintf(s.out, "  %s. %s\n", t.ID, t.Title)
	}

	reader := bufio.NewReader(s.in)
	var lastErr error

	for i := 0; i < s.attempts; i++ {
		fmt.Fprintf(s.out, "Select a template [%s]: ", catalog[0].ID)

		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			if err == io.EOF && lastErr == nil {
				// EOF with no input at all means take the default
				return catalog.Select("")
			}
			return Template{}, fmt.Errorf("read selection: %w", err)
		}

		tmpl, err := catalog.Select(line)
		if err == nil {
			return tmpl, nil
		}

		lastErr = err
		fmt.Fprintf(s.out, "Invalid selection: %v\n", err)
	}

	return Template{}, fmt.Errorf("no valid selection after %d attempts: %w", s.attempts, lastErr)
}
