package writer

import (
	"fmt"
	"strings"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"
)

const (
	fontName = "Times New Roman"
	fontSize = 13
)

// writeDocx renders the transcript as a styled docx: a bold title run,
// the metadata header, then one paragraph per blank-line-separated block
// of the transcribed text.
func (w *implWriter) writeDocx(outPath, sourceName, text string) error {
	doc, err := godocx.NewDocument()
	if err != nil {
		return err
	}

	addRun(doc.AddParagraph(""), fmt.Sprintf("Transcription of %s", sourceName), true, 16)
	addRun(doc.AddParagraph(""), fmt.Sprintf("Generated using %s at %s", w.model, w.now().Format(timestampLayout)), false, fontSize)
	doc.AddParagraph("")

	for _, block := range strings.Split(text, "\n\n") {
		block = strings.TrimSpace(block)
		if block == "" {
			continue
		}
		// Keep single newlines inside a block as plain spaces
		addRun(doc.AddParagraph(""), strings.Join(strings.Fields(block), " "), false, fontSize)
	}

	return doc.SaveTo(outPath)
}

func addRun(p *docx.Paragraph, text string, bold bool, size uint64) {
	run := p.AddText(text).Font(fontName).Size(size).Color("000000")
	if bold {
		run.Bold(true)
	}
}
