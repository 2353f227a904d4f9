package summarizer

import (
	"regexp"
	"strings"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"
)

const (
	fontName = "Calibri"
	fontSize = 12
)

var reBold = regexp.MustCompile(`\*\*(.+?)\*\*`)

// ExportDocx writes the highlight summary as a styled docx: a bold title
// followed by the numbered moment lines.
func ExportDocx(title, summary, outputPath string) error {
	doc, err := godocx.NewDocument()
	if err != nil {
		return err
	}

	titleRun := doc.AddParagraph("").AddText(title).Font(fontName).Size(16).Color("000000")
	titleRun.Bold(true)
	doc.AddParagraph("")

	for _, line := range strings.Split(summary, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || trimmed == "---" {
			continue
		}

		addRichText(doc.AddParagraph(""), trimmed)
	}

	return doc.SaveTo(outputPath)
}

// addRichText splits **bold** markers into separate styled runs.
func addRichText(p *docx.Paragraph, text string) {
	parts := reBold.Split(text, -1)
	matches := reBold.FindAllStringSubmatch(text, -1)

	for i, part := range parts {
		if part != "" {
			p.AddText(stripInlineMarkers(part)).Font(fontName).Size(fontSize).Color("000000")
		}
		if i < len(matches) {
			p.AddText(stripInlineMarkers(matches[i][1])).Font(fontName).Size(fontSize).Color("000000").Bold(true)
		}
	}
}

func stripInlineMarkers(s string) string {
	s = strings.ReplaceAll(s, "**", "")
	s = strings.ReplaceAll(s, "__", "")
	s = strings.ReplaceAll(s, "`", "")
	return s
}
