package output

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"
)

const (
	fontName  = "Times New Roman"
	fontSize  = 13
	titleSize = 16
	// sentences per transcript paragraph
	paragraphSentences = 5
)

var (
	reBullet   = regexp.MustCompile(`^[\-\*]\s+(.+)$`)
	reSentence = regexp.MustCompile(`[^.!?]+[.!?]*\s*`)
)

// Report is the content of an exported summary document.
type Report struct {
	Title      string
	Summary    string
	Transcript string
}

// WriteDocx renders r as a Word document at path.
func WriteDocx(path string, r Report) error {
	doc, err := godocx.NewDocument()
	if err != nil {
		return fmt.Errorf("create document: %w", err)
	}

	addRun(doc.AddParagraph(""), r.Title, true, titleSize)

	addRun(doc.AddParagraph(""), "Summary", true, fontSize+1)
	for _, line := range strings.Split(r.Summary, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if m := reBullet.FindStringSubmatch(line); m != nil {
			line = "• " + m[1]
		}
		addRun(doc.AddParagraph(""), line, false, fontSize)
	}

	if r.Transcript != "" {
		addRun(doc.AddParagraph(""), "Transcript", true, fontSize+1)
		for _, para := range paragraphs(r.Transcript, paragraphSentences) {
			addRun(doc.AddParagraph(""), para, false, fontSize)
		}
	}

	if err := doc.SaveTo(path); err != nil {
		return fmt.Errorf("save document: %w", err)
	}
	return nil
}

// paragraphs groups the sentences of text into blocks of n.
func paragraphs(text string, n int) []string {
	sentences := reSentence.FindAllString(text, -1)
	var (
		out     []string
		current strings.Builder
		count   int
	)
	for _, s := range sentences {
		current.WriteString(s)
		count++
		if count == n {
			out = append(out, strings.TrimSpace(current.String()))
			current.Reset()
			count = 0
		}
	}
	if rest := strings.TrimSpace(current.String()); rest != "" {
		out = append(out, rest)
	}
	return out
}

func addRun(p *docx.Paragraph, text string, bold bool, size uint64) {
	run := p.AddText(text).Font(fontName).Size(size).Color("000000")
	if bold {
		run.Bold(true)
	}
}
