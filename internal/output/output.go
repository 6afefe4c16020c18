package output

import (
	"fmt"
	"io"
	"time"
)

type Formatter struct {
	w io.Writer
}

func NewFormatter(w io.Writer) *Formatter {
	return &Formatter{w: w}
}

func (f *Formatter) Banner() {
	fmt.Fprintf(f.w, "🎧 Audio Summarizer\n")
}

func (f *Formatter) Menu() {
	fmt.Fprintf(f.w, "\n1. Process audio file\n2. Exit\n")
}

func (f *Formatter) PromptChoice() {
	fmt.Fprintf(f.w, "Enter your choice (1-2): ")
}

func (f *Formatter) PromptPath() {
	fmt.Fprintf(f.w, "Enter the path to the audio file: ")
}

func (f *Formatter) FileNotFound() {
	fmt.Fprintf(f.w, "Error: File does not exist.\n")
}

func (f *Formatter) InvalidChoice() {
	fmt.Fprintf(f.w, "Invalid choice. Please try again.\n")
}

func (f *Formatter) Goodbye() {
	fmt.Fprintf(f.w, "Goodbye!\n")
}

func (f *Formatter) Transcribing(path string) {
	fmt.Fprintf(f.w, "📝 Transcribing %s...\n", path)
}

func (f *Formatter) NoSpeech() {
	fmt.Fprintf(f.w, "⚠️  No speech recognized, nothing to summarize.\n")
}

func (f *Formatter) Transcript(text string) {
	fmt.Fprintf(f.w, "\nTranscript:\n%s\n", text)
}

func (f *Formatter) Summarizing() {
	fmt.Fprintf(f.w, "\n🤖 Generating summary...\n")
}

func (f *Formatter) Summary(text string) {
	fmt.Fprintf(f.w, "\nSummary:\n%s\n", text)
}

func (f *Formatter) Saved(path string) {
	fmt.Fprintf(f.w, "✅ Summary saved: %s\n", path)
}

func (f *Formatter) Finished(count int, duration time.Duration) {
	fmt.Fprintf(f.w, "\n📁 Processed %d file(s) in %s\n", count, formatDuration(duration))
}

func (f *Formatter) Error(msg string) {
	fmt.Fprintf(f.w, "❌ %s\n", msg)
}

func (f *Formatter) Info(msg string) {
	fmt.Fprintf(f.w, "ℹ️  %s\n", msg)
}

func (f *Formatter) Success(msg string) {
	fmt.Fprintf(f.w, "✅ %s\n", msg)
}

func (f *Formatter) Warning(msg string) {
	fmt.Fprintf(f.w, "⚠️  %s\n", msg)
}

func (f *Formatter) SetupCheck(name string, ok bool, detail string) {
	if ok {
		fmt.Fprintf(f.w, "  ✅ %s: %s\n", name, detail)
	} else {
		fmt.Fprintf(f.w, "  ❌ %s: %s\n", name, detail)
	}
}

func formatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	h := d / time.Hour
	d -= h * time.Hour
	m := d / time.Minute
	d -= m * time.Minute
	s := d / time.Second

	if h > 0 {
		return fmt.Sprintf("%dh%02dm%02ds", h, m, s)
	}
	if m > 0 {
		return fmt.Sprintf("%dm%02ds", m, s)
	}
	return fmt.Sprintf("%ds", s)
}
