package diagnostic

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/mattn/go-runewidth"
)

// RenderOptions controls Render.
type RenderOptions struct {
	// Color enables terminal styling.
	Color bool
	// Context prints the offending source line with a caret underline.
	Context bool
}

var (
	errorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF5555"))

	locationStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#BD93F9"))

	gutterStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6272A4"))
)

// ShouldColor reports whether f is a terminal.
func ShouldColor(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Render writes every diagnostic as `file:line:col: error: message`,
// optionally followed by the source line and an underline. The line is
// taken from the span's whole file when the span points into a comment
// body, so comment markers appear as written.
func Render(w io.Writer, diags []Diagnostic, opts RenderOptions) error {
	style := func(s lipgloss.Style, text string) string {
		if opts.Color {
			return s.Render(text)
		}
		return text
	}

	for _, d := range diags {
		var b strings.Builder
		if d.Span.IsValid() {
			b.WriteString(style(locationStyle, d.Span.String()+":"))
			b.WriteString(" ")
		}
		b.WriteString(style(errorStyle, "error:"))
		b.WriteString(" ")
		b.WriteString(d.Message)
		b.WriteString("\n")

		if opts.Context && d.Span.IsValid() {
			b.WriteString(renderContext(d, style))
		}

		if _, err := io.WriteString(w, b.String()); err != nil {
			return fmt.Errorf("failed to write diagnostic: %w", err)
		}
	}
	return nil
}

func renderContext(d Diagnostic, style func(lipgloss.Style, string) string) string {
	src := d.Span.Source()
	pos := d.Span.Position()

	lineNum := fmt.Sprintf("%d", pos.Line)
	gutter := strings.Repeat(" ", len(lineNum))

	line, ok := src.FileLine(pos.Line)
	col := pos.Column
	if !ok {
		// column within this buffer line, not the file line
		line = src.LineText(d.Span.Start())
		col = src.Position(d.Span.Start()).Column
		if pos.Line == src.Line {
			col -= src.Column - 1
		}
	}
	if col-1 > len(line) {
		col = len(line) + 1
	}
	before := line[:col-1]

	covered := d.Span.Text()
	if nl := strings.IndexByte(covered, '\n'); nl >= 0 {
		covered = covered[:nl]
	}
	width := runewidth.StringWidth(covered)
	if width < 1 {
		width = 1
	}

	var b strings.Builder
	b.WriteString(style(gutterStyle, lineNum+" | "))
	b.WriteString(line)
	b.WriteString("\n")
	b.WriteString(style(gutterStyle, gutter+" | "))
	b.WriteString(padFor(before))
	b.WriteString(style(errorStyle, strings.Repeat("^", width)))
	b.WriteString("\n")
	return b.String()
}

// padFor returns white space with the same display width as text, keeping
// tabs so the underline lines up in terminals.
func padFor(text string) string {
	var b strings.Builder
	for _, r := range text {
		if r == '\t' {
			b.WriteByte('\t')
			continue
		}
		b.WriteString(strings.Repeat(" ", runewidth.RuneWidth(r)))
	}
	return b.String()
}
