// Package render maps a block sequence onto styled terminal output. It is a
// thin consumer of docbuild; all document semantics live upstream of it.
package render

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"scribe/internal/docbuild"
	"scribe/internal/logging"
)

// Styles groups the lipgloss styles used for each block kind.
type Styles struct {
	Title      lipgloss.Style
	Section    lipgloss.Style
	Workstream lipgloss.Style
	Subsection lipgloss.Style
	Bold       lipgloss.Style
	Italic     lipgloss.Style
	TableHead  lipgloss.Style
	Stripe     lipgloss.Style
	Divider    lipgloss.Style
}

// DefaultStyles returns the standard scribe palette.
func DefaultStyles() Styles {
	return Styles{
		Title:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")).MarginBottom(1),
		Section:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14")),
		Workstream: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10")),
		Subsection: lipgloss.NewStyle().Bold(true),
		Bold:       lipgloss.NewStyle().Bold(true),
		Italic:     lipgloss.NewStyle().Italic(true).Faint(true),
		TableHead:  lipgloss.NewStyle().Bold(true).Underline(true),
		Stripe:     lipgloss.NewStyle().Faint(true),
		Divider:    lipgloss.NewStyle().Faint(true),
	}
}

// Renderer writes blocks as styled terminal text.
type Renderer struct {
	styles Styles
	width  int
}

// New returns a renderer. width of 0 disables wrapping.
func New(width int) *Renderer {
	return &Renderer{styles: DefaultStyles(), width: width}
}

// Render produces the terminal string for a block sequence.
func (r *Renderer) Render(blocks []docbuild.Block) string {
	var out strings.Builder
	for _, b := range blocks {
		switch v := b.(type) {
		case docbuild.Heading:
			out.WriteString(r.heading(v))
		case docbuild.Paragraph:
			out.WriteString(r.paragraph(v))
		case docbuild.List:
			out.WriteString(r.list(v))
		case docbuild.Table:
			out.WriteString(r.table(v))
		case docbuild.Divider:
			out.WriteString(r.styles.Divider.Render(strings.Repeat("─", r.ruleWidth())))
			out.WriteString("\n")
		}
		out.WriteString("\n")
	}
	logging.Get(logging.CategoryRender).Debugw("blocks rendered", "blocks", len(blocks))
	return out.String()
}

func (r *Renderer) ruleWidth() int {
	if r.width > 0 {
		return r.width
	}
	return 40
}

func (r *Renderer) heading(h docbuild.Heading) string {
	text := r.spans(h.Text)
	switch h.Level {
	case 1:
		return r.styles.Title.Render(text) + "\n"
	case 2:
		return r.styles.Section.Render(text) + "\n"
	case 3:
		return r.styles.Workstream.Render(text) + "\n"
	default:
		return r.styles.Subsection.Render(text) + "\n"
	}
}

func (r *Renderer) paragraph(p docbuild.Paragraph) string {
	if p.Italic {
		return r.styles.Italic.Render(plainText(p.Text)) + "\n"
	}
	return r.spans(p.Text) + "\n"
}

func (r *Renderer) list(l docbuild.List) string {
	var b strings.Builder
	for _, item := range l.Items {
		b.WriteString("  • ")
		b.WriteString(r.spans(item))
		b.WriteString("\n")
	}
	return b.String()
}

func (r *Renderer) table(t docbuild.Table) string {
	widths := columnWidths(t)
	var b strings.Builder
	b.WriteString(r.styles.TableHead.Render(row(t.Headers, widths)))
	b.WriteString("\n")
	for _, tr := range t.Rows {
		line := row(tr.Cells, widths)
		if tr.Striped {
			line = r.styles.Stripe.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

func (r *Renderer) spans(spans []docbuild.Span) string {
	var b strings.Builder
	for _, s := range spans {
		if s.Bold {
			b.WriteString(r.styles.Bold.Render(s.Text))
		} else {
			b.WriteString(s.Text)
		}
	}
	return b.String()
}

func plainText(spans []docbuild.Span) string {
	var b strings.Builder
	for _, s := range spans {
		b.WriteString(s.Text)
	}
	return b.String()
}

func columnWidths(t docbuild.Table) []int {
	widths := make([]int, len(t.Headers))
	measure := func(cells [][]docbuild.Span) {
		for i, c := range cells {
			if i >= len(widths) {
				break
			}
			if w := lipgloss.Width(plainText(c)); w > widths[i] {
				widths[i] = w
			}
		}
	}
	measure(t.Headers)
	for _, tr := range t.Rows {
		measure(tr.Cells)
	}
	return widths
}

func row(cells [][]docbuild.Span, widths []int) string {
	parts := make([]string, 0, len(widths))
	for i, w := range widths {
		text := ""
		if i < len(cells) {
			text = plainText(cells[i])
		}
		parts = append(parts, lipgloss.NewStyle().Width(w).Render(text))
	}
	return strings.Join(parts, "  ")
}

// Markdown renders canonical markdown through glamour for the --markdown
// preview mode. glamour can panic on hostile input, so recover to plain
// text.
func Markdown(markdown string, width int) (out string) {
	defer func() {
		if rec := recover(); rec != nil {
			logging.Get(logging.CategoryRender).Warnw("glamour panicked; falling back to plain text", "panic", rec)
			out = markdown
		}
	}()

	opts := []glamour.TermRendererOption{glamour.WithAutoStyle()}
	if width > 0 {
		opts = append(opts, glamour.WithWordWrap(width))
	}
	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return markdown
	}
	rendered, err := r.Render(markdown)
	if err != nil {
		return markdown
	}
	return rendered
}
