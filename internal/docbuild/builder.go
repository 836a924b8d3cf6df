package docbuild

import (
	"strings"

	"scribe/internal/logging"
)

// Builder tokenizes canonical markdown line by line. The zero value uses the
// default section vocabulary; AddSection extends it. Build is pure and safe
// for concurrent use.
type Builder struct {
	extra map[string]Subsection
}

// NewBuilder returns a builder with the default vocabulary.
func NewBuilder() *Builder {
	return &Builder{}
}

// AddSection registers an extra recognized H4 subsection title.
func (b *Builder) AddSection(title, icon string) {
	if b.extra == nil {
		b.extra = make(map[string]Subsection)
	}
	b.extra[strings.ToLower(strings.TrimSpace(title))] = Subsection{
		Title: strings.TrimSpace(title),
		Icon:  icon,
	}
}

// Build tokenizes markdown with the default vocabulary.
func Build(markdown string, repl *Replacement) []Block {
	return NewBuilder().Build(markdown, repl)
}

// Build folds every line of markdown through the classifier state machine
// and returns the emitted block sequence. Blocks appear in source order;
// an open list or table is always flushed before a block of a different
// kind. repl may be nil.
func (b *Builder) Build(markdown string, repl *Replacement) []Block {
	lines := strings.Split(markdown, "\n")
	st := buildState{}
	for _, line := range lines {
		st = b.step(st, line, repl)
	}
	st = st.flushList()
	st = st.flushTable()

	logging.Get(logging.CategoryBuild).Debugw("document built",
		"lines", len(lines), "blocks", len(st.blocks))
	if st.blocks == nil {
		return []Block{}
	}
	return st.blocks
}

// buildState is the classifier state threaded through the fold over lines.
// It is passed and returned by value so every transition is explicit.
type buildState struct {
	blocks []Block

	// open list accumulator; listOpen distinguishes "no list" from an
	// open list that has not collected an item yet.
	list     [][]Span
	listOpen bool

	// forcedList treats bare lines as list items after a whitelisted
	// subsection heading. It survives blank-line flushes; only the
	// no-notes sentinel or a new heading ends it.
	forcedList bool

	table *tableAccum

	// skipTitle is the overridden section currently being discarded.
	skipping  bool
	skipTitle string

	firstWorkstreamSeen bool
}

type tableAccum struct {
	headers [][]Span
	rows    []TableRow
}

func (st buildState) flushList() buildState {
	if st.listOpen {
		st.blocks = append(st.blocks, List{Items: st.list})
	}
	st.list = nil
	st.listOpen = false
	return st
}

func (st buildState) flushTable() buildState {
	if st.table != nil {
		st.blocks = append(st.blocks, Table{Headers: st.table.headers, Rows: st.table.rows})
	}
	st.table = nil
	return st
}

func (st buildState) emit(b Block) buildState {
	st.blocks = append(st.blocks, b)
	return st
}

// step classifies one line. Cases are evaluated in fixed priority order;
// the first match wins.
func (b *Builder) step(st buildState, raw string, repl *Replacement) buildState {
	line := strings.TrimSpace(raw)

	// Blank lines terminate any open list or table.
	if line == "" {
		return st.flushList().flushTable()
	}

	// While discarding an overridden section, only the next unrelated
	// major header escapes; it is re-classified from the top. Everything
	// else (including a raw table under the overridden header) is
	// swallowed.
	if st.skipping {
		if title := matchMajorHeader(line); title != "" && !strings.EqualFold(title, st.skipTitle) {
			st.skipping = false
			st.skipTitle = ""
			return b.step(st, raw, repl)
		}
		return st
	}

	// Table rows. A separator row is skipped; the first real row becomes
	// the header row, later ones data rows with an alternating stripe flag
	// (presentation only).
	if strings.HasPrefix(line, "|") {
		st = st.flushList()
		cells := splitTableRow(line)
		if isSeparatorRow(cells) {
			return st
		}
		if st.table == nil {
			st.table = &tableAccum{headers: formatCells(cells)}
			return st
		}
		st.table.rows = append(st.table.rows, TableRow{
			Cells:   formatCells(cells),
			Striped: len(st.table.rows)%2 == 1,
		})
		return st
	}

	// Any non-table line closes an open table.
	st = st.flushTable()

	// The first non-blank line of the document is its H1 title, unless it
	// is the purpose line.
	if len(st.blocks) == 0 && !st.listOpen && !strings.HasPrefix(line, PurposePrefix) {
		return st.emit(Heading{Level: 1, Text: FormatInline(headerTitleOrLine(line))})
	}

	// Major section header, possibly overridden.
	if title := matchMajorHeader(line); title != "" {
		st = st.flushList()
		st.forcedList = false
		st = st.emit(Heading{Level: 2, ID: slugify(title), Text: FormatInline(title)})
		if repl != nil && strings.EqualFold(title, repl.Title) {
			st = st.emit(repl.Block)
			st.skipping = true
			st.skipTitle = repl.Title
		}
		return st
	}

	// Workstream heading. The first one gets the fixed anchor id.
	if strings.HasPrefix(line, WorkstreamGlyph) {
		st = st.flushList()
		st.forcedList = false
		name := strings.TrimSpace(strings.TrimPrefix(line, WorkstreamGlyph))
		id := slugify(name)
		if !st.firstWorkstreamSeen {
			id = FirstWorkstreamAnchor
			st.firstWorkstreamSeen = true
		}
		return st.emit(Heading{Level: 3, ID: id, Text: FormatInline(name)})
	}

	// Whitelisted subsection: H4 plus forced list mode.
	if sec, ok := matchSubsection(line, b.extra); ok {
		st = st.flushList()
		st.forcedList = true
		return st.emit(Heading{Level: 4, Text: FormatInline(sec.Icon + " " + sec.Title)})
	}

	if dividerRe.MatchString(line) {
		st = st.flushList()
		return st.emit(Divider{})
	}

	if strings.HasPrefix(line, PurposePrefix) {
		st = st.flushList()
		text := strings.TrimSpace(strings.TrimPrefix(line, PurposePrefix))
		return st.emit(Paragraph{Text: FormatInline(text)})
	}

	// List items: explicit bullets anywhere, bare lines in forced mode.
	// The no-notes sentinel ends the list even in forced mode and renders
	// as an italic paragraph.
	content, isBullet := matchBullet(line)
	if st.forcedList || isBullet {
		if strings.Contains(strings.ToLower(content), NoNotesSentinel) {
			st = st.flushList()
			st.forcedList = false
			return st.emit(Paragraph{Text: FormatInline(content), Italic: true})
		}
		st.list = append(st.list, FormatInline(content))
		st.listOpen = true
		return st
	}

	st = st.flushList()
	return st.emit(Paragraph{Text: FormatInline(line)})
}

// headerTitleOrLine strips header markup from a title line when present.
func headerTitleOrLine(line string) string {
	if t := matchMajorHeader(line); t != "" {
		return t
	}
	return line
}

func splitTableRow(line string) []string {
	trimmed := strings.TrimPrefix(line, "|")
	trimmed = strings.TrimSuffix(trimmed, "|")
	parts := strings.Split(trimmed, "|")
	cells := make([]string, len(parts))
	for i, p := range parts {
		cells[i] = strings.TrimSpace(p)
	}
	return cells
}

// isSeparatorRow reports a markdown header/body separator: every cell is a
// non-empty run of dashes.
func isSeparatorRow(cells []string) bool {
	for _, c := range cells {
		if c == "" || strings.Trim(c, "-") != "" {
			return false
		}
	}
	return len(cells) > 0
}

func formatCells(cells []string) [][]Span {
	out := make([][]Span, len(cells))
	for i, c := range cells {
		out[i] = FormatInline(c)
	}
	return out
}
