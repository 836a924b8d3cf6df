// Package docbuild turns canonical meeting-notes markdown into an ordered
// sequence of typed, renderable blocks. It covers the closed vocabulary of
// section markers, glyph bullets, and inline emphasis the upstream agent is
// instructed to produce, and degrades to plain paragraphs when it does not
// comply. It is not a general-purpose markdown converter.
package docbuild

import "encoding/json"

// Span is one run of text with uniform styling.
type Span struct {
	Text string `json:"text"`
	Bold bool   `json:"bold,omitempty"`
}

// Block is one typed, renderable unit of the tokenized document. The
// concrete types are Heading, Paragraph, List, Table, and Divider. Blocks
// are immutable once emitted; the sequence is the sole output of Build.
type Block interface {
	blockType() string
}

// Heading levels: 1 document title, 2 major section, 3 workstream,
// 4 whitelisted subsection.
type Heading struct {
	Level int    `json:"level"`
	ID    string `json:"id,omitempty"`
	Text  []Span `json:"text"`
}

// Paragraph is a run of free text. Italic marks the no-notes sentinel.
type Paragraph struct {
	Text   []Span `json:"text"`
	Italic bool   `json:"italic,omitempty"`
}

// List is a flat bullet list.
type List struct {
	Items [][]Span `json:"items"`
}

// TableRow is one data row. Striped alternates for presentation only; it
// carries no data meaning.
type TableRow struct {
	Cells   [][]Span `json:"cells"`
	Striped bool     `json:"striped,omitempty"`
}

// Table is a header row plus zero or more data rows.
type Table struct {
	Headers [][]Span   `json:"headers"`
	Rows    []TableRow `json:"rows"`
}

// Divider is a horizontal rule.
type Divider struct{}

func (Heading) blockType() string   { return "heading" }
func (Paragraph) blockType() string { return "paragraph" }
func (List) blockType() string      { return "list" }
func (Table) blockType() string     { return "table" }
func (Divider) blockType() string   { return "divider" }

// Replacement overrides the rendering of one named section: when Build meets
// a major header whose title matches Title, it emits Block in place of the
// section's raw content and discards the source lines that belonged to it.
type Replacement struct {
	Title string
	Block Block
}

type blockEnvelope struct {
	Type string `json:"type"`
	Data Block  `json:"data"`
}

// EncodeBlocks marshals a block sequence as a JSON array tagged with a
// "type" discriminator per element.
func EncodeBlocks(blocks []Block) ([]byte, error) {
	envs := make([]blockEnvelope, len(blocks))
	for i, b := range blocks {
		envs[i] = blockEnvelope{Type: b.blockType(), Data: b}
	}
	return json.MarshalIndent(envs, "", "  ")
}
