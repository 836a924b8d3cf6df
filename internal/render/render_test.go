package render

import (
	"strings"
	"testing"

	"scribe/internal/docbuild"
	"scribe/internal/notes"
)

func span(text string) []docbuild.Span { return []docbuild.Span{{Text: text}} }

func TestRender_AllBlockKinds(t *testing.T) {
	blocks := []docbuild.Block{
		docbuild.Heading{Level: 1, Text: span("Team Sync")},
		docbuild.Paragraph{Text: span("align on launch")},
		docbuild.List{Items: [][]docbuild.Span{span("one"), span("two")}},
		docbuild.RenderActionItemTable([]notes.ActionItem{{Owner: "Casey", Task: "Mock"}}, false),
		docbuild.Divider{},
		docbuild.Paragraph{Text: span("No notes for this section."), Italic: true},
	}

	out := New(0).Render(blocks)
	for _, want := range []string{"Team Sync", "align on launch", "• one", "• two", "Casey", "Owner", "─"} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRender_BlockOrderPreserved(t *testing.T) {
	blocks := []docbuild.Block{
		docbuild.Heading{Level: 2, Text: span("FIRST")},
		docbuild.Paragraph{Text: span("second")},
		docbuild.Heading{Level: 2, Text: span("THIRD")},
	}
	out := New(0).Render(blocks)
	if !(strings.Index(out, "FIRST") < strings.Index(out, "second") &&
		strings.Index(out, "second") < strings.Index(out, "THIRD")) {
		t.Fatalf("blocks rendered out of order:\n%s", out)
	}
}

func TestRender_TableColumnsAligned(t *testing.T) {
	table := docbuild.Table{
		Headers: [][]docbuild.Span{span("A"), span("Long Header")},
		Rows: []docbuild.TableRow{
			{Cells: [][]docbuild.Span{span("value-wider-than-header"), span("x")}},
		},
	}
	out := New(0).Render([]docbuild.Block{table})
	if !strings.Contains(out, "value-wider-than-header") {
		t.Fatalf("row cell missing:\n%s", out)
	}
}

func TestMarkdown_PlainFallbackOnRendererTrouble(t *testing.T) {
	// Whatever glamour does with this, the caller must get a string back.
	out := Markdown("# Title\n\nsome **bold** text", 60)
	if out == "" {
		t.Fatal("empty render output")
	}
}
