// Package decode normalizes the raw text returned by the upstream
// generative service into the canonical document shape. The upstream has
// shipped several response formats over time — plain JSON, fenced JSON,
// nested workstream JSON, markdown with a trailing JSON block, and bare
// text — so decoding is an ordered ladder of strategies; the first one that
// claims the input wins and a strategy failure falls through rather than
// propagating. Decode never returns an error: the terminal fallback treats
// the whole input as markdown.
package decode

import (
	"strings"

	"github.com/google/uuid"

	"scribe/internal/docbuild"
	"scribe/internal/logging"
	"scribe/internal/notes"
)

// Result carries the decoded document plus decode metadata.
type Result struct {
	Document notes.Document
	Strategy string
	Warnings []string
	TraceID  string
}

// A strategy inspects the (fence-unwrapped) text and either claims it,
// returning the document, or declines with ok=false so the next strategy
// runs. Keeping these as an explicit ordered list keeps them independently
// testable and safely reorderable.
type strategy struct {
	name string
	fn   func(text string) (notes.Document, []string, bool)
}

var strategies = []strategy{
	{"flat-json", decodeFlatJSON},
	{"workstream-json", decodeWorkstreamJSON},
	{"trailing-json", decodeTrailingJSON},
}

// Decode normalizes raw upstream text into a canonical document. It never
// fails: Markdown is always a string and the slices are always non-nil.
func Decode(raw string) notes.Document {
	return DecodeWithResult(raw).Document
}

// DecodeWithResult is Decode plus strategy metadata and a trace id.
func DecodeWithResult(raw string) Result {
	res := Result{TraceID: uuid.NewString()}
	log := logging.Get(logging.CategoryDecode).With("trace_id", res.TraceID)

	text := unwrapFence(strings.TrimSpace(raw))
	for _, s := range strategies {
		doc, warns, ok := s.fn(text)
		if !ok {
			continue
		}
		res.Document = doc
		res.Strategy = s.name
		res.Warnings = warns
		log.Debugw("response decoded", "strategy", s.name,
			"action_items", len(doc.ActionItems), "warnings", len(warns))
		return res
	}

	// No JSON anywhere: the whole response is markdown.
	res.Strategy = "raw-markdown"
	res.Document = notes.Document{
		Markdown:           text,
		ActionItems:        []notes.ActionItem{},
		SuggestedQuestions: []string{},
	}
	log.Debugw("response decoded", "strategy", res.Strategy)
	return res
}

// unwrapFence strips a code fence that wraps the entire response, info
// string included. Partial fences are left alone for the trailing-JSON
// strategy.
func unwrapFence(text string) string {
	if len(text) < 6 || !strings.HasPrefix(text, "```") || !strings.HasSuffix(text, "```") {
		return text
	}
	inner := strings.TrimSuffix(strings.TrimPrefix(text, "```"), "```")
	if strings.Contains(inner, "```") {
		// Interior fences: this is not one wrapper around the whole
		// response.
		return text
	}
	if nl := strings.IndexByte(inner, '\n'); nl >= 0 {
		inner = inner[nl+1:]
	} else {
		// Single-line fence: whatever follows the backticks is content
		// unless it was only an info string.
		inner = strings.TrimPrefix(inner, "json")
	}
	return strings.TrimSpace(inner)
}

// decodeFlatJSON handles the current flat format: one JSON object with a
// top-level markdown field and optional structured siblings.
func decodeFlatJSON(text string) (notes.Document, []string, bool) {
	if !looksLikeObject(text) {
		return notes.Document{}, nil, false
	}
	p, err := parsePayload(text)
	if err != nil || p.Markdown == nil {
		return notes.Document{}, nil, false
	}
	return p.document(*p.Markdown), nil, true
}

// decodeWorkstreamJSON handles the structured format that predates the flat
// one: a meeting title plus per-workstream notes. The markdown is
// synthesized in the builder's vocabulary; action items are not inlined as
// a literal table — only the NEXT STEPS marker is emitted, since the table
// is supplied separately at render time.
func decodeWorkstreamJSON(text string) (notes.Document, []string, bool) {
	if !looksLikeObject(text) {
		return notes.Document{}, nil, false
	}
	p, err := parsePayload(text)
	if err != nil || p.MeetingTitle == "" || p.Workstreams == nil {
		return notes.Document{}, nil, false
	}
	return p.document(synthesizeMarkdown(p)), nil, true
}

// workstreamSections fixes the order and naming of the three per-workstream
// subsections.
var workstreamSections = []struct {
	heading string
	items   func(ws *wireWorkstream) []flexString
}{
	{"💬 Key Discussion Points", func(ws *wireWorkstream) []flexString { return ws.KeyDiscussionPoints }},
	{"✅ Decisions Made", func(ws *wireWorkstream) []flexString { return ws.DecisionsMade }},
	{"⚠️ Risks / Open Questions", func(ws *wireWorkstream) []flexString { return ws.RisksOrOpenQuestions }},
}

func synthesizeMarkdown(p *wirePayload) string {
	var b strings.Builder
	b.WriteString(strings.TrimSpace(p.MeetingTitle))
	b.WriteString("\n")
	if purpose := strings.TrimSpace(p.MeetingPurpose); purpose != "" {
		b.WriteString("\n")
		b.WriteString(docbuild.PurposePrefix)
		b.WriteString(" ")
		b.WriteString(purpose)
		b.WriteString("\n")
	}
	for i := range p.Workstreams {
		ws := &p.Workstreams[i]
		b.WriteString("\n")
		b.WriteString(docbuild.WorkstreamGlyph)
		b.WriteString(" ")
		b.WriteString(strings.TrimSpace(string(ws.Name)))
		b.WriteString("\n")
		for _, sec := range workstreamSections {
			b.WriteString(sec.heading)
			b.WriteString("\n")
			wrote := false
			for _, item := range sec.items(ws) {
				if s := strings.TrimSpace(string(item)); s != "" {
					b.WriteString("- ")
					b.WriteString(s)
					b.WriteString("\n")
					wrote = true
				}
			}
			if !wrote {
				b.WriteString("No notes for this section.\n")
			}
		}
	}
	if len(p.NextSteps) > 0 {
		// Marker only; the rendered table replaces this section.
		b.WriteString("\n## ")
		b.WriteString(docbuild.NextStepsTitle)
		b.WriteString("\n")
	}
	return b.String()
}

// decodeTrailingJSON handles the legacy markdown body followed by a JSON
// block. When a candidate block is found but does not parse, it is still
// stripped from the markdown — partial JSON must never reach the reader —
// and the structured fields stay empty.
func decodeTrailingJSON(text string) (notes.Document, []string, bool) {
	candidate, start, ok := findTrailingFencedJSON(text)
	if !ok {
		candidate, start, ok = findKeyBracketedJSON(text, actionItemsKey)
	}
	if !ok {
		return notes.Document{}, nil, false
	}

	markdown := strings.TrimSpace(text[:start])
	p, err := parsePayload(candidate)
	if err != nil {
		return notes.Document{
			Markdown:           markdown,
			ActionItems:        []notes.ActionItem{},
			SuggestedQuestions: []string{},
		}, []string{"trailing JSON block did not parse; stripped from markdown"}, true
	}
	if markdown == "" && p.Markdown != nil {
		markdown = strings.TrimSpace(*p.Markdown)
	}
	return p.document(markdown), nil, true
}

func looksLikeObject(text string) bool {
	return strings.HasPrefix(text, "{") && strings.HasSuffix(text, "}")
}
