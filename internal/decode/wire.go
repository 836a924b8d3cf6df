package decode

import (
	"bytes"
	"encoding/json"

	"scribe/internal/notes"
)

// Wire shapes for the historically accumulated response formats. Every field
// is optional; which ones are populated decides which strategy claims the
// payload.

// actionItemsKey is the JSON key the legacy trailing-JSON heuristic anchors
// on.
const actionItemsKey = `"next_steps"`

type wirePayload struct {
	Markdown *string `json:"markdown"`

	// Nested workstream format.
	MeetingTitle   string           `json:"meeting_title"`
	MeetingPurpose string           `json:"meeting_purpose"`
	Workstreams    []wireWorkstream `json:"workstreams"`

	NextSteps          []wireActionItem   `json:"next_steps"`
	CoachInsights      *wireCoachInsights `json:"coach_insights"`
	SuggestedQuestions []any              `json:"suggested_questions"`
}

type wireWorkstream struct {
	Name                 flexString   `json:"name"`
	KeyDiscussionPoints  []flexString `json:"key_discussion_points"`
	DecisionsMade        []flexString `json:"decisions_made"`
	RisksOrOpenQuestions []flexString `json:"risks_or_open_questions"`
}

type wireActionItem struct {
	Department  flexString `json:"department"`
	Owner       flexString `json:"owner"`
	Task        flexString `json:"task"`
	DueDate     flexString `json:"due_date"`
	Status      flexString `json:"status"`
	StatusNotes flexString `json:"status_notes"`
}

type wireCoachInsights struct {
	Strengths        []flexString       `json:"strengths"`
	Improvements     []flexString       `json:"improvements"`
	FacilitationTips []flexString       `json:"facilitation_tips"`
	Metrics          notes.CoachMetrics `json:"metrics"`
	Flags            map[string]bool    `json:"flags"`
}

// flexString absorbs the {text, emphasis}-or-plain-string duality left over
// from an upstream wire-format change. A string passes through, an object is
// replaced by its "text" property, anything else is stringified. It never
// fails, so one odd entry cannot sink a whole strategy.
type flexString string

func (f *flexString) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*f = flexString(s)
		return nil
	}
	var obj struct {
		Text *string `json:"text"`
	}
	if err := json.Unmarshal(data, &obj); err == nil && obj.Text != nil {
		*f = flexString(*obj.Text)
		return nil
	}
	*f = flexString(bytes.TrimSpace(data))
	return nil
}

func parsePayload(text string) (*wirePayload, error) {
	var p wirePayload
	if err := json.Unmarshal([]byte(text), &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (p *wirePayload) actionItems() []notes.ActionItem {
	items := make([]notes.ActionItem, 0, len(p.NextSteps))
	for _, w := range p.NextSteps {
		items = append(items, notes.ActionItem{
			Department:  string(w.Department),
			Owner:       string(w.Owner),
			Task:        string(w.Task),
			DueDate:     string(w.DueDate),
			Status:      notes.ParseStatus(string(w.Status)),
			StatusNotes: string(w.StatusNotes),
		})
	}
	return items
}

func (p *wirePayload) coachInsights() *notes.CoachInsights {
	if p.CoachInsights == nil {
		return nil
	}
	return &notes.CoachInsights{
		Strengths:        flattenStrings(p.CoachInsights.Strengths),
		Improvements:     flattenStrings(p.CoachInsights.Improvements),
		FacilitationTips: flattenStrings(p.CoachInsights.FacilitationTips),
		Metrics:          p.CoachInsights.Metrics,
		Flags:            p.CoachInsights.Flags,
	}
}

// suggestedQuestions keeps string entries only; anything else on the wire is
// discarded rather than coerced.
func (p *wirePayload) suggestedQuestions() []string {
	out := make([]string, 0, len(p.SuggestedQuestions))
	for _, q := range p.SuggestedQuestions {
		if s, ok := q.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// document assembles the canonical shape, honoring the always-non-nil slice
// invariants.
func (p *wirePayload) document(markdown string) notes.Document {
	return notes.Document{
		Markdown:           markdown,
		ActionItems:        p.actionItems(),
		CoachInsights:      p.coachInsights(),
		SuggestedQuestions: p.suggestedQuestions(),
	}
}

func flattenStrings(in []flexString) []string {
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = string(s)
	}
	return out
}
