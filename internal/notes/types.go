// Package notes defines the canonical document shapes the decode and
// docbuild pipeline converge on. Every value here is created fresh per
// decode/build call; nothing persists across calls.
package notes

import "strings"

// Status is the RAG state of an action item.
type Status string

const (
	StatusGreen Status = "GREEN"
	StatusAmber Status = "AMBER"
	StatusRed   Status = "RED"

	// StatusUnspecified covers absent or unrecognized status values.
	StatusUnspecified Status = ""
)

// ParseStatus normalizes a wire status string. Anything outside the fixed
// GREEN/AMBER/RED vocabulary collapses to StatusUnspecified.
func ParseStatus(s string) Status {
	switch Status(strings.ToUpper(strings.TrimSpace(s))) {
	case StatusGreen:
		return StatusGreen
	case StatusAmber:
		return StatusAmber
	case StatusRed:
		return StatusRed
	default:
		return StatusUnspecified
	}
}

// ActionItem is one row of the next-steps table. Order is meaningful
// (display order = source order); there is no identity constraint.
type ActionItem struct {
	Department  string `json:"department"`
	Owner       string `json:"owner"`
	Task        string `json:"task"`
	DueDate     string `json:"due_date"`
	Status      Status `json:"status"`
	StatusNotes string `json:"status_notes"`
}

// CoachMetrics carries the numeric facilitation metrics. Percentages are
// 0-100; DecisionCount is a non-negative integer.
type CoachMetrics struct {
	AgendaCoveragePct     float64 `json:"agenda_coverage_pct"`
	DecisionCount         int     `json:"decision_count"`
	ActionsWithOwnerPct   float64 `json:"actions_with_owner_pct"`
	ActionsWithDueDatePct float64 `json:"actions_with_due_date_pct"`
	TopSpeakerSharePct    float64 `json:"top_speaker_share_pct"`
}

// CoachInsights is the optional facilitation-coaching section. The string
// slices are plain strings here; the decoder flattens the legacy
// {text, emphasis} wire entries before this type is populated.
type CoachInsights struct {
	Strengths        []string        `json:"strengths"`
	Improvements     []string        `json:"improvements"`
	FacilitationTips []string        `json:"facilitation_tips"`
	Metrics          CoachMetrics    `json:"metrics"`
	Flags            map[string]bool `json:"flags"`
}

// Document is the canonical shape every decode strategy converges on.
//
// Invariants: Markdown is always a string (possibly empty, never "absent"),
// and ActionItems/SuggestedQuestions are always non-nil slices, even on
// total decode failure.
type Document struct {
	Markdown           string         `json:"markdown"`
	ActionItems        []ActionItem   `json:"action_items"`
	CoachInsights      *CoachInsights `json:"coach_insights,omitempty"`
	SuggestedQuestions []string       `json:"suggested_questions"`
}

// InterrogationResult is the single-turn Q&A shape. NotInTranscript doubles
// as the error flag for the strict decode contract: a format failure comes
// back as a displayable result with NotInTranscript set, never as an error.
type InterrogationResult struct {
	Question            string   `json:"question"`
	Answer              string   `json:"answer"`
	NotInTranscript     bool     `json:"not_in_transcript"`
	FollowUpSuggestions []string `json:"follow_up_suggestions"`
}
