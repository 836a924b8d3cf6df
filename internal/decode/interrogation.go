package decode

import (
	"encoding/json"
	"regexp"

	"scribe/internal/logging"
	"scribe/internal/notes"
)

// FormatErrorAnswer is the displayable answer used when a Q&A response does
// not meet the strict single-fence contract.
const FormatErrorAnswer = "The response did not arrive in the expected format, so the answer could not be read. Please ask again."

var interrogationFenceRe = regexp.MustCompile("(?s)```(?:[Jj][Ss][Oo][Nn])?\\s*(\\{.*?\\})\\s*```")

// interrogationWire uses pointers so missing required fields are
// distinguishable from zero values; a mistyped field fails the unmarshal.
type interrogationWire struct {
	Question            *string   `json:"question"`
	Answer              *string   `json:"answer"`
	NotInTranscript     *bool     `json:"not_in_transcript"`
	FollowUpSuggestions *[]string `json:"follow_up_suggestions"`
}

// DecodeInterrogation decodes a single-turn Q&A response. The contract is
// deliberately stricter than Decode's ladder: exactly one fenced JSON block
// with all four fields, or a sentinel result flagged not-in-transcript that
// the caller can display as an error state. It never returns an error.
func DecodeInterrogation(raw string) notes.InterrogationResult {
	sentinel := notes.InterrogationResult{
		Answer:              FormatErrorAnswer,
		NotInTranscript:     true,
		FollowUpSuggestions: []string{},
	}
	log := logging.Get(logging.CategoryDecode)

	m := interrogationFenceRe.FindStringSubmatch(raw)
	if m == nil {
		log.Debugw("interrogation decode failed", "reason", "no fenced JSON block")
		return sentinel
	}

	var w interrogationWire
	if err := json.Unmarshal([]byte(m[1]), &w); err != nil {
		log.Debugw("interrogation decode failed", "reason", "fence body did not parse", "err", err)
		return sentinel
	}
	if w.Question == nil || w.Answer == nil || w.NotInTranscript == nil || w.FollowUpSuggestions == nil {
		// Keep whatever question we recovered so the caller can echo it.
		if w.Question != nil {
			sentinel.Question = *w.Question
		}
		log.Debugw("interrogation decode failed", "reason", "missing required fields")
		return sentinel
	}

	followUps := *w.FollowUpSuggestions
	if followUps == nil {
		followUps = []string{}
	}
	return notes.InterrogationResult{
		Question:            *w.Question,
		Answer:              *w.Answer,
		NotInTranscript:     *w.NotInTranscript,
		FollowUpSuggestions: followUps,
	}
}
