package decode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeInterrogation_WellFormed(t *testing.T) {
	raw := "Here is the answer:\n```json\n{\"question\": \"Who owns QA?\", \"answer\": \"Riley does.\", \"not_in_transcript\": false, \"follow_up_suggestions\": [\"When was that decided?\"]}\n```"

	res := DecodeInterrogation(raw)
	assert.Equal(t, "Who owns QA?", res.Question)
	assert.Equal(t, "Riley does.", res.Answer)
	assert.False(t, res.NotInTranscript)
	assert.Equal(t, []string{"When was that decided?"}, res.FollowUpSuggestions)
}

func TestDecodeInterrogation_NotInTranscript(t *testing.T) {
	raw := "```json\n{\"question\": \"Q\", \"answer\": \"That was not discussed.\", \"not_in_transcript\": true, \"follow_up_suggestions\": []}\n```"
	res := DecodeInterrogation(raw)
	assert.True(t, res.NotInTranscript)
	assert.Equal(t, "That was not discussed.", res.Answer)
}

func TestDecodeInterrogation_NoFence(t *testing.T) {
	res := DecodeInterrogation("no fence here")
	assert.True(t, res.NotInTranscript)
	assert.NotEmpty(t, res.Answer)
	require.NotNil(t, res.FollowUpSuggestions)
}

func TestDecodeInterrogation_MalformedFenceBody(t *testing.T) {
	res := DecodeInterrogation("```json\n{not valid json\n```")
	assert.True(t, res.NotInTranscript)
	assert.Equal(t, FormatErrorAnswer, res.Answer)
}

func TestDecodeInterrogation_MissingFieldKeepsQuestion(t *testing.T) {
	raw := "```json\n{\"question\": \"Who owns QA?\", \"answer\": \"Riley.\"}\n```"
	res := DecodeInterrogation(raw)
	assert.True(t, res.NotInTranscript)
	assert.Equal(t, FormatErrorAnswer, res.Answer)
	assert.Equal(t, "Who owns QA?", res.Question)
}

func TestDecodeInterrogation_MistypedField(t *testing.T) {
	raw := "```json\n{\"question\": \"Q\", \"answer\": \"A\", \"not_in_transcript\": \"yes\", \"follow_up_suggestions\": []}\n```"
	res := DecodeInterrogation(raw)
	assert.True(t, res.NotInTranscript)
	assert.Equal(t, FormatErrorAnswer, res.Answer)
}

func TestDecodeInterrogation_NullSuggestionsCountAsMissing(t *testing.T) {
	raw := "```json\n{\"question\": \"Q\", \"answer\": \"A\", \"not_in_transcript\": false, \"follow_up_suggestions\": null}\n```"
	res := DecodeInterrogation(raw)
	assert.True(t, res.NotInTranscript)
	assert.Equal(t, FormatErrorAnswer, res.Answer)
}

func TestDecodeInterrogation_NoMultiStrategyLadder(t *testing.T) {
	// A bare JSON object that Decode would happily accept must still fail
	// the strict single-fence contract.
	raw := `{"question": "Q", "answer": "A", "not_in_transcript": false, "follow_up_suggestions": []}`
	res := DecodeInterrogation(raw)
	assert.True(t, res.NotInTranscript)
	assert.Equal(t, FormatErrorAnswer, res.Answer)
}
