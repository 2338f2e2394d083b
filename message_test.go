package reagent

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderTranscript(t *testing.T) {
	messages := []Message{
		{Role: RoleUser, Content: "What is 2+2?"},
		{Role: RoleAssistant, Content: "Thought: easy\nAction: calculator\nAction Input: {\"expression\": \"2+2\"}"},
		{Role: RoleUser, Content: "Observation: 4"},
	}

	got := renderTranscript(messages)
	want := "**user**:\nWhat is 2+2?\n" +
		"\n**assistant**:\nThought: easy\nAction: calculator\nAction Input: {\"expression\": \"2+2\"}\n" +
		"\n**user**:\nObservation: 4\n"

	assert.Equal(t, want, got)
}

func TestRenderTranscript_Empty(t *testing.T) {
	assert.Equal(t, "", renderTranscript(nil))
}
