// Package tt provides test support shared by the package tests: a scripted
// transport standing in for a live model, and diff helpers for multi-line
// comparisons.
package tt

import (
	"context"
	"fmt"

	"github.com/rickchristie/reagent"
)

// -----------------------------------------------------------------------------
// ScriptedTransport - implements reagent.Transport
// -----------------------------------------------------------------------------

// ScriptedTransport is a configurable fake that implements reagent.Transport.
// Queue replies and errors in the order the test expects the agent to call
// Chat; each call consumes the next entry.
type ScriptedTransport struct {
	replies   []*reagent.ChatResponse
	errors    []error
	callCount int

	// CapturedMessages stores the message history passed to each Chat
	// call. Populated automatically on every call.
	CapturedMessages [][]reagent.Message
}

// NewScriptedTransport creates an empty ScriptedTransport.
func NewScriptedTransport() *ScriptedTransport {
	return &ScriptedTransport{}
}

// AddReply queues a reply with the given text and token counts.
func (s *ScriptedTransport) AddReply(text string, inputTokens, outputTokens int) *ScriptedTransport {
	s.replies = append(s.replies, &reagent.ChatResponse{
		Text: text,
		Usage: &reagent.Usage{
			InputTokens:  inputTokens,
			OutputTokens: outputTokens,
			TotalTokens:  inputTokens + outputTokens,
		},
	})
	return s
}

// AddRawReply queues a raw ChatResponse. Use this when you need full control
// over the response structure (e.g., nil Usage).
func (s *ScriptedTransport) AddRawReply(resp *reagent.ChatResponse) *ScriptedTransport {
	s.replies = append(s.replies, resp)
	return s
}

// AddError queues an error for the call slot after everything queued so far.
func (s *ScriptedTransport) AddError(err error) *ScriptedTransport {
	// Pad errors with nils so the new error lines up with its call index.
	for len(s.errors) < len(s.replies) {
		s.errors = append(s.errors, nil)
	}
	s.errors = append(s.errors, err)
	s.replies = append(s.replies, nil)
	return s
}

// CallCount returns the number of times Chat has been called.
func (s *ScriptedTransport) CallCount() int {
	return s.callCount
}

// Chat implements reagent.Transport.
func (s *ScriptedTransport) Chat(ctx context.Context, messages []reagent.Message) (*reagent.ChatResponse, error) {
	idx := s.callCount
	s.callCount++

	// Capture a snapshot; the agent mutates its history slice between calls.
	snapshot := make([]reagent.Message, len(messages))
	copy(snapshot, messages)
	s.CapturedMessages = append(s.CapturedMessages, snapshot)

	if idx < len(s.errors) && s.errors[idx] != nil {
		return nil, s.errors[idx]
	}

	if idx < len(s.replies) && s.replies[idx] != nil {
		return s.replies[idx], nil
	}
	return nil, fmt.Errorf("scripted transport exhausted after %d replies", len(s.replies))
}

// Compile-time check that ScriptedTransport implements reagent.Transport.
var _ reagent.Transport = (*ScriptedTransport)(nil)

// -----------------------------------------------------------------------------
// Reply builders
// -----------------------------------------------------------------------------

// Directive formats a well-formed model reply invoking the named tool with a
// raw JSON argument payload.
func Directive(thought, action, inputJSON string) string {
	return fmt.Sprintf("Thought: %s\nAction: %s\nAction Input: %s", thought, action, inputJSON)
}

// AnswerDirective formats a well-formed terminal reply carrying the given
// answer text.
func AnswerDirective(reply string) string {
	return Directive(
		"I can answer without using any more tools.",
		"answer",
		fmt.Sprintf(`{"reply": %q}`, reply),
	)
}
