package reagent

import (
	"context"
)

// Transport is the model boundary. Implementations deliver a full message
// history to an LLM provider and return the assistant's raw text reply.
//
// The agent treats the transport as a black box: it never inspects provider
// payloads, only the returned text. A transport failure is the one fault the
// agent does not recover from locally; Task wraps it and returns it to the
// caller.
//
// Provider selection (model name, server URL, API keys) is fixed when the
// transport is constructed, not per call. See the models package for
// LangChainGo-backed implementations.
type Transport interface {
	// Chat sends the messages to the model and returns its reply.
	// The slice is ordered oldest first, with the system prompt at index 0.
	Chat(ctx context.Context, messages []Message) (*ChatResponse, error)
}

// ChatResponse is the reply from a single Chat call.
type ChatResponse struct {
	// Text is the assistant's raw textual reply, unparsed.
	Text string

	// Usage contains normalized token counts for this call.
	// May be nil when the provider reports none.
	Usage *Usage
}

// Usage holds token counts normalized across providers.
type Usage struct {
	// InputTokens is the number of input/prompt tokens used.
	InputTokens int

	// OutputTokens is the number of output/completion tokens generated.
	OutputTokens int

	// TotalTokens is the total token count (InputTokens + OutputTokens).
	// Some providers return this directly; otherwise it's computed.
	TotalTokens int
}

// Add accumulates other's counts into u. A nil other is a no-op.
func (u *Usage) Add(other *Usage) {
	if other == nil {
		return
	}
	u.InputTokens += other.InputTokens
	u.OutputTokens += other.OutputTokens
	u.TotalTokens += other.TotalTokens
}
