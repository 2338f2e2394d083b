// Package models provides reagent.Transport implementations backed by
// LangChainGo, plus constructors for common providers.
package models

import (
	"context"
	"fmt"

	"github.com/rickchristie/reagent"
	"github.com/tmc/langchaingo/llms"
)

// LangChain adapts any LangChainGo llms.Model to reagent.Transport. It
// converts the agent's message history to llms.MessageContent, extracts the
// reply text, and normalizes token usage across providers.
//
// Example usage:
//
//	llm, _ := ollama.New(ollama.WithModel("qwen2.5:14b"))
//	transport := models.NewLangChain(llm).WithModelName("qwen2.5:14b")
type LangChain struct {
	model     llms.Model
	modelName string
	callOpts  []llms.CallOption
}

// NewLangChain creates a LangChain transport wrapping the given llms.Model.
func NewLangChain(model llms.Model) *LangChain {
	return &LangChain{
		model: model,
	}
}

// WithModelName sets the model name reported by ModelName.
// Returns the transport for chaining.
func (m *LangChain) WithModelName(name string) *LangChain {
	m.modelName = name
	return m
}

// WithCallOptions sets llms.CallOption values applied to every Chat call
// (e.g. llms.WithTemperature(0)). Returns the transport for chaining.
func (m *LangChain) WithCallOptions(opts ...llms.CallOption) *LangChain {
	m.callOpts = opts
	return m
}

// ModelName returns the configured model name, for logging.
func (m *LangChain) ModelName() string {
	return m.modelName
}

// Unwrap returns the underlying llms.Model.
func (m *LangChain) Unwrap() llms.Model {
	return m.model
}

// Chat implements reagent.Transport.
func (m *LangChain) Chat(ctx context.Context, messages []reagent.Message) (*reagent.ChatResponse, error) {
	converted, err := convertMessages(messages)
	if err != nil {
		return nil, err
	}

	response, err := m.model.GenerateContent(ctx, converted, m.callOpts...)
	if err != nil {
		return nil, err
	}
	return convertResponse(response), nil
}

// convertMessages maps the agent's roles onto LangChainGo message types.
func convertMessages(messages []reagent.Message) ([]llms.MessageContent, error) {
	out := make([]llms.MessageContent, 0, len(messages))
	for _, msg := range messages {
		var role llms.ChatMessageType
		switch msg.Role {
		case reagent.RoleSystem:
			role = llms.ChatMessageTypeSystem
		case reagent.RoleUser:
			role = llms.ChatMessageTypeHuman
		case reagent.RoleAssistant:
			role = llms.ChatMessageTypeAI
		default:
			return nil, fmt.Errorf("unsupported message role: %q", msg.Role)
		}
		out = append(out, llms.MessageContent{
			Role:  role,
			Parts: []llms.ContentPart{llms.TextContent{Text: msg.Content}},
		})
	}
	return out, nil
}

// convertResponse extracts the first choice's text and normalized token
// usage from an llms.ContentResponse.
func convertResponse(response *llms.ContentResponse) *reagent.ChatResponse {
	out := &reagent.ChatResponse{}
	if len(response.Choices) == 0 {
		return out
	}

	choice := response.Choices[0]
	out.Text = choice.Content

	if info := choice.GenerationInfo; info != nil {
		input := extractInputTokens(info)
		output := extractOutputTokens(info)
		out.Usage = &reagent.Usage{
			InputTokens:  input,
			OutputTokens: output,
			TotalTokens:  extractTotalTokens(info, input, output),
		}
	}
	return out
}

// extractInputTokens extracts input/prompt token count from GenerationInfo.
// Handles different key names used by different providers.
func extractInputTokens(info map[string]any) int {
	// OpenAI / Ollama / Google (compat)
	if v := getIntFromMap(info, "PromptTokens"); v > 0 {
		return v
	}
	// Anthropic
	if v := getIntFromMap(info, "InputTokens"); v > 0 {
		return v
	}
	// Google / Bedrock
	if v := getIntFromMap(info, "input_tokens"); v > 0 {
		return v
	}
	return 0
}

// extractOutputTokens extracts output/completion token count from GenerationInfo.
func extractOutputTokens(info map[string]any) int {
	// OpenAI / Ollama / Google (compat)
	if v := getIntFromMap(info, "CompletionTokens"); v > 0 {
		return v
	}
	// Anthropic
	if v := getIntFromMap(info, "OutputTokens"); v > 0 {
		return v
	}
	// Google / Bedrock
	if v := getIntFromMap(info, "output_tokens"); v > 0 {
		return v
	}
	return 0
}

// extractTotalTokens extracts total token count or computes it.
func extractTotalTokens(info map[string]any, input, output int) int {
	if v := getIntFromMap(info, "TotalTokens"); v > 0 {
		return v
	}
	if v := getIntFromMap(info, "total_tokens"); v > 0 {
		return v
	}
	return input + output
}

// getIntFromMap extracts an int value from a map, handling various numeric types.
func getIntFromMap(m map[string]any, key string) int {
	v, ok := m[key]
	if !ok {
		return 0
	}
	switch n := v.(type) {
	case int:
		return n
	case int32:
		return int(n)
	case int64:
		return int(n)
	case float64:
		return int(n)
	case float32:
		return int(n)
	default:
		return 0
	}
}

// Compile-time check that LangChain implements reagent.Transport.
var _ reagent.Transport = (*LangChain)(nil)
