package models

import (
	"fmt"

	"github.com/tmc/langchaingo/llms/openai"
)

// NewOpenAICompatible creates a transport for any OpenAI-compatible chat
// completions endpoint: OpenAI itself, or self-hosted gateways like
// llama.cpp, vLLM, and LiteLLM. An empty baseURL uses the official OpenAI
// API.
//
// Additional openai.Option values customise the underlying LangChainGo
// client (e.g. openai.WithHTTPClient).
//
// Example:
//
//	transport, err := models.NewOpenAICompatible(
//	    "", os.Getenv("OPENAI_API_KEY"), "gpt-4o-mini",
//	)
func NewOpenAICompatible(baseURL, apiKey, model string, opts ...openai.Option) (*LangChain, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("api key is required")
	}
	if model == "" {
		return nil, fmt.Errorf("model name is required")
	}

	baseOpts := []openai.Option{
		openai.WithToken(apiKey),
		openai.WithModel(model),
	}
	if baseURL != "" {
		baseOpts = append(baseOpts, openai.WithBaseURL(baseURL))
	}

	// Caller options come after so they can override defaults.
	allOpts := append(baseOpts, opts...)

	llm, err := openai.New(allOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create openai client: %w", err)
	}

	return NewLangChain(llm).WithModelName(model), nil
}
