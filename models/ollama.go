package models

import (
	"fmt"

	"github.com/tmc/langchaingo/llms/ollama"
)

// DefaultOllamaServerURL is the default local Ollama endpoint.
const DefaultOllamaServerURL = "http://localhost:11434"

// NewOllama creates a transport backed by an Ollama server. An empty
// serverURL falls back to DefaultOllamaServerURL.
//
// Additional ollama.Option values customise the underlying LangChainGo
// client. Plain-text agents carry the whole conversation in the prompt, so a
// large context window helps:
//
//	transport, err := models.NewOllama(
//	    models.DefaultOllamaServerURL,
//	    "qwen2.5:14b",
//	    ollama.WithRunnerNumCtx(32768),
//	)
func NewOllama(serverURL, model string, opts ...ollama.Option) (*LangChain, error) {
	if model == "" {
		return nil, fmt.Errorf("model name is required")
	}
	if serverURL == "" {
		serverURL = DefaultOllamaServerURL
	}

	baseOpts := []ollama.Option{
		ollama.WithServerURL(serverURL),
		ollama.WithModel(model),
	}

	// Caller options come after so they can override defaults.
	allOpts := append(baseOpts, opts...)

	llm, err := ollama.New(allOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create ollama client: %w", err)
	}

	return NewLangChain(llm).WithModelName(model), nil
}
