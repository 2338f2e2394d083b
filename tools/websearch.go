package tools

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rickchristie/reagent"
	"github.com/rickchristie/reagent/schema"
)

// TavilyBaseURL is the Tavily search endpoint.
const TavilyBaseURL = "https://api.tavily.com/search"

const webSearchDescription = `Performs a web search using the Tavily API.
This function initializes a Tavily client with an API key and performs a search query using their search engine. Tavily specializes in providing AI-optimized search results with high accuracy and relevance.

Args:
    query (str): The search query string to be processed by Tavily's search engine.

Returns:
    dict: A dictionary containing the search result from Tavily. The dictionary contains:
        - url: The URL of the webpage
        - content: A snippet or content preview`

// WebSearch queries the Tavily search API and reports the top hit as a JSON
// object with url and content fields.
//
// A missing API key is reported in band ("Error: Tool unavailable"), so an
// unconfigured agent degrades to telling the model the tool is unusable
// instead of failing the task. Rate limiting (HTTP 429) is retried with a
// doubling delay, bounded by the call's context.
type WebSearch struct {
	apiKey     string
	baseURL    string
	depth      string
	client     *http.Client
	retryDelay time.Duration
}

// NewWebSearch creates a WebSearch using the given Tavily API key.
func NewWebSearch(apiKey string) *WebSearch {
	return &WebSearch{
		apiKey:     apiKey,
		baseURL:    TavilyBaseURL,
		depth:      "basic",
		client:     &http.Client{Timeout: 10 * time.Second},
		retryDelay: 1 * time.Second,
	}
}

// WithHTTPClient sets the HTTP client, e.g. to change the timeout.
// Returns the tool for chaining.
func (w *WebSearch) WithHTTPClient(client *http.Client) *WebSearch {
	w.client = client
	return w
}

// WithBaseURL overrides the Tavily endpoint. Used in tests.
// Returns the tool for chaining.
func (w *WebSearch) WithBaseURL(url string) *WebSearch {
	w.baseURL = url
	return w
}

// WithDepth sets Tavily's search depth parameter ("basic" or "advanced").
// Returns the tool for chaining.
func (w *WebSearch) WithDepth(depth string) *WebSearch {
	w.depth = depth
	return w
}

// Name returns the tool name.
func (w *WebSearch) Name() string {
	return "web_search"
}

// Description returns the tool documentation for the system prompt.
func (w *WebSearch) Description() string {
	return webSearchDescription
}

// ParameterSchema returns the tool's argument schema.
func (w *WebSearch) ParameterSchema() map[string]any {
	return schema.Object(map[string]*schema.Property{
		"query": schema.String("The search query string to be processed by Tavily's search engine."),
	}, "query")
}

// Call performs the search and returns the top hit.
func (w *WebSearch) Call(ctx context.Context, args map[string]any) (string, error) {
	if w.apiKey == "" {
		return "Error: Tool unavailable (API_KEY missing)", nil
	}

	query, ok := args["query"].(string)
	if !ok {
		return "", fmt.Errorf("query must be a string, got %T", args["query"])
	}

	payload, err := json.Marshal(map[string]any{
		"query":   query,
		"api_key": w.apiKey,
		"depth":   w.depth,
	})
	if err != nil {
		return "", err
	}

	resp, err := w.post(ctx, payload)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("tavily http %d", resp.StatusCode)
	}

	var response struct {
		Results []struct {
			URL     string `json:"url"`
			Content string `json:"content"`
		} `json:"results"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return "", err
	}
	if len(response.Results) == 0 {
		return "", fmt.Errorf("tavily returned no results for %q", query)
	}

	top := response.Results[0]
	out, err := json.Marshal(map[string]string{
		"url":     top.URL,
		"content": top.Content,
	})
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// post sends the search request, backing off and retrying on 429 with a
// doubling delay up to 30s.
func (w *WebSearch) post(ctx context.Context, payload []byte) (*http.Response, error) {
	delay := w.retryDelay
	for {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.baseURL, bytes.NewReader(payload))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := w.client.Do(req)
		if err != nil {
			return nil, err
		}
		if resp.StatusCode != http.StatusTooManyRequests {
			return resp, nil
		}
		resp.Body.Close()

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(delay):
		}
		if delay < 30*time.Second {
			delay *= 2
		}
	}
}

// Compile-time check that WebSearch implements reagent.Tool.
var _ reagent.Tool = (*WebSearch)(nil)
