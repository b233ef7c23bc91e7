// Package tavily is a minimal client for the Tavily web search API, used to
// look up workout videos. Callers must treat zero results as normal.
package tavily

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"forgefit/workout-planner/internal/config"
	"forgefit/workout-planner/internal/logger"
)

// SearchOptions restricts one search call.
type SearchOptions struct {
	IncludeDomains []string
	MaxResults     int
}

// Result is one search hit.
type Result struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// Client is the video-lookup backend as the engine sees it.
type Client interface {
	Search(ctx context.Context, query string, opts SearchOptions) ([]Result, error)
}

type client struct {
	log        *logger.Logger
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// New builds a Client from configuration.
func New(log *logger.Logger, cfg config.TavilyConfig) (Client, error) {
	if log == nil {
		return nil, fmt.Errorf("logger required")
	}
	apiKey := strings.TrimSpace(cfg.APIKey)
	if apiKey == "" {
		return nil, fmt.Errorf("missing TAVILY_API_KEY")
	}
	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = "https://api.tavily.com"
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &client{
		log:        log.With("client", "tavily"),
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: timeout},
	}, nil
}

type searchRequest struct {
	APIKey         string   `json:"api_key"`
	Query          string   `json:"query"`
	SearchDepth    string   `json:"search_depth"`
	IncludeDomains []string `json:"include_domains,omitempty"`
	MaxResults     int      `json:"max_results,omitempty"`
}

type searchResponse struct {
	Results []Result `json:"results"`
}

func (c *client) Search(ctx context.Context, query string, opts SearchOptions) ([]Result, error) {
	reqBody := searchRequest{
		APIKey:         c.apiKey,
		Query:          query,
		SearchDepth:    "basic",
		IncludeDomains: opts.IncludeDomains,
		MaxResults:     opts.MaxResults,
	}

	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(reqBody); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/search", &buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	raw, readErr := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if readErr != nil {
		return nil, readErr
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("tavily http %d: %s", resp.StatusCode, string(raw))
	}

	var out searchResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("tavily decode error: %w", err)
	}
	return out.Results, nil
}
