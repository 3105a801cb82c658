package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/akulov/ai-research-assistant/internal/config"
	"github.com/akulov/ai-research-assistant/internal/logger"
	"github.com/akulov/ai-research-assistant/internal/utils"
	"github.com/akulov/ai-research-assistant/models"
)

const defaultTavilyBaseURL = "https://api.tavily.com"

type tavilySearchRequest struct {
	Query      string `json:"query"`
	MaxResults int    `json:"max_results"`
}

type tavilySearchResponse struct {
	Results []struct {
		Title   string `json:"title"`
		Content string `json:"content"`
		URL     string `json:"url"`
	} `json:"results"`
}

// tavilyClient is the resty-based implementation of [SearchEngine] for the
// Tavily search API.
type tavilyClient struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewTavilySearchEngine constructs a [SearchEngine] backed by the Tavily
// search API. The API key is attached as a bearer token to every request.
func NewTavilySearchEngine(cfg config.Research, log *logger.Logger) SearchEngine {
	baseURL := cfg.TavilyBaseURL
	if baseURL == "" {
		baseURL = defaultTavilyBaseURL
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetAuthToken(cfg.TavilyAPIKey)
	if cfg.RequestTimeout > 0 {
		client.SetTimeout(cfg.RequestTimeout)
	}

	return &tavilyClient{client: client, logger: log}
}

// Search implements [SearchEngine].
func (t *tavilyClient) Search(ctx context.Context, query string, maxResults int) ([]models.SearchResult, error) {
	start := time.Now()

	resp, err := t.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(tavilySearchRequest{Query: query, MaxResults: maxResults}).
		Post("/search")
	if err != nil {
		t.logger.Err(err).Str("func", "*tavilyClient.Search").Msg("search request failed")
		return nil, fmt.Errorf("search request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		t.logger.Err(err).Str("func", "*tavilyClient.Search").Msg("search request rejected")
		return nil, err
	}

	var body tavilySearchResponse
	if err = json.Unmarshal(resp.Body(), &body); err != nil {
		return nil, fmt.Errorf("search decode response: %w", err)
	}

	results := make([]models.SearchResult, 0, len(body.Results))
	for _, r := range body.Results {
		results = append(results, models.SearchResult{
			Title:   r.Title,
			Content: r.Content,
			URL:     r.URL,
		})
	}

	t.logger.Debug().
		Str("func", "*tavilyClient.Search").
		Int("results", len(results)).
		Dur("elapsed", time.Since(start)).
		Msg("search completed")

	return results, nil
}
