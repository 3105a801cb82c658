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
)

const (
	defaultOpenAIBaseURL = "https://api.openai.com/v1"
	defaultChatModel     = "gpt-3.5-turbo"

	// Low temperature keeps research answers close to the retrieved sources.
	completionTemperature = 0.1
)

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// openAIClient is the resty-based implementation of [ChatModel] for an
// OpenAI-compatible chat completions endpoint.
type openAIClient struct {
	client *utils.HTTPClient
	logger *logger.Logger
	model  string
}

// NewOpenAIChatModel constructs a [ChatModel] backed by the chat completions
// API at cfg.OpenAIBaseURL (the public OpenAI endpoint by default).
func NewOpenAIChatModel(cfg config.Research, log *logger.Logger) ChatModel {
	baseURL := cfg.OpenAIBaseURL
	if baseURL == "" {
		baseURL = defaultOpenAIBaseURL
	}
	model := cfg.Model
	if model == "" {
		model = defaultChatModel
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetAuthToken(cfg.OpenAIAPIKey)
	if cfg.RequestTimeout > 0 {
		client.SetTimeout(cfg.RequestTimeout)
	}

	return &openAIClient{client: client, logger: log, model: model}
}

// Complete implements [ChatModel].
func (o *openAIClient) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	start := time.Now()

	req := chatCompletionRequest{
		Model: o.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt},
		},
		Temperature: completionTemperature,
	}

	resp, err := o.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/chat/completions")
	if err != nil {
		o.logger.Err(err).Str("func", "*openAIClient.Complete").Msg("completion request failed")
		return "", fmt.Errorf("completion request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		o.logger.Err(err).Str("func", "*openAIClient.Complete").Msg("completion request rejected")
		return "", err
	}

	var body chatCompletionResponse
	if err = json.Unmarshal(resp.Body(), &body); err != nil {
		return "", fmt.Errorf("completion decode response: %w", err)
	}
	if len(body.Choices) == 0 {
		return "", ErrEmptyCompletion
	}

	o.logger.Debug().
		Str("func", "*openAIClient.Complete").
		Str("model", o.model).
		Dur("elapsed", time.Since(start)).
		Msg("completion generated")

	return body.Choices[0].Message.Content, nil
}
