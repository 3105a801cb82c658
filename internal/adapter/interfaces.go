// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer clients for the external services
// the research pipeline depends on: the Tavily web-search API and an
// OpenAI-compatible chat completions API.
//
// Both clients are built on resty and map non-2xx responses to the sentinel
// errors defined in errors.go, so that callers can use [errors.Is] for
// transport-agnostic error handling (e.g. [ErrUnauthorized] for a bad API
// key, [ErrRateLimited] for 429).
package adapter

import (
	"context"

	"github.com/akulov/ai-research-assistant/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// SearchEngine performs a web search and returns ranked results.
type SearchEngine interface {
	// Search runs a single search request for the given query, returning at
	// most maxResults results. Returns an error if the request fails or the
	// server responds with a non-2xx status.
	Search(ctx context.Context, query string, maxResults int) ([]models.SearchResult, error)
}

// ChatModel generates a completion for a system instruction plus user prompt.
type ChatModel interface {
	// Complete sends one chat completion request and returns the generated
	// message content verbatim. Returns an error if the request fails, the
	// server responds with a non-2xx status, or the response carries no
	// choices.
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}
