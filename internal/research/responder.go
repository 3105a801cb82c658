// Package research implements the retrieval-augmented responder: a web
// search followed by a single chat completion, shaped by the user's
// personalization preferences.
//
// The responder is deliberately fail-soft. Respond never returns an error;
// missing capabilities and upstream failures all collapse into fixed,
// user-readable messages so that a research query always produces a response
// that can be stored in the conversation ledger.
package research

import (
	"context"
	"fmt"
	"strings"

	"github.com/akulov/ai-research-assistant/internal/adapter"
	"github.com/akulov/ai-research-assistant/internal/logger"
	"github.com/akulov/ai-research-assistant/internal/metrics"
	"github.com/akulov/ai-research-assistant/models"
)

const (
	// maxSearchResults is how many results are requested from the search
	// engine; only the top formattedResultLimit of them reach the prompt.
	maxSearchResults     = 5
	formattedResultLimit = 3
)

// Fixed degraded-mode responses.
const (
	searchUnavailableResponse = "Search functionality not available. Please configure Tavily API key."
	modelUnavailableResponse  = "AI processing not available. Please configure OpenAI API key."
)

const systemInstruction = `You are a helpful research assistant. Your job is to:
1. Analyze the search results provided
2. Provide personalized responses based on user preferences
3. Always cite your sources

IMPORTANT RESPONSE LENGTH RULES:
- If user prefers "short": Provide ONLY 2-3 bullet points maximum, keep each point very brief
- If user prefers "medium": Provide 3-5 bullet points with some details
- If user prefers "long": Provide comprehensive information with sources

Always be accurate and helpful.`

// Length directives injected into the user prompt.
const (
	directiveShort    = "CRITICAL: Provide ONLY 2-3 bullet points maximum. Keep each point very brief and concise. No long explanations."
	directiveMedium   = "Provide 3-5 bullet points with some details"
	directiveLong     = "Provide a detailed response with comprehensive information and sources"
	directiveStandard = "standard response"
)

// Responder runs the search-then-summarize pipeline. Either collaborator may
// be nil, which marks the corresponding capability as unavailable.
type Responder struct {
	search  adapter.SearchEngine
	model   adapter.ChatModel
	metrics metrics.MetricsCollector
	logger  *logger.Logger
}

// NewResponder constructs a [Responder]. Pass nil for search or model when
// the corresponding API key is not configured; collector may be nil as well.
func NewResponder(search adapter.SearchEngine, model adapter.ChatModel, collector metrics.MetricsCollector, log *logger.Logger) *Responder {
	return &Responder{
		search:  search,
		model:   model,
		metrics: collector,
		logger:  log,
	}
}

// Respond executes one research round trip and returns the generated answer.
// It never returns an error: unavailable capabilities and upstream failures
// are reported as fixed response strings instead.
func (r *Responder) Respond(ctx context.Context, query string, prefs *models.Preferences) string {
	log := logger.FromContext(ctx)

	if r.search == nil {
		r.recordDegraded()
		return searchUnavailableResponse
	}
	if r.model == nil {
		r.recordDegraded()
		return modelUnavailableResponse
	}

	results, err := r.search.Search(ctx, query, maxSearchResults)
	if err != nil {
		log.Err(err).Str("func", "*Responder.Respond").Msg("search failed")
		r.recordDegraded()
		return fmt.Sprintf("Error processing query: %s", err)
	}

	prompt := fmt.Sprintf("Query: %s\nSearch Results: %s\nUser Preferences: %s",
		query, formatSearchResults(results), preferencesDirective(prefs))

	response, err := r.model.Complete(ctx, systemInstruction, prompt)
	if err != nil {
		log.Err(err).Str("func", "*Responder.Respond").Msg("completion failed")
		r.recordDegraded()
		return fmt.Sprintf("Error processing query: %s", err)
	}

	return response
}

func (r *Responder) recordDegraded() {
	if r.metrics != nil {
		r.metrics.RecordDegradedResponse()
	}
}

// formatSearchResults renders the top results as numbered blocks for the
// prompt. Empty fields get explicit placeholders so the model does not
// hallucinate sources.
func formatSearchResults(results []models.SearchResult) string {
	var b strings.Builder

	limit := len(results)
	if limit > formattedResultLimit {
		limit = formattedResultLimit
	}

	for i := 0; i < limit; i++ {
		title := results[i].Title
		if title == "" {
			title = "No title"
		}
		content := results[i].Content
		if content == "" {
			content = "No content"
		}
		url := results[i].URL
		if url == "" {
			url = "No URL"
		}

		fmt.Fprintf(&b, "%d. %s\n   %s\n   URL: %s\n\n", i+1, title, content, url)
	}

	return b.String()
}

// preferencesDirective translates preferences into the instruction appended
// to the prompt. A nil preferences value yields the neutral directive.
func preferencesDirective(prefs *models.Preferences) string {
	if prefs == nil {
		return directiveStandard
	}

	var directive string
	switch prefs.SummaryLength {
	case models.SummaryLengthShort:
		directive = directiveShort
	case models.SummaryLengthLong:
		directive = directiveLong
	default:
		directive = directiveMedium
	}

	if len(prefs.PreferredTopics) > 0 {
		directive += fmt.Sprintf(". Focus on topics: %s", strings.Join(prefs.PreferredTopics, ", "))
	}

	return directive
}
