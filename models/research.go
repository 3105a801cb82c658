package models

// SearchResult is one hit returned by the external search engine.
type SearchResult struct {
	// Title is the headline of the found document.
	Title string `json:"title"`

	// Content is a text snippet of the document body.
	Content string `json:"content"`

	// URL points at the source document.
	URL string `json:"url"`
}

// QueryResult is the structured outcome of a single query-pipeline run.
type QueryResult struct {
	// UserID is the owner of the run.
	UserID int64 `json:"user_id"`

	// Query is the raw query text that was processed.
	Query string `json:"query"`

	// Response is the responder output. Because the responder is fail-soft,
	// this is always a plain string, possibly a human-readable error text.
	Response string `json:"response"`

	// ConversationID is the identifier of the history record created for
	// this run.
	ConversationID int64 `json:"conversation_id"`

	// Preferences are the response-shaping settings that were actually
	// applied during the run.
	Preferences Preferences `json:"user_preferences"`
}

// ResearchHistory summarizes a user's past research activity.
type ResearchHistory struct {
	// UserID is the owner of the history.
	UserID int64 `json:"user_id"`

	// UserName is the owner's display name.
	UserName string `json:"user_name"`

	// TotalQueries is the number of persisted exchanges.
	TotalQueries int `json:"total_queries"`

	// Conversations are the persisted exchanges, newest first.
	Conversations []Conversation `json:"conversations"`
}
