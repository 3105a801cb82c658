package models

import "time"

// Conversation is a single persisted query/response exchange owned by a user.
//
// Records are created exactly once per successful query-pipeline run and are
// immutable afterwards except for explicit updates of the query and response
// text. The user reference is a logical one: the store does not enforce it
// and deleting a user does not remove their conversations.
type Conversation struct {
	// ID is the store-assigned unique identifier of the record.
	ID int64 `json:"id"`

	// UserID references the owning user.
	UserID int64 `json:"user_id"`

	// Query is the raw research query text as submitted.
	Query string `json:"query"`

	// Response is the responder output persisted verbatim. This may be a
	// responder error string — history records attempts, not just successes.
	Response string `json:"response"`

	// Timestamp is the server-assigned creation time.
	Timestamp time.Time `json:"timestamp"`
}

// TableName returns the name of the database table
// associated with the Conversation model.
func (c Conversation) TableName() string {
	return "conversations"
}

// ConversationUpdate describes an explicit partial update of a conversation
// record. Only non-nil fields are written.
type ConversationUpdate struct {
	// ID is the unique identifier of the record to update. Required.
	ID int64 `json:"id"`

	// Query replaces the stored query text when non-nil.
	Query *string `json:"query,omitempty"`

	// Response replaces the stored response text when non-nil.
	Response *string `json:"response,omitempty"`
}
