package store

import (
	"context"

	"github.com/akulov/ai-research-assistant/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository provides persistence for user accounts and their
// personalization preferences.
type UserRepository interface {
	// CreateUser persists a new user and returns the stored record with
	// server-assigned fields. Returns [ErrEmailAlreadyExists] on a
	// duplicate email.
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	// FindUserByEmail returns the user with the given email or
	// [ErrNoUserWasFound].
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	// FindUserByID returns the user with the given id or [ErrNoUserWasFound].
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
	// UpdatePreferences replaces the serialized preferences of an existing
	// user. Returns [ErrNoUserWasFound] if the user does not exist.
	UpdatePreferences(ctx context.Context, userID int64, preferences []byte) error
}

// ConversationRepository provides persistence for the per-user ledger of
// research queries and generated responses.
type ConversationRepository interface {
	// Create appends a conversation record and returns it with the
	// server-assigned id and timestamp.
	Create(ctx context.Context, conversation models.Conversation) (models.Conversation, error)
	// GetAll returns every stored conversation, newest first.
	GetAll(ctx context.Context) ([]models.Conversation, error)
	// GetByID returns a single conversation or [ErrConversationNotFound].
	GetByID(ctx context.Context, conversationID int64) (models.Conversation, error)
	// GetByUser returns the given user's conversations, newest first.
	GetByUser(ctx context.Context, userID int64) ([]models.Conversation, error)
	// Update modifies the query and/or response of an existing conversation.
	// Returns [ErrConversationNotFound] if no row matches.
	Update(ctx context.Context, update models.ConversationUpdate) (models.Conversation, error)
	// DeleteByID removes a single conversation. The boolean reports whether
	// a row was actually deleted.
	DeleteByID(ctx context.Context, conversationID int64) (bool, error)
	// DeleteByUser removes all conversations belonging to a user. The
	// boolean reports whether at least one row was deleted.
	DeleteByUser(ctx context.Context, userID int64) (bool, error)
}

// ErrorClassificator decides whether a failed database operation is worth
// retrying. Implementations inspect driver-specific error codes.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
