package service

import (
	"context"

	"github.com/akulov/ai-research-assistant/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService handles registration, credential verification and the JWT
// token lifecycle.
type AuthService interface {
	RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, error)
	Login(ctx context.Context, email, password string) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// UserService exposes account lookups and preference updates.
type UserService interface {
	GetByID(ctx context.Context, userID int64) (models.User, error)
	UpdatePreferences(ctx context.Context, userID int64, req models.PreferencesRequest) (models.User, error)
}

// ResearchService runs the personalized query pipeline and reports past
// research activity.
type ResearchService interface {
	ProcessQuery(ctx context.Context, userID int64, query string) (models.QueryResult, error)
	History(ctx context.Context, userID int64) (models.ResearchHistory, error)
}

// ConversationService manages a user's view of the conversation ledger.
// Every method scopes access to the calling user; records owned by other
// users are reported as not found.
type ConversationService interface {
	ListForUser(ctx context.Context, userID int64) ([]models.Conversation, error)
	GetForUser(ctx context.Context, userID, conversationID int64) (models.Conversation, error)
	UpdateForUser(ctx context.Context, userID int64, update models.ConversationUpdate) (models.Conversation, error)
	DeleteForUser(ctx context.Context, userID, conversationID int64) error
	DeleteAllForUser(ctx context.Context, userID int64) error
}

// QueryResponder generates the response text for one research query.
// Implementations are fail-soft: the returned string may be a fixed
// human-readable error message, never an error value.
type QueryResponder interface {
	Respond(ctx context.Context, query string, prefs *models.Preferences) string
}
