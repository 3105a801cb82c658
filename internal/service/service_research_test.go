package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/akulov/ai-research-assistant/internal/logger"
	"github.com/akulov/ai-research-assistant/internal/mock"
	"github.com/akulov/ai-research-assistant/internal/store"
	"github.com/akulov/ai-research-assistant/models"
)

func newTestResearchSvc(t *testing.T) (ResearchService, *mock.MockUserRepository, *mock.MockConversationRepository, *mock.MockQueryResponder) {
	t.Helper()

	ctrl := gomock.NewController(t)
	users := mock.NewMockUserRepository(ctrl)
	conversations := mock.NewMockConversationRepository(ctrl)
	responder := mock.NewMockQueryResponder(ctrl)

	svc := NewResearchService(users, conversations, responder, nil, logger.Nop())
	return svc, users, conversations, responder
}

func TestProcessQuery_Success(t *testing.T) {
	svc, users, conversations, responder := newTestResearchSvc(t)

	prefs := models.Preferences{
		SummaryLength:   models.SummaryLengthShort,
		PreferredTopics: []string{"ai"},
	}

	users.EXPECT().
		FindUserByID(gomock.Any(), int64(1)).
		Return(userWithPrefs(t, 1, prefs), nil)

	responder.EXPECT().
		Respond(gomock.Any(), "what is Go?", &prefs).
		Return("- Go is a programming language")

	conversations.EXPECT().
		Create(gomock.Any(), models.Conversation{
			UserID:   1,
			Query:    "what is Go?",
			Response: "- Go is a programming language",
		}).
		Return(models.Conversation{ID: 10, UserID: 1, Query: "what is Go?", Response: "- Go is a programming language", Timestamp: time.Now()}, nil)

	result, err := svc.ProcessQuery(context.Background(), 1, "  what is Go?  ")
	require.NoError(t, err)

	assert.Equal(t, int64(1), result.UserID)
	assert.Equal(t, "what is Go?", result.Query)
	assert.Equal(t, "- Go is a programming language", result.Response)
	assert.Equal(t, int64(10), result.ConversationID)
	assert.Equal(t, prefs, result.Preferences)
}

func TestProcessQuery_DegradedResponseIsStillPersisted(t *testing.T) {
	svc, users, conversations, responder := newTestResearchSvc(t)

	degraded := "Search functionality not available. Please configure Tavily API key."

	users.EXPECT().
		FindUserByID(gomock.Any(), int64(1)).
		Return(userWithPrefs(t, 1, models.DefaultPreferences()), nil)

	responder.EXPECT().
		Respond(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(degraded)

	conversations.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, c models.Conversation) (models.Conversation, error) {
			assert.Equal(t, degraded, c.Response)
			c.ID = 11
			return c, nil
		})

	result, err := svc.ProcessQuery(context.Background(), 1, "anything")
	require.NoError(t, err)
	assert.Equal(t, degraded, result.Response)
	assert.Equal(t, int64(11), result.ConversationID)
}

func TestProcessQuery_BlankQuery(t *testing.T) {
	svc, _, _, _ := newTestResearchSvc(t)

	_, err := svc.ProcessQuery(context.Background(), 1, "   ")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestProcessQuery_InvalidUserID(t *testing.T) {
	svc, _, _, _ := newTestResearchSvc(t)

	_, err := svc.ProcessQuery(context.Background(), 0, "query")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestProcessQuery_UserNotFound(t *testing.T) {
	svc, users, _, _ := newTestResearchSvc(t)

	users.EXPECT().
		FindUserByID(gomock.Any(), int64(404)).
		Return(models.User{}, store.ErrNoUserWasFound)

	_, err := svc.ProcessQuery(context.Background(), 404, "query")
	assert.ErrorIs(t, err, store.ErrNoUserWasFound)
}

func TestProcessQuery_LedgerAppendFails(t *testing.T) {
	svc, users, conversations, responder := newTestResearchSvc(t)

	users.EXPECT().
		FindUserByID(gomock.Any(), int64(1)).
		Return(userWithPrefs(t, 1, models.DefaultPreferences()), nil)
	responder.EXPECT().
		Respond(gomock.Any(), gomock.Any(), gomock.Any()).
		Return("a response")
	conversations.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(models.Conversation{}, errors.New("db down"))

	_, err := svc.ProcessQuery(context.Background(), 1, "query")
	assert.ErrorIs(t, err, ErrQueryProcessingFailed)
}

func TestHistory_Success(t *testing.T) {
	svc, users, conversations, _ := newTestResearchSvc(t)

	stored := []models.Conversation{
		{ID: 2, UserID: 1, Query: "second"},
		{ID: 1, UserID: 1, Query: "first"},
	}

	users.EXPECT().
		FindUserByID(gomock.Any(), int64(1)).
		Return(models.User{UserID: 1, FullName: "Alice"}, nil)
	conversations.EXPECT().
		GetByUser(gomock.Any(), int64(1)).
		Return(stored, nil)

	history, err := svc.History(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, int64(1), history.UserID)
	assert.Equal(t, "Alice", history.UserName)
	assert.Equal(t, 2, history.TotalQueries)
	assert.Equal(t, stored, history.Conversations)
}

func TestHistory_UserNotFound(t *testing.T) {
	svc, users, _, _ := newTestResearchSvc(t)

	users.EXPECT().
		FindUserByID(gomock.Any(), int64(404)).
		Return(models.User{}, store.ErrNoUserWasFound)

	_, err := svc.History(context.Background(), 404)
	assert.ErrorIs(t, err, store.ErrNoUserWasFound)
}
