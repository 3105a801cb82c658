package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/akulov/ai-research-assistant/internal/store"
	"github.com/akulov/ai-research-assistant/models"
)

func TestListConversations(t *testing.T) {
	h, mocks := newTestHandler(t)

	stored := []models.Conversation{
		{ID: 2, UserID: 7, Query: "second"},
		{ID: 1, UserID: 7, Query: "first"},
	}
	mocks.conversations.EXPECT().
		ListForUser(gomock.Any(), int64(7)).
		Return(stored, nil)

	rr := httptest.NewRecorder()
	h.listConversations(rr, authedRequest(http.MethodGet, "/conversations/", nil, 7))

	require.Equal(t, http.StatusOK, rr.Code)

	var got []models.Conversation
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Len(t, got, 2)
	assert.Equal(t, int64(2), got[0].ID)
}

func TestListConversations_EmptyHistoryIsAnEmptyArray(t *testing.T) {
	h, mocks := newTestHandler(t)

	mocks.conversations.EXPECT().
		ListForUser(gomock.Any(), int64(7)).
		Return([]models.Conversation{}, nil)

	rr := httptest.NewRecorder()
	h.listConversations(rr, authedRequest(http.MethodGet, "/conversations/", nil, 7))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, "[]", rr.Body.String())
}

func TestGetConversation_Success(t *testing.T) {
	h, mocks := newTestHandler(t)

	mocks.conversations.EXPECT().
		GetForUser(gomock.Any(), int64(7), int64(5)).
		Return(models.Conversation{ID: 5, UserID: 7, Query: "q"}, nil)

	req := withURLParam(authedRequest(http.MethodGet, "/conversations/5", nil, 7), "id", "5")
	rr := httptest.NewRecorder()
	h.getConversation(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var got models.Conversation
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, int64(5), got.ID)
}

func TestGetConversation_NotFound(t *testing.T) {
	h, mocks := newTestHandler(t)

	mocks.conversations.EXPECT().
		GetForUser(gomock.Any(), int64(7), int64(404)).
		Return(models.Conversation{}, store.ErrConversationNotFound)

	req := withURLParam(authedRequest(http.MethodGet, "/conversations/404", nil, 7), "id", "404")
	rr := httptest.NewRecorder()
	h.getConversation(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestGetConversation_InvalidID(t *testing.T) {
	h, _ := newTestHandler(t)

	req := withURLParam(authedRequest(http.MethodGet, "/conversations/abc", nil, 7), "id", "abc")
	rr := httptest.NewRecorder()
	h.getConversation(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestUpdateConversation_IDComesFromURL(t *testing.T) {
	h, mocks := newTestHandler(t)

	response := "corrected"
	mocks.conversations.EXPECT().
		UpdateForUser(gomock.Any(), int64(7), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int64, update models.ConversationUpdate) (models.Conversation, error) {
			assert.Equal(t, int64(5), update.ID)
			require.NotNil(t, update.Response)
			assert.Equal(t, response, *update.Response)
			return models.Conversation{ID: 5, UserID: 7, Response: response}, nil
		})

	// the body claims a different id; the URL wins
	body := `{"id":999,"response":"corrected"}`
	req := withURLParam(authedRequest(http.MethodPut, "/conversations/5", strings.NewReader(body), 7), "id", "5")
	rr := httptest.NewRecorder()
	h.updateConversation(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
}

func TestDeleteConversation_Success(t *testing.T) {
	h, mocks := newTestHandler(t)

	mocks.conversations.EXPECT().
		DeleteForUser(gomock.Any(), int64(7), int64(5)).
		Return(nil)

	req := withURLParam(authedRequest(http.MethodDelete, "/conversations/5", nil, 7), "id", "5")
	rr := httptest.NewRecorder()
	h.deleteConversation(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "Conversation deleted successfully")
}

func TestDeleteConversation_Foreign(t *testing.T) {
	h, mocks := newTestHandler(t)

	mocks.conversations.EXPECT().
		DeleteForUser(gomock.Any(), int64(7), int64(5)).
		Return(store.ErrConversationNotFound)

	req := withURLParam(authedRequest(http.MethodDelete, "/conversations/5", nil, 7), "id", "5")
	rr := httptest.NewRecorder()
	h.deleteConversation(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestDeleteAllConversations(t *testing.T) {
	h, mocks := newTestHandler(t)

	mocks.conversations.EXPECT().
		DeleteAllForUser(gomock.Any(), int64(7)).
		Return(nil)

	rr := httptest.NewRecorder()
	h.deleteAllConversations(rr, authedRequest(http.MethodDelete, "/conversations/", nil, 7))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "All conversations deleted successfully")
}
