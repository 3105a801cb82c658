package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/akulov/ai-research-assistant/models"
)

func TestResearchQuery_Success(t *testing.T) {
	h, mocks := newTestHandler(t)

	result := models.QueryResult{
		UserID:         7,
		Query:          "what is Go?",
		Response:       "- Go is a programming language",
		ConversationID: 10,
	}

	mocks.research.EXPECT().
		ProcessQuery(gomock.Any(), int64(7), "what is Go?").
		Return(result, nil)

	rr := httptest.NewRecorder()
	h.researchQuery(rr, authedRequest(http.MethodGet, "/research/query?query=what+is+Go%3F", nil, 7))

	require.Equal(t, http.StatusOK, rr.Code)

	var got models.QueryResult
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, result.Response, got.Response)
	assert.Equal(t, int64(10), got.ConversationID)
}

func TestResearchQuery_MissingQueryParameter(t *testing.T) {
	h, _ := newTestHandler(t)

	rr := httptest.NewRecorder()
	h.researchQuery(rr, authedRequest(http.MethodGet, "/research/query", nil, 7))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "query parameter is required")
}

func TestResearchQuery_BlankQueryParameter(t *testing.T) {
	h, _ := newTestHandler(t)

	rr := httptest.NewRecorder()
	h.researchQuery(rr, authedRequest(http.MethodGet, "/research/query?query=+++", nil, 7))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestResearchHistory_Success(t *testing.T) {
	h, mocks := newTestHandler(t)

	history := models.ResearchHistory{
		UserID:       7,
		UserName:     "Alice",
		TotalQueries: 1,
		Conversations: []models.Conversation{
			{ID: 1, UserID: 7, Query: "q", Response: "r"},
		},
	}

	mocks.research.EXPECT().
		History(gomock.Any(), int64(7)).
		Return(history, nil)

	rr := httptest.NewRecorder()
	h.researchHistory(rr, authedRequest(http.MethodGet, "/research/history", nil, 7))

	require.Equal(t, http.StatusOK, rr.Code)

	var got models.ResearchHistory
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, "Alice", got.UserName)
	assert.Equal(t, 1, got.TotalQueries)
}
