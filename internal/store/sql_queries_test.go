package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akulov/ai-research-assistant/models"
)

func TestBuildSelectConversationsQuery_AllUsers(t *testing.T) {
	query, args, err := buildSelectConversationsQuery(nil)
	require.NoError(t, err)

	assert.Equal(t, "SELECT id, user_id, query, response, timestamp FROM conversations ORDER BY timestamp DESC", query)
	assert.Empty(t, args)
}

func TestBuildSelectConversationsQuery_SingleUser(t *testing.T) {
	userID := int64(7)

	query, args, err := buildSelectConversationsQuery(&userID)
	require.NoError(t, err)

	assert.Equal(t, "SELECT id, user_id, query, response, timestamp FROM conversations WHERE user_id = $1 ORDER BY timestamp DESC", query)
	assert.Equal(t, []any{int64(7)}, args)
}

func TestBuildUpdateConversationQuery_BothFields(t *testing.T) {
	q := "new query"
	r := "new response"

	query, args, err := buildUpdateConversationQuery(models.ConversationUpdate{ID: 5, Query: &q, Response: &r})
	require.NoError(t, err)

	assert.Equal(t, "UPDATE conversations SET query = $1, response = $2 WHERE id = $3 RETURNING id, user_id, query, response, timestamp", query)
	assert.Equal(t, []any{"new query", "new response", int64(5)}, args)
}

func TestBuildUpdateConversationQuery_NoFields(t *testing.T) {
	_, _, err := buildUpdateConversationQuery(models.ConversationUpdate{ID: 5})
	assert.ErrorIs(t, err, ErrBuildingSQLQuery)
}
