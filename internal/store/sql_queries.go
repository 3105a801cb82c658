package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/akulov/ai-research-assistant/models"
)

const (
	createUser = `INSERT INTO users (email, password_hash, full_name, preferences)
    VALUES ($1, $2, $3, $4)
    RETURNING user_id, email, password_hash, full_name, preferences, created_at;`

	findUserByEmail = `SELECT user_id, email, password_hash, full_name, preferences, created_at
    FROM users
    WHERE email = $1;`

	findUserByID = `SELECT user_id, email, password_hash, full_name, preferences, created_at
    FROM users
    WHERE user_id = $1;`

	updateUserPreferences = `UPDATE users
    SET preferences = $2
    WHERE user_id = $1;`

	createConversation = `INSERT INTO conversations (user_id, query, response)
    VALUES ($1, $2, $3)
    RETURNING id, user_id, query, response, timestamp;`

	deleteConversationByID = `DELETE FROM conversations
		WHERE id = $1;`

	deleteConversationsByUser = `DELETE FROM conversations
		WHERE user_id = $1;`
)

// psql is the statement builder used for dynamically assembled conversation
// queries. PostgreSQL expects $N placeholders rather than the default ?.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// buildSelectConversationsQuery assembles a conversation listing query,
// newest first. A nil userID selects the whole ledger.
func buildSelectConversationsQuery(userID *int64) (string, []any, error) {
	builder := psql.
		Select("id", "user_id", "query", "response", "timestamp").
		From(models.Conversation{}.TableName()).
		OrderBy("timestamp DESC")

	if userID != nil {
		builder = builder.Where(sq.Eq{"user_id": *userID})
	}

	return builder.ToSql()
}

// buildSelectConversationByIDQuery assembles a single-conversation lookup.
func buildSelectConversationByIDQuery(conversationID int64) (string, []any, error) {
	return psql.
		Select("id", "user_id", "query", "response", "timestamp").
		From(models.Conversation{}.TableName()).
		Where(sq.Eq{"id": conversationID}).
		ToSql()
}

// buildUpdateConversationQuery assembles an UPDATE statement covering only
// the fields present in the update. Returns [ErrBuildingSQLQuery] when no
// field is set, since an empty SET clause is not valid SQL.
func buildUpdateConversationQuery(update models.ConversationUpdate) (string, []any, error) {
	builder := psql.
		Update(models.Conversation{}.TableName()).
		Where(sq.Eq{"id": update.ID}).
		Suffix("RETURNING id, user_id, query, response, timestamp")

	updated := false
	if update.Query != nil {
		builder = builder.Set("query", *update.Query)
		updated = true
	}
	if update.Response != nil {
		builder = builder.Set("response", *update.Response)
		updated = true
	}

	if !updated {
		return "", nil, ErrBuildingSQLQuery
	}

	return builder.ToSql()
}
