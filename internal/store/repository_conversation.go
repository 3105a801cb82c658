package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/akulov/ai-research-assistant/internal/logger"
	"github.com/akulov/ai-research-assistant/models"
)

// conversationRepository is the PostgreSQL-backed implementation of
// [ConversationRepository]. It maintains the append-mostly ledger of research
// queries and generated responses in the "conversations" table.
type conversationRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewConversationRepository constructs a [ConversationRepository] backed by
// the provided database connection and logger.
func NewConversationRepository(db *DB, logger *logger.Logger) ConversationRepository {
	logger.Debug().Msg("creating conversation repository")
	return &conversationRepository{
		db:     db,
		logger: logger,
	}
}

// Create appends a conversation record and returns it with the
// server-assigned id and timestamp.
func (r *conversationRepository) Create(ctx context.Context, conversation models.Conversation) (models.Conversation, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createConversation, conversation.UserID, conversation.Query, conversation.Response)

	var created models.Conversation
	if err := row.Scan(&created.ID, &created.UserID, &created.Query, &created.Response, &created.Timestamp); err != nil {
		log.Err(err).Str("func", "*conversationRepository.Create").Msg("error: inserting conversation")
		return models.Conversation{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return created, nil
}

// GetAll returns every stored conversation, newest first.
func (r *conversationRepository) GetAll(ctx context.Context) ([]models.Conversation, error) {
	return r.selectConversations(ctx, nil)
}

// GetByUser returns the given user's conversations, newest first.
func (r *conversationRepository) GetByUser(ctx context.Context, userID int64) ([]models.Conversation, error) {
	return r.selectConversations(ctx, &userID)
}

// GetByID returns a single conversation or [ErrConversationNotFound].
func (r *conversationRepository) GetByID(ctx context.Context, conversationID int64) (models.Conversation, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectConversationByIDQuery(conversationID)
	if err != nil {
		log.Err(err).Str("func", "*conversationRepository.GetByID").Msg("error: building select query")
		return models.Conversation{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var found models.Conversation
	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&found.ID, &found.UserID, &found.Query, &found.Response, &found.Timestamp); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Conversation{}, ErrConversationNotFound
		}
		log.Err(err).Str("func", "*conversationRepository.GetByID").Msg("error: scanning conversation row")
		return models.Conversation{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return found, nil
}

// Update modifies the query and/or response of an existing conversation and
// returns the updated record. Only fields present in the update are touched.
func (r *conversationRepository) Update(ctx context.Context, update models.ConversationUpdate) (models.Conversation, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateConversationQuery(update)
	if err != nil {
		log.Err(err).Str("func", "*conversationRepository.Update").Msg("error: building update query")
		return models.Conversation{}, err
	}

	var updated models.Conversation
	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&updated.ID, &updated.UserID, &updated.Query, &updated.Response, &updated.Timestamp); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Conversation{}, ErrConversationNotFound
		}
		log.Err(err).Str("func", "*conversationRepository.Update").Msg("error: scanning updated conversation")
		return models.Conversation{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return updated, nil
}

// DeleteByID removes a single conversation. The boolean reports whether a
// row was actually deleted.
func (r *conversationRepository) DeleteByID(ctx context.Context, conversationID int64) (bool, error) {
	return r.deleteConversations(ctx, deleteConversationByID, conversationID)
}

// DeleteByUser removes all conversations belonging to a user. The boolean
// reports whether at least one row was deleted.
func (r *conversationRepository) DeleteByUser(ctx context.Context, userID int64) (bool, error) {
	return r.deleteConversations(ctx, deleteConversationsByUser, userID)
}

func (r *conversationRepository) selectConversations(ctx context.Context, userID *int64) ([]models.Conversation, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectConversationsQuery(userID)
	if err != nil {
		log.Err(err).Str("func", "*conversationRepository.selectConversations").Msg("error: building select query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*conversationRepository.selectConversations").Msg("error: executing select query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	conversations := make([]models.Conversation, 0)
	for rows.Next() {
		var c models.Conversation
		if err := rows.Scan(&c.ID, &c.UserID, &c.Query, &c.Response, &c.Timestamp); err != nil {
			log.Err(err).Str("func", "*conversationRepository.selectConversations").Msg("error: scanning conversation rows")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		conversations = append(conversations, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return conversations, nil
}

func (r *conversationRepository) deleteConversations(ctx context.Context, query string, arg int64) (bool, error) {
	log := logger.FromContext(ctx)

	// deletes are idempotent, so a transient failure is retried once
	var result sql.Result
	err := r.db.withRetry(func() error {
		var execErr error
		result, execErr = r.db.ExecContext(ctx, query, arg)
		return execErr
	})
	if err != nil {
		log.Err(err).Str("func", "*conversationRepository.deleteConversations").Msg("error: executing delete")
		return false, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "*conversationRepository.deleteConversations").Msg("error: reading affected rows")
		return false, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return affected > 0, nil
}
