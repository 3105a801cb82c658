package service

import (
	"context"
	"fmt"

	"github.com/akulov/ai-research-assistant/internal/logger"
	"github.com/akulov/ai-research-assistant/internal/store"
	"github.com/akulov/ai-research-assistant/models"
)

// conversationService is the concrete implementation of ConversationService.
// Ownership checks live here: a record that exists but belongs to a
// different user is indistinguishable from a missing one.
type conversationService struct {
	conversationRepository store.ConversationRepository
	logger                 *logger.Logger
}

// NewConversationService constructs a ConversationService wired to the given
// ConversationRepository.
func NewConversationService(conversationRepository store.ConversationRepository, logger *logger.Logger) ConversationService {
	return &conversationService{
		conversationRepository: conversationRepository,
		logger:                 logger,
	}
}

// ListForUser returns the caller's conversations, newest first.
func (c *conversationService) ListForUser(ctx context.Context, userID int64) ([]models.Conversation, error) {
	log := logger.FromContext(ctx)

	conversations, err := c.conversationRepository.GetByUser(ctx, userID)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("conversation listing failed")
		return nil, fmt.Errorf("conversation listing failed: %w", err)
	}

	return conversations, nil
}

// GetForUser returns one conversation owned by the caller.
func (c *conversationService) GetForUser(ctx context.Context, userID, conversationID int64) (models.Conversation, error) {
	conversation, err := c.ownedConversation(ctx, userID, conversationID)
	if err != nil {
		return models.Conversation{}, err
	}

	return conversation, nil
}

// UpdateForUser modifies the query and/or response of a conversation owned
// by the caller and returns the updated record.
func (c *conversationService) UpdateForUser(ctx context.Context, userID int64, update models.ConversationUpdate) (models.Conversation, error) {
	log := logger.FromContext(ctx)

	if _, err := c.ownedConversation(ctx, userID, update.ID); err != nil {
		return models.Conversation{}, err
	}

	updated, err := c.conversationRepository.Update(ctx, update)
	if err != nil {
		log.Err(err).Int64("conversation_id", update.ID).Msg("conversation update failed")
		return models.Conversation{}, fmt.Errorf("conversation update failed: %w", err)
	}

	return updated, nil
}

// DeleteForUser removes one conversation owned by the caller.
func (c *conversationService) DeleteForUser(ctx context.Context, userID, conversationID int64) error {
	log := logger.FromContext(ctx)

	if _, err := c.ownedConversation(ctx, userID, conversationID); err != nil {
		return err
	}

	deleted, err := c.conversationRepository.DeleteByID(ctx, conversationID)
	if err != nil {
		log.Err(err).Int64("conversation_id", conversationID).Msg("conversation delete failed")
		return fmt.Errorf("conversation delete failed: %w", err)
	}
	if !deleted {
		return store.ErrConversationNotFound
	}

	return nil
}

// DeleteAllForUser removes every conversation belonging to the caller.
// Deleting an already empty history is not an error.
func (c *conversationService) DeleteAllForUser(ctx context.Context, userID int64) error {
	log := logger.FromContext(ctx)

	if _, err := c.conversationRepository.DeleteByUser(ctx, userID); err != nil {
		log.Err(err).Int64("user_id", userID).Msg("conversation history delete failed")
		return fmt.Errorf("conversation history delete failed: %w", err)
	}

	return nil
}

// ownedConversation loads a conversation and verifies the caller owns it.
func (c *conversationService) ownedConversation(ctx context.Context, userID, conversationID int64) (models.Conversation, error) {
	log := logger.FromContext(ctx)

	conversation, err := c.conversationRepository.GetByID(ctx, conversationID)
	if err != nil {
		log.Err(err).Int64("conversation_id", conversationID).Msg("conversation lookup failed")
		return models.Conversation{}, fmt.Errorf("conversation lookup failed: %w", err)
	}
	if conversation.UserID != userID {
		log.Warn().
			Int64("conversation_id", conversationID).
			Int64("owner_id", conversation.UserID).
			Int64("caller_id", userID).
			Msg("conversation access denied")
		return models.Conversation{}, store.ErrConversationNotFound
	}

	return conversation, nil
}
