package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/akulov/ai-research-assistant/internal/logger"
	"github.com/akulov/ai-research-assistant/internal/metrics"
	"github.com/akulov/ai-research-assistant/internal/store"
	"github.com/akulov/ai-research-assistant/models"
)

// researchService is the concrete implementation of ResearchService. It runs
// the personalized query pipeline: user lookup, responder round trip, and a
// conversation ledger append.
type researchService struct {
	userRepository         store.UserRepository
	conversationRepository store.ConversationRepository
	responder              QueryResponder
	metrics                metrics.MetricsCollector
	logger                 *logger.Logger
}

// NewResearchService constructs a ResearchService wired to the given
// repositories and responder.
func NewResearchService(
	userRepository store.UserRepository,
	conversationRepository store.ConversationRepository,
	responder QueryResponder,
	collector metrics.MetricsCollector,
	logger *logger.Logger,
) ResearchService {
	return &researchService{
		userRepository:         userRepository,
		conversationRepository: conversationRepository,
		responder:              responder,
		metrics:                collector,
		logger:                 logger,
	}
}

// ProcessQuery runs one research query for the given user.
//
// The responder is fail-soft, so its output is always a storable string —
// even a degraded "please configure an API key" message produces a
// conversation record. Exactly one record is appended per successful run.
//
// Returns the assembled QueryResult or:
//   - ErrInvalidDataProvided if the query is blank or userID is not positive.
//   - A wrapped storage error if the user lookup fails
//     (see store.ErrNoUserWasFound).
//   - ErrQueryProcessingFailed (wrapped) if the ledger append fails.
func (r *researchService) ProcessQuery(ctx context.Context, userID int64, query string) (models.QueryResult, error) {
	log := logger.FromContext(ctx)

	query = strings.TrimSpace(query)
	if query == "" || userID <= 0 {
		log.Error().Int64("user_id", userID).Msg("invalid query data provided")
		return models.QueryResult{}, ErrInvalidDataProvided
	}

	user, err := r.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("user search by id failed")
		return models.QueryResult{}, fmt.Errorf("user search by id failed: %w", err)
	}

	prefs := user.Preferences()

	start := time.Now()
	response := r.responder.Respond(ctx, query, &prefs)
	if r.metrics != nil {
		r.metrics.RecordResearchQuery(time.Since(start))
	}

	conversation, err := r.conversationRepository.Create(ctx, models.Conversation{
		UserID:   userID,
		Query:    query,
		Response: response,
	})
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("conversation append failed")
		return models.QueryResult{}, fmt.Errorf("%w: %w", ErrQueryProcessingFailed, err)
	}

	if r.metrics != nil {
		r.metrics.RecordConversationCreated()
	}

	return models.QueryResult{
		UserID:         userID,
		Query:          query,
		Response:       response,
		ConversationID: conversation.ID,
		Preferences:    prefs,
	}, nil
}

// History returns the user's past research activity, newest first.
func (r *researchService) History(ctx context.Context, userID int64) (models.ResearchHistory, error) {
	log := logger.FromContext(ctx)

	if userID <= 0 {
		log.Error().Int64("user_id", userID).Msg("invalid user id provided")
		return models.ResearchHistory{}, ErrInvalidDataProvided
	}

	user, err := r.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("user search by id failed")
		return models.ResearchHistory{}, fmt.Errorf("user search by id failed: %w", err)
	}

	conversations, err := r.conversationRepository.GetByUser(ctx, userID)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("conversation listing failed")
		return models.ResearchHistory{}, fmt.Errorf("conversation listing failed: %w", err)
	}

	return models.ResearchHistory{
		UserID:        user.UserID,
		UserName:      user.FullName,
		TotalQueries:  len(conversations),
		Conversations: conversations,
	}, nil
}
