package service

import (
	"context"
	"fmt"

	"github.com/akulov/ai-research-assistant/internal/logger"
	"github.com/akulov/ai-research-assistant/internal/store"
	"github.com/akulov/ai-research-assistant/models"
)

// userService is the concrete implementation of UserService.
type userService struct {
	userRepository store.UserRepository
	logger         *logger.Logger
}

// NewUserService constructs a UserService wired to the given UserRepository.
func NewUserService(userRepository store.UserRepository, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		logger:         logger,
	}
}

// GetByID returns the user record for the given id.
func (u *userService) GetByID(ctx context.Context, userID int64) (models.User, error) {
	log := logger.FromContext(ctx)

	if userID <= 0 {
		log.Error().Int64("user_id", userID).Msg("invalid user id provided")
		return models.User{}, ErrInvalidDataProvided
	}

	user, err := u.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("user search by id failed")
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}

	return user, nil
}

// UpdatePreferences merges the supplied changes into the user's current
// preferences and stores the result explicitly. A nil field in req leaves
// the corresponding preference untouched.
//
// Returns the user with the updated preferences applied, or:
//   - ErrInvalidSummaryLength if the new summary length is outside the
//     enumeration.
//   - A wrapped storage error (e.g. store.ErrNoUserWasFound).
func (u *userService) UpdatePreferences(ctx context.Context, userID int64, req models.PreferencesRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := u.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("user search by id failed")
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}

	prefs := user.Preferences()
	if req.SummaryLength != nil {
		prefs.SummaryLength = *req.SummaryLength
		if err = prefs.Validate(); err != nil {
			log.Error().Str("summary_length", prefs.SummaryLength).Msg("invalid summary length provided")
			return models.User{}, ErrInvalidSummaryLength
		}
	}
	if req.PreferredTopics != nil {
		prefs.PreferredTopics = splitTopics(*req.PreferredTopics)
	}

	if err = user.SetPreferences(prefs); err != nil {
		log.Err(err).Int64("user_id", userID).Msg("preferences serialization failed")
		return models.User{}, fmt.Errorf("preferences serialization failed: %w", err)
	}

	if err = u.userRepository.UpdatePreferences(ctx, userID, user.PreferencesBlob); err != nil {
		log.Err(err).Int64("user_id", userID).Msg("preferences update failed")
		return models.User{}, fmt.Errorf("preferences update failed: %w", err)
	}

	return user, nil
}
