package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/akulov/ai-research-assistant/internal/logger"
	"github.com/akulov/ai-research-assistant/internal/mock"
	"github.com/akulov/ai-research-assistant/internal/store"
	"github.com/akulov/ai-research-assistant/models"
)

func newTestUserSvc(t *testing.T) (UserService, *mock.MockUserRepository) {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := mock.NewMockUserRepository(ctrl)

	return NewUserService(repo, logger.Nop()), repo
}

func userWithPrefs(t *testing.T, id int64, prefs models.Preferences) models.User {
	t.Helper()

	user := models.User{UserID: id, Email: "u@example.com", FullName: "U"}
	require.NoError(t, user.SetPreferences(prefs))
	return user
}

func TestGetByID_Success(t *testing.T) {
	svc, repo := newTestUserSvc(t)

	repo.EXPECT().
		FindUserByID(gomock.Any(), int64(1)).
		Return(models.User{UserID: 1, Email: "u@example.com"}, nil)

	user, err := svc.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "u@example.com", user.Email)
}

func TestGetByID_NotFound(t *testing.T) {
	svc, repo := newTestUserSvc(t)

	repo.EXPECT().
		FindUserByID(gomock.Any(), int64(404)).
		Return(models.User{}, store.ErrNoUserWasFound)

	_, err := svc.GetByID(context.Background(), 404)
	assert.ErrorIs(t, err, store.ErrNoUserWasFound)
}

func TestGetByID_InvalidID(t *testing.T) {
	svc, _ := newTestUserSvc(t)

	_, err := svc.GetByID(context.Background(), 0)
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestUpdatePreferences_MergesWithCurrent(t *testing.T) {
	svc, repo := newTestUserSvc(t)

	current := models.Preferences{
		SummaryLength:   models.SummaryLengthShort,
		PreferredTopics: []string{"ai"},
	}

	repo.EXPECT().
		FindUserByID(gomock.Any(), int64(1)).
		Return(userWithPrefs(t, 1, current), nil)

	repo.EXPECT().
		UpdatePreferences(gomock.Any(), int64(1), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int64, blob []byte) error {
			merged := models.ParsePreferences(blob)
			// summary length untouched, topics replaced
			assert.Equal(t, models.SummaryLengthShort, merged.SummaryLength)
			assert.Equal(t, []string{"science", "space"}, merged.PreferredTopics)
			return nil
		})

	topics := "science, space"
	updated, err := svc.UpdatePreferences(context.Background(), 1, models.PreferencesRequest{
		PreferredTopics: &topics,
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"science", "space"}, updated.Preferences().PreferredTopics)
}

func TestUpdatePreferences_SummaryLengthOnly(t *testing.T) {
	svc, repo := newTestUserSvc(t)

	current := models.Preferences{
		SummaryLength:   models.SummaryLengthMedium,
		PreferredTopics: []string{"ai"},
	}

	repo.EXPECT().
		FindUserByID(gomock.Any(), int64(1)).
		Return(userWithPrefs(t, 1, current), nil)

	repo.EXPECT().
		UpdatePreferences(gomock.Any(), int64(1), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int64, blob []byte) error {
			merged := models.ParsePreferences(blob)
			assert.Equal(t, models.SummaryLengthLong, merged.SummaryLength)
			assert.Equal(t, []string{"ai"}, merged.PreferredTopics)
			return nil
		})

	length := models.SummaryLengthLong
	_, err := svc.UpdatePreferences(context.Background(), 1, models.PreferencesRequest{
		SummaryLength: &length,
	})

	require.NoError(t, err)
}

func TestUpdatePreferences_InvalidSummaryLength(t *testing.T) {
	svc, repo := newTestUserSvc(t)

	repo.EXPECT().
		FindUserByID(gomock.Any(), int64(1)).
		Return(userWithPrefs(t, 1, models.DefaultPreferences()), nil)

	length := "gigantic"
	_, err := svc.UpdatePreferences(context.Background(), 1, models.PreferencesRequest{
		SummaryLength: &length,
	})

	assert.ErrorIs(t, err, ErrInvalidSummaryLength)
}

func TestUpdatePreferences_UserNotFound(t *testing.T) {
	svc, repo := newTestUserSvc(t)

	repo.EXPECT().
		FindUserByID(gomock.Any(), int64(404)).
		Return(models.User{}, store.ErrNoUserWasFound)

	length := models.SummaryLengthLong
	_, err := svc.UpdatePreferences(context.Background(), 404, models.PreferencesRequest{
		SummaryLength: &length,
	})

	assert.ErrorIs(t, err, store.ErrNoUserWasFound)
}
