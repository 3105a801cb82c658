package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPreferences_Validate(t *testing.T) {
	for _, length := range []string{SummaryLengthShort, SummaryLengthMedium, SummaryLengthLong} {
		assert.NoError(t, Preferences{SummaryLength: length}.Validate())
	}

	assert.Error(t, Preferences{SummaryLength: "gigantic"}.Validate())
	assert.Error(t, Preferences{}.Validate())
}

func TestParsePreferences_EmptyBlobYieldsDefaults(t *testing.T) {
	for _, blob := range [][]byte{nil, {}} {
		prefs := ParsePreferences(blob)
		assert.Equal(t, DefaultPreferences(), prefs)
	}
}

func TestParsePreferences_MalformedBlobYieldsDefaults(t *testing.T) {
	prefs := ParsePreferences([]byte("{broken"))
	assert.Equal(t, DefaultPreferences(), prefs)
}

func TestParsePreferences_PartialBlobIsFilledIn(t *testing.T) {
	prefs := ParsePreferences([]byte(`{"preferred_topics":["ai"]}`))
	assert.Equal(t, SummaryLengthMedium, prefs.SummaryLength)
	assert.Equal(t, []string{"ai"}, prefs.PreferredTopics)

	prefs = ParsePreferences([]byte(`{"summary_length":"short"}`))
	assert.Equal(t, SummaryLengthShort, prefs.SummaryLength)
	assert.NotNil(t, prefs.PreferredTopics)
	assert.Empty(t, prefs.PreferredTopics)
}

func TestUser_PreferencesRoundTrip(t *testing.T) {
	want := Preferences{
		SummaryLength:   SummaryLengthLong,
		PreferredTopics: []string{"space", "robotics"},
	}

	var user User
	require.NoError(t, user.SetPreferences(want))
	assert.Equal(t, want, user.Preferences())
}

func TestUser_PreferencesOfFreshUserAreDefaults(t *testing.T) {
	assert.Equal(t, DefaultPreferences(), User{}.Preferences())
}

func TestUser_PublicViewHidesCredentials(t *testing.T) {
	user := User{
		UserID:       1,
		Email:        "alice@example.com",
		FullName:     "Alice",
		PasswordHash: "$2a$10$hash",
	}
	require.NoError(t, user.SetPreferences(DefaultPreferences()))

	view := user.PublicView()
	assert.Equal(t, int64(1), view.UserID)
	assert.Equal(t, "alice@example.com", view.Email)
	assert.Equal(t, DefaultPreferences(), view.Preferences)
}
