package models

// RegisterRequest is the body of POST /register/.
type RegisterRequest struct {
	// Email is the unique login identifier. Required.
	Email string `json:"email"`

	// Password is the plaintext secret. Required; hashed before storage.
	Password string `json:"password"`

	// FullName is the display name. Required.
	FullName string `json:"full_name"`

	// SummaryLength is the initial summary-length preference.
	// Defaults to "medium" when empty.
	SummaryLength string `json:"summary_length,omitempty"`

	// PreferredTopics is a comma-joined list of topics to focus on,
	// e.g. "ai, robotics". Optional.
	PreferredTopics string `json:"preferred_topics,omitempty"`
}

// LoginRequest is the body of POST /login/.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse is returned on a successful login.
type LoginResponse struct {
	// AccessToken is the signed bearer token for subsequent requests.
	AccessToken string `json:"access_token"`

	// TokenType is always "bearer".
	TokenType string `json:"token_type"`

	// User is the outward representation of the authenticated account.
	User UserView `json:"user"`
}

// PreferencesRequest is the body of PUT /preferences/. Absent fields leave
// the current preference value untouched.
type PreferencesRequest struct {
	// SummaryLength replaces the stored summary length when non-nil.
	SummaryLength *string `json:"summary_length,omitempty"`

	// PreferredTopics is a comma-joined topic list; when non-nil it
	// replaces the stored topics entirely.
	PreferredTopics *string `json:"preferred_topics,omitempty"`
}

// MessageResponse is a generic confirmation payload.
type MessageResponse struct {
	Message string `json:"message"`
}
