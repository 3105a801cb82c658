package models

import "time"

// User represents a registered account of the research assistant.
// It contains identity attributes, credential data, and the serialized
// response-shaping preferences blob.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	// Assigned by the store on creation and immutable afterwards.
	UserID int64 `json:"id"`

	// Email is the unique login identifier. Stored and compared
	// case-sensitively.
	Email string `json:"email"`

	// FullName is the display name of the user.
	// It is non-sensitive and may be shown in responses.
	FullName string `json:"full_name"`

	// PasswordHash stores the one-way bcrypt hash of the user's password.
	// Never plaintext, never serialized outward.
	PasswordHash string `json:"-"`

	// PreferencesBlob holds the serialized Preferences as stored in the
	// database. Use Preferences and SetPreferences instead of touching
	// this field directly.
	PreferencesBlob []byte `json:"-"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Preferences deserializes the stored preferences blob.
//
// Missing or malformed data yields DefaultPreferences without an error.
// This silent-recovery contract means callers always get a usable value;
// validation of explicitly supplied preferences happens before
// SetPreferences, never here.
func (u User) Preferences() Preferences {
	return ParsePreferences(u.PreferencesBlob)
}

// SetPreferences serializes p into the stored blob. It performs no
// validation and no persistence; writing the user record to the store is a
// separate explicit step owned by the caller.
func (u *User) SetPreferences(p Preferences) error {
	blob, err := p.Marshal()
	if err != nil {
		return err
	}

	u.PreferencesBlob = blob
	return nil
}

// UserView is the outward representation of a User: decoded preferences,
// no credential material.
type UserView struct {
	UserID      int64       `json:"id"`
	Email       string      `json:"email"`
	FullName    string      `json:"full_name"`
	Preferences Preferences `json:"preferences"`
	CreatedAt   time.Time   `json:"created_at"`
}

// PublicView converts the user into its outward representation.
func (u User) PublicView() UserView {
	return UserView{
		UserID:      u.UserID,
		Email:       u.Email,
		FullName:    u.FullName,
		Preferences: u.Preferences(),
		CreatedAt:   u.CreatedAt,
	}
}
