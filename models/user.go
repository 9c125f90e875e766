package models

import "github.com/google/uuid"

// User represents a persisted account record.
// The Password field always holds an Argon2id hash in PHC string form;
// plaintext never reaches this struct. The `json:"-"` tag guarantees the
// hash is omitted from every API response.
type User struct {
	// ID is the server-assigned, time-ordered (version 7) identifier.
	// It is immutable once assigned.
	ID uuid.UUID `json:"id"`

	// Username is the account's login name.
	Username string `json:"username"`

	// Password stores the hash of the user's password.
	// This value MUST be a derived value (Argon2id PHC string), never plaintext.
	Password string `json:"-"`

	// Email is the account's contact address.
	Email string `json:"email"`

	// FirstName is the user's given name.
	FirstName string `json:"first_name"`

	// LastName is the user's family name.
	LastName string `json:"last_name"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// CreateUser is the request body for creating a user. All fields are
// required; Password carries the plaintext that is hashed before storage.
type CreateUser struct {
	Username  string `json:"username"`
	Password  string `json:"password"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// UpdateUser is the request body for a partial update. Every field is
// optional; nil fields leave the stored value unchanged. A non-nil Password
// is hashed before it replaces the stored hash.
type UpdateUser struct {
	Username  *string `json:"username"`
	Password  *string `json:"password"`
	Email     *string `json:"email"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
}

// Empty reports whether the patch names no fields at all.
func (u UpdateUser) Empty() bool {
	return u.Username == nil && u.Password == nil && u.Email == nil &&
		u.FirstName == nil && u.LastName == nil
}
