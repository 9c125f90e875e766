package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUserNotFound is returned when a query expected to match a user
	// record produces an empty result set.
	ErrUserNotFound = errors.New("user not found")

	// ErrBuildingSQLQuery is returned when constructing the dynamic
	// partial-update statement fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")
)
