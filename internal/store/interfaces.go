package store

import (
	"context"

	"github.com/google/uuid"

	"gaia-backend/models"
)

// UserRepository is the persistence contract for user records. All methods
// execute exactly one statement against the shared pool.
type UserRepository interface {
	// CreateUser inserts a fully populated record (id and password hash
	// already assigned) and returns the canonical row written by the database.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// GetUserByID fetches one record by identifier.
	// Returns [ErrUserNotFound] when no row matches.
	GetUserByID(ctx context.Context, id uuid.UUID) (models.User, error)

	// UpdateUser applies a partial update, setting only the fields named in
	// update, and returns the resulting row.
	// Returns [ErrUserNotFound] when no row matches.
	UpdateUser(ctx context.Context, id uuid.UUID, update models.UpdateUser) (models.User, error)
}
