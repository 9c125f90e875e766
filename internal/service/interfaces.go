package service

import (
	"context"

	"github.com/google/uuid"

	"gaia-backend/models"
)

// UserService owns the write-side discipline for user records: identifier
// generation and password-at-rest handling happen here, before anything
// touches the repository.
type UserService interface {
	// CreateUser assigns a fresh time-ordered identifier, hashes the
	// plaintext password, and persists the record.
	CreateUser(ctx context.Context, in models.CreateUser) (models.User, error)

	// GetUser fetches one record by identifier.
	GetUser(ctx context.Context, id uuid.UUID) (models.User, error)

	// UpdateUser applies a partial update. A password in the patch is hashed
	// before storage; absent fields keep their stored values.
	UpdateUser(ctx context.Context, id uuid.UUID, update models.UpdateUser) (models.User, error)
}

// IDGenerator produces identifiers for new records.
type IDGenerator interface {
	Generate() (uuid.UUID, error)
}
