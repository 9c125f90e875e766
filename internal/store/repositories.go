package store

import "gaia-backend/internal/logger"

// Repositories aggregates every repository backed by the shared pool.
type Repositories struct {
	UserRepository UserRepository
}

func NewRepositories(db *DB, logger *logger.Logger) *Repositories {
	return &Repositories{
		UserRepository: NewUserRepository(db, logger),
	}
}
