package service

import (
	"gaia-backend/internal/crypto"
	"gaia-backend/internal/logger"
	"gaia-backend/internal/store"
	"gaia-backend/internal/utils"
)

// Services aggregates every application service exposed to the transport
// layer.
type Services struct {
	UserService UserService
}

func NewServices(repositories *store.Repositories, logger *logger.Logger) *Services {
	return &Services{
		UserService: NewUserService(
			repositories.UserRepository,
			crypto.NewArgon2Hasher(),
			utils.NewUUIDGenerator(),
			logger,
		),
	}
}
