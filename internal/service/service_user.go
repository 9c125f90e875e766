package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"gaia-backend/internal/crypto"
	"gaia-backend/internal/logger"
	"gaia-backend/internal/store"
	"gaia-backend/models"
)

// userService is the concrete implementation of [UserService].
type userService struct {
	// userRepository is the data-access layer used to create, look up, and
	// update users.
	userRepository store.UserRepository

	// hasher turns plaintext passwords into PHC strings before storage.
	hasher crypto.PasswordHasher

	// ids generates time-ordered identifiers for new records.
	ids IDGenerator

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewUserService constructs a [UserService] wired to the given repository,
// hasher, and identifier generator.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewUserService(userRepository store.UserRepository, hasher crypto.PasswordHasher, ids IDGenerator, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		hasher:         hasher,
		ids:            ids,
		logger:         logger,
	}
}

// CreateUser assigns a fresh UUIDv7, hashes the plaintext password, and
// persists the full record with a single INSERT. The returned user is the
// canonical row written by the database.
func (s *userService) CreateUser(ctx context.Context, in models.CreateUser) (models.User, error) {
	log := logger.FromContext(ctx)

	id, err := s.ids.Generate()
	if err != nil {
		log.Err(err).Msg("user id generation failed")
		return models.User{}, fmt.Errorf("%w: %w", ErrGeneratingID, err)
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("%w: %w", ErrHashingPassword, err)
	}

	user := models.User{
		ID:        id,
		Username:  in.Username,
		Password:  hash,
		Email:     in.Email,
		FirstName: in.FirstName,
		LastName:  in.LastName,
	}

	created, err := s.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("username", in.Username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return created, nil
}

// GetUser fetches one record by identifier.
func (s *userService) GetUser(ctx context.Context, id uuid.UUID) (models.User, error) {
	log := logger.FromContext(ctx)

	found, err := s.userRepository.GetUserByID(ctx, id)
	if err != nil {
		log.Err(err).Str("id", id.String()).Msg("user lookup ended with error")
		return models.User{}, fmt.Errorf("user lookup ended with error: %w", err)
	}

	return found, nil
}

// UpdateUser applies a partial update. When the patch carries a password the
// plaintext is replaced with its hash before the repository sees it; the
// stored hash is left alone otherwise.
func (s *userService) UpdateUser(ctx context.Context, id uuid.UUID, update models.UpdateUser) (models.User, error) {
	log := logger.FromContext(ctx)

	if update.Password != nil {
		hash, err := s.hasher.Hash(*update.Password)
		if err != nil {
			log.Err(err).Msg("password hashing failed")
			return models.User{}, fmt.Errorf("%w: %w", ErrHashingPassword, err)
		}
		update.Password = &hash
	}

	updated, err := s.userRepository.UpdateUser(ctx, id, update)
	if err != nil {
		log.Err(err).Str("id", id.String()).Msg("user update ended with error")
		return models.User{}, fmt.Errorf("user update ended with error: %w", err)
	}

	return updated, nil
}
