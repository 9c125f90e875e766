package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gaia-backend/internal/crypto"
	"gaia-backend/internal/logger"
	"gaia-backend/internal/store"
	"gaia-backend/models"
)

// stubUserRepository records the last arguments it saw and replies with
// canned values.
type stubUserRepository struct {
	createdWith models.User
	updatedWith models.UpdateUser
	updatedID   uuid.UUID

	user models.User
	err  error
}

func (s *stubUserRepository) CreateUser(_ context.Context, user models.User) (models.User, error) {
	s.createdWith = user
	if s.err != nil {
		return models.User{}, s.err
	}
	return user, nil
}

func (s *stubUserRepository) GetUserByID(_ context.Context, _ uuid.UUID) (models.User, error) {
	return s.user, s.err
}

func (s *stubUserRepository) UpdateUser(_ context.Context, id uuid.UUID, update models.UpdateUser) (models.User, error) {
	s.updatedID = id
	s.updatedWith = update
	return s.user, s.err
}

type stubIDGenerator struct {
	id  uuid.UUID
	err error
}

func (s *stubIDGenerator) Generate() (uuid.UUID, error) {
	return s.id, s.err
}

type failingHasher struct{}

func (failingHasher) Hash(string) (string, error) {
	return "", errors.New("rng exhausted")
}

func (failingHasher) Verify(string, string) (bool, error) {
	return false, errors.New("rng exhausted")
}

func newTestUserService(repo store.UserRepository, hasher crypto.PasswordHasher, ids IDGenerator) UserService {
	return NewUserService(repo, hasher, ids, logger.Nop())
}

func TestCreateUser_AssignsIDAndHashesPassword(t *testing.T) {
	repo := &stubUserRepository{}
	id := uuid.MustParse("01890a5d-ac96-774b-bcce-b302099a8057")
	svc := newTestUserService(repo, crypto.NewArgon2Hasher(), &stubIDGenerator{id: id})

	created, err := svc.CreateUser(context.Background(), models.CreateUser{
		Username:  "gettestuser",
		Password:  "testpass",
		Email:     "gettest@example.com",
		FirstName: "Get",
		LastName:  "Test",
	})
	require.NoError(t, err)

	assert.Equal(t, id, created.ID)
	assert.Equal(t, "gettestuser", created.Username)

	// the repository must never see the plaintext
	assert.NotEqual(t, "testpass", repo.createdWith.Password)
	assert.True(t, strings.HasPrefix(repo.createdWith.Password, "$argon2id$"),
		"stored password is not a PHC string: %s", repo.createdWith.Password)
}

func TestCreateUser_IDGenerationFailure(t *testing.T) {
	repo := &stubUserRepository{}
	svc := newTestUserService(repo, crypto.NewArgon2Hasher(), &stubIDGenerator{err: errors.New("entropy gone")})

	_, err := svc.CreateUser(context.Background(), models.CreateUser{Password: "testpass"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrGeneratingID)
}

func TestCreateUser_HashingFailure(t *testing.T) {
	repo := &stubUserRepository{}
	svc := newTestUserService(repo, failingHasher{}, &stubIDGenerator{id: uuid.New()})

	_, err := svc.CreateUser(context.Background(), models.CreateUser{Password: "testpass"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrHashingPassword)
}

func TestCreateUser_RepositoryErrorPropagates(t *testing.T) {
	repo := &stubUserRepository{err: errors.New("db down")}
	svc := newTestUserService(repo, crypto.NewArgon2Hasher(), &stubIDGenerator{id: uuid.New()})

	_, err := svc.CreateUser(context.Background(), models.CreateUser{Password: "testpass"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db down")
}

func TestGetUser_NotFoundPropagates(t *testing.T) {
	repo := &stubUserRepository{err: store.ErrUserNotFound}
	svc := newTestUserService(repo, crypto.NewArgon2Hasher(), &stubIDGenerator{id: uuid.New()})

	_, err := svc.GetUser(context.Background(), uuid.New())
	require.Error(t, err)
	assert.ErrorIs(t, err, store.ErrUserNotFound)
}

func TestUpdateUser_HashesPasswordWhenPresent(t *testing.T) {
	repo := &stubUserRepository{}
	svc := newTestUserService(repo, crypto.NewArgon2Hasher(), &stubIDGenerator{id: uuid.New()})

	id := uuid.New()
	plaintext := "newpass"
	_, err := svc.UpdateUser(context.Background(), id, models.UpdateUser{Password: &plaintext})
	require.NoError(t, err)

	assert.Equal(t, id, repo.updatedID)
	require.NotNil(t, repo.updatedWith.Password)
	assert.NotEqual(t, "newpass", *repo.updatedWith.Password)
	assert.True(t, strings.HasPrefix(*repo.updatedWith.Password, "$argon2id$"))
}

func TestUpdateUser_LeavesAbsentPasswordAlone(t *testing.T) {
	repo := &stubUserRepository{}
	svc := newTestUserService(repo, failingHasher{}, &stubIDGenerator{id: uuid.New()})

	lastName := "User"
	// the failing hasher proves Hash is never called for a password-less patch
	_, err := svc.UpdateUser(context.Background(), uuid.New(), models.UpdateUser{LastName: &lastName})
	require.NoError(t, err)

	assert.Nil(t, repo.updatedWith.Password)
	require.NotNil(t, repo.updatedWith.LastName)
	assert.Equal(t, "User", *repo.updatedWith.LastName)
}

func TestUpdateUser_NotFoundPropagates(t *testing.T) {
	repo := &stubUserRepository{err: store.ErrUserNotFound}
	svc := newTestUserService(repo, crypto.NewArgon2Hasher(), &stubIDGenerator{id: uuid.New()})

	lastName := "User"
	_, err := svc.UpdateUser(context.Background(), uuid.New(), models.UpdateUser{LastName: &lastName})
	require.Error(t, err)
	assert.ErrorIs(t, err, store.ErrUserNotFound)
}
