package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/fekuna/omnipos-backoffice-service/internal/auth"
	"github.com/fekuna/omnipos-backoffice-service/internal/auth/dto"
	"github.com/fekuna/omnipos-backoffice-service/internal/model"
	"github.com/fekuna/omnipos-backoffice-service/internal/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fakeUserRepo struct {
	users  map[string]*model.User
	nextID int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*model.User), nextID: 1}
}

func (r *fakeUserRepo) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	user, ok := r.users[username]
	if !ok {
		return nil, nil
	}
	return user, nil
}

func (r *fakeUserRepo) FindByID(ctx context.Context, id int64) (*model.User, error) {
	for _, user := range r.users {
		if user.UserID == id {
			return user, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Create(ctx context.Context, user *model.User) (int64, error) {
	id := r.nextID
	r.nextID++
	user.UserID = id
	r.users[user.Username] = user
	return id, nil
}

func newTestUseCase(repo auth.Repository) auth.UseCase {
	tm := auth.NewTokenManager("test-secret", time.Hour)
	return NewAuthUseCase(repo, tm, logger.NewNop())
}

func seedUser(t *testing.T, repo *fakeUserRepo, username, password, role string) {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	_, err = repo.Create(context.Background(), &model.User{
		Username: username,
		Password: string(hashed),
		Role:     role,
	})
	require.NoError(t, err)
}

func TestLogin(t *testing.T) {
	repo := newFakeUserRepo()
	seedUser(t, repo, "alice", "s3cret", "manager")
	uc := newTestUseCase(repo)

	token, user, err := uc.Login(context.Background(), "alice", "s3cret")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "manager", user.Role)
}

func TestLogin_WrongPassword(t *testing.T) {
	repo := newFakeUserRepo()
	seedUser(t, repo, "alice", "s3cret", "manager")
	uc := newTestUseCase(repo)

	_, _, err := uc.Login(context.Background(), "alice", "nope")
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLogin_UnknownUser(t *testing.T) {
	uc := newTestUseCase(newFakeUserRepo())

	_, _, err := uc.Login(context.Background(), "ghost", "whatever")
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestRegister(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newTestUseCase(repo)
	businessID := int64(7)

	user, err := uc.Register(context.Background(), &dto.RegisterInput{
		Username:   "bob",
		Password:   "s3cret",
		Role:       "admin",
		BusinessID: &businessID,
	})
	require.NoError(t, err)
	assert.NotZero(t, user.UserID)
	assert.NotEqual(t, "s3cret", user.Password, "password must be hashed")
}

func TestRegister_InvalidRole(t *testing.T) {
	uc := newTestUseCase(newFakeUserRepo())

	_, err := uc.Register(context.Background(), &dto.RegisterInput{
		Username: "bob",
		Password: "s3cret",
		Role:     "root",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidRole)
}

func TestRegister_DuplicateUsername(t *testing.T) {
	repo := newFakeUserRepo()
	seedUser(t, repo, "bob", "s3cret", "admin")
	uc := newTestUseCase(repo)

	_, err := uc.Register(context.Background(), &dto.RegisterInput{
		Username: "bob",
		Password: "other",
		Role:     "admin",
	})
	assert.ErrorIs(t, err, auth.ErrUserExists)
}
