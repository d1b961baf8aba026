package service

import (
	"context"
	"testing"
	"time"

	"quill/internal/models"
	"quill/internal/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// userRepoStub is a stub for repository.UserRepository backed by a map.
type userRepoStub struct {
	users  map[string]*models.User
	nextID uint
}

func newUserRepoStub() *userRepoStub {
	return &userRepoStub{users: make(map[string]*models.User), nextID: 1}
}

func (s *userRepoStub) GetByID(_ context.Context, id uint) (*models.User, error) {
	for _, u := range s.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, models.NewNotFoundError("User", id)
}

func (s *userRepoStub) GetByName(_ context.Context, name string) (*models.User, error) {
	return s.users[name], nil
}

func (s *userRepoStub) Create(_ context.Context, user *models.User) error {
	if _, exists := s.users[user.Name]; exists {
		return models.NewValidationError("name is already taken")
	}
	user.ID = s.nextID
	s.nextID++
	s.users[user.Name] = user
	return nil
}

func (s *userRepoStub) mustAdd(t *testing.T, name, password string) *models.User {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	user := &models.User{Name: name, Email: name + "@example.com", Password: string(hashed)}
	require.NoError(t, s.Create(context.Background(), user))
	return user
}

func newAccountService(repo *userRepoStub) (*AccountService, *session.Manager) {
	sessions := session.NewManager(session.NewMemoryStore(), time.Hour)
	return NewAccountService(repo, sessions), sessions
}

func TestAccountService_Register_Validation(t *testing.T) {
	t.Parallel()

	repo := newUserRepoStub()
	svc, _ := newAccountService(repo)
	ctx := context.Background()

	tests := []struct {
		name  string
		input RegisterInput
	}{
		{name: "name too short", input: RegisterInput{Name: "ab", Email: "a@x.com", Password: "pw123"}},
		{name: "missing email", input: RegisterInput{Name: "alice", Password: "pw123"}},
		{name: "missing password", input: RegisterInput{Name: "alice", Email: "a@x.com"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := svc.Register(ctx, tt.input)
			assertCode(t, err, "VALIDATION_ERROR")
		})
	}
	assert.Empty(t, repo.users, "no user may be created on validation failure")
}

func TestAccountService_Register_DuplicateName(t *testing.T) {
	t.Parallel()

	repo := newUserRepoStub()
	repo.mustAdd(t, "alice", "pw123")
	svc, _ := newAccountService(repo)

	_, _, err := svc.Register(context.Background(), RegisterInput{
		Name: "alice", Email: "other@x.com", Password: "pw456",
	})
	assertCode(t, err, "VALIDATION_ERROR")
	assert.Len(t, repo.users, 1)
}

func TestAccountService_Register_Success(t *testing.T) {
	t.Parallel()

	repo := newUserRepoStub()
	svc, sessions := newAccountService(repo)
	ctx := context.Background()

	user, token, err := svc.Register(ctx, RegisterInput{
		Name: "alice", Email: "a@x.com", Password: "pw123",
	})
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.NotZero(t, user.ID)
	assert.Equal(t, "alice", user.Name)

	// The stored password is a hash, never the plaintext.
	assert.NotEqual(t, "pw123", user.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("pw123")))

	// Registration leaves the caller logged in.
	userID, ok, err := sessions.Resolve(ctx, token)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, user.ID, userID)
}

func TestAccountService_Login_MissingFields(t *testing.T) {
	t.Parallel()

	svc, _ := newAccountService(newUserRepoStub())
	ctx := context.Background()

	_, _, err := svc.Login(ctx, LoginInput{Name: "alice"})
	assertCode(t, err, "VALIDATION_ERROR")

	_, _, err = svc.Login(ctx, LoginInput{Password: "pw123"})
	assertCode(t, err, "VALIDATION_ERROR")
}

func TestAccountService_Login_BadCredentials(t *testing.T) {
	t.Parallel()

	repo := newUserRepoStub()
	repo.mustAdd(t, "alice", "pw123")
	svc, _ := newAccountService(repo)
	ctx := context.Background()

	token, ok, err := svc.Login(ctx, LoginInput{Name: "nobody", Password: "pw123"})
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, token)

	token, ok, err = svc.Login(ctx, LoginInput{Name: "alice", Password: "wrong"})
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, token)
}

func TestAccountService_Login_RotatesSession(t *testing.T) {
	t.Parallel()

	repo := newUserRepoStub()
	user := repo.mustAdd(t, "alice", "pw123")
	svc, sessions := newAccountService(repo)
	ctx := context.Background()

	prior, err := sessions.Establish(ctx, user.ID)
	require.NoError(t, err)

	token, ok, err := svc.Login(ctx, LoginInput{Name: "alice", Password: "pw123", PriorToken: prior})
	require.NoError(t, err)
	require.True(t, ok)
	assert.NotEqual(t, prior, token)

	// The pre-auth token is dead; the new one resolves to the user.
	_, ok, err = sessions.Resolve(ctx, prior)
	require.NoError(t, err)
	assert.False(t, ok)

	userID, ok, err := sessions.Resolve(ctx, token)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, user.ID, userID)
}

func TestAccountService_Logout(t *testing.T) {
	t.Parallel()

	repo := newUserRepoStub()
	user := repo.mustAdd(t, "alice", "pw123")
	svc, sessions := newAccountService(repo)
	ctx := context.Background()

	token, err := sessions.Establish(ctx, user.ID)
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, token))
	_, ok, err := sessions.Resolve(ctx, token)
	require.NoError(t, err)
	assert.False(t, ok)

	// Logging out an unknown or empty token is not an error.
	require.NoError(t, svc.Logout(ctx, token))
	require.NoError(t, svc.Logout(ctx, ""))
}
