package service

import (
	"context"

	"quill/internal/models"
	"quill/internal/repository"
	"quill/internal/validation"

	"golang.org/x/crypto/bcrypt"
)

// SessionManager is the authentication collaborator used by AccountService.
// Implemented by session.Manager.
type SessionManager interface {
	Establish(ctx context.Context, userID uint) (string, error)
	Rotate(ctx context.Context, oldToken string, userID uint) (string, error)
	Destroy(ctx context.Context, token string) error
}

// AccountService handles registration, login, and logout.
type AccountService struct {
	userRepo repository.UserRepository
	sessions SessionManager
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

type LoginInput struct {
	Name     string
	Password string
	// PriorToken is the caller's pre-auth session token, if any. Login
	// rotates it so an attacker-planted token can never become
	// authenticated.
	PriorToken string
}

func NewAccountService(userRepo repository.UserRepository, sessions SessionManager) *AccountService {
	return &AccountService{userRepo: userRepo, sessions: sessions}
}

// Register creates a new user and establishes a session for it.
// Returns the created user and the session token.
func (s *AccountService) Register(ctx context.Context, in RegisterInput) (*models.User, string, error) {
	if err := validation.ValidateName(in.Name); err != nil {
		return nil, "", models.NewValidationError(err.Error())
	}
	if err := validation.ValidateEmail(in.Email); err != nil {
		return nil, "", models.NewValidationError(err.Error())
	}
	if err := validation.ValidatePassword(in.Password); err != nil {
		return nil, "", models.NewValidationError(err.Error())
	}

	existing, err := s.userRepo.GetByName(ctx, in.Name)
	if err != nil {
		return nil, "", err
	}
	if existing != nil {
		return nil, "", models.NewValidationError("name is already taken")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", models.NewInternalError(err)
	}

	user := &models.User{
		Name:     in.Name,
		Email:    in.Email,
		Password: string(hashed),
	}
	// The DB unique index backstops the read-then-write race on the name.
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, "", err
	}

	token, err := s.sessions.Establish(ctx, user.ID)
	if err != nil {
		return nil, "", models.NewInternalError(err)
	}
	return user, token, nil
}

// Login verifies credentials and, on success, rotates the session and
// returns (token, true, nil). Bad credentials return ok=false with no
// error: success and failure are indistinguishable to the client beyond
// the resulting session state.
func (s *AccountService) Login(ctx context.Context, in LoginInput) (string, bool, error) {
	if in.Name == "" || in.Password == "" {
		return "", false, models.NewValidationError("name and password are required")
	}

	user, err := s.userRepo.GetByName(ctx, in.Name)
	if err != nil {
		return "", false, err
	}
	if user == nil {
		return "", false, nil
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(in.Password)) != nil {
		return "", false, nil
	}

	token, err := s.sessions.Rotate(ctx, in.PriorToken, user.ID)
	if err != nil {
		return "", false, models.NewInternalError(err)
	}
	return token, true, nil
}

// Logout destroys the session for token. Always succeeds for unknown tokens.
func (s *AccountService) Logout(ctx context.Context, token string) error {
	if err := s.sessions.Destroy(ctx, token); err != nil {
		return models.NewInternalError(err)
	}
	return nil
}
