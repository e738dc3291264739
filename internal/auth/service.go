// Package auth implements the authentication core: password hashing, session
// token issuance and verification, and the register/login/profile service.
package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/tastebud-app/tastebud-backend/internal/models"
	"github.com/tastebud-app/tastebud-backend/internal/storage"
)

// Session is the result of a successful registration or login.
type Session struct {
	Token string
	User  models.PublicUser
}

// Service orchestrates registration, login, and profile fetch over an
// injected credential store and token manager.
type Service struct {
	store        storage.UserStore
	tokens       *TokenManager
	bcryptCost   int
	storeTimeout time.Duration
}

// NewService constructs a Service. A non-positive bcryptCost selects the
// library default.
func NewService(store storage.UserStore, tokens *TokenManager, bcryptCost int, storeTimeout time.Duration) *Service {
	if storeTimeout <= 0 {
		storeTimeout = 10 * time.Second
	}
	return &Service{
		store:        store,
		tokens:       tokens,
		bcryptCost:   bcryptCost,
		storeTimeout: storeTimeout,
	}
}

// Register creates a new user and returns a fresh session. The email
// pre-check is best effort; the store's uniqueness constraint is the final
// authority when two registrations race.
func (s *Service) Register(ctx context.Context, email, password string, fullName *string) (*Session, error) {
	if email == "" || password == "" {
		return nil, ErrValidation
	}

	ctx, cancel := context.WithTimeout(ctx, s.storeTimeout)
	defer cancel()

	_, err := s.store.FindByEmail(ctx, email)
	switch {
	case err == nil:
		return nil, ErrDuplicateUser
	case errors.Is(err, storage.ErrNotFound):
		// proceed
	default:
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	hash, err := HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	user, err := s.store.CreateUser(ctx, models.User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: hash,
		FullName:     fullName,
		CreatedAt:    time.Now().UTC(),
	})
	if err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			return nil, ErrDuplicateUser
		}
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	return s.newSession(user)
}

// Login verifies credentials and returns a fresh session. Unknown email and
// wrong password produce the same error; previously issued tokens stay valid
// until their own expiry.
func (s *Service) Login(ctx context.Context, email, password string) (*Session, error) {
	if email == "" || password == "" {
		return nil, ErrValidation
	}

	ctx, cancel := context.WithTimeout(ctx, s.storeTimeout)
	defer cancel()

	user, err := s.store.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	ok, err := CheckPassword(password, user.PasswordHash)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrInvalidCredentials
	}

	return s.newSession(user)
}

// GetProfile returns the public projection of the user behind a verified
// token, including the account creation time.
func (s *Service) GetProfile(ctx context.Context, userID uuid.UUID) (*models.PublicUser, error) {
	ctx, cancel := context.WithTimeout(ctx, s.storeTimeout)
	defer cancel()

	user, err := s.store.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	profile := user.Public()
	profile.CreatedAt = user.CreatedAt.Format(time.RFC3339)
	return &profile, nil
}

func (s *Service) newSession(user models.User) (*Session, error) {
	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}
	return &Session{Token: token, User: user.Public()}, nil
}
