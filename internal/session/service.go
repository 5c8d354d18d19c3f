package session

import (
	"context"
	"errors"
	"time"

	"github.com/jonar43/portfolio-api/internal/auth"
	"github.com/jonar43/portfolio-api/internal/model"
)

// UserSummary is the projection of a user that leaves the session service.
// The password hash never crosses this boundary.
type UserSummary struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

type LoginResult struct {
	User         UserSummary
	RefreshToken string
}

// Service orchestrates the login / refresh / logout lifecycle over an
// injected Store.
type Service struct {
	store Store
	now   func() time.Time
}

func NewService(store Store) *Service {
	return &Service{store: store, now: time.Now}
}

// Login verifies the credentials and persists a fresh refresh token bound
// to the user. Unknown email and wrong password return the same error so
// the response cannot be used to probe which accounts exist. Each call
// creates a new token without touching earlier ones; concurrent sessions
// are allowed.
func (s *Service) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	user, err := s.store.UserByEmail(ctx, email)
	if errors.Is(err, ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if !auth.CheckPassword(password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	token, err := auth.GenerateRefreshToken()
	if err != nil {
		return nil, err
	}

	record := &model.RefreshToken{
		UserID:    user.ID,
		Token:     token,
		ExpiresAt: s.now().Add(auth.RefreshTokenExpiry),
		CreatedAt: s.now(),
	}
	if err := s.store.CreateRefreshToken(ctx, record); err != nil {
		return nil, err
	}

	return &LoginResult{
		User:         summarize(user),
		RefreshToken: token,
	}, nil
}

// Refresh validates a stored refresh token and returns the bound user's
// summary so the caller can mint a new access token. An expired record is
// deleted on detection; that is the only cleanup path for dead rows unless
// the optional sweeper is enabled. The token itself is not rotated: it
// stays valid until its original expiry or an explicit logout.
func (s *Service) Refresh(ctx context.Context, token string) (*UserSummary, error) {
	record, err := s.store.RefreshTokenByValue(ctx, token)
	if errors.Is(err, ErrNotFound) {
		return nil, ErrInvalidRefreshToken
	}
	if err != nil {
		return nil, err
	}

	if record.ExpiresAt.Before(s.now()) {
		if err := s.store.DeleteRefreshTokenByID(ctx, record.ID); err != nil {
			return nil, err
		}
		return nil, ErrRefreshTokenExpired
	}

	user, err := s.store.UserByID(ctx, record.UserID)
	if errors.Is(err, ErrNotFound) {
		return nil, ErrInvalidRefreshToken
	}
	if err != nil {
		return nil, err
	}

	summary := summarize(user)
	return &summary, nil
}

// Logout deletes the stored token by value. An unknown or already-removed
// token is not an error.
func (s *Service) Logout(ctx context.Context, token string) error {
	return s.store.DeleteRefreshTokensByValue(ctx, token)
}

func (s *Service) GetUser(ctx context.Context, id string) (*UserSummary, error) {
	user, err := s.store.UserByID(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}

	summary := summarize(user)
	return &summary, nil
}

func summarize(user *model.User) UserSummary {
	return UserSummary{
		ID:    user.ID,
		Email: user.Email,
		Name:  user.Name,
	}
}
