package session

import (
	"context"
	"errors"

	"github.com/jonar43/portfolio-api/internal/model"
	"gorm.io/gorm"
)

// Store is the persistence surface the session service needs. The service
// is constructed with one explicitly; it never reaches for a global handle.
type Store interface {
	UserByEmail(ctx context.Context, email string) (*model.User, error)
	UserByID(ctx context.Context, id string) (*model.User, error)
	CreateRefreshToken(ctx context.Context, token *model.RefreshToken) error
	RefreshTokenByValue(ctx context.Context, token string) (*model.RefreshToken, error)
	DeleteRefreshTokenByID(ctx context.Context, id int64) error
	DeleteRefreshTokensByValue(ctx context.Context, token string) error
}

// GormStore backs the session service with the shared gorm connection.
// Every operation is a single statement keyed by a unique column, so the
// database's row-level atomicity is all the coordination required.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) UserByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *GormStore) UserByID(ctx context.Context, id string) (*model.User, error) {
	var user model.User
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *GormStore) CreateRefreshToken(ctx context.Context, token *model.RefreshToken) error {
	return s.db.WithContext(ctx).Create(token).Error
}

func (s *GormStore) RefreshTokenByValue(ctx context.Context, token string) (*model.RefreshToken, error) {
	var record model.RefreshToken
	err := s.db.WithContext(ctx).Where("token = ?", token).First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (s *GormStore) DeleteRefreshTokenByID(ctx context.Context, id int64) error {
	return s.db.WithContext(ctx).Delete(&model.RefreshToken{}, id).Error
}

func (s *GormStore) DeleteRefreshTokensByValue(ctx context.Context, token string) error {
	// Delete by value: zero rows affected is fine, which makes logout
	// idempotent.
	return s.db.WithContext(ctx).Where("token = ?", token).Delete(&model.RefreshToken{}).Error
}
