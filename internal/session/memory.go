package session

import (
	"context"
	"sync"

	"github.com/jonar43/portfolio-api/internal/model"
)

// MemoryStore is a map-backed Store. Tests use it to exercise the session
// service without a database.
type MemoryStore struct {
	mu     sync.Mutex
	users  map[string]*model.User // keyed by id
	tokens map[string]*model.RefreshToken
	nextID int64
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:  make(map[string]*model.User),
		tokens: make(map[string]*model.RefreshToken),
	}
}

func (s *MemoryStore) AddUser(user *model.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *user
	s.users[user.ID] = &copied
}

func (s *MemoryStore) UserByEmail(_ context.Context, email string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, user := range s.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryStore) UserByID(_ context.Context, id string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *user
	return &copied, nil
}

func (s *MemoryStore) CreateRefreshToken(_ context.Context, token *model.RefreshToken) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	token.ID = s.nextID
	copied := *token
	s.tokens[token.Token] = &copied
	return nil
}

func (s *MemoryStore) RefreshTokenByValue(_ context.Context, token string) (*model.RefreshToken, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	record, ok := s.tokens[token]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *record
	return &copied, nil
}

func (s *MemoryStore) DeleteRefreshTokenByID(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for value, record := range s.tokens {
		if record.ID == id {
			delete(s.tokens, value)
			return nil
		}
	}
	return nil
}

func (s *MemoryStore) DeleteRefreshTokensByValue(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.tokens, token)
	return nil
}
