package scheduler

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/jonar43/portfolio-api/internal/model"
	"gorm.io/gorm"
)

// TokenSweeper periodically deletes refresh tokens whose expiry has
// passed. The auth flow only reclaims an expired row when someone retries
// it, so tokens that are simply abandoned accumulate forever; the sweeper
// is an explicit opt-in (TOKEN_SWEEP_ENABLED) that closes that gap without
// changing the default lazy behavior.
type TokenSweeper struct {
	db       *gorm.DB
	interval time.Duration
	swept    int64
	lastRun  time.Time
	running  bool
	mu       sync.Mutex
	stopChan chan struct{}
}

func NewTokenSweeper(db *gorm.DB, interval time.Duration) *TokenSweeper {
	if interval == 0 {
		interval = 1 * time.Hour
	}

	return &TokenSweeper{
		db:       db,
		interval: interval,
		stopChan: make(chan struct{}),
	}
}

func (s *TokenSweeper) Start(ctx context.Context) {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return
	}
	s.running = true
	s.mu.Unlock()

	log.Printf("[Sweeper] Starting with interval %v", s.interval)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("[Sweeper] Context cancelled, stopping")
			return
		case <-s.stopChan:
			log.Println("[Sweeper] Stop signal received")
			return
		case <-ticker.C:
			s.sweep()
		}
	}
}

func (s *TokenSweeper) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		close(s.stopChan)
		s.running = false
		log.Println("[Sweeper] Stopped")
	}
}

func (s *TokenSweeper) sweep() {
	result := s.db.Where("expires_at < ?", time.Now()).Delete(&model.RefreshToken{})
	if result.Error != nil {
		log.Printf("[Sweeper] Error deleting expired tokens: %v", result.Error)
		return
	}

	s.mu.Lock()
	s.swept += result.RowsAffected
	s.lastRun = time.Now()
	s.mu.Unlock()

	if result.RowsAffected > 0 {
		log.Printf("[Sweeper] Deleted %d expired refresh tokens", result.RowsAffected)
	}
}

// GetStatus returns current sweeper status
func (s *TokenSweeper) GetStatus() map[string]interface{} {
	s.mu.Lock()
	defer s.mu.Unlock()

	return map[string]interface{}{
		"running":    s.running,
		"interval":   s.interval.String(),
		"totalSwept": s.swept,
		"lastRun":    s.lastRun,
	}
}
