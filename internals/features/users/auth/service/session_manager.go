package service

import (
	"log"
	"sync"
	"time"

	"gorm.io/gorm"

	"storeadmin_backend/internals/features/users/auth/model"
)

// SessionManager owns the token-blacklist cleanup loop. It replaces a
// fire-and-forget goroutine with an explicit Start/Stop lifecycle so shutdown
// can drain it.
type SessionManager struct {
	db       *gorm.DB
	interval time.Duration

	mu      sync.Mutex
	done    chan struct{}
	stopped chan struct{}
}

func NewSessionManager(db *gorm.DB, interval time.Duration) *SessionManager {
	if interval <= 0 {
		interval = 6 * time.Hour
	}
	return &SessionManager{db: db, interval: interval}
}

func (m *SessionManager) Start() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.done != nil {
		return
	}
	m.done = make(chan struct{})
	m.stopped = make(chan struct{})

	go func(done, stopped chan struct{}) {
		defer close(stopped)
		ticker := time.NewTicker(m.interval)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				m.cleanupExpired()
			}
		}
	}(m.done, m.stopped)
}

func (m *SessionManager) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.done == nil {
		return
	}
	close(m.done)
	<-m.stopped
	m.done = nil
	m.stopped = nil
}

// cleanupExpired drops blacklist rows whose tokens have expired; they can no
// longer pass JWT validation anyway.
func (m *SessionManager) cleanupExpired() {
	res := m.db.Where("expired_at < ?", time.Now()).Delete(&model.TokenBlacklist{})
	if res.Error != nil {
		log.Printf("[CLEANUP ERROR] token blacklist: %v", res.Error)
		return
	}
	if res.RowsAffected > 0 {
		log.Printf("[CLEANUP] removed %d expired blacklist tokens", res.RowsAffected)
	}
}
