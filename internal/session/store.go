package session

import (
	"context"
	"sync"
	"time"

	"github.com/shenikar/chelwa/internal/models"
	"github.com/shenikar/chelwa/pkg/metrics"
	"github.com/sirupsen/logrus"
)

type storedState struct {
	state    models.MovementState
	lastSeen time.Time
}

// Store хранит состояние перемещения каждой сессии в памяти процесса.
// Сессии без наблюдений дольше idle-интервала вытесняются Sweep.
type Store struct {
	mu     sync.RWMutex
	states map[string]storedState
	now    func() time.Time
}

func NewStore() *Store {
	return &Store{
		states: make(map[string]storedState),
		now:    time.Now,
	}
}

// Get возвращает состояние сессии; для новой или вытесненной сессии - нулевое состояние
func (s *Store) Get(sessionID string) models.MovementState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.states[sessionID].state
}

// Set сохраняет состояние и отмечает сессию как активную
func (s *Store) Set(sessionID string, state models.MovementState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.states[sessionID] = storedState{state: state, lastSeen: s.now()}
}

func (s *Store) Delete(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.states, sessionID)
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.states)
}

// Sweep удаляет сессии, не обновлявшиеся дольше idle, и возвращает их число
func (s *Store) Sweep(idle time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := s.now().Add(-idle)
	evicted := 0
	for id, st := range s.states {
		if st.lastSeen.Before(cutoff) {
			delete(s.states, id)
			evicted++
		}
	}
	return evicted
}

// RunEviction периодически вызывает Sweep до отмены контекста
func (s *Store) RunEviction(ctx context.Context, interval, idle time.Duration, logger *logrus.Logger) {
	if interval <= 0 || idle <= 0 {
		logger.Warn("Session eviction disabled")
		return
	}
	logger.WithFields(logrus.Fields{
		"interval": interval,
		"idle":     idle,
	}).Info("Starting session eviction...")

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("Stopping session eviction.")
			return
		case <-ticker.C:
			evicted := s.Sweep(idle)
			active := s.Len()
			metrics.SetActiveSessions(active, evicted)
			if evicted > 0 {
				logger.WithFields(logrus.Fields{
					"evicted": evicted,
					"active":  active,
				}).Debug("Evicted idle sessions")
			}
		}
	}
}
