package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/vancomm/minesweeper-board/internal/mines"
)

var ErrNotFound = errors.New("session not found")

// Store keeps sessions in memory. Boards are never persisted.
type Store struct {
	log *logrus.Logger
	ttl time.Duration

	// NewPlacer supplies mine placement for new boards.
	NewPlacer func() mines.Placer

	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewStore(log *logrus.Logger, ttl time.Duration) *Store {
	return &Store{
		log: log,
		ttl: ttl,
		NewPlacer: func() mines.Placer {
			return mines.RandomPlacer{Rand: mines.NewRand()}
		},
		sessions: make(map[string]*Session),
	}
}

func (s *Store) Create(params mines.Params) (*Session, error) {
	session, err := New(params, s.NewPlacer(), time.Now().UTC())
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.sessions[session.ID] = session
	s.mu.Unlock()

	return session, nil
}

func (s *Store) Get(id string) (*Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	return session, nil
}

func (s *Store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[id]; !ok {
		return ErrNotFound
	}
	delete(s.sessions, id)
	return nil
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// Sweep drops sessions that have seen no input for longer than the ttl and
// returns how many were dropped. A non-positive ttl keeps everything.
func (s *Store) Sweep(now time.Time) int {
	if s.ttl <= 0 {
		return 0
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	swept := 0
	for id, session := range s.sessions {
		if now.Sub(session.idleSince()) > s.ttl {
			delete(s.sessions, id)
			swept++
		}
	}
	return swept
}

// Run sweeps every interval until ctx is done.
func (s *Store) Run(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case now := <-ticker.C:
			if n := s.Sweep(now.UTC()); n > 0 {
				s.log.WithFields(logrus.Fields{
					"swept":     n,
					"remaining": s.Len(),
				}).Info("swept idle sessions")
			}
		}
	}
}
