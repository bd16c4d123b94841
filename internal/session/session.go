package session

import (
	"encoding/base64"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/vancomm/minesweeper-board/internal/mines"
)

// Session is one live board. All input goes through Do, which holds the
// session lock, so a board only ever sees one event at a time.
type Session struct {
	ID        string
	StartedAt time.Time

	mu       sync.Mutex
	board    *mines.Board
	recorder *mines.Recorder
	endedAt  *time.Time
	lastSeen time.Time
}

// Summary is the board state reported alongside draw requests.
type Summary struct {
	SessionID     string       `json:"session_id"`
	Params        mines.Params `json:"params"`
	Status        mines.Status `json:"status"`
	RevealedCount int          `json:"revealed_count"`
	StartedAt     int64        `json:"started_at"`
	EndedAt       *int64       `json:"ended_at,omitempty"`
}

// Result is what one input produced.
type Result struct {
	Summary
	Updates []mines.DrawRequest `json:"updates"`
}

func newID() string {
	u := [16]byte(uuid.New())
	return base64.RawURLEncoding.EncodeToString(u[:])
}

func New(params mines.Params, placer mines.Placer, now time.Time) (*Session, error) {
	recorder := &mines.Recorder{}
	board, err := mines.NewBoard(params, placer, recorder)
	if err != nil {
		return nil, err
	}
	recorder.Drain()

	return &Session{
		ID:        newID(),
		StartedAt: now,
		board:     board,
		recorder:  recorder,
		lastSeen:  now,
	}, nil
}

// Do runs fn against the board and returns the draw requests it caused.
func (s *Session) Do(fn func(b *mines.Board) error) (*Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	s.lastSeen = now

	before := s.board.Status()
	err := fn(s.board)
	after := s.board.Status()

	switch {
	case !before.Terminal() && after.Terminal():
		s.endedAt = &now
	case before.Terminal() && !after.Terminal():
		s.endedAt = nil
	}

	res := &Result{
		Summary: s.summary(),
		Updates: s.recorder.Drain(),
	}
	if res.Updates == nil {
		res.Updates = []mines.DrawRequest{}
	}
	return res, err
}

// Views returns the summary together with every panel's current view. It
// counts as activity for idle eviction.
func (s *Session) Views() *Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastSeen = time.Now().UTC()

	return &Result{
		Summary: s.summary(),
		Updates: s.board.Views(),
	}
}

func (s *Session) String() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.board.String()
}

func (s *Session) idleSince() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen
}

func (s *Session) summary() Summary {
	var endedAt *int64
	if s.endedAt != nil {
		e := s.endedAt.UnixMilli()
		endedAt = &e
	}
	return Summary{
		SessionID:     s.ID,
		Params:        s.board.Params,
		Status:        s.board.Status(),
		RevealedCount: s.board.RevealedCount(),
		StartedAt:     s.StartedAt.UnixMilli(),
		EndedAt:       endedAt,
	}
}
