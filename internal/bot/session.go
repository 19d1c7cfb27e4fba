package bot

import (
	"context"
	"sync"
	"time"
)

type Step string

const (
	StepIdle          Step = ""
	StepAwaitingRoom  Step = "awaiting_room"
	StepAwaitingDate  Step = "awaiting_date"
	StepAwaitingTime  Step = "awaiting_time"
	StepAwaitingTitle Step = "awaiting_title"
)

// Session is the booking wizard draft of one chat.
type Session struct {
	Step   Step      `json:"step"`
	RoomID int64     `json:"room_id,omitempty"`
	Date   string    `json:"date,omitempty"`
	Start  time.Time `json:"start"`
	End    time.Time `json:"end"`
}

// SessionStore returns (nil, nil) for chats without a draft.
type SessionStore interface {
	Get(ctx context.Context, chatID int64) (*Session, error)
	Save(ctx context.Context, chatID int64, s *Session) error
	Delete(ctx context.Context, chatID int64) error
}

type MemorySessionStore struct {
	mu       sync.Mutex
	sessions map[int64]Session
}

func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{sessions: make(map[int64]Session)}
}

func (m *MemorySessionStore) Get(_ context.Context, chatID int64) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[chatID]
	if !ok {
		return nil, nil
	}
	return &s, nil
}

func (m *MemorySessionStore) Save(_ context.Context, chatID int64, s *Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.sessions[chatID] = *s
	return nil
}

func (m *MemorySessionStore) Delete(_ context.Context, chatID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.sessions, chatID)
	return nil
}
