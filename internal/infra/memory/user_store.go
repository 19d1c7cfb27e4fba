package memory

import (
	"context"
	"log/slog"
	"sync"

	"room-booking/internal/domain/user"
	"room-booking/internal/infra"
	"room-booking/internal/pkg/clock"
)

type UserStore struct {
	mu      sync.RWMutex
	users   map[int64]*user.User
	byEmail map[string]int64
	byChat  map[int64]int64
	seq     *sequence
	clock   clock.Clock
	logger  *slog.Logger
}

func NewUserStore(clk clock.Clock, logger *slog.Logger) *UserStore {
	return &UserStore{
		users:   make(map[int64]*user.User),
		byEmail: make(map[string]int64),
		byChat:  make(map[int64]int64),
		seq:     &sequence{},
		clock:   clk,
		logger:  logger,
	}
}

func (s *UserStore) Create(_ context.Context, u *user.User) (*user.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, taken := s.byEmail[u.Email().Value()]; taken {
		return nil, infra.WrapRepoErr(s.logger, infra.KindDuplicateKey, "email already registered", nil)
	}

	stored := user.ReconstructUser(
		s.seq.next(),
		u.Name().Value(),
		u.Email().Value(),
		u.PasswordHash(),
		u.Role(),
		nil,
		s.clock.Now().UTC(),
	)
	s.users[stored.ID()] = stored
	s.byEmail[stored.Email().Value()] = stored.ID()
	return stored, nil
}

func (s *UserStore) FindByID(_ context.Context, id int64) (*user.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return nil, infra.WrapRepoErr(s.logger, infra.KindNotFound, "user not found", nil)
	}
	return u, nil
}

func (s *UserStore) FindByEmail(_ context.Context, email string) (*user.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.byEmail[email]
	if !ok {
		return nil, infra.WrapRepoErr(s.logger, infra.KindNotFound, "user not found", nil)
	}
	return s.users[id], nil
}

func (s *UserStore) FindByTelegramID(_ context.Context, telegramID int64) (*user.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.byChat[telegramID]
	if !ok {
		return nil, infra.WrapRepoErr(s.logger, infra.KindNotFound, "user not found", nil)
	}
	return s.users[id], nil
}

func (s *UserStore) SetTelegramID(_ context.Context, userID, telegramID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[userID]
	if !ok {
		return infra.WrapRepoErr(s.logger, infra.KindNotFound, "user not found", nil)
	}
	if owner, taken := s.byChat[telegramID]; taken && owner != userID {
		return infra.WrapRepoErr(s.logger, infra.KindDuplicateKey, "telegram id already linked", nil)
	}
	if prev := u.TelegramID(); prev != nil {
		delete(s.byChat, *prev)
	}

	s.users[userID] = u.LinkTelegram(telegramID)
	s.byChat[telegramID] = userID
	return nil
}
