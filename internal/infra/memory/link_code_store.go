package memory

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"room-booking/internal/infra"
	"room-booking/internal/usecase/shared"
)

type LinkCodeStore struct {
	mu     sync.Mutex
	codes  map[string]shared.LinkCode
	byUser map[int64]string
	logger *slog.Logger
}

func NewLinkCodeStore(logger *slog.Logger) *LinkCodeStore {
	return &LinkCodeStore{
		codes:  make(map[string]shared.LinkCode),
		byUser: make(map[int64]string),
		logger: logger,
	}
}

func (s *LinkCodeStore) Replace(_ context.Context, code shared.LinkCode) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if prev, ok := s.byUser[code.UserID]; ok {
		delete(s.codes, prev)
	}
	s.codes[code.Code] = code
	s.byUser[code.UserID] = code.Code
	return nil
}

func (s *LinkCodeStore) Consume(_ context.Context, code string, now time.Time) (*shared.LinkCode, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	lc, ok := s.codes[code]
	if !ok {
		return nil, infra.WrapRepoErr(s.logger, infra.KindNotFound, "link code not found", nil)
	}
	delete(s.codes, code)
	delete(s.byUser, lc.UserID)

	if !now.Before(lc.ExpiresAt) {
		return nil, infra.WrapRepoErr(s.logger, infra.KindNotFound, "link code expired", nil)
	}
	return &lc, nil
}
