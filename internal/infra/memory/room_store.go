package memory

import (
	"cmp"
	"context"
	"log/slog"
	"slices"
	"sync"

	"room-booking/internal/domain/room"
	"room-booking/internal/infra"
	"room-booking/internal/pkg/clock"
)

type RoomStore struct {
	mu     sync.RWMutex
	rooms  map[int64]*room.Room
	seq    *sequence
	clock  clock.Clock
	logger *slog.Logger
}

func NewRoomStore(clk clock.Clock, logger *slog.Logger) *RoomStore {
	return &RoomStore{
		rooms:  make(map[int64]*room.Room),
		seq:    &sequence{},
		clock:  clk,
		logger: logger,
	}
}

func (s *RoomStore) Create(_ context.Context, r *room.Room) (*room.Room, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now().UTC()
	stored := room.ReconstructRoom(s.seq.next(), r.Name(), r.Capacity(), r.Description(), now, now)
	s.rooms[stored.ID()] = stored
	return stored, nil
}

func (s *RoomStore) Update(_ context.Context, r *room.Room) (*room.Room, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.rooms[r.ID()]
	if !ok {
		return nil, infra.WrapRepoErr(s.logger, infra.KindNotFound, "room not found", nil)
	}
	stored := room.ReconstructRoom(r.ID(), r.Name(), r.Capacity(), r.Description(), existing.CreatedAt(), s.clock.Now().UTC())
	s.rooms[stored.ID()] = stored
	return stored, nil
}

func (s *RoomStore) Delete(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.rooms[id]; !ok {
		return infra.WrapRepoErr(s.logger, infra.KindNotFound, "room not found", nil)
	}
	delete(s.rooms, id)
	return nil
}

func (s *RoomStore) FindByID(_ context.Context, id int64) (*room.Room, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.rooms[id]
	if !ok {
		return nil, infra.WrapRepoErr(s.logger, infra.KindNotFound, "room not found", nil)
	}
	return r, nil
}

func (s *RoomStore) List(_ context.Context) ([]*room.Room, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*room.Room, 0, len(s.rooms))
	for _, r := range s.rooms {
		out = append(out, r)
	}
	slices.SortFunc(out, func(a, b *room.Room) int {
		return cmp.Compare(a.ID(), b.ID())
	})
	return out, nil
}

