package memory

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"room-booking/internal/domain/booking"
	"room-booking/internal/infra"
)

// IntervalStore keeps reservations per room in memory. Reads take a shared
// lock so they see a consistent snapshot and run concurrently.
type IntervalStore struct {
	mu     sync.RWMutex
	byRoom map[int64]map[int64]*booking.Reservation
	byID   map[int64]*booking.Reservation
	seq    *sequence
	logger *slog.Logger
}

func NewIntervalStore(logger *slog.Logger) *IntervalStore {
	return &IntervalStore{
		byRoom: make(map[int64]map[int64]*booking.Reservation),
		byID:   make(map[int64]*booking.Reservation),
		seq:    &sequence{},
		logger: logger,
	}
}

func (s *IntervalStore) Query(_ context.Context, roomID int64, start, end time.Time) ([]*booking.Reservation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*booking.Reservation
	for _, r := range s.byRoom[roomID] {
		if booking.Overlaps(r.Start(), r.End(), start, end) {
			out = append(out, r)
		}
	}
	booking.SortByStart(out)
	return out, nil
}

func (s *IntervalStore) Insert(_ context.Context, res *booking.Reservation) (*booking.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := res.WithID(s.seq.next())
	room, ok := s.byRoom[stored.RoomID()]
	if !ok {
		room = make(map[int64]*booking.Reservation)
		s.byRoom[stored.RoomID()] = room
	}
	room[stored.ID()] = stored
	s.byID[stored.ID()] = stored
	return stored, nil
}

func (s *IntervalStore) Remove(_ context.Context, roomID, reservationID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	room, ok := s.byRoom[roomID]
	if !ok {
		return nil
	}
	if _, ok := room[reservationID]; !ok {
		return nil
	}
	delete(room, reservationID)
	delete(s.byID, reservationID)
	if len(room) == 0 {
		delete(s.byRoom, roomID)
	}
	return nil
}

func (s *IntervalStore) ListForRoomOnDay(ctx context.Context, roomID int64, dayStart, dayEnd time.Time) ([]*booking.Reservation, error) {
	return s.Query(ctx, roomID, dayStart, dayEnd)
}

func (s *IntervalStore) FindByID(_ context.Context, id int64) (*booking.Reservation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.byID[id]
	if !ok {
		return nil, infra.WrapRepoErr(s.logger, infra.KindNotFound, "reservation not found", nil)
	}
	return r, nil
}

func (s *IntervalStore) ListUpcomingByRequester(_ context.Context, requesterID int64, now time.Time) ([]*booking.Reservation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*booking.Reservation
	for _, r := range s.byID {
		if r.RequesterID() == requesterID && r.IsUpcoming(now) {
			out = append(out, r)
		}
	}
	booking.SortByStart(out)
	return out, nil
}

func (s *IntervalStore) CountForRoom(_ context.Context, roomID int64) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.byRoom[roomID]), nil
}
