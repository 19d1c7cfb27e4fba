package shared

import (
	"context"
	"time"

	"room-booking/internal/domain/booking"
	"room-booking/internal/domain/room"
	"room-booking/internal/domain/user"
)

type UnitOfWork interface {
	// WithinRoom: write transaction holding the room's exclusive lock for its whole duration
	WithinRoom(ctx context.Context, roomID int64, fn func(ctx context.Context, tx Tx) error) error
	// Within: write transaction without a room lock
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// Reads: non-transactional access for single reads
	Reads() Tx
}

type Tx interface {
	Reservations() IntervalStore
	Rooms() RoomRepository
	Users() UserRepository
	LinkCodes() LinkCodeRepository
}

// IntervalStore keeps, per room, the committed reservation intervals.
// Query accepts inverted bounds and returns nothing for them.
// Insert does not check overlap; callers hold the room lock and Query first.
type IntervalStore interface {
	Query(ctx context.Context, roomID int64, start, end time.Time) ([]*booking.Reservation, error)
	Insert(ctx context.Context, res *booking.Reservation) (*booking.Reservation, error)
	Remove(ctx context.Context, roomID, reservationID int64) error
	ListForRoomOnDay(ctx context.Context, roomID int64, dayStart, dayEnd time.Time) ([]*booking.Reservation, error)
	FindByID(ctx context.Context, id int64) (*booking.Reservation, error)
	ListUpcomingByRequester(ctx context.Context, requesterID int64, now time.Time) ([]*booking.Reservation, error)
	CountForRoom(ctx context.Context, roomID int64) (int, error)
}

type RoomRepository interface {
	Create(ctx context.Context, r *room.Room) (*room.Room, error)
	Update(ctx context.Context, r *room.Room) (*room.Room, error)
	Delete(ctx context.Context, id int64) error
	FindByID(ctx context.Context, id int64) (*room.Room, error)
	List(ctx context.Context) ([]*room.Room, error)
}

type UserRepository interface {
	Create(ctx context.Context, u *user.User) (*user.User, error)
	FindByID(ctx context.Context, id int64) (*user.User, error)
	FindByEmail(ctx context.Context, email string) (*user.User, error)
	FindByTelegramID(ctx context.Context, telegramID int64) (*user.User, error)
	SetTelegramID(ctx context.Context, userID, telegramID int64) error
}

type LinkCode struct {
	Code      string
	UserID    int64
	ExpiresAt time.Time
}

// LinkCodeRepository holds at most one pending code per user.
type LinkCodeRepository interface {
	Replace(ctx context.Context, code LinkCode) error
	Consume(ctx context.Context, code string, now time.Time) (*LinkCode, error)
}
