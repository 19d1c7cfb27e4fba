package memory

import (
	"context"
	"log/slog"
	"sync"

	"room-booking/internal/pkg/clock"
	"room-booking/internal/usecase/shared"
)

// UoW serializes work per room through RoomLocks. Memory stores apply writes
// immediately, so callers perform every check before their first write.
type UoW struct {
	locks *shared.RoomLocks
	// global guards multi-store writes that have no room to lock on
	global sync.Mutex
	tx     *memTx
}

type memTx struct {
	reservations *IntervalStore
	rooms        *RoomStore
	users        *UserStore
	linkCodes    *LinkCodeStore
}

func NewUoW(clk clock.Clock, logger *slog.Logger) *UoW {
	return &UoW{
		locks: shared.NewRoomLocks(),
		tx: &memTx{
			reservations: NewIntervalStore(logger),
			rooms:        NewRoomStore(clk, logger),
			users:        NewUserStore(clk, logger),
			linkCodes:    NewLinkCodeStore(logger),
		},
	}
}

func (u *UoW) WithinRoom(ctx context.Context, roomID int64, fn func(ctx context.Context, tx shared.Tx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	unlock := u.locks.Lock(roomID)
	defer unlock()

	return fn(ctx, u.tx)
}

func (u *UoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	u.global.Lock()
	defer u.global.Unlock()

	return fn(ctx, u.tx)
}

func (u *UoW) Reads() shared.Tx {
	return u.tx
}

func (t *memTx) Reservations() shared.IntervalStore   { return t.reservations }
func (t *memTx) Rooms() shared.RoomRepository         { return t.rooms }
func (t *memTx) Users() shared.UserRepository         { return t.users }
func (t *memTx) LinkCodes() shared.LinkCodeRepository { return t.linkCodes }
