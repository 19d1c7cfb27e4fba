package queries

//go:generate mockgen -source=room.go -destination=../../mock/queries/room.go -package=queriesmock

import (
	"context"

	"room-booking/internal/domain/room"
	"room-booking/internal/pkg/errs"
	"room-booking/internal/usecase/shared"
)

type RoomQueries interface {
	ListRooms(ctx context.Context) ([]RoomView, error)
	GetRoom(ctx context.Context, id int64) (*RoomView, error)
}

type roomQueriesImpl struct {
	uow shared.UnitOfWork
}

func NewRoomQueries(uow shared.UnitOfWork) RoomQueries {
	return &roomQueriesImpl{uow: uow}
}

func (q *roomQueriesImpl) ListRooms(ctx context.Context) ([]RoomView, error) {
	rooms, err := q.uow.Reads().Rooms().List(ctx)
	if err != nil {
		return nil, err
	}
	views := make([]RoomView, 0, len(rooms))
	for _, r := range rooms {
		views = append(views, ToRoomView(r))
	}
	return views, nil
}

func (q *roomQueriesImpl) GetRoom(ctx context.Context, id int64) (*RoomView, error) {
	r, err := q.uow.Reads().Rooms().FindByID(ctx, id)
	if err != nil {
		if errs.Is(err, errs.ErrNotFound) {
			return nil, errs.Mark(errs.ErrRoomNotFound, errs.ErrNotFound)
		}
		return nil, err
	}
	view := ToRoomView(r)
	return &view, nil
}

func ToRoomView(r *room.Room) RoomView {
	return RoomView{
		ID:          r.ID(),
		Name:        r.Name(),
		Capacity:    r.Capacity(),
		Description: r.Description(),
		CreatedAt:   r.CreatedAt(),
		UpdatedAt:   r.UpdatedAt(),
	}
}
