package queries

//go:generate mockgen -source=booking.go -destination=../../mock/queries/booking.go -package=queriesmock

import (
	"context"
	"time"

	"room-booking/internal/domain/booking"
	"room-booking/internal/pkg/errs"
	"room-booking/internal/usecase/shared"
)

type BookingQueries interface {
	ListReservations(ctx context.Context, roomID int64, dayStart, dayEnd time.Time) ([]ReservationView, error)
	ListUpcomingForRequester(ctx context.Context, requesterID int64, now time.Time) ([]UpcomingReservationView, error)
	GetReservation(ctx context.Context, id int64) (*ReservationView, error)
}

type bookingQueriesImpl struct {
	uow shared.UnitOfWork
}

func NewBookingQueries(uow shared.UnitOfWork) BookingQueries {
	return &bookingQueriesImpl{uow: uow}
}

// ListReservations returns the room's reservations overlapping the window,
// ascending by start.
func (q *bookingQueriesImpl) ListReservations(ctx context.Context, roomID int64, dayStart, dayEnd time.Time) ([]ReservationView, error) {
	reads := q.uow.Reads()
	if _, err := reads.Rooms().FindByID(ctx, roomID); err != nil {
		if errs.Is(err, errs.ErrNotFound) {
			return nil, errs.Mark(errs.ErrRoomNotFound, errs.ErrNotFound)
		}
		return nil, err
	}

	list, err := reads.Reservations().ListForRoomOnDay(ctx, roomID, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}

	views := make([]ReservationView, 0, len(list))
	for _, r := range list {
		views = append(views, ToReservationView(r))
	}
	return views, nil
}

func (q *bookingQueriesImpl) ListUpcomingForRequester(ctx context.Context, requesterID int64, now time.Time) ([]UpcomingReservationView, error) {
	list, err := q.uow.Reads().Reservations().ListUpcomingByRequester(ctx, requesterID, now)
	if err != nil {
		return nil, err
	}

	views := make([]UpcomingReservationView, 0, len(list))
	for _, r := range list {
		views = append(views, UpcomingReservationView{
			ID:    r.ID(),
			Title: r.Title().String(),
			Start: r.Start(),
		})
	}
	return views, nil
}

func (q *bookingQueriesImpl) GetReservation(ctx context.Context, id int64) (*ReservationView, error) {
	r, err := q.uow.Reads().Reservations().FindByID(ctx, id)
	if err != nil {
		if errs.Is(err, errs.ErrNotFound) {
			return nil, errs.Mark(errs.ErrReservationNotFound, errs.ErrNotFound)
		}
		return nil, err
	}
	view := ToReservationView(r)
	return &view, nil
}

func ToReservationView(r *booking.Reservation) ReservationView {
	return ReservationView{
		ID:          r.ID(),
		RoomID:      r.RoomID(),
		RequesterID: r.RequesterID(),
		Title:       r.Title().String(),
		Start:       r.Start(),
		End:         r.End(),
		CreatedAt:   r.CreatedAt(),
	}
}
