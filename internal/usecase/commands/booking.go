package commands

//go:generate mockgen -source=booking.go -destination=../../mock/commands/booking.go -package=commandsmock

import (
	"context"
	"log/slog"
	"time"

	"room-booking/internal/domain/booking"
	"room-booking/internal/pkg/clock"
	"room-booking/internal/pkg/errs"
	"room-booking/internal/usecase/shared"
)

type CreateReservationInput struct {
	RoomID      int64
	RequesterID int64
	Title       string
	Start       time.Time
	End         time.Time
}

type BookingCommands interface {
	CreateReservation(ctx context.Context, in CreateReservationInput) (*booking.Reservation, error)
	CancelReservation(ctx context.Context, reservationID int64, actor shared.Actor) error
}

type bookingCommandsImpl struct {
	uow    shared.UnitOfWork
	access shared.AccessPolicy
	events shared.EventPublisher
	clock  clock.Clock
	logger *slog.Logger
}

func NewBookingCommands(
	uow shared.UnitOfWork,
	access shared.AccessPolicy,
	events shared.EventPublisher,
	clk clock.Clock,
	logger *slog.Logger,
) BookingCommands {
	return &bookingCommandsImpl{
		uow:    uow,
		access: access,
		events: events,
		clock:  clk,
		logger: logger,
	}
}

// CreateReservation admits the candidate only if no committed reservation of
// the room overlaps it. The overlap check and the insert run under the room lock.
func (uc *bookingCommandsImpl) CreateReservation(ctx context.Context, in CreateReservationInput) (*booking.Reservation, error) {
	interval, err := booking.NewInterval(in.Start, in.End)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidInterval)
	}
	title, err := booking.NewTitle(in.Title)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}

	if _, err := uc.uow.Reads().Users().FindByID(ctx, in.RequesterID); err != nil {
		return nil, referenceErr(err, errs.ErrRequesterNotFound)
	}

	candidate := booking.NewReservation(in.RoomID, in.RequesterID, title, interval, uc.clock.Now())

	var created *booking.Reservation
	err = uc.uow.WithinRoom(ctx, in.RoomID, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Rooms().FindByID(ctx, in.RoomID); err != nil {
			return referenceErr(err, errs.ErrRoomNotFound)
		}

		existing, err := tx.Reservations().Query(ctx, in.RoomID, interval.Start(), interval.End())
		if err != nil {
			return err
		}
		if len(booking.Conflicting(existing, interval.Start(), interval.End())) > 0 {
			return errs.ErrSlotConflict
		}

		created, err = tx.Reservations().Insert(ctx, candidate)
		return err
	})
	if err != nil {
		uc.logger.Debug("reservation rejected",
			slog.Int64("room_id", in.RoomID),
			slog.Int64("requester_id", in.RequesterID),
			slog.String("interval", interval.String()),
			slog.String("error", err.Error()))
		return nil, err
	}

	uc.logger.Info("reservation committed",
		slog.Int64("reservation_id", created.ID()),
		slog.Int64("room_id", created.RoomID()),
		slog.String("interval", created.Interval().String()))
	uc.publish(ctx, shared.EventReservationCreated, created)

	return created, nil
}

func (uc *bookingCommandsImpl) CancelReservation(ctx context.Context, reservationID int64, actor shared.Actor) error {
	res, err := uc.uow.Reads().Reservations().FindByID(ctx, reservationID)
	if err != nil {
		return notFoundErr(err, errs.ErrReservationNotFound)
	}
	if !uc.access.CanCancel(actor, res) {
		return errs.ErrNotAuthorized
	}

	err = uc.uow.WithinRoom(ctx, res.RoomID(), func(ctx context.Context, tx shared.Tx) error {
		// a concurrent cancel may have won while we waited for the lock
		if _, err := tx.Reservations().FindByID(ctx, reservationID); err != nil {
			return notFoundErr(err, errs.ErrReservationNotFound)
		}
		return tx.Reservations().Remove(ctx, res.RoomID(), reservationID)
	})
	if err != nil {
		return err
	}

	uc.logger.Info("reservation cancelled",
		slog.Int64("reservation_id", reservationID),
		slog.Int64("room_id", res.RoomID()),
		slog.Int64("actor_id", actor.UserID))
	uc.publish(ctx, shared.EventReservationCancelled, res)

	return nil
}

func (uc *bookingCommandsImpl) publish(ctx context.Context, kind string, res *booking.Reservation) {
	event := shared.ReservationEvent{
		Type:          kind,
		ReservationID: res.ID(),
		RoomID:        res.RoomID(),
		RequesterID:   res.RequesterID(),
		Title:         res.Title().String(),
		Start:         res.Start(),
		End:           res.End(),
		OccurredAt:    uc.clock.Now().UTC(),
	}
	if err := uc.events.Publish(ctx, event); err != nil {
		uc.logger.Warn("failed to publish reservation event",
			slog.String("type", kind),
			slog.Int64("reservation_id", res.ID()),
			slog.String("error", err.Error()))
	}
}

// referenceErr turns a lookup miss into an InvalidReference error. Storage
// failures pass through unchanged.
func referenceErr(err, specific error) error {
	if errs.Is(err, errs.ErrNotFound) {
		return errs.Mark(specific, errs.ErrInvalidReference)
	}
	return err
}

func notFoundErr(err, specific error) error {
	if errs.Is(err, errs.ErrNotFound) {
		return errs.Mark(specific, errs.ErrNotFound)
	}
	return err
}
