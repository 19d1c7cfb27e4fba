package commands

//go:generate mockgen -source=room.go -destination=../../mock/commands/room.go -package=commandsmock

import (
	"context"
	"log/slog"

	"room-booking/internal/domain/room"
	"room-booking/internal/pkg/errs"
	"room-booking/internal/pkg/patch"
	"room-booking/internal/usecase/shared"
)

type RoomInput struct {
	Name        string
	Capacity    int
	Description string
}

// RoomPatch leaves nil fields unchanged.
type RoomPatch struct {
	Name        *string
	Capacity    *int
	Description *string
}

type RoomCommands interface {
	CreateRoom(ctx context.Context, in RoomInput) (*room.Room, error)
	UpdateRoom(ctx context.Context, roomID int64, p RoomPatch) (*room.Room, error)
	DeleteRoom(ctx context.Context, roomID int64) error
}

type roomCommandsImpl struct {
	uow    shared.UnitOfWork
	logger *slog.Logger
}

func NewRoomCommands(uow shared.UnitOfWork, logger *slog.Logger) RoomCommands {
	return &roomCommandsImpl{uow: uow, logger: logger}
}

func (uc *roomCommandsImpl) CreateRoom(ctx context.Context, in RoomInput) (*room.Room, error) {
	r, err := room.NewRoom(in.Name, in.Capacity, in.Description)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}

	var created *room.Room
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var cerr error
		created, cerr = tx.Rooms().Create(ctx, r)
		return cerr
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("room created", slog.Int64("room_id", created.ID()))
	return created, nil
}

func (uc *roomCommandsImpl) UpdateRoom(ctx context.Context, roomID int64, p RoomPatch) (*room.Room, error) {
	var updated *room.Room
	err := uc.uow.WithinRoom(ctx, roomID, func(ctx context.Context, tx shared.Tx) error {
		existing, err := tx.Rooms().FindByID(ctx, roomID)
		if err != nil {
			return notFoundErr(err, errs.ErrRoomNotFound)
		}

		next, err := existing.WithDetails(
			patch.Coalesce(p.Name, existing.Name()),
			patch.Coalesce(p.Capacity, existing.Capacity()),
			patch.Coalesce(p.Description, existing.Description()),
		)
		if err != nil {
			return errs.Mark(err, errs.ErrValidation)
		}

		updated, err = tx.Rooms().Update(ctx, next)
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteRoom refuses rooms that still hold reservations. The count runs under
// the room lock so no booking can slip in between the check and the delete.
func (uc *roomCommandsImpl) DeleteRoom(ctx context.Context, roomID int64) error {
	err := uc.uow.WithinRoom(ctx, roomID, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Rooms().FindByID(ctx, roomID); err != nil {
			return notFoundErr(err, errs.ErrRoomNotFound)
		}

		n, err := tx.Reservations().CountForRoom(ctx, roomID)
		if err != nil {
			return err
		}
		if n > 0 {
			return errs.ErrRoomHasReservations
		}
		return tx.Rooms().Delete(ctx, roomID)
	})
	if err != nil {
		return err
	}

	uc.logger.Info("room deleted", slog.Int64("room_id", roomID))
	return nil
}
