//go:build unit

package commands_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"room-booking/internal/domain/user"
	"room-booking/internal/infra/memory"
	"room-booking/internal/pkg/clock"
	"room-booking/internal/pkg/errs"
	"room-booking/internal/usecase/commands"
	"room-booking/internal/usecase/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoomCommands(t *testing.T) {
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	clk := clock.NewMockClock(day)
	uow := memory.NewUoW(clk, logger)
	rooms := commands.NewRoomCommands(uow, logger)
	bookings := commands.NewBookingCommands(uow, shared.NewOwnerOrAdminPolicy(), shared.NewNoopPublisher(), clk, logger)

	created, err := rooms.CreateRoom(ctx, commands.RoomInput{Name: "Orion", Capacity: 8})
	require.NoError(t, err)

	t.Run("invalid input is a validation error", func(t *testing.T) {
		_, err := rooms.CreateRoom(ctx, commands.RoomInput{Name: "", Capacity: 8})
		assert.True(t, errs.Is(err, errs.ErrValidation))
	})

	t.Run("partial update keeps unset fields", func(t *testing.T) {
		capacity := 12
		updated, err := rooms.UpdateRoom(ctx, created.ID(), commands.RoomPatch{Capacity: &capacity})
		require.NoError(t, err)
		assert.Equal(t, "Orion", updated.Name())
		assert.Equal(t, 12, updated.Capacity())
	})

	t.Run("update unknown room", func(t *testing.T) {
		_, err := rooms.UpdateRoom(ctx, 404, commands.RoomPatch{})
		assert.True(t, errs.Is(err, errs.ErrNotFound))
	})

	t.Run("delete is refused while reservations exist", func(t *testing.T) {
		name, _ := user.NewName("Anna")
		email, _ := user.NewEmail("anna@example.com")
		u, err := uow.Reads().Users().Create(ctx, user.NewUser(name, email, "hash", user.RoleUser))
		require.NoError(t, err)

		res, err := bookings.CreateReservation(ctx, commands.CreateReservationInput{
			RoomID: created.ID(), RequesterID: u.ID(), Title: "Demo", Start: at(9, 0), End: at(10, 0),
		})
		require.NoError(t, err)

		err = rooms.DeleteRoom(ctx, created.ID())
		assert.True(t, errs.Is(err, errs.ErrRoomHasReservations))

		require.NoError(t, bookings.CancelReservation(ctx, res.ID(), shared.Actor{UserID: u.ID(), Role: user.RoleUser}))
		require.NoError(t, rooms.DeleteRoom(ctx, created.ID()))

		err = rooms.DeleteRoom(ctx, created.ID())
		assert.True(t, errs.Is(err, errs.ErrRoomNotFound))
	})
}
