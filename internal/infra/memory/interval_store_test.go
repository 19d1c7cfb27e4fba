//go:build unit

package memory_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"room-booking/internal/domain/booking"
	"room-booking/internal/infra/memory"
	"room-booking/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var day = time.Date(2030, 5, 10, 0, 0, 0, 0, time.UTC)

func at(h, m int) time.Time {
	return day.Add(time.Duration(h)*time.Hour + time.Duration(m)*time.Minute)
}

func newReservation(t *testing.T, roomID, requesterID int64, start, end time.Time) *booking.Reservation {
	t.Helper()
	iv, err := booking.NewInterval(start, end)
	require.NoError(t, err)
	title, err := booking.NewTitle("sync")
	require.NoError(t, err)
	return booking.NewReservation(roomID, requesterID, title, iv, day)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestIntervalStore(t *testing.T) {
	ctx := context.Background()

	t.Run("insert assigns increasing ids", func(t *testing.T) {
		store := memory.NewIntervalStore(discardLogger())

		a, err := store.Insert(ctx, newReservation(t, 1, 10, at(9, 0), at(10, 0)))
		require.NoError(t, err)
		b, err := store.Insert(ctx, newReservation(t, 2, 10, at(9, 0), at(10, 0)))
		require.NoError(t, err)

		assert.Equal(t, int64(1), a.ID())
		assert.Equal(t, int64(2), b.ID())
	})

	t.Run("query uses half-open overlap", func(t *testing.T) {
		store := memory.NewIntervalStore(discardLogger())
		_, err := store.Insert(ctx, newReservation(t, 1, 10, at(9, 0), at(10, 0)))
		require.NoError(t, err)

		hits, err := store.Query(ctx, 1, at(10, 0), at(11, 0))
		require.NoError(t, err)
		assert.Empty(t, hits)

		hits, err = store.Query(ctx, 1, at(9, 59), at(11, 0))
		require.NoError(t, err)
		assert.Len(t, hits, 1)

		hits, err = store.Query(ctx, 2, at(9, 0), at(10, 0))
		require.NoError(t, err)
		assert.Empty(t, hits)
	})

	t.Run("inverted query matches nothing", func(t *testing.T) {
		store := memory.NewIntervalStore(discardLogger())
		_, err := store.Insert(ctx, newReservation(t, 1, 10, at(9, 0), at(12, 0)))
		require.NoError(t, err)

		hits, err := store.Query(ctx, 1, at(11, 0), at(10, 0))
		require.NoError(t, err)
		assert.Empty(t, hits)

		hits, err = store.Query(ctx, 1, at(10, 30), at(10, 30))
		require.NoError(t, err)
		assert.Empty(t, hits)
	})

	t.Run("remove is idempotent", func(t *testing.T) {
		store := memory.NewIntervalStore(discardLogger())
		r, err := store.Insert(ctx, newReservation(t, 1, 10, at(9, 0), at(10, 0)))
		require.NoError(t, err)

		require.NoError(t, store.Remove(ctx, 1, r.ID()))
		require.NoError(t, store.Remove(ctx, 1, r.ID()))
		require.NoError(t, store.Remove(ctx, 99, 12345))

		_, err = store.FindByID(ctx, r.ID())
		assert.True(t, errs.Is(err, errs.ErrNotFound))

		n, err := store.CountForRoom(ctx, 1)
		require.NoError(t, err)
		assert.Zero(t, n)
	})

	t.Run("day listing is ordered by start", func(t *testing.T) {
		store := memory.NewIntervalStore(discardLogger())
		for _, h := range []int{15, 9, 12} {
			_, err := store.Insert(ctx, newReservation(t, 1, 10, at(h, 0), at(h+1, 0)))
			require.NoError(t, err)
		}

		list, err := store.ListForRoomOnDay(ctx, 1, day, day.Add(24*time.Hour))
		require.NoError(t, err)
		require.Len(t, list, 3)
		assert.Equal(t, at(9, 0), list[0].Start())
		assert.Equal(t, at(12, 0), list[1].Start())
		assert.Equal(t, at(15, 0), list[2].Start())
	})

	t.Run("upcoming includes reservations starting now", func(t *testing.T) {
		store := memory.NewIntervalStore(discardLogger())
		for _, h := range []int{8, 10, 14} {
			_, err := store.Insert(ctx, newReservation(t, 1, 10, at(h, 0), at(h+1, 0)))
			require.NoError(t, err)
		}
		_, err := store.Insert(ctx, newReservation(t, 1, 11, at(16, 0), at(17, 0)))
		require.NoError(t, err)

		list, err := store.ListUpcomingByRequester(ctx, 10, at(10, 0))
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, at(10, 0), list[0].Start())
		assert.Equal(t, at(14, 0), list[1].Start())
	})
}
