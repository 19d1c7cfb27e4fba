//go:build unit

package memory_test

import (
	"context"
	"testing"
	"time"

	"room-booking/internal/domain/room"
	"room-booking/internal/domain/user"
	"room-booking/internal/infra/memory"
	"room-booking/internal/pkg/clock"
	"room-booking/internal/pkg/errs"
	"room-booking/internal/usecase/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoomStore(t *testing.T) {
	ctx := context.Background()
	clk := clock.NewMockClock(day)
	store := memory.NewRoomStore(clk, discardLogger())

	for _, name := range []string{"Orion", "Vega"} {
		r, err := room.NewRoom(name, 6, "")
		require.NoError(t, err)
		_, err = store.Create(ctx, r)
		require.NoError(t, err)
	}

	list, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Orion", list[0].Name())
	assert.Equal(t, int64(2), list[1].ID())

	clk.Add(time.Hour)
	changed, err := list[0].WithDetails("Orion XL", 10, "")
	require.NoError(t, err)
	updated, err := store.Update(ctx, changed)
	require.NoError(t, err)
	assert.Equal(t, day, updated.CreatedAt())
	assert.Equal(t, day.Add(time.Hour), updated.UpdatedAt())

	require.NoError(t, store.Delete(ctx, 1))
	_, err = store.FindByID(ctx, 1)
	assert.True(t, errs.Is(err, errs.ErrNotFound))
	assert.True(t, errs.Is(store.Delete(ctx, 1), errs.ErrNotFound))
}

func TestUserStore(t *testing.T) {
	ctx := context.Background()
	store := memory.NewUserStore(clock.NewMockClock(day), discardLogger())

	name, _ := user.NewName("Anna")
	email, _ := user.NewEmail("anna@example.com")
	created, err := store.Create(ctx, user.NewUser(name, email, "hash", user.RoleUser))
	require.NoError(t, err)

	_, err = store.Create(ctx, user.NewUser(name, email, "hash", user.RoleUser))
	assert.True(t, errs.Is(err, errs.ErrAlreadyExists))

	require.NoError(t, store.SetTelegramID(ctx, created.ID(), 777))
	found, err := store.FindByTelegramID(ctx, 777)
	require.NoError(t, err)
	assert.Equal(t, created.ID(), found.ID())

	other, err := store.Create(ctx, user.NewUser(name, mustEmail(t, "boris@example.com"), "hash", user.RoleUser))
	require.NoError(t, err)
	err = store.SetTelegramID(ctx, other.ID(), 777)
	assert.True(t, errs.Is(err, errs.ErrAlreadyExists))

	require.NoError(t, store.SetTelegramID(ctx, created.ID(), 888))
	_, err = store.FindByTelegramID(ctx, 777)
	assert.True(t, errs.Is(err, errs.ErrNotFound))
}

func mustEmail(t *testing.T, s string) user.Email {
	t.Helper()
	e, err := user.NewEmail(s)
	require.NoError(t, err)
	return e
}

func TestLinkCodeStore(t *testing.T) {
	ctx := context.Background()
	store := memory.NewLinkCodeStore(discardLogger())

	require.NoError(t, store.Replace(ctx, shared.LinkCode{Code: "link-aaaa0000", UserID: 1, ExpiresAt: at(10, 5)}))
	require.NoError(t, store.Replace(ctx, shared.LinkCode{Code: "link-bbbb1111", UserID: 1, ExpiresAt: at(10, 10)}))

	_, err := store.Consume(ctx, "link-aaaa0000", at(10, 0))
	assert.True(t, errs.Is(err, errs.ErrNotFound), "replaced code must be gone")

	lc, err := store.Consume(ctx, "link-bbbb1111", at(10, 0))
	require.NoError(t, err)
	assert.Equal(t, int64(1), lc.UserID)

	_, err = store.Consume(ctx, "link-bbbb1111", at(10, 0))
	assert.True(t, errs.Is(err, errs.ErrNotFound), "code is single use")

	require.NoError(t, store.Replace(ctx, shared.LinkCode{Code: "link-cccc2222", UserID: 2, ExpiresAt: at(10, 5)}))
	_, err = store.Consume(ctx, "link-cccc2222", at(10, 5))
	assert.True(t, errs.Is(err, errs.ErrNotFound), "expired code")
}
