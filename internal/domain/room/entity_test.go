//go:build unit

package room_test

import (
	"strings"
	"testing"

	"room-booking/internal/domain/room"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRoom(t *testing.T) {
	cases := []struct {
		name        string
		roomName    string
		capacity    int
		description string
		errIs       error
	}{
		{name: "基本成功ケース", roomName: "  Orion  ", capacity: 8, description: "2F east"},
		{name: "説明なしOK", roomName: "Vega", capacity: 1},
		{name: "名前が空NG", roomName: "   ", capacity: 4, errIs: room.ErrEmptyRoomName},
		{name: "名前が長すぎNG", roomName: strings.Repeat("a", room.MaxRoomNameLength+1), capacity: 4, errIs: room.ErrRoomNameTooLong},
		{name: "定員0NG", roomName: "Lyra", capacity: 0, errIs: room.ErrInvalidCapacity},
		{name: "定員マイナスNG", roomName: "Lyra", capacity: -3, errIs: room.ErrInvalidCapacity},
		{name: "説明が長すぎNG", roomName: "Lyra", capacity: 2, description: strings.Repeat("d", room.MaxDescriptionLength+1), errIs: room.ErrDescriptionTooLong},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r, err := room.NewRoom(c.roomName, c.capacity, c.description)
			if c.errIs != nil {
				require.ErrorIs(t, err, c.errIs)
				assert.Nil(t, r)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, strings.TrimSpace(c.roomName), r.Name())
			assert.Equal(t, c.capacity, r.Capacity())
			assert.Equal(t, c.description, r.Description())
		})
	}
}

func TestRoomWithDetails(t *testing.T) {
	r, err := room.NewRoom("Orion", 8, "")
	require.NoError(t, err)
	r = r.WithID(3)

	updated, err := r.WithDetails("Orion XL", 12, "renovated")
	require.NoError(t, err)
	assert.Equal(t, int64(3), updated.ID())
	assert.Equal(t, "Orion XL", updated.Name())
	assert.Equal(t, 12, updated.Capacity())
	assert.Equal(t, "Orion", r.Name())

	_, err = r.WithDetails("Orion", 0, "")
	require.ErrorIs(t, err, room.ErrInvalidCapacity)
}
