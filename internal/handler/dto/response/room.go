package response

import (
	"time"

	"room-booking/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type RoomResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Capacity    int       `json:"capacity"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func FromRoomView(v *queries.RoomView) *RoomResponse {
	var res RoomResponse
	_ = copier.Copy(&res, v)
	return &res
}

func FromRoomViews(vs []queries.RoomView) []RoomResponse {
	res := make([]RoomResponse, 0, len(vs))
	if len(vs) == 0 {
		return res
	}
	_ = copier.Copy(&res, &vs)
	return res
}
