package response

import (
	"time"

	"room-booking/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type BookingResponse struct {
	ID          int64     `json:"id"`
	RoomID      int64     `json:"roomId"`
	RequesterID int64     `json:"requesterId"`
	Title       string    `json:"title"`
	Start       time.Time `json:"start"`
	End         time.Time `json:"end"`
	CreatedAt   time.Time `json:"createdAt"`
}

type UpcomingBookingResponse struct {
	ID    int64     `json:"id"`
	Title string    `json:"title"`
	Start time.Time `json:"start"`
}

func FromReservationView(v *queries.ReservationView) *BookingResponse {
	var res BookingResponse
	_ = copier.Copy(&res, v)
	return &res
}

func FromReservationViews(vs []queries.ReservationView) []BookingResponse {
	res := make([]BookingResponse, 0, len(vs))
	if len(vs) == 0 {
		return res
	}
	_ = copier.Copy(&res, &vs)
	return res
}

func FromUpcomingViews(vs []queries.UpcomingReservationView) []UpcomingBookingResponse {
	res := make([]UpcomingBookingResponse, 0, len(vs))
	if len(vs) == 0 {
		return res
	}
	_ = copier.Copy(&res, &vs)
	return res
}
