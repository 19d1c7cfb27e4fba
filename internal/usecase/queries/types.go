package queries

import (
	"time"
)

// ReservationView represents read-optimized reservation data
type ReservationView struct {
	ID          int64     `json:"id"`
	RoomID      int64     `json:"room_id"`
	RequesterID int64     `json:"requester_id"`
	Title       string    `json:"title"`
	Start       time.Time `json:"start"`
	End         time.Time `json:"end"`
	CreatedAt   time.Time `json:"created_at"`
}

type UpcomingReservationView struct {
	ID    int64     `json:"id"`
	Title string    `json:"title"`
	Start time.Time `json:"start"`
}

type RoomView struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Capacity    int       `json:"capacity"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// UserView is what a user may see about their own account
type UserView struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Role       string `json:"role"`
	TelegramID *int64 `json:"telegram_id,omitempty"`
}

type UserSummaryView struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
