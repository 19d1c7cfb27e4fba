package request

import (
	"errors"
	"time"

	"room-booking/internal/usecase/commands"
)

const dateLayout = "2006-01-02"

var (
	ErrWindowRequired = errors.New("either date or from and to are required")
	ErrBadDate        = errors.New("date must be YYYY-MM-DD")
	ErrBadWindow      = errors.New("from and to must be RFC3339 timestamps with from before to")
)

// Bounds are left unchecked here so zero and inverted intervals reach the engine.
type CreateBookingRequest struct {
	RoomID int64     `json:"roomId" binding:"required"`
	Title  string    `json:"title" binding:"required"`
	Start  time.Time `json:"start"`
	End    time.Time `json:"end"`
}

func (r CreateBookingRequest) ToInput(requesterID int64) commands.CreateReservationInput {
	return commands.CreateReservationInput{
		RoomID:      r.RoomID,
		RequesterID: requesterID,
		Title:       r.Title,
		Start:       r.Start,
		End:         r.End,
	}
}

type ListBookingsQuery struct {
	RoomID int64  `form:"roomId" binding:"required"`
	Date   string `form:"date"`
	From   string `form:"from"`
	To     string `form:"to"`
}

// Window resolves the requested range. A date covers that calendar day in loc.
func (q ListBookingsQuery) Window(loc *time.Location) (time.Time, time.Time, error) {
	if q.Date != "" {
		day, err := time.ParseInLocation(dateLayout, q.Date, loc)
		if err != nil {
			return time.Time{}, time.Time{}, ErrBadDate
		}
		return day.UTC(), day.AddDate(0, 0, 1).UTC(), nil
	}

	if q.From == "" || q.To == "" {
		return time.Time{}, time.Time{}, ErrWindowRequired
	}
	from, err := time.Parse(time.RFC3339, q.From)
	if err != nil {
		return time.Time{}, time.Time{}, ErrBadWindow
	}
	to, err := time.Parse(time.RFC3339, q.To)
	if err != nil {
		return time.Time{}, time.Time{}, ErrBadWindow
	}
	if !from.Before(to) {
		return time.Time{}, time.Time{}, ErrBadWindow
	}
	return from.UTC(), to.UTC(), nil
}
