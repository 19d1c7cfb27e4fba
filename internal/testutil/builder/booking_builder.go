//go:build unit || e2e

package builder

import (
	"time"

	"room-booking/internal/domain/booking"
	"room-booking/internal/domain/room"
	"room-booking/internal/usecase/queries"
)

var baseTime = time.Date(2030, 5, 10, 9, 0, 0, 0, time.UTC)

type ReservationBuilder struct {
	ID          int64
	RoomID      int64
	RequesterID int64
	Title       string
	Start       time.Time
	End         time.Time
}

func NewReservationBuilder() *ReservationBuilder {
	return &ReservationBuilder{
		ID:          10,
		RoomID:      1,
		RequesterID: 1,
		Title:       "Planning",
		Start:       baseTime,
		End:         baseTime.Add(time.Hour),
	}
}

func (r *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(r)
	return r
}

func (r *ReservationBuilder) BuildDomain() *booking.Reservation {
	return booking.ReconstructReservation(r.ID, r.RoomID, r.RequesterID, r.Title, r.Start, r.End, baseTime.Add(-24*time.Hour))
}

func (r *ReservationBuilder) BuildView() *queries.ReservationView {
	view := queries.ToReservationView(r.BuildDomain())
	return &view
}

// BuildCreateBody is the JSON body of a booking request.
func (r *ReservationBuilder) BuildCreateBody() map[string]any {
	return map[string]any{
		"roomId": r.RoomID,
		"title":  r.Title,
		"start":  r.Start.Format(time.RFC3339),
		"end":    r.End.Format(time.RFC3339),
	}
}

type RoomBuilder struct {
	ID          int64
	Name        string
	Capacity    int
	Description string
}

func NewRoomBuilder() *RoomBuilder {
	return &RoomBuilder{ID: 1, Name: "Everest", Capacity: 8, Description: "4th floor"}
}

func (r *RoomBuilder) With(mutate func(*RoomBuilder)) *RoomBuilder {
	mutate(r)
	return r
}

func (r *RoomBuilder) BuildDomain() *room.Room {
	createdAt := baseTime.Add(-48 * time.Hour)
	return room.ReconstructRoom(r.ID, r.Name, r.Capacity, r.Description, createdAt, createdAt)
}

func (r *RoomBuilder) BuildView() *queries.RoomView {
	view := queries.ToRoomView(r.BuildDomain())
	return &view
}
