package shared

import (
	"context"
	"time"
)

const (
	EventReservationCreated   = "reservation.created"
	EventReservationCancelled = "reservation.cancelled"
)

type ReservationEvent struct {
	Type          string    `json:"type"`
	ReservationID int64     `json:"reservationId"`
	RoomID        int64     `json:"roomId"`
	RequesterID   int64     `json:"requesterId"`
	Title         string    `json:"title"`
	Start         time.Time `json:"start"`
	End           time.Time `json:"end"`
	OccurredAt    time.Time `json:"occurredAt"`
}

// EventPublisher is called after commit. Failures never undo the booking.
type EventPublisher interface {
	Publish(ctx context.Context, event ReservationEvent) error
}

type noopPublisher struct{}

func NewNoopPublisher() EventPublisher {
	return noopPublisher{}
}

func (noopPublisher) Publish(context.Context, ReservationEvent) error {
	return nil
}
