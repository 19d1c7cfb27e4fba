package shared

import (
	"room-booking/internal/domain/booking"
	"room-booking/internal/domain/user"
)

// Actor is the authenticated caller, resolved by the transport.
type Actor struct {
	UserID int64
	Role   user.Role
}

func (a Actor) IsAdmin() bool {
	return a.Role == user.RoleAdmin
}

type AccessPolicy interface {
	CanCancel(actor Actor, res *booking.Reservation) bool
	CanViewUpcoming(actor Actor, requesterID int64) bool
}

type ownerOrAdminPolicy struct{}

// NewOwnerOrAdminPolicy allows the reservation's requester and any admin.
func NewOwnerOrAdminPolicy() AccessPolicy {
	return ownerOrAdminPolicy{}
}

func (ownerOrAdminPolicy) CanCancel(actor Actor, res *booking.Reservation) bool {
	return actor.IsAdmin() || res.IsOwnedBy(actor.UserID)
}

func (ownerOrAdminPolicy) CanViewUpcoming(actor Actor, requesterID int64) bool {
	return actor.IsAdmin() || actor.UserID == requesterID
}
