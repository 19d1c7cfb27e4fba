package errs

import "errors"

// Error kinds shared by every layer. Concrete errors are attached to a kind with Mark
// so transports can map them without knowing where they came from.
var (
	ErrInvalidInterval     = errors.New("invalid interval")
	ErrInvalidReference    = errors.New("invalid reference")
	ErrSlotConflict        = errors.New("slot conflict")
	ErrNotFound            = errors.New("not found")
	ErrNotAuthorized       = errors.New("not authorized")
	ErrUnavailable         = errors.New("storage unavailable")
	ErrValidation          = errors.New("validation failed")
	ErrAlreadyExists       = errors.New("already exists")
	ErrRoomHasReservations = errors.New("room has reservations")
	ErrUnauthenticated     = errors.New("unauthenticated")
)

// Specific errors, each marked with one of the kinds above where they are raised.
var (
	ErrRoomNotFound        = errors.New("room not found")
	ErrRequesterNotFound   = errors.New("requester not found")
	ErrReservationNotFound = errors.New("reservation not found")
	ErrUserNotFound        = errors.New("user not found")
	ErrLinkCodeNotFound    = errors.New("link code not found or expired")
	ErrEmailTaken          = errors.New("email already registered")
	ErrTelegramTaken       = errors.New("telegram account already linked")
	ErrInvalidCredentials  = errors.New("invalid email or password")
)
