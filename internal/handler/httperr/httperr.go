package httperr

import (
	"errors"
	"net/http"

	"room-booking/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		err = errors.New(msg)
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// AbortWithDomainError maps an error kind from the use case layer to its status.
func AbortWithDomainError(c *gin.Context, err error) {
	status, msg := StatusOf(err)
	AbortWithError(c, status, err, msg, nil)
}

// StatusOf resolves the most specific kind first; a missing requester is the
// caller's own account, so it is unprocessable rather than not found.
func StatusOf(err error) (int, string) {
	switch {
	case errs.Is(err, errs.ErrRequesterNotFound):
		return http.StatusUnprocessableEntity, "Requester not found"
	case errs.Is(err, errs.ErrInvalidInterval):
		return http.StatusBadRequest, "Invalid time interval"
	case errs.Is(err, errs.ErrValidation):
		return http.StatusBadRequest, "Invalid request"
	case errs.Is(err, errs.ErrInvalidReference), errs.Is(err, errs.ErrNotFound):
		return http.StatusNotFound, notFoundMessage(err)
	case errs.Is(err, errs.ErrSlotConflict):
		return http.StatusConflict, "Time slot is already booked"
	case errs.Is(err, errs.ErrRoomHasReservations):
		return http.StatusConflict, "Room still has reservations"
	case errs.Is(err, errs.ErrAlreadyExists):
		return http.StatusConflict, conflictMessage(err)
	case errs.Is(err, errs.ErrNotAuthorized):
		return http.StatusForbidden, "Insufficient permissions"
	case errs.Is(err, errs.ErrUnauthenticated):
		return http.StatusUnauthorized, unauthenticatedMessage(err)
	case errs.Is(err, errs.ErrUnavailable):
		return http.StatusServiceUnavailable, "Service temporarily unavailable"
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}

func notFoundMessage(err error) string {
	for _, specific := range []error{
		errs.ErrRoomNotFound,
		errs.ErrReservationNotFound,
		errs.ErrUserNotFound,
		errs.ErrLinkCodeNotFound,
	} {
		if errs.Is(err, specific) {
			return capitalize(specific.Error())
		}
	}
	return "Not found"
}

func conflictMessage(err error) string {
	switch {
	case errs.Is(err, errs.ErrEmailTaken):
		return "Email already registered"
	case errs.Is(err, errs.ErrTelegramTaken):
		return "Telegram account already linked"
	default:
		return "Already exists"
	}
}

func unauthenticatedMessage(err error) string {
	if errs.Is(err, errs.ErrInvalidCredentials) {
		return "Invalid email or password"
	}
	return "Unauthorized"
}

func capitalize(s string) string {
	if s == "" || s[0] < 'a' || s[0] > 'z' {
		return s
	}
	return string(s[0]-'a'+'A') + s[1:]
}
