package api

import (
	"net/http"
	"strconv"
	"time"

	reqdto "room-booking/internal/handler/dto/request"
	resdto "room-booking/internal/handler/dto/response"
	"room-booking/internal/handler/httperr"
	"room-booking/internal/handler/middleware"
	"room-booking/internal/pkg/clock"
	"room-booking/internal/usecase/commands"
	"room-booking/internal/usecase/queries"
	"room-booking/internal/usecase/shared"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	cmds   commands.BookingCommands
	q      queries.BookingQueries
	access shared.AccessPolicy
	clk    clock.Clock
	loc    *time.Location
}

func NewBookingHandler(
	cmds commands.BookingCommands,
	q queries.BookingQueries,
	access shared.AccessPolicy,
	clk clock.Clock,
	loc *time.Location,
) *BookingHandler {
	return &BookingHandler{cmds: cmds, q: q, access: access, clk: clk, loc: loc}
}

// @Summary List bookings of a room
// @Description Either date (a calendar day in the booking time zone) or from and to (RFC3339) select the window
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param roomId query int true "Room ID"
// @Param date query string false "YYYY-MM-DD"
// @Param from query string false "RFC3339 start"
// @Param to query string false "RFC3339 end"
// @Success 200 {array} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings [get]
func (h *BookingHandler) List(c *gin.Context) {
	var query reqdto.ListBookingsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}
	from, to, err := query.Window(h.loc)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
		return
	}

	views, err := h.q.ListReservations(c.Request.Context(), query.RoomID, from, to)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservationViews(views))
}

// @Summary Create booking
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateBookingRequest true "Booking"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	res, err := h.cmds.CreateReservation(c.Request.Context(), req.ToInput(actor.UserID))
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}

	view := queries.ToReservationView(res)
	c.Header("Location", "/api/bookings/"+strconv.FormatInt(view.ID, 10))
	c.JSON(http.StatusCreated, resdto.FromReservationView(&view))
}

// @Summary Get booking
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path int true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings/{id} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	view, err := h.q.GetReservation(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservationView(view))
}

// @Summary Cancel booking
// @Description Requester or admin only
// @Tags bookings
// @Security BearerAuth
// @Param id path int true "Booking ID"
// @Success 204 "No Content"
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings/{id} [delete]
func (h *BookingHandler) Cancel(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.cmds.CancelReservation(c.Request.Context(), id, actor); err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Upcoming bookings of the current user
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.UpcomingBookingResponse
// @Router /bookings/upcoming [get]
func (h *BookingHandler) MyUpcoming(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	h.writeUpcoming(c, actor.UserID)
}

// @Summary Upcoming bookings of a user
// @Description The user themselves or an admin
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {array} resdto.UpcomingBookingResponse
// @Failure 403 {object} httperr.Response
// @Router /users/{id}/bookings/upcoming [get]
func (h *BookingHandler) UserUpcoming(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	userID, ok := pathID(c, "id")
	if !ok {
		return
	}
	if !h.access.CanViewUpcoming(actor, userID) {
		httperr.AbortWithError(c, http.StatusForbidden, nil, "Insufficient permissions", nil)
		return
	}
	h.writeUpcoming(c, userID)
}

func (h *BookingHandler) writeUpcoming(c *gin.Context, requesterID int64) {
	views, err := h.q.ListUpcomingForRequester(c.Request.Context(), requesterID, h.clk.Now())
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromUpcomingViews(views))
}
