package api

import (
	"net/http"
	"strconv"

	reqdto "room-booking/internal/handler/dto/request"
	resdto "room-booking/internal/handler/dto/response"
	"room-booking/internal/handler/httperr"
	"room-booking/internal/handler/middleware"
	"room-booking/internal/usecase/commands"
	"room-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	links commands.TelegramLinkCommands
	users queries.UserQueries
}

func NewUserHandler(links commands.TelegramLinkCommands, users queries.UserQueries) *UserHandler {
	return &UserHandler{links: links, users: users}
}

// @Summary Profile
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.ProfileResponse
// @Router /profile [get]
func (h *UserHandler) Profile(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	view, err := h.users.GetCurrentUser(c.Request.Context(), userID)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.ProfileFromUserView(view))
}

// @Summary Issue a Telegram link code
// @Description Replaces any code issued before for the same user
// @Tags telegram
// @Produce json
// @Security BearerAuth
// @Success 201 {object} resdto.LinkCodeResponse
// @Router /telegram/link-code [post]
func (h *UserHandler) IssueLinkCode(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	issued, err := h.links.IssueLinkCode(c.Request.Context(), userID)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.LinkCodeResponse{Code: issued.Code, ExpiresAt: issued.ExpiresAt})
}

// @Summary Complete a Telegram link
// @Tags telegram
// @Accept json
// @Produce json
// @Param request body reqdto.CompleteLinkRequest true "Code and Telegram account"
// @Success 200 {object} resdto.UserSummaryResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /telegram/complete-link [post]
func (h *UserHandler) CompleteLink(c *gin.Context) {
	var req reqdto.CompleteLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}
	u, err := h.links.CompleteLink(c.Request.Context(), req.Code, req.TelegramID)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.UserSummaryResponse{ID: u.ID(), Name: u.Name().Value()})
}

// @Summary Find user by Telegram account
// @Description Admin only
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param telegramId path int true "Telegram user ID"
// @Success 200 {object} resdto.UserSummaryResponse
// @Failure 404 {object} httperr.Response
// @Router /users/by-telegram/{telegramId} [get]
func (h *UserHandler) ByTelegram(c *gin.Context) {
	telegramID, err := strconv.ParseInt(c.Param("telegramId"), 10, 64)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid telegramId", nil)
		return
	}
	view, err := h.users.FindByTelegramID(c.Request.Context(), telegramID)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromUserSummary(view))
}
