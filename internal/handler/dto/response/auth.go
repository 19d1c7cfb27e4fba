package response

import (
	"room-booking/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type UserResponse struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Role       string `json:"role"`
	TelegramID *int64 `json:"telegramId,omitempty"`
}

type LoginResponse struct {
	AccessToken string        `json:"accessToken"`
	User        *UserResponse `json:"user"`
}

// ProfileResponse is the account as shown on the profile page.
type ProfileResponse struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	TelegramID *int64 `json:"telegramId"`
}

type UserSummaryResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func FromUserView(v *queries.UserView) *UserResponse {
	var res UserResponse
	_ = copier.Copy(&res, v)
	return &res
}

func ProfileFromUserView(v *queries.UserView) *ProfileResponse {
	var res ProfileResponse
	_ = copier.Copy(&res, v)
	return &res
}

func FromUserSummary(v *queries.UserSummaryView) *UserSummaryResponse {
	return &UserSummaryResponse{ID: v.ID, Name: v.Name}
}
