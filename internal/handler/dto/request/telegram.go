package request

type CompleteLinkRequest struct {
	Code       string `json:"code" binding:"required"`
	TelegramID int64  `json:"telegramId" binding:"required"`
}
