//go:build unit || e2e

package builder

import (
	"time"

	"room-booking/internal/domain/user"
	reqdto "room-booking/internal/handler/dto/request"
	"room-booking/internal/usecase/queries"
)

type UserBuilder struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
	Role         user.Role
	TelegramID   *int64
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		ID:           1,
		Name:         "Test User",
		Email:        "test@example.com",
		PasswordHash: "hashed_password",
		Role:         user.RoleUser,
	}
}

func (u *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(u)
	return u
}

func (u *UserBuilder) BuildDomain() *user.User {
	return user.ReconstructUser(u.ID, u.Name, u.Email, u.PasswordHash, u.Role, u.TelegramID, time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC))
}

func (u *UserBuilder) BuildView() *queries.UserView {
	return &queries.UserView{
		ID:         u.ID,
		Name:       u.Name,
		Email:      u.Email,
		Role:       u.Role.String(),
		TelegramID: u.TelegramID,
	}
}

type AuthBuilder struct {
	Name     string
	Email    string
	Password string
}

func NewAuthBuilder() *AuthBuilder {
	return &AuthBuilder{
		Name:     "Test User",
		Email:    "test@example.com",
		Password: "password123",
	}
}

func (a *AuthBuilder) BuildLoginDTO() reqdto.LoginRequest {
	return reqdto.LoginRequest{Email: a.Email, Password: a.Password}
}

func (a *AuthBuilder) BuildRegisterDTO() reqdto.RegisterRequest {
	return reqdto.RegisterRequest{Name: a.Name, Email: a.Email, Password: a.Password}
}
