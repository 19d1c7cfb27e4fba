package user

import (
	"time"
)

// User is an account that can book rooms. TelegramID is set once the account
// has been linked to a chat through a one-time link code.
type User struct {
	id           int64
	name         Name
	email        Email
	passwordHash string
	role         Role
	telegramID   *int64
	createdAt    time.Time
}

func NewUser(name Name, email Email, passwordHash string, role Role) *User {
	return &User{
		name:         name,
		email:        email,
		passwordHash: passwordHash,
		role:         role,
	}
}

func ReconstructUser(
	id int64,
	name, email, passwordHash string,
	role Role,
	telegramID *int64,
	createdAt time.Time,
) *User {
	return &User{
		id:           id,
		name:         Name{value: name},
		email:        Email{value: email},
		passwordHash: passwordHash,
		role:         role,
		telegramID:   telegramID,
		createdAt:    createdAt,
	}
}

func (u *User) WithID(id int64) *User {
	cp := *u
	cp.id = id
	return &cp
}

func (u *User) LinkTelegram(telegramID int64) *User {
	cp := *u
	cp.telegramID = &telegramID
	return &cp
}

func (u *User) IsAdmin() bool {
	return u.role == RoleAdmin
}

func (u *User) ID() int64            { return u.id }
func (u *User) Name() Name           { return u.name }
func (u *User) Email() Email         { return u.email }
func (u *User) PasswordHash() string { return u.passwordHash }
func (u *User) Role() Role           { return u.role }
func (u *User) TelegramID() *int64   { return u.telegramID }
func (u *User) CreatedAt() time.Time { return u.createdAt }
