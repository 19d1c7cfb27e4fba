package queries

//go:generate mockgen -source=user.go -destination=../../mock/queries/user.go -package=queriesmock

import (
	"context"

	"room-booking/internal/domain/user"
	"room-booking/internal/pkg/errs"
	"room-booking/internal/usecase/shared"
)

type UserQueries interface {
	GetCurrentUser(ctx context.Context, userID int64) (*UserView, error)
	FindByTelegramID(ctx context.Context, telegramID int64) (*UserSummaryView, error)
	// ResolveTelegramActor maps a linked chat account to the booking actor.
	ResolveTelegramActor(ctx context.Context, telegramID int64) (*shared.Actor, error)
}

type userQueriesImpl struct {
	uow shared.UnitOfWork
}

func NewUserQueries(uow shared.UnitOfWork) UserQueries {
	return &userQueriesImpl{uow: uow}
}

func (q *userQueriesImpl) GetCurrentUser(ctx context.Context, userID int64) (*UserView, error) {
	u, err := q.uow.Reads().Users().FindByID(ctx, userID)
	if err != nil {
		return nil, userNotFound(err)
	}
	view := ToUserView(u)
	return &view, nil
}

func (q *userQueriesImpl) FindByTelegramID(ctx context.Context, telegramID int64) (*UserSummaryView, error) {
	u, err := q.uow.Reads().Users().FindByTelegramID(ctx, telegramID)
	if err != nil {
		return nil, userNotFound(err)
	}
	return &UserSummaryView{ID: u.ID(), Name: u.Name().Value()}, nil
}

func (q *userQueriesImpl) ResolveTelegramActor(ctx context.Context, telegramID int64) (*shared.Actor, error) {
	u, err := q.uow.Reads().Users().FindByTelegramID(ctx, telegramID)
	if err != nil {
		return nil, userNotFound(err)
	}
	return &shared.Actor{UserID: u.ID(), Role: u.Role()}, nil
}

func ToUserView(u *user.User) UserView {
	return UserView{
		ID:         u.ID(),
		Name:       u.Name().Value(),
		Email:      u.Email().Value(),
		Role:       u.Role().String(),
		TelegramID: u.TelegramID(),
	}
}

func userNotFound(err error) error {
	if errs.Is(err, errs.ErrNotFound) {
		return errs.Mark(errs.ErrUserNotFound, errs.ErrNotFound)
	}
	return err
}
