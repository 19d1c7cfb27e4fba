package commands

//go:generate mockgen -source=telegram_link.go -destination=../../mock/commands/telegram_link.go -package=commandsmock

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"room-booking/internal/domain/user"
	"room-booking/internal/pkg/clock"
	"room-booking/internal/pkg/errs"
	"room-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

const linkCodePrefix = "link-"

type IssuedLinkCode struct {
	Code      string
	ExpiresAt time.Time
}

type TelegramLinkCommands interface {
	IssueLinkCode(ctx context.Context, userID int64) (*IssuedLinkCode, error)
	CompleteLink(ctx context.Context, code string, telegramID int64) (*user.User, error)
}

type telegramLinkCommandsImpl struct {
	uow    shared.UnitOfWork
	clock  clock.Clock
	ttl    time.Duration
	logger *slog.Logger
}

func NewTelegramLinkCommands(uow shared.UnitOfWork, clk clock.Clock, ttl time.Duration, logger *slog.Logger) TelegramLinkCommands {
	return &telegramLinkCommandsImpl{
		uow:    uow,
		clock:  clk,
		ttl:    ttl,
		logger: logger,
	}
}

// IssueLinkCode replaces any pending code of the user.
func (uc *telegramLinkCommandsImpl) IssueLinkCode(ctx context.Context, userID int64) (*IssuedLinkCode, error) {
	code := shared.LinkCode{
		Code:      newLinkCode(),
		UserID:    userID,
		ExpiresAt: uc.clock.Now().UTC().Add(uc.ttl),
	}

	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Users().FindByID(ctx, userID); err != nil {
			return notFoundErr(err, errs.ErrUserNotFound)
		}
		return tx.LinkCodes().Replace(ctx, code)
	})
	if err != nil {
		return nil, err
	}

	return &IssuedLinkCode{Code: code.Code, ExpiresAt: code.ExpiresAt}, nil
}

func (uc *telegramLinkCommandsImpl) CompleteLink(ctx context.Context, code string, telegramID int64) (*user.User, error) {
	code = strings.TrimSpace(code)
	if !strings.HasPrefix(code, linkCodePrefix) {
		return nil, errs.Mark(errs.ErrLinkCodeNotFound, errs.ErrNotFound)
	}

	var linked *user.User
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		lc, err := tx.LinkCodes().Consume(ctx, code, uc.clock.Now().UTC())
		if err != nil {
			return notFoundErr(err, errs.ErrLinkCodeNotFound)
		}

		if err := tx.Users().SetTelegramID(ctx, lc.UserID, telegramID); err != nil {
			if errs.Is(err, errs.ErrAlreadyExists) {
				return errs.Mark(errs.ErrTelegramTaken, errs.ErrAlreadyExists)
			}
			return notFoundErr(err, errs.ErrUserNotFound)
		}

		linked, err = tx.Users().FindByID(ctx, lc.UserID)
		return err
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("telegram account linked", slog.Int64("user_id", linked.ID()))
	return linked, nil
}

func newLinkCode() string {
	return linkCodePrefix + strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
}
