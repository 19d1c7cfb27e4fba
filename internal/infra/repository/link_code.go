package repository

import (
	"context"
	"log/slog"
	"time"

	"room-booking/internal/infra"
	"room-booking/internal/pkg/pgconv"
	"room-booking/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgtype"
)

type LinkCodeRepository struct {
	db     DBTX
	logger *slog.Logger
}

func NewLinkCodeRepository(db DBTX, logger *slog.Logger) *LinkCodeRepository {
	return &LinkCodeRepository{db: db, logger: logger}
}

// Replace upserts on user_id so each user holds at most one pending code.
func (r *LinkCodeRepository) Replace(ctx context.Context, code shared.LinkCode) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO telegram_link_codes (code, user_id, expires_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id) DO UPDATE SET code = EXCLUDED.code, expires_at = EXCLUDED.expires_at`,
		code.Code, code.UserID, pgconv.TimeToPgtype(code.ExpiresAt))
	if err != nil {
		return infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to store link code", err)
	}
	return nil
}

// Consume deletes the code whether or not it expired; only live codes are returned.
func (r *LinkCodeRepository) Consume(ctx context.Context, code string, now time.Time) (*shared.LinkCode, error) {
	var (
		userID    int64
		expiresAt pgtype.Timestamptz
	)
	err := r.db.QueryRow(ctx, `
		DELETE FROM telegram_link_codes
		WHERE code = $1
		RETURNING user_id, expires_at`, code).Scan(&userID, &expiresAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr(r.logger, infra.KindNotFound, "link code not found", err)
		}
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to consume link code", err)
	}

	lc := &shared.LinkCode{Code: code, UserID: userID, ExpiresAt: pgconv.TimeFromPgtype(expiresAt)}
	if !now.Before(lc.ExpiresAt) {
		return nil, infra.WrapRepoErr(r.logger, infra.KindNotFound, "link code expired", nil)
	}
	return lc, nil
}
