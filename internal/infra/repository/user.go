package repository

import (
	"context"
	"log/slog"

	"room-booking/internal/domain/user"
	"room-booking/internal/infra"
	"room-booking/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const userColumns = `id, name, email, password_hash, role, telegram_id, created_at`

type UserRepository struct {
	db     DBTX
	logger *slog.Logger
}

func NewUserRepository(db DBTX, logger *slog.Logger) *UserRepository {
	return &UserRepository{db: db, logger: logger}
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) (*user.User, error) {
	row := r.db.QueryRow(ctx, `
		INSERT INTO users (name, email, password_hash, role)
		VALUES ($1, $2, $3, $4)
		RETURNING `+userColumns,
		u.Name().Value(), u.Email().Value(), u.PasswordHash(), u.Role().String())

	created, err := scanUser(row)
	if err != nil {
		if pgErrCode(err) == pgErrCodeUniqueViolation {
			return nil, infra.WrapRepoErr(r.logger, infra.KindDuplicateKey, "email already registered", err)
		}
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to create user", err)
	}
	return created, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id int64) (*user.User, error) {
	return r.findOne(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	return r.findOne(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email)
}

func (r *UserRepository) FindByTelegramID(ctx context.Context, telegramID int64) (*user.User, error) {
	return r.findOne(ctx, `SELECT `+userColumns+` FROM users WHERE telegram_id = $1`, telegramID)
}

func (r *UserRepository) SetTelegramID(ctx context.Context, userID, telegramID int64) error {
	tag, err := r.db.Exec(ctx, `UPDATE users SET telegram_id = $2 WHERE id = $1`, userID, telegramID)
	if err != nil {
		if pgErrCode(err) == pgErrCodeUniqueViolation {
			return infra.WrapRepoErr(r.logger, infra.KindDuplicateKey, "telegram id already linked", err)
		}
		return infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to link telegram id", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(r.logger, infra.KindNotFound, "user not found", nil)
	}
	return nil
}

func (r *UserRepository) findOne(ctx context.Context, query string, arg any) (*user.User, error) {
	u, err := scanUser(r.db.QueryRow(ctx, query, arg))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr(r.logger, infra.KindNotFound, "user not found", err)
		}
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to find user", err)
	}
	return u, nil
}

func scanUser(row pgx.Row) (*user.User, error) {
	var (
		id                      int64
		name, email, hash, role string
		telegramID              pgtype.Int8
		createdAt               pgtype.Timestamptz
	)
	if err := row.Scan(&id, &name, &email, &hash, &role, &telegramID, &createdAt); err != nil {
		return nil, err
	}
	return user.ReconstructUser(
		id, name, email, hash, user.Role(role),
		pgconv.Int64PtrFromPgtype(telegramID), pgconv.TimeFromPgtype(createdAt),
	), nil
}
