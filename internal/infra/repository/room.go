package repository

import (
	"context"
	"log/slog"

	"room-booking/internal/domain/room"
	"room-booking/internal/infra"
	"room-booking/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const roomColumns = `id, name, capacity, description, created_at, updated_at`

type RoomRepository struct {
	db     DBTX
	logger *slog.Logger
}

func NewRoomRepository(db DBTX, logger *slog.Logger) *RoomRepository {
	return &RoomRepository{db: db, logger: logger}
}

func (r *RoomRepository) Create(ctx context.Context, rm *room.Room) (*room.Room, error) {
	row := r.db.QueryRow(ctx, `
		INSERT INTO rooms (name, capacity, description)
		VALUES ($1, $2, $3)
		RETURNING `+roomColumns,
		rm.Name(), rm.Capacity(), pgconv.StringToNullablePgtype(rm.Description()))

	created, err := scanRoom(row)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to create room", err)
	}
	return created, nil
}

func (r *RoomRepository) Update(ctx context.Context, rm *room.Room) (*room.Room, error) {
	row := r.db.QueryRow(ctx, `
		UPDATE rooms
		SET name = $2, capacity = $3, description = $4, updated_at = now()
		WHERE id = $1
		RETURNING `+roomColumns,
		rm.ID(), rm.Name(), rm.Capacity(), pgconv.StringToNullablePgtype(rm.Description()))

	updated, err := scanRoom(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr(r.logger, infra.KindNotFound, "room not found", err)
		}
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to update room", err)
	}
	return updated, nil
}

func (r *RoomRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM rooms WHERE id = $1`, id)
	if err != nil {
		if pgErrCode(err) == pgErrCodeForeignKeyViolation {
			return infra.WrapRepoErr(r.logger, infra.KindForeignKeyViolated, "room still has reservations", err)
		}
		return infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to delete room", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(r.logger, infra.KindNotFound, "room not found", nil)
	}
	return nil
}

func (r *RoomRepository) FindByID(ctx context.Context, id int64) (*room.Room, error) {
	row := r.db.QueryRow(ctx, `SELECT `+roomColumns+` FROM rooms WHERE id = $1`, id)
	rm, err := scanRoom(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr(r.logger, infra.KindNotFound, "room not found", err)
		}
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to find room", err)
	}
	return rm, nil
}

func (r *RoomRepository) List(ctx context.Context) ([]*room.Room, error) {
	rows, err := r.db.Query(ctx, `SELECT `+roomColumns+` FROM rooms ORDER BY id`)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to list rooms", err)
	}
	list, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*room.Room, error) {
		return scanRoom(row)
	})
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to scan rooms", err)
	}
	return list, nil
}

func scanRoom(row pgx.Row) (*room.Room, error) {
	var (
		id                   int64
		name                 string
		capacity             int
		description          pgtype.Text
		createdAt, updatedAt pgtype.Timestamptz
	)
	if err := row.Scan(&id, &name, &capacity, &description, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	return room.ReconstructRoom(
		id, name, capacity, pgconv.StringFromPgtype(description),
		pgconv.TimeFromPgtype(createdAt), pgconv.TimeFromPgtype(updatedAt),
	), nil
}
