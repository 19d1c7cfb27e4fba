package repository

import (
	"context"
	"log/slog"
	"time"

	"room-booking/internal/domain/booking"
	"room-booking/internal/infra"
	"room-booking/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const reservationColumns = `id, room_id, requester_id, title, start_time, end_time, created_at`

// ReservationRepository is the Postgres interval store. Non-overlap per room is
// also enforced by the reservations_no_overlap exclusion constraint.
type ReservationRepository struct {
	db     DBTX
	logger *slog.Logger
}

func NewReservationRepository(db DBTX, logger *slog.Logger) *ReservationRepository {
	return &ReservationRepository{db: db, logger: logger}
}

func (r *ReservationRepository) Query(ctx context.Context, roomID int64, start, end time.Time) ([]*booking.Reservation, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+reservationColumns+`
		FROM reservations
		WHERE room_id = $1 AND $2 < $3 AND start_time < $3 AND end_time > $2
		ORDER BY start_time, id`,
		roomID, pgconv.TimeToPgtype(start), pgconv.TimeToPgtype(end))
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to query reservations", err)
	}
	return r.collect(rows)
}

func (r *ReservationRepository) Insert(ctx context.Context, res *booking.Reservation) (*booking.Reservation, error) {
	row := r.db.QueryRow(ctx, `
		INSERT INTO reservations (room_id, requester_id, title, start_time, end_time, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+reservationColumns,
		res.RoomID(), res.RequesterID(), res.Title().String(),
		pgconv.TimeToPgtype(res.Start()), pgconv.TimeToPgtype(res.End()), pgconv.TimeToPgtype(res.CreatedAt()))

	stored, err := scanReservation(row)
	if err != nil {
		switch pgErrCode(err) {
		case pgErrCodeExclusionViolation:
			return nil, infra.WrapRepoErr(r.logger, infra.KindConflict, "reservation overlaps an existing one", err)
		case pgErrCodeForeignKeyViolation:
			return nil, infra.WrapRepoErr(r.logger, infra.KindForeignKeyViolated, "room or requester does not exist", err)
		default:
			return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to insert reservation", err)
		}
	}
	return stored, nil
}

func (r *ReservationRepository) Remove(ctx context.Context, roomID, reservationID int64) error {
	_, err := r.db.Exec(ctx, `DELETE FROM reservations WHERE id = $1 AND room_id = $2`, reservationID, roomID)
	if err != nil {
		return infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to delete reservation", err)
	}
	return nil
}

func (r *ReservationRepository) ListForRoomOnDay(ctx context.Context, roomID int64, dayStart, dayEnd time.Time) ([]*booking.Reservation, error) {
	return r.Query(ctx, roomID, dayStart, dayEnd)
}

func (r *ReservationRepository) FindByID(ctx context.Context, id int64) (*booking.Reservation, error) {
	row := r.db.QueryRow(ctx, `SELECT `+reservationColumns+` FROM reservations WHERE id = $1`, id)
	res, err := scanReservation(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr(r.logger, infra.KindNotFound, "reservation not found", err)
		}
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to find reservation", err)
	}
	return res, nil
}

func (r *ReservationRepository) ListUpcomingByRequester(ctx context.Context, requesterID int64, now time.Time) ([]*booking.Reservation, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+reservationColumns+`
		FROM reservations
		WHERE requester_id = $1 AND start_time >= $2
		ORDER BY start_time, id`,
		requesterID, pgconv.TimeToPgtype(now))
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to list upcoming reservations", err)
	}
	return r.collect(rows)
}

func (r *ReservationRepository) CountForRoom(ctx context.Context, roomID int64) (int, error) {
	var n int
	err := r.db.QueryRow(ctx, `SELECT count(*) FROM reservations WHERE room_id = $1`, roomID).Scan(&n)
	if err != nil {
		return 0, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to count reservations", err)
	}
	return n, nil
}

func (r *ReservationRepository) collect(rows pgx.Rows) ([]*booking.Reservation, error) {
	list, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*booking.Reservation, error) {
		return scanReservation(row)
	})
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to scan reservations", err)
	}
	return list, nil
}

func scanReservation(row pgx.Row) (*booking.Reservation, error) {
	var (
		id, roomID, requesterID int64
		title                   string
		start, end, createdAt   pgtype.Timestamptz
	)
	if err := row.Scan(&id, &roomID, &requesterID, &title, &start, &end, &createdAt); err != nil {
		return nil, err
	}
	return booking.ReconstructReservation(
		id, roomID, requesterID, title,
		pgconv.TimeFromPgtype(start), pgconv.TimeFromPgtype(end), pgconv.TimeFromPgtype(createdAt),
	), nil
}
