//go:build e2e

package repository_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"room-booking/internal/domain/booking"
	"room-booking/internal/domain/room"
	"room-booking/internal/infra"
	"room-booking/internal/infra/repository"
	"room-booking/internal/pkg/errs"
	"room-booking/internal/testutil/containers"
	"room-booking/internal/testutil/dbtest"
	"room-booking/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/suite"
)

var day = time.Date(2030, 5, 10, 0, 0, 0, 0, time.UTC)

func at(h, m int) time.Time {
	return day.Add(time.Duration(h)*time.Hour + time.Duration(m)*time.Minute)
}

type RepositorySuite struct {
	suite.Suite
	ctx  context.Context
	pool *pgxpool.Pool

	reservations *repository.ReservationRepository
	rooms        *repository.RoomRepository
	users        *repository.UserRepository
	linkCodes    *repository.LinkCodeRepository

	roomID int64
	userID int64
}

func (s *RepositorySuite) SetupSuite() {
	s.ctx = context.Background()
	s.pool, _ = containers.NewDatabase(s.T())

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s.reservations = repository.NewReservationRepository(s.pool, logger)
	s.rooms = repository.NewRoomRepository(s.pool, logger)
	s.users = repository.NewUserRepository(s.pool, logger)
	s.linkCodes = repository.NewLinkCodeRepository(s.pool, logger)
}

func (s *RepositorySuite) SetupTest() {
	s.Require().NoError(dbtest.ResetDB(s.pool))
	s.roomID = dbtest.CreateTestRoom(s.T(), s.pool, "Everest", 8)
	s.userID = dbtest.CreateTestUser(s.T(), s.pool, "anna@example.com", "user")
}

func (s *RepositorySuite) reservation(start, end time.Time) *booking.Reservation {
	iv, err := booking.NewInterval(start, end)
	s.Require().NoError(err)
	title, err := booking.NewTitle("Planning")
	s.Require().NoError(err)
	return booking.NewReservation(s.roomID, s.userID, title, iv, day)
}

func TestRepositorySuite(t *testing.T) {
	suite.Run(t, new(RepositorySuite))
}

func (s *RepositorySuite) TestInsertAndQuery() {
	first, err := s.reservations.Insert(s.ctx, s.reservation(at(9, 0), at(10, 0)))
	s.Require().NoError(err)
	s.Positive(first.ID())
	s.Equal(at(9, 0), first.Start())

	// back-to-back
	second, err := s.reservations.Insert(s.ctx, s.reservation(at(10, 0), at(11, 0)))
	s.Require().NoError(err)
	s.Greater(second.ID(), first.ID())

	s.Run("half-open overlap", func() {
		hits, err := s.reservations.Query(s.ctx, s.roomID, at(9, 30), at(10, 0))
		s.Require().NoError(err)
		s.Len(hits, 1)
		s.Equal(first.ID(), hits[0].ID())
	})

	s.Run("inverted window matches nothing", func() {
		hits, err := s.reservations.Query(s.ctx, s.roomID, at(11, 0), at(9, 0))
		s.Require().NoError(err)
		s.Empty(hits)

		hits, err = s.reservations.Query(s.ctx, s.roomID, at(9, 45), at(9, 15))
		s.Require().NoError(err)
		s.Empty(hits, "inside an existing reservation")

		hits, err = s.reservations.Query(s.ctx, s.roomID, at(9, 30), at(9, 30))
		s.Require().NoError(err)
		s.Empty(hits)
	})

	s.Run("day listing is ordered by start", func() {
		list, err := s.reservations.ListForRoomOnDay(s.ctx, s.roomID, day, day.Add(24*time.Hour))
		s.Require().NoError(err)
		s.Require().Len(list, 2)
		s.Equal(first.ID(), list[0].ID())
		s.Equal(second.ID(), list[1].ID())
	})

	s.Run("upcoming excludes started reservations", func() {
		list, err := s.reservations.ListUpcomingByRequester(s.ctx, s.userID, at(9, 30))
		s.Require().NoError(err)
		s.Require().Len(list, 1)
		s.Equal(second.ID(), list[0].ID())
	})
}

func (s *RepositorySuite) TestExclusionConstraint() {
	_, err := s.reservations.Insert(s.ctx, s.reservation(at(9, 0), at(10, 0)))
	s.Require().NoError(err)

	_, err = s.reservations.Insert(s.ctx, s.reservation(at(9, 30), at(10, 30)))
	s.True(infra.IsKind(err, infra.KindConflict))
	s.True(errs.Is(err, errs.ErrSlotConflict))

	other := dbtest.CreateTestRoom(s.T(), s.pool, "Elbrus", 4)
	res := s.reservation(at(9, 30), at(10, 30))
	_, err = s.reservations.Insert(s.ctx, booking.ReconstructReservation(0, other, s.userID, "Other room", res.Start(), res.End(), day))
	s.NoError(err, "rooms never block each other")
}

func (s *RepositorySuite) TestInsertUnknownRoom() {
	res := s.reservation(at(9, 0), at(10, 0))
	_, err := s.reservations.Insert(s.ctx, booking.ReconstructReservation(0, 9999, s.userID, "Ghost", res.Start(), res.End(), day))
	s.True(errs.Is(err, errs.ErrInvalidReference))
}

func (s *RepositorySuite) TestRemoveIsIdempotent() {
	res, err := s.reservations.Insert(s.ctx, s.reservation(at(9, 0), at(10, 0)))
	s.Require().NoError(err)

	s.NoError(s.reservations.Remove(s.ctx, s.roomID, res.ID()))
	s.NoError(s.reservations.Remove(s.ctx, s.roomID, res.ID()))

	_, err = s.reservations.FindByID(s.ctx, res.ID())
	s.True(errs.Is(err, errs.ErrNotFound))

	// the freed slot can be booked again
	_, err = s.reservations.Insert(s.ctx, s.reservation(at(9, 0), at(10, 0)))
	s.NoError(err)
}

func (s *RepositorySuite) TestRoomDeleteRestrict() {
	_, err := s.reservations.Insert(s.ctx, s.reservation(at(9, 0), at(10, 0)))
	s.Require().NoError(err)

	count, err := s.reservations.CountForRoom(s.ctx, s.roomID)
	s.Require().NoError(err)
	s.Equal(1, count)

	err = s.rooms.Delete(s.ctx, s.roomID)
	s.True(infra.IsKind(err, infra.KindForeignKeyViolated))

	err = s.rooms.Delete(s.ctx, 9999)
	s.True(errs.Is(err, errs.ErrNotFound))
}

func (s *RepositorySuite) TestRoomCRUD() {
	r, err := room.NewRoom("Kazbek", 12, "Ground floor")
	s.Require().NoError(err)
	created, err := s.rooms.Create(s.ctx, r)
	s.Require().NoError(err)

	changed, err := created.WithDetails("Kazbek Hall", 20, "")
	s.Require().NoError(err)
	updated, err := s.rooms.Update(s.ctx, changed)
	s.Require().NoError(err)
	s.Equal("Kazbek Hall", updated.Name())
	s.Equal(20, updated.Capacity())
	s.Empty(updated.Description())

	list, err := s.rooms.List(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(list, 2)
	s.Equal(s.roomID, list[0].ID())
}

func (s *RepositorySuite) TestUserUniqueConstraints() {
	other := dbtest.CreateTestUser(s.T(), s.pool, "boris@example.com", "user")

	s.Require().NoError(s.users.SetTelegramID(s.ctx, s.userID, 4242))
	err := s.users.SetTelegramID(s.ctx, other, 4242)
	s.True(errs.Is(err, errs.ErrAlreadyExists))

	found, err := s.users.FindByTelegramID(s.ctx, 4242)
	s.Require().NoError(err)
	s.Equal(s.userID, found.ID())

	_, err = s.users.FindByEmail(s.ctx, "nobody@example.com")
	s.True(errs.Is(err, errs.ErrNotFound))
}

func (s *RepositorySuite) TestLinkCodes() {
	s.Require().NoError(s.linkCodes.Replace(s.ctx, shared.LinkCode{Code: "link-aaaaaaaa", UserID: s.userID, ExpiresAt: at(9, 5)}))
	s.Require().NoError(s.linkCodes.Replace(s.ctx, shared.LinkCode{Code: "link-bbbbbbbb", UserID: s.userID, ExpiresAt: at(9, 5)}))

	_, err := s.linkCodes.Consume(s.ctx, "link-aaaaaaaa", at(9, 0))
	s.True(errs.Is(err, errs.ErrNotFound), "re-issuing replaces the previous code")

	lc, err := s.linkCodes.Consume(s.ctx, "link-bbbbbbbb", at(9, 0))
	s.Require().NoError(err)
	s.Equal(s.userID, lc.UserID)

	_, err = s.linkCodes.Consume(s.ctx, "link-bbbbbbbb", at(9, 0))
	s.True(errs.Is(err, errs.ErrNotFound), "codes are single use")

	s.Require().NoError(s.linkCodes.Replace(s.ctx, shared.LinkCode{Code: "link-cccccccc", UserID: s.userID, ExpiresAt: at(9, 5)}))
	_, err = s.linkCodes.Consume(s.ctx, "link-cccccccc", at(9, 5))
	s.True(errs.Is(err, errs.ErrNotFound), "expired")
}
