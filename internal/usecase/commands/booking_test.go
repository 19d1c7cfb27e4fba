//go:build unit

package commands_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"room-booking/internal/domain/room"
	"room-booking/internal/domain/user"
	"room-booking/internal/infra/memory"
	"room-booking/internal/pkg/clock"
	"room-booking/internal/pkg/errs"
	"room-booking/internal/usecase/commands"
	"room-booking/internal/usecase/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

var day = time.Date(2030, 5, 10, 0, 0, 0, 0, time.UTC)

func at(h, m int) time.Time {
	return day.Add(time.Duration(h)*time.Hour + time.Duration(m)*time.Minute)
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []shared.ReservationEvent
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, e shared.ReservationEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, e)
	return p.err
}

type BookingCommandsTestSuite struct {
	suite.Suite
	ctx       context.Context
	uow       *memory.UoW
	publisher *recordingPublisher
	commands  commands.BookingCommands
	roomA     int64
	roomB     int64
	alice     int64
	bob       int64
	admin     int64
}

func (s *BookingCommandsTestSuite) SetupTest() {
	s.ctx = context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	clk := clock.NewMockClock(day)

	s.uow = memory.NewUoW(clk, logger)
	s.publisher = &recordingPublisher{}
	s.commands = commands.NewBookingCommands(s.uow, shared.NewOwnerOrAdminPolicy(), s.publisher, clk, logger)

	s.roomA = s.createRoom("Orion")
	s.roomB = s.createRoom("Vega")
	s.alice = s.createUser("alice@example.com", user.RoleUser)
	s.bob = s.createUser("bob@example.com", user.RoleUser)
	s.admin = s.createUser("admin@example.com", user.RoleAdmin)
}

func (s *BookingCommandsTestSuite) createRoom(name string) int64 {
	r, err := room.NewRoom(name, 6, "")
	s.Require().NoError(err)
	created, err := s.uow.Reads().Rooms().Create(s.ctx, r)
	s.Require().NoError(err)
	return created.ID()
}

func (s *BookingCommandsTestSuite) createUser(email string, role user.Role) int64 {
	name, err := user.NewName("Test User")
	s.Require().NoError(err)
	e, err := user.NewEmail(email)
	s.Require().NoError(err)
	created, err := s.uow.Reads().Users().Create(s.ctx, user.NewUser(name, e, "hash", role))
	s.Require().NoError(err)
	return created.ID()
}

func (s *BookingCommandsTestSuite) book(roomID, requesterID int64, start, end time.Time) error {
	_, err := s.commands.CreateReservation(s.ctx, commands.CreateReservationInput{
		RoomID:      roomID,
		RequesterID: requesterID,
		Title:       "Standup",
		Start:       start,
		End:         end,
	})
	return err
}

func (s *BookingCommandsTestSuite) count(roomID int64) int {
	n, err := s.uow.Reads().Reservations().CountForRoom(s.ctx, roomID)
	s.Require().NoError(err)
	return n
}

func TestBookingCommandsTestSuite(t *testing.T) {
	suite.Run(t, new(BookingCommandsTestSuite))
}

func (s *BookingCommandsTestSuite) TestCreateReservation_Success() {
	res, err := s.commands.CreateReservation(s.ctx, commands.CreateReservationInput{
		RoomID:      s.roomA,
		RequesterID: s.alice,
		Title:       "  Planning  ",
		Start:       at(9, 0),
		End:         at(10, 0),
	})

	s.Require().NoError(err)
	s.NotZero(res.ID())
	s.Equal("Planning", res.Title().String())
	s.Equal(at(9, 0), res.Start())
	s.Require().Len(s.publisher.events, 1)
	s.Equal(shared.EventReservationCreated, s.publisher.events[0].Type)
	s.Equal(res.ID(), s.publisher.events[0].ReservationID)
}

func (s *BookingCommandsTestSuite) TestCreateReservation_ConflictRules() {
	s.Require().NoError(s.book(s.roomA, s.alice, at(10, 0), at(11, 0)))

	cases := []struct {
		name  string
		start time.Time
		end   time.Time
		errIs error
	}{
		{name: "back-to-back after", start: at(11, 0), end: at(12, 0)},
		{name: "back-to-back before", start: at(9, 0), end: at(10, 0)},
		{name: "exact duplicate", start: at(10, 0), end: at(11, 0), errIs: errs.ErrSlotConflict},
		{name: "partial overlap start", start: at(9, 30), end: at(10, 30), errIs: errs.ErrSlotConflict},
		{name: "partial overlap end", start: at(10, 30), end: at(11, 30), errIs: errs.ErrSlotConflict},
		{name: "candidate contains existing", start: at(8, 0), end: at(13, 0), errIs: errs.ErrSlotConflict},
		{name: "existing contains candidate", start: at(10, 15), end: at(10, 45), errIs: errs.ErrSlotConflict},
	}

	for _, c := range cases {
		s.Run(c.name, func() {
			before := s.count(s.roomA)
			err := s.book(s.roomA, s.bob, c.start, c.end)
			if c.errIs == nil {
				s.Require().NoError(err)
				s.Equal(before+1, s.count(s.roomA))
				return
			}
			s.True(errs.Is(err, c.errIs), "got %v", err)
			s.Equal(before, s.count(s.roomA))
		})
	}
}

func (s *BookingCommandsTestSuite) TestCreateReservation_CrossRoomIndependence() {
	s.Require().NoError(s.book(s.roomA, s.alice, at(10, 0), at(11, 0)))
	s.Require().NoError(s.book(s.roomB, s.alice, at(10, 0), at(11, 0)))

	s.Equal(1, s.count(s.roomA))
	s.Equal(1, s.count(s.roomB))
}

func (s *BookingCommandsTestSuite) TestCreateReservation_InvalidInterval() {
	cases := []struct {
		name  string
		start time.Time
		end   time.Time
	}{
		{name: "inverted", start: at(11, 0), end: at(10, 0)},
		{name: "empty", start: at(10, 0), end: at(10, 0)},
		{name: "zero start", start: time.Time{}, end: at(10, 0)},
	}

	for _, c := range cases {
		s.Run(c.name, func() {
			err := s.book(s.roomA, s.alice, c.start, c.end)
			s.True(errs.Is(err, errs.ErrInvalidInterval), "got %v", err)
			s.False(errs.Is(err, errs.ErrSlotConflict))
			s.Zero(s.count(s.roomA))
		})
	}
	s.Empty(s.publisher.events)
}

func (s *BookingCommandsTestSuite) TestCreateReservation_InvalidReference() {
	err := s.book(999, s.alice, at(9, 0), at(10, 0))
	s.True(errs.Is(err, errs.ErrInvalidReference))
	s.True(errs.Is(err, errs.ErrRoomNotFound))

	err = s.book(s.roomA, 999, at(9, 0), at(10, 0))
	s.True(errs.Is(err, errs.ErrInvalidReference))
	s.True(errs.Is(err, errs.ErrRequesterNotFound))
	s.Zero(s.count(s.roomA))
}

func (s *BookingCommandsTestSuite) TestCreateReservation_TitleValidation() {
	_, err := s.commands.CreateReservation(s.ctx, commands.CreateReservationInput{
		RoomID:      s.roomA,
		RequesterID: s.alice,
		Title:       "   ",
		Start:       at(9, 0),
		End:         at(10, 0),
	})
	s.True(errs.Is(err, errs.ErrValidation))
	s.False(errs.Is(err, errs.ErrInvalidInterval))
}

func (s *BookingCommandsTestSuite) TestCreateReservation_PublishFailureDoesNotFail() {
	s.publisher.err = errors.New("broker down")

	s.Require().NoError(s.book(s.roomA, s.alice, at(9, 0), at(10, 0)))
	s.Equal(1, s.count(s.roomA))
}

func (s *BookingCommandsTestSuite) TestCancelReservation_ThenRebook() {
	res, err := s.commands.CreateReservation(s.ctx, commands.CreateReservationInput{
		RoomID: s.roomA, RequesterID: s.alice, Title: "Retro", Start: at(14, 0), End: at(15, 0),
	})
	s.Require().NoError(err)

	s.Require().NoError(s.commands.CancelReservation(s.ctx, res.ID(), shared.Actor{UserID: s.alice, Role: user.RoleUser}))
	s.Zero(s.count(s.roomA))

	s.Require().NoError(s.book(s.roomA, s.bob, at(14, 0), at(15, 0)))
	s.Equal(shared.EventReservationCancelled, s.publisher.events[1].Type)
}

func (s *BookingCommandsTestSuite) TestCancelReservation_Twice() {
	res, err := s.commands.CreateReservation(s.ctx, commands.CreateReservationInput{
		RoomID: s.roomA, RequesterID: s.alice, Title: "Retro", Start: at(14, 0), End: at(15, 0),
	})
	s.Require().NoError(err)
	actor := shared.Actor{UserID: s.alice, Role: user.RoleUser}

	s.Require().NoError(s.commands.CancelReservation(s.ctx, res.ID(), actor))
	err = s.commands.CancelReservation(s.ctx, res.ID(), actor)
	s.True(errs.Is(err, errs.ErrNotFound))
	s.True(errs.Is(err, errs.ErrReservationNotFound))
}

func (s *BookingCommandsTestSuite) TestCancelReservation_Authorization() {
	res, err := s.commands.CreateReservation(s.ctx, commands.CreateReservationInput{
		RoomID: s.roomA, RequesterID: s.alice, Title: "Retro", Start: at(14, 0), End: at(15, 0),
	})
	s.Require().NoError(err)

	err = s.commands.CancelReservation(s.ctx, res.ID(), shared.Actor{UserID: s.bob, Role: user.RoleUser})
	s.True(errs.Is(err, errs.ErrNotAuthorized))
	s.Equal(1, s.count(s.roomA))

	s.Require().NoError(s.commands.CancelReservation(s.ctx, res.ID(), shared.Actor{UserID: s.admin, Role: user.RoleAdmin}))
	s.Zero(s.count(s.roomA))
}

func TestCreateReservation_ConcurrentRace(t *testing.T) {
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	clk := clock.NewMockClock(day)
	uow := memory.NewUoW(clk, logger)
	uc := commands.NewBookingCommands(uow, shared.NewOwnerOrAdminPolicy(), shared.NewNoopPublisher(), clk, logger)

	r, err := room.NewRoom("Orion", 4, "")
	require.NoError(t, err)
	created, err := uow.Reads().Rooms().Create(ctx, r)
	require.NoError(t, err)
	name, _ := user.NewName("Racer")
	email, _ := user.NewEmail("racer@example.com")
	requester, err := uow.Reads().Users().Create(ctx, user.NewUser(name, email, "hash", user.RoleUser))
	require.NoError(t, err)

	const n = 32
	var wg sync.WaitGroup
	results := make(chan error, n)
	start := make(chan struct{})

	for i := range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			// every candidate overlaps 10:00-10:30
			_, err := uc.CreateReservation(ctx, commands.CreateReservationInput{
				RoomID:      created.ID(),
				RequesterID: requester.ID(),
				Title:       "race",
				Start:       at(10, 0).Add(-time.Duration(i) * time.Minute),
				End:         at(10, 30).Add(time.Duration(i) * time.Minute),
			})
			results <- err
		}()
	}
	close(start)
	wg.Wait()
	close(results)

	var ok, conflicts int
	for err := range results {
		switch {
		case err == nil:
			ok++
		case errs.Is(err, errs.ErrSlotConflict):
			conflicts++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}

	assert.Equal(t, 1, ok)
	assert.Equal(t, n-1, conflicts)

	stored, err := uow.Reads().Reservations().ListForRoomOnDay(ctx, created.ID(), day, day.Add(24*time.Hour))
	require.NoError(t, err)
	assert.Len(t, stored, 1)
}
