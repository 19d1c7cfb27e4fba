package bot

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"room-booking/internal/domain/booking"
	"room-booking/internal/pkg/clock"
	"room-booking/internal/pkg/errs"
	"room-booking/internal/usecase/commands"
	"room-booking/internal/usecase/queries"
	"room-booking/internal/usecase/shared"
)

const helpText = `Hi! I book meeting rooms.
/link <code> - connect your account (get the code on your profile page)
/rooms - list rooms
/book - book a room step by step
/mybookings - your upcoming bookings
/cancel <id> - cancel a booking
/abort - drop the booking in progress`

const displayLayout = "2006-01-02 15:04"

// Message is one incoming chat message.
type Message struct {
	ChatID     int64
	TelegramID int64
	Text       string
}

type Dispatcher struct {
	bookings     commands.BookingCommands
	links        commands.TelegramLinkCommands
	bookingReads queries.BookingQueries
	roomReads    queries.RoomQueries
	userReads    queries.UserQueries
	sessions     SessionStore
	clock        clock.Clock
	loc          *time.Location
	logger       *slog.Logger
}

func NewDispatcher(
	bookings commands.BookingCommands,
	links commands.TelegramLinkCommands,
	bookingReads queries.BookingQueries,
	roomReads queries.RoomQueries,
	userReads queries.UserQueries,
	sessions SessionStore,
	clk clock.Clock,
	loc *time.Location,
	logger *slog.Logger,
) *Dispatcher {
	return &Dispatcher{
		bookings:     bookings,
		links:        links,
		bookingReads: bookingReads,
		roomReads:    roomReads,
		userReads:    userReads,
		sessions:     sessions,
		clock:        clk,
		loc:          loc,
		logger:       logger,
	}
}

// Handle returns the reply for one message. It never fails; problems are
// reported to the chat.
func (d *Dispatcher) Handle(ctx context.Context, msg Message) string {
	if name, args, ok := splitCommand(msg.Text); ok {
		return d.command(ctx, msg, name, args)
	}

	sess, err := d.sessions.Get(ctx, msg.ChatID)
	if err != nil {
		return d.internalError("load session", err)
	}
	if sess == nil || sess.Step == StepIdle {
		return "Send /book to start a booking or /start for help."
	}
	return d.wizard(ctx, msg, sess)
}

func (d *Dispatcher) command(ctx context.Context, msg Message, name, args string) string {
	switch name {
	case "start", "help":
		return helpText
	case "link":
		return d.link(ctx, msg, args)
	case "rooms":
		return d.rooms(ctx)
	case "book":
		return d.startBooking(ctx, msg)
	case "mybookings":
		return d.myBookings(ctx, msg)
	case "cancel":
		return d.cancel(ctx, msg, args)
	case "abort":
		if err := d.sessions.Delete(ctx, msg.ChatID); err != nil {
			return d.internalError("delete session", err)
		}
		return "Booking dropped."
	default:
		return "Unknown command. Send /start for help."
	}
}

func (d *Dispatcher) link(ctx context.Context, msg Message, code string) string {
	if code == "" {
		return "Usage: /link <code>"
	}
	u, err := d.links.CompleteLink(ctx, code, msg.TelegramID)
	switch {
	case err == nil:
		return fmt.Sprintf("Linked to %s. You can book now.", u.Name().Value())
	case errs.Is(err, errs.ErrTelegramTaken):
		return "This Telegram account is already linked to another user."
	case errs.Is(err, errs.ErrNotFound):
		return "The code is unknown or expired. Generate a new one on your profile page."
	default:
		return d.internalError("complete link", err)
	}
}

func (d *Dispatcher) rooms(ctx context.Context) string {
	rooms, err := d.roomReads.ListRooms(ctx)
	if err != nil {
		return d.internalError("list rooms", err)
	}
	if len(rooms) == 0 {
		return "No rooms yet."
	}
	lines := make([]string, 0, len(rooms))
	for _, r := range rooms {
		lines = append(lines, fmt.Sprintf("ID %d: %s (%d seats)", r.ID, r.Name, r.Capacity))
	}
	return strings.Join(lines, "\n")
}

func (d *Dispatcher) startBooking(ctx context.Context, msg Message) string {
	if _, reply := d.actor(ctx, msg); reply != "" {
		return reply
	}
	if err := d.sessions.Save(ctx, msg.ChatID, &Session{Step: StepAwaitingRoom}); err != nil {
		return d.internalError("save session", err)
	}
	return "Enter the room ID (see /rooms):"
}

func (d *Dispatcher) myBookings(ctx context.Context, msg Message) string {
	actor, reply := d.actor(ctx, msg)
	if reply != "" {
		return reply
	}
	list, err := d.bookingReads.ListUpcomingForRequester(ctx, actor.UserID, d.clock.Now())
	if err != nil {
		return d.internalError("list upcoming", err)
	}
	if len(list) == 0 {
		return "You have no upcoming bookings."
	}
	lines := make([]string, 0, len(list))
	for _, b := range list {
		lines = append(lines, fmt.Sprintf("ID %d: %s at %s", b.ID, b.Title, b.Start.In(d.loc).Format(displayLayout)))
	}
	return strings.Join(lines, "\n")
}

func (d *Dispatcher) cancel(ctx context.Context, msg Message, args string) string {
	id, err := strconv.ParseInt(args, 10, 64)
	if err != nil || id <= 0 {
		return "Usage: /cancel <id>"
	}
	actor, reply := d.actor(ctx, msg)
	if reply != "" {
		return reply
	}

	err = d.bookings.CancelReservation(ctx, id, *actor)
	switch {
	case err == nil:
		return fmt.Sprintf("Booking %d cancelled.", id)
	case errs.Is(err, errs.ErrNotFound):
		return fmt.Sprintf("Booking %d not found.", id)
	case errs.Is(err, errs.ErrNotAuthorized):
		return "You can only cancel your own bookings."
	default:
		return d.internalError("cancel reservation", err)
	}
}

func (d *Dispatcher) wizard(ctx context.Context, msg Message, sess *Session) string {
	text := strings.TrimSpace(msg.Text)

	switch sess.Step {
	case StepAwaitingRoom:
		id, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			return "Send the numeric room ID."
		}
		if _, err := d.roomReads.GetRoom(ctx, id); err != nil {
			if errs.Is(err, errs.ErrNotFound) {
				return "No such room. See /rooms."
			}
			return d.internalError("get room", err)
		}
		sess.RoomID = id
		sess.Step = StepAwaitingDate
		return d.save(ctx, msg.ChatID, sess, "Date (YYYY-MM-DD):")

	case StepAwaitingDate:
		if _, err := parseDate(text, d.loc); err != nil {
			return "Wrong format. Date (YYYY-MM-DD):"
		}
		sess.Date = text
		sess.Step = StepAwaitingTime
		return d.save(ctx, msg.ChatID, sess, "Time (HH:MM-HH:MM):")

	case StepAwaitingTime:
		day, err := parseDate(sess.Date, d.loc)
		if err != nil {
			return d.reset(ctx, msg.ChatID, "The draft was broken. Start again with /book.")
		}
		start, end, err := parseTimeRange(text, day)
		if err != nil {
			return "Wrong format. Time (HH:MM-HH:MM):"
		}
		if !start.Before(end) {
			return "The end must be after the start. Time (HH:MM-HH:MM):"
		}
		taken, err := d.slotTaken(ctx, sess.RoomID, start, end)
		if err != nil {
			return d.internalError("check slot", err)
		}
		if taken {
			return "That time is already booked. Pick another (HH:MM-HH:MM):"
		}
		sess.Start, sess.End = start.UTC(), end.UTC()
		sess.Step = StepAwaitingTitle
		return d.save(ctx, msg.ChatID, sess, "Booking title:")

	case StepAwaitingTitle:
		return d.finish(ctx, msg, sess, text)

	default:
		return d.reset(ctx, msg.ChatID, "Send /book to start a booking.")
	}
}

// slotTaken is an early hint only. The engine decides at commit time.
func (d *Dispatcher) slotTaken(ctx context.Context, roomID int64, start, end time.Time) (bool, error) {
	existing, err := d.bookingReads.ListReservations(ctx, roomID, start, end)
	if err != nil {
		return false, err
	}
	for _, r := range existing {
		if booking.Overlaps(r.Start, r.End, start, end) {
			return true, nil
		}
	}
	return false, nil
}

func (d *Dispatcher) finish(ctx context.Context, msg Message, sess *Session, title string) string {
	actor, reply := d.actor(ctx, msg)
	if reply != "" {
		return d.reset(ctx, msg.ChatID, reply)
	}

	res, err := d.bookings.CreateReservation(ctx, commands.CreateReservationInput{
		RoomID:      sess.RoomID,
		RequesterID: actor.UserID,
		Title:       title,
		Start:       sess.Start,
		End:         sess.End,
	})
	switch {
	case err == nil:
		return d.reset(ctx, msg.ChatID, fmt.Sprintf("Booked! ID %d, %s-%s.",
			res.ID(), res.Start().In(d.loc).Format(displayLayout), res.End().In(d.loc).Format(clockLayout)))
	case errs.Is(err, errs.ErrValidation):
		return "The title must be 1-255 characters. Booking title:"
	case errs.Is(err, errs.ErrSlotConflict):
		sess.Step = StepAwaitingTime
		return d.save(ctx, msg.ChatID, sess, "Someone just booked that time. Pick another (HH:MM-HH:MM):")
	case errs.Is(err, errs.ErrInvalidReference):
		return d.reset(ctx, msg.ChatID, "The room no longer exists. Start again with /book.")
	default:
		return d.internalError("create reservation", err)
	}
}

func (d *Dispatcher) actor(ctx context.Context, msg Message) (*shared.Actor, string) {
	actor, err := d.userReads.ResolveTelegramActor(ctx, msg.TelegramID)
	if err != nil {
		if errs.Is(err, errs.ErrNotFound) {
			return nil, "Link your account first: /link <code>"
		}
		return nil, d.internalError("resolve actor", err)
	}
	return actor, ""
}

func (d *Dispatcher) save(ctx context.Context, chatID int64, sess *Session, reply string) string {
	if err := d.sessions.Save(ctx, chatID, sess); err != nil {
		return d.internalError("save session", err)
	}
	return reply
}

func (d *Dispatcher) reset(ctx context.Context, chatID int64, reply string) string {
	if err := d.sessions.Delete(ctx, chatID); err != nil {
		d.logger.Warn("failed to delete bot session", slog.Int64("chat_id", chatID), slog.String("error", err.Error()))
	}
	return reply
}

func (d *Dispatcher) internalError(op string, err error) string {
	d.logger.Error("bot operation failed", slog.String("op", op), slog.String("error", err.Error()))
	return "Something went wrong. Try again later."
}
