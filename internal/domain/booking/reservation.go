package booking

import (
	"cmp"
	"errors"
	"slices"
	"strings"
	"time"
	"unicode/utf8"
)

var (
	ErrEmptyTitle   = errors.New("title cannot be empty")
	ErrTitleTooLong = errors.New("title is too long (max 255 characters)")
)

const MaxTitleLength = 255

type Title struct {
	value string
}

func NewTitle(s string) (Title, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Title{}, ErrEmptyTitle
	}
	if utf8.RuneCountInString(s) > MaxTitleLength {
		return Title{}, ErrTitleTooLong
	}
	return Title{value: s}, nil
}

func (t Title) String() string {
	return t.value
}

// Reservation is a committed (or about to be committed) booking of one room.
// The id is zero until the interval store assigns one.
type Reservation struct {
	id          int64
	roomID      int64
	requesterID int64
	title       Title
	interval    Interval
	createdAt   time.Time
}

func NewReservation(roomID, requesterID int64, title Title, interval Interval, now time.Time) *Reservation {
	return &Reservation{
		roomID:      roomID,
		requesterID: requesterID,
		title:       title,
		interval:    interval,
		createdAt:   now.UTC(),
	}
}

func ReconstructReservation(
	id, roomID, requesterID int64,
	title string,
	start, end time.Time,
	createdAt time.Time,
) *Reservation {
	return &Reservation{
		id:          id,
		roomID:      roomID,
		requesterID: requesterID,
		title:       Title{value: title},
		interval:    Interval{start: start.UTC(), end: end.UTC()},
		createdAt:   createdAt.UTC(),
	}
}

// WithID returns a copy carrying the store-assigned id.
func (r *Reservation) WithID(id int64) *Reservation {
	cp := *r
	cp.id = id
	return &cp
}

func (r *Reservation) IsOwnedBy(userID int64) bool {
	return r.requesterID == userID
}

func (r *Reservation) IsUpcoming(now time.Time) bool {
	return !r.interval.start.Before(now)
}

func (r *Reservation) ID() int64            { return r.id }
func (r *Reservation) RoomID() int64        { return r.roomID }
func (r *Reservation) RequesterID() int64   { return r.requesterID }
func (r *Reservation) Title() Title         { return r.title }
func (r *Reservation) Interval() Interval   { return r.interval }
func (r *Reservation) Start() time.Time     { return r.interval.start }
func (r *Reservation) End() time.Time       { return r.interval.end }
func (r *Reservation) CreatedAt() time.Time { return r.createdAt }

// SortByStart orders reservations by start time ascending, ties broken by id.
func SortByStart(rs []*Reservation) {
	slices.SortFunc(rs, func(a, b *Reservation) int {
		if c := a.interval.start.Compare(b.interval.start); c != 0 {
			return c
		}
		return cmp.Compare(a.id, b.id)
	})
}
