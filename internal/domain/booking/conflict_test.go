//go:build unit

package booking_test

import (
	"testing"
	"time"

	"room-booking/internal/domain/booking"

	"github.com/stretchr/testify/assert"
)

func at(hhmm string) time.Time {
	t, err := time.Parse("2006-01-02 15:04", "2030-05-10 "+hhmm)
	if err != nil {
		panic(err)
	}
	return t
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name   string
		s1, e1 string
		s2, e2 string
		want   bool
	}{
		{name: "identical", s1: "10:00", e1: "11:00", s2: "10:00", e2: "11:00", want: true},
		{name: "partial overlap at end", s1: "10:00", e1: "11:00", s2: "10:30", e2: "11:30", want: true},
		{name: "partial overlap at start", s1: "10:00", e1: "11:00", s2: "09:30", e2: "10:30", want: true},
		{name: "candidate contained", s1: "09:00", e1: "12:00", s2: "10:00", e2: "10:30", want: true},
		{name: "candidate contains existing", s1: "10:00", e1: "10:30", s2: "09:00", e2: "12:00", want: true},
		{name: "back-to-back after", s1: "10:00", e1: "11:00", s2: "11:00", e2: "12:00", want: false},
		{name: "back-to-back before", s1: "11:00", e1: "12:00", s2: "10:00", e2: "11:00", want: false},
		{name: "disjoint", s1: "08:00", e1: "09:00", s2: "10:00", e2: "11:00", want: false},
		{name: "zero-length inside", s1: "10:00", e1: "11:00", s2: "10:30", e2: "10:30", want: false},
		{name: "zero-length at boundary", s1: "10:00", e1: "11:00", s2: "10:00", e2: "10:00", want: false},
		{name: "inverted candidate", s1: "10:00", e1: "11:00", s2: "10:45", e2: "10:15", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := booking.Overlaps(at(tt.s1), at(tt.e1), at(tt.s2), at(tt.e2))
			assert.Equal(t, tt.want, got)

			// the rule is symmetric
			assert.Equal(t, tt.want, booking.Overlaps(at(tt.s2), at(tt.e2), at(tt.s1), at(tt.e1)))
		})
	}
}

func TestConflicting(t *testing.T) {
	existing := []*booking.Reservation{
		booking.ReconstructReservation(1, 7, 1, "standup", at("09:00"), at("09:30"), at("00:00")),
		booking.ReconstructReservation(2, 7, 1, "planning", at("10:00"), at("11:00"), at("00:00")),
		booking.ReconstructReservation(3, 7, 2, "retro", at("11:00"), at("12:00"), at("00:00")),
	}

	got := booking.Conflicting(existing, at("10:30"), at("11:15"))

	ids := make([]int64, 0, len(got))
	for _, r := range got {
		ids = append(ids, r.ID())
	}
	assert.ElementsMatch(t, []int64{2, 3}, ids)
	assert.Empty(t, booking.Conflicting(existing, at("09:30"), at("10:00")))
}
