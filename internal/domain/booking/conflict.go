package booking

import "time"

// Overlaps is the conflict rule for half-open intervals [s1,e1) and [s2,e2).
// Intervals that only touch at a boundary do not overlap, so back-to-back
// reservations are admitted. Inverted or empty ranges never overlap anything.
func Overlaps(s1, e1, s2, e2 time.Time) bool {
	return s1.Before(e1) && s2.Before(e2) && s1.Before(e2) && e1.After(s2)
}

func (iv Interval) Overlaps(other Interval) bool {
	return Overlaps(iv.start, iv.end, other.start, other.end)
}

// Conflicting returns the reservations whose interval overlaps [start, end).
func Conflicting(existing []*Reservation, start, end time.Time) []*Reservation {
	var out []*Reservation
	for _, r := range existing {
		if Overlaps(r.interval.start, r.interval.end, start, end) {
			out = append(out, r)
		}
	}
	return out
}
