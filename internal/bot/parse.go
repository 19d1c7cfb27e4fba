package bot

import (
	"errors"
	"strings"
	"time"
)

var (
	errBadDate = errors.New("date must look like 2006-01-02")
	errBadTime = errors.New("time must look like 09:00-10:30")
)

const (
	dateLayout  = "2006-01-02"
	clockLayout = "15:04"
)

// parseDate returns local midnight of the given calendar day.
func parseDate(s string, loc *time.Location) (time.Time, error) {
	d, err := time.ParseInLocation(dateLayout, strings.TrimSpace(s), loc)
	if err != nil {
		return time.Time{}, errBadDate
	}
	return d, nil
}

// parseTimeRange reads "HH:MM-HH:MM" on the given day. The order of the two
// bounds is not checked here.
func parseTimeRange(s string, day time.Time) (time.Time, time.Time, error) {
	from, to, ok := strings.Cut(strings.ReplaceAll(strings.TrimSpace(s), " ", ""), "-")
	if !ok {
		return time.Time{}, time.Time{}, errBadTime
	}
	start, err := clockOn(from, day)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := clockOn(to, day)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, end, nil
}

func clockOn(s string, day time.Time) (time.Time, error) {
	t, err := time.Parse(clockLayout, s)
	if err != nil {
		return time.Time{}, errBadTime
	}
	return time.Date(day.Year(), day.Month(), day.Day(), t.Hour(), t.Minute(), 0, 0, day.Location()), nil
}

// splitCommand turns "/cancel@room_bot 12" into ("cancel", "12").
func splitCommand(text string) (string, string, bool) {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "/") {
		return "", "", false
	}
	head, args, _ := strings.Cut(text[1:], " ")
	head, _, _ = strings.Cut(head, "@")
	return strings.ToLower(head), strings.TrimSpace(args), true
}
