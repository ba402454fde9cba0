package alerts

import (
	"fmt"
	"time"
)

// Wire layout for dates shown to users (dd/MM/yyyy).
const (
	layoutWire = "02/01/2006"
	layoutISO  = "2006-01-02"
)

const secondsPerDay = 24 * 60 * 60

// TruncateToDay strips the time component and returns the calendar date at
// UTC midnight. The wall-clock Y/M/D of t is kept, so a local date never
// shifts to the previous day.
func TruncateToDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// AddMonths adds n calendar months to d. When the source day does not exist
// in the target month the result is clamped to that month's last day
// (31 Jan + 1 month = 28/29 Feb), unlike time.AddDate which rolls over.
func AddMonths(d time.Time, n int) time.Time {
	d = TruncateToDay(d)
	y, m, day := d.Date()

	// first day of the target month, then clamp the day
	first := time.Date(y, m+time.Month(n), 1, 0, 0, 0, 0, time.UTC)
	if last := daysIn(first.Year(), first.Month()); day > last {
		day = last
	}
	return time.Date(first.Year(), first.Month(), day, 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns the whole number of calendar days from -> to.
// Negative when to is before from.
// Counted on Unix days rather than time.Duration, which saturates past ~292 years.
func DaysBetween(from, to time.Time) int {
	return int(TruncateToDay(to).Unix()/secondsPerDay - TruncateToDay(from).Unix()/secondsPerDay)
}

// FormatDate renders d as dd/MM/yyyy.
func FormatDate(d time.Time) string {
	return d.Format(layoutWire)
}

// ParseDate accepts dd/MM/yyyy, YYYY-MM-DD or RFC3339 and returns the
// truncated calendar date.
func ParseDate(s string) (time.Time, error) {
	for _, layout := range []string{layoutISO, layoutWire, time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			return TruncateToDay(t), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q, expected dd/MM/yyyy or YYYY-MM-DD", s)
}

// ParseOptionalDate is ParseDate for loader input: empty or malformed
// strings become an absent date instead of an error.
func ParseOptionalDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := ParseDate(s)
	if err != nil {
		return nil
	}
	return &t
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
