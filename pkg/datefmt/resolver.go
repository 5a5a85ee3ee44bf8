package datefmt

import (
	"fmt"
	"strconv"
	"time"
)

// Values maps every vocabulary name to its rendered text for one instant.
type Values map[string]string

// Resolve computes every placeholder for t. Fields are taken from t's own
// location, so callers control local versus UTC rendering through the
// location attached to t. tzName is supplied by the caller because it is a
// process-wide value rather than a property of t.
func Resolve(t time.Time, tzName string) Values {
	return Values{
		PlaceholderYear:        padInt(t.Year(), 4),
		PlaceholderMonth:       padInt(int(t.Month()), 2),
		PlaceholderDay:         padInt(t.Day(), 2),
		PlaceholderHour:        padInt(t.Hour(), 2),
		PlaceholderMinute:      padInt(t.Minute(), 2),
		PlaceholderSecond:      padInt(t.Second(), 2),
		PlaceholderMillisecond: padInt(t.Nanosecond()/int(time.Millisecond), 3),
		PlaceholderTZMinutes:   TZMinutes(t),
		PlaceholderTZName:      tzName,
	}
}

// TZMinutes renders the offset of t's zone using the getTimezoneOffset sign:
// the number of minutes to add to t's wall clock to reach UTC. The magnitude is
// zero-padded to 4 digits and negative values carry a leading '-'.
func TZMinutes(t time.Time) string {
	_, offset := t.Zone()
	minutes := -offset / 60
	if minutes < 0 {
		return "-" + padInt(-minutes, 4)
	}
	return padInt(minutes, 4)
}

func padInt(v, width int) string {
	if v < 0 {
		return "-" + padInt(-v, width)
	}
	s := strconv.Itoa(v)
	if len(s) >= width {
		return s
	}
	return fmt.Sprintf("%0*d", width, v)
}
