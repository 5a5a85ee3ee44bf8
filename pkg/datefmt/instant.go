package datefmt

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Interpretation rules for instant strings:
//
//	2023-01-01                  ISO date only, UTC midnight
//	2023-01-01T10:00:00         ISO date-time without zone, local time
//	2023-01-01T10:00:00Z        ISO date-time with zone, that zone
//	2023-01-01T24:00:00         end of day, 2023-01-02 00:00 local
//	2023-01-01 00:00:00         other forms without zone, local time
//	2023/01/01, Jan 1 2023      other forms without zone, local midnight
//	2023-01-01 00:00:00 EST     explicit zone, that zone
//	... GMT-0500, +05:30, UTC   explicit offset, that offset
//
// The returned time carries the location the fields should be rendered in.

var (
	isoDateRe = regexp.MustCompile(`^(\d{4})(?:-(\d{2})(?:-(\d{2}))?)?$`)

	isoDateTimeRe = regexp.MustCompile(
		`^(\d{4})-(\d{2})-(\d{2})T(\d{2}):(\d{2})(?::(\d{2})(?:\.(\d{1,9}))?)?(Z|[+-]\d{2}:?\d{2})?$`)

	weekdayPrefixRe = regexp.MustCompile(`(?i)^(?:sun|mon|tue|wed|thu|fri|sat)[a-z]*\.?,?\s+`)
	zoneCommentRe   = regexp.MustCompile(`\s*\([^)]*\)\s*$`)

	ymdRe     = regexp.MustCompile(`^(\d{4})[-/](\d{1,2})[-/](\d{1,2})`)
	mdyRe     = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{4})`)
	monDayRe  = regexp.MustCompile(`^([A-Za-z]{3})[A-Za-z]*\.?\s+(\d{1,2}),?\s+(\d{4})`)
	dayMonRe  = regexp.MustCompile(`^(\d{1,2})[\s-]+([A-Za-z]{3})[A-Za-z]*\.?,?[\s-]+(\d{4})`)
	restRe    = regexp.MustCompile(`^(?:(?:\s+|T)(\d{1,2}):(\d{2})(?::(\d{2})(?:\.(\d{1,9}))?)?)?\s*(.*)$`)
	offsetRe  = regexp.MustCompile(`^([+-])(\d{2}):?(\d{2})$`)
	gmtZoneRe = regexp.MustCompile(`(?i)^(?:gmt|utc|ut)(?:([+-])(\d{1,2})(?::?(\d{2}))?)?$`)
)

// zoneAbbreviations are the only zone abbreviations accepted. Others are
// rejected rather than treated as UTC.
var zoneAbbreviations = map[string]int{
	"EST": -5 * 3600,
	"EDT": -4 * 3600,
	"CST": -6 * 3600,
	"CDT": -5 * 3600,
	"MST": -7 * 3600,
	"MDT": -6 * 3600,
	"PST": -8 * 3600,
	"PDT": -7 * 3600,
}

var monthAbbreviations = map[string]time.Month{
	"jan": time.January, "feb": time.February, "mar": time.March,
	"apr": time.April, "may": time.May, "jun": time.June,
	"jul": time.July, "aug": time.August, "sep": time.September,
	"oct": time.October, "nov": time.November, "dec": time.December,
}

type dateFields struct {
	year, month, day  int
	hour, minute, sec int
	nsec              int
}

// ParseInstant interprets s under the rules above. local is the zone used for
// strings without an explicit zone; nil means time.Local.
func ParseInstant(s string, local *time.Location) (time.Time, error) {
	if local == nil {
		local = time.Local
	}
	raw := s
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, NewParseError(raw, errors.New("empty instant"))
	}

	if m := isoDateRe.FindStringSubmatch(s); m != nil {
		f := dateFields{year: atoi(m[1]), month: 1, day: 1}
		if m[2] != "" {
			f.month = atoi(m[2])
		}
		if m[3] != "" {
			f.day = atoi(m[3])
		}
		return f.build(raw, time.UTC)
	}

	if m := isoDateTimeRe.FindStringSubmatch(s); m != nil {
		f := dateFields{
			year: atoi(m[1]), month: atoi(m[2]), day: atoi(m[3]),
			hour: atoi(m[4]), minute: atoi(m[5]), sec: atoi(m[6]),
			nsec: fraction(m[7]),
		}
		loc := local
		if m[8] != "" {
			var err error
			if loc, err = parseZone(m[8]); err != nil {
				return time.Time{}, NewParseError(raw, err)
			}
		}
		return f.build(raw, loc)
	}

	return parseLegacy(raw, s, local)
}

func parseLegacy(raw, s string, local *time.Location) (time.Time, error) {
	s = weekdayPrefixRe.ReplaceAllString(s, "")
	s = zoneCommentRe.ReplaceAllString(s, "")

	f, rest, ok := matchDate(s)
	if !ok {
		return time.Time{}, NewParseError(raw, errors.New("unrecognized date layout"))
	}

	m := restRe.FindStringSubmatch(rest)
	if m == nil {
		return time.Time{}, NewParseError(raw, fmt.Errorf("unexpected text %q", rest))
	}
	if m[1] != "" {
		f.hour, f.minute, f.sec, f.nsec = atoi(m[1]), atoi(m[2]), atoi(m[3]), fraction(m[4])
	}

	loc := local
	if zone := strings.TrimSpace(m[5]); zone != "" {
		var err error
		if loc, err = parseZone(zone); err != nil {
			return time.Time{}, NewParseError(raw, err)
		}
	}
	return f.build(raw, loc)
}

func matchDate(s string) (dateFields, string, bool) {
	if m := ymdRe.FindStringSubmatch(s); m != nil {
		return dateFields{year: atoi(m[1]), month: atoi(m[2]), day: atoi(m[3])}, s[len(m[0]):], true
	}
	if m := mdyRe.FindStringSubmatch(s); m != nil {
		return dateFields{year: atoi(m[3]), month: atoi(m[1]), day: atoi(m[2])}, s[len(m[0]):], true
	}
	if m := monDayRe.FindStringSubmatch(s); m != nil {
		if mon, ok := monthAbbreviations[strings.ToLower(m[1])]; ok {
			return dateFields{year: atoi(m[3]), month: int(mon), day: atoi(m[2])}, s[len(m[0]):], true
		}
	}
	if m := dayMonRe.FindStringSubmatch(s); m != nil {
		if mon, ok := monthAbbreviations[strings.ToLower(m[2])]; ok {
			return dateFields{year: atoi(m[3]), month: int(mon), day: atoi(m[1])}, s[len(m[0]):], true
		}
	}
	return dateFields{}, "", false
}

// parseZone turns a zone designator into a fixed location.
func parseZone(zone string) (*time.Location, error) {
	if zone == "Z" || zone == "z" {
		return time.UTC, nil
	}
	if off, ok := zoneAbbreviations[strings.ToUpper(zone)]; ok {
		return time.FixedZone(strings.ToUpper(zone), off), nil
	}
	if m := offsetRe.FindStringSubmatch(zone); m != nil {
		return fixedOffset(m[1], m[2], m[3])
	}
	if m := gmtZoneRe.FindStringSubmatch(zone); m != nil {
		if m[1] == "" {
			return time.UTC, nil
		}
		return fixedOffset(m[1], m[2], m[3])
	}
	return nil, fmt.Errorf("unknown zone %q", zone)
}

func fixedOffset(sign, hh, mm string) (*time.Location, error) {
	hours, minutes := atoi(hh), atoi(mm)
	if hours > 23 || minutes > 59 {
		return nil, fmt.Errorf("offset out of range: %s%s:%s", sign, hh, mm)
	}
	secs := hours*3600 + minutes*60
	if sign == "-" {
		secs = -secs
	}
	if secs == 0 {
		return time.UTC, nil
	}
	return time.FixedZone("", secs), nil
}

func (f dateFields) build(raw string, loc *time.Location) (time.Time, error) {
	switch {
	case f.month < 1 || f.month > 12:
		return time.Time{}, NewParseError(raw, fmt.Errorf("month %d out of range", f.month))
	case f.day < 1 || f.day > daysIn(time.Month(f.month), f.year):
		return time.Time{}, NewParseError(raw, fmt.Errorf("day %d out of range", f.day))
	case f.hour == 24 && (f.minute != 0 || f.sec != 0 || f.nsec != 0):
		return time.Time{}, NewParseError(raw, errors.New("hour 24 is only valid as 24:00:00"))
	case f.hour > 24:
		return time.Time{}, NewParseError(raw, fmt.Errorf("hour %d out of range", f.hour))
	case f.minute > 59:
		return time.Time{}, NewParseError(raw, fmt.Errorf("minute %d out of range", f.minute))
	case f.sec > 59:
		return time.Time{}, NewParseError(raw, fmt.Errorf("second %d out of range", f.sec))
	}
	// 24:00:00 is midnight at the end of the day; time.Date rolls it over.
	return time.Date(f.year, time.Month(f.month), f.day, f.hour, f.minute, f.sec, f.nsec, loc), nil
}

func daysIn(m time.Month, year int) int {
	return time.Date(year, m+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// atoi converts regexp digit groups; empty groups are zero.
func atoi(s string) int {
	if s == "" {
		return 0
	}
	v, _ := strconv.Atoi(s)
	return v
}

// fraction converts fractional-second digits to nanoseconds.
func fraction(digits string) int {
	if digits == "" {
		return 0
	}
	for len(digits) < 9 {
		digits += "0"
	}
	return atoi(digits[:9])
}
