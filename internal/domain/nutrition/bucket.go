package nutrition

import (
	"regexp"
	"strings"
	"time"
)

const DateLayout = "2006-01-02"

const dayWidth = 24 * time.Hour

var datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// LoadTimezone resolves an IANA zone identifier. The process-local zone is not accepted.
func LoadTimezone(name string) (*time.Location, error) {
	name = strings.TrimSpace(name)
	if name == "" || name == "Local" {
		return nil, &InvalidTimezoneError{Value: name}
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, &InvalidTimezoneError{Value: name}
	}
	return loc, nil
}

// ParseDate validates a YYYY-MM-DD calendar date.
func ParseDate(value string) (time.Time, error) {
	if !datePattern.MatchString(value) {
		return time.Time{}, &InvalidDateError{Value: value}
	}
	parsed, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, &InvalidDateError{Value: value}
	}
	return parsed, nil
}

// Today returns the calendar date of now in loc.
func Today(now time.Time, loc *time.Location) string {
	return now.In(loc).Format(DateLayout)
}

// DayBounds returns [local midnight, +24h) for date in tz, as UTC instants.
// The end is a fixed 24h after the start, so on DST transition days it does
// not land on the next local midnight.
func DayBounds(date, tz string) (Range, error) {
	day, loc, err := resolve(date, tz)
	if err != nil {
		return Range{}, err
	}
	start := localMidnight(day, 0, loc)
	return Range{Start: start, End: start.Add(dayWidth)}, nil
}

// WeekBounds returns the Sunday-started week containing date in tz, from local
// midnight on Sunday to local midnight on the following Sunday, as UTC instants.
func WeekBounds(date, tz string) (Range, error) {
	day, loc, err := resolve(date, tz)
	if err != nil {
		return Range{}, err
	}
	offset := -int(day.Weekday())
	return Range{
		Start: localMidnight(day, offset, loc),
		End:   localMidnight(day, offset+7, loc),
	}, nil
}

func resolve(date, tz string) (time.Time, *time.Location, error) {
	day, err := ParseDate(date)
	if err != nil {
		return time.Time{}, nil, err
	}
	loc, err := LoadTimezone(tz)
	if err != nil {
		return time.Time{}, nil, err
	}
	return day, loc, nil
}

func localMidnight(day time.Time, addDays int, loc *time.Location) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day()+addDays, 0, 0, 0, 0, loc).UTC()
}
