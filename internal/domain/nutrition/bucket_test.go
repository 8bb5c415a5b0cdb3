package nutrition

import (
	"errors"
	"testing"
	"time"
)

func TestDayBoundsLocalMidnight(t *testing.T) {
	bounds, err := DayBounds("2024-06-12", "America/Los_Angeles")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	wantStart := time.Date(2024, 6, 12, 7, 0, 0, 0, time.UTC)
	if !bounds.Start.Equal(wantStart) {
		t.Fatalf("expected start %s, got %s", wantStart, bounds.Start)
	}
	if bounds.Start.Location() != time.UTC {
		t.Fatalf("expected UTC start, got %s", bounds.Start.Location())
	}
	if !bounds.End.Equal(wantStart.Add(24 * time.Hour)) {
		t.Fatalf("expected end %s, got %s", wantStart.Add(24*time.Hour), bounds.End)
	}
}

func TestDayBoundsAlwaysTwentyFourHours(t *testing.T) {
	cases := []struct {
		date string
		tz   string
	}{
		{date: "2024-01-15", tz: "UTC"},
		{date: "2024-03-10", tz: "America/New_York"},
		{date: "2024-11-03", tz: "America/New_York"},
		{date: "2024-03-31", tz: "Europe/Berlin"},
		{date: "2024-10-27", tz: "Europe/Berlin"},
		{date: "2024-04-07", tz: "Australia/Sydney"},
		{date: "2024-02-29", tz: "Asia/Kolkata"},
		{date: "2024-12-31", tz: "Pacific/Kiritimati"},
	}

	for _, tc := range cases {
		bounds, err := DayBounds(tc.date, tc.tz)
		if err != nil {
			t.Fatalf("%s %s: expected no error, got %v", tc.date, tc.tz, err)
		}
		if width := bounds.End.Sub(bounds.Start); width != 24*time.Hour {
			t.Fatalf("%s %s: expected 24h, got %s", tc.date, tc.tz, width)
		}
	}
}

func TestDayBoundsOnSpringForwardDoesNotReachNextLocalMidnight(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}

	bounds, err := DayBounds("2024-03-10", "America/New_York")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	nextMidnight := time.Date(2024, 3, 11, 0, 0, 0, 0, loc)
	if bounds.End.Equal(nextMidnight) {
		t.Fatalf("expected fixed-width end to differ from next local midnight")
	}
	if got := bounds.End.Sub(nextMidnight); got != time.Hour {
		t.Fatalf("expected end one hour past next local midnight, got %s", got)
	}
}

func TestWeekBoundsStartsOnSunday(t *testing.T) {
	bounds, err := WeekBounds("2024-06-12", "America/Los_Angeles")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	wantStart := time.Date(2024, 6, 9, 7, 0, 0, 0, time.UTC)
	wantEnd := time.Date(2024, 6, 16, 7, 0, 0, 0, time.UTC)
	if !bounds.Start.Equal(wantStart) || !bounds.End.Equal(wantEnd) {
		t.Fatalf("expected [%s, %s), got [%s, %s)", wantStart, wantEnd, bounds.Start, bounds.End)
	}
}

func TestWeekBoundsOnSundayAndSaturday(t *testing.T) {
	sunday, err := WeekBounds("2024-06-09", "UTC")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	saturday, err := WeekBounds("2024-06-15", "UTC")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !sunday.Start.Equal(saturday.Start) || !sunday.End.Equal(saturday.End) {
		t.Fatalf("expected same week, got %v and %v", sunday, saturday)
	}
	if sunday.Start.Weekday() != time.Sunday {
		t.Fatalf("expected sunday start, got %s", sunday.Start.Weekday())
	}
}

func TestWeekBoundsAcrossDSTFollowsLocalMidnight(t *testing.T) {
	bounds, err := WeekBounds("2024-03-12", "America/New_York")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	wantStart := time.Date(2024, 3, 10, 5, 0, 0, 0, time.UTC)
	wantEnd := time.Date(2024, 3, 17, 4, 0, 0, 0, time.UTC)
	if !bounds.Start.Equal(wantStart) || !bounds.End.Equal(wantEnd) {
		t.Fatalf("expected [%s, %s), got [%s, %s)", wantStart, wantEnd, bounds.Start, bounds.End)
	}
}

func TestDayBoundsInvalidDate(t *testing.T) {
	for _, value := range []string{"", "2024-2-01", "20240201", "2024-02-30", "2024-13-01", "2024-06-12T00:00:00Z", " 2024-06-12"} {
		_, err := DayBounds(value, "UTC")
		var dateErr *InvalidDateError
		if !errors.As(err, &dateErr) {
			t.Fatalf("%q: expected InvalidDateError, got %v", value, err)
		}
		if !errors.Is(err, ErrInvalidDate) {
			t.Fatalf("%q: expected errors.Is ErrInvalidDate", value)
		}
	}
}

func TestDayBoundsInvalidTimezone(t *testing.T) {
	for _, value := range []string{"", "Local", "Mars/Olympus", "   "} {
		_, err := DayBounds("2024-06-12", value)
		var tzErr *InvalidTimezoneError
		if !errors.As(err, &tzErr) {
			t.Fatalf("%q: expected InvalidTimezoneError, got %v", value, err)
		}
	}

	_, err := WeekBounds("2024-06-12", "Nowhere/City")
	if !errors.Is(err, ErrInvalidTimezone) {
		t.Fatalf("expected invalid timezone, got %v", err)
	}
}

func TestParseDateAcceptsLeapDay(t *testing.T) {
	day, err := ParseDate("2024-02-29")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if day.Month() != time.February || day.Day() != 29 {
		t.Fatalf("unexpected date %s", day)
	}
}

func TestToday(t *testing.T) {
	loc, err := LoadTimezone("Asia/Tokyo")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	now := time.Date(2024, 6, 12, 20, 0, 0, 0, time.UTC)
	if got := Today(now, loc); got != "2024-06-13" {
		t.Fatalf("expected 2024-06-13, got %s", got)
	}
}

func TestRangeContainsIsHalfOpen(t *testing.T) {
	start := time.Date(2024, 6, 12, 0, 0, 0, 0, time.UTC)
	r := Range{Start: start, End: start.Add(24 * time.Hour)}
	if !r.Contains(start) {
		t.Fatalf("expected start to be included")
	}
	if r.Contains(r.End) {
		t.Fatalf("expected end to be excluded")
	}
}
