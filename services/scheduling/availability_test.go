package scheduling

import (
	"testing"
	"time"

	"telecare/models"
)

func TestWindowsForDateFiltersAndSorts(t *testing.T) {
	monday := time.Date(2026, 2, 2, 0, 0, 0, 0, time.UTC)
	windows := []models.AvailabilityWindow{
		window("late", 1, "14:00:00", "16:00:00"),
		window("early", 1, "08:00:00", "10:00:00"),
		window("tuesday", 2, "08:00:00", "10:00:00"),
		{ID: "inactive", DayOfWeek: 1, StartTime: "10:00:00", EndTime: "12:00:00", IsActive: false},
	}

	matched := WindowsForDate(monday, windows)
	if len(matched) != 2 {
		t.Fatalf("expected 2 Monday windows, got %d", len(matched))
	}
	if matched[0].ID != "early" || matched[1].ID != "late" {
		t.Fatalf("windows must be ordered by start time: %v", matched)
	}
}

func TestWindowsForDateNoMatch(t *testing.T) {
	sunday := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	windows := []models.AvailabilityWindow{window("w1", 1, "09:00:00", "11:00:00")}

	if matched := WindowsForDate(sunday, windows); len(matched) != 0 {
		t.Fatalf("expected no windows on Sunday, got %d", len(matched))
	}
}

func TestWindowsForDateNilInput(t *testing.T) {
	if matched := WindowsForDate(time.Now(), nil); matched == nil || len(matched) != 0 {
		t.Fatalf("nil input must yield an empty, non-nil list, got %v", matched)
	}
}

func TestSelectableDatesMatchesWeekdays(t *testing.T) {
	// Sunday anchor: the scan covers the following 60 days.
	from := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	windows := []models.AvailabilityWindow{window("w1", 1, "09:00:00", "11:00:00")}

	dates := SelectableDates(from, windows)
	// 60 days after a Sunday contain exactly 9 Mondays (days 1, 8, ..., 57).
	if len(dates) != 9 {
		t.Fatalf("expected 9 Mondays in the horizon, got %d: %v", len(dates), dates)
	}
	if dates[0] != "2026-02-02" {
		t.Fatalf("first selectable date should be the next Monday, got %s", dates[0])
	}
	for _, d := range dates {
		day, err := time.Parse("2006-01-02", d)
		if err != nil {
			t.Fatalf("bad date %q: %v", d, err)
		}
		if day.Weekday() != time.Monday {
			t.Fatalf("date %s is not a Monday", d)
		}
	}
}

func TestSelectableDatesIgnoresInactiveWindows(t *testing.T) {
	from := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	windows := []models.AvailabilityWindow{
		{ID: "w1", DayOfWeek: 1, StartTime: "09:00:00", EndTime: "11:00:00", IsActive: false},
	}

	if dates := SelectableDates(from, windows); len(dates) != 0 {
		t.Fatalf("only inactive windows: expected no selectable dates, got %d", len(dates))
	}
}

func TestSelectableDatesFallback(t *testing.T) {
	from := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)

	dates := SelectableDates(from, nil)
	if len(dates) != fallbackHorizonDays {
		t.Fatalf("no windows at all: expected the %d-day fallback, got %d dates", fallbackHorizonDays, len(dates))
	}
	if dates[0] != "2026-02-02" || dates[len(dates)-1] != "2026-03-03" {
		t.Fatalf("unexpected fallback boundaries: %s .. %s", dates[0], dates[len(dates)-1])
	}
}
