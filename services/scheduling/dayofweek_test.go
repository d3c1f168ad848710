package scheduling

import (
	"testing"
	"time"
)

func TestConvertToDayOfWeekBijection(t *testing.T) {
	seen := map[int]bool{}
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		day := ConvertToDayOfWeek(wd)
		if day < 0 || day > 6 {
			t.Fatalf("ConvertToDayOfWeek(%v) = %d, out of range", wd, day)
		}
		if seen[day] {
			t.Fatalf("ConvertToDayOfWeek(%v) = %d collides with an earlier weekday", wd, day)
		}
		seen[day] = true

		if got := WeekdayFromDayOfWeek(day); got != wd {
			t.Fatalf("WeekdayFromDayOfWeek(%d) = %v, want %v", day, got, wd)
		}
	}
	if len(seen) != 7 {
		t.Fatalf("expected 7 distinct outputs, got %d", len(seen))
	}
}

func TestConvertToDayOfWeekKnownDates(t *testing.T) {
	// 2026-02-01 is a Sunday, 2026-02-02 a Monday.
	sunday := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	monday := time.Date(2026, 2, 2, 0, 0, 0, 0, time.UTC)

	if got := ConvertToDayOfWeek(sunday.Weekday()); got != 0 {
		t.Fatalf("Sunday should map to 0, got %d", got)
	}
	if got := ConvertToDayOfWeek(monday.Weekday()); got != 1 {
		t.Fatalf("Monday should map to 1, got %d", got)
	}
}
