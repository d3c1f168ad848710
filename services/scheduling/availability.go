package scheduling

import (
	"sort"
	"time"

	"telecare/models"
)

const (
	// selectableHorizonDays bounds the date-picker scan.
	selectableHorizonDays = 60
	// fallbackHorizonDays is offered when a provider has no windows at all, so
	// the picker is never completely empty.
	fallbackHorizonDays = 30

	dateLayout = "2006-01-02"
)

// WindowsForDate returns the subset of a provider's recurring weekly windows
// applicable to the given calendar date, ordered ascending by start time.
// No match yields an empty list, not an error.
func WindowsForDate(date time.Time, windows []models.AvailabilityWindow) []models.AvailabilityWindow {
	matched := []models.AvailabilityWindow{}
	if len(windows) == 0 {
		return matched
	}

	day := ConvertToDayOfWeek(date.Weekday())
	for _, w := range windows {
		if w.DayOfWeek == day && w.IsActive {
			matched = append(matched, w)
		}
	}

	// Fixed-width HH:MM:SS makes the lexicographic compare a time compare.
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].StartTime < matched[j].StartTime
	})
	return matched
}

// SelectableDates computes which future calendar dates have at least one
// active window, scanning selectableHorizonDays ahead of from. A provider with
// no windows at all gets every date in the shorter fallback horizon instead;
// no slot will be generable from those until real windows exist.
func SelectableDates(from time.Time, windows []models.AvailabilityWindow) []string {
	if len(windows) == 0 {
		dates := make([]string, 0, fallbackHorizonDays)
		for i := 1; i <= fallbackHorizonDays; i++ {
			dates = append(dates, from.AddDate(0, 0, i).Format(dateLayout))
		}
		return dates
	}

	activeDays := map[int]bool{}
	for _, w := range windows {
		if w.IsActive {
			activeDays[w.DayOfWeek] = true
		}
	}

	dates := []string{}
	for i := 1; i <= selectableHorizonDays; i++ {
		d := from.AddDate(0, 0, i)
		if activeDays[ConvertToDayOfWeek(d.Weekday())] {
			dates = append(dates, d.Format(dateLayout))
		}
	}
	return dates
}
