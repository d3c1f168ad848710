package scheduling

import "time"

// ConvertToDayOfWeek maps Go's calendar weekday onto the stored day_of_week
// convention (0 = Sunday .. 6 = Saturday). The two systems happen to agree
// today, but provider schedules are imported from systems that may not, so
// every date-to-schedule lookup goes through this single total bijection.
func ConvertToDayOfWeek(wd time.Weekday) int {
	return int(wd) % 7
}

// WeekdayFromDayOfWeek is the inverse of ConvertToDayOfWeek.
func WeekdayFromDayOfWeek(day int) time.Weekday {
	return time.Weekday(((day % 7) + 7) % 7)
}
