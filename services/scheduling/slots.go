package scheduling

import (
	"fmt"
	"time"

	"telecare/models"
)

// minutesOfDay converts an "HH:MM:SS" local time-of-day string to minutes from
// midnight. Seconds are always ":00" in stored windows and are ignored.
func minutesOfDay(t string) (int, bool) {
	var h, m, s int
	if _, err := fmt.Sscanf(t, "%d:%d:%d", &h, &m, &s); err != nil {
		return 0, false
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, false
	}
	return h*60 + m, true
}

// ValidTimeOfDay reports whether t is a well-formed, fixed-width "HH:MM:SS"
// time-of-day string. Fixed width is what keeps lexicographic ordering correct.
func ValidTimeOfDay(t string) bool {
	_, ok := minutesOfDay(t)
	return ok && len(t) == 8
}

// formatMinutes converts minutes from midnight back to a zero-padded
// "HH:MM:SS" string with seconds fixed at ":00".
func formatMinutes(m int) string {
	return fmt.Sprintf("%02d:%02d:00", m/60, m%60)
}

// GenerateSlots expands one availability window into fixed-length slots of the
// requested duration. The fit rule is strict: a window that cannot hold one
// more full-length slot contributes no partial slot. Slot IDs are
// "{windowId}-{offsetMinutes}", unique within a window and stable for the same
// inputs.
func GenerateSlots(window models.AvailabilityWindow, duration int) []models.GeneratedSlot {
	if duration <= 0 {
		return nil
	}
	start, ok := minutesOfDay(window.StartTime)
	if !ok {
		return nil
	}
	end, ok := minutesOfDay(window.EndTime)
	if !ok || end <= start {
		return nil
	}

	var slots []models.GeneratedSlot
	for offset := start; offset+duration <= end; offset += duration {
		slots = append(slots, models.GeneratedSlot{
			ID:        fmt.Sprintf("%s-%d", window.ID, offset),
			StartTime: formatMinutes(offset),
			EndTime:   formatMinutes(offset + duration),
			Duration:  duration,
		})
	}
	return slots
}

// SlotsForDate produces the full candidate slot list for a (date, duration)
// pair: each window matching the date contributes its generated slots, in
// window order. Windows are not merged or overlap-resolved; overlapping
// provider-entered windows both contribute independently. An unset duration
// yields an empty list, never "all slots".
func SlotsForDate(date time.Time, windows []models.AvailabilityWindow, duration int) []models.GeneratedSlot {
	slots := []models.GeneratedSlot{}
	if duration <= 0 || len(windows) == 0 {
		return slots
	}
	for _, w := range WindowsForDate(date, windows) {
		slots = append(slots, GenerateSlots(w, duration)...)
	}
	return slots
}
