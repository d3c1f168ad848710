package scheduling

import (
	"testing"
	"time"

	"telecare/models"
)

func window(id string, day int, start, end string) models.AvailabilityWindow {
	return models.AvailabilityWindow{
		ID:         id,
		ProviderID: "prov-1",
		DayOfWeek:  day,
		StartTime:  start,
		EndTime:    end,
		IsActive:   true,
	}
}

func TestGenerateSlotsStrictFit(t *testing.T) {
	w := window("w1", 1, "09:00:00", "10:00:00")

	slots := GenerateSlots(w, 30)
	if len(slots) != 2 {
		t.Fatalf("duration 30 in a 60-minute window: expected 2 slots, got %d", len(slots))
	}
	if slots[0].StartTime != "09:00:00" || slots[0].EndTime != "09:30:00" {
		t.Fatalf("unexpected first slot: %+v", slots[0])
	}
	if slots[1].StartTime != "09:30:00" || slots[1].EndTime != "10:00:00" {
		t.Fatalf("unexpected second slot: %+v", slots[1])
	}

	// The trailing 20 minutes must not produce a partial slot.
	slots = GenerateSlots(w, 40)
	if len(slots) != 1 {
		t.Fatalf("duration 40 in a 60-minute window: expected 1 slot, got %d", len(slots))
	}
	if slots[0].StartTime != "09:00:00" || slots[0].EndTime != "09:40:00" {
		t.Fatalf("unexpected slot: %+v", slots[0])
	}
}

func TestGenerateSlotsIDs(t *testing.T) {
	w := window("w1", 1, "09:00:00", "10:00:00")
	slots := GenerateSlots(w, 30)
	if slots[0].ID != "w1-540" || slots[1].ID != "w1-570" {
		t.Fatalf("slot ids must be {windowId}-{offsetMinutes}, got %q and %q", slots[0].ID, slots[1].ID)
	}
}

func TestGenerateSlotsDurationLongerThanWindow(t *testing.T) {
	w := window("w1", 1, "09:00:00", "10:00:00")
	if slots := GenerateSlots(w, 90); len(slots) != 0 {
		t.Fatalf("expected no slots for oversized duration, got %d", len(slots))
	}
}

func TestSlotsForDateMissingDuration(t *testing.T) {
	monday := time.Date(2026, 2, 2, 0, 0, 0, 0, time.UTC)
	windows := []models.AvailabilityWindow{window("w1", 1, "09:00:00", "11:00:00")}

	if slots := SlotsForDate(monday, windows, 0); len(slots) != 0 {
		t.Fatalf("unset duration must yield no slots, got %d", len(slots))
	}
}

func TestSlotsForDateEndToEnd(t *testing.T) {
	monday := time.Date(2026, 2, 2, 0, 0, 0, 0, time.UTC)
	windows := []models.AvailabilityWindow{window("w1", 1, "09:00:00", "11:00:00")}

	slots := SlotsForDate(monday, windows, 60)
	if len(slots) != 2 {
		t.Fatalf("expected exactly 2 slots, got %d", len(slots))
	}
	if slots[0].StartTime != "09:00:00" || slots[0].EndTime != "10:00:00" {
		t.Fatalf("unexpected first slot: %+v", slots[0])
	}
	if slots[1].StartTime != "10:00:00" || slots[1].EndTime != "11:00:00" {
		t.Fatalf("unexpected second slot: %+v", slots[1])
	}
}

func TestSlotsForDateIdempotent(t *testing.T) {
	monday := time.Date(2026, 2, 2, 0, 0, 0, 0, time.UTC)
	windows := []models.AvailabilityWindow{
		window("w1", 1, "09:00:00", "11:00:00"),
		window("w2", 1, "13:00:00", "14:00:00"),
	}

	first := SlotsForDate(monday, windows, 30)
	second := SlotsForDate(monday, windows, 30)
	if len(first) != len(second) {
		t.Fatalf("lengths differ across identical runs: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("slot %d differs across identical runs: %+v vs %+v", i, first[i], second[i])
		}
	}
}

func TestSlotsForDateConcatenatesWindowsInOrder(t *testing.T) {
	monday := time.Date(2026, 2, 2, 0, 0, 0, 0, time.UTC)
	// Deliberately out of order; WindowsForDate sorts by start time.
	windows := []models.AvailabilityWindow{
		window("afternoon", 1, "13:00:00", "14:00:00"),
		window("morning", 1, "09:00:00", "10:00:00"),
	}

	slots := SlotsForDate(monday, windows, 30)
	if len(slots) != 4 {
		t.Fatalf("expected 4 slots across both windows, got %d", len(slots))
	}
	if slots[0].ID != "morning-540" || slots[2].ID != "afternoon-780" {
		t.Fatalf("windows must contribute in start-time order: %v", slots)
	}
}

func TestSlotsForDateEmptyInputs(t *testing.T) {
	monday := time.Date(2026, 2, 2, 0, 0, 0, 0, time.UTC)
	if slots := SlotsForDate(monday, nil, 30); len(slots) != 0 {
		t.Fatalf("nil windows must yield no slots, got %d", len(slots))
	}
}
