package models

import "testing"

func TestSetDateClearsSlotKeepsDuration(t *testing.T) {
	s := Selection{
		SelectedDate:     "2026-02-02",
		SelectedDuration: 30,
		SelectedTimeSlot: &GeneratedSlot{ID: "w1-540", StartTime: "09:00:00", EndTime: "09:30:00", Duration: 30},
	}

	s.SetDate("2026-02-09")

	if s.SelectedDate != "2026-02-09" {
		t.Fatalf("date not updated: %s", s.SelectedDate)
	}
	if s.SelectedTimeSlot != nil {
		t.Fatalf("slot must be cleared on date change")
	}
	if s.SelectedDuration != 30 {
		t.Fatalf("duration must be preserved on date change, got %d", s.SelectedDuration)
	}
}

func TestSetDurationClearsSlotKeepsDate(t *testing.T) {
	s := Selection{
		SelectedDate:     "2026-02-02",
		SelectedDuration: 30,
		SelectedTimeSlot: &GeneratedSlot{ID: "w1-540"},
	}

	s.SetDuration(60)

	if s.SelectedDuration != 60 {
		t.Fatalf("duration not updated: %d", s.SelectedDuration)
	}
	if s.SelectedTimeSlot != nil {
		t.Fatalf("slot must be cleared on duration change")
	}
	if s.SelectedDate != "2026-02-02" {
		t.Fatalf("date must be preserved on duration change, got %s", s.SelectedDate)
	}
}

func TestSetTimeSlotTouchesOnlySlot(t *testing.T) {
	s := Selection{SelectedDate: "2026-02-02", SelectedDuration: 30}

	slot := &GeneratedSlot{ID: "w1-540", StartTime: "09:00:00", EndTime: "09:30:00", Duration: 30}
	s.SetTimeSlot(slot)

	if s.SelectedTimeSlot != slot {
		t.Fatalf("slot not set")
	}
	if s.SelectedDate != "2026-02-02" || s.SelectedDuration != 30 {
		t.Fatalf("SetTimeSlot must never mutate date or duration")
	}

	s.SetTimeSlot(nil)
	if s.SelectedTimeSlot != nil {
		t.Fatalf("nil must clear the slot")
	}
}

func TestComplete(t *testing.T) {
	var s Selection
	if s.Complete() {
		t.Fatalf("empty selection must not be complete")
	}
	s.SetDate("2026-02-02")
	s.SetDuration(30)
	if s.Complete() {
		t.Fatalf("selection without a slot must not be complete")
	}
	s.SetTimeSlot(&GeneratedSlot{ID: "w1-540"})
	if !s.Complete() {
		t.Fatalf("full selection must be complete")
	}
}
