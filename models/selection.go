package models

// Selection holds the user's in-progress booking choice. Choices depend on each
// other in the order date -> duration -> time slot: changing an earlier choice
// invalidates the chosen slot, since the slot was derived from it.
type Selection struct {
	SelectedDate     string         `json:"selectedDate"`               // "2006-01-02", empty when unset
	SelectedDuration int            `json:"selectedDuration"`           // minutes, 0 when unset
	SelectedTimeSlot *GeneratedSlot `json:"selectedTimeSlot,omitempty"` // nil when unset
}

// SetDate sets the calendar date and clears the chosen slot. The duration is
// preserved: a user picking a new date likely wants the same duration.
func (s *Selection) SetDate(date string) {
	s.SelectedDate = date
	s.SelectedTimeSlot = nil
}

// SetDuration sets the appointment duration and clears the chosen slot, whose
// length no longer matches. The date is preserved.
func (s *Selection) SetDuration(minutes int) {
	s.SelectedDuration = minutes
	s.SelectedTimeSlot = nil
}

// SetTimeSlot sets only the chosen slot; date and duration are never touched.
// A nil slot clears the choice.
func (s *Selection) SetTimeSlot(slot *GeneratedSlot) {
	s.SelectedTimeSlot = slot
}

// Complete reports whether all three choices have been made.
func (s *Selection) Complete() bool {
	return s.SelectedDate != "" && s.SelectedDuration > 0 && s.SelectedTimeSlot != nil
}
