package booking

import "errors"

var (
	// ErrSessionNotFound is returned when a booking session is missing or expired.
	ErrSessionNotFound = errors.New("booking session not found or expired")
	// ErrProviderNotFound is returned when the session targets an unknown provider.
	ErrProviderNotFound = errors.New("provider not found")
	// ErrInvalidDate is returned when a selection date is not a calendar date.
	ErrInvalidDate = errors.New("date must be formatted YYYY-MM-DD")
	// ErrInvalidDuration is returned for a zero or negative duration.
	ErrInvalidDuration = errors.New("duration must be a positive number of minutes")
	// ErrSlotNotAvailable is returned when the chosen slot was not produced by
	// the session's current (date, duration) pair.
	ErrSlotNotAvailable = errors.New("selected time slot is not available for the chosen date and duration")
	// ErrSelectionIncomplete is returned on confirm before date, duration and
	// slot have all been chosen.
	ErrSelectionIncomplete = errors.New("booking selection is incomplete")
	// ErrReasonRequired is returned on confirm with an empty reason.
	ErrReasonRequired = errors.New("a reason for the appointment is required")
	// ErrFeeUnavailable is returned on confirm when no active fee exists for
	// the selected duration.
	ErrFeeUnavailable = errors.New("no active fee for the selected duration")
)
