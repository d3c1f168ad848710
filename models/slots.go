package models

// GeneratedSlot is a concrete, fixed-duration bookable interval derived by
// subdividing an availability window. Slots are recomputed on every
// (date, duration) change and are never persisted.
type GeneratedSlot struct {
	ID        string `json:"id"`         // "{windowId}-{offsetMinutes}", stable across re-renders
	StartTime string `json:"start_time"` // "HH:MM:SS"
	EndTime   string `json:"end_time"`   // "HH:MM:SS", start + duration
	Duration  int    `json:"duration"`   // minutes
}
