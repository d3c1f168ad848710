package models

// AvailabilityWindow is a provider's recurring weekly block of bookable time.
// Times are naive local time-of-day strings in the provider's declared timezone.
type AvailabilityWindow struct {
	ID         string `bson:"id" json:"id"`
	ProviderID string `bson:"providerId" json:"providerId"`
	DayOfWeek  int    `bson:"dayOfWeek" json:"day_of_week"`   // 0 = Sunday .. 6 = Saturday
	StartTime  string `bson:"startTime" json:"start_time"`    // "HH:MM:SS", start < end
	EndTime    string `bson:"endTime" json:"end_time"`        // "HH:MM:SS"
	IsActive   bool   `bson:"isActive" json:"is_active"`
}

// SetupAvailabilityRequest defines the payload for replacing a provider's
// weekly availability windows.
type SetupAvailabilityRequest struct {
	Windows []AvailabilityWindow `json:"windows" binding:"required"`
}
