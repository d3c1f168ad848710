package models

// ServiceFee is the price a provider charges for a specific appointment duration.
// At most one active fee per distinct duration is assumed; the scheduling engine
// uses the first active match and does not enforce the uniqueness itself.
type ServiceFee struct {
	ID         string  `bson:"id" json:"id"`
	ProviderID string  `bson:"providerId" json:"providerId"`
	Duration   int     `bson:"duration" json:"duration"` // minutes, positive
	Fee        float64 `bson:"fee" json:"fee"`
	Currency   string  `bson:"currency" json:"currency"`
	IsActive   bool    `bson:"isActive" json:"is_active"`
}

// SetupFeesRequest defines the payload for replacing a provider's fee table.
type SetupFeesRequest struct {
	Fees []ServiceFee `json:"fees" binding:"required"`
}
