package models

import "time"

// Provider is a healthcare provider whose schedule can be booked.
type Provider struct {
	ID        string    `bson:"id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Specialty string    `bson:"specialty" json:"specialty"`
	Timezone  string    `bson:"timezone" json:"timezone"` // IANA name; empty falls back to the configured default
	Currency  string    `bson:"currency" json:"currency"`
	Status    string    `bson:"status" json:"status"` // "active", "inactive"
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// UpsertProviderRequest is the payload for creating or updating a provider
// profile. An omitted status defaults to active.
type UpsertProviderRequest struct {
	Name      string `json:"name" binding:"required"`
	Specialty string `json:"specialty"`
	Timezone  string `json:"timezone"`
	Currency  string `json:"currency"`
	Status    string `json:"status"`
}
