package models

import "time"

// BookingSession is the server-held state of one in-progress booking flow.
// Sessions live in Redis with a TTL and are discarded on confirm or cancel.
type BookingSession struct {
	SessionID  string    `json:"sessionId"`
	PatientID  string    `json:"patientId"`
	ProviderID string    `json:"providerId"`
	Selection  Selection `json:"selection"`
	CreatedAt  time.Time `json:"createdAt"`
}

// SessionSnapshot is what the client renders after each selection step: the
// current selection plus everything derived from it.
type SessionSnapshot struct {
	SessionID       string          `json:"sessionId"`
	ProviderID      string          `json:"providerId"`
	Selection       Selection       `json:"selection"`
	SelectableDates []string        `json:"selectableDates"`
	Slots           []GeneratedSlot `json:"slots"`
	Fee             *ServiceFee     `json:"fee,omitempty"` // nil means no active fee for the duration
}

// Appointment is a confirmed booking.
type Appointment struct {
	ID              string    `bson:"id" json:"id"`
	PatientID       string    `bson:"patientId" json:"patientId"`
	ProviderID      string    `bson:"providerId" json:"providerId"`
	Date            string    `bson:"date" json:"date"` // "2006-01-02"
	StartTime       string    `bson:"startTime" json:"start_time"`
	EndTime         string    `bson:"endTime" json:"end_time"`
	Duration        int       `bson:"duration" json:"duration"`
	Reason          string    `bson:"reason" json:"reason"`
	Fee             float64   `bson:"fee" json:"fee"`
	Currency        string    `bson:"currency" json:"currency"`
	Timezone        string    `bson:"timezone" json:"timezone"`
	Status          string    `bson:"status" json:"status"` // "confirmed", "cancelled"
	PaymentIntentID string    `bson:"paymentIntentId,omitempty" json:"paymentIntentId,omitempty"`
	CreatedAt       time.Time `bson:"createdAt" json:"createdAt"`
}

// ConfirmBookingRequest is the payload for finalizing a session.
type ConfirmBookingRequest struct {
	Reason string `json:"reason" binding:"required"`
}
