package models

// ReminderPayload is the task payload for a scheduled appointment reminder.
type ReminderPayload struct {
	AppointmentID string `json:"appointmentId"`
	PatientID     string `json:"patientId"`
	ProviderID    string `json:"providerId"`
	Date          string `json:"date"`
	StartTime     string `json:"startTime"`
	Title         string `json:"title"`
	Body          string `json:"body"`
}
