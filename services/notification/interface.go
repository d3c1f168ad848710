package notification

import (
	"context"

	"go.uber.org/zap"

	"telecare/models"
)

// NotificationService delivers appointment reminders to patients.
type NotificationService interface {
	SendAppointmentReminder(ctx context.Context, payload models.ReminderPayload) error
}

// LogNotificationService records reminders to the application log. It stands
// in until a push/SMS delivery channel is wired up.
type LogNotificationService struct {
	Logger *zap.Logger
}

func (s *LogNotificationService) SendAppointmentReminder(ctx context.Context, payload models.ReminderPayload) error {
	s.Logger.Info("appointment reminder",
		zap.String("appointmentID", payload.AppointmentID),
		zap.String("patientID", payload.PatientID),
		zap.String("date", payload.Date),
		zap.String("start", payload.StartTime),
		zap.String("body", payload.Body))
	return nil
}
