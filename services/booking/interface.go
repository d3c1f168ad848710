package booking

import (
	"context"

	"github.com/go-redis/redis/v8"

	appointmentRepo "telecare/database/repository/appointment"
	providerRepo "telecare/database/repository/provider"
	"telecare/models"
	"telecare/services/scheduling"
)

// BookingSessionService defines the interface for managing a stateful booking
// session. Each selection step re-derives the dependent values (slots, fee) so
// the client always renders from the current (date, duration) pair.
type BookingSessionService interface {
	InitiateSession(ctx context.Context, patientID, providerID string) (*models.SessionSnapshot, error)
	SetDate(ctx context.Context, sessionID, date string) (*models.SessionSnapshot, error)
	SetDuration(ctx context.Context, sessionID string, duration int) (*models.SessionSnapshot, error)
	SetTimeSlot(ctx context.Context, sessionID, slotID string) (*models.SessionSnapshot, error)
	GetSession(ctx context.Context, sessionID string) (*models.SessionSnapshot, error)
	ConfirmBooking(ctx context.Context, sessionID, reason string) (*models.Appointment, error)
	CancelSession(ctx context.Context, sessionID string) error
}

// ReminderScheduler enqueues a delayed reminder for a confirmed appointment.
type ReminderScheduler interface {
	ScheduleAppointmentReminder(ctx context.Context, appt models.Appointment) error
}

// DefaultBookingSessionService implements BookingSessionService.
type DefaultBookingSessionService struct {
	Scheduler       scheduling.SchedulingService
	ProviderRepo    providerRepo.ProviderRepository
	AppointmentRepo appointmentRepo.AppointmentRepository
	Payments        PaymentHandler
	Reminders       ReminderScheduler
	Cache           *redis.Client
}
