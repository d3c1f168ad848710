// File: services/booking/confirm.go
package booking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"telecare/config"
	"telecare/models"
	"telecare/utils"
)

// ConfirmBooking finalizes a session into an Appointment. It requires the full
// selection chain (date, duration, slot) plus a non-empty reason, revalidates
// the chosen slot against a freshly generated candidate list, resolves the
// active fee, creates a payment intent, persists the appointment, and
// schedules a reminder before clearing the session.
func (s *DefaultBookingSessionService) ConfirmBooking(ctx context.Context, sessionID, reason string) (*models.Appointment, error) {
	logger := utils.GetLogger()

	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(reason) == "" {
		return nil, ErrReasonRequired
	}
	if !session.Selection.Complete() {
		return nil, ErrSelectionIncomplete
	}

	// The stored slot may predate a schedule edit; only a slot the current
	// (date, duration) pair still produces is bookable.
	slot, err := s.findGeneratedSlot(ctx, *session, session.Selection.SelectedTimeSlot.ID)
	if err != nil {
		return nil, err
	}

	fee, err := s.Scheduler.GetFeeForDuration(ctx, session.ProviderID, session.Selection.SelectedDuration)
	if err != nil {
		return nil, err
	}
	if fee == nil {
		return nil, ErrFeeUnavailable
	}

	provider, err := s.ProviderRepo.GetByID(ctx, session.ProviderID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrProviderNotFound
		}
		return nil, fmt.Errorf("failed to load provider: %w", err)
	}
	timezone := provider.Timezone
	if timezone == "" {
		timezone = config.AppConfig.DefaultTimezone
	}

	appt := models.Appointment{
		ID:         uuid.New().String(),
		PatientID:  session.PatientID,
		ProviderID: session.ProviderID,
		Date:       session.Selection.SelectedDate,
		StartTime:  slot.StartTime,
		EndTime:    slot.EndTime,
		Duration:   slot.Duration,
		Reason:     strings.TrimSpace(reason),
		Fee:        fee.Fee,
		Currency:   fee.Currency,
		Timezone:   timezone,
		Status:     "confirmed",
		CreatedAt:  time.Now(),
	}

	intentID, err := s.Payments.CreatePaymentIntent(ctx, appt)
	if err != nil {
		return nil, fmt.Errorf("failed to create payment intent: %w", err)
	}
	appt.PaymentIntentID = intentID

	if err := s.AppointmentRepo.Create(ctx, appt); err != nil {
		return nil, fmt.Errorf("failed to persist appointment: %w", err)
	}

	if err := s.Reminders.ScheduleAppointmentReminder(ctx, appt); err != nil {
		// The booking stands even if the reminder could not be queued.
		logger.Error("failed to schedule appointment reminder",
			zap.String("appointmentID", appt.ID), zap.Error(err))
	}

	s.Cache.Del(ctx, sessionKey(sessionID))

	logger.Info("appointment confirmed",
		zap.String("appointmentID", appt.ID),
		zap.String("providerID", appt.ProviderID),
		zap.String("date", appt.Date),
		zap.String("start", appt.StartTime))

	return &appt, nil
}
