// File: services/booking/session.go
package booking

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"

	"telecare/config"
	"telecare/models"
)

func sessionTTL() time.Duration {
	minutes := config.AppConfig.SessionTTLMinutes
	if minutes <= 0 {
		minutes = 30
	}
	return time.Duration(minutes) * time.Minute
}

// InitiateSession creates a new booking session for a provider, assigns it a
// unique SessionID, and stores it in Redis. The returned snapshot carries the
// selectable dates so the client can render the date picker immediately.
func (s *DefaultBookingSessionService) InitiateSession(ctx context.Context, patientID, providerID string) (*models.SessionSnapshot, error) {
	if _, err := s.ProviderRepo.GetByID(ctx, providerID); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrProviderNotFound
		}
		return nil, fmt.Errorf("failed to load provider: %w", err)
	}

	session := models.BookingSession{
		SessionID:  uuid.New().String(),
		PatientID:  patientID,
		ProviderID: providerID,
		CreatedAt:  time.Now(),
	}

	if err := s.saveSession(ctx, session); err != nil {
		return nil, err
	}
	return s.snapshot(ctx, session)
}

// SetDate sets the calendar date, clearing the chosen slot. The duration is
// preserved across date changes.
func (s *DefaultBookingSessionService) SetDate(ctx context.Context, sessionID, date string) (*models.SessionSnapshot, error) {
	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return nil, fmt.Errorf("%w: got %q", ErrInvalidDate, date)
	}

	session.Selection.SetDate(date)

	if err := s.saveSession(ctx, *session); err != nil {
		return nil, err
	}
	return s.snapshot(ctx, *session)
}

// SetDuration sets the appointment duration, clearing the chosen slot.
func (s *DefaultBookingSessionService) SetDuration(ctx context.Context, sessionID string, duration int) (*models.SessionSnapshot, error) {
	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if duration <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidDuration, duration)
	}

	session.Selection.SetDuration(duration)

	if err := s.saveSession(ctx, *session); err != nil {
		return nil, err
	}
	return s.snapshot(ctx, *session)
}

// SetTimeSlot sets the chosen slot. The slot must be one produced by the
// session's current (date, duration) pair; an empty slotID clears the choice.
func (s *DefaultBookingSessionService) SetTimeSlot(ctx context.Context, sessionID, slotID string) (*models.SessionSnapshot, error) {
	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if slotID == "" {
		session.Selection.SetTimeSlot(nil)
	} else {
		slot, err := s.findGeneratedSlot(ctx, *session, slotID)
		if err != nil {
			return nil, err
		}
		session.Selection.SetTimeSlot(slot)
	}

	if err := s.saveSession(ctx, *session); err != nil {
		return nil, err
	}
	return s.snapshot(ctx, *session)
}

// GetSession returns the current snapshot without mutating the session.
func (s *DefaultBookingSessionService) GetSession(ctx context.Context, sessionID string) (*models.SessionSnapshot, error) {
	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return s.snapshot(ctx, *session)
}

// CancelSession allows the client to explicitly cancel a booking session.
func (s *DefaultBookingSessionService) CancelSession(ctx context.Context, sessionID string) error {
	if err := s.Cache.Del(ctx, sessionKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("failed to cancel booking session: %w", err)
	}
	return nil
}

// findGeneratedSlot regenerates the candidate list for the session's current
// (date, duration) pair and picks the slot by id. This is what keeps a stale
// slot from surviving a date or duration change.
func (s *DefaultBookingSessionService) findGeneratedSlot(ctx context.Context, session models.BookingSession, slotID string) (*models.GeneratedSlot, error) {
	if session.Selection.SelectedDate == "" || session.Selection.SelectedDuration <= 0 {
		return nil, ErrSlotNotAvailable
	}
	slots, err := s.Scheduler.GetSlotsForDate(ctx, session.ProviderID, session.Selection.SelectedDate, session.Selection.SelectedDuration)
	if err != nil {
		return nil, fmt.Errorf("failed to compute slots: %w", err)
	}
	for i := range slots {
		if slots[i].ID == slotID {
			return &slots[i], nil
		}
	}
	return nil, ErrSlotNotAvailable
}

// snapshot derives everything the client renders from the stored session.
func (s *DefaultBookingSessionService) snapshot(ctx context.Context, session models.BookingSession) (*models.SessionSnapshot, error) {
	dates, err := s.Scheduler.GetSelectableDates(ctx, session.ProviderID)
	if err != nil {
		return nil, fmt.Errorf("failed to compute selectable dates: %w", err)
	}

	slots := []models.GeneratedSlot{}
	if session.Selection.SelectedDate != "" && session.Selection.SelectedDuration > 0 {
		slots, err = s.Scheduler.GetSlotsForDate(ctx, session.ProviderID, session.Selection.SelectedDate, session.Selection.SelectedDuration)
		if err != nil {
			return nil, fmt.Errorf("failed to compute slots: %w", err)
		}
	}

	var fee *models.ServiceFee
	if session.Selection.SelectedDuration > 0 {
		fee, err = s.Scheduler.GetFeeForDuration(ctx, session.ProviderID, session.Selection.SelectedDuration)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve fee: %w", err)
		}
	}

	return &models.SessionSnapshot{
		SessionID:       session.SessionID,
		ProviderID:      session.ProviderID,
		Selection:       session.Selection,
		SelectableDates: dates,
		Slots:           slots,
		Fee:             fee,
	}, nil
}

func sessionKey(sessionID string) string {
	return "booking:session:" + sessionID
}

func (s *DefaultBookingSessionService) loadSession(ctx context.Context, sessionID string) (*models.BookingSession, error) {
	data, err := s.Cache.Get(ctx, sessionKey(sessionID)).Result()
	if err == redis.Nil {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load booking session: %w", err)
	}
	var session models.BookingSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("failed to parse booking session: %w", err)
	}
	return &session, nil
}

func (s *DefaultBookingSessionService) saveSession(ctx context.Context, session models.BookingSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal booking session: %w", err)
	}
	if err := s.Cache.Set(ctx, sessionKey(session.SessionID), data, sessionTTL()).Err(); err != nil {
		return fmt.Errorf("failed to store booking session: %w", err)
	}
	return nil
}
