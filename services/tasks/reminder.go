package tasks

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/hibiken/asynq"

	"telecare/config"
	"telecare/models"
)

const TypeSendReminder = "reminder:send"

// NewReminderTask wraps a reminder payload into a delayed asynq task.
func NewReminderTask(payload models.ReminderPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeSendReminder, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}

	return task, opts, nil
}

// AsynqReminderScheduler enqueues appointment reminders on the Redis-backed
// task queue, timed a configurable lead ahead of the appointment start.
type AsynqReminderScheduler struct {
	Client *asynq.Client
}

// NewAsynqReminderScheduler constructs a scheduler from the shared Redis config.
func NewAsynqReminderScheduler() *AsynqReminderScheduler {
	return &AsynqReminderScheduler{
		Client: asynq.NewClient(asynq.RedisClientOpt{
			Addr:     config.AppConfig.RedisAddr,
			Password: config.AppConfig.RedisPassword,
			DB:       config.AppConfig.RedisReminderQueueDB,
		}),
	}
}

func (s *AsynqReminderScheduler) ScheduleAppointmentReminder(ctx context.Context, appt models.Appointment) error {
	loc, err := time.LoadLocation(appt.Timezone)
	if err != nil {
		loc = time.UTC
	}
	start, err := time.ParseInLocation("2006-01-02 15:04:05", appt.Date+" "+appt.StartTime, loc)
	if err != nil {
		return fmt.Errorf("cannot parse appointment start: %w", err)
	}

	lead := time.Duration(config.AppConfig.ReminderLeadMinutes) * time.Minute
	fireAt := start.Add(-lead)
	if fireAt.Before(time.Now()) {
		// Too close to fire a reminder; skip rather than spam immediately.
		return nil
	}

	payload := models.ReminderPayload{
		AppointmentID: appt.ID,
		PatientID:     appt.PatientID,
		ProviderID:    appt.ProviderID,
		Date:          appt.Date,
		StartTime:     appt.StartTime,
		Title:         "Upcoming appointment",
		Body:          fmt.Sprintf("Your appointment starts at %s on %s.", appt.StartTime, appt.Date),
	}

	task, opts, err := NewReminderTask(payload, fireAt)
	if err != nil {
		return err
	}
	if _, err := s.Client.EnqueueContext(ctx, task, opts...); err != nil {
		return fmt.Errorf("failed to enqueue reminder: %w", err)
	}
	return nil
}
