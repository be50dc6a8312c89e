package tasks

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/hibiken/asynq"

	"github.com/KennyLightfoot/hmnp-site-sub021/config"
	"github.com/KennyLightfoot/hmnp-site-sub021/models"
)

const TypeReminderSend = "reminder:send"

// ReminderLeadTime is how long before the appointment the reminder fires.
const ReminderLeadTime = 24 * time.Hour

func NewReminderTask(payload models.ReminderPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeReminderSend, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}

	return task, opts, nil
}

// ReminderScheduler enqueues delayed booking reminders on the Redis-backed
// queue the worker in cron/ consumes.
type ReminderScheduler struct {
	client *asynq.Client
}

func NewReminderScheduler() *ReminderScheduler {
	return &ReminderScheduler{
		client: asynq.NewClient(asynq.RedisClientOpt{
			Addr:     config.AppConfig.RedisAddr,
			Password: config.AppConfig.RedisPassword,
			DB:       config.AppConfig.RedisReminderQueueDB,
		}),
	}
}

// ScheduleBookingReminder enqueues a reminder 24h before the appointment.
// Bookings made with less notice than that get no reminder.
func (s *ReminderScheduler) ScheduleBookingReminder(booking models.Booking) error {
	fireAt := booking.ScheduledAt.Add(-ReminderLeadTime)
	if !fireAt.After(time.Now()) {
		return nil
	}

	payload := models.ReminderPayload{
		BookingID: booking.ID,
		FireDate:  fireAt.Format(time.RFC3339),
		Title:     "Upcoming notary appointment",
		Body: fmt.Sprintf("Reminder: your %s appointment is scheduled for %s.",
			booking.ServiceType, booking.ScheduledAt.Format("Mon Jan 2 at 3:04 PM")),
	}
	task, opts, err := NewReminderTask(payload, fireAt)
	if err != nil {
		return err
	}
	_, err = s.client.Enqueue(task, opts...)
	return err
}
