package tasks

import (
	"encoding/json"
	"time"

	"telecare/config"
	"telecare/models"

	"github.com/hibiken/asynq"
)

const TypeSendReminder = "reminder:send"

// reminderLead is how far before the appointment start the reminder fires.
const reminderLead = time.Hour

// NewReminderTask builds the asynq task for one appointment reminder.
func NewReminderTask(payload models.ReminderPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeSendReminder, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}
	return task, opts, nil
}

// ReminderQueueOpt returns the Redis connection settings for the
// reminder queue.
func ReminderQueueOpt() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	}
}

// ReminderScheduler enqueues appointment reminders. It satisfies the
// booking service's ReminderScheduler contract.
type ReminderScheduler struct {
	client *asynq.Client
}

// NewReminderScheduler creates a scheduler on the reminder queue.
func NewReminderScheduler() *ReminderScheduler {
	return &ReminderScheduler{client: asynq.NewClient(ReminderQueueOpt())}
}

// ScheduleReminder enqueues a reminder an hour before the appointment.
// Appointments starting sooner than the lead get no reminder.
func (s *ReminderScheduler) ScheduleReminder(appt *models.Appointment, providerName string) error {
	startsAt := appt.StartsAt()
	fireAt := startsAt.Add(-reminderLead)
	if startsAt.IsZero() || time.Until(fireAt) <= 0 {
		return nil
	}

	payload := models.ReminderPayload{
		AppointmentID: appt.ID,
		PatientID:     appt.PatientID,
		ProviderName:  providerName,
		Date:          appt.AppointmentDate,
		Time:          appt.AppointmentTime,
	}
	task, opts, err := NewReminderTask(payload, fireAt)
	if err != nil {
		return err
	}
	_, err = s.client.Enqueue(task, opts...)
	return err
}

// Close releases the underlying queue client.
func (s *ReminderScheduler) Close() error {
	return s.client.Close()
}
