package cron

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	appointmentRepo "telecare/database/repository/appointment"
	"telecare/models"
	"telecare/services/notification"
	"telecare/services/tasks"

	"github.com/hibiken/asynq"
)

// InitReminderWorker runs the asynq reminder worker in the background.
func InitReminderWorker(notifSvc notification.NotificationService, apptRepo appointmentRepo.AppointmentRepository) {
	srv := asynq.NewServer(
		tasks.ReminderQueueOpt(),
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeSendReminder, handleReminderTask(notifSvc, apptRepo))

	go func() {
		log.Println("[ReminderWorker] starting async worker...")
		if err := srv.Run(mux); err != nil {
			log.Printf("[ReminderWorker] worker stopped: %v", err)
		}
	}()
}

// handleReminderTask delivers one scheduled reminder. The appointment is
// re-read first so reminders for cancelled or completed appointments are
// silently dropped.
func handleReminderTask(notifSvc notification.NotificationService, apptRepo appointmentRepo.AppointmentRepository) asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		var payload models.ReminderPayload
		if err := json.Unmarshal(t.Payload(), &payload); err != nil {
			return fmt.Errorf("failed to decode reminder payload: %w", err)
		}

		appt, err := apptRepo.GetByID(payload.AppointmentID)
		if err != nil {
			// Record gone; nothing to remind about.
			return nil
		}
		if appt.Status != models.StatusUpcoming {
			return nil
		}

		msg := fmt.Sprintf("Your appointment with %s is coming up on %s at %s.",
			payload.ProviderName, payload.Date, payload.Time)
		return notifSvc.Notify(ctx, payload.PatientID, models.RolePatient,
			models.NotificationReminder, "Upcoming appointment", msg)
	}
}
