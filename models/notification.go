package models

import "time"

// NotificationType classifies an in-app notification.
type NotificationType string

const (
	NotificationAppointment NotificationType = "appointment"
	NotificationReminder    NotificationType = "reminder"
	NotificationUpdate      NotificationType = "update"
)

// Notification is a durable in-app notification shown to one actor.
type Notification struct {
	ID        string           `bson:"id" json:"id"`
	UserID    string           `bson:"user_id" json:"user_id"`
	Role      ActorRole        `bson:"role" json:"role"`
	Title     string           `bson:"title" json:"title"`
	Message   string           `bson:"message" json:"message"`
	Type      NotificationType `bson:"notification_type" json:"notification_type"`
	IsRead    bool             `bson:"is_read" json:"is_read"`
	CreatedAt time.Time        `bson:"created_at" json:"created_at"`
}

// ReminderPayload is the asynq task payload for an appointment reminder.
type ReminderPayload struct {
	AppointmentID string `json:"appointmentId"`
	PatientID     string `json:"patientId"`
	ProviderName  string `json:"providerName"`
	Date          string `json:"date"`
	Time          string `json:"time"`
}
