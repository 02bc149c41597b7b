package models

import "time"

type NotificationEvent struct {
	Event         string    `json:"event"`
	AppointmentID string    `json:"appointment_id"`
	UserID        string    `json:"user_id"`
	DoctorID      string    `json:"doctor_id"`
	PatientName   string    `json:"patient_name,omitempty"`
	Date          string    `json:"date"`
	StartTime     string    `json:"start_time"`
	Status        string    `json:"status"`
	OccurredAt    time.Time `json:"occurred_at"`
}
