package models

import (
	"medbook-service/internal/pkg/constvars"
	"medbook-service/internal/pkg/dto/responses"
	"medbook-service/internal/pkg/utils"
	"time"
)

type Appointment struct {
	ID               string
	DoctorServiceID  string
	DoctorID         string
	PatientProfileID string
	BookedBy         string
	AppointmentDate  time.Time
	StartTime        string
	DurationMinutes  int
	Status           string
	PaymentStatus    string
	Price            int64
	Note             string
	CreatedAt        time.Time
	UpdatedAt        time.Time

	// Read-side joins.
	DoctorName     string
	ServiceName    string
	ClinicName     string
	PatientName    string
	PatientOwnerID string
}

var appointmentTransitions = map[string][]string{
	constvars.AppointmentStatusUpcoming:  {constvars.AppointmentStatusOngoing, constvars.AppointmentStatusCancelled},
	constvars.AppointmentStatusOngoing:   {constvars.AppointmentStatusCompleted, constvars.AppointmentStatusCancelled},
	constvars.AppointmentStatusCompleted: {},
	constvars.AppointmentStatusCancelled: {},
}

func (a *Appointment) CanTransitionTo(newStatus string) bool {
	for _, s := range appointmentTransitions[a.Status] {
		if s == newStatus {
			return true
		}
	}
	return false
}

// EndTime is StartTime plus the service duration, formatted "HH:MM".
// A start time that cannot be parsed yields an empty string.
func (a *Appointment) EndTime() string {
	start, err := utils.ParseClock(a.StartTime)
	if err != nil {
		return ""
	}
	return utils.FormatClock(start + a.DurationMinutes)
}

func (a *Appointment) ConvertIntoResponse() responses.Appointment {
	return responses.Appointment{
		ID:               a.ID,
		DoctorServiceID:  a.DoctorServiceID,
		DoctorID:         a.DoctorID,
		DoctorName:       a.DoctorName,
		ServiceName:      a.ServiceName,
		ClinicName:       a.ClinicName,
		PatientProfileID: a.PatientProfileID,
		PatientName:      a.PatientName,
		Date:             utils.FormatDate(a.AppointmentDate),
		StartTime:        a.StartTime,
		EndTime:          a.EndTime(),
		DurationMinutes:  a.DurationMinutes,
		Status:           a.Status,
		PaymentStatus:    a.PaymentStatus,
		Price:            a.Price,
		Note:             a.Note,
		CreatedAt:        a.CreatedAt,
		UpdatedAt:        a.UpdatedAt,
	}
}

// BookedSlot is the occupied part of an appointment as seen by the
// availability check.
type BookedSlot struct {
	AppointmentID   string
	StartTime       string
	DurationMinutes int
	Status          string
}

type AppointmentFilter struct {
	Status           string
	PaymentStatus    string
	DoctorID         string
	PatientProfileID string
	OwnerUserID      string
	DateFrom         *time.Time
	DateTo           *time.Time
	Limit            int
	Offset           int
}

// AppointmentPatch holds the columns an update writes; nil means untouched.
type AppointmentPatch struct {
	Status        *string
	PaymentStatus *string
	Note          *string
}

func (p AppointmentPatch) IsEmpty() bool {
	return p.Status == nil && p.PaymentStatus == nil && p.Note == nil
}
