package contracts

import (
	"context"
	"medbook-service/internal/app/models"
	"medbook-service/internal/pkg/dto/requests"
	"medbook-service/internal/pkg/dto/responses"
	"time"
)

type AppointmentRepository interface {
	FindAll(ctx context.Context, filter models.AppointmentFilter) ([]models.Appointment, error)
	Count(ctx context.Context, filter models.AppointmentFilter) (int, error)
	FindByID(ctx context.Context, appointmentID string) (*models.Appointment, error)
	FindBookedSlots(ctx context.Context, doctorID string, date time.Time) ([]models.BookedSlot, error)
	CountByPatientProfileID(ctx context.Context, profileID string) (int, error)
	Create(ctx context.Context, appointment *models.Appointment) error
	CreateWithPatientProfile(ctx context.Context, profile *models.PatientProfile, appointment *models.Appointment) error
	Update(ctx context.Context, appointmentID string, patch models.AppointmentPatch) error
	Delete(ctx context.Context, appointmentID string) error
}

type AppointmentUsecase interface {
	FindAll(ctx context.Context, session *models.Session, request *requests.FindAllAppointments) (*responses.FindAllAppointments, error)
	FindByID(ctx context.Context, session *models.Session, appointmentID string) (*responses.Appointment, error)
	Update(ctx context.Context, session *models.Session, appointmentID string, request *requests.UpdateAppointment) (*responses.Appointment, error)
	Delete(ctx context.Context, session *models.Session, appointmentID string) error
	Cancel(ctx context.Context, session *models.Session, appointmentID string) (*responses.Appointment, error)
	Complete(ctx context.Context, session *models.Session, appointmentID string) (*responses.Appointment, error)
	GetDoctorAvailability(ctx context.Context, request *requests.DoctorAvailability) (*responses.DoctorAvailability, error)
	CreateBooking(ctx context.Context, session *models.Session, request *requests.CreateAppointment) (*responses.Appointment, error)
}
