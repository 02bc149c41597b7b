package appointments

import (
	"context"
	"medbook-service/internal/app/models"
	"time"

	"github.com/stretchr/testify/mock"
)

type MockAppointmentRepository struct {
	mock.Mock
}

func (m *MockAppointmentRepository) FindAll(ctx context.Context, filter models.AppointmentFilter) ([]models.Appointment, error) {
	args := m.Called(ctx, filter)
	appointments, _ := args.Get(0).([]models.Appointment)
	return appointments, args.Error(1)
}

func (m *MockAppointmentRepository) Count(ctx context.Context, filter models.AppointmentFilter) (int, error) {
	args := m.Called(ctx, filter)
	return args.Int(0), args.Error(1)
}

func (m *MockAppointmentRepository) FindByID(ctx context.Context, appointmentID string) (*models.Appointment, error) {
	args := m.Called(ctx, appointmentID)
	appointment, _ := args.Get(0).(*models.Appointment)
	return appointment, args.Error(1)
}

func (m *MockAppointmentRepository) FindBookedSlots(ctx context.Context, doctorID string, date time.Time) ([]models.BookedSlot, error) {
	args := m.Called(ctx, doctorID, date)
	slots, _ := args.Get(0).([]models.BookedSlot)
	return slots, args.Error(1)
}

func (m *MockAppointmentRepository) CountByPatientProfileID(ctx context.Context, profileID string) (int, error) {
	args := m.Called(ctx, profileID)
	return args.Int(0), args.Error(1)
}

func (m *MockAppointmentRepository) Create(ctx context.Context, appointment *models.Appointment) error {
	return m.Called(ctx, appointment).Error(0)
}

func (m *MockAppointmentRepository) CreateWithPatientProfile(ctx context.Context, profile *models.PatientProfile, appointment *models.Appointment) error {
	return m.Called(ctx, profile, appointment).Error(0)
}

func (m *MockAppointmentRepository) Update(ctx context.Context, appointmentID string, patch models.AppointmentPatch) error {
	return m.Called(ctx, appointmentID, patch).Error(0)
}

func (m *MockAppointmentRepository) Delete(ctx context.Context, appointmentID string) error {
	return m.Called(ctx, appointmentID).Error(0)
}

type MockCatalogRepository struct {
	mock.Mock
}

func (m *MockCatalogRepository) FindAllClinics(ctx context.Context) ([]models.Clinic, error) {
	args := m.Called(ctx)
	clinics, _ := args.Get(0).([]models.Clinic)
	return clinics, args.Error(1)
}

func (m *MockCatalogRepository) FindAllDoctors(ctx context.Context, clinicID string) ([]models.Doctor, error) {
	args := m.Called(ctx, clinicID)
	doctors, _ := args.Get(0).([]models.Doctor)
	return doctors, args.Error(1)
}

func (m *MockCatalogRepository) FindDoctorByID(ctx context.Context, doctorID string) (*models.Doctor, error) {
	args := m.Called(ctx, doctorID)
	doctor, _ := args.Get(0).(*models.Doctor)
	return doctor, args.Error(1)
}

func (m *MockCatalogRepository) FindAllServices(ctx context.Context) ([]models.Service, error) {
	args := m.Called(ctx)
	services, _ := args.Get(0).([]models.Service)
	return services, args.Error(1)
}

func (m *MockCatalogRepository) FindDoctorServiceByID(ctx context.Context, doctorServiceID string) (*models.DoctorService, error) {
	args := m.Called(ctx, doctorServiceID)
	doctorService, _ := args.Get(0).(*models.DoctorService)
	return doctorService, args.Error(1)
}

func (m *MockCatalogRepository) FindDoctorServicesByDoctorID(ctx context.Context, doctorID string) ([]models.DoctorService, error) {
	args := m.Called(ctx, doctorID)
	doctorServices, _ := args.Get(0).([]models.DoctorService)
	return doctorServices, args.Error(1)
}

func (m *MockCatalogRepository) FindWorkingHoursByDoctorServiceID(ctx context.Context, doctorServiceID string) ([]models.WorkingHour, error) {
	args := m.Called(ctx, doctorServiceID)
	hours, _ := args.Get(0).([]models.WorkingHour)
	return hours, args.Error(1)
}

type MockPatientProfileRepository struct {
	mock.Mock
}

func (m *MockPatientProfileRepository) FindAllByUserID(ctx context.Context, userID string) ([]models.PatientProfile, error) {
	args := m.Called(ctx, userID)
	profiles, _ := args.Get(0).([]models.PatientProfile)
	return profiles, args.Error(1)
}

func (m *MockPatientProfileRepository) FindByID(ctx context.Context, profileID string) (*models.PatientProfile, error) {
	args := m.Called(ctx, profileID)
	profile, _ := args.Get(0).(*models.PatientProfile)
	return profile, args.Error(1)
}

func (m *MockPatientProfileRepository) Create(ctx context.Context, profile *models.PatientProfile) error {
	return m.Called(ctx, profile).Error(0)
}

func (m *MockPatientProfileRepository) Update(ctx context.Context, profile *models.PatientProfile) error {
	return m.Called(ctx, profile).Error(0)
}

func (m *MockPatientProfileRepository) Delete(ctx context.Context, profileID string) error {
	return m.Called(ctx, profileID).Error(0)
}

type MockLockerService struct {
	mock.Mock
}

func (m *MockLockerService) TryLock(ctx context.Context, key string, expiration time.Duration) (bool, string, error) {
	args := m.Called(ctx, key, expiration)
	return args.Bool(0), args.String(1), args.Error(2)
}

func (m *MockLockerService) Unlock(ctx context.Context, key, lockValue string) error {
	return m.Called(ctx, key, lockValue).Error(0)
}

type MockResourceLimiter struct {
	mock.Mock
}

func (m *MockResourceLimiter) Allow(ctx context.Context, group, resource string, maxQuota int, window time.Duration) (bool, time.Duration, error) {
	args := m.Called(ctx, group, resource, maxQuota, window)
	retryAfter, _ := args.Get(1).(time.Duration)
	return args.Bool(0), retryAfter, args.Error(2)
}

type MockNotificationPublisher struct {
	mock.Mock
}

func (m *MockNotificationPublisher) Publish(ctx context.Context, event *models.NotificationEvent) error {
	return m.Called(ctx, event).Error(0)
}

// fakeAppointmentRepository keeps appointments in insertion order and
// pages through them the way the SQL ORDER BY/LIMIT/OFFSET would.
type fakeAppointmentRepository struct {
	MockAppointmentRepository
	appointments []models.Appointment
}

func (f *fakeAppointmentRepository) filtered(filter models.AppointmentFilter) []models.Appointment {
	matched := make([]models.Appointment, 0, len(f.appointments))
	for _, a := range f.appointments {
		if filter.Status != "" && a.Status != filter.Status {
			continue
		}
		if filter.DoctorID != "" && a.DoctorID != filter.DoctorID {
			continue
		}
		if filter.OwnerUserID != "" && a.PatientOwnerID != filter.OwnerUserID {
			continue
		}
		matched = append(matched, a)
	}
	return matched
}

func (f *fakeAppointmentRepository) Count(ctx context.Context, filter models.AppointmentFilter) (int, error) {
	return len(f.filtered(filter)), nil
}

func (f *fakeAppointmentRepository) FindAll(ctx context.Context, filter models.AppointmentFilter) ([]models.Appointment, error) {
	matched := f.filtered(filter)
	if filter.Offset >= len(matched) {
		return []models.Appointment{}, nil
	}
	end := filter.Offset + filter.Limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[filter.Offset:end], nil
}
