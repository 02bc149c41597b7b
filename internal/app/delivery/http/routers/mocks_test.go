package routers

import (
	"context"
	"medbook-service/internal/app/models"
	"medbook-service/internal/pkg/dto/requests"
	"medbook-service/internal/pkg/dto/responses"

	"github.com/stretchr/testify/mock"
)

type MockSessionService struct {
	mock.Mock
}

func (m *MockSessionService) CreateSession(ctx context.Context, user *models.User) (*models.Session, error) {
	args := m.Called(ctx, user)
	session, _ := args.Get(0).(*models.Session)
	return session, args.Error(1)
}

func (m *MockSessionService) GetSessionData(ctx context.Context, sessionID string) (*models.Session, error) {
	args := m.Called(ctx, sessionID)
	session, _ := args.Get(0).(*models.Session)
	return session, args.Error(1)
}

func (m *MockSessionService) DeleteSession(ctx context.Context, sessionID string) error {
	return m.Called(ctx, sessionID).Error(0)
}

type MockAppointmentUsecase struct {
	mock.Mock
}

func (m *MockAppointmentUsecase) FindAll(ctx context.Context, session *models.Session, request *requests.FindAllAppointments) (*responses.FindAllAppointments, error) {
	args := m.Called(ctx, session, request)
	result, _ := args.Get(0).(*responses.FindAllAppointments)
	return result, args.Error(1)
}

func (m *MockAppointmentUsecase) FindByID(ctx context.Context, session *models.Session, appointmentID string) (*responses.Appointment, error) {
	args := m.Called(ctx, session, appointmentID)
	result, _ := args.Get(0).(*responses.Appointment)
	return result, args.Error(1)
}

func (m *MockAppointmentUsecase) Update(ctx context.Context, session *models.Session, appointmentID string, request *requests.UpdateAppointment) (*responses.Appointment, error) {
	args := m.Called(ctx, session, appointmentID, request)
	result, _ := args.Get(0).(*responses.Appointment)
	return result, args.Error(1)
}

func (m *MockAppointmentUsecase) Delete(ctx context.Context, session *models.Session, appointmentID string) error {
	return m.Called(ctx, session, appointmentID).Error(0)
}

func (m *MockAppointmentUsecase) Cancel(ctx context.Context, session *models.Session, appointmentID string) (*responses.Appointment, error) {
	args := m.Called(ctx, session, appointmentID)
	result, _ := args.Get(0).(*responses.Appointment)
	return result, args.Error(1)
}

func (m *MockAppointmentUsecase) Complete(ctx context.Context, session *models.Session, appointmentID string) (*responses.Appointment, error) {
	args := m.Called(ctx, session, appointmentID)
	result, _ := args.Get(0).(*responses.Appointment)
	return result, args.Error(1)
}

func (m *MockAppointmentUsecase) GetDoctorAvailability(ctx context.Context, request *requests.DoctorAvailability) (*responses.DoctorAvailability, error) {
	args := m.Called(ctx, request)
	result, _ := args.Get(0).(*responses.DoctorAvailability)
	return result, args.Error(1)
}

func (m *MockAppointmentUsecase) CreateBooking(ctx context.Context, session *models.Session, request *requests.CreateAppointment) (*responses.Appointment, error) {
	args := m.Called(ctx, session, request)
	result, _ := args.Get(0).(*responses.Appointment)
	return result, args.Error(1)
}

type MockUserUsecase struct {
	mock.Mock
}

func (m *MockUserUsecase) GetUserProfileBySession(ctx context.Context, session *models.Session) (*responses.UserProfile, error) {
	args := m.Called(ctx, session)
	result, _ := args.Get(0).(*responses.UserProfile)
	return result, args.Error(1)
}

func (m *MockUserUsecase) UpdateUserBySession(ctx context.Context, session *models.Session, request *requests.UpdateProfile) (*responses.UserProfile, error) {
	args := m.Called(ctx, session, request)
	result, _ := args.Get(0).(*responses.UserProfile)
	return result, args.Error(1)
}

func (m *MockUserUsecase) UploadAvatar(ctx context.Context, session *models.Session, request *requests.UploadAvatar) (*responses.UploadAvatar, error) {
	args := m.Called(ctx, session, request)
	result, _ := args.Get(0).(*responses.UploadAvatar)
	return result, args.Error(1)
}

type MockPatientProfileUsecase struct {
	mock.Mock
}

func (m *MockPatientProfileUsecase) FindAll(ctx context.Context, session *models.Session) ([]responses.PatientProfile, error) {
	args := m.Called(ctx, session)
	result, _ := args.Get(0).([]responses.PatientProfile)
	return result, args.Error(1)
}

func (m *MockPatientProfileUsecase) FindByID(ctx context.Context, session *models.Session, profileID string) (*responses.PatientProfile, error) {
	args := m.Called(ctx, session, profileID)
	result, _ := args.Get(0).(*responses.PatientProfile)
	return result, args.Error(1)
}

func (m *MockPatientProfileUsecase) Create(ctx context.Context, session *models.Session, request *requests.CreatePatientProfile) (*responses.PatientProfile, error) {
	args := m.Called(ctx, session, request)
	result, _ := args.Get(0).(*responses.PatientProfile)
	return result, args.Error(1)
}

func (m *MockPatientProfileUsecase) Update(ctx context.Context, session *models.Session, profileID string, request *requests.UpdatePatientProfile) (*responses.PatientProfile, error) {
	args := m.Called(ctx, session, profileID, request)
	result, _ := args.Get(0).(*responses.PatientProfile)
	return result, args.Error(1)
}

func (m *MockPatientProfileUsecase) Delete(ctx context.Context, session *models.Session, profileID string) error {
	return m.Called(ctx, session, profileID).Error(0)
}
