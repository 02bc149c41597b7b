package appointments

import (
	"context"
	"fmt"
	"medbook-service/internal/app/config"
	"medbook-service/internal/app/models"
	"medbook-service/internal/pkg/constvars"
	"medbook-service/internal/pkg/dto/requests"
	"medbook-service/internal/pkg/exceptions"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var (
	adminSession   = &models.Session{UserID: "admin-1", Role: constvars.RoleAdmin}
	doctorSession  = &models.Session{UserID: "user-doctor-1", Role: constvars.RoleDoctor, DoctorID: "doctor-1"}
	patientSession = &models.Session{UserID: "user-1", Role: constvars.RolePatient}
)

type appointmentUsecaseMocks struct {
	appointments *MockAppointmentRepository
	catalog      *MockCatalogRepository
	profiles     *MockPatientProfileRepository
	locker       *MockLockerService
	limiter      *MockResourceLimiter
	publisher    *MockNotificationPublisher
}

func newTestAppointmentUsecase(appointmentRepository *MockAppointmentRepository) (*appointmentUsecase, *appointmentUsecaseMocks) {
	mocks := &appointmentUsecaseMocks{
		appointments: appointmentRepository,
		catalog:      new(MockCatalogRepository),
		profiles:     new(MockPatientProfileRepository),
		locker:       new(MockLockerService),
		limiter:      new(MockResourceLimiter),
		publisher:    new(MockNotificationPublisher),
	}
	if mocks.appointments == nil {
		mocks.appointments = new(MockAppointmentRepository)
	}

	uc := &appointmentUsecase{
		AppointmentRepository:    mocks.appointments,
		CatalogRepository:        mocks.catalog,
		PatientProfileRepository: mocks.profiles,
		LockService:              mocks.locker,
		ResourceLimiter:          mocks.limiter,
		NotificationPublisher:    mocks.publisher,
		InternalConfig: &config.InternalConfig{
			Booking: config.AppBooking{
				LockExpiryInSeconds:    10,
				MaxAttemptsPerWindow:   5,
				AttemptWindowInSeconds: 60,
			},
		},
		Log:      zap.NewNop(),
		location: time.UTC,
		now: func() time.Time {
			return time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
		},
	}
	return uc, mocks
}

func assertStatus(t *testing.T, err error, status int) {
	t.Helper()
	var customErr *exceptions.CustomError
	require.ErrorAs(t, err, &customErr)
	assert.Equal(t, status, customErr.StatusCode)
}

func sampleAppointment(status, paymentStatus string) *models.Appointment {
	return &models.Appointment{
		ID:               "appt-1",
		DoctorServiceID:  "ds-1",
		DoctorID:         "doctor-1",
		PatientProfileID: "profile-1",
		BookedBy:         "user-1",
		AppointmentDate:  time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC),
		StartTime:        "09:00",
		DurationMinutes:  30,
		Status:           status,
		PaymentStatus:    paymentStatus,
		Price:            200000,
		PatientName:      "Nguyen Van An",
		PatientOwnerID:   "user-1",
	}
}

func TestAppointmentUsecase_FindAll(t *testing.T) {
	t.Run("Second Page Of Fifteen", func(t *testing.T) {
		repo := &fakeAppointmentRepository{}
		for i := 1; i <= 15; i++ {
			appointment := sampleAppointment(constvars.AppointmentStatusUpcoming, constvars.PaymentStatusUnpaid)
			appointment.ID = fmt.Sprintf("appt-%02d", i)
			repo.appointments = append(repo.appointments, *appointment)
		}
		uc, _ := newTestAppointmentUsecase(nil)
		uc.AppointmentRepository = repo

		response, err := uc.FindAll(context.Background(), adminSession, &requests.FindAllAppointments{Page: 2, Limit: 10})

		require.NoError(t, err)
		assert.Equal(t, 15, response.Total)
		assert.Equal(t, 2, response.Page)
		assert.Equal(t, 10, response.Limit)
		require.Len(t, response.Appointments, 5)
		for i, each := range response.Appointments {
			assert.Equal(t, fmt.Sprintf("appt-%02d", 11+i), each.ID)
		}
	})

	t.Run("Defaults And Caps Paging", func(t *testing.T) {
		uc, mocks := newTestAppointmentUsecase(nil)
		capped := mock.MatchedBy(func(f models.AppointmentFilter) bool {
			return f.Limit == constvars.AppMaxPageSize && f.Offset == 0
		})
		mocks.appointments.On("Count", mock.Anything, capped).Return(0, nil)
		mocks.appointments.On("FindAll", mock.Anything, capped).Return([]models.Appointment{}, nil)

		response, err := uc.FindAll(context.Background(), adminSession, &requests.FindAllAppointments{Page: 0, Limit: 1000})

		require.NoError(t, err)
		assert.Equal(t, constvars.AppDefaultPage, response.Page)
		assert.Equal(t, constvars.AppMaxPageSize, response.Limit)
		assert.Empty(t, response.Appointments)
	})

	t.Run("Doctor Is Scoped To Own Appointments", func(t *testing.T) {
		uc, mocks := newTestAppointmentUsecase(nil)
		scoped := mock.MatchedBy(func(f models.AppointmentFilter) bool {
			return f.DoctorID == "doctor-1" && f.OwnerUserID == ""
		})
		mocks.appointments.On("Count", mock.Anything, scoped).Return(1, nil)
		mocks.appointments.On("FindAll", mock.Anything, scoped).
			Return([]models.Appointment{*sampleAppointment(constvars.AppointmentStatusUpcoming, constvars.PaymentStatusUnpaid)}, nil)

		response, err := uc.FindAll(context.Background(), doctorSession, &requests.FindAllAppointments{DoctorID: "3f1d4c7e-0000-4000-8000-000000000009"})

		require.NoError(t, err)
		assert.Equal(t, 1, response.Total)
		mocks.appointments.AssertExpectations(t)
	})

	t.Run("Patient Is Scoped To Own Profiles", func(t *testing.T) {
		uc, mocks := newTestAppointmentUsecase(nil)
		scoped := mock.MatchedBy(func(f models.AppointmentFilter) bool {
			return f.OwnerUserID == "user-1"
		})
		mocks.appointments.On("Count", mock.Anything, scoped).Return(0, nil)
		mocks.appointments.On("FindAll", mock.Anything, scoped).Return([]models.Appointment{}, nil)

		_, err := uc.FindAll(context.Background(), patientSession, &requests.FindAllAppointments{})

		require.NoError(t, err)
		mocks.appointments.AssertExpectations(t)
	})

	t.Run("Doctor Without Linked Doctor Is Forbidden", func(t *testing.T) {
		uc, mocks := newTestAppointmentUsecase(nil)
		unlinked := &models.Session{UserID: "user-doctor-2", Role: constvars.RoleDoctor}

		_, err := uc.FindAll(context.Background(), unlinked, &requests.FindAllAppointments{})

		assertStatus(t, err, constvars.StatusForbidden)
		mocks.appointments.AssertNotCalled(t, "Count", mock.Anything, mock.Anything)
		mocks.appointments.AssertNotCalled(t, "FindAll", mock.Anything, mock.Anything)
	})

	t.Run("Unknown Role Is Forbidden", func(t *testing.T) {
		uc, mocks := newTestAppointmentUsecase(nil)
		nurse := &models.Session{UserID: "user-9", Role: "nurse"}

		_, err := uc.FindAll(context.Background(), nurse, &requests.FindAllAppointments{})

		assertStatus(t, err, constvars.StatusForbidden)
		mocks.appointments.AssertNotCalled(t, "Count", mock.Anything, mock.Anything)
	})

	t.Run("Date Range Reversed", func(t *testing.T) {
		uc, mocks := newTestAppointmentUsecase(nil)

		_, err := uc.FindAll(context.Background(), adminSession, &requests.FindAllAppointments{DateFrom: "2024-06-10", DateTo: "2024-06-01"})

		assertStatus(t, err, constvars.StatusBadRequest)
		mocks.appointments.AssertNotCalled(t, "Count", mock.Anything, mock.Anything)
	})
}

func TestAppointmentUsecase_FindByID(t *testing.T) {
	t.Run("Owner Patient", func(t *testing.T) {
		uc, mocks := newTestAppointmentUsecase(nil)
		mocks.appointments.On("FindByID", mock.Anything, "appt-1").
			Return(sampleAppointment(constvars.AppointmentStatusUpcoming, constvars.PaymentStatusUnpaid), nil)

		response, err := uc.FindByID(context.Background(), patientSession, "appt-1")

		require.NoError(t, err)
		assert.Equal(t, "09:30", response.EndTime)
	})

	t.Run("Other Patient Is Forbidden", func(t *testing.T) {
		uc, mocks := newTestAppointmentUsecase(nil)
		mocks.appointments.On("FindByID", mock.Anything, "appt-1").
			Return(sampleAppointment(constvars.AppointmentStatusUpcoming, constvars.PaymentStatusUnpaid), nil)

		_, err := uc.FindByID(context.Background(), &models.Session{UserID: "user-2", Role: constvars.RolePatient}, "appt-1")

		assertStatus(t, err, constvars.StatusForbidden)
	})

	t.Run("Other Doctor Is Forbidden", func(t *testing.T) {
		uc, mocks := newTestAppointmentUsecase(nil)
		mocks.appointments.On("FindByID", mock.Anything, "appt-1").
			Return(sampleAppointment(constvars.AppointmentStatusUpcoming, constvars.PaymentStatusUnpaid), nil)

		_, err := uc.FindByID(context.Background(), &models.Session{UserID: "user-doctor-2", Role: constvars.RoleDoctor, DoctorID: "doctor-2"}, "appt-1")

		assertStatus(t, err, constvars.StatusForbidden)
	})

	t.Run("Missing", func(t *testing.T) {
		uc, mocks := newTestAppointmentUsecase(nil)
		mocks.appointments.On("FindByID", mock.Anything, "appt-404").Return(nil, nil)

		_, err := uc.FindByID(context.Background(), adminSession, "appt-404")

		assertStatus(t, err, constvars.StatusNotFound)
	})
}

func TestAppointmentUsecase_Update(t *testing.T) {
	t.Run("Cancel Keeps Payment Status", func(t *testing.T) {
		uc, mocks := newTestAppointmentUsecase(nil)
		before := sampleAppointment(constvars.AppointmentStatusUpcoming, constvars.PaymentStatusPaid)
		after := sampleAppointment(constvars.AppointmentStatusCancelled, constvars.PaymentStatusPaid)
		mocks.appointments.On("FindByID", mock.Anything, "appt-1").Return(before, nil).Once()
		mocks.appointments.On("FindByID", mock.Anything, "appt-1").Return(after, nil).Once()
		mocks.appointments.On("Update", mock.Anything, "appt-1", mock.MatchedBy(func(p models.AppointmentPatch) bool {
			return p.Status != nil && *p.Status == constvars.AppointmentStatusCancelled && p.PaymentStatus == nil && p.Note == nil
		})).Return(nil)
		mocks.publisher.On("Publish", mock.Anything, mock.MatchedBy(func(e *models.NotificationEvent) bool {
			return e.Event == constvars.NotificationEventAppointmentCancelled && e.UserID == "user-1"
		})).Return(nil)

		cancelled := constvars.AppointmentStatusCancelled
		response, err := uc.Update(context.Background(), patientSession, "appt-1", &requests.UpdateAppointment{Status: &cancelled})

		require.NoError(t, err)
		assert.Equal(t, constvars.AppointmentStatusCancelled, response.Status)
		assert.Equal(t, constvars.PaymentStatusPaid, response.PaymentStatus)
		mocks.appointments.AssertExpectations(t)
		mocks.publisher.AssertExpectations(t)
	})

	t.Run("Explicit Payment Status Is Written", func(t *testing.T) {
		uc, mocks := newTestAppointmentUsecase(nil)
		mocks.appointments.On("FindByID", mock.Anything, "appt-1").
			Return(sampleAppointment(constvars.AppointmentStatusCompleted, constvars.PaymentStatusUnpaid), nil)
		mocks.appointments.On("Update", mock.Anything, "appt-1", mock.MatchedBy(func(p models.AppointmentPatch) bool {
			return p.Status == nil && p.PaymentStatus != nil && *p.PaymentStatus == constvars.PaymentStatusPaid
		})).Return(nil)

		paid := constvars.PaymentStatusPaid
		_, err := uc.Update(context.Background(), adminSession, "appt-1", &requests.UpdateAppointment{PaymentStatus: &paid})

		require.NoError(t, err)
		mocks.appointments.AssertExpectations(t)
		mocks.publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
	})

	t.Run("Invalid Transition", func(t *testing.T) {
		uc, mocks := newTestAppointmentUsecase(nil)
		mocks.appointments.On("FindByID", mock.Anything, "appt-1").
			Return(sampleAppointment(constvars.AppointmentStatusCompleted, constvars.PaymentStatusPaid), nil)

		upcoming := constvars.AppointmentStatusUpcoming
		_, err := uc.Update(context.Background(), doctorSession, "appt-1", &requests.UpdateAppointment{Status: &upcoming})

		assertStatus(t, err, constvars.StatusBadRequest)
		mocks.appointments.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Same Status Is A No-op", func(t *testing.T) {
		uc, mocks := newTestAppointmentUsecase(nil)
		mocks.appointments.On("FindByID", mock.Anything, "appt-1").
			Return(sampleAppointment(constvars.AppointmentStatusCancelled, constvars.PaymentStatusUnpaid), nil)

		cancelled := constvars.AppointmentStatusCancelled
		response, err := uc.Update(context.Background(), patientSession, "appt-1", &requests.UpdateAppointment{Status: &cancelled})

		require.NoError(t, err)
		assert.Equal(t, constvars.AppointmentStatusCancelled, response.Status)
		mocks.appointments.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Patient Cannot Change Payment", func(t *testing.T) {
		uc, mocks := newTestAppointmentUsecase(nil)
		mocks.appointments.On("FindByID", mock.Anything, "appt-1").
			Return(sampleAppointment(constvars.AppointmentStatusUpcoming, constvars.PaymentStatusUnpaid), nil)

		paid := constvars.PaymentStatusPaid
		_, err := uc.Update(context.Background(), patientSession, "appt-1", &requests.UpdateAppointment{PaymentStatus: &paid})

		assertStatus(t, err, constvars.StatusForbidden)
	})

	t.Run("Publish Failure Does Not Fail The Update", func(t *testing.T) {
		uc, mocks := newTestAppointmentUsecase(nil)
		mocks.appointments.On("FindByID", mock.Anything, "appt-1").
			Return(sampleAppointment(constvars.AppointmentStatusOngoing, constvars.PaymentStatusPaid), nil)
		mocks.appointments.On("Update", mock.Anything, "appt-1", mock.Anything).Return(nil)
		mocks.publisher.On("Publish", mock.Anything, mock.Anything).Return(exceptions.ErrRabbitMQPublish(fmt.Errorf("channel closed"), "appointment_notifications"))

		_, err := uc.Complete(context.Background(), doctorSession, "appt-1")

		assert.NoError(t, err)
	})
}

func TestAppointmentUsecase_Complete(t *testing.T) {
	uc, mocks := newTestAppointmentUsecase(nil)

	_, err := uc.Complete(context.Background(), patientSession, "appt-1")

	assertStatus(t, err, constvars.StatusForbidden)
	mocks.appointments.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func TestAppointmentUsecase_Delete(t *testing.T) {
	t.Run("Admin", func(t *testing.T) {
		uc, mocks := newTestAppointmentUsecase(nil)
		mocks.appointments.On("FindByID", mock.Anything, "appt-1").
			Return(sampleAppointment(constvars.AppointmentStatusCancelled, constvars.PaymentStatusUnpaid), nil)
		mocks.appointments.On("Delete", mock.Anything, "appt-1").Return(nil)

		err := uc.Delete(context.Background(), adminSession, "appt-1")

		require.NoError(t, err)
		mocks.appointments.AssertExpectations(t)
	})

	t.Run("Doctor Is Forbidden", func(t *testing.T) {
		uc, mocks := newTestAppointmentUsecase(nil)

		err := uc.Delete(context.Background(), doctorSession, "appt-1")

		assertStatus(t, err, constvars.StatusForbidden)
		mocks.appointments.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("Missing", func(t *testing.T) {
		uc, mocks := newTestAppointmentUsecase(nil)
		mocks.appointments.On("FindByID", mock.Anything, "appt-404").Return(nil, nil)

		err := uc.Delete(context.Background(), adminSession, "appt-404")

		assertStatus(t, err, constvars.StatusNotFound)
	})
}
