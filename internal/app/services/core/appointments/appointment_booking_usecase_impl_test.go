package appointments

import (
	"context"
	"errors"
	"medbook-service/internal/app/models"
	"medbook-service/internal/app/services/shared/metrics"
	"medbook-service/internal/pkg/constvars"
	"medbook-service/internal/pkg/dto/requests"
	"medbook-service/internal/pkg/exceptions"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// 2024-06-03 is a Monday.
const (
	mondayDate  = "2024-06-03"
	tuesdayDate = "2024-06-04"
	lockKey     = "lock:booking:doctor-1:2024-06-03"
)

func sampleDoctorService() *models.DoctorService {
	return &models.DoctorService{
		ID:         "ds-1",
		DoctorID:   "doctor-1",
		DoctorName: "BS. Tran Binh",
		ClinicID:   "clinic-1",
		Service: models.Service{
			ID:              "service-1",
			Name:            "Kham tong quat",
			DurationMinutes: 30,
			Price:           200000,
		},
	}
}

func mondayHours() []models.WorkingHour {
	return []models.WorkingHour{
		{DoctorServiceID: "ds-1", Weekday: time.Monday, StartTime: "08:00", EndTime: "17:00"},
	}
}

func (m *appointmentUsecaseMocks) expectDoctorService(booked []models.BookedSlot) {
	m.catalog.On("FindDoctorServiceByID", mock.Anything, "ds-1").Return(sampleDoctorService(), nil)
	m.catalog.On("FindWorkingHoursByDoctorServiceID", mock.Anything, "ds-1").Return(mondayHours(), nil)
	m.appointments.On("FindBookedSlots", mock.Anything, "doctor-1", mock.Anything).Return(booked, nil)
}

func TestAppointmentUsecase_GetDoctorAvailability(t *testing.T) {
	t.Run("Window And Occupied Slots", func(t *testing.T) {
		uc, mocks := newTestAppointmentUsecase(nil)
		mocks.expectDoctorService([]models.BookedSlot{
			{AppointmentID: "appt-1", StartTime: "09:00", DurationMinutes: 30, Status: constvars.AppointmentStatusCompleted},
		})

		response, err := uc.GetDoctorAvailability(context.Background(), &requests.DoctorAvailability{DoctorServiceID: "ds-1", Date: mondayDate})

		require.NoError(t, err)
		assert.Equal(t, "08:00", response.WorkingHours.Start)
		assert.Equal(t, "17:00", response.WorkingHours.End)
		require.Len(t, response.Occupied, 1)
		assert.Equal(t, "09:00", response.Occupied[0].Start)
		assert.Equal(t, "09:30", response.Occupied[0].End)
		assert.Equal(t, "doctor-1", response.DoctorID)
		assert.Equal(t, mondayDate, response.Date)
	})

	t.Run("Cancelled Booking Is Not Occupied", func(t *testing.T) {
		uc, mocks := newTestAppointmentUsecase(nil)
		mocks.expectDoctorService([]models.BookedSlot{
			{AppointmentID: "appt-1", StartTime: "09:00", DurationMinutes: 30, Status: constvars.AppointmentStatusCancelled},
		})

		response, err := uc.GetDoctorAvailability(context.Background(), &requests.DoctorAvailability{DoctorServiceID: "ds-1", Date: mondayDate})

		require.NoError(t, err)
		assert.NotNil(t, response.Occupied)
		assert.Empty(t, response.Occupied)
	})

	t.Run("Not Working That Day", func(t *testing.T) {
		uc, mocks := newTestAppointmentUsecase(nil)
		mocks.expectDoctorService(nil)

		_, err := uc.GetDoctorAvailability(context.Background(), &requests.DoctorAvailability{DoctorServiceID: "ds-1", Date: tuesdayDate})

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
		assert.Equal(t, constvars.ErrClientDoctorNotWorkingThisDay, customErr.ClientMessage)
	})

	t.Run("Unknown Doctor Service", func(t *testing.T) {
		uc, mocks := newTestAppointmentUsecase(nil)
		mocks.catalog.On("FindDoctorServiceByID", mock.Anything, "ds-404").Return(nil, nil)

		_, err := uc.GetDoctorAvailability(context.Background(), &requests.DoctorAvailability{DoctorServiceID: "ds-404", Date: mondayDate})

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
		assert.Equal(t, constvars.ErrClientDoctorServiceNotFound, customErr.ClientMessage)
	})

	t.Run("Broken Working Hours", func(t *testing.T) {
		uc, mocks := newTestAppointmentUsecase(nil)
		mocks.catalog.On("FindDoctorServiceByID", mock.Anything, "ds-1").Return(sampleDoctorService(), nil)
		mocks.catalog.On("FindWorkingHoursByDoctorServiceID", mock.Anything, "ds-1").Return([]models.WorkingHour{
			{DoctorServiceID: "ds-1", Weekday: time.Monday, StartTime: "17:00", EndTime: "08:00"},
		}, nil)

		_, err := uc.GetDoctorAvailability(context.Background(), &requests.DoctorAvailability{DoctorServiceID: "ds-1", Date: mondayDate})

		assertStatus(t, err, constvars.StatusInternalServerError)
	})
}

func bookingRequest(startTime string) *requests.CreateAppointment {
	return &requests.CreateAppointment{
		DoctorServiceID:  "ds-1",
		Date:             mondayDate,
		StartTime:        startTime,
		PatientProfileID: "profile-1",
	}
}

func inlinePatientRequest(startTime string) *requests.CreateAppointment {
	request := bookingRequest(startTime)
	request.PatientProfileID = ""
	request.Patient = &requests.CreatePatientProfile{FullName: "Nguyen Thi Binh", Relationship: constvars.RelationshipChild}
	return request
}

func (m *appointmentUsecaseMocks) expectBookingPrelude() {
	m.limiter.On("Allow", mock.Anything, constvars.LimiterGroupBookingAttempts, "user-1", 5, time.Minute).Return(true, time.Duration(0), nil)
	m.profiles.On("FindByID", mock.Anything, "profile-1").Return(&models.PatientProfile{ID: "profile-1", UserID: "user-1", FullName: "Nguyen Van An"}, nil)
}

func TestAppointmentUsecase_CreateBooking(t *testing.T) {
	t.Run("Booked", func(t *testing.T) {
		uc, mocks := newTestAppointmentUsecase(nil)
		uc.Metrics = metrics.NewCollector("test")
		mocks.expectBookingPrelude()
		mocks.expectDoctorService([]models.BookedSlot{
			{AppointmentID: "appt-0", StartTime: "09:00", DurationMinutes: 30, Status: constvars.AppointmentStatusUpcoming},
		})
		mocks.locker.On("TryLock", mock.Anything, lockKey, 10*time.Second).Return(true, "lock-value", nil)
		mocks.locker.On("Unlock", mock.Anything, lockKey, "lock-value").Return(nil)
		mocks.appointments.On("Create", mock.Anything, mock.MatchedBy(func(a *models.Appointment) bool {
			return a.StartTime == "09:30" &&
				a.Status == constvars.AppointmentStatusUpcoming &&
				a.PaymentStatus == constvars.PaymentStatusUnpaid &&
				a.Price == 200000 &&
				a.PatientProfileID == "profile-1" &&
				a.BookedBy == "user-1"
		})).Return(nil)
		mocks.publisher.On("Publish", mock.Anything, mock.MatchedBy(func(e *models.NotificationEvent) bool {
			return e.Event == constvars.NotificationEventAppointmentCreated
		})).Return(nil)

		response, err := uc.CreateBooking(context.Background(), patientSession, bookingRequest("09:30"))

		require.NoError(t, err)
		assert.Equal(t, "10:00", response.EndTime)
		assert.Equal(t, "Nguyen Van An", response.PatientName)
		assert.Equal(t, float64(1), testutil.ToFloat64(uc.Metrics.BookingsTotal.WithLabelValues(metrics.BookingOutcomeCreated)))
		mocks.locker.AssertExpectations(t)
		mocks.appointments.AssertExpectations(t)
		mocks.publisher.AssertExpectations(t)
	})

	t.Run("Overlapping Slot", func(t *testing.T) {
		uc, mocks := newTestAppointmentUsecase(nil)
		mocks.expectBookingPrelude()
		mocks.expectDoctorService([]models.BookedSlot{
			{AppointmentID: "appt-0", StartTime: "09:00", DurationMinutes: 30, Status: constvars.AppointmentStatusUpcoming},
		})
		mocks.locker.On("TryLock", mock.Anything, lockKey, mock.Anything).Return(true, "lock-value", nil)
		mocks.locker.On("Unlock", mock.Anything, lockKey, "lock-value").Return(nil)

		_, err := uc.CreateBooking(context.Background(), patientSession, bookingRequest("09:15"))

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.ErrClientSlotAlreadyBooked, customErr.ClientMessage)
		mocks.appointments.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		mocks.locker.AssertCalled(t, "Unlock", mock.Anything, lockKey, "lock-value")
	})

	t.Run("Outside Working Hours", func(t *testing.T) {
		uc, mocks := newTestAppointmentUsecase(nil)
		mocks.expectBookingPrelude()
		mocks.expectDoctorService(nil)
		mocks.locker.On("TryLock", mock.Anything, lockKey, mock.Anything).Return(true, "lock-value", nil)
		mocks.locker.On("Unlock", mock.Anything, lockKey, "lock-value").Return(nil)

		_, err := uc.CreateBooking(context.Background(), patientSession, bookingRequest("16:45"))

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.ErrClientSlotOutsideWorkingHours, customErr.ClientMessage)
	})

	t.Run("Lock Busy", func(t *testing.T) {
		uc, mocks := newTestAppointmentUsecase(nil)
		mocks.expectBookingPrelude()
		mocks.catalog.On("FindDoctorServiceByID", mock.Anything, "ds-1").Return(sampleDoctorService(), nil)
		mocks.locker.On("TryLock", mock.Anything, lockKey, mock.Anything).Return(false, "", nil)

		_, err := uc.CreateBooking(context.Background(), patientSession, bookingRequest("10:00"))

		assertStatus(t, err, constvars.StatusConflict)
		mocks.locker.AssertNotCalled(t, "Unlock", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Lost Race On Insert", func(t *testing.T) {
		uc, mocks := newTestAppointmentUsecase(nil)
		mocks.expectBookingPrelude()
		mocks.expectDoctorService(nil)
		mocks.locker.On("TryLock", mock.Anything, lockKey, mock.Anything).Return(true, "lock-value", nil)
		mocks.locker.On("Unlock", mock.Anything, lockKey, "lock-value").Return(nil)
		mocks.appointments.On("Create", mock.Anything, mock.Anything).Return(exceptions.ErrSlotAlreadyBooked(errors.New("pq: duplicate key")))

		_, err := uc.CreateBooking(context.Background(), patientSession, bookingRequest("10:00"))

		assertStatus(t, err, constvars.StatusBadRequest)
		mocks.publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
	})

	t.Run("Rate Limited", func(t *testing.T) {
		uc, mocks := newTestAppointmentUsecase(nil)
		mocks.limiter.On("Allow", mock.Anything, constvars.LimiterGroupBookingAttempts, "user-1", 5, time.Minute).Return(false, 30*time.Second, nil)

		_, err := uc.CreateBooking(context.Background(), patientSession, bookingRequest("10:00"))

		assertStatus(t, err, constvars.StatusTooManyRequests)
		mocks.catalog.AssertNotCalled(t, "FindDoctorServiceByID", mock.Anything, mock.Anything)
	})

	t.Run("Date In The Past", func(t *testing.T) {
		uc, mocks := newTestAppointmentUsecase(nil)
		mocks.limiter.On("Allow", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(true, time.Duration(0), nil)
		request := bookingRequest("10:00")
		request.Date = "2024-05-31"

		_, err := uc.CreateBooking(context.Background(), patientSession, request)

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.ErrClientBookingDateInPast, customErr.ClientMessage)
	})

	t.Run("Someone Else's Profile", func(t *testing.T) {
		uc, mocks := newTestAppointmentUsecase(nil)
		mocks.limiter.On("Allow", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(true, time.Duration(0), nil)
		mocks.catalog.On("FindDoctorServiceByID", mock.Anything, "ds-1").Return(sampleDoctorService(), nil)
		mocks.profiles.On("FindByID", mock.Anything, "profile-1").Return(&models.PatientProfile{ID: "profile-1", UserID: "user-2"}, nil)

		_, err := uc.CreateBooking(context.Background(), patientSession, bookingRequest("10:00"))

		assertStatus(t, err, constvars.StatusNotFound)
		mocks.locker.AssertNotCalled(t, "TryLock", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Inline Patient Creates A Profile", func(t *testing.T) {
		uc, mocks := newTestAppointmentUsecase(nil)
		mocks.limiter.On("Allow", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(true, time.Duration(0), nil)
		mocks.expectDoctorService(nil)
		mocks.locker.On("TryLock", mock.Anything, lockKey, mock.Anything).Return(true, "lock-value", nil)
		mocks.locker.On("Unlock", mock.Anything, lockKey, "lock-value").Return(nil)
		mocks.appointments.On("CreateWithPatientProfile", mock.Anything, mock.MatchedBy(func(p *models.PatientProfile) bool {
			return p.UserID == "user-1" && p.FullName == "Nguyen Thi Binh" && p.Relationship == constvars.RelationshipChild
		}), mock.MatchedBy(func(a *models.Appointment) bool {
			return a.StartTime == "10:00" && a.PatientProfileID != ""
		})).Return(nil)
		mocks.publisher.On("Publish", mock.Anything, mock.Anything).Return(nil)

		response, err := uc.CreateBooking(context.Background(), patientSession, inlinePatientRequest("10:00"))

		require.NoError(t, err)
		assert.Equal(t, "Nguyen Thi Binh", response.PatientName)
		mocks.appointments.AssertExpectations(t)
		mocks.appointments.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		mocks.profiles.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Inline Patient Is Not Saved When Lock Busy", func(t *testing.T) {
		uc, mocks := newTestAppointmentUsecase(nil)
		mocks.limiter.On("Allow", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(true, time.Duration(0), nil)
		mocks.catalog.On("FindDoctorServiceByID", mock.Anything, "ds-1").Return(sampleDoctorService(), nil)
		mocks.locker.On("TryLock", mock.Anything, lockKey, mock.Anything).Return(false, "", nil)

		_, err := uc.CreateBooking(context.Background(), patientSession, inlinePatientRequest("10:00"))

		assertStatus(t, err, constvars.StatusConflict)
		mocks.profiles.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		mocks.appointments.AssertNotCalled(t, "CreateWithPatientProfile", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Inline Patient Is Not Saved On Overlap", func(t *testing.T) {
		uc, mocks := newTestAppointmentUsecase(nil)
		mocks.limiter.On("Allow", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(true, time.Duration(0), nil)
		mocks.expectDoctorService([]models.BookedSlot{
			{AppointmentID: "appt-0", StartTime: "09:00", DurationMinutes: 30, Status: constvars.AppointmentStatusUpcoming},
		})
		mocks.locker.On("TryLock", mock.Anything, lockKey, mock.Anything).Return(true, "lock-value", nil)
		mocks.locker.On("Unlock", mock.Anything, lockKey, "lock-value").Return(nil)

		_, err := uc.CreateBooking(context.Background(), patientSession, inlinePatientRequest("09:15"))

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.ErrClientSlotAlreadyBooked, customErr.ClientMessage)
		mocks.profiles.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		mocks.appointments.AssertNotCalled(t, "CreateWithPatientProfile", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("No Patient Given", func(t *testing.T) {
		uc, mocks := newTestAppointmentUsecase(nil)
		mocks.limiter.On("Allow", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(true, time.Duration(0), nil)
		mocks.catalog.On("FindDoctorServiceByID", mock.Anything, "ds-1").Return(sampleDoctorService(), nil)
		request := bookingRequest("10:00")
		request.PatientProfileID = ""

		_, err := uc.CreateBooking(context.Background(), patientSession, request)

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.ErrClientPatientProfileRequired, customErr.ClientMessage)
	})
}
