package appointments

import (
	"context"
	"errors"
	"fmt"
	"medbook-service/internal/app/models"
	"medbook-service/internal/app/services/core/availability"
	"medbook-service/internal/app/services/core/patient_profiles"
	"medbook-service/internal/app/services/shared/metrics"
	"medbook-service/internal/pkg/constvars"
	"medbook-service/internal/pkg/dto/requests"
	"medbook-service/internal/pkg/dto/responses"
	"medbook-service/internal/pkg/exceptions"
	"medbook-service/internal/pkg/utils"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	availabilityResultFound      = "found"
	availabilityResultNotWorking = "not_working"
)

func (uc *appointmentUsecase) GetDoctorAvailability(ctx context.Context, request *requests.DoctorAvailability) (*responses.DoctorAvailability, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.GetDoctorAvailability called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorServiceIDKey, request.DoctorServiceID),
		zap.String(constvars.LoggingDateKey, request.Date),
	)

	date, err := utils.ParseDate(request.Date, uc.location)
	if err != nil {
		return nil, exceptions.ErrInvalidQueryParam(err, constvars.QueryParamDate)
	}

	doctorService, result, err := uc.resolveAvailability(ctx, request.DoctorServiceID, date)
	if err != nil {
		return nil, err
	}

	response := &responses.DoctorAvailability{
		DoctorServiceID: doctorService.ID,
		DoctorID:        doctorService.DoctorID,
		Date:            utils.FormatDate(result.Date),
		WorkingHours: responses.TimeRange{
			Start: result.WorkingHours.StartClock(),
			End:   result.WorkingHours.EndClock(),
		},
		Occupied: make([]responses.TimeRange, len(result.Occupied)),
	}
	for i, slot := range result.Occupied {
		response.Occupied[i] = responses.TimeRange{Start: slot.StartClock(), End: slot.EndClock()}
	}

	uc.Log.Info("appointmentUsecase.GetDoctorAvailability succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(result.Occupied)),
	)
	return response, nil
}

// resolveAvailability loads the doctor service, its weekly hours and the
// doctor's bookings on date, then runs the resolver over them.
func (uc *appointmentUsecase) resolveAvailability(ctx context.Context, doctorServiceID string, date time.Time) (*models.DoctorService, *availability.Result, error) {
	doctorService, err := uc.CatalogRepository.FindDoctorServiceByID(ctx, doctorServiceID)
	if err != nil {
		return nil, nil, err
	}
	if doctorService == nil {
		return nil, nil, exceptions.ErrDoctorServiceNotFound(nil)
	}

	hours, err := uc.CatalogRepository.FindWorkingHoursByDoctorServiceID(ctx, doctorService.ID)
	if err != nil {
		return nil, nil, err
	}
	plan, err := availability.NewWeeklyPlan(hours)
	if err != nil {
		return nil, nil, exceptions.ErrInvalidWorkingHours(err)
	}

	booked, err := uc.AppointmentRepository.FindBookedSlots(ctx, doctorService.DoctorID, date)
	if err != nil {
		return nil, nil, err
	}

	result, err := availability.Resolve(date, plan, booked)
	if err != nil {
		if errors.Is(err, availability.ErrNotWorkingThisDay) {
			uc.Metrics.ObserveAvailability(availabilityResultNotWorking)
			return nil, nil, exceptions.ErrDoctorNotWorkingThisDay(date.Weekday())
		}
		return nil, nil, exceptions.ErrServerProcess(err)
	}
	uc.Metrics.ObserveAvailability(availabilityResultFound)
	return doctorService, result, nil
}

// CreateBooking reserves a slot under a per-doctor-per-day redis lock. The
// partial unique index on active slots catches anything the lock misses.
func (uc *appointmentUsecase) CreateBooking(ctx context.Context, session *models.Session, request *requests.CreateAppointment) (*responses.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.CreateBooking called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, session.UserID),
		zap.String(constvars.LoggingDoctorServiceIDKey, request.DoctorServiceID),
	)

	if err := uc.checkBookingQuota(ctx, session); err != nil {
		return nil, err
	}

	date, err := utils.ParseDate(request.Date, uc.location)
	if err != nil {
		uc.Metrics.ObserveBooking(metrics.BookingOutcomeFailed)
		return nil, exceptions.ErrInputValidation(err)
	}
	if date.Before(utils.StartOfDay(uc.now().In(uc.location))) {
		uc.Metrics.ObserveBooking(metrics.BookingOutcomeFailed)
		return nil, exceptions.ErrBookingDateInPast(nil)
	}
	start, err := utils.ParseClock(request.StartTime)
	if err != nil {
		uc.Metrics.ObserveBooking(metrics.BookingOutcomeFailed)
		return nil, exceptions.ErrInputValidation(err)
	}

	doctorService, err := uc.CatalogRepository.FindDoctorServiceByID(ctx, request.DoctorServiceID)
	if err != nil {
		return nil, err
	}
	if doctorService == nil {
		uc.Metrics.ObserveBooking(metrics.BookingOutcomeFailed)
		return nil, exceptions.ErrDoctorServiceNotFound(nil)
	}

	profile, isNewProfile, err := uc.resolvePatientProfile(ctx, session, request)
	if err != nil {
		uc.Metrics.ObserveBooking(metrics.BookingOutcomeFailed)
		return nil, err
	}

	lockKey := fmt.Sprintf(constvars.RedisBookingLockKeyFormat, doctorService.DoctorID, utils.FormatDate(date))
	lockExpiry := time.Duration(uc.InternalConfig.Booking.LockExpiryInSeconds) * time.Second
	acquired, lockValue, err := uc.LockService.TryLock(ctx, lockKey, lockExpiry)
	if err != nil {
		return nil, err
	}
	if !acquired {
		uc.Metrics.ObserveBooking(metrics.BookingOutcomeLockBusy)
		uc.Log.Info("appointmentUsecase.CreateBooking lock busy",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingRedisKey, lockKey),
		)
		return nil, exceptions.ErrBookingInProgress(nil)
	}
	defer func() {
		if err := uc.LockService.Unlock(ctx, lockKey, lockValue); err != nil {
			uc.Log.Warn("appointmentUsecase.CreateBooking error releasing lock",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingRedisKey, lockKey),
				zap.Error(err),
			)
		}
	}()

	_, result, err := uc.resolveAvailability(ctx, doctorService.ID, date)
	if err != nil {
		uc.Metrics.ObserveBooking(metrics.BookingOutcomeOutsideHours)
		return nil, err
	}

	slot := availability.TimeRange{Start: start, End: start + doctorService.Service.DurationMinutes}
	err = result.CheckSlot(slot)
	switch {
	case errors.Is(err, availability.ErrOutsideWorkingHours):
		uc.Metrics.ObserveBooking(metrics.BookingOutcomeOutsideHours)
		return nil, exceptions.ErrSlotOutsideWorkingHours(err)
	case errors.Is(err, availability.ErrSlotTaken):
		uc.Metrics.ObserveBooking(metrics.BookingOutcomeSlotTaken)
		return nil, exceptions.ErrSlotAlreadyBooked(err)
	case err != nil:
		return nil, exceptions.ErrServerProcess(err)
	}

	appointment := &models.Appointment{
		ID:               uuid.NewString(),
		DoctorServiceID:  doctorService.ID,
		DoctorID:         doctorService.DoctorID,
		PatientProfileID: profile.ID,
		BookedBy:         session.UserID,
		AppointmentDate:  date,
		StartTime:        slot.StartClock(),
		DurationMinutes:  doctorService.Service.DurationMinutes,
		Status:           constvars.AppointmentStatusUpcoming,
		PaymentStatus:    constvars.PaymentStatusUnpaid,
		Price:            doctorService.EffectivePrice(),
		Note:             request.Note,
		DoctorName:       doctorService.DoctorName,
		ServiceName:      doctorService.Service.Name,
		PatientName:      profile.FullName,
		PatientOwnerID:   profile.UserID,
	}

	if isNewProfile {
		err = uc.AppointmentRepository.CreateWithPatientProfile(ctx, profile, appointment)
	} else {
		err = uc.AppointmentRepository.Create(ctx, appointment)
	}
	if err != nil {
		var customErr *exceptions.CustomError
		if errors.As(err, &customErr) && customErr.ClientMessage == constvars.ErrClientSlotAlreadyBooked {
			uc.Metrics.ObserveBooking(metrics.BookingOutcomeSlotTaken)
		} else {
			uc.Metrics.ObserveBooking(metrics.BookingOutcomeFailed)
		}
		return nil, err
	}

	uc.Metrics.ObserveBooking(metrics.BookingOutcomeCreated)
	uc.publish(ctx, constvars.NotificationEventAppointmentCreated, appointment)

	uc.Log.Info("appointmentUsecase.CreateBooking succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointment.ID),
	)
	response := appointment.ConvertIntoResponse()
	return &response, nil
}

func (uc *appointmentUsecase) checkBookingQuota(ctx context.Context, session *models.Session) error {
	if uc.ResourceLimiter == nil {
		return nil
	}
	window := time.Duration(uc.InternalConfig.Booking.AttemptWindowInSeconds) * time.Second
	allowed, retryAfter, err := uc.ResourceLimiter.Allow(
		ctx,
		constvars.LimiterGroupBookingAttempts,
		session.UserID,
		uc.InternalConfig.Booking.MaxAttemptsPerWindow,
		window,
	)
	if err != nil {
		return err
	}
	if !allowed {
		uc.Metrics.ObserveBooking(metrics.BookingOutcomeRateLimited)
		return exceptions.ErrTooManyRequests(constvars.LimiterGroupBookingAttempts, retryAfter)
	}
	return nil
}

// resolvePatientProfile picks the profile the booking is for: an existing
// one owned by the caller, or an unsaved one built from the inline patient.
// An unsaved profile is reported as new and is only written together with
// the appointment.
func (uc *appointmentUsecase) resolvePatientProfile(ctx context.Context, session *models.Session, request *requests.CreateAppointment) (*models.PatientProfile, bool, error) {
	if request.PatientProfileID != "" {
		profile, err := uc.PatientProfileRepository.FindByID(ctx, request.PatientProfileID)
		if err != nil {
			return nil, false, err
		}
		if profile == nil || profile.UserID != session.UserID {
			return nil, false, exceptions.ErrPatientProfileNotFound(nil)
		}
		return profile, false, nil
	}

	if request.Patient == nil {
		return nil, false, exceptions.ErrPatientProfileRequired(nil)
	}

	profile, err := patient_profiles.BuildPatientProfile(session.UserID, request.Patient)
	if err != nil {
		return nil, false, err
	}
	return profile, true, nil
}
