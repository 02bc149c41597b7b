package appointments

import (
	"context"
	"fmt"
	"medbook-service/internal/app/config"
	"medbook-service/internal/app/contracts"
	"medbook-service/internal/app/models"
	"medbook-service/internal/app/services/shared/metrics"
	"medbook-service/internal/pkg/constvars"
	"medbook-service/internal/pkg/dto/requests"
	"medbook-service/internal/pkg/dto/responses"
	"medbook-service/internal/pkg/exceptions"
	"medbook-service/internal/pkg/utils"
	"sync"
	"time"

	"go.uber.org/zap"
)

type appointmentUsecase struct {
	AppointmentRepository    contracts.AppointmentRepository
	CatalogRepository        contracts.CatalogRepository
	PatientProfileRepository contracts.PatientProfileRepository
	LockService              contracts.LockerService
	ResourceLimiter          contracts.ResourceLimiter
	NotificationPublisher    contracts.NotificationPublisher
	Metrics                  *metrics.Collector
	InternalConfig           *config.InternalConfig
	Log                      *zap.Logger
	location                 *time.Location
	now                      func() time.Time
}

var (
	appointmentUsecaseInstance contracts.AppointmentUsecase
	onceAppointmentUsecase     sync.Once
)

func NewAppointmentUsecase(
	appointmentRepository contracts.AppointmentRepository,
	catalogRepository contracts.CatalogRepository,
	patientProfileRepository contracts.PatientProfileRepository,
	lockService contracts.LockerService,
	resourceLimiter contracts.ResourceLimiter,
	notificationPublisher contracts.NotificationPublisher,
	metricsCollector *metrics.Collector,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.AppointmentUsecase {
	onceAppointmentUsecase.Do(func() {
		location, err := time.LoadLocation(internalConfig.App.Timezone)
		if err != nil {
			logger.Warn("NewAppointmentUsecase unknown timezone, falling back to UTC",
				zap.String("timezone", internalConfig.App.Timezone),
				zap.Error(err),
			)
			location = time.UTC
		}

		appointmentUsecaseInstance = &appointmentUsecase{
			AppointmentRepository:    appointmentRepository,
			CatalogRepository:        catalogRepository,
			PatientProfileRepository: patientProfileRepository,
			LockService:              lockService,
			ResourceLimiter:          resourceLimiter,
			NotificationPublisher:    notificationPublisher,
			Metrics:                  metricsCollector,
			InternalConfig:           internalConfig,
			Log:                      logger,
			location:                 location,
			now:                      time.Now,
		}
	})
	return appointmentUsecaseInstance
}

func (uc *appointmentUsecase) FindAll(ctx context.Context, session *models.Session, request *requests.FindAllAppointments) (*responses.FindAllAppointments, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, session.UserID),
		zap.String(constvars.LoggingRoleKey, session.Role),
	)

	page, limit := normalizePagination(request.Page, request.Limit)

	filter := models.AppointmentFilter{
		Status:           request.Status,
		PaymentStatus:    request.PaymentStatus,
		DoctorID:         request.DoctorID,
		PatientProfileID: request.PatientID,
		Limit:            limit,
		Offset:           (page - 1) * limit,
	}

	if request.DateFrom != "" {
		dateFrom, err := utils.ParseDate(request.DateFrom, uc.location)
		if err != nil {
			return nil, exceptions.ErrInvalidQueryParam(err, constvars.QueryParamDateFrom)
		}
		filter.DateFrom = &dateFrom
	}
	if request.DateTo != "" {
		dateTo, err := utils.ParseDate(request.DateTo, uc.location)
		if err != nil {
			return nil, exceptions.ErrInvalidQueryParam(err, constvars.QueryParamDateTo)
		}
		filter.DateTo = &dateTo
	}
	if filter.DateFrom != nil && filter.DateTo != nil && filter.DateFrom.After(*filter.DateTo) {
		return nil, exceptions.ErrInvalidQueryParam(fmt.Errorf("%s is after %s", request.DateFrom, request.DateTo), constvars.QueryParamDateFrom)
	}

	// Non-admin callers only ever see their own side of the book.
	switch {
	case session.IsAdmin():
	case session.IsDoctor() && session.DoctorID != "":
		filter.DoctorID = session.DoctorID
	case session.IsPatient() && session.UserID != "":
		filter.OwnerUserID = session.UserID
	default:
		return nil, exceptions.ErrForbidden(fmt.Errorf("role %s of user %s has no appointment scope", session.Role, session.UserID))
	}

	total, err := uc.AppointmentRepository.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	appointments, err := uc.AppointmentRepository.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}

	response := &responses.FindAllAppointments{
		Appointments: make([]responses.Appointment, len(appointments)),
		Total:        total,
		Page:         page,
		Limit:        limit,
	}
	for i, eachAppointment := range appointments {
		response.Appointments[i] = eachAppointment.ConvertIntoResponse()
	}

	uc.Log.Info("appointmentUsecase.FindAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(appointments)),
	)
	return response, nil
}

func (uc *appointmentUsecase) FindByID(ctx context.Context, session *models.Session, appointmentID string) (*responses.Appointment, error) {
	appointment, err := uc.findVisibleAppointment(ctx, session, appointmentID)
	if err != nil {
		return nil, err
	}

	response := appointment.ConvertIntoResponse()
	return &response, nil
}

// Update applies a partial change. Patients may only cancel, and the
// payment status is left as it is unless the request carries one.
func (uc *appointmentUsecase) Update(ctx context.Context, session *models.Session, appointmentID string, request *requests.UpdateAppointment) (*responses.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.Update called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
	)

	appointment, err := uc.findVisibleAppointment(ctx, session, appointmentID)
	if err != nil {
		return nil, err
	}

	if session.IsPatient() {
		cancelOnly := request.Status != nil && *request.Status == constvars.AppointmentStatusCancelled &&
			request.PaymentStatus == nil && request.Note == nil
		if !cancelOnly {
			return nil, exceptions.ErrForbidden(fmt.Errorf("patients may only cancel appointments"))
		}
	}

	return uc.applyPatch(ctx, appointment, models.AppointmentPatch{
		Status:        request.Status,
		PaymentStatus: request.PaymentStatus,
		Note:          request.Note,
	})
}

func (uc *appointmentUsecase) Cancel(ctx context.Context, session *models.Session, appointmentID string) (*responses.Appointment, error) {
	status := constvars.AppointmentStatusCancelled
	return uc.Update(ctx, session, appointmentID, &requests.UpdateAppointment{Status: &status})
}

func (uc *appointmentUsecase) Complete(ctx context.Context, session *models.Session, appointmentID string) (*responses.Appointment, error) {
	if session.IsPatient() {
		return nil, exceptions.ErrForbidden(fmt.Errorf("patients cannot complete appointments"))
	}
	status := constvars.AppointmentStatusCompleted
	return uc.Update(ctx, session, appointmentID, &requests.UpdateAppointment{Status: &status})
}

func (uc *appointmentUsecase) Delete(ctx context.Context, session *models.Session, appointmentID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.Delete called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
	)

	if !session.IsAdmin() {
		return exceptions.ErrForbidden(fmt.Errorf("role %s cannot delete appointments", session.Role))
	}

	appointment, err := uc.AppointmentRepository.FindByID(ctx, appointmentID)
	if err != nil {
		return err
	}
	if appointment == nil {
		return exceptions.ErrAppointmentNotFound(nil)
	}

	err = uc.AppointmentRepository.Delete(ctx, appointmentID)
	if err != nil {
		return err
	}

	uc.Log.Info("appointmentUsecase.Delete succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
	)
	return nil
}

func (uc *appointmentUsecase) applyPatch(ctx context.Context, appointment *models.Appointment, patch models.AppointmentPatch) (*responses.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	// Re-applying the current status is a no-op, not a transition.
	if patch.Status != nil && *patch.Status == appointment.Status {
		patch.Status = nil
	}
	if patch.Status != nil && !appointment.CanTransitionTo(*patch.Status) {
		return nil, exceptions.ErrInvalidStatusTransition(appointment.Status, *patch.Status)
	}

	if patch.IsEmpty() {
		response := appointment.ConvertIntoResponse()
		return &response, nil
	}

	err := uc.AppointmentRepository.Update(ctx, appointment.ID, patch)
	if err != nil {
		return nil, err
	}

	updated, err := uc.AppointmentRepository.FindByID(ctx, appointment.ID)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, exceptions.ErrAppointmentNotFound(nil)
	}

	if patch.Status != nil {
		uc.Metrics.ObserveTransition(*patch.Status)
		event := constvars.NotificationEventAppointmentUpdated
		if *patch.Status == constvars.AppointmentStatusCancelled {
			event = constvars.NotificationEventAppointmentCancelled
		}
		uc.publish(ctx, event, updated)
	}

	uc.Log.Info("appointmentUsecase.applyPatch succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, updated.ID),
	)
	response := updated.ConvertIntoResponse()
	return &response, nil
}

// findVisibleAppointment hides nothing from admins. Doctors see their own
// appointments, patients those booked for one of their profiles.
func (uc *appointmentUsecase) findVisibleAppointment(ctx context.Context, session *models.Session, appointmentID string) (*models.Appointment, error) {
	appointment, err := uc.AppointmentRepository.FindByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if appointment == nil {
		return nil, exceptions.ErrAppointmentNotFound(nil)
	}

	switch {
	case session.IsAdmin():
		return appointment, nil
	case session.IsDoctor() && session.DoctorID != "" && appointment.DoctorID == session.DoctorID:
		return appointment, nil
	case session.IsPatient() && appointment.PatientOwnerID == session.UserID:
		return appointment, nil
	}
	return nil, exceptions.ErrForbidden(fmt.Errorf("appointment %s is not visible to user %s", appointmentID, session.UserID))
}

// publish never fails the request; a lost notification is only logged.
func (uc *appointmentUsecase) publish(ctx context.Context, event string, appointment *models.Appointment) {
	if uc.NotificationPublisher == nil {
		return
	}
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	err := uc.NotificationPublisher.Publish(ctx, &models.NotificationEvent{
		Event:         event,
		AppointmentID: appointment.ID,
		UserID:        appointment.PatientOwnerID,
		DoctorID:      appointment.DoctorID,
		PatientName:   appointment.PatientName,
		Date:          utils.FormatDate(appointment.AppointmentDate),
		StartTime:     appointment.StartTime,
		Status:        appointment.Status,
		OccurredAt:    uc.now().UTC(),
	})
	if err != nil {
		uc.Metrics.ObserveNotificationFailure()
		uc.Log.Error("appointmentUsecase.publish error publishing notification",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingEventKey, event),
			zap.Error(err),
		)
	}
}

func normalizePagination(page, limit int) (int, int) {
	if page < 1 {
		page = constvars.AppDefaultPage
	}
	if limit < 1 {
		limit = constvars.AppDefaultPageSize
	}
	if limit > constvars.AppMaxPageSize {
		limit = constvars.AppMaxPageSize
	}
	return page, limit
}
