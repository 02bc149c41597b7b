package controllers

import (
	"context"
	"medbook-service/internal/app/config"
	"medbook-service/internal/app/contracts"
	"medbook-service/internal/app/models"
	"medbook-service/internal/pkg/constvars"
	"medbook-service/internal/pkg/dto/requests"
	"medbook-service/internal/pkg/dto/responses"
	"medbook-service/internal/pkg/exceptions"
	"medbook-service/internal/pkg/utils"
	"net/http"
	"strings"
	"sync"

	"go.uber.org/zap"
)

type AppointmentController struct {
	Log                *zap.Logger
	AppointmentUsecase contracts.AppointmentUsecase
	InternalConfig     *config.InternalConfig
}

var (
	appointmentControllerInstance *AppointmentController
	onceAppointmentController     sync.Once
)

func NewAppointmentController(logger *zap.Logger, appointmentUsecase contracts.AppointmentUsecase, internalConfig *config.InternalConfig) *AppointmentController {
	onceAppointmentController.Do(func() {
		appointmentControllerInstance = &AppointmentController{
			Log:                logger,
			AppointmentUsecase: appointmentUsecase,
			InternalConfig:     internalConfig,
		}
	})
	return appointmentControllerInstance
}

func (ctrl *AppointmentController) FindAll(w http.ResponseWriter, r *http.Request) {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	ctrl.Log.Info("AppointmentController.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQueryKey, r.URL.RawQuery),
	)

	request, err := parseFindAllAppointments(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	session, err := sessionFromContext(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := requestContext(r, ctrl.InternalConfig)
	defer cancel()

	result, err := ctrl.AppointmentUsecase.FindAll(ctx, session, request)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, requestID, "AppointmentController.FindAll", err)
		return
	}

	pagination := utils.BuildPaginationResponse(result.Total, result.Page, result.Limit, r.URL.Path)
	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, constvars.GetAppointmentsSuccessMessage, pagination, result.Appointments)
}

func parseFindAllAppointments(r *http.Request) (*requests.FindAllAppointments, error) {
	query := r.URL.Query()

	page, err := queryInt(r, constvars.QueryParamPage)
	if err != nil {
		return nil, err
	}
	limit, err := queryInt(r, constvars.QueryParamLimit)
	if err != nil {
		return nil, err
	}

	request := &requests.FindAllAppointments{
		Page:          page,
		Limit:         limit,
		Status:        strings.ToLower(strings.TrimSpace(query.Get(constvars.QueryParamStatus))),
		PaymentStatus: strings.ToLower(strings.TrimSpace(query.Get(constvars.QueryParamPaymentStatus))),
		DoctorID:      strings.TrimSpace(query.Get(constvars.QueryParamDoctorID)),
		PatientID:     strings.TrimSpace(query.Get(constvars.QueryParamPatientID)),
		DateFrom:      strings.TrimSpace(query.Get(constvars.QueryParamDateFrom)),
		DateTo:        strings.TrimSpace(query.Get(constvars.QueryParamDateTo)),
	}
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}
	return request, nil
}

func (ctrl *AppointmentController) FindByID(w http.ResponseWriter, r *http.Request) {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	ctrl.Log.Info("AppointmentController.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	appointmentID, err := urlParamID(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	session, err := sessionFromContext(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := requestContext(r, ctrl.InternalConfig)
	defer cancel()

	result, err := ctrl.AppointmentUsecase.FindByID(ctx, session, appointmentID)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, requestID, "AppointmentController.FindByID", err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetAppointmentSuccessMessage, result)
}

func (ctrl *AppointmentController) Update(w http.ResponseWriter, r *http.Request) {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	ctrl.Log.Info("AppointmentController.Update called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	appointmentID, err := urlParamID(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := new(requests.UpdateAppointment)
	if err := decodeJSON(r, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.SanitizeUpdateAppointmentRequest(request)

	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	session, err := sessionFromContext(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := requestContext(r, ctrl.InternalConfig)
	defer cancel()

	result, err := ctrl.AppointmentUsecase.Update(ctx, session, appointmentID, request)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, requestID, "AppointmentController.Update", err)
		return
	}

	ctrl.Log.Info("AppointmentController.Update succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateAppointmentSuccessMessage, result)
}

func (ctrl *AppointmentController) Delete(w http.ResponseWriter, r *http.Request) {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	ctrl.Log.Info("AppointmentController.Delete called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	appointmentID, err := urlParamID(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	session, err := sessionFromContext(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := requestContext(r, ctrl.InternalConfig)
	defer cancel()

	err = ctrl.AppointmentUsecase.Delete(ctx, session, appointmentID)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, requestID, "AppointmentController.Delete", err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeleteAppointmentSuccessMessage, nil)
}

func (ctrl *AppointmentController) Cancel(w http.ResponseWriter, r *http.Request) {
	ctrl.transition(w, r, "AppointmentController.Cancel", ctrl.AppointmentUsecase.Cancel, constvars.CancelAppointmentSuccessMessage)
}

func (ctrl *AppointmentController) Complete(w http.ResponseWriter, r *http.Request) {
	ctrl.transition(w, r, "AppointmentController.Complete", ctrl.AppointmentUsecase.Complete, constvars.CompleteAppointmentSuccessMessage)
}

type transitionFunc func(ctx context.Context, session *models.Session, appointmentID string) (*responses.Appointment, error)

func (ctrl *AppointmentController) transition(w http.ResponseWriter, r *http.Request, caller string, apply transitionFunc, successMessage string) {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	ctrl.Log.Info(caller+" called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	appointmentID, err := urlParamID(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	session, err := sessionFromContext(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := requestContext(r, ctrl.InternalConfig)
	defer cancel()

	result, err := apply(ctx, session, appointmentID)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, requestID, caller, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, successMessage, result)
}

func (ctrl *AppointmentController) GetDoctorAvailability(w http.ResponseWriter, r *http.Request) {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	ctrl.Log.Info("AppointmentController.GetDoctorAvailability called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQueryKey, r.URL.RawQuery),
	)

	request := &requests.DoctorAvailability{
		DoctorServiceID: strings.TrimSpace(r.URL.Query().Get(constvars.QueryParamDoctorServiceID)),
		Date:            strings.TrimSpace(r.URL.Query().Get(constvars.QueryParamDate)),
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := requestContext(r, ctrl.InternalConfig)
	defer cancel()

	result, err := ctrl.AppointmentUsecase.GetDoctorAvailability(ctx, request)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, requestID, "AppointmentController.GetDoctorAvailability", err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetDoctorAvailabilitySuccessMessage, result)
}

func (ctrl *AppointmentController) CreateBooking(w http.ResponseWriter, r *http.Request) {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	ctrl.Log.Info("AppointmentController.CreateBooking called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	request := new(requests.CreateAppointment)
	if err := decodeJSON(r, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request.Note = strings.TrimSpace(request.Note)
	if request.Patient != nil {
		utils.SanitizeCreatePatientProfileRequest(request.Patient)
	}

	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	session, err := sessionFromContext(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := requestContext(r, ctrl.InternalConfig)
	defer cancel()

	result, err := ctrl.AppointmentUsecase.CreateBooking(ctx, session, request)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, requestID, "AppointmentController.CreateBooking", err)
		return
	}

	ctrl.Log.Info("AppointmentController.CreateBooking succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, result.ID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateAppointmentSuccessMessage, result)
}
