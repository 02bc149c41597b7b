package controllers

import (
	"medbook-service/internal/app/config"
	"medbook-service/internal/app/contracts"
	"medbook-service/internal/pkg/constvars"
	"medbook-service/internal/pkg/dto/requests"
	"medbook-service/internal/pkg/exceptions"
	"medbook-service/internal/pkg/utils"
	"net/http"
	"sync"

	"go.uber.org/zap"
)

type PatientProfileController struct {
	Log                   *zap.Logger
	PatientProfileUsecase contracts.PatientProfileUsecase
	InternalConfig        *config.InternalConfig
}

var (
	patientProfileControllerInstance *PatientProfileController
	oncePatientProfileController     sync.Once
)

func NewPatientProfileController(logger *zap.Logger, patientProfileUsecase contracts.PatientProfileUsecase, internalConfig *config.InternalConfig) *PatientProfileController {
	oncePatientProfileController.Do(func() {
		patientProfileControllerInstance = &PatientProfileController{
			Log:                   logger,
			PatientProfileUsecase: patientProfileUsecase,
			InternalConfig:        internalConfig,
		}
	})
	return patientProfileControllerInstance
}

func (ctrl *PatientProfileController) FindAll(w http.ResponseWriter, r *http.Request) {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	ctrl.Log.Info("PatientProfileController.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	session, err := sessionFromContext(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := requestContext(r, ctrl.InternalConfig)
	defer cancel()

	result, err := ctrl.PatientProfileUsecase.FindAll(ctx, session)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, requestID, "PatientProfileController.FindAll", err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetPatientProfilesSuccessMessage, result)
}

func (ctrl *PatientProfileController) FindByID(w http.ResponseWriter, r *http.Request) {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	ctrl.Log.Info("PatientProfileController.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	profileID, err := urlParamID(r)
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

	result, err := ctrl.PatientProfileUsecase.FindByID(ctx, session, profileID)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, requestID, "PatientProfileController.FindByID", err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetPatientProfileSuccessMessage, result)
}

func (ctrl *PatientProfileController) Create(w http.ResponseWriter, r *http.Request) {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	ctrl.Log.Info("PatientProfileController.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	request := new(requests.CreatePatientProfile)
	if err := decodeJSON(r, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.SanitizeCreatePatientProfileRequest(request)

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

	result, err := ctrl.PatientProfileUsecase.Create(ctx, session, request)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, requestID, "PatientProfileController.Create", err)
		return
	}

	ctrl.Log.Info("PatientProfileController.Create succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientProfileIDKey, result.ID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreatePatientProfileSuccessMessage, result)
}

func (ctrl *PatientProfileController) Update(w http.ResponseWriter, r *http.Request) {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	ctrl.Log.Info("PatientProfileController.Update called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	profileID, err := urlParamID(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := new(requests.UpdatePatientProfile)
	if err := decodeJSON(r, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.SanitizeUpdatePatientProfileRequest(request)

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

	result, err := ctrl.PatientProfileUsecase.Update(ctx, session, profileID, request)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, requestID, "PatientProfileController.Update", err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdatePatientProfileSuccessMessage, result)
}

func (ctrl *PatientProfileController) Delete(w http.ResponseWriter, r *http.Request) {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	ctrl.Log.Info("PatientProfileController.Delete called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	profileID, err := urlParamID(r)
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

	err = ctrl.PatientProfileUsecase.Delete(ctx, session, profileID)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, requestID, "PatientProfileController.Delete", err)
		return
	}

	ctrl.Log.Info("PatientProfileController.Delete succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientProfileIDKey, profileID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeletePatientProfileSuccessMessage, nil)
}
