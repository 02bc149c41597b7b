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

type CatalogController struct {
	Log            *zap.Logger
	CatalogUsecase contracts.CatalogUsecase
	InternalConfig *config.InternalConfig
}

var (
	catalogControllerInstance *CatalogController
	onceCatalogController     sync.Once
)

func NewCatalogController(logger *zap.Logger, catalogUsecase contracts.CatalogUsecase, internalConfig *config.InternalConfig) *CatalogController {
	onceCatalogController.Do(func() {
		catalogControllerInstance = &CatalogController{
			Log:            logger,
			CatalogUsecase: catalogUsecase,
			InternalConfig: internalConfig,
		}
	})
	return catalogControllerInstance
}

func (ctrl *CatalogController) FindAllClinics(w http.ResponseWriter, r *http.Request) {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	ctx, cancel := requestContext(r, ctrl.InternalConfig)
	defer cancel()

	result, err := ctrl.CatalogUsecase.FindAllClinics(ctx)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, requestID, "CatalogController.FindAllClinics", err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetClinicsSuccessMessage, result)
}

func (ctrl *CatalogController) FindAllDoctors(w http.ResponseWriter, r *http.Request) {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	request := &requests.FindAllDoctors{
		ClinicID: r.URL.Query().Get(constvars.QueryParamClinicID),
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInvalidQueryParam(err, constvars.QueryParamClinicID))
		return
	}

	ctx, cancel := requestContext(r, ctrl.InternalConfig)
	defer cancel()

	result, err := ctrl.CatalogUsecase.FindAllDoctors(ctx, request)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, requestID, "CatalogController.FindAllDoctors", err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetDoctorsSuccessMessage, result)
}

func (ctrl *CatalogController) FindDoctorByID(w http.ResponseWriter, r *http.Request) {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	doctorID, err := urlParamID(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := requestContext(r, ctrl.InternalConfig)
	defer cancel()

	result, err := ctrl.CatalogUsecase.FindDoctorByID(ctx, doctorID)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, requestID, "CatalogController.FindDoctorByID", err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetDoctorSuccessMessage, result)
}

func (ctrl *CatalogController) FindAllServices(w http.ResponseWriter, r *http.Request) {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	ctx, cancel := requestContext(r, ctrl.InternalConfig)
	defer cancel()

	result, err := ctrl.CatalogUsecase.FindAllServices(ctx)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, requestID, "CatalogController.FindAllServices", err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetServicesSuccessMessage, result)
}

func (ctrl *CatalogController) FindDoctorServiceByID(w http.ResponseWriter, r *http.Request) {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	doctorServiceID, err := urlParamID(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := requestContext(r, ctrl.InternalConfig)
	defer cancel()

	result, err := ctrl.CatalogUsecase.FindDoctorServiceByID(ctx, doctorServiceID)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, requestID, "CatalogController.FindDoctorServiceByID", err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetDoctorServiceSuccessMessage, result)
}
