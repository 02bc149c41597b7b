package controllers

import (
	"io"
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

type UserController struct {
	Log            *zap.Logger
	UserUsecase    contracts.UserUsecase
	InternalConfig *config.InternalConfig
}

var (
	userControllerInstance *UserController
	onceUserController     sync.Once
)

func NewUserController(logger *zap.Logger, userUsecase contracts.UserUsecase, internalConfig *config.InternalConfig) *UserController {
	onceUserController.Do(func() {
		userControllerInstance = &UserController{
			Log:            logger,
			UserUsecase:    userUsecase,
			InternalConfig: internalConfig,
		}
	})
	return userControllerInstance
}

func (ctrl *UserController) GetUserProfileBySession(w http.ResponseWriter, r *http.Request) {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	ctrl.Log.Info("UserController.GetUserProfileBySession called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	session, err := sessionFromContext(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := requestContext(r, ctrl.InternalConfig)
	defer cancel()

	result, err := ctrl.UserUsecase.GetUserProfileBySession(ctx, session)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, requestID, "UserController.GetUserProfileBySession", err)
		return
	}

	ctrl.Log.Info("UserController.GetUserProfileBySession succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetProfileSuccessMessage, result)
}

func (ctrl *UserController) UpdateUserBySession(w http.ResponseWriter, r *http.Request) {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	ctrl.Log.Info("UserController.UpdateUserBySession called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	request := new(requests.UpdateProfile)
	if err := decodeJSON(r, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.SanitizeUpdateProfileRequest(request)

	if err := utils.ValidateStruct(request); err != nil {
		ctrl.Log.Error("UserController.UpdateUserBySession validation error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
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

	result, err := ctrl.UserUsecase.UpdateUserBySession(ctx, session, request)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, requestID, "UserController.UpdateUserBySession", err)
		return
	}

	ctrl.Log.Info("UserController.UpdateUserBySession succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateProfileSuccessMessage, result)
}

// UploadAvatar expects a multipart form with the image in the "file" field.
func (ctrl *UserController) UploadAvatar(w http.ResponseWriter, r *http.Request) {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	ctrl.Log.Info("UserController.UploadAvatar called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	maxSizeInMB := ctrl.InternalConfig.Minio.AvatarMaxUploadSizeInMB
	// Leave room for the multipart envelope on top of the image itself.
	r.Body = http.MaxBytesReader(w, r.Body, (maxSizeInMB+1)*1024*1024)
	if err := r.ParseMultipartForm(maxSizeInMB * 1024 * 1024); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseMultipartForm(err))
		return
	}

	file, fileHeader, err := r.FormFile(constvars.FormFieldAvatarFile)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseMultipartForm(err))
		return
	}
	defer file.Close()

	ext, err := utils.ValidateImageFile(fileHeader, constvars.ImageAllowedAvatarFormats, maxSizeInMB)
	if err != nil {
		ctrl.Log.Error("UserController.UploadAvatar error validating image",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrImageValidation(err))
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseMultipartForm(err))
		return
	}

	detectedContentType := http.DetectContentType(data)
	if err := utils.ValidateImageContentType(detectedContentType, constvars.ImageAllowedAvatarContentTypes); err != nil {
		ctrl.Log.Error("UserController.UploadAvatar error validating image content",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrImageValidation(err))
		return
	}

	session, err := sessionFromContext(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := requestContext(r, ctrl.InternalConfig)
	defer cancel()

	result, err := ctrl.UserUsecase.UploadAvatar(ctx, session, &requests.UploadAvatar{
		Data:        data,
		Extension:   ext,
		ContentType: detectedContentType,
	})
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, requestID, "UserController.UploadAvatar", err)
		return
	}

	ctrl.Log.Info("UserController.UploadAvatar succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UploadAvatarSuccessMessage, result)
}
