package users

import (
	"bytes"
	"context"
	"medbook-service/internal/app/config"
	"medbook-service/internal/app/contracts"
	"medbook-service/internal/app/models"
	"medbook-service/internal/pkg/constvars"
	"medbook-service/internal/pkg/dto/requests"
	"medbook-service/internal/pkg/dto/responses"
	"medbook-service/internal/pkg/exceptions"
	"medbook-service/internal/pkg/utils"
	"sync"
	"time"

	"go.uber.org/zap"
)

type userUsecase struct {
	UserRepository contracts.UserRepository
	MinioStorage   contracts.Storage
	InternalConfig *config.InternalConfig
	Log            *zap.Logger
}

var (
	userUsecaseInstance contracts.UserUsecase
	onceUserUsecase     sync.Once
)

func NewUserUsecase(
	userRepository contracts.UserRepository,
	minioStorage contracts.Storage,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.UserUsecase {
	onceUserUsecase.Do(func() {
		userUsecaseInstance = &userUsecase{
			UserRepository: userRepository,
			MinioStorage:   minioStorage,
			InternalConfig: internalConfig,
			Log:            logger,
		}
	})
	return userUsecaseInstance
}

func (uc *userUsecase) GetUserProfileBySession(ctx context.Context, session *models.Session) (*responses.UserProfile, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("userUsecase.GetUserProfileBySession called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, session.UserID),
	)

	user, err := uc.findUser(ctx, session.UserID)
	if err != nil {
		return nil, err
	}

	return uc.buildProfileResponse(ctx, user)
}

func (uc *userUsecase) UpdateUserBySession(ctx context.Context, session *models.Session, request *requests.UpdateProfile) (*responses.UserProfile, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("userUsecase.UpdateUserBySession called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, session.UserID),
	)

	user, err := uc.findUser(ctx, session.UserID)
	if err != nil {
		return nil, err
	}

	// Only supplied fields overwrite the stored profile
	if request.FullName != nil {
		user.FullName = *request.FullName
	}
	if request.PhoneNumber != nil {
		user.PhoneNumber = *request.PhoneNumber
	}
	if request.Gender != nil {
		user.Gender = *request.Gender
	}
	if request.Address != nil {
		user.Address = *request.Address
	}
	if request.DateOfBirth != nil {
		if *request.DateOfBirth == "" {
			user.DateOfBirth = nil
		} else {
			dateOfBirth, err := utils.ParseDate(*request.DateOfBirth, time.UTC)
			if err != nil {
				return nil, exceptions.ErrInputValidation(err)
			}
			user.DateOfBirth = &dateOfBirth
		}
	}

	err = uc.UserRepository.Update(ctx, user)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("userUsecase.UpdateUserBySession succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, user.ID),
	)
	return uc.buildProfileResponse(ctx, user)
}

// UploadAvatar stores the image and then points the user at it. A failed
// profile update leaves the uploaded object in place.
func (uc *userUsecase) UploadAvatar(ctx context.Context, session *models.Session, request *requests.UploadAvatar) (*responses.UploadAvatar, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("userUsecase.UploadAvatar called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, session.UserID),
	)

	user, err := uc.findUser(ctx, session.UserID)
	if err != nil {
		return nil, err
	}

	bucketName := uc.InternalConfig.Minio.BucketName
	objectName := utils.GenerateFileName(constvars.ObjectAvatarPrefix, user.ID, request.Extension)
	_, err = uc.MinioStorage.UploadFile(
		ctx,
		bytes.NewReader(request.Data),
		int64(len(request.Data)),
		bucketName,
		objectName,
		request.ContentType,
	)
	if err != nil {
		uc.Log.Error("userUsecase.UploadAvatar error uploading to object storage",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingBucketNameKey, bucketName),
			zap.Error(err),
		)
		return nil, err
	}

	err = uc.UserRepository.UpdateAvatar(ctx, user.ID, objectName)
	if err != nil {
		return nil, err
	}

	avatarURL, err := uc.presignAvatar(ctx, objectName)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("userUsecase.UploadAvatar succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingObjectNameKey, objectName),
	)
	return &responses.UploadAvatar{AvatarURL: avatarURL}, nil
}

func (uc *userUsecase) findUser(ctx context.Context, userID string) (*models.User, error) {
	user, err := uc.UserRepository.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, exceptions.ErrUserNotFound(nil)
	}
	return user, nil
}

func (uc *userUsecase) buildProfileResponse(ctx context.Context, user *models.User) (*responses.UserProfile, error) {
	var avatarURL string
	if user.AvatarObject != "" {
		url, err := uc.presignAvatar(ctx, user.AvatarObject)
		if err != nil {
			return nil, err
		}
		avatarURL = url
	}

	response := user.ConvertIntoResponse(avatarURL)
	return &response, nil
}

func (uc *userUsecase) presignAvatar(ctx context.Context, objectName string) (string, error) {
	expiry := time.Duration(uc.InternalConfig.Minio.PreSignedUrlObjectExpiryInHours) * time.Hour
	return uc.MinioStorage.GetObjectUrlWithExpiryTime(ctx, uc.InternalConfig.Minio.BucketName, objectName, expiry)
}
