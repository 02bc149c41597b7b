package contracts

import (
	"context"
	"medbook-service/internal/app/models"
	"medbook-service/internal/pkg/dto/requests"
	"medbook-service/internal/pkg/dto/responses"
)

type UserRepository interface {
	FindByID(ctx context.Context, userID string) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	CreateWithSelfProfile(ctx context.Context, user *models.User, profile *models.PatientProfile) error
	Update(ctx context.Context, user *models.User) error
	UpdateAvatar(ctx context.Context, userID, avatarObject string) error
}

type UserUsecase interface {
	GetUserProfileBySession(ctx context.Context, session *models.Session) (*responses.UserProfile, error)
	UpdateUserBySession(ctx context.Context, session *models.Session, request *requests.UpdateProfile) (*responses.UserProfile, error)
	UploadAvatar(ctx context.Context, session *models.Session, request *requests.UploadAvatar) (*responses.UploadAvatar, error)
}
