package contracts

import (
	"context"
	"medbook-service/internal/app/models"
	"medbook-service/internal/pkg/dto/requests"
	"medbook-service/internal/pkg/dto/responses"
)

type PatientProfileRepository interface {
	FindAllByUserID(ctx context.Context, userID string) ([]models.PatientProfile, error)
	FindByID(ctx context.Context, profileID string) (*models.PatientProfile, error)
	Create(ctx context.Context, profile *models.PatientProfile) error
	Update(ctx context.Context, profile *models.PatientProfile) error
	Delete(ctx context.Context, profileID string) error
}

type PatientProfileUsecase interface {
	FindAll(ctx context.Context, session *models.Session) ([]responses.PatientProfile, error)
	FindByID(ctx context.Context, session *models.Session, profileID string) (*responses.PatientProfile, error)
	Create(ctx context.Context, session *models.Session, request *requests.CreatePatientProfile) (*responses.PatientProfile, error)
	Update(ctx context.Context, session *models.Session, profileID string, request *requests.UpdatePatientProfile) (*responses.PatientProfile, error)
	Delete(ctx context.Context, session *models.Session, profileID string) error
}
