package contracts

import (
	"context"
	"medbook-service/internal/app/models"
	"medbook-service/internal/pkg/dto/requests"
	"medbook-service/internal/pkg/dto/responses"
)

type CatalogRepository interface {
	FindAllClinics(ctx context.Context) ([]models.Clinic, error)
	FindAllDoctors(ctx context.Context, clinicID string) ([]models.Doctor, error)
	FindDoctorByID(ctx context.Context, doctorID string) (*models.Doctor, error)
	FindAllServices(ctx context.Context) ([]models.Service, error)
	FindDoctorServiceByID(ctx context.Context, doctorServiceID string) (*models.DoctorService, error)
	FindDoctorServicesByDoctorID(ctx context.Context, doctorID string) ([]models.DoctorService, error)
	FindWorkingHoursByDoctorServiceID(ctx context.Context, doctorServiceID string) ([]models.WorkingHour, error)
}

type CatalogUsecase interface {
	FindAllClinics(ctx context.Context) ([]responses.Clinic, error)
	FindAllDoctors(ctx context.Context, request *requests.FindAllDoctors) ([]responses.Doctor, error)
	FindDoctorByID(ctx context.Context, doctorID string) (*responses.Doctor, error)
	FindAllServices(ctx context.Context) ([]responses.Service, error)
	FindDoctorServiceByID(ctx context.Context, doctorServiceID string) (*responses.DoctorService, error)
}
