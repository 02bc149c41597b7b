package catalog

import (
	"context"
	"medbook-service/internal/app/contracts"
	"medbook-service/internal/pkg/dto/requests"
	"medbook-service/internal/pkg/dto/responses"
	"medbook-service/internal/pkg/exceptions"

	"go.uber.org/zap"
)

type catalogUsecase struct {
	CatalogRepository contracts.CatalogRepository
	Log               *zap.Logger
}

func NewCatalogUsecase(catalogRepository contracts.CatalogRepository, logger *zap.Logger) contracts.CatalogUsecase {
	return &catalogUsecase{
		CatalogRepository: catalogRepository,
		Log:               logger,
	}
}

func (uc *catalogUsecase) FindAllClinics(ctx context.Context) ([]responses.Clinic, error) {
	clinics, err := uc.CatalogRepository.FindAllClinics(ctx)
	if err != nil {
		return nil, err
	}

	response := make([]responses.Clinic, len(clinics))
	for i, eachClinic := range clinics {
		response[i] = eachClinic.ConvertIntoResponse()
	}
	return response, nil
}

func (uc *catalogUsecase) FindAllDoctors(ctx context.Context, request *requests.FindAllDoctors) ([]responses.Doctor, error) {
	doctors, err := uc.CatalogRepository.FindAllDoctors(ctx, request.ClinicID)
	if err != nil {
		return nil, err
	}

	response := make([]responses.Doctor, len(doctors))
	for i, eachDoctor := range doctors {
		response[i] = eachDoctor.ConvertIntoResponse()
	}
	return response, nil
}

func (uc *catalogUsecase) FindDoctorByID(ctx context.Context, doctorID string) (*responses.Doctor, error) {
	doctor, err := uc.CatalogRepository.FindDoctorByID(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, exceptions.ErrDoctorNotFound(nil)
	}

	doctorServices, err := uc.CatalogRepository.FindDoctorServicesByDoctorID(ctx, doctorID)
	if err != nil {
		return nil, err
	}

	response := doctor.ConvertIntoResponse()
	for _, eachDoctorService := range doctorServices {
		response.Services = append(response.Services, eachDoctorService.ConvertIntoResponse(nil))
	}
	return &response, nil
}

func (uc *catalogUsecase) FindAllServices(ctx context.Context) ([]responses.Service, error) {
	services, err := uc.CatalogRepository.FindAllServices(ctx)
	if err != nil {
		return nil, err
	}

	response := make([]responses.Service, len(services))
	for i, eachService := range services {
		response[i] = eachService.ConvertIntoResponse()
	}
	return response, nil
}

func (uc *catalogUsecase) FindDoctorServiceByID(ctx context.Context, doctorServiceID string) (*responses.DoctorService, error) {
	doctorService, err := uc.CatalogRepository.FindDoctorServiceByID(ctx, doctorServiceID)
	if err != nil {
		return nil, err
	}
	if doctorService == nil {
		return nil, exceptions.ErrDoctorServiceNotFound(nil)
	}

	hours, err := uc.CatalogRepository.FindWorkingHoursByDoctorServiceID(ctx, doctorServiceID)
	if err != nil {
		return nil, err
	}

	response := doctorService.ConvertIntoResponse(hours)
	return &response, nil
}
