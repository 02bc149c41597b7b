package catalog

import (
	"context"
	"database/sql"
	"medbook-service/internal/app/contracts"
	"medbook-service/internal/app/models"
	"medbook-service/internal/pkg/constvars"
	"medbook-service/internal/pkg/exceptions"
	"medbook-service/internal/pkg/queries"
	"sync"
	"time"

	"go.uber.org/zap"
)

type catalogPostgresRepository struct {
	DB  *sql.DB
	Log *zap.Logger
}

var (
	catalogPostgresRepositoryInstance contracts.CatalogRepository
	onceCatalogPostgresRepository     sync.Once
)

func NewCatalogPostgresRepository(db *sql.DB, logger *zap.Logger) contracts.CatalogRepository {
	onceCatalogPostgresRepository.Do(func() {
		catalogPostgresRepositoryInstance = &catalogPostgresRepository{
			DB:  db,
			Log: logger,
		}
	})
	return catalogPostgresRepositoryInstance
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

// queryAll runs query and hands every row to scan.
func (r *catalogPostgresRepository) queryAll(ctx context.Context, caller string, scan func(rowScanner) error, query string, args ...interface{}) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	r.Log.Info(caller+" called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		r.Log.Error(caller+" error querying",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrPostgresDBFindData(err)
	}
	defer rows.Close()

	for rows.Next() {
		if err := scan(rows); err != nil {
			r.Log.Error(caller+" error scanning row",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return exceptions.ErrPostgresDBFindData(err)
		}
	}
	if err := rows.Err(); err != nil {
		return exceptions.ErrPostgresDBFindData(err)
	}
	return nil
}

func (r *catalogPostgresRepository) FindAllClinics(ctx context.Context) ([]models.Clinic, error) {
	clinics := make([]models.Clinic, 0)
	err := r.queryAll(ctx, "catalogPostgresRepository.FindAllClinics", func(row rowScanner) error {
		var clinic models.Clinic
		if err := row.Scan(&clinic.ID, &clinic.Name, &clinic.Address, &clinic.PhoneNumber); err != nil {
			return err
		}
		clinics = append(clinics, clinic)
		return nil
	}, queries.FindAllClinicsQuery)
	if err != nil {
		return nil, err
	}
	return clinics, nil
}

func scanDoctor(row rowScanner) (*models.Doctor, error) {
	var doctor models.Doctor
	err := row.Scan(&doctor.ID, &doctor.ClinicID, &doctor.ClinicName, &doctor.FullName, &doctor.Specialty, &doctor.Description)
	if err != nil {
		return nil, err
	}
	return &doctor, nil
}

func (r *catalogPostgresRepository) FindAllDoctors(ctx context.Context, clinicID string) ([]models.Doctor, error) {
	query, args := queries.FindAllDoctorsQuery, []interface{}{}
	if clinicID != "" {
		query, args = queries.FindDoctorsByClinicIDQuery, []interface{}{clinicID}
	}

	doctors := make([]models.Doctor, 0)
	err := r.queryAll(ctx, "catalogPostgresRepository.FindAllDoctors", func(row rowScanner) error {
		doctor, err := scanDoctor(row)
		if err != nil {
			return err
		}
		doctors = append(doctors, *doctor)
		return nil
	}, query, args...)
	if err != nil {
		return nil, err
	}
	return doctors, nil
}

func (r *catalogPostgresRepository) FindDoctorByID(ctx context.Context, doctorID string) (*models.Doctor, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	r.Log.Info("catalogPostgresRepository.FindDoctorByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, doctorID),
	)

	doctor, err := scanDoctor(r.DB.QueryRowContext(ctx, queries.FindDoctorByIDQuery, doctorID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		r.Log.Error("catalogPostgresRepository.FindDoctorByID error scanning row",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	return doctor, nil
}

func (r *catalogPostgresRepository) FindAllServices(ctx context.Context) ([]models.Service, error) {
	services := make([]models.Service, 0)
	err := r.queryAll(ctx, "catalogPostgresRepository.FindAllServices", func(row rowScanner) error {
		var service models.Service
		if err := row.Scan(&service.ID, &service.Name, &service.Description, &service.DurationMinutes, &service.Price); err != nil {
			return err
		}
		services = append(services, service)
		return nil
	}, queries.FindAllServicesQuery)
	if err != nil {
		return nil, err
	}
	return services, nil
}

func scanDoctorService(row rowScanner) (*models.DoctorService, error) {
	var doctorService models.DoctorService
	var priceOverride sql.NullInt64
	err := row.Scan(
		&doctorService.ID, &doctorService.DoctorID, &doctorService.DoctorName, &doctorService.ClinicID, &priceOverride,
		&doctorService.Service.ID, &doctorService.Service.Name, &doctorService.Service.Description,
		&doctorService.Service.DurationMinutes, &doctorService.Service.Price,
	)
	if err != nil {
		return nil, err
	}
	if priceOverride.Valid {
		doctorService.PriceOverride = &priceOverride.Int64
	}
	return &doctorService, nil
}

func (r *catalogPostgresRepository) FindDoctorServiceByID(ctx context.Context, doctorServiceID string) (*models.DoctorService, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	r.Log.Info("catalogPostgresRepository.FindDoctorServiceByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorServiceIDKey, doctorServiceID),
	)

	doctorService, err := scanDoctorService(r.DB.QueryRowContext(ctx, queries.FindDoctorServiceByIDQuery, doctorServiceID))
	if err != nil {
		if err == sql.ErrNoRows {
			r.Log.Warn("catalogPostgresRepository.FindDoctorServiceByID no rows found",
				zap.String(constvars.LoggingRequestIDKey, requestID),
			)
			return nil, nil
		}
		r.Log.Error("catalogPostgresRepository.FindDoctorServiceByID error scanning row",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	return doctorService, nil
}

func (r *catalogPostgresRepository) FindDoctorServicesByDoctorID(ctx context.Context, doctorID string) ([]models.DoctorService, error) {
	doctorServices := make([]models.DoctorService, 0)
	err := r.queryAll(ctx, "catalogPostgresRepository.FindDoctorServicesByDoctorID", func(row rowScanner) error {
		doctorService, err := scanDoctorService(row)
		if err != nil {
			return err
		}
		doctorServices = append(doctorServices, *doctorService)
		return nil
	}, queries.FindDoctorServicesByDoctorIDQuery, doctorID)
	if err != nil {
		return nil, err
	}
	return doctorServices, nil
}

func (r *catalogPostgresRepository) FindWorkingHoursByDoctorServiceID(ctx context.Context, doctorServiceID string) ([]models.WorkingHour, error) {
	hours := make([]models.WorkingHour, 0)
	err := r.queryAll(ctx, "catalogPostgresRepository.FindWorkingHoursByDoctorServiceID", func(row rowScanner) error {
		var hour models.WorkingHour
		var weekday int
		if err := row.Scan(&hour.DoctorServiceID, &weekday, &hour.StartTime, &hour.EndTime); err != nil {
			return err
		}
		hour.Weekday = time.Weekday(weekday)
		hours = append(hours, hour)
		return nil
	}, queries.FindWorkingHoursByDoctorServiceIDQuery, doctorServiceID)
	if err != nil {
		return nil, err
	}
	return hours, nil
}
