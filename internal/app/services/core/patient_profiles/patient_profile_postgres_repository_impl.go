package patient_profiles

import (
	"context"
	"database/sql"
	"errors"
	"medbook-service/internal/app/contracts"
	"medbook-service/internal/app/models"
	"medbook-service/internal/pkg/constvars"
	"medbook-service/internal/pkg/exceptions"
	"medbook-service/internal/pkg/queries"
	"sync"

	"github.com/lib/pq"
	"go.uber.org/zap"
)

type patientProfilePostgresRepository struct {
	DB  *sql.DB
	Log *zap.Logger
}

var (
	patientProfilePostgresRepositoryInstance contracts.PatientProfileRepository
	oncePatientProfilePostgresRepository     sync.Once
)

func NewPatientProfilePostgresRepository(db *sql.DB, logger *zap.Logger) contracts.PatientProfileRepository {
	oncePatientProfilePostgresRepository.Do(func() {
		patientProfilePostgresRepositoryInstance = &patientProfilePostgresRepository{
			DB:  db,
			Log: logger,
		}
	})
	return patientProfilePostgresRepositoryInstance
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanPatientProfile(row rowScanner) (*models.PatientProfile, error) {
	var profile models.PatientProfile
	var dateOfBirth sql.NullTime
	err := row.Scan(
		&profile.ID, &profile.UserID, &profile.FullName, &profile.Relationship, &profile.Gender, &dateOfBirth,
		&profile.PhoneNumber, &profile.InsuranceNumber, &profile.Address,
		&profile.CreatedAt, &profile.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if dateOfBirth.Valid {
		profile.DateOfBirth = &dateOfBirth.Time
	}
	return &profile, nil
}

func (r *patientProfilePostgresRepository) FindAllByUserID(ctx context.Context, userID string) ([]models.PatientProfile, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	r.Log.Info("patientProfilePostgresRepository.FindAllByUserID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, userID),
	)

	rows, err := r.DB.QueryContext(ctx, queries.FindPatientProfilesByUserIDQuery, userID)
	if err != nil {
		r.Log.Error("patientProfilePostgresRepository.FindAllByUserID error querying",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	defer rows.Close()

	profiles := make([]models.PatientProfile, 0)
	for rows.Next() {
		profile, err := scanPatientProfile(rows)
		if err != nil {
			r.Log.Error("patientProfilePostgresRepository.FindAllByUserID error scanning row",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return nil, exceptions.ErrPostgresDBFindData(err)
		}
		profiles = append(profiles, *profile)
	}
	if err := rows.Err(); err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}

	r.Log.Info("patientProfilePostgresRepository.FindAllByUserID succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(profiles)),
	)
	return profiles, nil
}

func (r *patientProfilePostgresRepository) FindByID(ctx context.Context, profileID string) (*models.PatientProfile, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	r.Log.Info("patientProfilePostgresRepository.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientProfileIDKey, profileID),
	)

	profile, err := scanPatientProfile(r.DB.QueryRowContext(ctx, queries.FindPatientProfileByIDQuery, profileID))
	if err != nil {
		if err == sql.ErrNoRows {
			r.Log.Warn("patientProfilePostgresRepository.FindByID no rows found",
				zap.String(constvars.LoggingRequestIDKey, requestID),
			)
			return nil, nil
		}
		r.Log.Error("patientProfilePostgresRepository.FindByID error scanning row",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	return profile, nil
}

func (r *patientProfilePostgresRepository) Create(ctx context.Context, profile *models.PatientProfile) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	r.Log.Info("patientProfilePostgresRepository.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, profile.UserID),
	)

	err := r.DB.QueryRowContext(ctx, queries.InsertPatientProfileQuery,
		profile.ID, profile.UserID, profile.FullName, profile.Relationship, profile.Gender,
		profile.DateOfBirth, profile.PhoneNumber, profile.InsuranceNumber, profile.Address,
	).Scan(&profile.CreatedAt, &profile.UpdatedAt)
	if err != nil {
		r.Log.Error("patientProfilePostgresRepository.Create error inserting profile",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrPostgresDBInsertData(err)
	}

	r.Log.Info("patientProfilePostgresRepository.Create succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientProfileIDKey, profile.ID),
	)
	return nil
}

func (r *patientProfilePostgresRepository) Update(ctx context.Context, profile *models.PatientProfile) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	r.Log.Info("patientProfilePostgresRepository.Update called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientProfileIDKey, profile.ID),
	)

	err := r.DB.QueryRowContext(ctx, queries.UpdatePatientProfileQuery,
		profile.FullName, profile.Relationship, profile.Gender, profile.DateOfBirth,
		profile.PhoneNumber, profile.InsuranceNumber, profile.Address, profile.ID,
	).Scan(&profile.UpdatedAt)
	if err != nil {
		r.Log.Error("patientProfilePostgresRepository.Update error updating profile",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrPostgresDBUpdateData(err)
	}
	return nil
}

func (r *patientProfilePostgresRepository) Delete(ctx context.Context, profileID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	r.Log.Info("patientProfilePostgresRepository.Delete called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientProfileIDKey, profileID),
	)

	_, err := r.DB.ExecContext(ctx, queries.DeletePatientProfileQuery, profileID)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == queries.PostgresForeignKeyViolation {
			r.Log.Warn("patientProfilePostgresRepository.Delete profile still referenced by appointments",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			// At least one appointment was booked after the usecase counted.
			return exceptions.ErrPatientProfileHasAppointments(1)
		}
		r.Log.Error("patientProfilePostgresRepository.Delete error deleting profile",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrPostgresDBDeleteData(err)
	}

	r.Log.Info("patientProfilePostgresRepository.Delete succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientProfileIDKey, profileID),
	)
	return nil
}
