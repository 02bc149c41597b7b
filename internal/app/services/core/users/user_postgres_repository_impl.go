package users

import (
	"context"
	"database/sql"
	"medbook-service/internal/app/contracts"
	"medbook-service/internal/app/models"
	"medbook-service/internal/pkg/constvars"
	"medbook-service/internal/pkg/exceptions"
	"medbook-service/internal/pkg/queries"
	"sync"

	"go.uber.org/zap"
)

type userPostgresRepository struct {
	DB  *sql.DB
	Log *zap.Logger
}

var (
	userPostgresRepositoryInstance contracts.UserRepository
	onceUserPostgresRepository     sync.Once
)

func NewUserPostgresRepository(db *sql.DB, logger *zap.Logger) contracts.UserRepository {
	onceUserPostgresRepository.Do(func() {
		instance := &userPostgresRepository{
			DB:  db,
			Log: logger,
		}
		userPostgresRepositoryInstance = instance
	})
	return userPostgresRepositoryInstance
}

func (r *userPostgresRepository) FindByID(ctx context.Context, userID string) (*models.User, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	r.Log.Info("userPostgresRepository.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, userID),
	)
	return r.findUser(ctx, queries.FindUserByIDQuery, userID)
}

func (r *userPostgresRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	r.Log.Info("userPostgresRepository.FindByEmail called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return r.findUser(ctx, queries.FindUserByEmailQuery, email)
}

// CreateWithSelfProfile inserts the user and its "self" patient profile in
// one transaction.
func (r *userPostgresRepository) CreateWithSelfProfile(ctx context.Context, user *models.User, profile *models.PatientProfile) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	r.Log.Info("userPostgresRepository.CreateWithSelfProfile called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, user.ID),
	)

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		r.Log.Error("userPostgresRepository.CreateWithSelfProfile error beginning transaction",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrPostgresDBBeginTx(err)
	}
	defer tx.Rollback()

	err = tx.QueryRowContext(ctx, queries.InsertUserQuery,
		user.ID, user.Email, user.PasswordHash, user.FullName, user.Role,
	).Scan(&user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		r.Log.Error("userPostgresRepository.CreateWithSelfProfile error inserting user",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrPostgresDBInsertData(err)
	}

	err = tx.QueryRowContext(ctx, queries.InsertPatientProfileQuery,
		profile.ID, profile.UserID, profile.FullName, profile.Relationship, profile.Gender,
		profile.DateOfBirth, profile.PhoneNumber, profile.InsuranceNumber, profile.Address,
	).Scan(&profile.CreatedAt, &profile.UpdatedAt)
	if err != nil {
		r.Log.Error("userPostgresRepository.CreateWithSelfProfile error inserting self profile",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrPostgresDBInsertData(err)
	}

	if err := tx.Commit(); err != nil {
		r.Log.Error("userPostgresRepository.CreateWithSelfProfile error committing transaction",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrPostgresDBCommitTx(err)
	}

	r.Log.Info("userPostgresRepository.CreateWithSelfProfile succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, user.ID),
		zap.String(constvars.LoggingPatientProfileIDKey, profile.ID),
	)
	return nil
}

func (r *userPostgresRepository) Update(ctx context.Context, user *models.User) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	r.Log.Info("userPostgresRepository.Update called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, user.ID),
	)

	err := r.DB.QueryRowContext(ctx, queries.UpdateUserQuery,
		user.FullName, user.PhoneNumber, user.Gender, user.DateOfBirth, user.Address, user.ID,
	).Scan(&user.UpdatedAt)
	if err != nil {
		r.Log.Error("userPostgresRepository.Update error updating user",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingUserIDKey, user.ID),
			zap.Error(err),
		)
		return exceptions.ErrPostgresDBUpdateData(err)
	}

	r.Log.Info("userPostgresRepository.Update succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, user.ID),
	)
	return nil
}

func (r *userPostgresRepository) UpdateAvatar(ctx context.Context, userID, avatarObject string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	r.Log.Info("userPostgresRepository.UpdateAvatar called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, userID),
		zap.String(constvars.LoggingObjectNameKey, avatarObject),
	)

	_, err := r.DB.ExecContext(ctx, queries.UpdateUserAvatarQuery, avatarObject, userID)
	if err != nil {
		r.Log.Error("userPostgresRepository.UpdateAvatar error updating avatar",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingUserIDKey, userID),
			zap.Error(err),
		)
		return exceptions.ErrPostgresDBUpdateData(err)
	}

	r.Log.Info("userPostgresRepository.UpdateAvatar succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, userID),
	)
	return nil
}

func (r *userPostgresRepository) findUser(ctx context.Context, query string, args ...interface{}) (*models.User, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	var user models.User
	var dateOfBirth sql.NullTime
	err := r.DB.QueryRowContext(ctx, query, args...).Scan(
		&user.ID, &user.Email, &user.PasswordHash, &user.FullName, &user.PhoneNumber, &user.Gender,
		&dateOfBirth, &user.Address, &user.AvatarObject, &user.Role,
		&user.DoctorID, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			r.Log.Warn("userPostgresRepository.findUser no rows found",
				zap.String(constvars.LoggingRequestIDKey, requestID),
			)
			return nil, nil
		}
		r.Log.Error("userPostgresRepository.findUser error scanning row",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrPostgresDBFindData(err)
	}

	if dateOfBirth.Valid {
		user.DateOfBirth = &dateOfBirth.Time
	}

	r.Log.Info("userPostgresRepository.findUser succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, user.ID),
	)
	return &user, nil
}
