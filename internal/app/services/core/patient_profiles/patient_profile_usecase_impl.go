package patient_profiles

import (
	"context"
	"medbook-service/internal/app/contracts"
	"medbook-service/internal/app/models"
	"medbook-service/internal/pkg/constvars"
	"medbook-service/internal/pkg/dto/requests"
	"medbook-service/internal/pkg/dto/responses"
	"medbook-service/internal/pkg/exceptions"
	"medbook-service/internal/pkg/utils"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type patientProfileUsecase struct {
	PatientProfileRepository contracts.PatientProfileRepository
	AppointmentRepository    contracts.AppointmentRepository
	Log                      *zap.Logger
}

func NewPatientProfileUsecase(
	patientProfileRepository contracts.PatientProfileRepository,
	appointmentRepository contracts.AppointmentRepository,
	logger *zap.Logger,
) contracts.PatientProfileUsecase {
	return &patientProfileUsecase{
		PatientProfileRepository: patientProfileRepository,
		AppointmentRepository:    appointmentRepository,
		Log:                      logger,
	}
}

func (uc *patientProfileUsecase) FindAll(ctx context.Context, session *models.Session) ([]responses.PatientProfile, error) {
	profiles, err := uc.PatientProfileRepository.FindAllByUserID(ctx, session.UserID)
	if err != nil {
		return nil, err
	}

	response := make([]responses.PatientProfile, len(profiles))
	for i, eachProfile := range profiles {
		response[i] = eachProfile.ConvertIntoResponse()
	}
	return response, nil
}

func (uc *patientProfileUsecase) FindByID(ctx context.Context, session *models.Session, profileID string) (*responses.PatientProfile, error) {
	profile, err := uc.findOwnedProfile(ctx, session, profileID)
	if err != nil {
		return nil, err
	}

	response := profile.ConvertIntoResponse()
	return &response, nil
}

func (uc *patientProfileUsecase) Create(ctx context.Context, session *models.Session, request *requests.CreatePatientProfile) (*responses.PatientProfile, error) {
	profile, err := BuildPatientProfile(session.UserID, request)
	if err != nil {
		return nil, err
	}

	err = uc.PatientProfileRepository.Create(ctx, profile)
	if err != nil {
		return nil, err
	}

	response := profile.ConvertIntoResponse()
	return &response, nil
}

func (uc *patientProfileUsecase) Update(ctx context.Context, session *models.Session, profileID string, request *requests.UpdatePatientProfile) (*responses.PatientProfile, error) {
	profile, err := uc.findOwnedProfile(ctx, session, profileID)
	if err != nil {
		return nil, err
	}

	if request.FullName != nil {
		profile.FullName = *request.FullName
	}
	if request.Relationship != nil {
		profile.Relationship = *request.Relationship
	}
	if request.Gender != nil {
		profile.Gender = *request.Gender
	}
	if request.PhoneNumber != nil {
		profile.PhoneNumber = *request.PhoneNumber
	}
	if request.InsuranceNumber != nil {
		profile.InsuranceNumber = *request.InsuranceNumber
	}
	if request.Address != nil {
		profile.Address = *request.Address
	}
	if request.DateOfBirth != nil {
		profile.DateOfBirth, err = parseOptionalDate(*request.DateOfBirth)
		if err != nil {
			return nil, err
		}
	}

	err = uc.PatientProfileRepository.Update(ctx, profile)
	if err != nil {
		return nil, err
	}

	response := profile.ConvertIntoResponse()
	return &response, nil
}

// Delete refuses to remove a profile that any appointment still refers to.
func (uc *patientProfileUsecase) Delete(ctx context.Context, session *models.Session, profileID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("patientProfileUsecase.Delete called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientProfileIDKey, profileID),
	)

	profile, err := uc.findOwnedProfile(ctx, session, profileID)
	if err != nil {
		return err
	}

	count, err := uc.AppointmentRepository.CountByPatientProfileID(ctx, profile.ID)
	if err != nil {
		return err
	}
	if count > 0 {
		uc.Log.Info("patientProfileUsecase.Delete rejected, profile has appointments",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingCountKey, count),
		)
		return exceptions.ErrPatientProfileHasAppointments(count)
	}

	return uc.PatientProfileRepository.Delete(ctx, profile.ID)
}

func (uc *patientProfileUsecase) findOwnedProfile(ctx context.Context, session *models.Session, profileID string) (*models.PatientProfile, error) {
	profile, err := uc.PatientProfileRepository.FindByID(ctx, profileID)
	if err != nil {
		return nil, err
	}
	// Another user's profile is reported as missing
	if profile == nil || profile.UserID != session.UserID {
		return nil, exceptions.ErrPatientProfileNotFound(nil)
	}
	return profile, nil
}

// BuildPatientProfile turns a create request into a new profile owned by
// userID. The booking flow uses it for inline patients.
func BuildPatientProfile(userID string, request *requests.CreatePatientProfile) (*models.PatientProfile, error) {
	dateOfBirth, err := parseOptionalDate(request.DateOfBirth)
	if err != nil {
		return nil, err
	}

	return &models.PatientProfile{
		ID:              uuid.NewString(),
		UserID:          userID,
		FullName:        request.FullName,
		Relationship:    request.Relationship,
		Gender:          request.Gender,
		DateOfBirth:     dateOfBirth,
		PhoneNumber:     request.PhoneNumber,
		InsuranceNumber: request.InsuranceNumber,
		Address:         request.Address,
	}, nil
}

func parseOptionalDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	parsed, err := utils.ParseDate(value, time.UTC)
	if err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}
	return &parsed, nil
}
