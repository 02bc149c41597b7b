package auth

import (
	"context"
	"medbook-service/internal/app/config"
	"medbook-service/internal/app/models"
	"medbook-service/internal/pkg/constvars"
	"medbook-service/internal/pkg/dto/requests"
	"medbook-service/internal/pkg/exceptions"
	"medbook-service/internal/pkg/utils"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindByID(ctx context.Context, userID string) (*models.User, error) {
	args := m.Called(ctx, userID)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

func (m *MockUserRepository) CreateWithSelfProfile(ctx context.Context, user *models.User, profile *models.PatientProfile) error {
	return m.Called(ctx, user, profile).Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, user *models.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepository) UpdateAvatar(ctx context.Context, userID, avatarObject string) error {
	return m.Called(ctx, userID, avatarObject).Error(0)
}

type MockSessionService struct {
	mock.Mock
}

func (m *MockSessionService) CreateSession(ctx context.Context, user *models.User) (*models.Session, error) {
	args := m.Called(ctx, user)
	session, _ := args.Get(0).(*models.Session)
	return session, args.Error(1)
}

func (m *MockSessionService) GetSessionData(ctx context.Context, sessionID string) (*models.Session, error) {
	args := m.Called(ctx, sessionID)
	session, _ := args.Get(0).(*models.Session)
	return session, args.Error(1)
}

func (m *MockSessionService) DeleteSession(ctx context.Context, sessionID string) error {
	return m.Called(ctx, sessionID).Error(0)
}

func newTestAuthUsecase(userRepo *MockUserRepository, sessions *MockSessionService) *authUsecase {
	return &authUsecase{
		UserRepository: userRepo,
		SessionService: sessions,
		InternalConfig: &config.InternalConfig{JWT: config.AppJWT{Secret: "test-secret"}},
		Log:            zap.NewNop(),
	}
}

func TestAuthUsecase_Register(t *testing.T) {
	request := &requests.Register{Email: "an@example.com", Password: "Secret!123", FullName: "Nguyen Van An"}

	t.Run("Creates Patient With Self Profile", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		uc := newTestAuthUsecase(userRepo, new(MockSessionService))

		userRepo.On("FindByEmail", mock.Anything, request.Email).Return(nil, nil)
		userRepo.On("CreateWithSelfProfile", mock.Anything,
			mock.MatchedBy(func(u *models.User) bool {
				return u.Role == constvars.RolePatient && utils.CheckPasswordHash(request.Password, u.PasswordHash)
			}),
			mock.MatchedBy(func(p *models.PatientProfile) bool {
				return p.Relationship == constvars.RelationshipSelf && p.FullName == request.FullName
			}),
		).Return(nil)

		profile, err := uc.Register(context.Background(), request)

		require.NoError(t, err)
		assert.Equal(t, request.Email, profile.Email)
		assert.Equal(t, constvars.RolePatient, profile.Role)
		userRepo.AssertExpectations(t)
	})

	t.Run("Email Taken", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		uc := newTestAuthUsecase(userRepo, new(MockSessionService))
		userRepo.On("FindByEmail", mock.Anything, request.Email).Return(&models.User{ID: "existing"}, nil)

		_, err := uc.Register(context.Background(), request)

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
		userRepo.AssertNotCalled(t, "CreateWithSelfProfile", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestAuthUsecase_Login(t *testing.T) {
	hashed, err := utils.HashPassword("Secret!123")
	require.NoError(t, err)
	user := &models.User{ID: "user-1", Email: "an@example.com", PasswordHash: hashed, Role: constvars.RolePatient}

	t.Run("Issues Token For Session", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		sessions := new(MockSessionService)
		uc := newTestAuthUsecase(userRepo, sessions)
		expiresAt := time.Now().Add(time.Hour)

		userRepo.On("FindByEmail", mock.Anything, user.Email).Return(user, nil)
		sessions.On("CreateSession", mock.Anything, user).Return(&models.Session{SessionID: "session-1", UserID: user.ID, ExpiresAt: expiresAt}, nil)

		response, err := uc.Login(context.Background(), &requests.Login{Email: user.Email, Password: "Secret!123"})

		require.NoError(t, err)
		sessionID, err := utils.ParseJWT(response.Token, "test-secret")
		require.NoError(t, err)
		assert.Equal(t, "session-1", sessionID)
		assert.Equal(t, user.ID, response.User.ID)
	})

	t.Run("Wrong Password", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		sessions := new(MockSessionService)
		uc := newTestAuthUsecase(userRepo, sessions)
		userRepo.On("FindByEmail", mock.Anything, user.Email).Return(user, nil)

		_, err := uc.Login(context.Background(), &requests.Login{Email: user.Email, Password: "wrong"})

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusUnauthorized, customErr.StatusCode)
		sessions.AssertNotCalled(t, "CreateSession", mock.Anything, mock.Anything)
	})

	t.Run("Unknown Email", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		uc := newTestAuthUsecase(userRepo, new(MockSessionService))
		userRepo.On("FindByEmail", mock.Anything, "nobody@example.com").Return(nil, nil)

		_, err := uc.Login(context.Background(), &requests.Login{Email: "nobody@example.com", Password: "x"})

		assert.Error(t, err)
	})
}

func TestAuthUsecase_Logout(t *testing.T) {
	sessions := new(MockSessionService)
	uc := newTestAuthUsecase(new(MockUserRepository), sessions)
	sessions.On("DeleteSession", mock.Anything, "session-1").Return(nil)

	err := uc.Logout(context.Background(), &models.Session{SessionID: "session-1", UserID: "user-1"})

	assert.NoError(t, err)
	sessions.AssertExpectations(t)
}
