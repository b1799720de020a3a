package session

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/m04kA/SMC-BookingPlatform/internal/domain"
	"github.com/m04kA/SMC-BookingPlatform/internal/infra/storage/profile"
	"github.com/m04kA/SMC-BookingPlatform/internal/integrations/authservice"
	"github.com/m04kA/SMC-BookingPlatform/internal/service/session/models"
)

type mockAuthClient struct {
	mock.Mock
}

func (m *mockAuthClient) SignIn(ctx context.Context, creds authservice.Credentials) (*authservice.Session, error) {
	args := m.Called(ctx, creds)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*authservice.Session), args.Error(1)
}

func (m *mockAuthClient) SignUp(ctx context.Context, req authservice.SignUpRequest) (*authservice.SignUpResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*authservice.SignUpResponse), args.Error(1)
}

func (m *mockAuthClient) SignOut(ctx context.Context, accessToken string) error {
	return m.Called(ctx, accessToken).Error(0)
}

func (m *mockAuthClient) ResetPassword(ctx context.Context, email string) error {
	return m.Called(ctx, email).Error(0)
}

func (m *mockAuthClient) GetUser(ctx context.Context, accessToken string) (*authservice.User, error) {
	args := m.Called(ctx, accessToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*authservice.User), args.Error(1)
}

type mockProfileRepo struct {
	mock.Mock
}

func (m *mockProfileRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}

func (m *mockProfileRepo) Create(ctx context.Context, p *domain.Profile) (*domain.Profile, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type ServiceSuite struct {
	suite.Suite
	auth     *mockAuthClient
	profiles *mockProfileRepo
	svc      *Service
	ctx      context.Context
}

func (s *ServiceSuite) SetupTest() {
	s.auth = new(mockAuthClient)
	s.profiles = new(mockProfileRepo)
	s.svc = NewService(s.auth, s.profiles, nopLogger{})
	s.ctx = context.Background()
}

func (s *ServiceSuite) TearDownTest() {
	s.auth.AssertExpectations(s.T())
	s.profiles.AssertExpectations(s.T())
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) TestSignIn_Success() {
	userID := uuid.New()
	s.auth.On("SignIn", s.ctx, authservice.Credentials{Email: "anna@example.com", Password: "secret"}).
		Return(&authservice.Session{
			AccessToken: "tok",
			ExpiresIn:   3600,
			User:        authservice.User{ID: userID.String(), Email: "anna@example.com"},
		}, nil)

	resp, err := s.svc.SignIn(s.ctx, &models.SignInRequest{Email: " anna@example.com ", Password: "secret"})
	s.Require().NoError(err)
	s.Equal("tok", resp.AccessToken)
	s.Equal(userID, resp.UserID)
}

func (s *ServiceSuite) TestSignIn_BackendMessagePropagates() {
	s.auth.On("SignIn", s.ctx, mock.Anything).
		Return(nil, &authservice.BackendError{StatusCode: http.StatusBadRequest, Message: "Invalid login credentials"})

	_, err := s.svc.SignIn(s.ctx, &models.SignInRequest{Email: "anna@example.com", Password: "wrong"})

	var formErr *FormError
	s.Require().True(errors.As(err, &formErr))
	s.Equal("Invalid login credentials", formErr.Message)
	s.ErrorIs(err, ErrAuthFailed)
}

func (s *ServiceSuite) TestSignIn_MissingFields() {
	_, err := s.svc.SignIn(s.ctx, &models.SignInRequest{Email: "anna@example.com"})
	s.ErrorIs(err, ErrInvalidInput)
}

func (s *ServiceSuite) TestSignIn_TransportError() {
	s.auth.On("SignIn", s.ctx, mock.Anything).Return(nil, authservice.ErrInternal)

	_, err := s.svc.SignIn(s.ctx, &models.SignInRequest{Email: "a@b.c", Password: "x"})
	s.ErrorIs(err, ErrInternal)
}

func (s *ServiceSuite) TestSignUp_CreatesProfile() {
	userID := uuid.New()
	s.auth.On("SignUp", s.ctx, authservice.SignUpRequest{
		Email:    "owner@example.com",
		Password: "secret",
		Data:     map[string]string{"role": "company", "full_name": "Ewa Nowak", "phone": "+48111"},
	}).Return(&authservice.SignUpResponse{ID: userID.String(), Email: "owner@example.com"}, nil)

	s.profiles.On("Create", s.ctx, mock.MatchedBy(func(p *domain.Profile) bool {
		return p.ID == userID && p.Role == domain.RoleCompany && p.FullName == "Ewa Nowak" && p.Phone != nil && *p.Phone == "+48111"
	})).Return(&domain.Profile{ID: userID, Role: domain.RoleCompany, FullName: "Ewa Nowak"}, nil)

	resp, err := s.svc.SignUp(s.ctx, &models.SignUpRequest{
		Email:    "owner@example.com",
		Password: "secret",
		Role:     domain.RoleCompany,
		FullName: "Ewa Nowak",
		Phone:    "+48111",
	})
	s.Require().NoError(err)
	s.Equal(userID, resp.UserID)
	s.Nil(resp.Session)
	s.Require().NotNil(resp.Profile)
	s.Equal(domain.RoleCompany, resp.Profile.Role)
}

func (s *ServiceSuite) TestSignUp_RejectsAdminRole() {
	_, err := s.svc.SignUp(s.ctx, &models.SignUpRequest{
		Email:    "x@example.com",
		Password: "secret",
		Role:     domain.RoleAdmin,
		FullName: "X",
	})
	s.ErrorIs(err, ErrInvalidInput)
}

func (s *ServiceSuite) TestSignUp_ProfileError() {
	s.auth.On("SignUp", s.ctx, mock.Anything).
		Return(&authservice.SignUpResponse{ID: uuid.NewString()}, nil)
	s.profiles.On("Create", s.ctx, mock.Anything).Return(nil, profile.ErrExecQuery)

	_, err := s.svc.SignUp(s.ctx, &models.SignUpRequest{
		Email:    "c@example.com",
		Password: "secret",
		Role:     domain.RoleClient,
		FullName: "Client",
	})
	s.ErrorIs(err, ErrInternal)
}

func (s *ServiceSuite) TestCurrent_WithoutProfile() {
	userID := uuid.New()
	s.auth.On("GetUser", s.ctx, "tok").Return(&authservice.User{ID: userID.String(), Email: "a@b.c"}, nil)
	s.profiles.On("GetByID", s.ctx, userID).Return(nil, profile.ErrProfileNotFound)

	resp, err := s.svc.Current(s.ctx, "tok")
	s.Require().NoError(err)
	s.Equal(userID, resp.UserID)
	s.Nil(resp.Profile)
}

func (s *ServiceSuite) TestCurrent_Unauthorized() {
	backendErr := &authservice.BackendError{StatusCode: http.StatusUnauthorized, Message: "invalid JWT"}
	s.auth.On("GetUser", s.ctx, "bad").Return(nil, errors.Join(authservice.ErrUnauthorized, backendErr))

	_, err := s.svc.Current(s.ctx, "bad")
	s.ErrorIs(err, ErrUnauthorized)
}

func (s *ServiceSuite) TestResetPasswordAndSignOut() {
	s.auth.On("ResetPassword", s.ctx, "anna@example.com").Return(nil)
	s.auth.On("SignOut", s.ctx, "tok").Return(nil)

	s.Require().NoError(s.svc.ResetPassword(s.ctx, &models.ResetPasswordRequest{Email: "anna@example.com"}))
	s.Require().NoError(s.svc.SignOut(s.ctx, "tok"))
}

func TestFormError_IsAuthFailed(t *testing.T) {
	var err error = &FormError{Message: "User already registered"}
	assert.ErrorIs(t, err, ErrAuthFailed)
	require.Equal(t, "User already registered", err.Error())
}
