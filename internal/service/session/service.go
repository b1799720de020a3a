package session

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BookingPlatform/internal/domain"
	"github.com/m04kA/SMC-BookingPlatform/internal/infra/storage/profile"
	"github.com/m04kA/SMC-BookingPlatform/internal/integrations/authservice"
	"github.com/m04kA/SMC-BookingPlatform/internal/service/session/models"
)

// Service сервис сессий и профилей пользователей
type Service struct {
	authClient  AuthClient
	profileRepo ProfileRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса сессий
func NewService(authClient AuthClient, profileRepo ProfileRepository, logger Logger) *Service {
	return &Service{
		authClient:  authClient,
		profileRepo: profileRepo,
		logger:      logger,
	}
}

// SignIn выполняет вход по email и паролю
func (s *Service) SignIn(ctx context.Context, req *models.SignInRequest) (*models.SessionResponse, error) {
	email := strings.TrimSpace(req.Email)
	if email == "" || req.Password == "" {
		return nil, fmt.Errorf("%w: email and password are required", ErrInvalidInput)
	}

	s.logger.Info("SignIn: email=%s", email)

	session, err := s.authClient.SignIn(ctx, authservice.Credentials{Email: email, Password: req.Password})
	if err != nil {
		return nil, s.mapAuthError("SignIn", err)
	}

	resp, err := toSessionResponse(session)
	if err != nil {
		s.logger.Error("SignIn: invalid user id in session: %v", err)
		return nil, fmt.Errorf("%w: SignIn - parse user id: %v", ErrInternal, err)
	}

	s.logger.Info("SignIn: user=%s signed in", resp.UserID)
	return resp, nil
}

// SignUp регистрирует пользователя и создает его профиль
// Профиль создается отдельной записью после регистрации, без транзакции
func (s *Service) SignUp(ctx context.Context, req *models.SignUpRequest) (*models.SignUpResponse, error) {
	email := strings.TrimSpace(req.Email)
	fullName := strings.TrimSpace(req.FullName)
	if email == "" || req.Password == "" || fullName == "" {
		return nil, fmt.Errorf("%w: email, password and full name are required", ErrInvalidInput)
	}
	if req.Role != domain.RoleClient && req.Role != domain.RoleCompany {
		return nil, fmt.Errorf("%w: role must be client or company", ErrInvalidInput)
	}

	s.logger.Info("SignUp: email=%s, role=%s", email, req.Role)

	signUp, err := s.authClient.SignUp(ctx, authservice.SignUpRequest{
		Email:    email,
		Password: req.Password,
		Data: map[string]string{
			"role":      string(req.Role),
			"full_name": fullName,
			"phone":     req.Phone,
		},
	})
	if err != nil {
		return nil, s.mapAuthError("SignUp", err)
	}

	userID, err := uuid.Parse(signUp.UserID())
	if err != nil {
		s.logger.Error("SignUp: invalid user id %q: %v", signUp.UserID(), err)
		return nil, fmt.Errorf("%w: SignUp - parse user id: %v", ErrInternal, err)
	}

	var phone *string
	if p := strings.TrimSpace(req.Phone); p != "" {
		phone = &p
	}

	created, err := s.profileRepo.Create(ctx, &domain.Profile{
		ID:       userID,
		Role:     req.Role,
		FullName: fullName,
		Phone:    phone,
	})
	if err != nil {
		s.logger.Error("SignUp: failed to create profile for user=%s: %v", userID, err)
		return nil, fmt.Errorf("%w: SignUp - create profile: %v", ErrInternal, err)
	}

	resp := &models.SignUpResponse{
		UserID:  userID,
		Profile: models.FromDomainProfile(created),
	}
	if signUp.AccessToken != "" {
		resp.Session, err = toSessionResponse(&signUp.Session)
		if err != nil {
			s.logger.Warn("SignUp: session without valid user id for user=%s: %v", userID, err)
			resp.Session = nil
		}
	}

	s.logger.Info("SignUp: user=%s registered with role=%s", userID, req.Role)
	return resp, nil
}

// SignOut завершает сессию
func (s *Service) SignOut(ctx context.Context, accessToken string) error {
	if err := s.authClient.SignOut(ctx, accessToken); err != nil {
		return s.mapAuthError("SignOut", err)
	}
	s.logger.Info("SignOut: session closed")
	return nil
}

// ResetPassword отправляет ссылку для сброса пароля
func (s *Service) ResetPassword(ctx context.Context, req *models.ResetPasswordRequest) error {
	email := strings.TrimSpace(req.Email)
	if email == "" {
		return fmt.Errorf("%w: email is required", ErrInvalidInput)
	}

	if err := s.authClient.ResetPassword(ctx, email); err != nil {
		return s.mapAuthError("ResetPassword", err)
	}

	s.logger.Info("ResetPassword: reset link requested for email=%s", email)
	return nil
}

// Current возвращает пользователя по токену доступа вместе с профилем
func (s *Service) Current(ctx context.Context, accessToken string) (*models.CurrentUserResponse, error) {
	user, err := s.authClient.GetUser(ctx, accessToken)
	if err != nil {
		return nil, s.mapAuthError("Current", err)
	}

	userID, err := uuid.Parse(user.ID)
	if err != nil {
		s.logger.Error("Current: invalid user id %q: %v", user.ID, err)
		return nil, fmt.Errorf("%w: Current - parse user id: %v", ErrInternal, err)
	}

	resp := &models.CurrentUserResponse{
		UserID: userID,
		Email:  user.Email,
	}

	p, err := s.Profile(ctx, userID)
	switch {
	case errors.Is(err, ErrProfileNotFound):
		s.logger.Warn("Current: user=%s has no profile", userID)
	case err != nil:
		return nil, err
	default:
		resp.Profile = models.FromDomainProfile(p)
	}

	return resp, nil
}

// Profile получает профиль пользователя
func (s *Service) Profile(ctx context.Context, userID uuid.UUID) (*domain.Profile, error) {
	p, err := s.profileRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, profile.ErrProfileNotFound) {
			return nil, ErrProfileNotFound
		}
		s.logger.Error("Profile: repository error for user=%s: %v", userID, err)
		return nil, fmt.Errorf("%w: Profile - repository error: %v", ErrInternal, err)
	}
	return p, nil
}

// mapAuthError превращает ошибку сервиса авторизации в ошибку формы с сообщением бэкенда
func (s *Service) mapAuthError(op string, err error) error {
	var backendErr *authservice.BackendError
	if errors.As(err, &backendErr) {
		s.logger.Warn("%s: rejected by auth backend: %s", op, backendErr.Message)
		if errors.Is(err, authservice.ErrUnauthorized) {
			return fmt.Errorf("%w: %s", ErrUnauthorized, backendErr.Message)
		}
		return &FormError{Message: backendErr.Message}
	}

	s.logger.Error("%s: auth backend error: %v", op, err)
	return fmt.Errorf("%w: %s - auth backend: %v", ErrInternal, op, err)
}

func toSessionResponse(session *authservice.Session) (*models.SessionResponse, error) {
	userID, err := uuid.Parse(session.User.ID)
	if err != nil {
		return nil, err
	}

	return &models.SessionResponse{
		AccessToken:  session.AccessToken,
		RefreshToken: session.RefreshToken,
		ExpiresIn:    session.ExpiresIn,
		UserID:       userID,
		Email:        session.User.Email,
	}, nil
}
