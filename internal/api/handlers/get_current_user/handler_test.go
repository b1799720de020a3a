package get_current_user

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BookingPlatform/internal/api/middleware"
	"github.com/m04kA/SMC-BookingPlatform/internal/domain"
	"github.com/m04kA/SMC-BookingPlatform/internal/service/session"
	"github.com/m04kA/SMC-BookingPlatform/internal/service/session/models"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) Current(ctx context.Context, accessToken string) (*models.CurrentUserResponse, error) {
	args := m.Called(ctx, accessToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CurrentUserResponse), args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newRequest(userID uuid.UUID) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil)
	return req.WithContext(middleware.WithUser(req.Context(), userID, "access-token"))
}

func TestHandle_WithProfile(t *testing.T) {
	userID := uuid.New()
	svc := new(mockService)
	svc.On("Current", mock.Anything, "access-token").Return(&models.CurrentUserResponse{
		UserID:  userID,
		Email:   "anna@example.com",
		Profile: &models.ProfileResponse{ID: userID, Role: domain.RoleClient, FullName: "Anna Nowak"},
	}, nil)

	rec := httptest.NewRecorder()
	NewHandler(svc, nopLogger{}).Handle(rec, newRequest(userID))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.CurrentUserResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, userID, resp.UserID)
	require.NotNil(t, resp.Profile)
	assert.Equal(t, domain.RoleClient, resp.Profile.Role)
}

func TestHandle_ExpiredSession(t *testing.T) {
	svc := new(mockService)
	svc.On("Current", mock.Anything, "access-token").Return(nil, session.ErrUnauthorized)

	rec := httptest.NewRecorder()
	NewHandler(svc, nopLogger{}).Handle(rec, newRequest(uuid.New()))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
