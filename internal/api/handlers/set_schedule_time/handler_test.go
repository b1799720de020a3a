package set_schedule_time

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-BookingPlatform/internal/api/middleware"
	"github.com/m04kA/SMC-BookingPlatform/internal/domain"
	"github.com/m04kA/SMC-BookingPlatform/internal/service/availability"
	"github.com/m04kA/SMC-BookingPlatform/internal/service/localization"
	"github.com/m04kA/SMC-BookingPlatform/pkg/types"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) SetTime(ctx context.Context, companyID, userID uuid.UUID, day int, field domain.TimeField, value types.TimeString) (domain.Week, error) {
	args := m.Called(ctx, companyID, userID, day, field, value)
	return args.Get(0).(domain.Week), args.Error(1)
}

type stubPreferences struct{}

func (stubPreferences) Load(context.Context, string, string) localization.Preferences {
	return localization.Preferences{Language: domain.LanguageEnglish, Currency: domain.CurrencyPLN}
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newRequest(companyID, userID uuid.UUID, day, body string) *http.Request {
	req := httptest.NewRequest(http.MethodPatch, "/", strings.NewReader(body))
	req = mux.SetURLVars(req, map[string]string{"companyId": companyID.String(), "day": day})
	return req.WithContext(middleware.WithUser(req.Context(), userID, "token"))
}

func TestHandle_SetsStartTime(t *testing.T) {
	companyID, userID := uuid.New(), uuid.New()
	week := domain.DefaultWeek()
	week[1].StartTime = "08:30"

	svc := new(mockService)
	svc.On("SetTime", mock.Anything, companyID, userID, 1, domain.FieldStartTime, types.TimeString("08:30")).Return(week, nil)

	rec := httptest.NewRecorder()
	NewHandler(svc, stubPreferences{}, nopLogger{}).Handle(rec, newRequest(companyID, userID, "1", `{"field":"start_time","value":"08:30"}`))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"startTime":"08:30"`)
	svc.AssertExpectations(t)
}

func TestHandle_InvalidValue(t *testing.T) {
	companyID, userID := uuid.New(), uuid.New()
	svc := new(mockService)

	rec := httptest.NewRecorder()
	NewHandler(svc, stubPreferences{}, nopLogger{}).Handle(rec, newRequest(companyID, userID, "1", `{"field":"start_time","value":"8am"}`))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	svc.AssertNotCalled(t, "SetTime", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestHandle_InvalidField(t *testing.T) {
	companyID, userID := uuid.New(), uuid.New()
	svc := new(mockService)
	svc.On("SetTime", mock.Anything, companyID, userID, 1, domain.TimeField("lunch"), types.TimeString("12:00")).
		Return(domain.Week{}, availability.ErrInvalidInput)

	rec := httptest.NewRecorder()
	NewHandler(svc, stubPreferences{}, nopLogger{}).Handle(rec, newRequest(companyID, userID, "1", `{"field":"lunch","value":"12:00"}`))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
