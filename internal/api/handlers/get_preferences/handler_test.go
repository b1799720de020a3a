package get_preferences

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BookingPlatform/internal/infra/storage/preferences"
	"github.com/m04kA/SMC-BookingPlatform/internal/service/localization"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestHandle_StoredLanguageWinsOverBrowser(t *testing.T) {
	storage, err := preferences.NewFileStorage(filepath.Join(t.TempDir(), "preferences.json"))
	require.NoError(t, err)

	svc := localization.NewService(storage, nopLogger{})
	require.NoError(t, svc.SetLanguage(context.Background(), "device-1", "pl"))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/preferences", nil)
	req.Header.Set("X-Client-ID", "device-1")
	req.Header.Set("Accept-Language", "en-GB,en;q=0.9")

	rec := httptest.NewRecorder()
	NewHandler(svc).Handle(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{
		"language": "pl",
		"currency": "PLN",
		"currencySymbol": "zł",
		"languages": ["en", "pl"],
		"currencies": ["PLN", "EUR", "USD", "GBP"]
	}`, rec.Body.String())
}

func TestHandle_AnonymousUsesBrowserLocale(t *testing.T) {
	storage, err := preferences.NewFileStorage(filepath.Join(t.TempDir(), "preferences.json"))
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/preferences", nil)
	req.Header.Set("Accept-Language", "pl-PL")

	rec := httptest.NewRecorder()
	NewHandler(localization.NewService(storage, nopLogger{})).Handle(rec, req)

	assert.Contains(t, rec.Body.String(), `"language":"pl"`)
}
