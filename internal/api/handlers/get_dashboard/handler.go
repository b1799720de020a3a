package get_dashboard

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-BookingPlatform/internal/api/handlers"
	"github.com/m04kA/SMC-BookingPlatform/internal/api/middleware"
	"github.com/m04kA/SMC-BookingPlatform/internal/service/dashboard"
)

const msgProfileNotFound = "profile not found"

type Handler struct {
	service     DashboardService
	preferences PreferencesLoader
	logger      Logger
}

func NewHandler(service DashboardService, preferences PreferencesLoader, logger Logger) *Handler {
	return &Handler{
		service:     service,
		preferences: preferences,
		logger:      logger,
	}
}

// Handle GET /api/v1/dashboard
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w)
		return
	}

	prefs := h.preferences.Load(r.Context(), handlers.ClientID(r), handlers.AcceptLanguage(r))

	resp, err := h.service.Compose(r.Context(), userID, prefs)
	if err != nil {
		if errors.Is(err, dashboard.ErrProfileNotFound) {
			h.logger.Warn("GET /dashboard - Profile not found: user_id=%s", userID)
			handlers.RespondNotFound(w, msgProfileNotFound)
			return
		}

		h.logger.Error("GET /dashboard - Failed to compose dashboard: user_id=%s, error=%v", userID, err)
		handlers.RespondError(w, http.StatusInternalServerError, prefs.T("common.error"))
		return
	}

	handlers.RespondJSON(w, http.StatusOK, resp)
}
