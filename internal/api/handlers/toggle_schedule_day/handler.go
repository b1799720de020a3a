package toggle_schedule_day

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-BookingPlatform/internal/api/handlers"
	"github.com/m04kA/SMC-BookingPlatform/internal/api/middleware"
	"github.com/m04kA/SMC-BookingPlatform/internal/service/availability"
	"github.com/m04kA/SMC-BookingPlatform/internal/service/availability/models"
)

const (
	msgInvalidCompanyID = "invalid company ID"
	msgInvalidDay       = "day must be between 0 and 6"
	msgCompanyNotFound  = "company not found"
	msgForbidden        = "access denied"
)

type Handler struct {
	service     AvailabilityService
	preferences PreferencesLoader
	logger      Logger
}

func NewHandler(service AvailabilityService, preferences PreferencesLoader, logger Logger) *Handler {
	return &Handler{
		service:     service,
		preferences: preferences,
		logger:      logger,
	}
}

// Handle POST /api/v1/companies/{companyId}/schedules/{day}/toggle
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w)
		return
	}

	companyID, err := handlers.PathUUID(r, "companyId")
	if err != nil {
		h.logger.Warn("POST /companies/{id}/schedules/{day}/toggle - Invalid company ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCompanyID)
		return
	}

	day, err := strconv.Atoi(mux.Vars(r)["day"])
	if err != nil {
		h.logger.Warn("POST /companies/{id}/schedules/{day}/toggle - Invalid day: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDay)
		return
	}

	prefs := h.preferences.Load(r.Context(), handlers.ClientID(r), handlers.AcceptLanguage(r))

	week, err := h.service.Toggle(r.Context(), companyID, userID, day)
	if err != nil {
		switch {
		case errors.Is(err, availability.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidDay)
		case errors.Is(err, availability.ErrCompanyNotFound):
			handlers.RespondNotFound(w, msgCompanyNotFound)
		case errors.Is(err, availability.ErrAccessDenied):
			h.logger.Warn("POST /companies/{id}/schedules/{day}/toggle - Access denied: company_id=%s, user_id=%s", companyID, userID)
			handlers.RespondForbidden(w, msgForbidden)
		default:
			h.logger.Error("POST /companies/{id}/schedules/{day}/toggle - Failed to toggle day: company_id=%s, day=%d, error=%v",
				companyID, day, err)
			handlers.RespondError(w, http.StatusInternalServerError, prefs.T("common.error"))
		}
		return
	}

	h.logger.Info("POST /companies/{id}/schedules/{day}/toggle - Day toggled: company_id=%s, day=%d, active=%t",
		companyID, day, week[day].IsActive)
	handlers.RespondJSON(w, http.StatusOK, models.SaveResponse{
		Message: prefs.T("schedule.saved"),
		Week:    models.FromDomainWeek(companyID, week, prefs.DayName),
	})
}
