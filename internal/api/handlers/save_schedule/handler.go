package save_schedule

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-BookingPlatform/internal/api/handlers"
	"github.com/m04kA/SMC-BookingPlatform/internal/api/middleware"
	"github.com/m04kA/SMC-BookingPlatform/internal/service/availability"
	"github.com/m04kA/SMC-BookingPlatform/internal/service/availability/models"
)

const (
	msgInvalidCompanyID   = "invalid company ID"
	msgInvalidRequestBody = "invalid request body"
	msgCompanyNotFound    = "company not found"
	msgForbidden          = "access denied"
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

// Handle PUT /api/v1/companies/{companyId}/schedules
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w)
		return
	}

	companyID, err := handlers.PathUUID(r, "companyId")
	if err != nil {
		h.logger.Warn("PUT /companies/{id}/schedules - Invalid company ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCompanyID)
		return
	}

	var req models.SaveWeekRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /companies/{id}/schedules - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	week, err := req.ToDomainWeek()
	if err != nil {
		h.logger.Warn("PUT /companies/{id}/schedules - Invalid week: company_id=%s, error=%v", companyID, err)
		handlers.RespondBadRequest(w, err.Error())
		return
	}

	prefs := h.preferences.Load(r.Context(), handlers.ClientID(r), handlers.AcceptLanguage(r))

	if err := h.service.Save(r.Context(), companyID, userID, week); err != nil {
		switch {
		case errors.Is(err, availability.ErrCompanyNotFound):
			handlers.RespondNotFound(w, msgCompanyNotFound)
		case errors.Is(err, availability.ErrAccessDenied):
			h.logger.Warn("PUT /companies/{id}/schedules - Access denied: company_id=%s, user_id=%s", companyID, userID)
			handlers.RespondForbidden(w, msgForbidden)
		default:
			h.logger.Error("PUT /companies/{id}/schedules - Failed to save schedule: company_id=%s, error=%v", companyID, err)
			handlers.RespondError(w, http.StatusInternalServerError, prefs.T("common.error"))
		}
		return
	}

	h.logger.Info("PUT /companies/{id}/schedules - Schedule saved: company_id=%s", companyID)
	handlers.RespondJSON(w, http.StatusOK, models.SaveResponse{
		Message: prefs.T("schedule.saved"),
		Week:    models.FromDomainWeek(companyID, week, prefs.DayName),
	})
}
