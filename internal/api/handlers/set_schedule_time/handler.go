package set_schedule_time

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-BookingPlatform/internal/api/handlers"
	"github.com/m04kA/SMC-BookingPlatform/internal/api/middleware"
	"github.com/m04kA/SMC-BookingPlatform/internal/domain"
	"github.com/m04kA/SMC-BookingPlatform/internal/service/availability"
	"github.com/m04kA/SMC-BookingPlatform/internal/service/availability/models"
	"github.com/m04kA/SMC-BookingPlatform/pkg/types"
)

const (
	msgInvalidCompanyID   = "invalid company ID"
	msgInvalidDay         = "day must be between 0 and 6"
	msgInvalidRequestBody = "invalid request body"
	msgInvalidData        = "field must be start_time or end_time and value must be HH:MM"
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

// Handle PATCH /api/v1/companies/{companyId}/schedules/{day}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w)
		return
	}

	companyID, err := handlers.PathUUID(r, "companyId")
	if err != nil {
		h.logger.Warn("PATCH /companies/{id}/schedules/{day} - Invalid company ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCompanyID)
		return
	}

	day, err := strconv.Atoi(mux.Vars(r)["day"])
	if err != nil {
		h.logger.Warn("PATCH /companies/{id}/schedules/{day} - Invalid day: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDay)
		return
	}

	var req models.SetTimeRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /companies/{id}/schedules/{day} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	value, err := types.ParseTimeString(req.Value)
	if err != nil {
		h.logger.Warn("PATCH /companies/{id}/schedules/{day} - Invalid time: value=%q", req.Value)
		handlers.RespondBadRequest(w, msgInvalidData)
		return
	}

	prefs := h.preferences.Load(r.Context(), handlers.ClientID(r), handlers.AcceptLanguage(r))

	week, err := h.service.SetTime(r.Context(), companyID, userID, day, domain.TimeField(req.Field), value)
	if err != nil {
		switch {
		case errors.Is(err, availability.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidData)
		case errors.Is(err, availability.ErrCompanyNotFound):
			handlers.RespondNotFound(w, msgCompanyNotFound)
		case errors.Is(err, availability.ErrAccessDenied):
			h.logger.Warn("PATCH /companies/{id}/schedules/{day} - Access denied: company_id=%s, user_id=%s", companyID, userID)
			handlers.RespondForbidden(w, msgForbidden)
		default:
			h.logger.Error("PATCH /companies/{id}/schedules/{day} - Failed to set time: company_id=%s, day=%d, error=%v",
				companyID, day, err)
			handlers.RespondError(w, http.StatusInternalServerError, prefs.T("common.error"))
		}
		return
	}

	h.logger.Info("PATCH /companies/{id}/schedules/{day} - Time updated: company_id=%s, day=%d, %s=%s",
		companyID, day, req.Field, value)
	handlers.RespondJSON(w, http.StatusOK, models.SaveResponse{
		Message: prefs.T("schedule.saved"),
		Week:    models.FromDomainWeek(companyID, week, prefs.DayName),
	})
}
