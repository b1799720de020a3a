package get_schedule_exceptions

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-BookingPlatform/internal/api/handlers"
	"github.com/m04kA/SMC-BookingPlatform/internal/api/middleware"
	"github.com/m04kA/SMC-BookingPlatform/internal/service/availability"
	"github.com/m04kA/SMC-BookingPlatform/internal/service/availability/models"
)

const (
	msgInvalidCompanyID = "invalid company ID"
	msgCompanyNotFound  = "company not found"
	msgForbidden        = "access denied"
)

type Handler struct {
	service AvailabilityService
	logger  Logger
}

func NewHandler(service AvailabilityService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/companies/{companyId}/schedule-exceptions
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w)
		return
	}

	companyID, err := handlers.PathUUID(r, "companyId")
	if err != nil {
		h.logger.Warn("GET /companies/{id}/schedule-exceptions - Invalid company ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCompanyID)
		return
	}

	exceptions, err := h.service.Exceptions(r.Context(), companyID, userID)
	if err != nil {
		switch {
		case errors.Is(err, availability.ErrCompanyNotFound):
			handlers.RespondNotFound(w, msgCompanyNotFound)
		case errors.Is(err, availability.ErrAccessDenied):
			handlers.RespondForbidden(w, msgForbidden)
		default:
			h.logger.Error("GET /companies/{id}/schedule-exceptions - Failed to list exceptions: company_id=%s, error=%v", companyID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, models.FromDomainExceptions(exceptions))
}
