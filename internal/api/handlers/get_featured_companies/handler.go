package get_featured_companies

import (
	"net/http"

	"github.com/m04kA/SMC-BookingPlatform/internal/api/handlers"
	"github.com/m04kA/SMC-BookingPlatform/internal/service/listing"
)

type Handler struct {
	service     ListingService
	preferences PreferencesLoader
	logger      Logger
}

func NewHandler(service ListingService, preferences PreferencesLoader, logger Logger) *Handler {
	return &Handler{
		service:     service,
		preferences: preferences,
		logger:      logger,
	}
}

// Handle GET /api/v1/companies/featured
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	prefs := h.preferences.Load(r.Context(), handlers.ClientID(r), handlers.AcceptLanguage(r))

	featured, err := h.service.ListFeatured(r.Context())
	if err != nil {
		h.logger.Error("GET /companies/featured - Failed to load companies: %v", err)
		handlers.RespondError(w, http.StatusInternalServerError, prefs.T("common.error"))
		return
	}

	if featured.Partial() {
		h.logger.Warn("GET /companies/featured - Partial result: failed_companies=%v", featured.FailedCompanyIDs)
	}

	handlers.RespondJSON(w, http.StatusOK, listing.Render(featured, prefs))
}
