package update_preferences

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-BookingPlatform/internal/api/handlers"
	"github.com/m04kA/SMC-BookingPlatform/internal/api/handlers/get_preferences"
	"github.com/m04kA/SMC-BookingPlatform/internal/service/localization"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidLanguage    = "unsupported language"
	msgInvalidCurrency    = "unsupported currency"
)

type Handler struct {
	service LocalizationService
	logger  Logger
}

func NewHandler(service LocalizationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/preferences
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req UpdatePreferencesRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /preferences - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Проверяем оба значения до записи, чтобы не сохранить половину изменений
	if req.Language != nil && !req.Language.IsValid() {
		handlers.RespondBadRequest(w, msgInvalidLanguage)
		return
	}
	if req.Currency != nil && !req.Currency.IsValid() {
		handlers.RespondBadRequest(w, msgInvalidCurrency)
		return
	}

	clientID := handlers.ClientID(r)

	if req.Language != nil {
		if err := h.service.SetLanguage(r.Context(), clientID, *req.Language); err != nil {
			h.respondError(w, err)
			return
		}
	}

	if req.Currency != nil {
		if err := h.service.SetCurrency(r.Context(), clientID, *req.Currency); err != nil {
			h.respondError(w, err)
			return
		}
	}

	prefs := h.service.Load(r.Context(), clientID, handlers.AcceptLanguage(r))

	h.logger.Info("PUT /preferences - Preferences updated: language=%s, currency=%s", prefs.Language, prefs.Currency)
	handlers.RespondJSON(w, http.StatusOK, get_preferences.FromPreferences(prefs))
}

func (h *Handler) respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, localization.ErrInvalidLanguage):
		handlers.RespondBadRequest(w, msgInvalidLanguage)
	case errors.Is(err, localization.ErrInvalidCurrency):
		handlers.RespondBadRequest(w, msgInvalidCurrency)
	default:
		h.logger.Error("PUT /preferences - Failed to store preferences: %v", err)
		handlers.RespondInternalError(w)
	}
}
