package get_preferences

import (
	"net/http"

	"github.com/m04kA/SMC-BookingPlatform/internal/api/handlers"
)

type Handler struct {
	preferences PreferencesLoader
}

func NewHandler(preferences PreferencesLoader) *Handler {
	return &Handler{preferences: preferences}
}

// Handle GET /api/v1/preferences
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	prefs := h.preferences.Load(r.Context(), handlers.ClientID(r), handlers.AcceptLanguage(r))
	handlers.RespondJSON(w, http.StatusOK, FromPreferences(prefs))
}
