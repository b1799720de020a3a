package get_current_user

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-BookingPlatform/internal/api/handlers"
	"github.com/m04kA/SMC-BookingPlatform/internal/api/middleware"
	"github.com/m04kA/SMC-BookingPlatform/internal/service/session"
)

type Handler struct {
	service SessionService
	logger  Logger
}

func NewHandler(service SessionService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/auth/me
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	token, ok := middleware.GetAccessToken(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w)
		return
	}

	result, err := h.service.Current(r.Context(), token)
	if err != nil {
		var formErr *session.FormError
		switch {
		case errors.Is(err, session.ErrUnauthorized):
			handlers.RespondUnauthorized(w)
		case errors.As(err, &formErr):
			handlers.RespondBadRequest(w, formErr.Message)
		default:
			h.logger.Error("GET /auth/me - Failed to get current user: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
