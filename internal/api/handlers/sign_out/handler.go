package sign_out

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

// Handle POST /api/v1/auth/sign-out
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	token, ok := middleware.GetAccessToken(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w)
		return
	}
	userID, _ := middleware.GetUserID(r.Context())

	if err := h.service.SignOut(r.Context(), token); err != nil {
		var formErr *session.FormError
		switch {
		case errors.Is(err, session.ErrUnauthorized):
			handlers.RespondUnauthorized(w)
		case errors.As(err, &formErr):
			handlers.RespondBadRequest(w, formErr.Message)
		default:
			h.logger.Error("POST /auth/sign-out - Failed to sign out: user_id=%s, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /auth/sign-out - Signed out: user_id=%s", userID)
	w.WriteHeader(http.StatusNoContent)
}
