package sign_in

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-BookingPlatform/internal/api/handlers"
	"github.com/m04kA/SMC-BookingPlatform/internal/service/session"
	"github.com/m04kA/SMC-BookingPlatform/internal/service/session/models"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgMissingCredentials = "email and password are required"
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

// Handle POST /api/v1/auth/sign-in
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.SignInRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /auth/sign-in - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.SignIn(r.Context(), &req)
	if err != nil {
		var formErr *session.FormError
		switch {
		case errors.As(err, &formErr):
			handlers.RespondBadRequest(w, formErr.Message)
		case errors.Is(err, session.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgMissingCredentials)
		case errors.Is(err, session.ErrUnauthorized):
			handlers.RespondUnauthorized(w)
		default:
			h.logger.Error("POST /auth/sign-in - Failed to sign in: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /auth/sign-in - Signed in: user_id=%s", result.UserID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
