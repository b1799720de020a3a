package sign_up

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-BookingPlatform/internal/api/handlers"
	"github.com/m04kA/SMC-BookingPlatform/internal/service/session"
	"github.com/m04kA/SMC-BookingPlatform/internal/service/session/models"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidData        = "email, password, full name and a client or company role are required"
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

// Handle POST /api/v1/auth/sign-up
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.SignUpRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /auth/sign-up - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.SignUp(r.Context(), &req)
	if err != nil {
		var formErr *session.FormError
		switch {
		case errors.As(err, &formErr):
			handlers.RespondBadRequest(w, formErr.Message)
		case errors.Is(err, session.ErrInvalidInput):
			h.logger.Warn("POST /auth/sign-up - Invalid data: %v", err)
			handlers.RespondBadRequest(w, msgInvalidData)
		default:
			h.logger.Error("POST /auth/sign-up - Failed to sign up: email=%s, error=%v", req.Email, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /auth/sign-up - User registered: user_id=%s, role=%s", result.UserID, req.Role)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
