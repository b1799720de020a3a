package check_upcoming_reservations

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-BookingPlatform/internal/api/handlers"
	uc "github.com/m04kA/SMC-BookingPlatform/internal/usecase/check_upcoming_reservations"
)

type Handler struct {
	useCase UseCase
	logger  Logger
}

func NewHandler(useCase UseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET|POST /functions/check-upcoming-reservations
// OPTIONS обрабатывается middleware.CORS
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.useCase.Execute(r.Context())
	if err != nil {
		h.logger.Error("%s /functions/check-upcoming-reservations - Check failed: %v", r.Method, err)
		handlers.RespondError(w, http.StatusInternalServerError, errorMessage(err))
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

// errorMessage отдает клиенту сообщение драйвера БД без префиксов слоев
func errorMessage(err error) string {
	var queryErr *uc.QueryError
	if errors.As(err, &queryErr) {
		return queryErr.RawMessage()
	}
	return err.Error()
}
