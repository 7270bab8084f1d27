package get_availability

import (
	"net/http"
	"time"

	"github.com/m04kA/MCB-BookingService/internal/api/handlers"
	"github.com/m04kA/MCB-BookingService/internal/domain"
	getAvailability "github.com/m04kA/MCB-BookingService/internal/usecase/get_availability"
)

const (
	msgMissingDate = "falta el parámetro date, se espera YYYY-MM-DD"
	msgInvalidDate = "formato de fecha inválido, se espera YYYY-MM-DD"
)

type Handler struct {
	useCase GetAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/availability?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /availability - Missing date parameter")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		h.logger.Warn("GET /availability - Invalid date %q: %v", dateStr, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailability.Request{Date: date})
	if err != nil {
		h.logger.Error("GET /availability - Failed to get availability: date=%s, error=%v", dateStr, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /availability - date=%s, %d slots available", dateStr, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
