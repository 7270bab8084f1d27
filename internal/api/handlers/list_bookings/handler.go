package list_bookings

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/MCB-BookingService/internal/api/handlers"
	"github.com/m04kA/MCB-BookingService/internal/domain"
	"github.com/m04kA/MCB-BookingService/internal/service/lifecycle"
	"github.com/m04kA/MCB-BookingService/internal/service/lifecycle/models"
)

const (
	msgMissingDate   = "falta el parámetro date, se espera YYYY-MM-DD"
	msgInvalidDate   = "formato de fecha inválido, se espera YYYY-MM-DD"
	msgInvalidStatus = "estado de reserva inválido"
)

type Handler struct {
	service LifecycleService
	logger  Logger
}

func NewHandler(service LifecycleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/bookings?date=YYYY-MM-DD&status=pending
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /admin/bookings - Missing date parameter")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		h.logger.Warn("GET /admin/bookings - Invalid date %q: %v", dateStr, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	req := &models.ListByDateRequest{Date: date}
	if status := r.URL.Query().Get("status"); status != "" {
		req.Status = &status
	}

	result, err := h.service.ListByDate(r.Context(), req)
	if err != nil {
		if errors.Is(err, lifecycle.ErrInvalidInput) {
			h.logger.Warn("GET /admin/bookings - Invalid status filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidStatus)
			return
		}
		h.logger.Error("GET /admin/bookings - Failed to list bookings: date=%s, error=%v", dateStr, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /admin/bookings - date=%s, %d bookings", dateStr, len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result)
}
