package get_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/MCB-BookingService/internal/api/handlers"
	"github.com/m04kA/MCB-BookingService/internal/service/lifecycle"
)

const (
	msgInvalidID       = "identificador de reserva inválido"
	msgBookingNotFound = "reserva no encontrada"
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

// Handle GET /api/v1/bookings/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /bookings/{id} - Invalid id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	result, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, lifecycle.ErrBookingNotFound) {
			h.logger.Warn("GET /bookings/{id} - Booking not found: booking_id=%d", id)
			handlers.RespondNotFound(w, msgBookingNotFound)
			return
		}
		h.logger.Error("GET /bookings/{id} - Failed to get booking: booking_id=%d, error=%v", id, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
