package complete_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/MCB-BookingService/internal/api/handlers"
	"github.com/m04kA/MCB-BookingService/internal/service/lifecycle"
)

const (
	msgInvalidID         = "identificador de reserva inválido"
	msgBookingNotFound   = "reserva no encontrada"
	msgInvalidTransition = "la reserva no puede ser completada en su estado actual"
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

// Handle PATCH /api/v1/admin/bookings/{id}/complete
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /admin/bookings/{id}/complete - Invalid id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	result, err := h.service.Complete(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, lifecycle.ErrBookingNotFound):
			h.logger.Warn("PATCH /admin/bookings/{id}/complete - Booking not found: booking_id=%d", id)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, lifecycle.ErrInvalidTransition):
			h.logger.Warn("PATCH /admin/bookings/{id}/complete - Invalid transition: booking_id=%d, error=%v", id, err)
			handlers.RespondError(w, http.StatusConflict, msgInvalidTransition)

		default:
			h.logger.Error("PATCH /admin/bookings/{id}/complete - Failed to complete: booking_id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /admin/bookings/{id}/complete - Booking completed: booking_id=%d", id)
	handlers.RespondJSON(w, http.StatusOK, result)
}
