package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/MCB-BookingService/internal/api/handlers"
	createBooking "github.com/m04kA/MCB-BookingService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "cuerpo de solicitud inválido"
	msgInvalidDate        = "formato de fecha inválido, se espera YYYY-MM-DD"
	msgSlotUnavailable    = "el horario seleccionado no está disponible"
	msgQuoteNotFound      = "cotización no encontrada"
	msgInvalidBookingDate = "fecha de reserva inválida"
	msgInvalidTimeSlot    = "el horario no corresponde a ningún bloque disponible"
	msgInvalidInput       = "datos de reserva inválidos"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrSlotUnavailable):
			h.logger.Warn("POST /bookings - Slot unavailable: date=%s, time=%s", req.ScheduledDate, req.ScheduledTime)
			handlers.RespondError(w, http.StatusConflict, msgSlotUnavailable)

		case errors.Is(err, createBooking.ErrQuoteNotFound):
			h.logger.Warn("POST /bookings - Quote not found: quote_id=%s", req.QuoteID)
			handlers.RespondNotFound(w, msgQuoteNotFound)

		case errors.Is(err, createBooking.ErrInvalidDate):
			h.logger.Warn("POST /bookings - Invalid booking date: date=%s", req.ScheduledDate)
			handlers.RespondBadRequest(w, msgInvalidBookingDate)

		case errors.Is(err, createBooking.ErrInvalidTimeSlot):
			h.logger.Warn("POST /bookings - Invalid time slot: time=%s", req.ScheduledTime)
			handlers.RespondBadRequest(w, msgInvalidTimeSlot)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: quote_id=%s, error=%v", req.QuoteID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created: booking_id=%d, quote_id=%s", result.ID, req.QuoteID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
