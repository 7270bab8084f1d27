package quote_price

import (
	"errors"
	"net/http"

	"github.com/m04kA/MCB-BookingService/internal/api/handlers"
	quotePrice "github.com/m04kA/MCB-BookingService/internal/usecase/quote_price"
)

const (
	msgInvalidRequestBody = "cuerpo de solicitud inválido"
	msgInvalidDate        = "formato de fecha inválido, se espera YYYY-MM-DD"
	msgInvalidInput       = "datos de cotización inválidos"
	msgAddressNotFound    = "dirección no encontrada"
)

type Handler struct {
	useCase QuotePriceUseCase
	logger  Logger
}

func NewHandler(useCase QuotePriceUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/quotes
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req QuoteRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /quotes - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /quotes - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, quotePrice.ErrInvalidInput):
			h.logger.Warn("POST /quotes - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, quotePrice.ErrAddressNotFound):
			h.logger.Warn("POST /quotes - Address not found: %v", err)
			handlers.RespondNotFound(w, msgAddressNotFound)

		default:
			h.logger.Error("POST /quotes - Failed to calculate quote: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /quotes - Quote created: quote_id=%s, total=%d", result.QuoteID, result.Total)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
