package payment_callback

import (
	"errors"
	"net/http"

	"github.com/m04kA/MCB-BookingService/internal/api/handlers"
	"github.com/m04kA/MCB-BookingService/internal/service/reconciler"
)

const (
	msgInvalidForm      = "cuerpo de notificación inválido"
	msgInvalidSignature = "firma de notificación inválida"
)

type Handler struct {
	service ReconcilerService
	logger  Logger
}

func NewHandler(service ReconcilerService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/payments/callback
// Уведомления шлюза приходят form-encoded. Повторная доставка и внутренние
// сбои подтверждаются 200 OK: шлюз перестает ретраить только после успеха.
// Невалидная подпись - единственный неуспешный исход
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.logger.Warn("POST /payments/callback - Failed to parse form: %v", err)
		handlers.RespondBadRequest(w, msgInvalidForm)
		return
	}

	if err := h.service.HandleCallback(r.Context(), r.Form); err != nil {
		if errors.Is(err, reconciler.ErrUnauthorized) {
			h.logger.Warn("POST /payments/callback - Invalid signature from %s", r.RemoteAddr)
			handlers.RespondUnauthorized(w, msgInvalidSignature)
			return
		}
		// Реконсилятор не пробрасывает внутренние ошибки, ветка на будущее
		h.logger.Error("POST /payments/callback - Unexpected error: %v", err)
	}

	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}
