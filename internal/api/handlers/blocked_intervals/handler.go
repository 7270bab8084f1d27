package blocked_intervals

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/MCB-BookingService/internal/api/handlers"
	"github.com/m04kA/MCB-BookingService/internal/domain"
	serviceConfig "github.com/m04kA/MCB-BookingService/internal/service/config"
	"github.com/m04kA/MCB-BookingService/internal/service/config/models"
)

const (
	msgInvalidRequestBody = "cuerpo de solicitud inválido"
	msgInvalidInput       = "datos de bloqueo inválidos"
	msgMissingDate        = "falta el parámetro date, se espera YYYY-MM-DD"
	msgInvalidDate        = "formato de fecha inválido, se espera YYYY-MM-DD"
	msgInvalidID          = "identificador de bloqueo inválido"
	msgIntervalNotFound   = "bloqueo no encontrado"
)

type Handler struct {
	service ConfigService
	logger  Logger
}

func NewHandler(service ConfigService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Create POST /api/v1/admin/blocked-intervals
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateBlockedIntervalRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/blocked-intervals - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.CreateBlockedInterval(r.Context(), &req)
	if err != nil {
		if errors.Is(err, serviceConfig.ErrInvalidInput) {
			h.logger.Warn("POST /admin/blocked-intervals - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)
			return
		}
		h.logger.Error("POST /admin/blocked-intervals - Failed to create interval: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /admin/blocked-intervals - Interval created: id=%d, date=%s", result.ID, result.Date)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// List GET /api/v1/admin/blocked-intervals?date=YYYY-MM-DD
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /admin/blocked-intervals - Missing date parameter")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		h.logger.Warn("GET /admin/blocked-intervals - Invalid date %q: %v", dateStr, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.service.ListBlockedIntervals(r.Context(), date)
	if err != nil {
		h.logger.Error("GET /admin/blocked-intervals - Failed to list intervals: date=%s, error=%v", dateStr, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// Delete DELETE /api/v1/admin/blocked-intervals/{id}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /admin/blocked-intervals/{id} - Invalid id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	if err := h.service.DeleteBlockedInterval(r.Context(), id); err != nil {
		if errors.Is(err, serviceConfig.ErrIntervalNotFound) {
			h.logger.Warn("DELETE /admin/blocked-intervals/{id} - Interval not found: id=%d", id)
			handlers.RespondNotFound(w, msgIntervalNotFound)
			return
		}
		h.logger.Error("DELETE /admin/blocked-intervals/{id} - Failed to delete interval: id=%d, error=%v", id, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /admin/blocked-intervals/{id} - Interval deleted: id=%d", id)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
