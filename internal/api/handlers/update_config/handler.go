package update_config

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/MCB-BookingService/internal/api/handlers"
	serviceConfig "github.com/m04kA/MCB-BookingService/internal/service/config"
	"github.com/m04kA/MCB-BookingService/internal/service/config/models"
)

// Секции конфигурации в пути запроса
const (
	sectionFleet    = "fleet"
	sectionPricing  = "pricing"
	sectionSchedule = "schedule"
)

const (
	msgInvalidRequestBody = "cuerpo de solicitud inválido"
	msgInvalidInput       = "datos de configuración inválidos"
	msgUnknownSection     = "sección de configuración desconocida"
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

// Handle PUT /api/v1/admin/config/{section}
// Запись полностью заменяет текущую версию секции
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	section := mux.Vars(r)["section"]

	var (
		result interface{}
		err    error
	)

	switch section {
	case sectionFleet:
		var req models.UpdateFleetRequest
		if decodeErr := handlers.DecodeJSON(r, &req); decodeErr != nil {
			h.logger.Warn("PUT /admin/config/fleet - Invalid request body: %v", decodeErr)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)
			return
		}
		result, err = h.service.UpdateFleet(r.Context(), &req)

	case sectionPricing:
		var req models.UpdatePricingRequest
		if decodeErr := handlers.DecodeJSON(r, &req); decodeErr != nil {
			h.logger.Warn("PUT /admin/config/pricing - Invalid request body: %v", decodeErr)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)
			return
		}
		result, err = h.service.UpdatePricing(r.Context(), &req)

	case sectionSchedule:
		var req models.UpdateScheduleRequest
		if decodeErr := handlers.DecodeJSON(r, &req); decodeErr != nil {
			h.logger.Warn("PUT /admin/config/schedule - Invalid request body: %v", decodeErr)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)
			return
		}
		result, err = h.service.UpdateSchedule(r.Context(), &req)

	default:
		h.logger.Warn("PUT /admin/config/{section} - Unknown section %q", section)
		handlers.RespondNotFound(w, msgUnknownSection)
		return
	}

	if err != nil {
		if errors.Is(err, serviceConfig.ErrInvalidInput) {
			h.logger.Warn("PUT /admin/config/%s - Invalid input: %v", section, err)
			handlers.RespondBadRequest(w, msgInvalidInput)
			return
		}
		h.logger.Error("PUT /admin/config/%s - Failed to update config: %v", section, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("PUT /admin/config/%s - Config replaced", section)
	handlers.RespondJSON(w, http.StatusOK, result)
}
