package get_config

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/MCB-BookingService/internal/api/handlers"
)

// Секции конфигурации в пути запроса
const (
	sectionFleet    = "fleet"
	sectionPricing  = "pricing"
	sectionSchedule = "schedule"
)

const msgUnknownSection = "sección de configuración desconocida"

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

// Handle GET /api/v1/admin/config/{section}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	section := mux.Vars(r)["section"]

	var (
		result interface{}
		err    error
	)

	switch section {
	case sectionFleet:
		result, err = h.service.GetFleet(r.Context())
	case sectionPricing:
		result, err = h.service.GetPricing(r.Context())
	case sectionSchedule:
		result, err = h.service.GetSchedule(r.Context())
	default:
		h.logger.Warn("GET /admin/config/{section} - Unknown section %q", section)
		handlers.RespondNotFound(w, msgUnknownSection)
		return
	}

	if err != nil {
		h.logger.Error("GET /admin/config/{section} - Failed to get %s config: %v", section, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
