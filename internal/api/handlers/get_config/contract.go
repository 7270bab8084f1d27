package get_config

import (
	"context"

	"github.com/m04kA/MCB-BookingService/internal/service/config/models"
)

type ConfigService interface {
	GetFleet(ctx context.Context) (*models.FleetConfigResponse, error)
	GetPricing(ctx context.Context) (*models.PricingConfigResponse, error)
	GetSchedule(ctx context.Context) (*models.ScheduleConfigResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
