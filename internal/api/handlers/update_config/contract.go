package update_config

import (
	"context"

	"github.com/m04kA/MCB-BookingService/internal/service/config/models"
)

type ConfigService interface {
	UpdateFleet(ctx context.Context, req *models.UpdateFleetRequest) (*models.FleetConfigResponse, error)
	UpdatePricing(ctx context.Context, req *models.UpdatePricingRequest) (*models.PricingConfigResponse, error)
	UpdateSchedule(ctx context.Context, req *models.UpdateScheduleRequest) (*models.ScheduleConfigResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
