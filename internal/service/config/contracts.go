package config

import (
	"context"
	"time"

	"github.com/m04kA/MCB-BookingService/internal/domain"
)

// ConfigRepository интерфейс репозитория singleton-конфигураций
type ConfigRepository interface {
	GetFleet(ctx context.Context) (*domain.FleetConfig, error)
	SaveFleet(ctx context.Context, cfg *domain.FleetConfig) error
	GetPricing(ctx context.Context) (*domain.PricingConfig, error)
	SavePricing(ctx context.Context, cfg *domain.PricingConfig) error
	GetSchedule(ctx context.Context) (*domain.ScheduleConfig, error)
	SaveSchedule(ctx context.Context, cfg *domain.ScheduleConfig) error
}

// BlockedRepository интерфейс репозитория интервалов блокировки
type BlockedRepository interface {
	Create(ctx context.Context, interval *domain.BlockedInterval) (*domain.BlockedInterval, error)
	ListByDate(ctx context.Context, date time.Time) ([]*domain.BlockedInterval, error)
	Delete(ctx context.Context, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
