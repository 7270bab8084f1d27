package quote_price

import (
	"context"

	"github.com/m04kA/MCB-BookingService/internal/domain"
)

// QuoteRepository интерфейс репозитория расчетов стоимости
type QuoteRepository interface {
	Create(ctx context.Context, quote *domain.Quote) (*domain.Quote, error)
}

// ConfigProvider интерфейс доступа к конфигурации цен
type ConfigProvider interface {
	Pricing(ctx context.Context) (*domain.PricingConfig, error)
}

// GeoClient интерфейс клиента геосервиса
type GeoClient interface {
	GetDistanceWithGracefulDegradation(ctx context.Context, origin, destination string) (float64, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
