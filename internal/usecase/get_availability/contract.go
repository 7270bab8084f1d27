package get_availability

import (
	"context"
	"time"

	"github.com/m04kA/MCB-BookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	ListByDate(ctx context.Context, date time.Time, statuses []domain.BookingStatus) ([]*domain.Booking, error)
}

// BlockedRepository интерфейс репозитория интервалов блокировки
type BlockedRepository interface {
	ListByDate(ctx context.Context, date time.Time) ([]*domain.BlockedInterval, error)
}

// ConfigProvider интерфейс доступа к конфигурации флота и расписания
type ConfigProvider interface {
	Fleet(ctx context.Context) (*domain.FleetConfig, error)
	Schedule(ctx context.Context) (*domain.ScheduleConfig, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
