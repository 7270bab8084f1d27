package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/MCB-BookingService/internal/domain"
	"github.com/m04kA/MCB-BookingService/internal/integrations/paygate"
	"github.com/m04kA/MCB-BookingService/pkg/types"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	ListForSlot(ctx context.Context, date time.Time, slotTime types.TimeString, onlyActive bool) ([]*domain.Booking, error)
	SetPaymentOrderID(ctx context.Context, id int64, orderID string) error
}

// QuoteRepository интерфейс репозитория расчетов стоимости
type QuoteRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Quote, error)
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

// PaymentClient интерфейс клиента платежного шлюза
type PaymentClient interface {
	CreateOrder(ctx context.Context, req paygate.CreateOrderRequest) (*paygate.Order, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
