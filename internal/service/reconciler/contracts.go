package reconciler

import (
	"context"
	"net/url"
	"time"

	"github.com/m04kA/MCB-BookingService/internal/domain"
	"github.com/m04kA/MCB-BookingService/internal/integrations/paygate"
	"github.com/m04kA/MCB-BookingService/internal/service/lifecycle/models"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByPaymentOrderID(ctx context.Context, orderID string) (*domain.Booking, error)
	UpdatePaymentStatus(ctx context.Context, id int64, status domain.PaymentStatus) error
	DeleteIfStatus(ctx context.Context, id int64, status domain.BookingStatus) (bool, error)
}

// LifecycleService интерфейс машины состояний бронирования
type LifecycleService interface {
	Confirm(ctx context.Context, id int64, paymentStatus *domain.PaymentStatus) (*models.BookingResponse, error)
	Cancel(ctx context.Context, id int64, paymentStatus *domain.PaymentStatus) (*models.BookingResponse, error)
}

// PaymentClient интерфейс клиента платежного шлюза
type PaymentClient interface {
	VerifySignature(params url.Values) error
	GetStatus(ctx context.Context, orderID string) (*paygate.OrderStatus, error)
}

// DeferredScheduler интерфейс планировщика отложенных задач
type DeferredScheduler interface {
	Schedule(key string, delay time.Duration, fn func())
	Cancel(key string) bool
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
