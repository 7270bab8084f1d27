package lifecycle

import (
	"context"
	"time"

	"github.com/m04kA/MCB-BookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	ListByDate(ctx context.Context, date time.Time, statuses []domain.BookingStatus) ([]*domain.Booking, error)
	ApplyTransition(ctx context.Context, id int64, status domain.BookingStatus, paymentStatus *domain.PaymentStatus, totalPrice *int64) (*domain.Booking, error)
	UpdatePhotoURLs(ctx context.Context, id int64, urls []string) error
}

// StorageClient интерфейс клиента файлового хранилища фотографий
type StorageClient interface {
	Delete(ctx context.Context, objectURL string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
