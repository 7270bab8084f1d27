package confirm_booking

import (
	"context"

	"github.com/m04kA/MCB-BookingService/internal/domain"
	"github.com/m04kA/MCB-BookingService/internal/service/lifecycle/models"
)

type LifecycleService interface {
	Confirm(ctx context.Context, id int64, paymentStatus *domain.PaymentStatus) (*models.BookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
