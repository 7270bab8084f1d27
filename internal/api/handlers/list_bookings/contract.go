package list_bookings

import (
	"context"

	"github.com/m04kA/MCB-BookingService/internal/service/lifecycle/models"
)

type LifecycleService interface {
	ListByDate(ctx context.Context, req *models.ListByDateRequest) (*models.BookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
