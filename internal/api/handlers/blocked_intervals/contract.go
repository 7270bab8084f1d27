package blocked_intervals

import (
	"context"
	"time"

	"github.com/m04kA/MCB-BookingService/internal/service/config/models"
)

type ConfigService interface {
	CreateBlockedInterval(ctx context.Context, req *models.CreateBlockedIntervalRequest) (*models.BlockedIntervalResponse, error)
	ListBlockedIntervals(ctx context.Context, date time.Time) (*models.BlockedIntervalListResponse, error)
	DeleteBlockedInterval(ctx context.Context, id int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
