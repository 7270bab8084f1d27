package get_availability

import (
	"context"
	"fmt"

	"github.com/m04kA/MCB-BookingService/internal/domain"
)

// UseCase use case получения доступных слотов на дату
type UseCase struct {
	bookingRepo BookingRepository
	blockedRepo BlockedRepository
	configs     ConfigProvider
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	blockedRepo BlockedRepository,
	configs ConfigProvider,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		blockedRepo: blockedRepo,
		configs:     configs,
		logger:      logger,
	}
}

// Execute возвращает доступные слоты на дату, отсортированные по времени
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailability: date=%s", req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if req.Date.IsZero() {
		uc.logger.Warn("GetAvailability: date is required")
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	// 2. Получаем расписание слотов и размер флота
	schedule, err := uc.configs.Schedule(ctx)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to get schedule config: %v", err)
		return nil, fmt.Errorf("%w: failed to get schedule config: %v", ErrInternal, err)
	}

	fleet, err := uc.configs.Fleet(ctx)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to get fleet config: %v", err)
		return nil, fmt.Errorf("%w: failed to get fleet config: %v", ErrInternal, err)
	}

	// 3. Активные бронирования на дату
	bookings, err := uc.bookingRepo.ListByDate(ctx, req.Date, domain.ActiveStatuses)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 4. Интервалы блокировки на дату
	blocked, err := uc.blockedRepo.ListByDate(ctx, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to get blocked intervals: %v", err)
		return nil, fmt.Errorf("%w: failed to get blocked intervals: %v", ErrInternal, err)
	}

	// 5. Считаем доступность и отдаем только доступные слоты
	availability := buildAvailability(schedule, fleet, bookings, blocked)

	slots := make([]SlotInfo, 0, len(availability))
	for _, sa := range availability {
		if !sa.IsAvailable() {
			continue
		}
		slots = append(slots, SlotInfo{
			Time:           sa.Slot.Time,
			Label:          sa.Slot.Label,
			Recommended:    sa.Slot.Recommended,
			AvailableUnits: sa.AvailableUnits,
		})
	}

	uc.logger.Info("GetAvailability: date=%s, %d of %d slots available",
		req.Date.Format(domain.DateFormat), len(slots), len(availability))

	return &Response{Date: req.Date, Slots: slots}, nil
}
