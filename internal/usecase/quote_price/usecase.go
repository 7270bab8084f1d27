package quote_price

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/google/uuid"

	"github.com/m04kA/MCB-BookingService/internal/domain"
	"github.com/m04kA/MCB-BookingService/internal/integrations/geodist"
)

// UseCase use case расчета стоимости переезда
type UseCase struct {
	quoteRepo QuoteRepository
	configs   ConfigProvider
	geoClient GeoClient
	logger    Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(quoteRepo QuoteRepository, configs ConfigProvider, geoClient GeoClient, logger Logger) *UseCase {
	return &UseCase{
		quoteRepo: quoteRepo,
		configs:   configs,
		geoClient: geoClient,
		logger:    logger,
	}
}

// Execute выполняет расчет стоимости и сохраняет его для последующего бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("QuotePrice: volume=%d, floors=%d, services=%d, date=%s",
		req.VolumeM3, req.FloorsNoElevator, len(req.SelectedServices), req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("QuotePrice: validation failed: %v", err)
		return nil, err
	}

	// 2. Определяем расстояние: явное значение или расчет через геосервис
	distanceKm, err := uc.resolveDistance(ctx, req)
	if err != nil {
		return nil, err
	}

	// 3. Получаем конфигурацию цен
	cfg, err := uc.configs.Pricing(ctx)
	if err != nil {
		uc.logger.Error("QuotePrice: failed to get pricing config: %v", err)
		return nil, fmt.Errorf("%w: failed to get pricing config: %v", ErrInternal, err)
	}

	// 4. Считаем стоимость
	total, breakdown, err := calculate(req, distanceKm, cfg)
	if err != nil {
		uc.logger.Warn("QuotePrice: calculation rejected: %v", err)
		return nil, err
	}

	// 5. Сохраняем расчет, чтобы бронирование взяло цену из него,
	// а не пересчитывало по возможно изменившимся тарифам
	quote := &domain.Quote{
		ID:        uuid.NewString(),
		Total:     total,
		Breakdown: breakdown,
	}

	created, err := uc.quoteRepo.Create(ctx, quote)
	if err != nil {
		uc.logger.Error("QuotePrice: failed to save quote: %v", err)
		return nil, fmt.Errorf("%w: failed to save quote: %v", ErrInternal, err)
	}

	uc.logger.Info("QuotePrice: quote id=%s, total=%d", created.ID, created.Total)

	return &Response{
		QuoteID:   created.ID,
		Total:     created.Total,
		Breakdown: created.Breakdown,
		CreatedAt: created.CreatedAt,
	}, nil
}

// resolveDistance возвращает расстояние перевозки в километрах
// Явно заданное значение имеет приоритет; иначе считаем через геосервис
// с graceful degradation на дистанцию по умолчанию
func (uc *UseCase) resolveDistance(ctx context.Context, req *Request) (int, error) {
	if req.DistanceKm != nil {
		return *req.DistanceKm, nil
	}

	km, err := uc.geoClient.GetDistanceWithGracefulDegradation(ctx, req.OriginAddress, req.DestinationAddress)
	if err != nil {
		if errors.Is(err, geodist.ErrAddressNotFound) {
			uc.logger.Warn("QuotePrice: address not found: origin=%q, destination=%q",
				req.OriginAddress, req.DestinationAddress)
			return 0, ErrAddressNotFound
		}
		if errors.Is(err, geodist.ErrServiceDegraded) {
			// Геосервис недоступен, km уже содержит дистанцию по умолчанию
			uc.logger.Warn("QuotePrice: geo service degraded, using default distance %.1f km", km)
			return int(math.Round(km)), nil
		}
		uc.logger.Error("QuotePrice: failed to get distance: %v", err)
		return 0, fmt.Errorf("%w: failed to get distance: %v", ErrInternal, err)
	}

	return int(math.Round(km)), nil
}
