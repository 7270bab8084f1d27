package config

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/MCB-BookingService/internal/domain"
	blockedRepo "github.com/m04kA/MCB-BookingService/internal/infra/storage/blocked"
	configRepo "github.com/m04kA/MCB-BookingService/internal/infra/storage/config"
	"github.com/m04kA/MCB-BookingService/internal/service/config/models"
)

// Service сервис конфигураций: флот, цены, расписание, блокировки
// Геттеры отдают кэшированную конфигурацию, при отсутствии записи
// в хранилище - значения по умолчанию. Админская запись полностью
// заменяет singleton и инвалидирует кэш
type Service struct {
	configRepo  ConfigRepository
	blockedRepo BlockedRepository
	cache       cache
	logger      Logger
}

// NewService создает новый экземпляр сервиса конфигураций
func NewService(configRepo ConfigRepository, blockedRepo BlockedRepository, logger Logger) *Service {
	return &Service{
		configRepo:  configRepo,
		blockedRepo: blockedRepo,
		logger:      logger,
	}
}

// Fleet возвращает текущую конфигурацию флота
func (s *Service) Fleet(ctx context.Context) (*domain.FleetConfig, error) {
	if cached := s.cache.Fleet(); cached != nil {
		return cached, nil
	}

	cfg, err := s.configRepo.GetFleet(ctx)
	if err != nil {
		if errors.Is(err, configRepo.ErrConfigNotFound) {
			def := domain.FleetConfig{NumVehicles: domain.DefaultNumVehicles}
			s.cache.SetFleet(&def)
			return &def, nil
		}
		s.logger.Error("Fleet: repository error: %v", err)
		return nil, fmt.Errorf("%w: Fleet - repository error: %v", ErrInternal, err)
	}

	s.cache.SetFleet(cfg)
	return cfg, nil
}

// Pricing возвращает текущую конфигурацию цен
func (s *Service) Pricing(ctx context.Context) (*domain.PricingConfig, error) {
	if cached := s.cache.Pricing(); cached != nil {
		return cached, nil
	}

	cfg, err := s.configRepo.GetPricing(ctx)
	if err != nil {
		if errors.Is(err, configRepo.ErrConfigNotFound) {
			def := domain.DefaultPricing
			s.cache.SetPricing(&def)
			return &def, nil
		}
		s.logger.Error("Pricing: repository error: %v", err)
		return nil, fmt.Errorf("%w: Pricing - repository error: %v", ErrInternal, err)
	}

	s.cache.SetPricing(cfg)
	return cfg, nil
}

// Schedule возвращает текущее расписание слотов
func (s *Service) Schedule(ctx context.Context) (*domain.ScheduleConfig, error) {
	if cached := s.cache.Schedule(); cached != nil {
		return cached, nil
	}

	cfg, err := s.configRepo.GetSchedule(ctx)
	if err != nil {
		if errors.Is(err, configRepo.ErrConfigNotFound) {
			def := domain.DefaultSchedule
			s.cache.SetSchedule(&def)
			return &def, nil
		}
		s.logger.Error("Schedule: repository error: %v", err)
		return nil, fmt.Errorf("%w: Schedule - repository error: %v", ErrInternal, err)
	}

	s.cache.SetSchedule(cfg)
	return cfg, nil
}

// GetFleet возвращает конфигурацию флота для админского API
func (s *Service) GetFleet(ctx context.Context) (*models.FleetConfigResponse, error) {
	cfg, err := s.Fleet(ctx)
	if err != nil {
		return nil, err
	}
	return models.FromDomainFleet(cfg), nil
}

// GetPricing возвращает конфигурацию цен для админского API
func (s *Service) GetPricing(ctx context.Context) (*models.PricingConfigResponse, error) {
	cfg, err := s.Pricing(ctx)
	if err != nil {
		return nil, err
	}
	return models.FromDomainPricing(cfg), nil
}

// GetSchedule возвращает расписание слотов для админского API
func (s *Service) GetSchedule(ctx context.Context) (*models.ScheduleConfigResponse, error) {
	cfg, err := s.Schedule(ctx)
	if err != nil {
		return nil, err
	}
	return models.FromDomainSchedule(cfg), nil
}

// UpdateFleet полностью заменяет конфигурацию флота
func (s *Service) UpdateFleet(ctx context.Context, req *models.UpdateFleetRequest) (*models.FleetConfigResponse, error) {
	s.logger.Info("UpdateFleet: numVehicles=%d", req.NumVehicles)

	if req.NumVehicles < domain.MinNumVehicles || req.NumVehicles > domain.MaxNumVehicles {
		s.logger.Warn("UpdateFleet: invalid numVehicles=%d", req.NumVehicles)
		return nil, fmt.Errorf("%w: numVehicles must be between %d and %d",
			ErrInvalidInput, domain.MinNumVehicles, domain.MaxNumVehicles)
	}

	cfg := req.ToDomainFleet()
	if err := s.configRepo.SaveFleet(ctx, cfg); err != nil {
		s.logger.Error("UpdateFleet: repository error: %v", err)
		return nil, fmt.Errorf("%w: UpdateFleet - repository error: %v", ErrInternal, err)
	}

	s.cache.Invalidate()
	s.logger.Info("UpdateFleet: fleet config replaced, numVehicles=%d", cfg.NumVehicles)
	return models.FromDomainFleet(cfg), nil
}

// UpdatePricing полностью заменяет конфигурацию цен
// Частичного слияния нет: запись затирает предыдущую версию целиком
func (s *Service) UpdatePricing(ctx context.Context, req *models.UpdatePricingRequest) (*models.PricingConfigResponse, error) {
	s.logger.Info("UpdatePricing: basePrice=%d, services=%d", req.BasePrice, len(req.AdditionalServices))

	cfg := req.ToDomainPricing()
	if err := validatePricing(cfg); err != nil {
		s.logger.Warn("UpdatePricing: validation failed: %v", err)
		return nil, err
	}

	if err := s.configRepo.SavePricing(ctx, cfg); err != nil {
		s.logger.Error("UpdatePricing: repository error: %v", err)
		return nil, fmt.Errorf("%w: UpdatePricing - repository error: %v", ErrInternal, err)
	}

	s.cache.Invalidate()
	s.logger.Info("UpdatePricing: pricing config replaced")
	return models.FromDomainPricing(cfg), nil
}

// UpdateSchedule полностью заменяет расписание слотов
func (s *Service) UpdateSchedule(ctx context.Context, req *models.UpdateScheduleRequest) (*models.ScheduleConfigResponse, error) {
	s.logger.Info("UpdateSchedule: %d slots", len(req.Slots))

	cfg := req.ToDomainSchedule()
	if err := validateSchedule(cfg); err != nil {
		s.logger.Warn("UpdateSchedule: validation failed: %v", err)
		return nil, err
	}

	if err := s.configRepo.SaveSchedule(ctx, cfg); err != nil {
		s.logger.Error("UpdateSchedule: repository error: %v", err)
		return nil, fmt.Errorf("%w: UpdateSchedule - repository error: %v", ErrInternal, err)
	}

	s.cache.Invalidate()
	s.logger.Info("UpdateSchedule: schedule replaced with %d slots", len(cfg.Slots))
	return models.FromDomainSchedule(cfg), nil
}

// CreateBlockedInterval создает интервал блокировки
func (s *Service) CreateBlockedInterval(ctx context.Context, req *models.CreateBlockedIntervalRequest) (*models.BlockedIntervalResponse, error) {
	s.logger.Info("CreateBlockedInterval: date=%s, start=%s, end=%s", req.Date, req.StartTime, req.EndTime)

	interval, err := toDomainBlockedInterval(req)
	if err != nil {
		s.logger.Warn("CreateBlockedInterval: validation failed: %v", err)
		return nil, err
	}

	created, err := s.blockedRepo.Create(ctx, interval)
	if err != nil {
		s.logger.Error("CreateBlockedInterval: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateBlockedInterval - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateBlockedInterval: created interval id=%d", created.ID)
	return models.FromDomainBlockedInterval(created), nil
}

// ListBlockedIntervals возвращает интервалы блокировки на дату
func (s *Service) ListBlockedIntervals(ctx context.Context, date time.Time) (*models.BlockedIntervalListResponse, error) {
	intervals, err := s.blockedRepo.ListByDate(ctx, date)
	if err != nil {
		s.logger.Error("ListBlockedIntervals: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListBlockedIntervals - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainBlockedIntervalList(intervals), nil
}

// DeleteBlockedInterval удаляет интервал блокировки
func (s *Service) DeleteBlockedInterval(ctx context.Context, id int64) error {
	s.logger.Info("DeleteBlockedInterval: id=%d", id)

	if err := s.blockedRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, blockedRepo.ErrIntervalNotFound) {
			s.logger.Warn("DeleteBlockedInterval: interval id=%d not found", id)
			return ErrIntervalNotFound
		}
		s.logger.Error("DeleteBlockedInterval: repository error for id=%d: %v", id, err)
		return fmt.Errorf("%w: DeleteBlockedInterval - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("DeleteBlockedInterval: deleted interval id=%d", id)
	return nil
}
