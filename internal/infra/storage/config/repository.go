package config

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/MCB-BookingService/internal/domain"
	"github.com/m04kA/MCB-BookingService/pkg/dbmetrics"
	"github.com/m04kA/MCB-BookingService/pkg/psqlbuilder"
)

// Ключи singleton-записей конфигурации
const (
	keyFleet    = "fleet"
	keyPricing  = "pricing"
	keySchedule = "schedule"
)

// Repository репозиторий singleton-конфигураций (флот, цены, расписание)
// Каждая конфигурация - одна запись с фиксированным ключом в service_configs.
// Запись заменяется целиком через upsert по известному ключу: никакого
// get-or-create и связанной с ним гонки read-check-write при первой записи.
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория конфигураций
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetFleet получает конфигурацию флота
func (r *Repository) GetFleet(ctx context.Context) (*domain.FleetConfig, error) {
	var cfg domain.FleetConfig
	if err := r.get(ctx, keyFleet, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// SaveFleet атомарно заменяет конфигурацию флота
func (r *Repository) SaveFleet(ctx context.Context, cfg *domain.FleetConfig) error {
	return r.upsert(ctx, keyFleet, cfg)
}

// GetPricing получает конфигурацию цен
func (r *Repository) GetPricing(ctx context.Context) (*domain.PricingConfig, error) {
	var cfg domain.PricingConfig
	if err := r.get(ctx, keyPricing, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// SavePricing атомарно заменяет конфигурацию цен
func (r *Repository) SavePricing(ctx context.Context, cfg *domain.PricingConfig) error {
	return r.upsert(ctx, keyPricing, cfg)
}

// GetSchedule получает конфигурацию расписания слотов
func (r *Repository) GetSchedule(ctx context.Context) (*domain.ScheduleConfig, error) {
	var cfg domain.ScheduleConfig
	if err := r.get(ctx, keySchedule, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// SaveSchedule атомарно заменяет конфигурацию расписания
func (r *Repository) SaveSchedule(ctx context.Context, cfg *domain.ScheduleConfig) error {
	return r.upsert(ctx, keySchedule, cfg)
}

// get читает и десериализует singleton-запись по ключу
func (r *Repository) get(ctx context.Context, key string, dst interface{}) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("value").
		From("service_configs").
		Where(squirrel.Eq{"key": key}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: get(%s) - build select query: %v", ErrBuildQuery, key, err)
	}

	var raw []byte
	err = executor.QueryRowContext(ctx, query, args...).Scan(&raw)
	if err == sql.ErrNoRows {
		return ErrConfigNotFound
	}
	if err != nil {
		return fmt.Errorf("%w: get(%s) - scan value: %v", ErrScanRow, key, err)
	}

	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("%w: get(%s): %v", ErrDecode, key, err)
	}

	return nil
}

// upsert записывает singleton-конфигурацию целиком
// INSERT ... ON CONFLICT (key) DO UPDATE - одна атомарная замена записи
func (r *Repository) upsert(ctx context.Context, key string, value interface{}) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("%w: upsert(%s): %v", ErrEncode, key, err)
	}

	query, args, err := psqlbuilder.Insert("service_configs").
		Columns("key", "value").
		Values(key, raw).
		Suffix("ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: upsert(%s) - build insert query: %v", ErrBuildQuery, key, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: upsert(%s) - execute upsert: %v", ErrExecQuery, key, err)
	}

	return nil
}
