package config

import (
	"sync"

	"github.com/m04kA/MCB-BookingService/internal/domain"
)

// cache явный кэш конфигураций
// Конфигурации read-mostly: читаются на каждом запросе доступности
// и бронирования, меняются редко. Инвалидация происходит на пути
// админской записи, без фонового TTL
type cache struct {
	mu       sync.RWMutex
	fleet    *domain.FleetConfig
	pricing  *domain.PricingConfig
	schedule *domain.ScheduleConfig
}

func (c *cache) Fleet() *domain.FleetConfig {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.fleet
}

func (c *cache) SetFleet(cfg *domain.FleetConfig) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.fleet = cfg
}

func (c *cache) Pricing() *domain.PricingConfig {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.pricing
}

func (c *cache) SetPricing(cfg *domain.PricingConfig) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pricing = cfg
}

func (c *cache) Schedule() *domain.ScheduleConfig {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.schedule
}

func (c *cache) SetSchedule(cfg *domain.ScheduleConfig) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.schedule = cfg
}

// Invalidate сбрасывает все кэшированные конфигурации
func (c *cache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.fleet = nil
	c.pricing = nil
	c.schedule = nil
}
