package config

import (
	"fmt"
	"time"

	"github.com/m04kA/MCB-BookingService/internal/domain"
	"github.com/m04kA/MCB-BookingService/internal/service/config/models"
	"github.com/m04kA/MCB-BookingService/pkg/types"
)

// validatePricing валидирует конфигурацию цен
func validatePricing(cfg *domain.PricingConfig) error {
	if cfg.BasePrice < 0 || cfg.PricePerCubicMeter < 0 || cfg.PricePerKilometer < 0 || cfg.FloorSurcharge < 0 {
		return fmt.Errorf("%w: prices must not be negative", ErrInvalidInput)
	}

	if cfg.FreeKilometers < 0 {
		return fmt.Errorf("%w: freeKilometers must not be negative", ErrInvalidInput)
	}

	for id, price := range cfg.AdditionalServices {
		if price < 0 {
			return fmt.Errorf("%w: service %q has negative price", ErrInvalidInput, id)
		}
	}

	for tier, price := range cfg.SpecialPackaging {
		if price < 0 {
			return fmt.Errorf("%w: packaging tier %q has negative price", ErrInvalidInput, tier)
		}
	}

	if err := validatePercent("timeSurcharges.saturday", cfg.TimeSurcharges.Saturday); err != nil {
		return err
	}
	if err := validatePercent("timeSurcharges.sunday", cfg.TimeSurcharges.Sunday); err != nil {
		return err
	}
	if err := validatePercent("timeSurcharges.holiday", cfg.TimeSurcharges.Holiday); err != nil {
		return err
	}
	if err := validatePercent("discounts.flexibility", cfg.Discounts.Flexibility); err != nil {
		return err
	}
	if err := validatePercent("discounts.advanceBooking", cfg.Discounts.AdvanceBooking); err != nil {
		return err
	}
	if err := validatePercent("discounts.repeatCustomer", cfg.Discounts.RepeatCustomer); err != nil {
		return err
	}

	for _, day := range cfg.Holidays {
		if _, err := time.Parse(domain.DateFormat, day); err != nil {
			return fmt.Errorf("%w: invalid holiday date %q", ErrInvalidInput, day)
		}
	}

	return nil
}

// validatePercent проверяет, что процент в пределах 0-100
func validatePercent(field string, pct int) error {
	if pct < 0 || pct > 100 {
		return fmt.Errorf("%w: %s must be between 0 and 100", ErrInvalidInput, field)
	}
	return nil
}

// validateSchedule валидирует расписание слотов
func validateSchedule(cfg *domain.ScheduleConfig) error {
	if len(cfg.Slots) == 0 {
		return fmt.Errorf("%w: schedule must contain at least one slot", ErrInvalidInput)
	}

	seen := make(map[types.TimeString]bool, len(cfg.Slots))
	for _, slot := range cfg.Slots {
		if err := slot.Time.Validate(); err != nil {
			return fmt.Errorf("%w: invalid slot time %q", ErrInvalidInput, slot.Time)
		}
		if slot.Label == "" {
			return fmt.Errorf("%w: slot %s has empty label", ErrInvalidInput, slot.Time)
		}
		if seen[slot.Time] {
			return fmt.Errorf("%w: duplicate slot time %s", ErrInvalidInput, slot.Time)
		}
		seen[slot.Time] = true
	}

	return nil
}

// toDomainBlockedInterval валидирует и конвертирует запрос на блокировку
func toDomainBlockedInterval(req *models.CreateBlockedIntervalRequest) (*domain.BlockedInterval, error) {
	date, err := time.Parse(domain.DateFormat, req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid date %q", ErrInvalidInput, req.Date)
	}

	start := types.TimeString(req.StartTime)
	if err := start.Validate(); err != nil {
		return nil, fmt.Errorf("%w: invalid startTime %q", ErrInvalidInput, req.StartTime)
	}

	end := types.TimeString(req.EndTime)
	if err := end.Validate(); err != nil {
		return nil, fmt.Errorf("%w: invalid endTime %q", ErrInvalidInput, req.EndTime)
	}

	// Интервал полуоткрытый [start, end), пустой не имеет смысла
	if !start.IsBefore(end) {
		return nil, fmt.Errorf("%w: startTime must be before endTime", ErrInvalidInput)
	}

	if len(req.Reason) > domain.MaxReasonLength {
		return nil, fmt.Errorf("%w: reason must not exceed %d characters", ErrInvalidInput, domain.MaxReasonLength)
	}

	return &domain.BlockedInterval{
		Date:      date,
		StartTime: start,
		EndTime:   end,
		Reason:    req.Reason,
	}, nil
}
