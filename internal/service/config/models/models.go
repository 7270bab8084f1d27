package models

import (
	"time"

	"github.com/m04kA/MCB-BookingService/internal/domain"
	"github.com/m04kA/MCB-BookingService/pkg/types"
)

// Request модели

// UpdateFleetRequest запрос на обновление конфигурации флота
type UpdateFleetRequest struct {
	NumVehicles int `json:"numVehicles"`
}

// UpdatePricingRequest запрос на полную замену конфигурации цен
type UpdatePricingRequest struct {
	BasePrice          int64            `json:"basePrice"`
	PricePerCubicMeter int64            `json:"pricePerCubicMeter"`
	PricePerKilometer  int64            `json:"pricePerKilometer"`
	FreeKilometers     int              `json:"freeKilometers"`
	FloorSurcharge     int64            `json:"floorSurcharge"`
	AdditionalServices map[string]int64 `json:"additionalServices"`
	SpecialPackaging   map[string]int64 `json:"specialPackaging"`
	TimeSurcharges     TimeSurcharges   `json:"timeSurcharges"`
	Discounts          Discounts        `json:"discounts"`
	Holidays           []string         `json:"holidays"`
}

// TimeSurcharges процентные надбавки за день недели
type TimeSurcharges struct {
	Saturday int `json:"saturday"`
	Sunday   int `json:"sunday"`
	Holiday  int `json:"holiday"`
}

// Discounts процентные скидки
type Discounts struct {
	Flexibility    int `json:"flexibility"`
	AdvanceBooking int `json:"advanceBooking"`
	RepeatCustomer int `json:"repeatCustomer"`
}

// UpdateScheduleRequest запрос на полную замену расписания слотов
type UpdateScheduleRequest struct {
	Slots []TimeSlot `json:"slots"`
}

// TimeSlot слот расписания
type TimeSlot struct {
	Time        string `json:"time"`
	Label       string `json:"label"`
	Recommended bool   `json:"recommended"`
}

// CreateBlockedIntervalRequest запрос на создание интервала блокировки
type CreateBlockedIntervalRequest struct {
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Reason    string `json:"reason"`
}

// Response модели

// FleetConfigResponse ответ с конфигурацией флота
type FleetConfigResponse struct {
	NumVehicles int `json:"numVehicles"`
}

// PricingConfigResponse ответ с конфигурацией цен
type PricingConfigResponse struct {
	BasePrice          int64            `json:"basePrice"`
	PricePerCubicMeter int64            `json:"pricePerCubicMeter"`
	PricePerKilometer  int64            `json:"pricePerKilometer"`
	FreeKilometers     int              `json:"freeKilometers"`
	FloorSurcharge     int64            `json:"floorSurcharge"`
	AdditionalServices map[string]int64 `json:"additionalServices"`
	SpecialPackaging   map[string]int64 `json:"specialPackaging"`
	TimeSurcharges     TimeSurcharges   `json:"timeSurcharges"`
	Discounts          Discounts        `json:"discounts"`
	Holidays           []string         `json:"holidays"`
}

// ScheduleConfigResponse ответ с расписанием слотов
type ScheduleConfigResponse struct {
	Slots []TimeSlot `json:"slots"`
}

// BlockedIntervalResponse ответ с интервалом блокировки
type BlockedIntervalResponse struct {
	ID        int64     `json:"id"`
	Date      string    `json:"date"`
	StartTime string    `json:"startTime"`
	EndTime   string    `json:"endTime"`
	Reason    string    `json:"reason"`
	CreatedAt time.Time `json:"createdAt"`
}

// BlockedIntervalListResponse ответ со списком интервалов блокировки
type BlockedIntervalListResponse struct {
	Intervals []BlockedIntervalResponse `json:"intervals"`
}

// Методы конвертации

// ToDomainFleet конвертирует request в domain модель
func (r *UpdateFleetRequest) ToDomainFleet() *domain.FleetConfig {
	return &domain.FleetConfig{NumVehicles: r.NumVehicles}
}

// ToDomainPricing конвертирует request в domain модель
func (r *UpdatePricingRequest) ToDomainPricing() *domain.PricingConfig {
	return &domain.PricingConfig{
		BasePrice:          r.BasePrice,
		PricePerCubicMeter: r.PricePerCubicMeter,
		PricePerKilometer:  r.PricePerKilometer,
		FreeKilometers:     r.FreeKilometers,
		FloorSurcharge:     r.FloorSurcharge,
		AdditionalServices: r.AdditionalServices,
		SpecialPackaging:   r.SpecialPackaging,
		TimeSurcharges: domain.TimeSurcharges{
			Saturday: r.TimeSurcharges.Saturday,
			Sunday:   r.TimeSurcharges.Sunday,
			Holiday:  r.TimeSurcharges.Holiday,
		},
		Discounts: domain.Discounts{
			Flexibility:    r.Discounts.Flexibility,
			AdvanceBooking: r.Discounts.AdvanceBooking,
			RepeatCustomer: r.Discounts.RepeatCustomer,
		},
		Holidays: r.Holidays,
	}
}

// ToDomainSchedule конвертирует request в domain модель
func (r *UpdateScheduleRequest) ToDomainSchedule() *domain.ScheduleConfig {
	slots := make([]domain.TimeSlot, 0, len(r.Slots))
	for _, slot := range r.Slots {
		slots = append(slots, domain.TimeSlot{
			Time:        types.TimeString(slot.Time),
			Label:       slot.Label,
			Recommended: slot.Recommended,
		})
	}
	return &domain.ScheduleConfig{Slots: slots}
}

// FromDomainFleet конвертирует domain модель в DTO
func FromDomainFleet(cfg *domain.FleetConfig) *FleetConfigResponse {
	return &FleetConfigResponse{NumVehicles: cfg.NumVehicles}
}

// FromDomainPricing конвертирует domain модель в DTO
func FromDomainPricing(cfg *domain.PricingConfig) *PricingConfigResponse {
	return &PricingConfigResponse{
		BasePrice:          cfg.BasePrice,
		PricePerCubicMeter: cfg.PricePerCubicMeter,
		PricePerKilometer:  cfg.PricePerKilometer,
		FreeKilometers:     cfg.FreeKilometers,
		FloorSurcharge:     cfg.FloorSurcharge,
		AdditionalServices: cfg.AdditionalServices,
		SpecialPackaging:   cfg.SpecialPackaging,
		TimeSurcharges: TimeSurcharges{
			Saturday: cfg.TimeSurcharges.Saturday,
			Sunday:   cfg.TimeSurcharges.Sunday,
			Holiday:  cfg.TimeSurcharges.Holiday,
		},
		Discounts: Discounts{
			Flexibility:    cfg.Discounts.Flexibility,
			AdvanceBooking: cfg.Discounts.AdvanceBooking,
			RepeatCustomer: cfg.Discounts.RepeatCustomer,
		},
		Holidays: cfg.Holidays,
	}
}

// FromDomainSchedule конвертирует domain модель в DTO
func FromDomainSchedule(cfg *domain.ScheduleConfig) *ScheduleConfigResponse {
	slots := make([]TimeSlot, 0, len(cfg.Slots))
	for _, slot := range cfg.Sorted() {
		slots = append(slots, TimeSlot{
			Time:        slot.Time.String(),
			Label:       slot.Label,
			Recommended: slot.Recommended,
		})
	}
	return &ScheduleConfigResponse{Slots: slots}
}

// FromDomainBlockedInterval конвертирует domain модель в DTO
func FromDomainBlockedInterval(b *domain.BlockedInterval) *BlockedIntervalResponse {
	return &BlockedIntervalResponse{
		ID:        b.ID,
		Date:      b.Date.Format(domain.DateFormat),
		StartTime: b.StartTime.String(),
		EndTime:   b.EndTime.String(),
		Reason:    b.Reason,
		CreatedAt: b.CreatedAt,
	}
}

// FromDomainBlockedIntervalList конвертирует список domain моделей в DTO
func FromDomainBlockedIntervalList(intervals []*domain.BlockedInterval) *BlockedIntervalListResponse {
	resp := &BlockedIntervalListResponse{
		Intervals: make([]BlockedIntervalResponse, 0, len(intervals)),
	}
	for _, interval := range intervals {
		resp.Intervals = append(resp.Intervals, *FromDomainBlockedInterval(interval))
	}
	return resp
}
