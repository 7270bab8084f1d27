package domain

import "time"

// TimeSurcharges процентные надбавки к стоимости по дню выполнения
type TimeSurcharges struct {
	Saturday int `json:"saturday"`
	Sunday   int `json:"sunday"`
	Holiday  int `json:"holiday"`
}

// Discounts процентные скидки; применяется не более одной (наибольшая из подходящих)
type Discounts struct {
	Flexibility    int `json:"flexibility"`
	AdvanceBooking int `json:"advanceBooking"`
	RepeatCustomer int `json:"repeatCustomer"`
}

// PricingConfig represents the declarative pricing configuration
// Все суммы в целых денежных единицах (CLP). Singleton: запись заменяется целиком,
// без частичного слияния полей.
type PricingConfig struct {
	BasePrice          int64            `json:"basePrice"`
	PricePerCubicMeter int64            `json:"pricePerCubicMeter"`
	PricePerKilometer  int64            `json:"pricePerKilometer"`
	FreeKilometers     int              `json:"freeKilometers"`
	FloorSurcharge     int64            `json:"floorSurcharge"`
	AdditionalServices map[string]int64 `json:"additionalServices"`
	SpecialPackaging   map[string]int64 `json:"specialPackaging"`
	TimeSurcharges     TimeSurcharges   `json:"timeSurcharges"`
	Discounts          Discounts        `json:"discounts"`

	// Календарь праздничных дат в формате YYYY-MM-DD
	// Праздничная надбавка имеет приоритет над выходной
	Holidays []string `json:"holidays"`
}

// IsHoliday returns true if the date is in the configured holiday calendar
func (c *PricingConfig) IsHoliday(date time.Time) bool {
	key := date.Format(DateFormat)
	for _, h := range c.Holidays {
		if h == key {
			return true
		}
	}
	return false
}

// QuoteLine одна строка детализации стоимости
type QuoteLine struct {
	Label  string `json:"label"`
	Amount int64  `json:"amount"`
}

// Quote represents a persisted price quote
// Квота фиксирует итоговую сумму и детализацию на момент расчёта:
// последующие изменения PricingConfig не влияют на уже выданные квоты
type Quote struct {
	ID        string
	Total     int64
	Breakdown []QuoteLine
	CreatedAt time.Time
}
