package domain

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Default configuration values
const (
	DefaultNumVehicles    = 2
	DefaultDurationHours  = 4
	MinNumVehicles        = 1
	MaxNumVehicles        = 50
	MaxClientNameLength   = 200
	MaxReasonLength       = 500
	PartialPaymentPercent = 50 // аванс - половина полной стоимости
)

// Статус-коды платежного шлюза в уведомлениях
const (
	GatewayCodeApproved  = "approved"
	GatewayCodeRejected  = "rejected"
	GatewayCodeCancelled = "cancelled"
)

// DefaultSchedule расписание слотов по умолчанию (до первой публикации админом)
var DefaultSchedule = ScheduleConfig{
	Slots: []TimeSlot{
		{Time: "09:00", Label: "Mañana", Recommended: true},
		{Time: "12:00", Label: "Mediodía", Recommended: false},
		{Time: "15:00", Label: "Tarde", Recommended: false},
	},
}

// DefaultPricing конфигурация цен по умолчанию
// Календарь праздников - национальные праздники Чили
var DefaultPricing = PricingConfig{
	BasePrice:          30000,
	PricePerCubicMeter: 2000,
	PricePerKilometer:  500,
	FreeKilometers:     50,
	FloorSurcharge:     5000,
	AdditionalServices: map[string]int64{
		"embalaje":   15000,
		"desmontaje": 10000,
		"limpieza":   20000,
	},
	SpecialPackaging: map[string]int64{
		"fragil":      5000,
		"electronica": 8000,
		"arte":        12000,
	},
	TimeSurcharges: TimeSurcharges{Saturday: 20, Sunday: 30, Holiday: 35},
	Discounts:      Discounts{Flexibility: 10, AdvanceBooking: 5, RepeatCustomer: 8},
	Holidays: []string{
		"2025-01-01", "2025-04-18", "2025-05-01", "2025-05-21",
		"2025-06-20", "2025-07-16", "2025-08-15", "2025-09-18",
		"2025-09-19", "2025-10-31", "2025-12-08", "2025-12-25",
		"2026-01-01", "2026-04-03", "2026-05-01", "2026-05-21",
		"2026-06-21", "2026-07-16", "2026-08-15", "2026-09-18",
		"2026-09-19", "2026-10-31", "2026-12-08", "2026-12-25",
	},
}
