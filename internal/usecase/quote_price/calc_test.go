package quote_price

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/MCB-BookingService/internal/domain"
)

func testPricingConfig() *domain.PricingConfig {
	return &domain.PricingConfig{
		BasePrice:          30000,
		PricePerCubicMeter: 2000,
		PricePerKilometer:  500,
		FreeKilometers:     50,
		FloorSurcharge:     5000,
		AdditionalServices: map[string]int64{
			"embalaje":   15000,
			"desmontaje": 10000,
		},
		SpecialPackaging: map[string]int64{
			"fragil": 5000,
		},
		TimeSurcharges: domain.TimeSurcharges{Saturday: 20, Sunday: 30, Holiday: 35},
		Discounts:      domain.Discounts{Flexibility: 10, AdvanceBooking: 5, RepeatCustomer: 8},
		Holidays:       []string{"2025-09-18"},
	}
}

func mustDate(t *testing.T, value string) time.Time {
	t.Helper()
	date, err := time.Parse(domain.DateFormat, value)
	require.NoError(t, err)
	return date
}

func TestCalculate_SaturdaySurcharge(t *testing.T) {
	cfg := testPricingConfig()

	// 2025-06-07 - суббота
	req := &Request{
		VolumeM3: 5,
		Date:     mustDate(t, "2025-06-07"),
	}

	total, breakdown, err := calculate(req, 60, cfg)
	require.NoError(t, err)

	// 30000 + 5*2000 + 10*500 = 45000, +20% = 54000
	assert.Equal(t, int64(54000), total)
	require.Len(t, breakdown, 4)
	assert.Equal(t, "Tarifa base", breakdown[0].Label)
	assert.Equal(t, int64(30000), breakdown[0].Amount)
	assert.Equal(t, "Volumen (5 m3)", breakdown[1].Label)
	assert.Equal(t, int64(10000), breakdown[1].Amount)
	assert.Equal(t, "Distancia (10 km adicionales)", breakdown[2].Label)
	assert.Equal(t, int64(5000), breakdown[2].Amount)
	assert.Equal(t, "Recargo sábado (+20%)", breakdown[3].Label)
	assert.Equal(t, int64(9000), breakdown[3].Amount)
}

func TestCalculate_Deterministic(t *testing.T) {
	cfg := testPricingConfig()

	req := &Request{
		VolumeM3:         12,
		FloorsNoElevator: 3,
		SelectedServices: []string{"embalaje", "desmontaje"},
		SpecialPackaging: []string{"fragil"},
		Date:             mustDate(t, "2025-06-09"),
		IsFlexibleDate:   true,
	}

	total1, breakdown1, err := calculate(req, 120, cfg)
	require.NoError(t, err)

	total2, breakdown2, err := calculate(req, 120, cfg)
	require.NoError(t, err)

	assert.Equal(t, total1, total2)
	assert.Equal(t, breakdown1, breakdown2)
}

func TestCalculate_FreeKilometers(t *testing.T) {
	cfg := testPricingConfig()

	req := &Request{Date: mustDate(t, "2025-06-09")}

	total, breakdown, err := calculate(req, 50, cfg)
	require.NoError(t, err)

	// Расстояние в пределах бесплатных километров не тарифицируется
	assert.Equal(t, int64(30000), total)
	require.Len(t, breakdown, 1)
	assert.Equal(t, "Tarifa base", breakdown[0].Label)
}

func TestCalculate_UnknownService(t *testing.T) {
	cfg := testPricingConfig()

	req := &Request{
		SelectedServices: []string{"mudanza-espacial"},
		Date:             mustDate(t, "2025-06-09"),
	}

	_, _, err := calculate(req, 10, cfg)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCalculate_UnknownPackagingTier(t *testing.T) {
	cfg := testPricingConfig()

	req := &Request{
		SpecialPackaging: []string{"diamantes"},
		Date:             mustDate(t, "2025-06-09"),
	}

	_, _, err := calculate(req, 10, cfg)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCalculate_HolidayOverridesWeekend(t *testing.T) {
	cfg := testPricingConfig()
	// 2025-06-07 - суббота, одновременно объявленная праздником
	cfg.Holidays = []string{"2025-06-07"}

	req := &Request{Date: mustDate(t, "2025-06-07")}

	total, breakdown, err := calculate(req, 0, cfg)
	require.NoError(t, err)

	// Применяется только праздничная надбавка 35%, не суббота 20%
	assert.Equal(t, int64(40500), total)
	require.Len(t, breakdown, 2)
	assert.Equal(t, "Recargo festivo (+35%)", breakdown[1].Label)
	assert.Equal(t, int64(10500), breakdown[1].Amount)
}

func TestCalculate_BestDiscountWins(t *testing.T) {
	cfg := testPricingConfig()

	req := &Request{
		Date:             mustDate(t, "2025-06-09"),
		IsFlexibleDate:   true,
		IsAdvanceBooking: true,
		IsRepeatCustomer: true,
	}

	total, breakdown, err := calculate(req, 0, cfg)
	require.NoError(t, err)

	// Скидки не суммируются: применяется наибольшая (10%)
	assert.Equal(t, int64(27000), total)
	require.Len(t, breakdown, 2)
	assert.Equal(t, "Descuento fecha flexible (-10%)", breakdown[1].Label)
	assert.Equal(t, int64(-3000), breakdown[1].Amount)
}

func TestCalculate_NoSurchargeOnWeekday(t *testing.T) {
	cfg := testPricingConfig()

	// 2025-06-09 - понедельник
	req := &Request{Date: mustDate(t, "2025-06-09")}

	total, breakdown, err := calculate(req, 0, cfg)
	require.NoError(t, err)

	assert.Equal(t, int64(30000), total)
	assert.Len(t, breakdown, 1)
}

func TestPercentOf_HalfUpRounding(t *testing.T) {
	assert.Equal(t, int64(9000), percentOf(45000, 20))
	assert.Equal(t, int64(53), percentOf(105, 50))
	assert.Equal(t, int64(1), percentOf(1, 50))
	assert.Equal(t, int64(0), percentOf(0, 35))
}
