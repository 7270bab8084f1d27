package quote_price

import (
	"fmt"
	"time"

	"github.com/m04kA/MCB-BookingService/internal/domain"
)

// calculate вычисляет стоимость переезда по фиксированному порядку шагов
// Детерминированная функция: одинаковые входные данные и конфигурация
// всегда дают одинаковый результат (нужно для аудита и воспроизведения
// расчета в момент оплаты)
func calculate(req *Request, distanceKm int, cfg *domain.PricingConfig) (int64, []domain.QuoteLine, error) {
	breakdown := make([]domain.QuoteLine, 0, 8)

	// 1. Базовый тариф + объем
	subtotal := cfg.BasePrice
	breakdown = append(breakdown, domain.QuoteLine{Label: "Tarifa base", Amount: cfg.BasePrice})

	if req.VolumeM3 > 0 {
		volumeAmount := int64(req.VolumeM3) * cfg.PricePerCubicMeter
		subtotal += volumeAmount
		breakdown = append(breakdown, domain.QuoteLine{
			Label:  fmt.Sprintf("Volumen (%d m3)", req.VolumeM3),
			Amount: volumeAmount,
		})
	}

	// 2. Расстояние сверх бесплатных километров
	billableKm := distanceKm - cfg.FreeKilometers
	if billableKm < 0 {
		billableKm = 0
	}
	if billableKm > 0 {
		distanceAmount := int64(billableKm) * cfg.PricePerKilometer
		subtotal += distanceAmount
		breakdown = append(breakdown, domain.QuoteLine{
			Label:  fmt.Sprintf("Distancia (%d km adicionales)", billableKm),
			Amount: distanceAmount,
		})
	}

	// 3. Этажи без лифта
	if req.FloorsNoElevator > 0 {
		floorAmount := int64(req.FloorsNoElevator) * cfg.FloorSurcharge
		subtotal += floorAmount
		breakdown = append(breakdown, domain.QuoteLine{
			Label:  fmt.Sprintf("Pisos sin ascensor (%d)", req.FloorsNoElevator),
			Amount: floorAmount,
		})
	}

	// 4. Дополнительные услуги: неизвестный идентификатор отклоняется
	for _, serviceID := range req.SelectedServices {
		price, ok := cfg.AdditionalServices[serviceID]
		if !ok {
			return 0, nil, fmt.Errorf("%w: unknown service %q", ErrInvalidInput, serviceID)
		}
		subtotal += price
		breakdown = append(breakdown, domain.QuoteLine{
			Label:  fmt.Sprintf("Servicio: %s", serviceID),
			Amount: price,
		})
	}

	// 5. Специальная упаковка по уровням
	for _, tier := range req.SpecialPackaging {
		price, ok := cfg.SpecialPackaging[tier]
		if !ok {
			return 0, nil, fmt.Errorf("%w: unknown packaging tier %q", ErrInvalidInput, tier)
		}
		subtotal += price
		breakdown = append(breakdown, domain.QuoteLine{
			Label:  fmt.Sprintf("Embalaje especial: %s", tier),
			Amount: price,
		})
	}

	// 6. Надбавка за день недели как процент от промежуточной суммы
	// Применяется не более одной: праздник имеет приоритет над выходным
	surchargePct, surchargeLabel := surchargeFor(req.Date, cfg)
	if surchargePct > 0 {
		surchargeAmount := percentOf(subtotal, surchargePct)
		subtotal += surchargeAmount
		breakdown = append(breakdown, domain.QuoteLine{
			Label:  fmt.Sprintf("%s (+%d%%)", surchargeLabel, surchargePct),
			Amount: surchargeAmount,
		})
	}

	// 7. Скидка: выбирается одна, наибольшая из применимых (не суммируются)
	discountPct, discountLabel := bestDiscount(req, cfg)
	if discountPct > 0 {
		discountAmount := percentOf(subtotal, discountPct)
		subtotal -= discountAmount
		breakdown = append(breakdown, domain.QuoteLine{
			Label:  fmt.Sprintf("%s (-%d%%)", discountLabel, discountPct),
			Amount: -discountAmount,
		})
	}

	return subtotal, breakdown, nil
}

// percentOf вычисляет процент от суммы с округлением половины вверх
// Все суммы в целых единицах валюты, дробных значений не бывает
func percentOf(amount int64, pct int) int64 {
	return (amount*int64(pct) + 50) / 100
}

// surchargeFor возвращает процент надбавки за дату
// Праздник имеет приоритет над субботой и воскресеньем
func surchargeFor(date time.Time, cfg *domain.PricingConfig) (int, string) {
	if cfg.IsHoliday(date) {
		return cfg.TimeSurcharges.Holiday, "Recargo festivo"
	}

	switch date.Weekday() {
	case time.Saturday:
		return cfg.TimeSurcharges.Saturday, "Recargo sábado"
	case time.Sunday:
		return cfg.TimeSurcharges.Sunday, "Recargo domingo"
	default:
		return 0, ""
	}
}

// bestDiscount возвращает наибольшую из применимых скидок
func bestDiscount(req *Request, cfg *domain.PricingConfig) (int, string) {
	pct := 0
	label := ""

	if req.IsFlexibleDate && cfg.Discounts.Flexibility > pct {
		pct = cfg.Discounts.Flexibility
		label = "Descuento fecha flexible"
	}
	if req.IsAdvanceBooking && cfg.Discounts.AdvanceBooking > pct {
		pct = cfg.Discounts.AdvanceBooking
		label = "Descuento reserva anticipada"
	}
	if req.IsRepeatCustomer && cfg.Discounts.RepeatCustomer > pct {
		pct = cfg.Discounts.RepeatCustomer
		label = "Descuento cliente frecuente"
	}

	return pct, label
}
