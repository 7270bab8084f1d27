package quote_price

import (
	"time"

	"github.com/m04kA/MCB-BookingService/internal/domain"
)

// Request запрос на расчет стоимости переезда
type Request struct {
	VolumeM3           int
	OriginAddress      string
	DestinationAddress string
	// DistanceKm явно заданное расстояние; если nil, считается через геосервис
	DistanceKm       *int
	FloorsNoElevator int
	SelectedServices []string
	SpecialPackaging []string
	Date             time.Time
	IsFlexibleDate   bool
	IsAdvanceBooking bool
	IsRepeatCustomer bool
}

// Response ответ с расчетом стоимости
type Response struct {
	QuoteID   string
	Total     int64
	Breakdown []domain.QuoteLine
	CreatedAt time.Time
}
