package create_booking

import (
	"time"

	"github.com/m04kA/MCB-BookingService/pkg/types"
)

// Request запрос на создание бронирования
type Request struct {
	QuoteID       string
	ClientName    string
	ClientEmail   string
	ClientPhone   string
	ScheduledDate time.Time
	ScheduledTime types.TimeString
	PaymentType   string
}

// Response ответ с созданным бронированием
type Response struct {
	ID            int64
	QuoteID       string
	ClientName    string
	ClientEmail   string
	ClientPhone   string
	ScheduledDate time.Time
	ScheduledTime types.TimeString
	DurationHours int
	Status        string
	PaymentStatus string
	PaymentType   string
	TotalPrice    int64
	OriginalPrice int64
	// PaymentURL ссылка на оплату; пустая, если шлюз был недоступен
	PaymentURL string
	CreatedAt  time.Time
}
