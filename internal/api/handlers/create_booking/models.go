package create_booking

import (
	"time"

	"github.com/m04kA/MCB-BookingService/internal/domain"
	createBooking "github.com/m04kA/MCB-BookingService/internal/usecase/create_booking"
	"github.com/m04kA/MCB-BookingService/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	QuoteID       string `json:"quoteId"`
	ClientName    string `json:"clientName"`
	ClientEmail   string `json:"clientEmail"`
	ClientPhone   string `json:"clientPhone"`
	ScheduledDate string `json:"scheduledDate"` // "2025-06-01"
	ScheduledTime string `json:"scheduledTime"` // "09:00"
	PaymentType   string `json:"paymentType"`   // "completo" | "parcial"
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID            int64  `json:"id"`
	QuoteID       string `json:"quoteId"`
	ClientName    string `json:"clientName"`
	ClientEmail   string `json:"clientEmail"`
	ClientPhone   string `json:"clientPhone"`
	ScheduledDate string `json:"scheduledDate"`
	ScheduledTime string `json:"scheduledTime"`
	DurationHours int    `json:"durationHours"`
	Status        string `json:"status"`
	PaymentStatus string `json:"paymentStatus"`
	PaymentType   string `json:"paymentType"`
	TotalPrice    int64  `json:"totalPrice"`
	OriginalPrice int64  `json:"originalPrice"`
	PaymentURL    string `json:"paymentUrl,omitempty"`
	CreatedAt     string `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	// Парсим дату
	scheduledDate, err := time.Parse(domain.DateFormat, r.ScheduledDate)
	if err != nil {
		return nil, err
	}

	// Парсим время
	scheduledTime, err := types.NewTimeStringFromString(r.ScheduledTime)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		QuoteID:       r.QuoteID,
		ClientName:    r.ClientName,
		ClientEmail:   r.ClientEmail,
		ClientPhone:   r.ClientPhone,
		ScheduledDate: scheduledDate,
		ScheduledTime: scheduledTime,
		PaymentType:   r.PaymentType,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:            resp.ID,
		QuoteID:       resp.QuoteID,
		ClientName:    resp.ClientName,
		ClientEmail:   resp.ClientEmail,
		ClientPhone:   resp.ClientPhone,
		ScheduledDate: resp.ScheduledDate.Format(domain.DateFormat),
		ScheduledTime: resp.ScheduledTime.String(),
		DurationHours: resp.DurationHours,
		Status:        resp.Status,
		PaymentStatus: resp.PaymentStatus,
		PaymentType:   resp.PaymentType,
		TotalPrice:    resp.TotalPrice,
		OriginalPrice: resp.OriginalPrice,
		PaymentURL:    resp.PaymentURL,
		CreatedAt:     resp.CreatedAt.Format(time.RFC3339),
	}
}
