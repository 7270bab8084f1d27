package quote_price

import (
	"time"

	"github.com/m04kA/MCB-BookingService/internal/domain"
	quotePrice "github.com/m04kA/MCB-BookingService/internal/usecase/quote_price"
)

// QuoteRequest HTTP request model
type QuoteRequest struct {
	VolumeM3           int      `json:"volumeM3"`
	OriginAddress      string   `json:"originAddress,omitempty"`
	DestinationAddress string   `json:"destinationAddress,omitempty"`
	DistanceKm         *int     `json:"distanceKm,omitempty"`
	FloorsNoElevator   int      `json:"floorsNoElevator"`
	SelectedServices   []string `json:"selectedServices,omitempty"`
	SpecialPackaging   []string `json:"specialPackaging,omitempty"`
	Date               string   `json:"date"` // "2025-06-01"
	IsFlexibleDate     bool     `json:"isFlexibleDate"`
	IsAdvanceBooking   bool     `json:"isAdvanceBooking"`
	IsRepeatCustomer   bool     `json:"isRepeatCustomer"`
}

// QuoteLineResponse строка детализации расчета
type QuoteLineResponse struct {
	Label  string `json:"label"`
	Amount int64  `json:"amount"`
}

// QuoteResponse HTTP response model
type QuoteResponse struct {
	QuoteID   string              `json:"quoteId"`
	Total     int64               `json:"total"`
	Breakdown []QuoteLineResponse `json:"breakdown"`
	CreatedAt string              `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *QuoteRequest) ToUseCaseRequest() (*quotePrice.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	return &quotePrice.Request{
		VolumeM3:           r.VolumeM3,
		OriginAddress:      r.OriginAddress,
		DestinationAddress: r.DestinationAddress,
		DistanceKm:         r.DistanceKm,
		FloorsNoElevator:   r.FloorsNoElevator,
		SelectedServices:   r.SelectedServices,
		SpecialPackaging:   r.SpecialPackaging,
		Date:               date,
		IsFlexibleDate:     r.IsFlexibleDate,
		IsAdvanceBooking:   r.IsAdvanceBooking,
		IsRepeatCustomer:   r.IsRepeatCustomer,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *quotePrice.Response) *QuoteResponse {
	breakdown := make([]QuoteLineResponse, 0, len(resp.Breakdown))
	for _, line := range resp.Breakdown {
		breakdown = append(breakdown, QuoteLineResponse{Label: line.Label, Amount: line.Amount})
	}

	return &QuoteResponse{
		QuoteID:   resp.QuoteID,
		Total:     resp.Total,
		Breakdown: breakdown,
		CreatedAt: resp.CreatedAt.Format(time.RFC3339),
	}
}
