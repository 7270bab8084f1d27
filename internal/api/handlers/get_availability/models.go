package get_availability

import (
	"github.com/m04kA/MCB-BookingService/internal/domain"
	getAvailability "github.com/m04kA/MCB-BookingService/internal/usecase/get_availability"
)

// SlotResponse HTTP модель доступного слота
type SlotResponse struct {
	Time           string `json:"time"`
	Label          string `json:"label"`
	Recommended    bool   `json:"recommended"`
	AvailableUnits int    `json:"availableUnits"`
}

// AvailabilityResponse HTTP модель ответа доступности
type AvailabilityResponse struct {
	Date  string         `json:"date"`
	Slots []SlotResponse `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailability.Response) *AvailabilityResponse {
	slots := make([]SlotResponse, 0, len(resp.Slots))
	for _, slot := range resp.Slots {
		slots = append(slots, SlotResponse{
			Time:           slot.Time.String(),
			Label:          slot.Label,
			Recommended:    slot.Recommended,
			AvailableUnits: slot.AvailableUnits,
		})
	}

	return &AvailabilityResponse{
		Date:  resp.Date.Format(domain.DateFormat),
		Slots: slots,
	}
}
