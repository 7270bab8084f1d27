package get_availability

import (
	"time"

	"github.com/m04kA/MCB-BookingService/pkg/types"
)

// Request запрос доступности слотов на дату
type Request struct {
	Date time.Time
}

// SlotInfo доступный слот в ответе
type SlotInfo struct {
	Time           types.TimeString
	Label          string
	Recommended    bool
	AvailableUnits int
}

// Response ответ со списком доступных слотов
type Response struct {
	Date  time.Time
	Slots []SlotInfo
}
