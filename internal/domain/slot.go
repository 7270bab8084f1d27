package domain

import (
	"sort"

	"github.com/m04kA/MCB-BookingService/pkg/types"
)

// TimeSlot represents a bookable time-of-day offering
type TimeSlot struct {
	Time        types.TimeString `json:"time"`
	Label       string           `json:"label"`
	Recommended bool             `json:"recommended"`
}

// ScheduleConfig упорядоченный список слотов активного расписания
// Singleton-конфигурация; слоты неизменны после публикации расписания
type ScheduleConfig struct {
	Slots []TimeSlot `json:"slots"`
}

// Sorted returns the slots ordered by time of day ascending
func (s *ScheduleConfig) Sorted() []TimeSlot {
	sorted := make([]TimeSlot, len(s.Slots))
	copy(sorted, s.Slots)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Time.IsBefore(sorted[j].Time)
	})
	return sorted
}

// FindSlot returns the configured slot with the given start time
func (s *ScheduleConfig) FindSlot(t types.TimeString) (TimeSlot, bool) {
	for _, slot := range s.Slots {
		if slot.Time.Equal(t) {
			return slot, true
		}
	}
	return TimeSlot{}, false
}

// FleetConfig represents the shared vehicle capacity of the fleet
// Единый пул на все слоты всех дат, без переопределений по датам
type FleetConfig struct {
	NumVehicles int `json:"numVehicles"`
}

// SlotAvailability availability of a single slot on a requested date
type SlotAvailability struct {
	Slot           TimeSlot
	ActiveBookings int
	AvailableUnits int
	Blocked        bool
}

// IsAvailable returns true if the slot can accept a new booking
func (a *SlotAvailability) IsAvailable() bool {
	return a.AvailableUnits > 0 && !a.Blocked
}
