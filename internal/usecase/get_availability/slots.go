package get_availability

import (
	"github.com/m04kA/MCB-BookingService/internal/domain"
	"github.com/m04kA/MCB-BookingService/pkg/types"
)

// buildAvailability рассчитывает доступность каждого слота расписания
// Емкость - единый пул машин, общий для всех слотов всех дат.
// Блокировка действует независимо от занятости: закрытый слот
// недоступен даже при нуле бронирований
func buildAvailability(
	schedule *domain.ScheduleConfig,
	fleet *domain.FleetConfig,
	bookings []*domain.Booking,
	blocked []*domain.BlockedInterval,
) []domain.SlotAvailability {
	counts := countActiveBySlot(bookings)

	slots := schedule.Sorted()
	result := make([]domain.SlotAvailability, 0, len(slots))

	for _, slot := range slots {
		active := counts[slot.Time]

		available := fleet.NumVehicles - active
		if available < 0 {
			available = 0
		}

		result = append(result, domain.SlotAvailability{
			Slot:           slot,
			ActiveBookings: active,
			AvailableUnits: available,
			Blocked:        domain.AnyCovers(blocked, slot.Time),
		})
	}

	return result
}

// countActiveBySlot подсчитывает активные бронирования по времени слота
func countActiveBySlot(bookings []*domain.Booking) map[types.TimeString]int {
	counts := make(map[types.TimeString]int, len(bookings))
	for _, booking := range bookings {
		if !booking.IsActive() {
			continue
		}
		counts[booking.ScheduledTime]++
	}
	return counts
}
