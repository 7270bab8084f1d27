package domain

import (
	"time"

	"github.com/m04kA/MCB-BookingService/pkg/types"
)

// BlockedInterval represents an admin-declared time range that disables booking
// on a date regardless of remaining capacity. Полуоткрытый интервал [start, end).
type BlockedInterval struct {
	ID        int64
	Date      time.Time
	StartTime types.TimeString
	EndTime   types.TimeString
	Reason    string
	CreatedAt time.Time
}

// Covers returns true if the interval blocks a slot starting at t
// Проверка полуоткрытого интервала: start <= t < end
func (b *BlockedInterval) Covers(t types.TimeString) bool {
	return !t.IsBefore(b.StartTime) && t.IsBefore(b.EndTime)
}

// AnyCovers returns true if any of the intervals blocks a slot starting at t
func AnyCovers(intervals []*BlockedInterval, t types.TimeString) bool {
	for _, interval := range intervals {
		if interval.Covers(t) {
			return true
		}
	}
	return false
}
