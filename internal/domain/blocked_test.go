package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBlockedInterval_Covers(t *testing.T) {
	interval := &BlockedInterval{StartTime: "09:00", EndTime: "12:00"}

	// Полуоткрытый интервал: начало входит, конец - нет
	assert.True(t, interval.Covers("09:00"))
	assert.True(t, interval.Covers("10:30"))
	assert.True(t, interval.Covers("11:59"))
	assert.False(t, interval.Covers("12:00"))
	assert.False(t, interval.Covers("08:59"))
	assert.False(t, interval.Covers("15:00"))
}

func TestAnyCovers(t *testing.T) {
	intervals := []*BlockedInterval{
		{StartTime: "09:00", EndTime: "10:00"},
		{StartTime: "14:00", EndTime: "16:00"},
	}

	assert.True(t, AnyCovers(intervals, "09:00"))
	assert.True(t, AnyCovers(intervals, "15:00"))
	assert.False(t, AnyCovers(intervals, "12:00"))
	assert.False(t, AnyCovers(nil, "09:00"))
}
