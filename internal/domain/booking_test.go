package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBooking_CanTransitionTo(t *testing.T) {
	testCases := []struct {
		from    BookingStatus
		to      BookingStatus
		allowed bool
	}{
		{StatusPending, StatusConfirmed, true},
		{StatusPending, StatusCancelled, true},
		{StatusPending, StatusCompleted, true},
		{StatusConfirmed, StatusCompleted, true},
		{StatusConfirmed, StatusCancelled, true},
		{StatusConfirmed, StatusPending, false},
		{StatusCompleted, StatusCancelled, false},
		{StatusCompleted, StatusConfirmed, false},
		{StatusCancelled, StatusPending, false},
		{StatusCancelled, StatusConfirmed, false},
	}

	for _, tc := range testCases {
		booking := &Booking{Status: tc.from}
		assert.Equal(t, tc.allowed, booking.CanTransitionTo(tc.to),
			"%s -> %s", tc.from, tc.to)
	}
}

func TestBooking_IsActive(t *testing.T) {
	assert.True(t, (&Booking{Status: StatusPending}).IsActive())
	assert.True(t, (&Booking{Status: StatusConfirmed}).IsActive())
	assert.False(t, (&Booking{Status: StatusCompleted}).IsActive())
	assert.False(t, (&Booking{Status: StatusCancelled}).IsActive())
}

func TestBooking_IsTerminal(t *testing.T) {
	assert.False(t, (&Booking{Status: StatusPending}).IsTerminal())
	assert.False(t, (&Booking{Status: StatusConfirmed}).IsTerminal())
	assert.True(t, (&Booking{Status: StatusCompleted}).IsTerminal())
	assert.True(t, (&Booking{Status: StatusCancelled}).IsTerminal())
}

func TestValidBookingStatus(t *testing.T) {
	assert.True(t, ValidBookingStatus("pending"))
	assert.True(t, ValidBookingStatus("confirmed"))
	assert.True(t, ValidBookingStatus("completed"))
	assert.True(t, ValidBookingStatus("cancelled"))
	assert.False(t, ValidBookingStatus("enviado"))
	assert.False(t, ValidBookingStatus(""))
}
