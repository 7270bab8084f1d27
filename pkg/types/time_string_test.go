package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeString_Validate(t *testing.T) {
	assert.NoError(t, TimeString("09:00").Validate())
	assert.NoError(t, TimeString("23:59").Validate())
	assert.NoError(t, TimeString("00:00").Validate())

	assert.ErrorIs(t, TimeString("25:00").Validate(), ErrInvalidTimeString)
	assert.ErrorIs(t, TimeString("9am").Validate(), ErrInvalidTimeString)
	assert.ErrorIs(t, TimeString("").Validate(), ErrInvalidTimeString)
}

func TestTimeString_Comparisons(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("12:00"))
	assert.False(t, TimeString("12:00").IsBefore("09:00"))
	assert.False(t, TimeString("09:00").IsBefore("09:00"))

	assert.True(t, TimeString("12:00").IsAfter("09:00"))
	assert.True(t, TimeString("09:00").Equal("09:00"))
	assert.False(t, TimeString("09:00").Equal("09:01"))
}

func TestTimeString_AddMinutes(t *testing.T) {
	result, err := TimeString("09:00").AddMinutes(90)
	require.NoError(t, err)
	assert.Equal(t, TimeString("10:30"), result)

	// Выход за пределы суток запрещён
	_, err = TimeString("23:00").AddMinutes(120)
	assert.ErrorIs(t, err, ErrInvalidTimeString)

	_, err = TimeString("01:00").AddMinutes(-120)
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestNewTimeString(t *testing.T) {
	ts := NewTimeString(time.Date(2025, 6, 9, 14, 5, 33, 0, time.UTC))
	assert.Equal(t, TimeString("14:05"), ts)

	parsed, err := NewTimeStringFromString("08:30")
	require.NoError(t, err)
	assert.Equal(t, TimeString("08:30"), parsed)

	_, err = NewTimeStringFromString("ocho y media")
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}
