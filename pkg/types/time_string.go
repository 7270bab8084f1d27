package types

import (
	"errors"
	"fmt"
	"time"
)

// TimeFormat формат времени HH:MM
const TimeFormat = "15:04"

var (
	// ErrInvalidTimeString возвращается при некорректном формате строки времени
	ErrInvalidTimeString = errors.New("invalid time string format")
)

// TimeString строковое представление времени дня в формате HH:MM ("10:00")
// Используется для слотов бронирования - нам важно только время дня без даты и таймзоны
type TimeString string

// NewTimeString создает TimeString из time.Time (берёт только часы и минуты)
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(TimeFormat))
}

// NewTimeStringFromString создает TimeString из строки с валидацией формата
func NewTimeStringFromString(s string) (TimeString, error) {
	ts := TimeString(s)
	if err := ts.Validate(); err != nil {
		return "", err
	}
	return ts, nil
}

// Validate проверяет, что строка соответствует формату HH:MM
func (t TimeString) Validate() error {
	if _, err := time.Parse(TimeFormat, string(t)); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	return nil
}

// IsZero возвращает true, если время не задано
func (t TimeString) IsZero() bool {
	return t == ""
}

// String возвращает строковое представление времени
func (t TimeString) String() string {
	return string(t)
}

// minutes возвращает время дня в минутах с полуночи
func (t TimeString) minutes() (int, error) {
	parsed, err := time.Parse(TimeFormat, string(t))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	return parsed.Hour()*60 + parsed.Minute(), nil
}

// IsBefore возвращает true, если t строго раньше other
// Некорректные значения считаются "не раньше" - валидация должна происходить заранее
func (t TimeString) IsBefore(other TimeString) bool {
	a, err := t.minutes()
	if err != nil {
		return false
	}
	b, err := other.minutes()
	if err != nil {
		return false
	}
	return a < b
}

// IsAfter возвращает true, если t строго позже other
func (t TimeString) IsAfter(other TimeString) bool {
	return other.IsBefore(t)
}

// Equal возвращает true, если времена совпадают с точностью до минуты
func (t TimeString) Equal(other TimeString) bool {
	a, err := t.minutes()
	if err != nil {
		return false
	}
	b, err := other.minutes()
	if err != nil {
		return false
	}
	return a == b
}

// AddMinutes возвращает новое время, сдвинутое на minutes минут вперед
// Результат не может выходить за пределы суток
func (t TimeString) AddMinutes(minutes int) (TimeString, error) {
	total, err := t.minutes()
	if err != nil {
		return "", err
	}

	total += minutes
	if total < 0 || total >= 24*60 {
		return "", fmt.Errorf("%w: %q + %d minutes is out of day range", ErrInvalidTimeString, string(t), minutes)
	}

	return TimeString(fmt.Sprintf("%02d:%02d", total/60, total%60)), nil
}
