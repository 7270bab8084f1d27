package create_booking

import "errors"

var (
	// ErrQuoteNotFound возвращается, когда расчет стоимости не найден
	ErrQuoteNotFound = errors.New("create_booking: quote not found")

	// ErrInvalidDate возвращается при некорректной дате бронирования
	ErrInvalidDate = errors.New("create_booking: invalid booking date")

	// ErrInvalidTimeSlot возвращается, когда время не соответствует ни одному слоту расписания
	ErrInvalidTimeSlot = errors.New("create_booking: invalid time slot")

	// ErrSlotUnavailable возвращается, когда слот занят или заблокирован
	ErrSlotUnavailable = errors.New("create_booking: slot is not available")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
