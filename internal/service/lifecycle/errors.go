package lifecycle

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("lifecycle: booking not found")

	// ErrInvalidTransition возвращается при недопустимом переходе статуса
	// Терминальные статусы (completed, cancelled) не покидаются никогда
	ErrInvalidTransition = errors.New("lifecycle: invalid status transition")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("lifecycle: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("lifecycle: internal error")
)
