package config

import "errors"

var (
	// ErrIntervalNotFound возвращается, когда интервал блокировки не найден
	ErrIntervalNotFound = errors.New("config: blocked interval not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("config: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("config: internal error")
)
