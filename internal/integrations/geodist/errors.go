package geodist

import "errors"

var (
	// ErrAddressNotFound возвращается, когда адрес не удалось геокодировать
	ErrAddressNotFound = errors.New("address not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("geodist client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("geodist client: invalid response")

	// ErrServiceDegraded возвращается при применении graceful degradation
	// Указывает, что геосервис недоступен и следует использовать дистанцию по умолчанию
	ErrServiceDegraded = errors.New("geodist unavailable: graceful degradation applied")
)
