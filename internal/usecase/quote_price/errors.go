package quote_price

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("quote_price: invalid input data")

	// ErrAddressNotFound возвращается, когда адрес не удалось геокодировать
	ErrAddressNotFound = errors.New("quote_price: address not found")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("quote_price: internal error")
)
