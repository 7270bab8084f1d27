package paygate

import "errors"

var (
	// ErrOrderNotFound возвращается, когда платежный заказ не найден в шлюзе
	ErrOrderNotFound = errors.New("payment order not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("paygate client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от шлюза
	ErrInvalidResponse = errors.New("paygate client: invalid response")

	// ErrInvalidSignature возвращается при несовпадении подписи уведомления
	ErrInvalidSignature = errors.New("paygate client: invalid signature")
)
