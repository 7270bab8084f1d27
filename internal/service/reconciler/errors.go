package reconciler

import "errors"

var (
	// ErrUnauthorized возвращается при несовпадении подписи уведомления
	// Состояние бронирования при этом не меняется
	ErrUnauthorized = errors.New("reconciler: invalid callback signature")
)
