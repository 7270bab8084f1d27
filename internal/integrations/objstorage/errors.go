package objstorage

import "errors"

var (
	// ErrObjectNotFound возвращается, когда объект не найден в хранилище
	ErrObjectNotFound = errors.New("object not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("objstorage client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от хранилища
	ErrInvalidResponse = errors.New("objstorage client: invalid response")
)
