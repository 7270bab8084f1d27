package quote

import "errors"

var (
	// ErrQuoteNotFound возвращается, когда расчет стоимости не найден
	ErrQuoteNotFound = errors.New("quote.repository: quote not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("quote.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("quote.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("quote.repository: failed to scan row")

	// ErrEncode возвращается при ошибке сериализации детализации
	ErrEncode = errors.New("quote.repository: failed to encode breakdown")

	// ErrDecode возвращается при ошибке десериализации детализации
	ErrDecode = errors.New("quote.repository: failed to decode breakdown")
)
