package geodist

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, args ...any)
	Error(format string, args ...any)
}

// Distance результат расчета расстояния между двумя адресами
type Distance struct {
	OriginAddress      string  `json:"origin_address"`
	DestinationAddress string  `json:"destination_address"`
	Kilometers         float64 `json:"kilometers"`
}

// ErrorResponse модель ошибки от геосервиса
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
