package paygate

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)
}

// Статусы платежа в ответах шлюза
const (
	StatusApproved  = "approved"
	StatusRejected  = "rejected"
	StatusCancelled = "cancelled"
	StatusPending   = "pending"
)

// CreateOrderRequest запрос на создание платежного заказа
type CreateOrderRequest struct {
	OrderID     string `json:"order_id"`
	Amount      int64  `json:"amount"`
	Currency    string `json:"currency"`
	Email       string `json:"email"`
	ReturnURL   string `json:"return_url"`
	CallbackURL string `json:"callback_url"`
}

// Order платежный заказ, созданный шлюзом
type Order struct {
	Token string `json:"token"`
	URL   string `json:"url"`
}

// OrderStatus статус платежного заказа по данным шлюза
type OrderStatus struct {
	OrderID string `json:"order_id"`
	Status  string `json:"status"`
	Amount  int64  `json:"amount"`
}

// ErrorResponse модель ошибки от платежного шлюза
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
