package paygate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client клиент платежного шлюза
type Client struct {
	baseURL    string
	apiKey     string
	secret     string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента платежного шлюза
func NewClient(baseURL, apiKey, secret string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		secret:  secret,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// CreateOrder создает платежный заказ и возвращает ссылку на оплату
func (c *Client) CreateOrder(ctx context.Context, reqBody CreateOrderRequest) (*Order, error) {
	url := fmt.Sprintf("%s/api/v1/orders", c.baseURL)

	if reqBody.Currency == "" {
		reqBody.Currency = "CLP"
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated:
		// Продолжаем обработку
	case http.StatusBadRequest:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: gateway rejected order: %s", ErrInvalidResponse, string(body))
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	// Парсим ответ
	var order Order
	if err := json.NewDecoder(resp.Body).Decode(&order); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	if order.Token == "" || order.URL == "" {
		return nil, fmt.Errorf("%w: empty token or url in gateway response", ErrInvalidResponse)
	}

	c.log.Info("Created payment order order_id=%s, token=%s", reqBody.OrderID, order.Token)
	return &order, nil
}

// GetStatus получает текущий статус платежного заказа
// Используется реконсилятором, когда уведомление пришло без статуса
func (c *Client) GetStatus(ctx context.Context, orderID string) (*OrderStatus, error) {
	url := fmt.Sprintf("%s/api/v1/orders/%s", c.baseURL, orderID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusNotFound:
		return nil, ErrOrderNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var status OrderStatus
	if err := json.NewDecoder(resp.Body).Decode(&status); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return &status, nil
}
