package geodist

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Client клиент геосервиса для расчета расстояния перевозки
type Client struct {
	baseURL           string
	defaultDistanceKm float64
	httpClient        *http.Client
	log               Logger
}

// NewClient создает новый экземпляр клиента геосервиса
func NewClient(baseURL string, defaultDistanceKm float64, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL:           baseURL,
		defaultDistanceKm: defaultDistanceKm,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetDistance получает расстояние между адресами погрузки и выгрузки
func (c *Client) GetDistance(ctx context.Context, origin, destination string) (*Distance, error) {
	reqURL := fmt.Sprintf("%s/api/v1/distance?origin=%s&destination=%s",
		c.baseURL, url.QueryEscape(origin), url.QueryEscape(destination))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusNotFound:
		return nil, ErrAddressNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	// Парсим ответ
	var dist Distance
	if err := json.NewDecoder(resp.Body).Decode(&dist); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return &dist, nil
}

// GetDistanceWithGracefulDegradation получает расстояние с graceful degradation
// При недоступности геосервиса возвращает дистанцию по умолчанию и ErrServiceDegraded,
// что позволяет выдать клиенту расчет вместо отказа
func (c *Client) GetDistanceWithGracefulDegradation(ctx context.Context, origin, destination string) (float64, error) {
	dist, err := c.GetDistance(ctx, origin, destination)
	if err != nil {
		// Неизвестный адрес - бизнес-ошибка, пробрасываем её дальше
		if err == ErrAddressNotFound {
			c.log.Info("Address not found: origin=%q, destination=%q", origin, destination)
			return 0, err
		}

		// Для всех остальных ошибок (недоступность сервиса, timeout, ошибки парсинга и т.д.)
		// применяем graceful degradation - считаем по дистанции по умолчанию
		c.log.Error("Geo service unavailable, using default distance %.1f km: %v", c.defaultDistanceKm, err)
		return c.defaultDistanceKm, fmt.Errorf("%w: %v", ErrServiceDegraded, err)
	}

	return dist.Kilometers, nil
}
