package objstorage

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, args ...any)
	Error(format string, args ...any)
}

// Client клиент файлового хранилища фотографий
type Client struct {
	baseURL       string
	apiKey        string
	publicBaseURL string
	httpClient    *http.Client
	log           Logger
}

// NewClient создает новый экземпляр клиента хранилища
func NewClient(baseURL, apiKey, publicBaseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL:       baseURL,
		apiKey:        apiKey,
		publicBaseURL: publicBaseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// Delete удаляет объект из хранилища по публичному URL или пути
func (c *Client) Delete(ctx context.Context, objectURL string) error {
	path := c.objectPath(objectURL)
	reqURL := fmt.Sprintf("%s/api/v1/objects/%s", c.baseURL, url.PathEscape(path))

	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, reqURL, nil)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK, http.StatusNoContent:
		return nil
	case http.StatusNotFound:
		return ErrObjectNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}
}

// PublicURL возвращает публичный URL объекта по его пути в хранилище
func (c *Client) PublicURL(path string) string {
	return strings.TrimSuffix(c.publicBaseURL, "/") + "/" + strings.TrimPrefix(path, "/")
}

// objectPath извлекает путь объекта из публичного URL
// Не-URL значения считаются уже путями и возвращаются как есть
func (c *Client) objectPath(objectURL string) string {
	prefix := strings.TrimSuffix(c.publicBaseURL, "/") + "/"
	if strings.HasPrefix(objectURL, prefix) {
		return strings.TrimPrefix(objectURL, prefix)
	}
	return strings.TrimPrefix(objectURL, "/")
}
