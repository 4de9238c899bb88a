package repservice

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент для работы с RepService (профили представителей)
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента RepService
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetRep получает профиль представителя по ID
func (c *Client) GetRep(ctx context.Context, repID int64) (*Rep, error) {
	url := fmt.Sprintf("%s/internal/reps/%d", c.baseURL, repID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
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
		return nil, ErrRepNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var rep Rep
	if err := json.NewDecoder(resp.Body).Decode(&rep); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return &rep, nil
}

// GetRepWithGracefulDegradation получает профиль представителя с graceful degradation
// При недоступности RepService возвращает ErrServiceDegraded - отчёты в этом
// случае строятся только по ID агента, без имени и профиля
func (c *Client) GetRepWithGracefulDegradation(ctx context.Context, repID int64) (*Rep, error) {
	rep, err := c.GetRep(ctx, repID)
	if err != nil {
		// Бизнес-ошибку (агент не найден) пробрасываем дальше
		if errors.Is(err, ErrRepNotFound) {
			c.log.Info("No rep found for rep_id=%d", repID)
			return nil, err
		}

		// Для остальных ошибок (недоступность сервиса, timeout, ошибки парсинга)
		// применяем graceful degradation
		c.log.Error("RepService unavailable, applying graceful degradation for rep_id=%d: %v", repID, err)
		return nil, fmt.Errorf("%w: rep_id=%d, error=%v", ErrServiceDegraded, repID, err)
	}

	return rep, nil
}
