package googlesheets

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigFastest

// TokenSource источник bearer-токена для Google API
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Metrics интерфейс учёта внешних вызовов; может быть nil
type Metrics interface {
	ObserveExternalCall(target, operation, outcome string, duration time.Duration)
}

// Client клиент Google Sheets API v4 (только чтение прайс-листа)
type Client struct {
	baseURL     string
	httpClient  *http.Client
	tokenSource TokenSource
	log         Logger
	metrics     Metrics
}

// NewClient создает клиент Sheets API
func NewClient(baseURL string, timeout time.Duration, tokenSource TokenSource, log Logger, metrics Metrics) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		tokenSource: tokenSource,
		log:         log,
		metrics:     metrics,
	}
}

// ListSheetNames возвращает названия всех листов таблицы
func (c *Client) ListSheetNames(ctx context.Context, spreadsheetID string) ([]string, error) {
	endpoint := fmt.Sprintf("%s/spreadsheets/%s?fields=sheets.properties.title", c.baseURL, url.PathEscape(spreadsheetID))

	start := time.Now()
	body, err := c.doRequest(ctx, endpoint)
	c.observe("spreadsheets.get", err, time.Since(start))
	if err != nil {
		return nil, err
	}

	var resp spreadsheetResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("%w: failed to decode spreadsheets.get response: %v", ErrInvalidResponse, err)
	}

	names := make([]string, 0, len(resp.Sheets))
	for _, sheet := range resp.Sheets {
		names = append(names, sheet.Properties.Title)
	}

	return names, nil
}

// GetValues возвращает значения диапазона (формат "Лист!A1:K1000").
// Используется FORMATTED_VALUE, поэтому все ячейки приходят строками.
func (c *Client) GetValues(ctx context.Context, spreadsheetID, cellRange string) (*ValueRange, error) {
	endpoint := fmt.Sprintf("%s/spreadsheets/%s/values/%s", c.baseURL, url.PathEscape(spreadsheetID), url.PathEscape(cellRange))

	start := time.Now()
	body, err := c.doRequest(ctx, endpoint)
	c.observe("values.get", err, time.Since(start))
	if err != nil {
		return nil, err
	}

	var values ValueRange
	if err := json.Unmarshal(body, &values); err != nil {
		return nil, fmt.Errorf("%w: failed to decode values.get response: %v", ErrInvalidResponse, err)
	}

	return &values, nil
}

func (c *Client) doRequest(ctx context.Context, endpoint string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	token, err := c.tokenSource.Token(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to obtain token: %v", ErrInternal, err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read response body: %v", ErrInvalidResponse, err)
	}

	switch resp.StatusCode {
	case http.StatusOK:
		return body, nil
	case http.StatusUnauthorized, http.StatusForbidden:
		return nil, fmt.Errorf("%w: status %d", ErrUnauthorized, resp.StatusCode)
	default:
		var apiErr ErrorResponse
		if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Error.Message != "" {
			return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, apiErr.Error.Message)
		}
		return nil, fmt.Errorf("%w: unexpected status code %d", ErrInvalidResponse, resp.StatusCode)
	}
}

func (c *Client) observe(operation string, err error, duration time.Duration) {
	if c.metrics == nil {
		return
	}
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	c.metrics.ObserveExternalCall("google_sheets", operation, outcome, duration)
}
