package googlecalendar

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigFastest

// maxResultsPerPage достаточно для окна поиска в 90 дней одного календаря
const maxResultsPerPage = 2500

// TokenSource источник bearer-токена для Google API.
// Позволяет подменить способ аутентификации (статический токен, service account и т.п.)
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// StaticTokenSource источник с фиксированным токеном (из окружения)
type StaticTokenSource struct {
	token string
}

// NewStaticTokenSource создает статический источник токена
func NewStaticTokenSource(token string) *StaticTokenSource {
	return &StaticTokenSource{token: token}
}

// Token возвращает фиксированный токен
func (s *StaticTokenSource) Token(_ context.Context) (string, error) {
	return s.token, nil
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

// Client клиент Google Calendar API v3
type Client struct {
	baseURL     string
	httpClient  *http.Client
	tokenSource TokenSource
	log         Logger
	metrics     Metrics
}

// NewClient создает клиент Calendar API
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

// ListEvents возвращает события календаря в окне [timeMin, timeMax).
// Повторяющиеся события разворачиваются (singleEvents=true), сортировка по началу.
func (c *Client) ListEvents(ctx context.Context, calendarID, timeMin, timeMax string) ([]Event, error) {
	endpoint := fmt.Sprintf("%s/calendars/%s/events", c.baseURL, url.PathEscape(calendarID))

	query := url.Values{}
	query.Set("timeMin", timeMin)
	query.Set("timeMax", timeMax)
	query.Set("singleEvents", "true")
	query.Set("orderBy", "startTime")
	query.Set("maxResults", strconv.Itoa(maxResultsPerPage))

	start := time.Now()
	body, err := c.doRequest(ctx, http.MethodGet, endpoint+"?"+query.Encode(), nil)
	c.observe("events.list", err, time.Since(start))
	if err != nil {
		return nil, err
	}

	var resp listEventsResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("%w: failed to decode events.list response: %v", ErrInvalidResponse, err)
	}

	return resp.Items, nil
}

// InsertEvent создает событие и возвращает его id
func (c *Client) InsertEvent(ctx context.Context, calendarID string, params InsertEventParams) (string, error) {
	endpoint := fmt.Sprintf("%s/calendars/%s/events", c.baseURL, url.PathEscape(calendarID))

	payload, err := json.Marshal(&Event{
		Summary:     params.Summary,
		Description: params.Description,
		Start:       &EventDateTime{DateTime: params.StartAt},
		End:         &EventDateTime{DateTime: params.EndAt},
	})
	if err != nil {
		return "", fmt.Errorf("%w: failed to encode event: %v", ErrInternal, err)
	}

	start := time.Now()
	body, err := c.doRequest(ctx, http.MethodPost, endpoint, payload)
	c.observe("events.insert", err, time.Since(start))
	if err != nil {
		return "", err
	}

	var created Event
	if err := json.Unmarshal(body, &created); err != nil {
		return "", fmt.Errorf("%w: failed to decode events.insert response: %v", ErrInvalidResponse, err)
	}
	if created.ID == "" {
		return "", ErrEventIDMissing
	}

	return created.ID, nil
}

func (c *Client) doRequest(ctx context.Context, method, endpoint string, payload []byte) ([]byte, error) {
	var reqBody io.Reader
	if payload != nil {
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	token, err := c.tokenSource.Token(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to obtain token: %v", ErrInternal, err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

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
		return nil, fmt.Errorf("%w: status %d: %s", ErrUnauthorized, resp.StatusCode, apiErrorMessage(body))
	default:
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, apiErrorMessage(body))
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
	c.metrics.ObserveExternalCall("google_calendar", operation, outcome, duration)
}

func apiErrorMessage(body []byte) string {
	var apiErr ErrorResponse
	if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Error.Message != "" {
		return apiErr.Error.Message
	}
	return string(body)
}
