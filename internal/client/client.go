package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/username/nsw-workday-calc/internal/api"
	"go.uber.org/zap"
)

const (
	defaultTimeout = 30 * time.Second
	defaultRetries = 3
)

// APIError is a non-2xx response from the server
type APIError struct {
	StatusCode int
	Message    string
	Details    string
}

func (e *APIError) Error() string {
	if e.Details == "" {
		return fmt.Sprintf("API request failed with status %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("API request failed with status %d: %s: %s", e.StatusCode, e.Message, e.Details)
}

// Client talks to a running workday-calc server
type Client struct {
	baseURL    string
	httpClient *http.Client
	retries    int
	backoff    time.Duration
	logger     *zap.Logger
}

// NewClient creates a new API client
func NewClient(baseURL string, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
		retries: defaultRetries,
		backoff: time.Second,
		logger:  logger,
	}
}

// Health checks that the server is up
func (c *Client) Health(ctx context.Context) error {
	var status map[string]string
	if err := c.doRequest(ctx, "/healthz", nil, &status); err != nil {
		return err
	}
	if status["status"] != "ok" {
		return fmt.Errorf("server not healthy: %v", status)
	}
	return nil
}

// WorkDays counts work days strictly between start and end
func (c *Client) WorkDays(ctx context.Context, start, end, pattern string) (*api.WorkDaysResponse, error) {
	var result api.WorkDaysResponse
	if err := c.doRequest(ctx, "/api/workdays", rangeQuery(start, end, pattern), &result); err != nil {
		return nil, fmt.Errorf("failed to calculate work days: %w", err)
	}
	return &result, nil
}

// Weekdays counts Monday-Friday days in [start, end]
func (c *Client) Weekdays(ctx context.Context, start, end, pattern string) (*api.WeekdaysResponse, error) {
	var result api.WeekdaysResponse
	if err := c.doRequest(ctx, "/api/weekdays", rangeQuery(start, end, pattern), &result); err != nil {
		return nil, fmt.Errorf("failed to count weekdays: %w", err)
	}
	return &result, nil
}

// Holidays lists observed holidays in [start, end]
func (c *Client) Holidays(ctx context.Context, start, end, pattern string) (*api.HolidaysResponse, error) {
	var result api.HolidaysResponse
	if err := c.doRequest(ctx, "/api/holidays", rangeQuery(start, end, pattern), &result); err != nil {
		return nil, fmt.Errorf("failed to list holidays: %w", err)
	}
	return &result, nil
}

// Month returns the calendar of one month
func (c *Client) Month(ctx context.Context, year int, month time.Month) (*api.MonthResponse, error) {
	var result api.MonthResponse
	path := fmt.Sprintf("/api/calendar/%d/%d", year, int(month))
	if err := c.doRequest(ctx, path, nil, &result); err != nil {
		return nil, fmt.Errorf("failed to get month: %w", err)
	}
	return &result, nil
}

func rangeQuery(start, end, pattern string) url.Values {
	query := url.Values{}
	query.Set("start", start)
	query.Set("end", end)
	if pattern != "" {
		query.Set("pattern", pattern)
	}
	return query
}

// doRequest performs a GET, retrying transport failures and 5xx responses
func (c *Client) doRequest(ctx context.Context, path string, query url.Values, result any) error {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var lastErr error
	for attempt := 1; attempt <= c.retries; attempt++ {
		err := c.doRequestOnce(ctx, target, result)
		if err == nil {
			return nil
		}

		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode < http.StatusInternalServerError {
			return err
		}

		lastErr = err
		c.logger.Warn("Request failed, retrying",
			zap.Int("attempt", attempt),
			zap.Int("max_retries", c.retries),
			zap.Error(err))

		if attempt < c.retries {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(c.backoff * time.Duration(attempt)):
			}
		}
	}

	return fmt.Errorf("request failed after %d attempts: %w", c.retries, lastErr)
}

// doRequestOnce performs a single HTTP request
func (c *Client) doRequestOnce(ctx context.Context, target string, result any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{StatusCode: resp.StatusCode, Message: strings.TrimSpace(string(respBody))}
		var body api.ErrorResponse
		if json.Unmarshal(respBody, &body) == nil && body.Error != "" {
			apiErr.Message = body.Error
			apiErr.Details = body.Details
		}
		return apiErr
	}

	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to parse response: %w", err)
		}
	}

	return nil
}
