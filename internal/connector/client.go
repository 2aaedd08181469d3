package connector

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/shaiso/dcclient/internal/telemetry"
)

const (
	// DefaultBaseURL — адрес сервиса по умолчанию.
	DefaultBaseURL = "http://localhost/WSConnectorREST"

	maxResponseBody = 10 * 1024 * 1024 // 10 MB
)

// Config — параметры клиента.
type Config struct {
	BaseURL  string
	User     string
	Password string

	// Timeout — таймаут одного запроса. 0 — без таймаута.
	Timeout time.Duration

	// AcceptCodes — коды вне 2xx, которые не считаются ошибкой.
	AcceptCodes []int

	UserAgent string
	Logger    *slog.Logger
	Metrics   *telemetry.Metrics
}

// Client — HTTP-клиент Data Connector.
type Client struct {
	baseURL     string
	user        string
	password    string
	acceptCodes []int
	userAgent   string
	httpClient  *http.Client
	logger      *slog.Logger
	metrics     *telemetry.Metrics
}

// NewClient создаёт клиент. Завершающие "/" в BaseURL отбрасываются.
func NewClient(cfg Config) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		baseURL:     strings.TrimRight(cfg.BaseURL, "/"),
		user:        cfg.User,
		password:    cfg.Password,
		acceptCodes: cfg.AcceptCodes,
		userAgent:   cfg.UserAgent,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		logger:  logger,
		metrics: cfg.Metrics,
	}
}

// BaseURL возвращает нормализованный базовый URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// --- Endpoints ---

// Version возвращает информацию о версии сервиса.
func (c *Client) Version(ctx context.Context) (*Response, error) {
	return c.Call(ctx, EndpointVersion, nil)
}

// State возвращает состояние сервиса.
func (c *Client) State(ctx context.Context) (*Response, error) {
	return c.Call(ctx, EndpointState, nil)
}

// PatientInfo возвращает сводку неотложной информации о пациенте.
func (c *Client) PatientInfo(ctx context.Context, req PatientInfoRequest) (*Response, error) {
	return c.Call(ctx, EndpointPatientInfo, req)
}

// --- HTTP ---

// Call отправляет POST на baseURL+endpoint.
// body == nil — запрос без тела, иначе тело сериализуется в JSON.
func (c *Client) Call(ctx context.Context, endpoint string, body any) (*Response, error) {
	requestID := uuid.NewString()
	logger := telemetry.WithRequestID(telemetry.WithEndpoint(c.logger, endpoint), requestID)

	req, err := c.newRequest(ctx, c.baseURL+endpoint, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("X-Request-ID", requestID)

	logger.Debug("sending request", "url", req.URL.String())

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.metrics.ObserveRequest(endpoint, 0, time.Since(start))
		logger.Debug("request failed", "error", err)
		return nil, fmt.Errorf("%w: %v", ErrTransport, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody+1))
	elapsed := time.Since(start)
	c.metrics.ObserveRequest(endpoint, resp.StatusCode, elapsed)
	if err != nil {
		return nil, fmt.Errorf("%w: read response: %v", ErrTransport, err)
	}
	if len(respBody) > maxResponseBody {
		return nil, fmt.Errorf("%w: more than %d bytes", ErrResponseTooLarge, maxResponseBody)
	}

	logger.Debug("response received",
		"status", resp.StatusCode,
		"bytes", len(respBody),
		"duration", elapsed,
	)

	return c.checkResponse(req, resp, respBody, requestID)
}

func (c *Client) newRequest(ctx context.Context, url string, body any) (*http.Request, error) {
	var bodyReader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrEncodeRequest, err)
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("%w: create request: %v", ErrTransport, err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	req.SetBasicAuth(c.user, c.password)

	return req, nil
}

func (c *Client) checkResponse(req *http.Request, resp *http.Response, body []byte, requestID string) (*Response, error) {
	result := &Response{
		StatusCode: resp.StatusCode,
		RequestID:  requestID,
	}

	if slices.Contains(c.acceptCodes, resp.StatusCode) {
		result.Accepted = true
		return result, nil
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{
			URL:        req.URL.String(),
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Body:       strings.TrimSpace(string(body)),
		}
	}

	result.Body = string(body)
	return result, nil
}
