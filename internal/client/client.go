package client

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"net"
	"net/http"
	"time"

	"github.com/voiceclock/alarm-backend/internal/platform/envutil"
	"github.com/voiceclock/alarm-backend/internal/platform/logger"
)

// Client talks to the alarm API over a pooled, TLS-verified connection
// with a fixed request timeout. Transient server errors (500/502/503/504)
// are retried with exponential backoff up to a fixed ceiling; everything
// else fails immediately. One Client is meant to live for the whole
// process and be shared across calls.
type Client struct {
	log         *logger.Logger
	baseURL     string
	httpClient  *http.Client
	maxRetries  int
	backoffBase time.Duration
}

type Config struct {
	BaseURL    string
	Timeout    time.Duration
	MaxRetries int
}

func New(log *logger.Logger, cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = envutil.String("ALARM_API_BASE_URL", "https://alarm.name666.top")
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = time.Duration(envutil.Int("ALARM_API_TIMEOUT_SECONDS", 30)) * time.Second
	}
	if cfg.MaxRetries == 0 {
		cfg.MaxRetries = envutil.Int("ALARM_API_MAX_RETRIES", 3)
	}

	transport := &http.Transport{
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
		// Certificate verification stays on; there is deliberately no
		// way to configure InsecureSkipVerify here.
		TLSClientConfig: &tls.Config{MinVersion: tls.VersionTLS12},
	}

	return &Client{
		log:     log.With("client", "AlarmAPI"),
		baseURL: cfg.BaseURL,
		httpClient: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: transport,
		},
		maxRetries:  cfg.MaxRetries,
		backoffBase: 1 * time.Second,
	}
}

// envelope mirrors the server's uniform response wrapper.
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type httpError struct {
	StatusCode int
	Message    string
}

func (e *httpError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Message)
}

func isTransientStatus(code int) bool {
	switch code {
	case http.StatusInternalServerError,
		http.StatusBadGateway,
		http.StatusServiceUnavailable,
		http.StatusGatewayTimeout:
		return true
	}
	return false
}

func isRetryable(err error) bool {
	if err == nil {
		return false
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}
	var httpErr *httpError
	if errors.As(err, &httpErr) {
		return isTransientStatus(httpErr.StatusCode)
	}
	return false
}

// jitter spreads a backoff interval by +/- 20%.
func jitter(base time.Duration) time.Duration {
	if base <= 0 {
		return 0
	}
	delta := 0.2 * base.Seconds()
	low := base.Seconds() - delta
	v := low + rand.Float64()*2*delta
	return time.Duration(v * float64(time.Second))
}

func (c *Client) doOnce(ctx context.Context, method, path string, body any) (*envelope, error) {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return nil, err
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, &buf)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	raw, readErr := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if readErr != nil {
		return nil, readErr
	}

	var env envelope
	parseErr := json.Unmarshal(raw, &env)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := string(raw)
		if parseErr == nil && env.Message != "" {
			msg = env.Message
		}
		return nil, &httpError{StatusCode: resp.StatusCode, Message: msg}
	}
	if parseErr != nil {
		return nil, fmt.Errorf("decode response: %w", parseErr)
	}
	return &env, nil
}

// do issues the request with bounded retries. Backoff starts at one
// second, doubles per attempt and is capped at ten seconds.
func (c *Client) do(ctx context.Context, method, path string, body any) (*envelope, error) {
	backoff := c.backoffBase

	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		env, err := c.doOnce(ctx, method, path, body)
		if err == nil {
			return env, nil
		}
		lastErr = err

		if !isRetryable(err) || attempt == c.maxRetries {
			return nil, err
		}

		sleepFor := backoff
		if sleepFor > 10*time.Second {
			sleepFor = 10 * time.Second
		}
		sleepFor = jitter(sleepFor)

		c.log.Warn("Alarm API request retrying",
			"method", method,
			"path", path,
			"attempt", attempt+1,
			"max_retries", c.maxRetries,
			"sleep", sleepFor.String(),
			"error", err.Error(),
		)

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(sleepFor):
		}
		backoff *= 2
	}

	return nil, lastErr
}
