package http

import (
	"context"
	"crypto/tls"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"golang.org/x/time/rate"

	apperrors "todoctl/internal/errors"
)

const (
	// Standard HTTP content types.
	contentTypeJSON = "application/json"
	acceptHAL       = "application/hal+json, application/json"

	defaultUserAgent = "todoctl"
)

// Options configures the HTTP adapter.
type Options struct {
	Timeout            time.Duration
	InsecureSkipVerify bool
	// RateLimit is the maximum number of requests per second; 0 disables limiting.
	RateLimit float64
	RateBurst int
	UserAgent string
}

// Adapter is an HTTP client adapter using resty with optional rate limiting.
// Requests are never retried.
type Adapter struct {
	client  *resty.Client
	limiter *rate.Limiter
	logger  *slog.Logger
}

// NewAdapter creates a new HTTP adapter.
func NewAdapter(opts Options, logger *slog.Logger) *Adapter {
	userAgent := opts.UserAgent
	if userAgent == "" {
		userAgent = defaultUserAgent
	}

	client := resty.New().
		SetTimeout(opts.Timeout).
		SetRetryCount(0).
		SetHeader("Accept", acceptHAL).
		SetHeader("User-Agent", userAgent).
		SetTLSClientConfig(&tls.Config{
			InsecureSkipVerify: opts.InsecureSkipVerify, //nolint:gosec // User-configurable for self-signed certificates
		})

	a := &Adapter{
		client: client,
		logger: logger,
	}

	if opts.RateLimit > 0 {
		burst := opts.RateBurst
		if burst < 1 {
			burst = 1
		}
		a.limiter = rate.NewLimiter(rate.Limit(opts.RateLimit), burst)

		client.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
			return a.limiter.Wait(req.Context())
		})
	}

	// Add logging middleware
	client.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
		logger.DebugContext(req.Context(), "HTTP request",
			"method", req.Method,
			"url", req.URL,
		)
		return nil
	})

	client.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
		logger.DebugContext(resp.Request.Context(), "HTTP response",
			"method", resp.Request.Method,
			"url", resp.Request.URL,
			"status", resp.StatusCode(),
			"duration", resp.Time(),
		)
		return nil
	})

	return a
}

// Get performs a GET request.
func (a *Adapter) Get(ctx context.Context, url string) (*http.Response, error) {
	resp, err := a.client.R().SetContext(ctx).SetDoNotParseResponse(true).Get(url)
	if err != nil {
		return nil, apperrors.NewNetworkError(http.MethodGet, url, err)
	}
	return resp.RawResponse, nil
}

// Post performs a POST request with optional JSON payload.
func (a *Adapter) Post(ctx context.Context, url string, payload any) (*http.Response, error) {
	request := a.client.R().SetContext(ctx).SetDoNotParseResponse(true)

	if payload != nil {
		request.SetHeader("Content-Type", contentTypeJSON).SetBody(payload)
	}

	resp, err := request.Post(url)
	if err != nil {
		// Handle resty marshaling errors
		if strings.Contains(err.Error(), "unsupported 'Body' type/value") {
			return nil, fmt.Errorf("failed to prepare POST payload: %w", err)
		}
		return nil, apperrors.NewNetworkError(http.MethodPost, url, err)
	}
	return resp.RawResponse, nil
}

// Delete performs a DELETE request.
func (a *Adapter) Delete(ctx context.Context, url string) (*http.Response, error) {
	resp, err := a.client.R().SetContext(ctx).SetDoNotParseResponse(true).Delete(url)
	if err != nil {
		return nil, apperrors.NewNetworkError(http.MethodDelete, url, err)
	}
	return resp.RawResponse, nil
}
