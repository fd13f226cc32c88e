package api

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/mobil-koeln/trainfinder/internal/cache"
	"github.com/mobil-koeln/trainfinder/internal/models"
	"go.uber.org/zap"
)

const defaultCacheTTL = 90 * time.Second

// Cache interface for caching HTTP responses
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte) error
}

// Client fetches train schedules from the train-info endpoint
type Client struct {
	httpClient *http.Client
	baseURL    string
	cache      Cache
	logger     *zap.SugaredLogger
}

// ClientOption configures the Client
type ClientOption func(*Client)

// WithTimeout sets the HTTP client timeout. Zero means no timeout.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// WithHTTPClient sets a custom HTTP client
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithBaseURL points the client at another host
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// WithCache enables caching with the provided cache implementation
func WithCache(cache Cache) ClientOption {
	return func(c *Client) {
		c.cache = cache
	}
}

// WithDefaultCache enables caching in the default cache directory.
// A ttl of zero uses defaultCacheTTL.
func WithDefaultCache(ttl time.Duration) ClientOption {
	return func(c *Client) {
		if ttl <= 0 {
			ttl = defaultCacheTTL
		}
		fc, err := cache.NewFileCache(cache.DefaultCacheDir(), ttl)
		if err != nil {
			c.logger.Warnw("response cache disabled", "error", err)
			return
		}
		c.cache = fc
	}
}

// WithLogger sets the logger for request tracing
func WithLogger(l *zap.SugaredLogger) ClientOption {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// NewClient creates a new API client. Options are applied in order, so
// WithLogger should come before options that log.
func NewClient(opts ...ClientOption) (*Client, error) {
	c := &Client{
		httpClient: &http.Client{},
		baseURL:    BaseURL,
		logger:     zap.NewNop().Sugar(),
	}

	for _, opt := range opts {
		opt(c)
	}

	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL %q: %w", c.baseURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("invalid base URL %q: scheme must be http or https", c.baseURL)
	}

	return c, nil
}

// BaseURL returns the host the client talks to
func (c *Client) BaseURL() string {
	return c.baseURL
}

// FetchTrain validates the input, fetches the train's schedule and
// decodes it. Bodies that are not JSON are wrapped as a message.
func (c *Client) FetchTrain(ctx context.Context, trainNumber string) (*models.Result, error) {
	body, err := c.FetchTrainRaw(ctx, trainNumber)
	if err != nil {
		return nil, err
	}

	r := models.ParseResult(body)
	r.Query = trainNumber
	if r.IsRaw {
		c.logger.Debugw("response is not JSON, wrapping as message", "train_no", trainNumber, "bytes", len(body))
	}
	return r, nil
}

// FetchTrainRaw fetches the train's schedule and returns the body as received.
// The train number is sent as given; only the empty string is rejected.
func (c *Client) FetchTrainRaw(ctx context.Context, trainNumber string) ([]byte, error) {
	if trainNumber == "" {
		return nil, ErrMissingTrainNumber()
	}

	params := url.Values{}
	params.Set(ParamTrainNumber, trainNumber)

	reqURL := c.baseURL + EndpointTrain + "?" + params.Encode()

	return c.doRequest(ctx, reqURL)
}

// doRequest performs an HTTP GET request with optional caching
func (c *Client) doRequest(ctx context.Context, reqURL string) ([]byte, error) {
	if c.cache != nil {
		if data, ok := c.cache.Get(reqURL); ok {
			c.logger.Debugw("cache hit", "url", reqURL)
			return data, nil
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, NewFetchError(fmt.Errorf("failed to create request: %w", err))
	}
	req.Header.Set("Accept", "application/json, text/plain, */*")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warnw("request failed", "url", reqURL, "error", err)
		if ctx.Err() != nil {
			return nil, NewFetchError(fmt.Errorf("%w: %w", ErrTimeout, ctx.Err()))
		}
		if isTimeout(err) {
			return nil, NewFetchError(fmt.Errorf("%w: %w", ErrTimeout, err))
		}
		return nil, NewFetchError(fmt.Errorf("request failed: %w", err))
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Warnw("non-OK response", "url", reqURL, "status", resp.StatusCode)
		return nil, NewFetchError(NewAPIError(resp.StatusCode, resp.Status, extractEndpoint(reqURL)))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, NewFetchError(fmt.Errorf("failed to read response body: %w", err))
	}

	c.logger.Debugw("fetched", "url", reqURL, "status", resp.StatusCode, "bytes", len(body), "took", time.Since(start))

	if c.cache != nil {
		if err := c.cache.Set(reqURL, body); err != nil {
			c.logger.Debugw("cache write failed", "error", err)
		}
	}

	return body, nil
}

// isTimeout reports whether err is a deadline hit by the HTTP client itself
func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}

// extractEndpoint extracts the endpoint path from a full URL
func extractEndpoint(fullURL string) string {
	u, err := url.Parse(fullURL)
	if err != nil {
		return fullURL
	}
	return u.Path
}
