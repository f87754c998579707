package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"syscall"
	"time"

	"go.uber.org/zap"
)

// ErrUnreachable marks failures to reach the target server at all.
var ErrUnreachable = errors.New("server unreachable")

// RayIDHeader is the response header carrying the server-side request id.
const RayIDHeader = "X-Ray-ID"

// Request describes one HTTP call relative to the base URL.
type Request struct {
	Method string
	// Path is appended to the base URL as is; it must start with a slash.
	Path  string
	Query url.Values
	// JSON, when non-nil, is marshalled as the request body.
	JSON any
}

// Response is a fully read HTTP response.
type Response struct {
	Request    *Request
	URL        string
	StatusCode int
	Headers    http.Header
	Body       []byte
	Elapsed    time.Duration
}

// Client sends blocking requests to a single base URL.
type Client struct {
	baseURL   *url.URL
	userAgent string
	http      *http.Client
	logger    *zap.Logger
}

// New creates a client for cfg. A nil httpClient gets a transport whose timeouts follow cfg.
func New(cfg Config, logger *zap.Logger, httpClient *http.Client) (*Client, error) {
	base, err := url.Parse(strings.TrimSuffix(cfg.BaseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid base url %q: %w", cfg.BaseURL, err)
	}
	if base.Scheme != "http" && base.Scheme != "https" {
		return nil, fmt.Errorf("invalid base url %q: scheme must be http or https", cfg.BaseURL)
	}
	if base.Host == "" {
		return nil, fmt.Errorf("invalid base url %q: missing host", cfg.BaseURL)
	}

	if httpClient == nil {
		timeout := cfg.TimeoutSeconds
		if timeout <= 0 {
			timeout = 30
		}
		timeoutDuration := time.Duration(timeout) * time.Second

		transport := &http.Transport{
			Proxy: http.ProxyFromEnvironment,
			DialContext: (&net.Dialer{
				Timeout:   timeoutDuration,
				KeepAlive: 30 * time.Second,
			}).DialContext,
			MaxIdleConns:          10,
			IdleConnTimeout:       90 * time.Second,
			TLSHandshakeTimeout:   timeoutDuration,
			ExpectContinueTimeout: 1 * time.Second,
			ResponseHeaderTimeout: timeoutDuration,
		}
		httpClient = &http.Client{Transport: transport, Timeout: timeoutDuration}
	}

	return &Client{
		baseURL:   base,
		userAgent: cfg.UserAgent,
		http:      httpClient,
		logger:    logger.With(zap.String("component", "httpclient")),
	}, nil
}

// BaseURL returns the normalized base URL without a trailing slash.
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

// Origin returns scheme://host of the base URL.
func (c *Client) Origin() string {
	return c.baseURL.Scheme + "://" + c.baseURL.Host
}

// URL resolves path and query against the base URL.
func (c *Client) URL(path string, query url.Values) string {
	u := *c.baseURL
	u.Path = c.baseURL.Path + path
	u.RawPath = ""
	u.RawQuery = ""
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}
	return u.String()
}

// Do sends req and reads the whole response body.
// Failures to connect are wrapped with ErrUnreachable.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	if req == nil {
		return nil, fmt.Errorf("nil request")
	}

	method := strings.ToUpper(req.Method)
	target := c.URL(req.Path, req.Query)

	var body io.Reader
	if req.JSON != nil {
		payload, err := json.Marshal(req.JSON)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		body = bytes.NewReader(payload)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		httpReq.Header.Set("User-Agent", c.userAgent)
	}
	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	c.logger.Debug("Sending request", zap.String("method", method), zap.String("url", target))

	start := time.Now()
	resp, err := c.http.Do(httpReq)
	if err != nil {
		if isUnreachable(err) {
			return nil, fmt.Errorf("%w: %s %s: %v", ErrUnreachable, method, target, err)
		}
		return nil, fmt.Errorf("%s %s: %w", method, target, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}
	elapsed := time.Since(start)

	c.logger.Debug("Received response",
		zap.String("method", method),
		zap.String("url", target),
		zap.Int("status", resp.StatusCode),
		zap.String("ray_id", resp.Header.Get(RayIDHeader)),
		zap.Duration("elapsed", elapsed),
	)

	return &Response{
		Request:    req,
		URL:        target,
		StatusCode: resp.StatusCode,
		Headers:    resp.Header,
		Body:       data,
		Elapsed:    elapsed,
	}, nil
}

// isUnreachable reports whether err happened before any response could be read:
// dial failures, DNS lookups and connections dropped before the status line.
func isUnreachable(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) ||
		errors.Is(err, syscall.ECONNRESET) || errors.Is(err, syscall.ECONNREFUSED) {
		return true
	}
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return true
	}
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return opErr.Op == "dial"
	}
	return false
}
