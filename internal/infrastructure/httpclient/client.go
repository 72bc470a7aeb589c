// Package httpclient talks to the catalog REST API. It decodes the
// {success, data, message} envelope and turns failures into *APIError values.
// Requests are never retried; callers decide what to do with a failure.
package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/UmairZakria/gbs-dashboard2/internal/infrastructure/logger"
	"github.com/UmairZakria/gbs-dashboard2/internal/infrastructure/telemetry"
)

// RequestIDHeader carries a per-request id so backend logs can be matched.
const RequestIDHeader = "X-Request-ID"

// Options configures a Client.
type Options struct {
	BaseURL   string
	Timeout   time.Duration
	UserAgent string
	Token     string
	Headers   map[string]string

	HTTPClient *http.Client
	Logger     *zap.Logger
	Metrics    *telemetry.ClientMetrics
	Tracer     trace.Tracer
}

// Client is the HTTP client for the catalog API.
type Client struct {
	httpClient *http.Client
	baseURL    *url.URL
	headers    map[string]string
	token      string
	logger     *zap.Logger
	metrics    *telemetry.ClientMetrics
	tracer     trace.Tracer
}

// New creates a Client.
func New(opts Options) (*Client, error) {
	if opts.BaseURL == "" {
		return nil, fmt.Errorf("base URL is required")
	}
	base, err := url.Parse(opts.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("invalid base URL %q", opts.BaseURL)
	}

	if opts.Timeout <= 0 {
		opts.Timeout = 30 * time.Second
	}
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{
			Transport: &http.Transport{
				MaxIdleConns:        20,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
			Timeout: opts.Timeout,
		}
	}

	c := &Client{
		httpClient: httpClient,
		baseURL:    base,
		headers:    make(map[string]string),
		token:      opts.Token,
		logger:     opts.Logger,
		metrics:    opts.Metrics,
		tracer:     opts.Tracer,
	}
	if c.logger == nil {
		c.logger = zap.NewNop()
	}
	if c.tracer == nil {
		c.tracer = otel.Tracer(telemetry.TracerName)
	}

	c.headers["Content-Type"] = "application/json"
	c.headers["Accept"] = "application/json"
	c.headers["User-Agent"] = "catalog-admin/1.0"
	if opts.UserAgent != "" {
		c.headers["User-Agent"] = opts.UserAgent
	}
	for k, v := range opts.Headers {
		c.headers[k] = v
	}

	return c, nil
}

// BaseURL returns the configured API root.
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

// Request represents an HTTP request to be executed.
type Request struct {
	Method string
	Path   string
	Query  url.Values
	Body   any
}

// Do executes req and decodes the envelope's data into out. out may be nil.
func (c *Client) Do(ctx context.Context, req Request, out any) error {
	u := c.buildURL(req.Path, req.Query)

	var bodyReader io.Reader
	if req.Body != nil {
		payload, err := json.Marshal(req.Body)
		if err != nil {
			return fmt.Errorf("marshaling request body: %w", err)
		}
		bodyReader = bytes.NewReader(payload)
	}

	resource := resourceOf(req.Path)
	ctx, span := c.tracer.Start(ctx, "catalog_api."+strings.ToLower(req.Method),
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.request.method", req.Method),
			attribute.String("url.path", u.Path),
			attribute.String("catalog.resource", resource),
		),
	)
	defer span.End()

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, u.String(), bodyReader)
	if err != nil {
		return fmt.Errorf("creating HTTP request: %w", err)
	}

	requestID := uuid.NewString()
	for k, v := range c.headers {
		httpReq.Header.Set(k, v)
	}
	httpReq.Header.Set(RequestIDHeader, requestID)
	if c.token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.token)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	elapsed := time.Since(start)
	if err != nil {
		c.metrics.ObserveRequest(req.Method, resource, 0, elapsed)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		logger.WithLogger(ctx, c.logger).Debug("catalog API request failed",
			zap.String("method", req.Method),
			zap.String("url", u.String()),
			zap.String("request_id", requestID),
			zap.Error(err),
		)
		return fmt.Errorf("%s %s: %w", req.Method, u.Path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	c.metrics.ObserveRequest(req.Method, resource, resp.StatusCode, time.Since(start))
	span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))
	if err != nil {
		span.RecordError(err)
		return fmt.Errorf("reading response body: %w", err)
	}

	logger.WithLogger(ctx, c.logger).Debug("catalog API request",
		zap.String("method", req.Method),
		zap.String("url", u.String()),
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", elapsed),
		zap.String("request_id", requestID),
	)

	if err := decode(resp.StatusCode, raw, out); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	return nil
}

// Get performs a GET request.
func (c *Client) Get(ctx context.Context, path string, query url.Values, out any) error {
	return c.Do(ctx, Request{Method: http.MethodGet, Path: path, Query: query}, out)
}

// Post performs a POST request.
func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.Do(ctx, Request{Method: http.MethodPost, Path: path, Body: body}, out)
}

// Put performs a PUT request.
func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	return c.Do(ctx, Request{Method: http.MethodPut, Path: path, Body: body}, out)
}

// Patch performs a PATCH request.
func (c *Client) Patch(ctx context.Context, path string, body, out any) error {
	return c.Do(ctx, Request{Method: http.MethodPatch, Path: path, Body: body}, out)
}

// Delete performs a DELETE request.
func (c *Client) Delete(ctx context.Context, path string, out any) error {
	return c.Do(ctx, Request{Method: http.MethodDelete, Path: path}, out)
}

// buildURL appends path to the base URL's path. The base usually carries a
// prefix such as /api that must be kept.
func (c *Client) buildURL(path string, query url.Values) *url.URL {
	u := *c.baseURL
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	rawPath, rest, _ := strings.Cut(path, "?")
	u.Path = strings.TrimSuffix(c.baseURL.Path, "/") + rawPath
	u.RawPath = ""
	if c.baseURL.RawPath != "" || strings.Contains(rawPath, "%") {
		u.RawPath = strings.TrimSuffix(c.baseURL.EscapedPath(), "/") + rawPath
		if unescaped, err := url.PathUnescape(u.RawPath); err == nil {
			u.Path = unescaped
		}
	}

	q := url.Values{}
	if rest != "" {
		if parsed, err := url.ParseQuery(rest); err == nil {
			q = parsed
		}
	}
	for k, vs := range query {
		for _, v := range vs {
			q.Add(k, v)
		}
	}
	u.RawQuery = q.Encode()
	return &u
}

// resourceOf returns the first path segment, used as a low-cardinality label.
func resourceOf(path string) string {
	path = strings.TrimPrefix(path, "/")
	if i := strings.IndexAny(path, "/?"); i >= 0 {
		path = path[:i]
	}
	if path == "" {
		return "root"
	}
	return path
}
