// Package vehicleapi is the HTTP client for the lifecycle CO2 ranking service.
//
// Each operation is a single request/response round trip. There is no
// retry, no client-side timeout and no caching; callers that need to bound
// a call pass a context with a deadline.
package vehicleapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/carbonwise/carbonwise/internal/logging"
	"github.com/carbonwise/carbonwise/internal/vehicle"
)

// Service paths.
const (
	PathSegments = "/segments"
	PathCompare  = "/compare"
	PathHealth   = "/health"
)

const contentTypeJSON = "application/json"

// Client talks to one ranking service.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the instrumented default HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// New creates a Client for baseURL, e.g. "http://localhost:8000".
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the service address the client was built with.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Segments fetches the catalog of valid vehicle segments.
func (c *Client) Segments(ctx context.Context) ([]vehicle.Segment, error) {
	body, err := c.do(ctx, http.MethodGet, PathSegments, nil)
	if err != nil {
		return nil, err
	}
	var w segmentsWire
	if err = decodeStrict(bytes.NewReader(body), &w); err != nil {
		return nil, err
	}
	return w.toModel()
}

// Compare asks the service to rank vehicles for req.
func (c *Client) Compare(ctx context.Context, req vehicle.Request) (*vehicle.Result, error) {
	payload, err := json.Marshal(compareRequestWire{
		DailyMileage:   req.DailyMileage,
		OwnershipYears: req.OwnershipYears,
		VehicleSegment: string(req.Segment),
	})
	if err != nil {
		return nil, fmt.Errorf("encoding compare request: %w", err)
	}
	body, err := c.do(ctx, http.MethodPost, PathCompare, payload)
	if err != nil {
		return nil, err
	}
	return UnmarshalResult(body)
}

// Health fetches the service status. Unknown fields are tolerated here
// because the payload is implementation-defined.
func (c *Client) Health(ctx context.Context) (*vehicle.Health, error) {
	body, err := c.do(ctx, http.MethodGet, PathHealth, nil)
	if err != nil {
		return nil, err
	}
	var w healthWire
	if err = json.Unmarshal(body, &w); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidResponse, err)
	}
	return &vehicle.Health{
		Status:        w.Status,
		DatasetLoaded: w.DatasetLoaded,
		TotalVehicles: w.TotalVehicles,
	}, nil
}

// do performs one round trip and returns the body of a 2xx response.
func (c *Client) do(ctx context.Context, method, path string, payload []byte) ([]byte, error) {
	logger := logging.FromContext(ctx)
	start := time.Now()

	var reqBody io.Reader
	if payload != nil {
		reqBody = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, &TransportError{Method: method, Path: path, Err: err}
	}
	req.Header.Set("Content-Type", contentTypeJSON)
	req.Header.Set("Accept", contentTypeJSON)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Debug().Ctx(ctx).
			Str("method", method).
			Str("path", path).
			Dur("duration", time.Since(start)).
			Err(err).
			Msg("ranking service request failed")
		return nil, &TransportError{Method: method, Path: path, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Method: method, Path: path, StatusCode: resp.StatusCode, Err: err}
	}

	logger.Debug().Ctx(ctx).
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("duration", time.Since(start)).
		Msg("ranking service round trip")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, newStatusError(method, path, resp.StatusCode, body)
	}
	return body, nil
}
