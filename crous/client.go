package crous

import (
	"net/http"
	"time"

	"github.com/kbukum/crousapi/config"
	"github.com/kbukum/crousapi/errors"
	"github.com/kbukum/crousapi/httpclient"
	"github.com/kbukum/crousapi/logger"
	"github.com/kbukum/crousapi/observability"
)

// Config configures a Client.
type Config struct {
	// BaseURL of the remote service. Defaults to config.DefaultBaseURL.
	BaseURL string
	// Timeout bounds each request. Defaults to config.DefaultTimeout.
	Timeout time.Duration
}

// Client bundles the three resolvers over one shared transport.
// It holds no mutable state and is safe for concurrent use.
type Client struct {
	Regions     *RegionService
	Restaurants *RestaurantService
	Menus       *MenuService

	transport *httpclient.Adapter
}

// Option configures a Client.
type Option func(*clientOptions)

type clientOptions struct {
	transport []httpclient.Option
}

// WithLogger enables per-request debug logging. The client is silent otherwise.
func WithLogger(l *logger.Logger) Option {
	return func(o *clientOptions) {
		o.transport = append(o.transport, httpclient.WithLogger(l))
	}
}

// WithHTTPClient replaces the underlying *http.Client.
func WithHTTPClient(c *http.Client) Option {
	return func(o *clientOptions) {
		o.transport = append(o.transport, httpclient.WithHTTPClient(c))
	}
}

// WithMetrics records request counts and durations on m.
func WithMetrics(m *observability.ClientMetrics) Option {
	return func(o *clientOptions) {
		o.transport = append(o.transport, httpclient.WithMetrics(m))
	}
}

// New creates a Client for cfg.
func New(cfg Config, opts ...Option) (*Client, error) {
	if cfg.BaseURL == "" {
		cfg.BaseURL = config.DefaultBaseURL
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = config.DefaultTimeout
	}

	var o clientOptions
	for _, opt := range opts {
		opt(&o)
	}

	transport, err := httpclient.New(httpclient.Config{
		Name:    "crous",
		BaseURL: cfg.BaseURL,
		Timeout: cfg.Timeout,
	}, o.transport...)
	if err != nil {
		return nil, errors.InvalidInput("config", "Invalid client configuration").WithCause(err)
	}

	return &Client{
		Regions:     &RegionService{transport: transport},
		Restaurants: &RestaurantService{transport: transport},
		Menus:       &MenuService{transport: transport},
		transport:   transport,
	}, nil
}

// NewFromConfig creates a Client from a loaded configuration file.
// A nil cfg yields the defaults.
func NewFromConfig(cfg *config.Config, opts ...Option) (*Client, error) {
	if cfg == nil {
		return New(Config{}, opts...)
	}
	return New(Config{BaseURL: cfg.BaseURL, Timeout: cfg.Timeout}, opts...)
}

// Close releases idle connections.
func (c *Client) Close() {
	c.transport.Close()
}
