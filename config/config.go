package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/kbukum/crousapi/logger"
	"github.com/kbukum/crousapi/observability"
	"github.com/kbukum/crousapi/validation"
)

const (
	// DefaultBaseURL is the public endpoint of the remote menu service.
	DefaultBaseURL = "https://api.croustillant.menu/v1"
	// DefaultTimeout bounds a single collection request.
	DefaultTimeout = 30 * time.Second
)

// Config is the full client configuration.
type Config struct {
	BaseURL   string               `yaml:"base_url" mapstructure:"base_url"`
	Timeout   time.Duration        `yaml:"timeout" mapstructure:"timeout"`
	Logging   logger.Config        `yaml:"logging" mapstructure:"logging"`
	Telemetry observability.Config `yaml:"telemetry" mapstructure:"telemetry"`
}

// ApplyDefaults applies default values to every section.
func (c *Config) ApplyDefaults() {
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.Timeout == 0 {
		c.Timeout = DefaultTimeout
	}
	c.Logging.ApplyDefaults()
	c.Telemetry.ApplyDefaults()
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	v := validation.New().
		Required("base_url", c.BaseURL).
		Custom(isAbsoluteHTTPURL(c.BaseURL), "base_url", "must be an absolute http(s) URL").
		Min("timeout", int64(c.Timeout), 1)
	if appErr := v.Validate(); appErr != nil {
		return fmt.Errorf("config: %w", appErr)
	}
	if err := c.Logging.Validate(); err != nil {
		return fmt.Errorf("config.logging: %w", err)
	}
	if err := c.Telemetry.Validate(); err != nil {
		return fmt.Errorf("config.telemetry: %w", err)
	}
	return nil
}

func isAbsoluteHTTPURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
