package config

import (
	"errors"
	"fmt"
	"net/url"
)

// Validate performs business-rule validation on the loaded configuration.
// Load calls it automatically.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}
	if c.Database.MinConns > c.Database.MaxConns {
		return fmt.Errorf("database.min_conns (%d) exceeds max_conns (%d)", c.Database.MinConns, c.Database.MaxConns)
	}
	if err := c.Notify.validate(); err != nil {
		return fmt.Errorf("notify: %w", err)
	}
	return nil
}

func (n *NotifyConfig) validate() error {
	if err := validateBaseURL(n.EnrollmentURL); err != nil {
		return fmt.Errorf("enrollment_url: %w", err)
	}
	if err := validateBaseURL(n.NotificationURL); err != nil {
		return fmt.Errorf("notification_url: %w", err)
	}
	if n.Concurrency <= 0 {
		return fmt.Errorf("concurrency must be > 0 (got %d)", n.Concurrency)
	}
	if n.RequestTimeout <= 0 || n.DeliveryTimeout <= 0 {
		return errors.New("request_timeout and delivery_timeout must be > 0")
	}
	if n.RatePerSecond < 0 {
		return fmt.Errorf("rate_per_second must be >= 0 (got %v)", n.RatePerSecond)
	}
	if n.RatePerSecond > 0 && n.RateBurst <= 0 {
		return fmt.Errorf("rate_burst must be > 0 when rate limiting is on (got %d)", n.RateBurst)
	}
	return nil
}

func validateBaseURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("scheme must be http or https (got %q)", u.Scheme)
	}
	if u.Host == "" {
		return errors.New("host is required")
	}
	return nil
}
