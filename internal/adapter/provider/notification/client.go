// Package notification delivers notifications to the notification service.
package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/eduveda/course-backend/internal/domain"
)

// Client posts to {base}/api/v1/notifications. It is safe for concurrent use.
type Client struct {
	endpoint   string
	httpClient *http.Client
	limiter    *rate.Limiter
	log        *slog.Logger
}

// Config controls the outbound request rate. RatePerSecond <= 0 disables
// limiting.
type Config struct {
	BaseURL       string
	Timeout       time.Duration
	RatePerSecond float64
	Burst         int
}

// NewClient creates a Client from cfg.
func NewClient(cfg Config, logger *slog.Logger) *Client {
	limit, burst := rate.Inf, 0
	if cfg.RatePerSecond > 0 {
		limit, burst = rate.Limit(cfg.RatePerSecond), max(cfg.Burst, 1)
	}
	return &Client{
		endpoint:   strings.TrimRight(cfg.BaseURL, "/") + "/api/v1/notifications",
		httpClient: &http.Client{Timeout: cfg.Timeout},
		limiter:    rate.NewLimiter(limit, burst),
		log:        logger.With("adapter", "notification"),
	}
}

// Send delivers n once. Any 2xx status is success; the body is ignored.
func (c *Client) Send(ctx context.Context, n domain.Notification) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("notification: rate limit: %w", err)
	}

	payload, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("notification: encode: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("notification: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("notification: request failed: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64<<10))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("notification: unexpected status %d", resp.StatusCode)
	}

	c.log.DebugContext(ctx, "notification delivered",
		slog.Int64("user_id", n.UserID),
		slog.Int64("related_entity_id", n.RelatedEntityID),
		slog.String("type", n.Type),
	)
	return nil
}
