// Package enrollment resolves a course's stakeholders through the
// enrollment service.
package enrollment

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// ErrUnresolved marks any failure to obtain the stakeholder list:
// transport errors, timeouts, non-2xx statuses and malformed bodies.
var ErrUnresolved = errors.New("stakeholders unresolved")

// maxBodyBytes caps the enrollment response read into memory.
const maxBodyBytes = 4 << 20

type enrollmentDTO struct {
	ID        int64  `json:"id"`
	StudentID int64  `json:"studentId"`
	CourseID  int64  `json:"courseId"`
	Status    string `json:"status"`
}

// Client calls GET {base}/api/v1/enrollments/course/{courseId}.
// It is stateless and safe for concurrent use. Results are never cached.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *slog.Logger
}

// NewClient creates a Client with the given base URL and request timeout.
func NewClient(baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		log:        logger.With("adapter", "enrollment"),
	}
}

// Resolve returns the ids of students enrolled in the course, deduplicated
// in first-seen order. Zero enrollments is an empty slice and a nil error.
// No retry is attempted.
func (c *Client) Resolve(ctx context.Context, courseID int64) ([]int64, error) {
	reqURL := c.baseURL + "/api/v1/enrollments/course/" + strconv.FormatInt(courseID, 10)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("enrollment: create request: %w: %w", ErrUnresolved, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("enrollment: request failed: %w: %w", ErrUnresolved, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("enrollment: %w: unexpected status %d", ErrUnresolved, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("enrollment: read body: %w: %w", ErrUnresolved, err)
	}

	var enrollments []enrollmentDTO
	if err := json.Unmarshal(body, &enrollments); err != nil {
		return nil, fmt.Errorf("enrollment: decode json: %w: %w", ErrUnresolved, err)
	}

	ids := make([]int64, 0, len(enrollments))
	seen := make(map[int64]struct{}, len(enrollments))
	for _, e := range enrollments {
		if e.StudentID <= 0 {
			continue
		}
		if _, dup := seen[e.StudentID]; dup {
			continue
		}
		seen[e.StudentID] = struct{}{}
		ids = append(ids, e.StudentID)
	}

	c.log.DebugContext(ctx, "stakeholders resolved",
		slog.Int64("course_id", courseID),
		slog.Int("enrollments", len(enrollments)),
		slog.Int("stakeholders", len(ids)),
	)

	return ids, nil
}
