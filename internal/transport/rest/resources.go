package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/eduveda/course-backend/internal/domain"
	"github.com/eduveda/course-backend/internal/reconcile"
	"github.com/eduveda/course-backend/internal/service/course"
)

type resourceService interface {
	ReplaceResources(ctx context.Context, input course.ReplaceResourcesInput) (*course.ReplaceResult, error)
	ListResources(ctx context.Context, courseID int64) ([]domain.Resource, error)
}

// ResourceHandler serves the course resources endpoints.
type ResourceHandler struct {
	svc resourceService
	log *slog.Logger
}

func NewResourceHandler(svc resourceService, logger *slog.Logger) *ResourceHandler {
	return &ResourceHandler{svc: svc, log: logger.With("handler", "resources")}
}

// createdBy and updatedBy are accepted for compatibility and ignored; the
// author always comes from the gateway identity.
type resourceRequest struct {
	Title       string `json:"title"`
	Duration    string `json:"duration"`
	YoutubeLink string `json:"youtubeLink"`
	CreatedBy   *int64 `json:"createdBy,omitempty"`
	UpdatedBy   *int64 `json:"updatedBy,omitempty"`
}

type resourceResponse struct {
	ID        int64     `json:"id"`
	CourseID  int64     `json:"courseId"`
	Title     string    `json:"title"`
	Duration  string    `json:"duration"`
	YoutubeID string    `json:"youtubeId"`
	CreatedBy int64     `json:"createdBy"`
	UpdatedBy int64     `json:"updatedBy"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	Version   int       `json:"version"`
}

// List handles GET /api/v1/courses/{courseId}/resources.
func (h *ResourceHandler) List(w http.ResponseWriter, r *http.Request) {
	courseID, err := pathID(r, "courseId")
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}

	items, err := h.svc.ListResources(r.Context(), courseID)
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}

	out := make([]resourceResponse, len(items))
	for i, it := range items {
		out[i] = resourceResponse{
			ID: it.ID, CourseID: it.CourseID, Title: it.Title, Duration: it.Duration,
			YoutubeID: it.YoutubeID, CreatedBy: it.CreatedBy, UpdatedBy: it.UpdatedBy,
			CreatedAt: it.CreatedAt, UpdatedAt: it.UpdatedAt, Version: it.Version,
		}
	}
	writeJSON(w, http.StatusOK, out)
}

// Replace handles PUT /api/v1/courses/{courseId}/resources. The body is
// the complete desired list.
func (h *ResourceHandler) Replace(w http.ResponseWriter, r *http.Request) {
	courseID, err := pathID(r, "courseId")
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}

	var req []resourceRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}

	input := course.ReplaceResourcesInput{CourseID: courseID, Resources: make([]course.ResourceInput, len(req))}
	for i, it := range req {
		input.Resources[i] = course.ResourceInput{Title: it.Title, Duration: it.Duration, YoutubeLink: it.YoutubeLink}
	}

	result, err := h.svc.ReplaceResources(r.Context(), input)
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, newReplaceResponse(
		result.Outcome.Diff.Changes(),
		result.Outcome.Status == reconcile.OutcomeOwnerRemoved,
		result.Report,
	))
}
