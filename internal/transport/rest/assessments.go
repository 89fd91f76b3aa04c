package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/eduveda/course-backend/internal/domain"
	"github.com/eduveda/course-backend/internal/reconcile"
	"github.com/eduveda/course-backend/internal/service/assessment"
)

type assessmentService interface {
	ReplaceAssessments(ctx context.Context, input assessment.ReplaceAssessmentsInput) (*assessment.ReplaceResult, error)
	ListAssessments(ctx context.Context, courseID int64) ([]domain.Assessment, error)
}

// AssessmentHandler serves the course assessments endpoints.
type AssessmentHandler struct {
	svc assessmentService
	log *slog.Logger
}

func NewAssessmentHandler(svc assessmentService, logger *slog.Logger) *AssessmentHandler {
	return &AssessmentHandler{svc: svc, log: logger.With("handler", "assessments")}
}

type questionJSON struct {
	Text    string   `json:"text"`
	Options []string `json:"options"`
	Answer  string   `json:"answer"`
}

type assessmentRequest struct {
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Type        string         `json:"type"`
	Questions   []questionJSON `json:"questions"`
}

type assessmentResponse struct {
	ID             int64          `json:"id"`
	CourseID       int64          `json:"courseId"`
	Type           string         `json:"type"`
	Title          string         `json:"title"`
	Description    string         `json:"description"`
	Questions      []questionJSON `json:"questions"`
	CorrectAnswers []string       `json:"correctAnswers"`
	MaxScore       int            `json:"maxScore"`
	CreatedBy      int64          `json:"createdBy"`
	UpdatedBy      int64          `json:"updatedBy"`
	CreatedAt      time.Time      `json:"createdAt"`
	UpdatedAt      time.Time      `json:"updatedAt"`
	Version        int            `json:"version"`
}

func toAssessmentResponse(a domain.Assessment) assessmentResponse {
	qs := make([]questionJSON, len(a.Questions))
	for i, q := range a.Questions {
		qs[i] = questionJSON(q)
	}
	return assessmentResponse{
		ID: a.ID, CourseID: a.CourseID, Type: a.Type, Title: a.Title, Description: a.Description,
		Questions: qs, CorrectAnswers: a.CorrectAnswers(), MaxScore: a.MaxScore(),
		CreatedBy: a.CreatedBy, UpdatedBy: a.UpdatedBy, CreatedAt: a.CreatedAt, UpdatedAt: a.UpdatedAt,
		Version: a.Version,
	}
}

// List handles GET /api/v1/assessments/course/{courseId}.
func (h *AssessmentHandler) List(w http.ResponseWriter, r *http.Request) {
	courseID, err := pathID(r, "courseId")
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}

	items, err := h.svc.ListAssessments(r.Context(), courseID)
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}

	out := make([]assessmentResponse, len(items))
	for i, it := range items {
		out[i] = toAssessmentResponse(it)
	}
	writeJSON(w, http.StatusOK, out)
}

// Replace handles PUT /api/v1/assessments/course/{courseId}.
func (h *AssessmentHandler) Replace(w http.ResponseWriter, r *http.Request) {
	courseID, err := pathID(r, "courseId")
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}

	var req []assessmentRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}

	input := assessment.ReplaceAssessmentsInput{CourseID: courseID, Assessments: make([]assessment.AssessmentInput, len(req))}
	for i, it := range req {
		qs := make([]assessment.QuestionInput, len(it.Questions))
		for j, q := range it.Questions {
			qs[j] = assessment.QuestionInput(q)
		}
		input.Assessments[i] = assessment.AssessmentInput{
			Title: it.Title, Description: it.Description, Type: it.Type, Questions: qs,
		}
	}

	result, err := h.svc.ReplaceAssessments(r.Context(), input)
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
