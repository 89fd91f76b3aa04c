package assessment

import (
	"context"
	"fmt"

	"github.com/eduveda/course-backend/internal/domain"
	"github.com/eduveda/course-backend/internal/reconcile"
	"github.com/eduveda/course-backend/pkg/ctxutil"
)

// ReplaceResult carries the committed outcome and the notification report.
type ReplaceResult struct {
	Outcome *reconcile.Outcome[domain.Assessment]
	Report  domain.NotifyReport
}

// ReplaceAssessments makes the course's assessments equal to
// input.Assessments and announces the changes.
func (s *Service) ReplaceAssessments(ctx context.Context, input ReplaceAssessmentsInput) (*ReplaceResult, error) {
	authorID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if err := s.requireCourse(ctx, input.CourseID); err != nil {
		return nil, fmt.Errorf("course %d: %w", input.CourseID, err)
	}

	out, err := s.reconciler.Reconcile(ctx, input.CourseID, input.toDomain())
	if err != nil {
		return nil, err
	}

	report := s.notifier.Announce(context.WithoutCancel(ctx), input.CourseID, out.Diff.Changes(), authorID)
	return &ReplaceResult{Outcome: out, Report: report}, nil
}

// ListAssessments returns the course's assessments ordered by id.
func (s *Service) ListAssessments(ctx context.Context, courseID int64) ([]domain.Assessment, error) {
	if courseID <= 0 {
		return nil, domain.NewValidationError("course_id", "required")
	}
	if err := s.requireCourse(ctx, courseID); err != nil {
		return nil, fmt.Errorf("course %d: %w", courseID, err)
	}

	items, err := s.assessments.FindByOwner(ctx, courseID)
	if err != nil {
		return nil, fmt.Errorf("list assessments: %w", err)
	}
	return items, nil
}
