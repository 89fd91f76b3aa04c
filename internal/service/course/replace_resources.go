package course

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/eduveda/course-backend/internal/domain"
	"github.com/eduveda/course-backend/internal/reconcile"
	"github.com/eduveda/course-backend/pkg/ctxutil"
)

// ReplaceResources makes the course's resources equal to input.Resources,
// then announces the changes to enrolled students. An empty list removes
// the course. Notification failures never fail the call.
func (s *Service) ReplaceResources(ctx context.Context, input ReplaceResourcesInput) (*ReplaceResult, error) {
	authorID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	exists, err := s.courses.Exists(ctx, input.CourseID)
	if err != nil {
		return nil, fmt.Errorf("check course: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("course %d: %w", input.CourseID, domain.ErrNotFound)
	}

	out, err := s.reconciler.Reconcile(ctx, input.CourseID, input.toDomain())
	if err != nil {
		return nil, err
	}

	// Committed. The request may be gone by now; notifications still go out.
	notifyCtx := context.WithoutCancel(ctx)

	var report domain.NotifyReport
	switch out.Status {
	case reconcile.OutcomeOwnerRemoved:
		s.log.InfoContext(ctx, "course removed after losing all resources",
			slog.Int64("course_id", input.CourseID),
			slog.Int64("user_id", authorID),
		)
		if s.cfg.AnnounceOwnerRemoval {
			report = s.notifier.AnnounceOwnerRemoved(notifyCtx, input.CourseID, authorID)
		}
	default:
		report = s.notifier.Announce(notifyCtx, input.CourseID, out.Diff.Changes(), authorID)
	}

	return &ReplaceResult{Outcome: out, Report: report}, nil
}
