package assessment

import (
	"context"
	"log/slog"

	"github.com/eduveda/course-backend/internal/domain"
	"github.com/eduveda/course-backend/internal/reconcile"
)

type assessmentReconciler interface {
	Reconcile(ctx context.Context, ownerID int64, desired []domain.Assessment) (*reconcile.Outcome[domain.Assessment], error)
}

type assessmentRepo interface {
	FindByOwner(ctx context.Context, courseID int64) ([]domain.Assessment, error)
}

type courseRepo interface {
	Exists(ctx context.Context, courseID int64) (bool, error)
}

type announcer interface {
	Announce(ctx context.Context, ownerID int64, changes domain.ChangeSet, authorID int64) domain.NotifyReport
}

// Service manages the assessments of a course. A course keeps existing
// when its last assessment is removed.
type Service struct {
	reconciler  assessmentReconciler
	assessments assessmentRepo
	courses     courseRepo
	notifier    announcer
	log         *slog.Logger
}

func NewService(
	log *slog.Logger,
	reconciler assessmentReconciler,
	assessments assessmentRepo,
	courses courseRepo,
	notifier announcer,
) *Service {
	return &Service{
		reconciler:  reconciler,
		assessments: assessments,
		courses:     courses,
		notifier:    notifier,
		log:         log.With("service", "assessment"),
	}
}

func (s *Service) requireCourse(ctx context.Context, courseID int64) error {
	exists, err := s.courses.Exists(ctx, courseID)
	if err != nil {
		return err
	}
	if !exists {
		return domain.ErrNotFound
	}
	return nil
}
