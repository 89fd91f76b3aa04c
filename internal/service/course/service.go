package course

import (
	"context"
	"log/slog"

	"github.com/eduveda/course-backend/internal/domain"
	"github.com/eduveda/course-backend/internal/reconcile"
)

type resourceReconciler interface {
	Reconcile(ctx context.Context, ownerID int64, desired []domain.Resource) (*reconcile.Outcome[domain.Resource], error)
}

type resourceRepo interface {
	FindByOwner(ctx context.Context, courseID int64) ([]domain.Resource, error)
}

type courseRepo interface {
	Exists(ctx context.Context, courseID int64) (bool, error)
}

type announcer interface {
	Announce(ctx context.Context, ownerID int64, changes domain.ChangeSet, authorID int64) domain.NotifyReport
	AnnounceOwnerRemoved(ctx context.Context, ownerID int64, authorID int64) domain.NotifyReport
}

// Config toggles optional behaviour.
type Config struct {
	// AnnounceOwnerRemoval sends "Course Removed" when a course loses its
	// last resource.
	AnnounceOwnerRemoval bool
}

// Service manages the resources of a course.
type Service struct {
	reconciler resourceReconciler
	resources  resourceRepo
	courses    courseRepo
	notifier   announcer
	cfg        Config
	log        *slog.Logger
}

// NewService creates a new course resources service.
func NewService(
	log *slog.Logger,
	reconciler resourceReconciler,
	resources resourceRepo,
	courses courseRepo,
	notifier announcer,
	cfg Config,
) *Service {
	return &Service{
		reconciler: reconciler,
		resources:  resources,
		courses:    courses,
		notifier:   notifier,
		cfg:        cfg,
		log:        log.With("service", "course"),
	}
}
