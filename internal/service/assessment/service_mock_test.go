package assessment

import (
	"context"
	"sync"

	"github.com/eduveda/course-backend/internal/domain"
	"github.com/eduveda/course-backend/internal/reconcile"
)

var _ assessmentReconciler = &assessmentReconcilerMock{}

type assessmentReconcilerMock struct {
	ReconcileFunc func(ctx context.Context, ownerID int64, desired []domain.Assessment) (*reconcile.Outcome[domain.Assessment], error)

	calls struct {
		Reconcile [][]domain.Assessment
	}
	lockReconcile sync.RWMutex
}

func (mock *assessmentReconcilerMock) Reconcile(ctx context.Context, ownerID int64, desired []domain.Assessment) (*reconcile.Outcome[domain.Assessment], error) {
	if mock.ReconcileFunc == nil {
		panic("assessmentReconcilerMock.ReconcileFunc: method is nil but assessmentReconciler.Reconcile was just called")
	}
	mock.lockReconcile.Lock()
	mock.calls.Reconcile = append(mock.calls.Reconcile, desired)
	mock.lockReconcile.Unlock()
	return mock.ReconcileFunc(ctx, ownerID, desired)
}

func (mock *assessmentReconcilerMock) ReconcileCalls() [][]domain.Assessment {
	mock.lockReconcile.RLock()
	defer mock.lockReconcile.RUnlock()
	return mock.calls.Reconcile
}

var _ assessmentRepo = &assessmentRepoMock{}

type assessmentRepoMock struct {
	FindByOwnerFunc func(ctx context.Context, courseID int64) ([]domain.Assessment, error)
}

func (mock *assessmentRepoMock) FindByOwner(ctx context.Context, courseID int64) ([]domain.Assessment, error) {
	if mock.FindByOwnerFunc == nil {
		panic("assessmentRepoMock.FindByOwnerFunc: method is nil but assessmentRepo.FindByOwner was just called")
	}
	return mock.FindByOwnerFunc(ctx, courseID)
}

var _ courseRepo = &courseRepoMock{}

type courseRepoMock struct {
	ExistsFunc func(ctx context.Context, courseID int64) (bool, error)
}

func (mock *courseRepoMock) Exists(ctx context.Context, courseID int64) (bool, error) {
	if mock.ExistsFunc == nil {
		panic("courseRepoMock.ExistsFunc: method is nil but courseRepo.Exists was just called")
	}
	return mock.ExistsFunc(ctx, courseID)
}

var _ announcer = &announcerMock{}

type announcerMock struct {
	AnnounceFunc func(ctx context.Context, ownerID int64, changes domain.ChangeSet, authorID int64) domain.NotifyReport

	calls struct {
		Announce []domain.ChangeSet
	}
	lockAnnounce sync.RWMutex
}

func (mock *announcerMock) Announce(ctx context.Context, ownerID int64, changes domain.ChangeSet, authorID int64) domain.NotifyReport {
	if mock.AnnounceFunc == nil {
		panic("announcerMock.AnnounceFunc: method is nil but announcer.Announce was just called")
	}
	mock.lockAnnounce.Lock()
	mock.calls.Announce = append(mock.calls.Announce, changes)
	mock.lockAnnounce.Unlock()
	return mock.AnnounceFunc(ctx, ownerID, changes, authorID)
}

func (mock *announcerMock) AnnounceCalls() []domain.ChangeSet {
	mock.lockAnnounce.RLock()
	defer mock.lockAnnounce.RUnlock()
	return mock.calls.Announce
}
