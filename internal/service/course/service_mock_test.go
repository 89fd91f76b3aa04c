package course

import (
	"context"
	"sync"

	"github.com/eduveda/course-backend/internal/domain"
	"github.com/eduveda/course-backend/internal/reconcile"
)

var _ resourceReconciler = &resourceReconcilerMock{}

type resourceReconcilerMock struct {
	ReconcileFunc func(ctx context.Context, ownerID int64, desired []domain.Resource) (*reconcile.Outcome[domain.Resource], error)

	calls struct {
		Reconcile []struct {
			OwnerID int64
			Desired []domain.Resource
		}
	}
	lockReconcile sync.RWMutex
}

func (mock *resourceReconcilerMock) Reconcile(ctx context.Context, ownerID int64, desired []domain.Resource) (*reconcile.Outcome[domain.Resource], error) {
	if mock.ReconcileFunc == nil {
		panic("resourceReconcilerMock.ReconcileFunc: method is nil but resourceReconciler.Reconcile was just called")
	}
	callInfo := struct {
		OwnerID int64
		Desired []domain.Resource
	}{OwnerID: ownerID, Desired: desired}
	mock.lockReconcile.Lock()
	mock.calls.Reconcile = append(mock.calls.Reconcile, callInfo)
	mock.lockReconcile.Unlock()
	return mock.ReconcileFunc(ctx, ownerID, desired)
}

func (mock *resourceReconcilerMock) ReconcileCalls() []struct {
	OwnerID int64
	Desired []domain.Resource
} {
	mock.lockReconcile.RLock()
	calls := mock.calls.Reconcile
	mock.lockReconcile.RUnlock()
	return calls
}

var _ resourceRepo = &resourceRepoMock{}

type resourceRepoMock struct {
	FindByOwnerFunc func(ctx context.Context, courseID int64) ([]domain.Resource, error)
}

func (mock *resourceRepoMock) FindByOwner(ctx context.Context, courseID int64) ([]domain.Resource, error) {
	if mock.FindByOwnerFunc == nil {
		panic("resourceRepoMock.FindByOwnerFunc: method is nil but resourceRepo.FindByOwner was just called")
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
	AnnounceFunc             func(ctx context.Context, ownerID int64, changes domain.ChangeSet, authorID int64) domain.NotifyReport
	AnnounceOwnerRemovedFunc func(ctx context.Context, ownerID int64, authorID int64) domain.NotifyReport

	calls struct {
		Announce []struct {
			Ctx      context.Context
			OwnerID  int64
			Changes  domain.ChangeSet
			AuthorID int64
		}
		AnnounceOwnerRemoved []struct {
			OwnerID  int64
			AuthorID int64
		}
	}
	lockAnnounce             sync.RWMutex
	lockAnnounceOwnerRemoved sync.RWMutex
}

func (mock *announcerMock) Announce(ctx context.Context, ownerID int64, changes domain.ChangeSet, authorID int64) domain.NotifyReport {
	if mock.AnnounceFunc == nil {
		panic("announcerMock.AnnounceFunc: method is nil but announcer.Announce was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		OwnerID  int64
		Changes  domain.ChangeSet
		AuthorID int64
	}{Ctx: ctx, OwnerID: ownerID, Changes: changes, AuthorID: authorID}
	mock.lockAnnounce.Lock()
	mock.calls.Announce = append(mock.calls.Announce, callInfo)
	mock.lockAnnounce.Unlock()
	return mock.AnnounceFunc(ctx, ownerID, changes, authorID)
}

func (mock *announcerMock) AnnounceCalls() []struct {
	Ctx      context.Context
	OwnerID  int64
	Changes  domain.ChangeSet
	AuthorID int64
} {
	mock.lockAnnounce.RLock()
	calls := mock.calls.Announce
	mock.lockAnnounce.RUnlock()
	return calls
}

func (mock *announcerMock) AnnounceOwnerRemoved(ctx context.Context, ownerID int64, authorID int64) domain.NotifyReport {
	if mock.AnnounceOwnerRemovedFunc == nil {
		panic("announcerMock.AnnounceOwnerRemovedFunc: method is nil but announcer.AnnounceOwnerRemoved was just called")
	}
	callInfo := struct {
		OwnerID  int64
		AuthorID int64
	}{OwnerID: ownerID, AuthorID: authorID}
	mock.lockAnnounceOwnerRemoved.Lock()
	mock.calls.AnnounceOwnerRemoved = append(mock.calls.AnnounceOwnerRemoved, callInfo)
	mock.lockAnnounceOwnerRemoved.Unlock()
	return mock.AnnounceOwnerRemovedFunc(ctx, ownerID, authorID)
}

func (mock *announcerMock) AnnounceOwnerRemovedCalls() []struct {
	OwnerID  int64
	AuthorID int64
} {
	mock.lockAnnounceOwnerRemoved.RLock()
	calls := mock.calls.AnnounceOwnerRemoved
	mock.lockAnnounceOwnerRemoved.RUnlock()
	return calls
}
