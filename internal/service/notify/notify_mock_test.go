package notify

import (
	"context"
	"sync"

	"github.com/eduveda/course-backend/internal/domain"
)

var _ stakeholderResolver = &stakeholderResolverMock{}

type stakeholderResolverMock struct {
	ResolveFunc func(ctx context.Context, ownerID int64) ([]int64, error)

	calls struct {
		Resolve []struct {
			Ctx     context.Context
			OwnerID int64
		}
	}
	lockResolve sync.RWMutex
}

func (mock *stakeholderResolverMock) Resolve(ctx context.Context, ownerID int64) ([]int64, error) {
	if mock.ResolveFunc == nil {
		panic("stakeholderResolverMock.ResolveFunc: method is nil but stakeholderResolver.Resolve was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		OwnerID int64
	}{Ctx: ctx, OwnerID: ownerID}
	mock.lockResolve.Lock()
	mock.calls.Resolve = append(mock.calls.Resolve, callInfo)
	mock.lockResolve.Unlock()
	return mock.ResolveFunc(ctx, ownerID)
}

func (mock *stakeholderResolverMock) ResolveCalls() []struct {
	Ctx     context.Context
	OwnerID int64
} {
	mock.lockResolve.RLock()
	calls := mock.calls.Resolve
	mock.lockResolve.RUnlock()
	return calls
}

var _ sender = &senderMock{}

type senderMock struct {
	SendFunc func(ctx context.Context, n domain.Notification) error

	calls struct {
		Send []struct {
			Ctx context.Context
			N   domain.Notification
		}
	}
	lockSend sync.RWMutex
}

func (mock *senderMock) Send(ctx context.Context, n domain.Notification) error {
	if mock.SendFunc == nil {
		panic("senderMock.SendFunc: method is nil but sender.Send was just called")
	}
	callInfo := struct {
		Ctx context.Context
		N   domain.Notification
	}{Ctx: ctx, N: n}
	mock.lockSend.Lock()
	mock.calls.Send = append(mock.calls.Send, callInfo)
	mock.lockSend.Unlock()
	return mock.SendFunc(ctx, n)
}

func (mock *senderMock) SendCalls() []struct {
	Ctx context.Context
	N   domain.Notification
} {
	mock.lockSend.RLock()
	calls := mock.calls.Send
	mock.lockSend.RUnlock()
	return calls
}
