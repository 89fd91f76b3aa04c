package reconcile

import (
	"context"
	"fmt"
)

// OwnerPolicy decides what happens to an owner whose collection becomes
// empty. It runs inside the reconcile transaction.
type OwnerPolicy interface {
	OnEmpty(ctx context.Context, ownerID int64) (removed bool, err error)
}

// KeepOwner leaves the owner in place.
type KeepOwner struct{}

func (KeepOwner) OnEmpty(context.Context, int64) (bool, error) { return false, nil }

// RemoveEmptyOwner deletes an owner that no longer holds any item.
type RemoveEmptyOwner struct {
	Owners OwnerRemover
}

func (p RemoveEmptyOwner) OnEmpty(ctx context.Context, ownerID int64) (bool, error) {
	if err := p.Owners.DeleteOwner(ctx, ownerID); err != nil {
		return false, fmt.Errorf("delete owner %d: %w", ownerID, err)
	}
	return true, nil
}
