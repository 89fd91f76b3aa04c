// Package reconcile applies a client's complete desired state of a
// sub-collection against the persisted state of one owner.
package reconcile

import (
	"context"
	"time"
)

// Item is the contract every reconciled item satisfies. T is the item type
// itself, so implementations use value receivers and return copies.
type Item[T any] interface {
	// NaturalKey identifies the item within its owner.
	NaturalKey() string
	// Validate checks item-level rules and returns *domain.ValidationError.
	Validate() error
	// SameContent reports whether every significant content field is equal.
	SameContent(other T) bool
	// Inherit returns a copy carrying prev's id, version and creation audit.
	Inherit(prev T) T
	// Touch stamps audit fields for a write by actor.
	Touch(actor int64, now time.Time) T
	// ItemID returns the store-assigned id, 0 before the first save.
	ItemID() int64
}

// Store is the identity store for one item type.
// SaveAll returns the saved items in input order with ids assigned.
type Store[T any] interface {
	FindByOwner(ctx context.Context, ownerID int64) ([]T, error)
	SaveAll(ctx context.Context, items []T) ([]T, error)
	DeleteAll(ctx context.Context, ids []int64) error
}

// OwnerRemover deletes the owning collection itself.
type OwnerRemover interface {
	DeleteOwner(ctx context.Context, ownerID int64) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}
