package reconcile

import (
	"fmt"

	"github.com/eduveda/course-backend/internal/domain"
)

// DiffResult partitions the keys of existing and desired into four
// disjoint classes. Created, Updated and Unchanged follow desired order;
// Deleted follows existing order.
type DiffResult[T Item[T]] struct {
	Created   []T
	Updated   []T // already carry the persisted id
	Deleted   []T
	Unchanged []string
}

// Changes returns the natural keys of every class.
func (d *DiffResult[T]) Changes() domain.ChangeSet {
	return domain.ChangeSet{
		Created:   keysOf(d.Created),
		Updated:   keysOf(d.Updated),
		Deleted:   keysOf(d.Deleted),
		Unchanged: append([]string(nil), d.Unchanged...),
	}
}

// Remaining is the number of items the owner holds once the diff is applied.
func (d *DiffResult[T]) Remaining() int {
	return len(d.Created) + len(d.Updated) + len(d.Unchanged)
}

// Writes is the number of store mutations needed to apply the diff.
func (d *DiffResult[T]) Writes() int {
	return len(d.Created) + len(d.Updated) + len(d.Deleted)
}

// Diff computes the changes that turn existing into desired, keyed on
// NaturalKey. A duplicate key in desired fails with a validation error
// wrapping domain.ErrDuplicateKey; the engine never collapses duplicates.
func Diff[T Item[T]](existing, desired []T) (*DiffResult[T], error) {
	current := make(map[string]T, len(existing))
	for _, item := range existing {
		key := item.NaturalKey()
		if _, dup := current[key]; dup {
			return nil, fmt.Errorf("existing items: %w: %q", domain.ErrDuplicateKey, key)
		}
		current[key] = item
	}

	res := &DiffResult[T]{}
	wanted := make(map[string]struct{}, len(desired))
	for _, item := range desired {
		key := item.NaturalKey()
		if _, dup := wanted[key]; dup {
			return nil, domain.DuplicateKeyError("items", key)
		}
		wanted[key] = struct{}{}

		prev, ok := current[key]
		switch {
		case !ok:
			res.Created = append(res.Created, item)
		case prev.SameContent(item):
			res.Unchanged = append(res.Unchanged, key)
		default:
			res.Updated = append(res.Updated, item.Inherit(prev))
		}
	}

	for _, item := range existing {
		if _, ok := wanted[item.NaturalKey()]; !ok {
			res.Deleted = append(res.Deleted, item)
		}
	}

	return res, nil
}

func keysOf[T Item[T]](items []T) []string {
	if len(items) == 0 {
		return nil
	}
	keys := make([]string, len(items))
	for i, item := range items {
		keys[i] = item.NaturalKey()
	}
	return keys
}
