package reconcile

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/eduveda/course-backend/internal/domain"
	"github.com/eduveda/course-backend/pkg/ctxutil"
)

// OutcomeStatus tells the caller which path a reconciliation took.
type OutcomeStatus string

const (
	OutcomeApplied      OutcomeStatus = "applied"
	OutcomeOwnerRemoved OutcomeStatus = "owner_removed"
)

// Outcome is the committed result of one reconciliation. Diff is set on
// both paths; on OutcomeOwnerRemoved it only serves logging.
type Outcome[T Item[T]] struct {
	Status OutcomeStatus
	Diff   *DiffResult[T]
}

// Reconciler applies desired states for one item kind.
type Reconciler[T Item[T]] struct {
	kind   string
	store  Store[T]
	tx     txManager
	policy OwnerPolicy
	log    *slog.Logger
	now    func() time.Time
}

// New creates a Reconciler. kind names the collection in field paths and
// logs, e.g. "resources". A nil policy means KeepOwner.
func New[T Item[T]](log *slog.Logger, kind string, store Store[T], tx txManager, policy OwnerPolicy) *Reconciler[T] {
	if policy == nil {
		policy = KeepOwner{}
	}
	return &Reconciler[T]{
		kind:   kind,
		store:  store,
		tx:     tx,
		policy: policy,
		log:    log.With("component", "reconciler", "kind", kind),
		now:    time.Now,
	}
}

// Reconcile makes the owner's persisted collection equal to desired.
// Validation runs before any store access. All writes share one
// transaction; a failure rolls back every write of the call.
func (r *Reconciler[T]) Reconcile(ctx context.Context, ownerID int64, desired []T) (*Outcome[T], error) {
	actorID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if ownerID <= 0 {
		return nil, domain.NewValidationError("owner_id", "must be positive")
	}
	if err := r.validate(desired); err != nil {
		return nil, err
	}

	var out *Outcome[T]
	err := r.tx.RunInTx(ctx, func(txCtx context.Context) error {
		existing, err := r.store.FindByOwner(txCtx, ownerID)
		if err != nil {
			return fmt.Errorf("find %s: %w", r.kind, err)
		}

		diff, err := Diff(existing, desired)
		if err != nil {
			return err
		}

		if len(diff.Deleted) > 0 {
			ids := make([]int64, len(diff.Deleted))
			for i, item := range diff.Deleted {
				ids[i] = item.ItemID()
			}
			if err := r.store.DeleteAll(txCtx, ids); err != nil {
				return fmt.Errorf("delete %s: %w", r.kind, err)
			}
		}

		if n := len(diff.Created) + len(diff.Updated); n > 0 {
			now := r.now()
			writes := make([]T, 0, n)
			for _, item := range diff.Created {
				writes = append(writes, item.Touch(actorID, now))
			}
			for _, item := range diff.Updated {
				writes = append(writes, item.Touch(actorID, now))
			}

			saved, err := r.store.SaveAll(txCtx, writes)
			if err != nil {
				return fmt.Errorf("save %s: %w", r.kind, err)
			}
			if len(saved) != n {
				return fmt.Errorf("save %s: store returned %d items, want %d", r.kind, len(saved), n)
			}
			diff.Created = saved[:len(diff.Created)]
			diff.Updated = saved[len(diff.Created):]
		}

		out = &Outcome[T]{Status: OutcomeApplied, Diff: diff}
		if diff.Remaining() > 0 {
			return nil
		}

		removed, err := r.policy.OnEmpty(txCtx, ownerID)
		if err != nil {
			return err
		}
		if removed {
			out.Status = OutcomeOwnerRemoved
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	r.log.InfoContext(ctx, "collection reconciled",
		slog.Int64("owner_id", ownerID),
		slog.Int64("actor_id", actorID),
		slog.String("status", string(out.Status)),
		slog.Int("created", len(out.Diff.Created)),
		slog.Int("updated", len(out.Diff.Updated)),
		slog.Int("deleted", len(out.Diff.Deleted)),
		slog.Int("unchanged", len(out.Diff.Unchanged)),
	)

	return out, nil
}

// validate collects every item error and duplicate key into one
// ValidationError with indexed field paths.
func (r *Reconciler[T]) validate(desired []T) error {
	var errs []domain.FieldError
	seen := make(map[string]int, len(desired))

	for i, item := range desired {
		prefix := fmt.Sprintf("%s[%d]", r.kind, i)
		key := item.NaturalKey()

		if err := item.Validate(); err != nil {
			var ve *domain.ValidationError
			if errors.As(err, &ve) {
				errs = append(errs, domain.PrefixFields(prefix, ve.Errors)...)
			} else {
				errs = append(errs, domain.FieldError{Field: prefix, Message: err.Error(), Cause: domain.ErrInvalidItem})
			}
		} else if strings.TrimSpace(key) == "" {
			errs = append(errs, domain.FieldError{Field: prefix + ".key", Message: "required", Cause: domain.ErrInvalidItem})
		}

		if first, dup := seen[key]; dup {
			errs = append(errs, domain.FieldError{
				Field:   prefix + ".title",
				Message: fmt.Sprintf("duplicate title %q (also at %s[%d])", key, r.kind, first),
				Cause:   domain.ErrDuplicateKey,
			})
			continue
		}
		seen[key] = i
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
