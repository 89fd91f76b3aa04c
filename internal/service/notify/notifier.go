// Package notify announces committed reconciliations to every stakeholder
// of the owner. Delivery is best-effort: failures are logged and counted,
// never returned.
package notify

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/eduveda/course-backend/internal/domain"
)

type stakeholderResolver interface {
	Resolve(ctx context.Context, ownerID int64) ([]int64, error)
}

type sender interface {
	Send(ctx context.Context, n domain.Notification) error
}

const (
	defaultConcurrency     = 8
	defaultDeliveryTimeout = 5 * time.Second
)

// Config bounds the fan-out.
type Config struct {
	Concurrency     int
	DeliveryTimeout time.Duration
}

// Notifier fans one message per (stakeholder, change class) out to the
// notification transport.
type Notifier struct {
	resolver stakeholderResolver
	sender   sender
	catalog  Catalog
	cfg      Config
	log      *slog.Logger
}

// NewNotifier creates a Notifier. Zero config values fall back to defaults.
func NewNotifier(
	log *slog.Logger,
	resolver stakeholderResolver,
	sender sender,
	catalog Catalog,
	cfg Config,
) *Notifier {
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = defaultConcurrency
	}
	if cfg.DeliveryTimeout <= 0 {
		cfg.DeliveryTimeout = defaultDeliveryTimeout
	}
	return &Notifier{
		resolver: resolver,
		sender:   sender,
		catalog:  catalog,
		cfg:      cfg,
		log:      log.With("service", "notify"),
	}
}

// message is one aggregated announcement for a change class.
type message struct {
	class    domain.ChangeClass
	template Template
	text     string
}

// Announce sends one message per non-empty item change class to every
// stakeholder of ownerID. Request cancellation is ignored; each delivery
// has its own timeout.
func (n *Notifier) Announce(ctx context.Context, ownerID int64, changes domain.ChangeSet, authorID int64) domain.NotifyReport {
	var msgs []message
	for _, class := range domain.ItemChangeClasses {
		keys := changes.Keys(class)
		if len(keys) == 0 {
			continue
		}
		tpl, ok := n.catalog[class]
		if !ok {
			continue
		}
		msgs = append(msgs, message{class: class, template: tpl, text: tpl.Render(keys)})
	}
	return n.fanOut(ctx, ownerID, authorID, msgs)
}

// AnnounceOwnerRemoved sends the owner_removed message to every stakeholder.
// Stakeholders must be resolvable after the owner is gone, so callers
// usually invoke it right after the removal commits.
func (n *Notifier) AnnounceOwnerRemoved(ctx context.Context, ownerID int64, authorID int64) domain.NotifyReport {
	tpl, ok := n.catalog[domain.ChangeOwnerRemoved]
	if !ok {
		return domain.NotifyReport{Classes: map[domain.ChangeClass]domain.DeliveryStats{}}
	}
	return n.fanOut(ctx, ownerID, authorID, []message{{
		class:    domain.ChangeOwnerRemoved,
		template: tpl,
		text:     tpl.Render(nil),
	}})
}

func (n *Notifier) fanOut(ctx context.Context, ownerID, authorID int64, msgs []message) domain.NotifyReport {
	report := domain.NotifyReport{Classes: map[domain.ChangeClass]domain.DeliveryStats{}}
	if len(msgs) == 0 {
		return report
	}

	ctx = context.WithoutCancel(ctx)

	stakeholders, err := n.resolver.Resolve(ctx, ownerID)
	if err != nil {
		n.log.WarnContext(ctx, "stakeholders unresolved, skipping notifications",
			slog.Int64("owner_id", ownerID),
			slog.String("error", err.Error()),
		)
		report.ResolveErr = err
		return report
	}
	report.Stakeholders = len(stakeholders)

	var mu sync.Mutex
	record := func(class domain.ChangeClass, ok bool) {
		mu.Lock()
		defer mu.Unlock()
		s := report.Classes[class]
		if ok {
			s.Succeeded++
		} else {
			s.Failed++
		}
		report.Classes[class] = s
	}

	g := new(errgroup.Group)
	g.SetLimit(n.cfg.Concurrency)

	for _, m := range msgs {
		mu.Lock()
		s := report.Classes[m.class]
		s.Attempted += len(stakeholders)
		report.Classes[m.class] = s
		mu.Unlock()

		for _, userID := range stakeholders {
			note := domain.Notification{
				UserID:            userID,
				RelatedEntityID:   ownerID,
				RelatedEntityType: relatedEntityCourse,
				Title:             m.template.Title,
				Message:           m.text,
				Type:              m.template.Type,
				CreatedBy:         authorID,
			}
			g.Go(func() error {
				err := n.deliver(ctx, note)
				if err != nil {
					n.log.WarnContext(ctx, "notification delivery failed",
						slog.Int64("owner_id", ownerID),
						slog.String("change_class", m.class.String()),
						slog.Int64("stakeholder_id", userID),
						slog.String("error", err.Error()),
					)
				}
				record(m.class, err == nil)
				return nil
			})
		}
	}
	_ = g.Wait()

	total := report.Totals()
	n.log.InfoContext(ctx, "notifications dispatched",
		slog.Int64("owner_id", ownerID),
		slog.Int("stakeholders", report.Stakeholders),
		slog.Int("attempted", total.Attempted),
		slog.Int("failed", total.Failed),
	)

	return report
}

// deliver runs a single send under its own timeout and turns a panic in
// the transport into an error.
func (n *Notifier) deliver(ctx context.Context, note domain.Notification) (err error) {
	ctx, cancel := context.WithTimeout(ctx, n.cfg.DeliveryTimeout)
	defer cancel()

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("notification transport panic: %v", r)
		}
	}()

	return n.sender.Send(ctx, note)
}
