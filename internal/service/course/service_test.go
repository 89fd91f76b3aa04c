package course

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/eduveda/course-backend/internal/domain"
	"github.com/eduveda/course-backend/internal/reconcile"
	"github.com/eduveda/course-backend/internal/service/notify"
	"github.com/eduveda/course-backend/pkg/ctxutil"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func existingCourse() *courseRepoMock {
	return &courseRepoMock{
		ExistsFunc: func(ctx context.Context, courseID int64) (bool, error) { return true, nil },
	}
}

func quietAnnouncer() *announcerMock {
	return &announcerMock{
		AnnounceFunc: func(ctx context.Context, ownerID int64, changes domain.ChangeSet, authorID int64) domain.NotifyReport {
			return domain.NotifyReport{Stakeholders: 2}
		},
		AnnounceOwnerRemovedFunc: func(ctx context.Context, ownerID int64, authorID int64) domain.NotifyReport {
			return domain.NotifyReport{Stakeholders: 2}
		},
	}
}

func appliedOutcome(created ...string) *reconcile.Outcome[domain.Resource] {
	d := &reconcile.DiffResult[domain.Resource]{}
	for _, title := range created {
		d.Created = append(d.Created, domain.Resource{Title: title})
	}
	return &reconcile.Outcome[domain.Resource]{Status: reconcile.OutcomeApplied, Diff: d}
}

func authCtx() context.Context {
	return ctxutil.WithUserID(context.Background(), 7)
}

// ---------------------------------------------------------------------------
// ReplaceResources
// ---------------------------------------------------------------------------

func TestReplaceResources_MapsInputAndAnnounces(t *testing.T) {
	t.Parallel()

	rec := &resourceReconcilerMock{
		ReconcileFunc: func(ctx context.Context, ownerID int64, desired []domain.Resource) (*reconcile.Outcome[domain.Resource], error) {
			return appliedOutcome("Lab"), nil
		},
	}
	ann := quietAnnouncer()
	svc := NewService(newTestLogger(), rec, &resourceRepoMock{}, existingCourse(), ann, Config{})

	result, err := svc.ReplaceResources(authCtx(), ReplaceResourcesInput{
		CourseID: 42,
		Resources: []ResourceInput{
			{Title: "  Lab ", Duration: "5:00", YoutubeLink: "https://youtu.be/abc123"},
			{Title: "Bad", YoutubeLink: "https://vimeo.com/1"},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	calls := rec.ReconcileCalls()
	if len(calls) != 1 {
		t.Fatalf("Reconcile calls: got %d, want 1", len(calls))
	}
	got := calls[0].Desired
	if got[0].Title != "Lab" || got[0].YoutubeID != "abc123" || got[0].CourseID != 42 {
		t.Errorf("first resource mapped to %+v", got[0])
	}
	if got[1].YoutubeID != "" {
		t.Errorf("unrecognised link must map to empty id, got %q", got[1].YoutubeID)
	}

	ac := ann.AnnounceCalls()
	if len(ac) != 1 {
		t.Fatalf("Announce calls: got %d, want 1", len(ac))
	}
	if ac[0].OwnerID != 42 || ac[0].AuthorID != 7 {
		t.Errorf("Announce(owner=%d, author=%d)", ac[0].OwnerID, ac[0].AuthorID)
	}
	if len(ac[0].Changes.Created) != 1 || ac[0].Changes.Created[0] != "Lab" {
		t.Errorf("Announce changes: %+v", ac[0].Changes)
	}
	if result.Report.Stakeholders != 2 {
		t.Errorf("report not returned: %+v", result.Report)
	}
}

func TestReplaceResources_AnnouncesWithDetachedContext(t *testing.T) {
	t.Parallel()

	rec := &resourceReconcilerMock{
		ReconcileFunc: func(ctx context.Context, ownerID int64, desired []domain.Resource) (*reconcile.Outcome[domain.Resource], error) {
			return appliedOutcome("Lab"), nil
		},
	}
	ann := quietAnnouncer()
	svc := NewService(newTestLogger(), rec, &resourceRepoMock{}, existingCourse(), ann, Config{})

	ctx, cancel := context.WithCancel(authCtx())
	defer cancel()
	if _, err := svc.ReplaceResources(ctx, ReplaceResourcesInput{CourseID: 1}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cancel()

	if err := ann.AnnounceCalls()[0].Ctx.Err(); err != nil {
		t.Errorf("announce context follows request cancellation: %v", err)
	}
}

func TestReplaceResources_ReconcileErrorSkipsNotify(t *testing.T) {
	t.Parallel()

	rec := &resourceReconcilerMock{
		ReconcileFunc: func(ctx context.Context, ownerID int64, desired []domain.Resource) (*reconcile.Outcome[domain.Resource], error) {
			return nil, domain.DuplicateKeyError("resources[1].title", "Lab")
		},
	}
	ann := quietAnnouncer()
	svc := NewService(newTestLogger(), rec, &resourceRepoMock{}, existingCourse(), ann, Config{})

	_, err := svc.ReplaceResources(authCtx(), ReplaceResourcesInput{CourseID: 1})
	if !errors.Is(err, domain.ErrDuplicateKey) {
		t.Fatalf("want ErrDuplicateKey, got %v", err)
	}
	if len(ann.AnnounceCalls()) != 0 {
		t.Error("no notification may follow a failed reconcile")
	}
}

func TestReplaceResources_OwnerRemoved(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		announce      bool
		wantOwnerMsgs int
	}{
		{"silent", false, 0},
		{"announced", true, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := &resourceReconcilerMock{
				ReconcileFunc: func(ctx context.Context, ownerID int64, desired []domain.Resource) (*reconcile.Outcome[domain.Resource], error) {
					return &reconcile.Outcome[domain.Resource]{
						Status: reconcile.OutcomeOwnerRemoved,
						Diff:   &reconcile.DiffResult[domain.Resource]{Deleted: []domain.Resource{{Title: "Intro"}}},
					}, nil
				},
			}
			ann := quietAnnouncer()
			svc := NewService(newTestLogger(), rec, &resourceRepoMock{}, existingCourse(), ann, Config{AnnounceOwnerRemoval: tt.announce})

			result, err := svc.ReplaceResources(authCtx(), ReplaceResourcesInput{CourseID: 5})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if result.Outcome.Status != reconcile.OutcomeOwnerRemoved {
				t.Errorf("status = %q", result.Outcome.Status)
			}
			if n := len(ann.AnnounceCalls()); n != 0 {
				t.Errorf("item announcements on owner removal: %d", n)
			}
			if n := len(ann.AnnounceOwnerRemovedCalls()); n != tt.wantOwnerMsgs {
				t.Errorf("owner removal announcements: got %d, want %d", n, tt.wantOwnerMsgs)
			}
		})
	}
}

func TestReplaceResources_Unauthorized(t *testing.T) {
	t.Parallel()

	svc := NewService(newTestLogger(), &resourceReconcilerMock{}, &resourceRepoMock{}, &courseRepoMock{}, &announcerMock{}, Config{})

	_, err := svc.ReplaceResources(context.Background(), ReplaceResourcesInput{CourseID: 1})
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("want ErrUnauthorized, got %v", err)
	}
}

func TestReplaceResources_CourseNotFound(t *testing.T) {
	t.Parallel()

	courses := &courseRepoMock{
		ExistsFunc: func(ctx context.Context, courseID int64) (bool, error) { return false, nil },
	}
	rec := &resourceReconcilerMock{}
	svc := NewService(newTestLogger(), rec, &resourceRepoMock{}, courses, &announcerMock{}, Config{})

	_, err := svc.ReplaceResources(authCtx(), ReplaceResourcesInput{CourseID: 99})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
	if len(rec.ReconcileCalls()) != 0 {
		t.Error("reconcile must not run for a missing course")
	}
}

func TestReplaceResources_InvalidCourseID(t *testing.T) {
	t.Parallel()

	svc := NewService(newTestLogger(), &resourceReconcilerMock{}, &resourceRepoMock{}, &courseRepoMock{}, &announcerMock{}, Config{})

	_, err := svc.ReplaceResources(authCtx(), ReplaceResourcesInput{CourseID: 0})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("want ErrValidation, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// ListResources
// ---------------------------------------------------------------------------

func TestListResources(t *testing.T) {
	t.Parallel()

	repo := &resourceRepoMock{
		FindByOwnerFunc: func(ctx context.Context, courseID int64) ([]domain.Resource, error) {
			return []domain.Resource{{ID: 1, CourseID: courseID, Title: "Intro"}}, nil
		},
	}
	svc := NewService(newTestLogger(), &resourceReconcilerMock{}, repo, existingCourse(), &announcerMock{}, Config{})

	got, err := svc.ListResources(context.Background(), 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].Title != "Intro" {
		t.Errorf("got %+v", got)
	}
}

func TestListResources_NotFound(t *testing.T) {
	t.Parallel()

	courses := &courseRepoMock{
		ExistsFunc: func(ctx context.Context, courseID int64) (bool, error) { return false, nil },
	}
	svc := NewService(newTestLogger(), &resourceReconcilerMock{}, &resourceRepoMock{}, courses, &announcerMock{}, Config{})

	_, err := svc.ListResources(context.Background(), 3)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// Full flow with real reconciler and notifier
// ---------------------------------------------------------------------------

type memResources struct {
	mu      sync.Mutex
	rows    []domain.Resource
	nextID  int64
	removed bool
}

func (m *memResources) FindByOwner(_ context.Context, courseID int64) ([]domain.Resource, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.Resource
	for _, r := range m.rows {
		if r.CourseID == courseID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *memResources) SaveAll(_ context.Context, items []domain.Resource) ([]domain.Resource, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]domain.Resource, 0, len(items))
	for _, it := range items {
		if it.ID == 0 {
			m.nextID++
			it.ID = m.nextID
			it.Version = 1
			m.rows = append(m.rows, it)
		} else {
			it.Version++
			for i := range m.rows {
				if m.rows[i].ID == it.ID {
					m.rows[i] = it
				}
			}
		}
		out = append(out, it)
	}
	return out, nil
}

func (m *memResources) DeleteAll(_ context.Context, ids []int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	kept := m.rows[:0]
	for _, r := range m.rows {
		drop := false
		for _, id := range ids {
			drop = drop || r.ID == id
		}
		if !drop {
			kept = append(kept, r)
		}
	}
	m.rows = kept
	return nil
}

func (m *memResources) DeleteOwner(context.Context, int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.removed = true
	return nil
}

type inlineTx struct{}

func (inlineTx) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type recordingSender struct {
	mu   sync.Mutex
	sent []domain.Notification
}

func (s *recordingSender) Send(_ context.Context, n domain.Notification) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sent = append(s.sent, n)
	return nil
}

type fixedStakeholders []int64

func (f fixedStakeholders) Resolve(context.Context, int64) ([]int64, error) { return f, nil }

func TestReplaceResources_FullFlow(t *testing.T) {
	t.Parallel()

	store := &memResources{
		rows:   []domain.Resource{{ID: 1, CourseID: 42, Title: "Intro", Duration: "v1", YoutubeID: "intro", Version: 1}},
		nextID: 1,
	}
	sender := &recordingSender{}
	log := newTestLogger()

	rec := reconcile.New[domain.Resource](log, "resources", store, inlineTx{}, reconcile.RemoveEmptyOwner{Owners: store})
	n := notify.NewNotifier(log, fixedStakeholders{100, 101, 102}, sender, notify.ResourceCatalog, notify.Config{Concurrency: 2})
	svc := NewService(log, rec, store, existingCourse(), n, Config{})

	result, err := svc.ReplaceResources(authCtx(), ReplaceResourcesInput{
		CourseID: 42,
		Resources: []ResourceInput{
			{Title: "Intro", Duration: "v1", YoutubeLink: "https://www.youtube.com/watch?v=intro"},
			{Title: "Lab", Duration: "v1", YoutubeLink: "https://youtu.be/lab"},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ch := result.Outcome.Diff.Changes()
	if len(ch.Created) != 1 || ch.Created[0] != "Lab" || len(ch.Unchanged) != 1 || len(ch.Updated)+len(ch.Deleted) != 0 {
		t.Fatalf("unexpected changes: %+v", ch)
	}
	if len(sender.sent) != 3 {
		t.Fatalf("sent %d notifications, want 3", len(sender.sent))
	}
	for _, note := range sender.sent {
		if note.Message != "New resources have been added to the course: Lab." {
			t.Errorf("message = %q", note.Message)
		}
	}

	// Empty desired state removes the course and sends no item notifications.
	sender.sent = nil
	result, err = svc.ReplaceResources(authCtx(), ReplaceResourcesInput{CourseID: 42})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Outcome.Status != reconcile.OutcomeOwnerRemoved || !store.removed {
		t.Fatalf("course not removed: status=%q removed=%v", result.Outcome.Status, store.removed)
	}
	if len(sender.sent) != 0 {
		t.Errorf("sent %d item notifications on owner removal", len(sender.sent))
	}
}
