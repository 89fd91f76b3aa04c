package assessment

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eduveda/course-backend/internal/domain"
	"github.com/eduveda/course-backend/internal/reconcile"
	"github.com/eduveda/course-backend/pkg/ctxutil"
)

type fixture struct {
	rec      *assessmentReconcilerMock
	repo     *assessmentRepoMock
	courses  *courseRepoMock
	notifier *announcerMock
	svc      *Service
}

func newFixture(courseExists bool) *fixture {
	f := &fixture{
		rec: &assessmentReconcilerMock{
			ReconcileFunc: func(ctx context.Context, ownerID int64, desired []domain.Assessment) (*reconcile.Outcome[domain.Assessment], error) {
				return &reconcile.Outcome[domain.Assessment]{
					Status: reconcile.OutcomeApplied,
					Diff:   &reconcile.DiffResult[domain.Assessment]{Updated: desired},
				}, nil
			},
		},
		repo: &assessmentRepoMock{},
		courses: &courseRepoMock{
			ExistsFunc: func(context.Context, int64) (bool, error) { return courseExists, nil },
		},
		notifier: &announcerMock{
			AnnounceFunc: func(context.Context, int64, domain.ChangeSet, int64) domain.NotifyReport {
				return domain.NotifyReport{Stakeholders: 1}
			},
		},
	}
	f.svc = NewService(slog.New(slog.NewTextHandler(io.Discard, nil)), f.rec, f.repo, f.courses, f.notifier)
	return f
}

func authCtx() context.Context {
	return ctxutil.WithUserID(context.Background(), 3)
}

func TestReplaceAssessments_MapsAndAnnounces(t *testing.T) {
	t.Parallel()

	f := newFixture(true)
	result, err := f.svc.ReplaceAssessments(authCtx(), ReplaceAssessmentsInput{
		CourseID: 9,
		Assessments: []AssessmentInput{{
			Title:     " Quiz 1 ",
			Questions: []QuestionInput{{Text: " 2+2? ", Options: []string{" 3", "4 "}, Answer: "4"}},
		}},
	})
	require.NoError(t, err)

	calls := f.rec.ReconcileCalls()
	require.Len(t, calls, 1)
	got := calls[0][0]
	assert.Equal(t, "Quiz 1", got.Title)
	assert.Equal(t, int64(9), got.CourseID)
	assert.Equal(t, domain.Question{Text: "2+2?", Options: []string{"3", "4"}, Answer: "4"}, got.Questions[0])

	ann := f.notifier.AnnounceCalls()
	require.Len(t, ann, 1)
	assert.Equal(t, []string{"Quiz 1"}, ann[0].Updated)
	assert.Equal(t, 1, result.Report.Stakeholders)
}

func TestReplaceAssessments_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		ctx     context.Context
		exists  bool
		input   ReplaceAssessmentsInput
		wantErr error
	}{
		{"no actor", context.Background(), true, ReplaceAssessmentsInput{CourseID: 1}, domain.ErrUnauthorized},
		{"no course id", authCtx(), true, ReplaceAssessmentsInput{}, domain.ErrValidation},
		{"unknown course", authCtx(), false, ReplaceAssessmentsInput{CourseID: 1}, domain.ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f := newFixture(tt.exists)
			_, err := f.svc.ReplaceAssessments(tt.ctx, tt.input)
			require.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, f.rec.ReconcileCalls())
			assert.Empty(t, f.notifier.AnnounceCalls())
		})
	}
}

func TestReplaceAssessments_ReconcileFailureSkipsNotify(t *testing.T) {
	t.Parallel()

	f := newFixture(true)
	boom := errors.New("boom")
	f.rec.ReconcileFunc = func(context.Context, int64, []domain.Assessment) (*reconcile.Outcome[domain.Assessment], error) {
		return nil, boom
	}

	_, err := f.svc.ReplaceAssessments(authCtx(), ReplaceAssessmentsInput{CourseID: 1})
	require.ErrorIs(t, err, boom)
	assert.Empty(t, f.notifier.AnnounceCalls())
}

func TestListAssessments(t *testing.T) {
	t.Parallel()

	f := newFixture(true)
	f.repo.FindByOwnerFunc = func(_ context.Context, courseID int64) ([]domain.Assessment, error) {
		return []domain.Assessment{{ID: 1, CourseID: courseID, Title: "Quiz"}}, nil
	}

	got, err := f.svc.ListAssessments(context.Background(), 4)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Quiz", got[0].Title)

	_, err = newFixture(false).svc.ListAssessments(context.Background(), 4)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
