// Package assessment implements the course assessment store using PostgreSQL.
// Questions and correct answers are kept in JSONB columns.
package assessment

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	postgres "github.com/eduveda/course-backend/internal/adapter/postgres"
	"github.com/eduveda/course-backend/internal/domain"
)

const table = "assessments"

var columns = []string{
	"id", "course_id", "type", "title", "description", "questions",
	"created_by", "updated_by", "created_at", "updated_at", "version",
}

type row struct {
	ID          int64     `db:"id"`
	CourseID    int64     `db:"course_id"`
	Type        string    `db:"type"`
	Title       string    `db:"title"`
	Description string    `db:"description"`
	Questions   []byte    `db:"questions"`
	CreatedBy   int64     `db:"created_by"`
	UpdatedBy   int64     `db:"updated_by"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
	Version     int       `db:"version"`
}

func (r row) toDomain() (domain.Assessment, error) {
	a := domain.Assessment{
		ID:          r.ID,
		CourseID:    r.CourseID,
		Type:        r.Type,
		Title:       r.Title,
		Description: r.Description,
		CreatedBy:   r.CreatedBy,
		UpdatedBy:   r.UpdatedBy,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
		Version:     r.Version,
	}
	if err := json.Unmarshal(r.Questions, &a.Questions); err != nil {
		return domain.Assessment{}, fmt.Errorf("decode questions of assessment %d: %w", r.ID, err)
	}
	return a, nil
}

// Repo provides assessment persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new assessment repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// FindByOwner returns the course's assessments ordered by id.
func (r *Repo) FindByOwner(ctx context.Context, courseID int64) ([]domain.Assessment, error) {
	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"course_id": courseID}).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, postgres.MapError(err, "course", courseID)
	}

	out := make([]domain.Assessment, len(rows))
	for i, rw := range rows {
		if out[i], err = rw.toDomain(); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// SaveAll inserts assessments without an id and updates the rest.
// Correct answers and max score are derived from the questions on write.
func (r *Repo) SaveAll(ctx context.Context, items []domain.Assessment) ([]domain.Assessment, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)
	out := make([]domain.Assessment, 0, len(items))

	for _, it := range items {
		questions, err := json.Marshal(it.Questions)
		if err != nil {
			return nil, fmt.Errorf("encode questions: %w", err)
		}
		answers, err := json.Marshal(it.CorrectAnswers())
		if err != nil {
			return nil, fmt.Errorf("encode answers: %w", err)
		}

		var (
			sql  string
			args []any
		)
		if it.ID == 0 {
			sql, args, err = postgres.Builder().
				Insert(table).
				Columns("course_id", "type", "title", "description", "questions", "correct_answers", "max_score",
					"created_by", "updated_by", "created_at", "updated_at").
				Values(it.CourseID, it.Type, it.Title, it.Description, questions, answers, it.MaxScore(),
					it.CreatedBy, it.UpdatedBy, it.CreatedAt, it.UpdatedAt).
				Suffix("RETURNING " + strings.Join(columns, ", ")).
				ToSql()
		} else {
			sql, args, err = postgres.Builder().
				Update(table).
				Set("type", it.Type).
				Set("title", it.Title).
				Set("description", it.Description).
				Set("questions", questions).
				Set("correct_answers", answers).
				Set("max_score", it.MaxScore()).
				Set("updated_by", it.UpdatedBy).
				Set("updated_at", it.UpdatedAt).
				Set("version", squirrel.Expr("version + 1")).
				Where(squirrel.Eq{"id": it.ID, "course_id": it.CourseID}).
				Suffix("RETURNING " + strings.Join(columns, ", ")).
				ToSql()
		}
		if err != nil {
			return nil, fmt.Errorf("build save: %w", err)
		}

		var saved row
		if err := pgxscan.Get(ctx, q, &saved, sql, args...); err != nil {
			return nil, postgres.MapError(err, "assessment", it.ID)
		}
		a, err := saved.toDomain()
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}

	return out, nil
}

// DeleteAll removes assessments by id. Missing ids are ignored.
func (r *Repo) DeleteAll(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}

	sql, args, err := postgres.Builder().
		Delete(table).
		Where(squirrel.Eq{"id": ids}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("delete assessments: %w", err)
	}
	return nil
}
