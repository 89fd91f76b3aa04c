// Package resource implements the course resource store using PostgreSQL.
package resource

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	postgres "github.com/eduveda/course-backend/internal/adapter/postgres"
	"github.com/eduveda/course-backend/internal/domain"
)

const table = "resources"

var columns = []string{
	"id", "course_id", "title", "duration", "youtube_id",
	"created_by", "updated_by", "created_at", "updated_at", "version",
}

type row struct {
	ID        int64     `db:"id"`
	CourseID  int64     `db:"course_id"`
	Title     string    `db:"title"`
	Duration  string    `db:"duration"`
	YoutubeID string    `db:"youtube_id"`
	CreatedBy int64     `db:"created_by"`
	UpdatedBy int64     `db:"updated_by"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
	Version   int       `db:"version"`
}

func (r row) toDomain() domain.Resource {
	return domain.Resource{
		ID:        r.ID,
		CourseID:  r.CourseID,
		Title:     r.Title,
		Duration:  r.Duration,
		YoutubeID: r.YoutubeID,
		CreatedBy: r.CreatedBy,
		UpdatedBy: r.UpdatedBy,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
		Version:   r.Version,
	}
}

// Repo provides resource persistence backed by PostgreSQL.
// All methods join the transaction carried in ctx, if any.
type Repo struct {
	db postgres.Querier
}

// New creates a new resource repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// FindByOwner returns the course's resources ordered by id.
// Returns an empty slice when the course has none.
func (r *Repo) FindByOwner(ctx context.Context, courseID int64) ([]domain.Resource, error) {
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

	out := make([]domain.Resource, len(rows))
	for i, rw := range rows {
		out[i] = rw.toDomain()
	}
	return out, nil
}

// SaveAll inserts resources without an id and updates the rest,
// bumping their version. Results keep input order.
func (r *Repo) SaveAll(ctx context.Context, items []domain.Resource) ([]domain.Resource, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)
	out := make([]domain.Resource, 0, len(items))

	for _, it := range items {
		var (
			sql  string
			args []any
			err  error
		)
		if it.ID == 0 {
			sql, args, err = postgres.Builder().
				Insert(table).
				Columns("course_id", "title", "duration", "youtube_id", "created_by", "updated_by", "created_at", "updated_at").
				Values(it.CourseID, it.Title, it.Duration, it.YoutubeID, it.CreatedBy, it.UpdatedBy, it.CreatedAt, it.UpdatedAt).
				Suffix("RETURNING " + strings.Join(columns, ", ")).
				ToSql()
		} else {
			sql, args, err = postgres.Builder().
				Update(table).
				Set("title", it.Title).
				Set("duration", it.Duration).
				Set("youtube_id", it.YoutubeID).
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
			return nil, postgres.MapError(err, "resource", it.ID)
		}
		out = append(out, saved.toDomain())
	}

	return out, nil
}

// DeleteAll removes resources by id. Missing ids are ignored.
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
		return fmt.Errorf("delete resources: %w", err)
	}
	return nil
}
