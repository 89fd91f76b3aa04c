// Package course implements the course owner store using PostgreSQL.
// Deleting a course cascades to its resources and assessments.
package course

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	postgres "github.com/eduveda/course-backend/internal/adapter/postgres"
	"github.com/eduveda/course-backend/internal/domain"
)

// Repo provides course persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new course repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Exists reports whether the course is present.
func (r *Repo) Exists(ctx context.Context, courseID int64) (bool, error) {
	sql, args, err := postgres.Builder().
		Select("1").
		Prefix("SELECT EXISTS (").
		From("courses").
		Where(squirrel.Eq{"id": courseID}).
		Suffix(")").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build exists: %w", err)
	}

	var exists bool
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...).Scan(&exists); err != nil {
		return false, postgres.MapError(err, "course", courseID)
	}
	return exists, nil
}

// DeleteOwner removes the course. Returns domain.ErrNotFound if it does not exist.
func (r *Repo) DeleteOwner(ctx context.Context, courseID int64) error {
	sql, args, err := postgres.Builder().
		Delete("courses").
		Where(squirrel.Eq{"id": courseID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "course", courseID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("course %d: %w", courseID, domain.ErrNotFound)
	}
	return nil
}
