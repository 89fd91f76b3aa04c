package testhelper

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
)

// SeedCourse inserts a course owned by createdBy and returns its id.
func SeedCourse(t *testing.T, pool *pgxpool.Pool, title string, createdBy int64) int64 {
	t.Helper()

	var id int64
	err := pool.QueryRow(context.Background(),
		`INSERT INTO courses (title, created_by, updated_by) VALUES ($1, $2, $2) RETURNING id`,
		title, createdBy,
	).Scan(&id)
	if err != nil {
		t.Fatalf("testhelper: SeedCourse: %v", err)
	}
	return id
}

// CourseExists reports whether a course row is present.
func CourseExists(t *testing.T, pool *pgxpool.Pool, id int64) bool {
	t.Helper()

	var exists bool
	err := pool.QueryRow(context.Background(),
		`SELECT EXISTS(SELECT 1 FROM courses WHERE id = $1)`, id,
	).Scan(&exists)
	if err != nil {
		t.Fatalf("testhelper: CourseExists: %v", err)
	}
	return exists
}
