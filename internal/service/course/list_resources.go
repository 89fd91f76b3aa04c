package course

import (
	"context"
	"fmt"

	"github.com/eduveda/course-backend/internal/domain"
)

// ListResources returns the course's resources ordered by id.
func (s *Service) ListResources(ctx context.Context, courseID int64) ([]domain.Resource, error) {
	if courseID <= 0 {
		return nil, domain.NewValidationError("course_id", "required")
	}

	exists, err := s.courses.Exists(ctx, courseID)
	if err != nil {
		return nil, fmt.Errorf("check course: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("course %d: %w", courseID, domain.ErrNotFound)
	}

	resources, err := s.resources.FindByOwner(ctx, courseID)
	if err != nil {
		return nil, fmt.Errorf("list resources: %w", err)
	}
	return resources, nil
}
