package course

import (
	"strings"

	"github.com/eduveda/course-backend/internal/domain"
)

// ResourceInput is one resource of the desired state.
type ResourceInput struct {
	Title       string
	Duration    string
	YoutubeLink string
}

// ReplaceResourcesInput is the complete desired resource list of a course.
type ReplaceResourcesInput struct {
	CourseID  int64
	Resources []ResourceInput
}

// Validate checks request-level fields. Item rules are enforced by the
// reconciler so every item error is reported at once.
func (i ReplaceResourcesInput) Validate() error {
	if i.CourseID <= 0 {
		return domain.NewValidationError("course_id", "required")
	}
	return nil
}

// toDomain maps inputs to resources. An unrecognised link leaves
// YoutubeID empty, which fails resource validation.
func (i ReplaceResourcesInput) toDomain() []domain.Resource {
	out := make([]domain.Resource, len(i.Resources))
	for idx, in := range i.Resources {
		videoID, _ := domain.ExtractYoutubeID(in.YoutubeLink)
		out[idx] = domain.Resource{
			CourseID:  i.CourseID,
			Title:     strings.TrimSpace(in.Title),
			Duration:  strings.TrimSpace(in.Duration),
			YoutubeID: videoID,
		}
	}
	return out
}
