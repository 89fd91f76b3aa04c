package notify

import (
	"strings"

	"github.com/eduveda/course-backend/internal/domain"
)

// Separator joins natural keys inside one aggregated message.
const Separator = ", "

const (
	relatedEntityCourse = "course"
	typeCourseUpdate    = "course_update"
	typeCourseRemoved   = "course_removed"
)

// Template renders one change class. The message is Lead, the joined
// keys, then Tail.
type Template struct {
	Title string
	Lead  string
	Tail  string
	Type  string
}

// Render builds the message text for keys.
func (t Template) Render(keys []string) string {
	return t.Lead + strings.Join(keys, Separator) + t.Tail
}

// Catalog maps change classes to templates for one item kind.
type Catalog map[domain.ChangeClass]Template

// ResourceCatalog is used for course resources.
var ResourceCatalog = Catalog{
	domain.ChangeCreated: {
		Title: "Course Content Updated",
		Lead:  "New resources have been added to the course: ",
		Tail:  ".",
		Type:  typeCourseUpdate,
	},
	domain.ChangeUpdated: {
		Title: "Course Content Updated",
		Lead:  "The following resources have been updated in the course: ",
		Tail:  ".",
		Type:  typeCourseUpdate,
	},
	domain.ChangeDeleted: {
		Title: "Course Content Updated",
		Lead:  "The following resources have been removed from the course: ",
		Tail:  ".",
		Type:  typeCourseUpdate,
	},
	domain.ChangeOwnerRemoved: {
		Title: "Course Removed",
		Lead:  "The course has been removed because it no longer has any resources.",
		Type:  typeCourseRemoved,
	},
}

// AssessmentCatalog is used for course assessments.
var AssessmentCatalog = Catalog{
	domain.ChangeCreated: {
		Title: "New Assessments Added",
		Lead:  "New assessments have been added to the course: ",
		Type:  typeCourseUpdate,
	},
	domain.ChangeUpdated: {
		Title: "Assessments Updated",
		Lead:  "The following assessments have been updated: ",
		Type:  typeCourseUpdate,
	},
	domain.ChangeDeleted: {
		Title: "Assessments Removed",
		Lead:  "The following assessments have been removed: ",
		Type:  typeCourseUpdate,
	},
}
