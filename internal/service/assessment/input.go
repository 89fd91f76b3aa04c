package assessment

import (
	"strings"

	"github.com/eduveda/course-backend/internal/domain"
)

type QuestionInput struct {
	Text    string
	Options []string
	Answer  string
}

// AssessmentInput is one assessment of the desired state.
type AssessmentInput struct {
	Title       string
	Description string
	Type        string
	Questions   []QuestionInput
}

// ReplaceAssessmentsInput is the complete desired assessment list of a course.
type ReplaceAssessmentsInput struct {
	CourseID    int64
	Assessments []AssessmentInput
}

func (i ReplaceAssessmentsInput) Validate() error {
	if i.CourseID <= 0 {
		return domain.NewValidationError("course_id", "required")
	}
	return nil
}

func (i ReplaceAssessmentsInput) toDomain() []domain.Assessment {
	out := make([]domain.Assessment, len(i.Assessments))
	for idx, in := range i.Assessments {
		questions := make([]domain.Question, len(in.Questions))
		for qi, q := range in.Questions {
			options := make([]string, len(q.Options))
			for oi, o := range q.Options {
				options[oi] = strings.TrimSpace(o)
			}
			questions[qi] = domain.Question{
				Text:    strings.TrimSpace(q.Text),
				Options: options,
				Answer:  strings.TrimSpace(q.Answer),
			}
		}
		out[idx] = domain.Assessment{
			CourseID:    i.CourseID,
			Type:        strings.TrimSpace(in.Type),
			Title:       strings.TrimSpace(in.Title),
			Description: strings.TrimSpace(in.Description),
			Questions:   questions,
		}
	}
	return out
}
