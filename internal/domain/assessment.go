package domain

import (
	"fmt"
	"slices"
	"strings"
	"time"
)

// DefaultAssessmentType is applied when no type is provided.
const DefaultAssessmentType = "quiz"

// Question is one multiple-choice question of an assessment.
type Question struct {
	Text    string   `json:"text"`
	Options []string `json:"options"`
	Answer  string   `json:"answer"`
}

// Equal compares questions field by field. Options are order-sensitive.
func (q Question) Equal(other Question) bool {
	return q.Text == other.Text &&
		q.Answer == other.Answer &&
		slices.Equal(q.Options, other.Options)
}

// Assessment is a quiz attached to a course.
type Assessment struct {
	ID          int64
	CourseID    int64
	Type        string
	Title       string
	Description string
	Questions   []Question
	CreatedBy   int64
	UpdatedBy   int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Version     int
}

// NaturalKey returns the title, which identifies an assessment within its course.
func (a Assessment) NaturalKey() string { return a.Title }

// ItemID returns the store-assigned id, 0 if never saved.
func (a Assessment) ItemID() int64 { return a.ID }

// CorrectAnswers lists each question's answer in question order.
func (a Assessment) CorrectAnswers() []string {
	answers := make([]string, len(a.Questions))
	for i, q := range a.Questions {
		answers[i] = q.Answer
	}
	return answers
}

// MaxScore is one point per question.
func (a Assessment) MaxScore() int { return len(a.Questions) }

// Validate checks the assessment and every question.
func (a Assessment) Validate() error {
	var errs []FieldError
	invalid := func(field, msg string) {
		errs = append(errs, FieldError{Field: field, Message: msg, Cause: ErrInvalidItem})
	}

	title := strings.TrimSpace(a.Title)
	if title == "" {
		invalid("title", "required")
	}
	if len(title) > MaxTitleLength {
		invalid("title", "max 255 characters")
	}
	if len(a.Questions) == 0 {
		invalid("questions", "at least one question required")
	}
	for i, q := range a.Questions {
		prefix := fmt.Sprintf("questions[%d]", i)
		if strings.TrimSpace(q.Text) == "" {
			invalid(prefix+".text", "required")
		}
		if len(q.Options) < 2 {
			invalid(prefix+".options", "at least two options required")
		}
		if strings.TrimSpace(q.Answer) == "" {
			invalid(prefix+".answer", "required")
		}
	}

	if len(errs) > 0 {
		return &ValidationError{Errors: errs}
	}
	return nil
}

// SameContent compares description and questions. Title equality is
// implied by the natural key match.
func (a Assessment) SameContent(other Assessment) bool {
	return a.Description == other.Description &&
		slices.EqualFunc(a.Questions, other.Questions, Question.Equal)
}

// Inherit returns a carrying prev's identity, version and creation audit.
func (a Assessment) Inherit(prev Assessment) Assessment {
	a.ID = prev.ID
	a.CourseID = prev.CourseID
	a.Version = prev.Version
	a.CreatedBy = prev.CreatedBy
	a.CreatedAt = prev.CreatedAt
	if a.Type == "" {
		a.Type = prev.Type
	}
	return a
}

// Touch stamps the audit fields for a write by actor at now.
func (a Assessment) Touch(actor int64, now time.Time) Assessment {
	if a.ID == 0 {
		a.CreatedBy = actor
		a.CreatedAt = now
	}
	if a.Type == "" {
		a.Type = DefaultAssessmentType
	}
	a.UpdatedBy = actor
	a.UpdatedAt = now
	return a
}
