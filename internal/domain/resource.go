package domain

import (
	"regexp"
	"strings"
	"time"
)

// MaxTitleLength bounds the natural key of every reconciled item.
const MaxTitleLength = 255

// Resource is a video lesson attached to a course.
type Resource struct {
	ID        int64
	CourseID  int64
	Title     string
	Duration  string
	YoutubeID string
	CreatedBy int64
	UpdatedBy int64
	CreatedAt time.Time
	UpdatedAt time.Time
	Version   int
}

// NaturalKey returns the title, which identifies a resource within its course.
func (r Resource) NaturalKey() string { return r.Title }

// ItemID returns the store-assigned id, 0 if never saved.
func (r Resource) ItemID() int64 { return r.ID }

// Validate checks the resource's own fields.
func (r Resource) Validate() error {
	var errs []FieldError

	title := strings.TrimSpace(r.Title)
	if title == "" {
		errs = append(errs, FieldError{Field: "title", Message: "required", Cause: ErrInvalidItem})
	}
	if len(title) > MaxTitleLength {
		errs = append(errs, FieldError{Field: "title", Message: "max 255 characters", Cause: ErrInvalidItem})
	}
	if r.YoutubeID == "" {
		errs = append(errs, FieldError{Field: "youtube_link", Message: "not a recognised YouTube link", Cause: ErrInvalidItem})
	}

	if len(errs) > 0 {
		return &ValidationError{Errors: errs}
	}
	return nil
}

// SameContent compares the fields students see: title, duration and video.
func (r Resource) SameContent(other Resource) bool {
	return r.Title == other.Title &&
		r.Duration == other.Duration &&
		r.YoutubeID == other.YoutubeID
}

// Inherit returns r carrying prev's identity, version and creation audit.
func (r Resource) Inherit(prev Resource) Resource {
	r.ID = prev.ID
	r.CourseID = prev.CourseID
	r.Version = prev.Version
	r.CreatedBy = prev.CreatedBy
	r.CreatedAt = prev.CreatedAt
	return r
}

// Touch stamps the audit fields for a write by actor at now.
func (r Resource) Touch(actor int64, now time.Time) Resource {
	if r.ID == 0 {
		r.CreatedBy = actor
		r.CreatedAt = now
	}
	r.UpdatedBy = actor
	r.UpdatedAt = now
	return r
}

var youtubeLinkRe = regexp.MustCompile(`^.*(youtu\.be/|v/|u/\w/|embed/|watch\?v=|&v=)([^#&?]*).*$`)

// ExtractYoutubeID returns the video id embedded in a YouTube URL.
// Supports watch?v=, youtu.be/, embed/, v/ and u/x/ forms.
func ExtractYoutubeID(link string) (string, bool) {
	link = strings.TrimSpace(link)
	if link == "" {
		return "", false
	}
	m := youtubeLinkRe.FindStringSubmatch(link)
	if m == nil || m[2] == "" {
		return "", false
	}
	return m[2], true
}
