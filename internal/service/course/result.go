package course

import (
	"github.com/eduveda/course-backend/internal/domain"
	"github.com/eduveda/course-backend/internal/reconcile"
)

// ReplaceResult carries the committed outcome and, separately, the
// informational notification report.
type ReplaceResult struct {
	Outcome *reconcile.Outcome[domain.Resource]
	Report  domain.NotifyReport
}
