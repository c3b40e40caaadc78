// internal/decision/dates.go
package decision

import (
	"time"

	"tribunal-workers/internal/models"
)

// NoticeDatesError is emitted when a fixed decision period is inverted.
const NoticeDatesError = "Decision notice end date must be after decision notice start date"

// ValidateNoticeDates checks that a fully specified decision period runs
// forwards. Unparseable dates are reported the same way; blank dates mean the
// period is not set yet and are not an error.
func ValidateNoticeDates(cd *models.CaseData) (string, bool) {
	if cd.StartDate == "" || cd.EndDate == "" {
		return "", false
	}
	start, err := time.Parse("2006-01-02", cd.StartDate)
	if err != nil {
		return NoticeDatesError, true
	}
	end, err := time.Parse("2006-01-02", cd.EndDate)
	if err != nil {
		return NoticeDatesError, true
	}
	if !start.Before(end) {
		return NoticeDatesError, true
	}
	return "", false
}
