// internal/decision/esa/validation.go
package esa

import (
	"tribunal-workers/internal/decision"
	"tribunal-workers/internal/models"
)

const msgActivitySelectionEmpty = "At least one activity must be selected."

// Result is the outcome of one ESA validation pass. ShowRegulation29Page and
// Schedule3ActivitiesApply are computed fields the caller persists back to the
// case record.
type Result struct {
	decision.Result
	TotalPoints              int
	ShowRegulation29Page     bool
	Schedule3ActivitiesApply string
}

// Validate runs the ESA schedule 2 validation over a case snapshot: once
// either activity group question has been answered, at least one activity must
// be selected across the two groups; the schedule 2 total decides whether the
// regulation 29 page is shown; the schedule 3 question defaults to applying.
func Validate(cd *models.CaseData) (*Result, error) {
	res := &Result{}
	if cd.Esa == nil {
		return res, nil
	}
	e := cd.Esa
	res.Schedule3ActivitiesApply = e.Schedule3ActivitiesApply
	if res.Schedule3ActivitiesApply == "" {
		res.Schedule3ActivitiesApply = "Yes"
	}

	if e.PhysicalDisabilitiesQuestion == nil && e.MentalAssessmentQuestion == nil {
		return res, nil
	}

	if len(e.PhysicalDisabilitiesQuestion) == 0 && len(e.MentalAssessmentQuestion) == 0 {
		res.AddError(msgActivitySelectionEmpty)
	}

	physicalPoints, err := questionService.ScoreGroup(cd, PhysicalDisabilitiesKey, e.PhysicalDisabilitiesQuestion)
	if err != nil {
		return nil, err
	}
	mentalPoints, err := questionService.ScoreGroup(cd, MentalAssessmentKey, e.MentalAssessmentQuestion)
	if err != nil {
		return nil, err
	}
	res.TotalPoints = physicalPoints + mentalPoints

	matched, err := decision.Matching(pointsConditions, WorkCapabilityKey, res.TotalPoints)
	if err != nil {
		return nil, err
	}
	res.ShowRegulation29Page = matched.Award.Key == pointsLessThanFifteen.Award.Key

	return res, nil
}
