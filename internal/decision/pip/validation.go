// internal/decision/pip/validation.go
package pip

import (
	"fmt"

	"tribunal-workers/internal/decision"
	"tribunal-workers/internal/models"
)

// Fixed validation messages. Wording is load-bearing: the case layer surfaces
// these strings to users verbatim.
const (
	msgBothNotConsidered      = "At least one of Mobility or Daily Living must be considered"
	msgEndDateNotApplicable   = "End date is not applicable for this decision - please specify 'N/A - No Award'."
	msgEndDateRequired        = "An end date must be provided or set to Indefinite for this decision."
	msgActivitySelectionEmpty = "At least one activity must be selected unless there is no award"
)

// Result is the outcome of one PIP validation pass. EndDateType carries the
// normalized end date type the caller must persist; Outcome is only set when
// the pass is clean.
type Result struct {
	decision.Result
	EndDateType       string
	DailyLivingPoints int
	MobilityPoints    int
	Outcome           string
}

// group bundles the per-dimension answers the validators run over.
type group struct {
	activityType decision.ActivityType
	award        string
	compared     string
	selections   []string
	points       int
}

// Validate runs the PIP validators over a case snapshot in fixed order: score
// each dimension, check award consistency, check the comparison cross-fields
// and the both-not-considered rule, check the end date type, then check
// activity selection. Business rule violations are returned as messages on the
// result; an error return means the static tables or the payload are broken.
func Validate(cd *models.CaseData) (*Result, error) {
	res := &Result{EndDateType: cd.EndDateType}
	if cd.Pip == nil || !cd.DescriptorFlow() {
		return res, nil
	}
	p := cd.Pip

	dailyLivingPoints, err := questionService.ScoreGroup(cd, DailyLivingKey, p.DailyLivingActivitiesQuestion)
	if err != nil {
		return nil, err
	}
	mobilityPoints, err := questionService.ScoreGroup(cd, MobilityKey, p.MobilityActivitiesQuestion)
	if err != nil {
		return nil, err
	}
	res.DailyLivingPoints = dailyLivingPoints
	res.MobilityPoints = mobilityPoints

	groups := []group{
		{DailyLiving, p.DailyLivingQuestion, p.ComparedToDWPDailyLivingQuestion, p.DailyLivingActivitiesQuestion, dailyLivingPoints},
		{Mobility, p.MobilityQuestion, p.ComparedToDWPMobilityQuestion, p.MobilityActivitiesQuestion, mobilityPoints},
	}

	// Award consistency, in dimension declaration order. A dimension with no
	// selected activities has no point total to compare yet; the activity
	// selection validator owns that case.
	for _, g := range groups {
		if len(g.selections) == 0 {
			continue
		}
		msg, mismatched, err := ValidateAwardConsistency(g.activityType, g.award, g.points)
		if err != nil {
			return nil, err
		}
		if mismatched {
			res.AddError(msg)
		}
	}

	for _, g := range groups {
		if msg, ok := validateComparison(g.activityType, g.award, g.compared); ok {
			res.AddError(msg)
		}
	}

	if p.DailyLivingQuestion == decision.NotConsidered.Key && p.MobilityQuestion == decision.NotConsidered.Key {
		res.AddError(msgBothNotConsidered)
	}

	validateEndDateType(cd, res)

	for _, g := range groups {
		if msg, ok := validateActivitySelection(g.award, g.selections); ok {
			res.AddError(msg)
		}
	}

	if res.IsValid() && p.DailyLivingQuestion != "" && p.MobilityQuestion != "" {
		res.Outcome = outcome(p)
	}
	return res, nil
}

// comparisonName is the display form used by the comparison messages, which
// differs from the activity name used in consistency messages ("Daily living"
// against "Daily Living").
func comparisonName(activityType decision.ActivityType) string {
	if activityType.Key == DailyLivingKey {
		return "Daily living"
	}
	return activityType.Name
}

// validateComparison cross-checks the compared-to-DWP answer against the
// selected award: a refusal cannot be higher than the prior decision and an
// enhanced rate cannot be lower.
func validateComparison(activityType decision.ActivityType, awardKey, compared string) (string, bool) {
	switch {
	case awardKey == decision.NoAward.Key && compared == decision.ComparedHigher:
		return fmt.Sprintf("%s decision of No Award cannot be higher than DWP decision", comparisonName(activityType)), true
	case awardKey == decision.EnhancedRate.Key && compared == decision.ComparedLower:
		return fmt.Sprintf("%s award at Enhanced Rate cannot be lower than DWP decision", comparisonName(activityType)), true
	}
	return "", false
}

// validateEndDateType requires the "na" sentinel exactly when neither
// dimension carries an award, and normalizes the persisted end date type to
// "na" in that case. Runs only once both award questions have been answered.
func validateEndDateType(cd *models.CaseData, res *Result) {
	p := cd.Pip
	if p.DailyLivingQuestion == "" || p.MobilityQuestion == "" {
		return
	}
	hasAward := decision.HasAward(p.DailyLivingQuestion) || decision.HasAward(p.MobilityQuestion)
	if !hasAward {
		if cd.EndDateType != "" && cd.EndDateType != decision.EndDateNA {
			res.AddError(msgEndDateNotApplicable)
		}
		res.EndDateType = decision.EndDateNA
		return
	}
	if cd.EndDateType == decision.EndDateNA {
		res.AddError(msgEndDateRequired)
	}
}

// validateActivitySelection requires at least one selected activity for any
// dimension holding an actual award. A nil selection list means the question
// has not been answered yet and is not an error.
func validateActivitySelection(awardKey string, selections []string) (string, bool) {
	if awardKey == "" || awardKey == decision.NoAward.Key || awardKey == decision.NotConsidered.Key {
		return "", false
	}
	if selections != nil && len(selections) == 0 {
		return msgActivitySelectionEmpty, true
	}
	return "", false
}

// outcome derives the allowed/refused outcome for a clean pass: the appeal is
// allowed when either dimension was decided higher than the DWP decision.
func outcome(p *models.PipCaseData) string {
	if p.ComparedToDWPDailyLivingQuestion == decision.ComparedHigher || p.ComparedToDWPMobilityQuestion == decision.ComparedHigher {
		return decision.OutcomeAllowed
	}
	return decision.OutcomeRefused
}
