// Package pip instantiates the decision notice engine for Personal
// Independence Payment: two assessed dimensions (daily living and mobility),
// four award tiers, the statutory descriptor scoring tables and the award
// points ranges.
package pip

import (
	"tribunal-workers/internal/decision"
	"tribunal-workers/internal/models"
)

const (
	DailyLivingKey = "dailyLiving"
	MobilityKey    = "mobility"
)

// DailyLiving and Mobility are the two PIP assessed dimensions.
var DailyLiving = decision.ActivityType{
	Key:  DailyLivingKey,
	Name: "Daily Living",
	Selections: func(cd *models.CaseData) []string {
		if cd.Pip == nil {
			return nil
		}
		return cd.Pip.DailyLivingActivitiesQuestion
	},
}

var Mobility = decision.ActivityType{
	Key:  MobilityKey,
	Name: "Mobility",
	Selections: func(cd *models.CaseData) []string {
		if cd.Pip == nil {
			return nil
		}
		return cd.Pip.MobilityActivitiesQuestion
	},
}

func answer(get func(*models.PipCaseData) string) func(*models.CaseData) string {
	return func(cd *models.CaseData) string {
		if cd.Pip == nil {
			return ""
		}
		return get(cd.Pip)
	}
}

// The closed PIP activity question catalog, in statutory order.
var questions = []decision.ActivityQuestion{
	{Key: "preparingFood", Label: "Preparing food", ActivityType: DailyLivingKey,
		Answer: answer(func(p *models.PipCaseData) string { return p.PreparingFoodQuestion })},
	{Key: "takingNutrition", Label: "Taking nutrition", ActivityType: DailyLivingKey,
		Answer: answer(func(p *models.PipCaseData) string { return p.TakingNutritionQuestion })},
	{Key: "managingTherapy", Label: "Managing therapy or monitoring a health condition", ActivityType: DailyLivingKey,
		Answer: answer(func(p *models.PipCaseData) string { return p.ManagingTherapyQuestion })},
	{Key: "washingAndBathing", Label: "Washing and bathing", ActivityType: DailyLivingKey,
		Answer: answer(func(p *models.PipCaseData) string { return p.WashingAndBathingQuestion })},
	{Key: "managingToiletNeeds", Label: "Managing toilet needs or incontinence", ActivityType: DailyLivingKey,
		Answer: answer(func(p *models.PipCaseData) string { return p.ManagingToiletNeedsQuestion })},
	{Key: "dressingAndUndressing", Label: "Dressing and undressing", ActivityType: DailyLivingKey,
		Answer: answer(func(p *models.PipCaseData) string { return p.DressingAndUndressingQuestion })},
	{Key: "communicating", Label: "Communicating verbally", ActivityType: DailyLivingKey,
		Answer: answer(func(p *models.PipCaseData) string { return p.CommunicatingQuestion })},
	{Key: "readingUnderstanding", Label: "Reading and understanding signs, symbols and words", ActivityType: DailyLivingKey,
		Answer: answer(func(p *models.PipCaseData) string { return p.ReadingAndUnderstandingQuestion })},
	{Key: "engagingWithOthers", Label: "Engaging with other people face to face", ActivityType: DailyLivingKey,
		Answer: answer(func(p *models.PipCaseData) string { return p.EngagingWithOthersQuestion })},
	{Key: "budgetingDecisions", Label: "Making budgeting decisions", ActivityType: DailyLivingKey,
		Answer: answer(func(p *models.PipCaseData) string { return p.BudgetingDecisionsQuestion })},

	{Key: "planningAndFollowing", Label: "Planning and following journeys", ActivityType: MobilityKey,
		Answer: answer(func(p *models.PipCaseData) string { return p.PlanningAndFollowingQuestion })},
	{Key: "movingAround", Label: "Moving around", ActivityType: MobilityKey,
		Answer: answer(func(p *models.PipCaseData) string { return p.MovingAroundQuestion })},
}

var catalog = decision.MustNewCatalog(questions)

// Catalog returns the PIP activity question catalog.
func Catalog() *decision.Catalog {
	return catalog
}
