// Package esa instantiates the decision notice engine for Employment and
// Support Allowance: the schedule 2 work capability activities split across
// the physical disabilities and mental assessment dimensions, with the
// 15 point threshold partition that drives the regulation 29 flow.
package esa

import (
	"tribunal-workers/internal/decision"
	"tribunal-workers/internal/models"
)

const (
	PhysicalDisabilitiesKey = "physicalDisabilities"
	MentalAssessmentKey     = "mentalAssessment"

	// WorkCapabilityKey is the dimension the points partition runs over:
	// schedule 2 points are totalled across both question groups.
	WorkCapabilityKey = "workCapabilityAssessment"
)

var PhysicalDisabilities = decision.ActivityType{
	Key:  PhysicalDisabilitiesKey,
	Name: "Physical Disabilities",
	Selections: func(cd *models.CaseData) []string {
		if cd.Esa == nil {
			return nil
		}
		return cd.Esa.PhysicalDisabilitiesQuestion
	},
}

var MentalAssessment = decision.ActivityType{
	Key:  MentalAssessmentKey,
	Name: "Mental Assessment",
	Selections: func(cd *models.CaseData) []string {
		if cd.Esa == nil {
			return nil
		}
		return cd.Esa.MentalAssessmentQuestion
	},
}

func answer(get func(*models.EsaCaseData) string) func(*models.CaseData) string {
	return func(cd *models.CaseData) string {
		if cd.Esa == nil {
			return ""
		}
		return get(cd.Esa)
	}
}

// Schedule 2 activities, in schedule order.
var questions = []decision.ActivityQuestion{
	{Key: "mobilisingUnaided", Label: "Mobilising unaided", ActivityType: PhysicalDisabilitiesKey,
		Answer: answer(func(e *models.EsaCaseData) string { return e.MobilisingUnaidedQuestion })},
	{Key: "standingAndSitting", Label: "Standing and sitting", ActivityType: PhysicalDisabilitiesKey,
		Answer: answer(func(e *models.EsaCaseData) string { return e.StandingAndSittingQuestion })},
	{Key: "reaching", Label: "Reaching", ActivityType: PhysicalDisabilitiesKey,
		Answer: answer(func(e *models.EsaCaseData) string { return e.ReachingQuestion })},
	{Key: "pickingUp", Label: "Picking up and moving", ActivityType: PhysicalDisabilitiesKey,
		Answer: answer(func(e *models.EsaCaseData) string { return e.PickingUpQuestion })},
	{Key: "manualDexterity", Label: "Manual dexterity", ActivityType: PhysicalDisabilitiesKey,
		Answer: answer(func(e *models.EsaCaseData) string { return e.ManualDexterityQuestion })},
	{Key: "makingSelfUnderstood", Label: "Making self understood", ActivityType: PhysicalDisabilitiesKey,
		Answer: answer(func(e *models.EsaCaseData) string { return e.MakingSelfUnderstoodQuestion })},
	{Key: "communication", Label: "Understanding communication", ActivityType: PhysicalDisabilitiesKey,
		Answer: answer(func(e *models.EsaCaseData) string { return e.CommunicationQuestion })},
	{Key: "navigation", Label: "Navigation and maintaining safety", ActivityType: PhysicalDisabilitiesKey,
		Answer: answer(func(e *models.EsaCaseData) string { return e.NavigationQuestion })},
	{Key: "lossOfControl", Label: "Absence or loss of control of bowel or bladder", ActivityType: PhysicalDisabilitiesKey,
		Answer: answer(func(e *models.EsaCaseData) string { return e.LossOfControlQuestion })},
	{Key: "consciousness", Label: "Consciousness during waking moments", ActivityType: PhysicalDisabilitiesKey,
		Answer: answer(func(e *models.EsaCaseData) string { return e.ConsciousnessQuestion })},

	{Key: "learningTasks", Label: "Learning tasks", ActivityType: MentalAssessmentKey,
		Answer: answer(func(e *models.EsaCaseData) string { return e.LearningTasksQuestion })},
	{Key: "awarenessOfHazards", Label: "Awareness of everyday hazards", ActivityType: MentalAssessmentKey,
		Answer: answer(func(e *models.EsaCaseData) string { return e.AwarenessOfHazardsQuestion })},
	{Key: "personalAction", Label: "Initiating and completing personal action", ActivityType: MentalAssessmentKey,
		Answer: answer(func(e *models.EsaCaseData) string { return e.PersonalActionQuestion })},
	{Key: "copingWithChange", Label: "Coping with change", ActivityType: MentalAssessmentKey,
		Answer: answer(func(e *models.EsaCaseData) string { return e.CopingWithChangeQuestion })},
	{Key: "gettingAbout", Label: "Getting about", ActivityType: MentalAssessmentKey,
		Answer: answer(func(e *models.EsaCaseData) string { return e.GettingAboutQuestion })},
	{Key: "socialEngagement", Label: "Coping with social engagement", ActivityType: MentalAssessmentKey,
		Answer: answer(func(e *models.EsaCaseData) string { return e.SocialEngagementQuestion })},
	{Key: "appropriatenessOfBehaviour", Label: "Appropriateness of behaviour with other people", ActivityType: MentalAssessmentKey,
		Answer: answer(func(e *models.EsaCaseData) string { return e.AppropriatenessOfBehaviourQuestion })},
}

var catalog = decision.MustNewCatalog(questions)

// Catalog returns the ESA schedule 2 question catalog.
func Catalog() *decision.Catalog {
	return catalog
}
