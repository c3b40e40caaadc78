// internal/models/pip.go
package models

// PipCaseData carries the PIP-specific answers recorded against a case. Award
// and comparison fields hold enumerated key strings; activity list fields are
// nil until the question has been answered; per-activity descriptor fields hold
// the recorded choice value (eg. "preparingFood1f"), empty when unanswered.
type PipCaseData struct {
	DailyLivingQuestion string `json:"pipWriteFinalDecisionDailyLivingQuestion"`
	MobilityQuestion    string `json:"pipWriteFinalDecisionMobilityQuestion"`

	DailyLivingActivitiesQuestion []string `json:"pipWriteFinalDecisionDailyLivingActivitiesQuestion"`
	MobilityActivitiesQuestion    []string `json:"pipWriteFinalDecisionMobilityActivitiesQuestion"`

	ComparedToDWPDailyLivingQuestion string `json:"pipWriteFinalDecisionComparedToDwpDailyLivingQuestion"`
	ComparedToDWPMobilityQuestion    string `json:"pipWriteFinalDecisionComparedToDwpMobilityQuestion"`

	// Daily living descriptor choices.
	PreparingFoodQuestion         string `json:"pipWriteFinalDecisionPreparingFoodQuestion"`
	TakingNutritionQuestion       string `json:"pipWriteFinalDecisionTakingNutritionQuestion"`
	ManagingTherapyQuestion       string `json:"pipWriteFinalDecisionManagingTherapyQuestion"`
	WashingAndBathingQuestion     string `json:"pipWriteFinalDecisionWashAndBatheQuestion"`
	ManagingToiletNeedsQuestion   string `json:"pipWriteFinalDecisionManagingToiletNeedsQuestion"`
	DressingAndUndressingQuestion string `json:"pipWriteFinalDecisionDressingAndUndressingQuestion"`
	CommunicatingQuestion         string `json:"pipWriteFinalDecisionCommunicatingQuestion"`
	ReadingAndUnderstandingQuestion string `json:"pipWriteFinalDecisionReadingUnderstandingQuestion"`
	EngagingWithOthersQuestion    string `json:"pipWriteFinalDecisionEngagingWithOthersQuestion"`
	BudgetingDecisionsQuestion    string `json:"pipWriteFinalDecisionBudgetingDecisionsQuestion"`

	// Mobility descriptor choices.
	PlanningAndFollowingQuestion string `json:"pipWriteFinalDecisionPlanningAndFollowingQuestion"`
	MovingAroundQuestion         string `json:"pipWriteFinalDecisionMovingAroundQuestion"`
}
