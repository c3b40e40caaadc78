// internal/models/esa.go
package models

// EsaCaseData carries the ESA-specific answers recorded against a case.
// The two schedule 2 activity lists are nil until answered; descriptor fields
// hold the recorded choice value (eg. "mobilisingUnaided1b").
type EsaCaseData struct {
	PhysicalDisabilitiesQuestion []string `json:"esaWriteFinalDecisionPhysicalDisabilitiesQuestion"`
	MentalAssessmentQuestion     []string `json:"esaWriteFinalDecisionMentalAssessmentQuestion"`

	// Schedule3ActivitiesApply is "Yes"/"No"; defaulted to "Yes" when unset.
	Schedule3ActivitiesApply string `json:"esaWriteFinalDecisionSchedule3ActivitiesApply"`

	// Physical disabilities descriptor choices (schedule 2, activities 1-10).
	MobilisingUnaidedQuestion    string `json:"esaWriteFinalDecisionMobilisingUnaidedQuestion"`
	StandingAndSittingQuestion   string `json:"esaWriteFinalDecisionStandingAndSittingQuestion"`
	ReachingQuestion             string `json:"esaWriteFinalDecisionReachingQuestion"`
	PickingUpQuestion            string `json:"esaWriteFinalDecisionPickingUpQuestion"`
	ManualDexterityQuestion      string `json:"esaWriteFinalDecisionManualDexterityQuestion"`
	MakingSelfUnderstoodQuestion string `json:"esaWriteFinalDecisionMakingSelfUnderstoodQuestion"`
	CommunicationQuestion        string `json:"esaWriteFinalDecisionCommunicationQuestion"`
	NavigationQuestion           string `json:"esaWriteFinalDecisionNavigationQuestion"`
	LossOfControlQuestion        string `json:"esaWriteFinalDecisionLossOfControlQuestion"`
	ConsciousnessQuestion        string `json:"esaWriteFinalDecisionConsciousnessQuestion"`

	// Mental, cognitive and intellectual assessment descriptor choices
	// (schedule 2, activities 11-17).
	LearningTasksQuestion        string `json:"esaWriteFinalDecisionLearningTasksQuestion"`
	AwarenessOfHazardsQuestion   string `json:"esaWriteFinalDecisionAwarenessOfHazardsQuestion"`
	PersonalActionQuestion       string `json:"esaWriteFinalDecisionPersonalActionQuestion"`
	CopingWithChangeQuestion     string `json:"esaWriteFinalDecisionCopingWithChangeQuestion"`
	GettingAboutQuestion         string `json:"esaWriteFinalDecisionGettingAboutQuestion"`
	SocialEngagementQuestion     string `json:"esaWriteFinalDecisionSocialEngagementQuestion"`
	AppropriatenessOfBehaviourQuestion string `json:"esaWriteFinalDecisionAppropriatenessOfBehaviourQuestion"`
}
