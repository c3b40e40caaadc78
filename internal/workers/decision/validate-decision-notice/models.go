// internal/workers/decision/validate-decision-notice/models.go
package validatedecisionnotice

import "tribunal-workers/internal/models"

type Input struct {
	CaseData models.CaseData `json:"caseData"`
}

type Output struct {
	EvaluationID string `json:"evaluationId"`
	CaseID       string `json:"caseId"`
	BenefitCode  string `json:"benefitCode"`

	IsValid  bool     `json:"isValid"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`

	Pip *PipOutcome `json:"pip,omitempty"`
	Esa *EsaOutcome `json:"esa,omitempty"`
}

// PipOutcome carries the computed values the case layer persists back.
type PipOutcome struct {
	DailyLivingPoints int    `json:"dailyLivingPoints"`
	MobilityPoints    int    `json:"mobilityPoints"`
	EndDateType       string `json:"writeFinalDecisionEndDateType,omitempty"`
	Outcome           string `json:"outcome,omitempty"`
}

// EsaOutcome carries the computed schedule 2 values.
type EsaOutcome struct {
	TotalPoints              int    `json:"totalPoints"`
	ShowRegulation29Page     bool   `json:"showRegulation29Page"`
	Schedule3ActivitiesApply string `json:"schedule3ActivitiesApply"`
}
