// internal/models/casedata.go
package models

import "strings"

// Benefit codes recognized by the decision engine.
const (
	BenefitCodePIP = "PIP"
	BenefitCodeESA = "ESA"
)

// CaseData is the read-only view of a tribunal appeal case the decision engine
// validates. The worker materializes it from job variables before each call and
// discards it afterwards; the engine never mutates or retains it.
type CaseData struct {
	CaseID      string `json:"caseId"`
	BenefitCode string `json:"benefitCode"`

	// IsDescriptorFlow gates whether the descriptor-based validation runs at
	// all. Recorded as "yes"/"no" in the case record.
	IsDescriptorFlow string `json:"writeFinalDecisionIsDescriptorFlow"`

	// EndDateType is one of "na", "indefinite" or "setEndDate"; empty when the
	// question has not been answered yet.
	EndDateType string `json:"writeFinalDecisionEndDateType"`

	// Decision notice period, ISO dates, only set for "setEndDate" decisions.
	StartDate string `json:"writeFinalDecisionStartDate"`
	EndDate   string `json:"writeFinalDecisionEndDate"`

	Pip *PipCaseData `json:"pip,omitempty"`
	Esa *EsaCaseData `json:"esa,omitempty"`
}

// DescriptorFlow reports whether the case is on the descriptor route.
func (c *CaseData) DescriptorFlow() bool {
	return strings.EqualFold(c.IsDescriptorFlow, "yes")
}
