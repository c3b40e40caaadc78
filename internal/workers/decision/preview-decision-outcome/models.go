// internal/workers/decision/preview-decision-outcome/models.go
package previewdecisionoutcome

import "tribunal-workers/internal/models"

type Input struct {
	CaseData models.CaseData `json:"caseData"`
}

type Output struct {
	EvaluationID  string `json:"evaluationId"`
	CaseID        string `json:"caseId"`
	BenefitCode   string `json:"benefitCode"`
	GeneratedDate string `json:"generatedDate"`

	Outcome  string    `json:"outcome,omitempty"`
	Sections []Section `json:"sections"`
}

// Section is one assessed dimension of the draft notice with its selected
// descriptors and point total.
type Section struct {
	Title  string `json:"title"`
	Award  string `json:"award,omitempty"`
	Points int    `json:"points"`
	Rows   []Row  `json:"rows"`
}

// Row is one selected activity with the recorded descriptor choice.
type Row struct {
	Activity   string `json:"activity"`
	Descriptor string `json:"descriptor"`
	Points     int    `json:"points"`
	Value      string `json:"value"`
}
