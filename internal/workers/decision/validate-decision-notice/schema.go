// internal/workers/decision/validate-decision-notice/schema.go
package validatedecisionnotice

import (
	"fmt"
	"strings"

	apperrors "tribunal-workers/internal/common/errors"
	"tribunal-workers/internal/models"

	"github.com/xeipuuv/gojsonschema"
)

func enum(values ...string) map[string]interface{} {
	vals := make([]interface{}, 0, len(values)+1)
	// Unanswered fields arrive as empty strings.
	vals = append(vals, "")
	for _, v := range values {
		vals = append(vals, v)
	}
	return map[string]interface{}{"type": "string", "enum": vals}
}

var awardEnum = enum("notConsidered", "noAward", "standardRate", "enhancedRate")
var comparedEnum = enum("higher", "lower", "same")

var stringArray = map[string]interface{}{
	"type":  "array",
	"items": map[string]interface{}{"type": "string"},
}

// caseDataSchema guards the enumerated payload fields before the engine runs;
// a payload that fails here never reaches the catalogs.
var caseDataSchema = map[string]interface{}{
	"type":     "object",
	"required": []interface{}{"benefitCode"},
	"properties": map[string]interface{}{
		"caseId":                             map[string]interface{}{"type": "string"},
		"benefitCode":                        map[string]interface{}{"type": "string", "enum": []interface{}{"PIP", "ESA"}},
		"writeFinalDecisionIsDescriptorFlow": enum("yes", "no", "Yes", "No"),
		"writeFinalDecisionEndDateType":      enum("na", "indefinite", "setEndDate"),
		"writeFinalDecisionStartDate":        map[string]interface{}{"type": "string"},
		"writeFinalDecisionEndDate":          map[string]interface{}{"type": "string"},
		"pip": map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"pipWriteFinalDecisionDailyLivingQuestion":              awardEnum,
				"pipWriteFinalDecisionMobilityQuestion":                 awardEnum,
				"pipWriteFinalDecisionComparedToDwpDailyLivingQuestion": comparedEnum,
				"pipWriteFinalDecisionComparedToDwpMobilityQuestion":    comparedEnum,
				"pipWriteFinalDecisionDailyLivingActivitiesQuestion":    stringArray,
				"pipWriteFinalDecisionMobilityActivitiesQuestion":       stringArray,
			},
		},
		"esa": map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"esaWriteFinalDecisionPhysicalDisabilitiesQuestion": stringArray,
				"esaWriteFinalDecisionMentalAssessmentQuestion":     stringArray,
				"esaWriteFinalDecisionSchedule3ActivitiesApply":     enum("Yes", "No"),
			},
		},
	},
}

// validatePayload checks the case snapshot against the schema.
func validatePayload(cd *models.CaseData) error {
	schemaLoader := gojsonschema.NewGoLoader(caseDataSchema)
	documentLoader := gojsonschema.NewGoLoader(cd)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return apperrors.NewDecisionSchemaInvalidError(err.Error())
	}
	if result.Valid() {
		return nil
	}

	details := make([]string, 0, len(result.Errors()))
	for _, e := range result.Errors() {
		details = append(details, fmt.Sprintf("%s: %s", e.Field(), e.Description()))
	}
	return apperrors.NewDecisionSchemaInvalidError(strings.Join(details, "; "))
}
