// internal/workers/decision/validate-decision-notice/handler_test.go
package validatedecisionnotice

import (
	"context"
	"testing"
	"time"

	"tribunal-workers/internal/common/logger"
	"tribunal-workers/internal/common/observability"
	"tribunal-workers/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ==========================
// Test Helper Functions
// ==========================

func createTestConfig() *Config {
	return &Config{Timeout: 10 * time.Second}
}

func createPipCaseData() models.CaseData {
	return models.CaseData{
		CaseID:           "case-1001",
		BenefitCode:      "PIP",
		IsDescriptorFlow: "yes",
		EndDateType:      "indefinite",
		Pip: &models.PipCaseData{
			DailyLivingQuestion:              "standardRate",
			MobilityQuestion:                 "notConsidered",
			DailyLivingActivitiesQuestion:    []string{"preparingFood"},
			ComparedToDWPDailyLivingQuestion: "same",
			PreparingFoodQuestion:            "preparingFood1f", // 8 points
		},
	}
}

func createEsaCaseData() models.CaseData {
	return models.CaseData{
		CaseID:      "case-2001",
		BenefitCode: "ESA",
		Esa: &models.EsaCaseData{
			PhysicalDisabilitiesQuestion: []string{"mobilisingUnaided"},
			MentalAssessmentQuestion:     []string{},
			MobilisingUnaidedQuestion:    "mobilisingUnaided1a", // 15 points
			Schedule3ActivitiesApply:     "No",
		},
	}
}

func newTestHandler(t *testing.T) *Handler {
	return NewHandler(createTestConfig(), &observability.Observability{}, logger.NewTestLogger(t))
}

// ==========================
// Core Functionality Tests
// ==========================

func TestHandler_Execute_Pip(t *testing.T) {
	tests := []struct {
		name     string
		caseData func() models.CaseData
		validate func(t *testing.T, output *Output)
	}{
		{
			name:     "consistent standard rate award passes",
			caseData: createPipCaseData,
			validate: func(t *testing.T, output *Output) {
				assert.True(t, output.IsValid)
				assert.Empty(t, output.Errors)
				require.NotNil(t, output.Pip)
				assert.Equal(t, 8, output.Pip.DailyLivingPoints)
				assert.Equal(t, 0, output.Pip.MobilityPoints)
				assert.Equal(t, "indefinite", output.Pip.EndDateType)
				assert.Equal(t, "refused", output.Pip.Outcome)
			},
		},
		{
			name: "points above the selected band fail consistency",
			caseData: func() models.CaseData {
				cd := createPipCaseData()
				cd.Pip.DailyLivingActivitiesQuestion = []string{"preparingFood", "takingNutrition"}
				cd.Pip.TakingNutritionQuestion = "takingNutrition1f" // 8 + 10 points
				return cd
			},
			validate: func(t *testing.T, output *Output) {
				assert.False(t, output.IsValid)
				require.Len(t, output.Errors, 1)
				assert.Equal(t,
					"You have previously selected a standard rate award for Daily Living. The points awarded don't match. Please review your previous selection.",
					output.Errors[0])
				assert.Equal(t, 18, output.Pip.DailyLivingPoints)
				assert.Empty(t, output.Pip.Outcome)
			},
		},
		{
			name: "no award cannot be higher than the DWP decision",
			caseData: func() models.CaseData {
				cd := createPipCaseData()
				cd.Pip.DailyLivingQuestion = "noAward"
				cd.Pip.DailyLivingActivitiesQuestion = []string{}
				cd.Pip.PreparingFoodQuestion = ""
				cd.Pip.ComparedToDWPDailyLivingQuestion = "higher"
				cd.EndDateType = "na"
				return cd
			},
			validate: func(t *testing.T, output *Output) {
				assert.False(t, output.IsValid)
				assert.Contains(t, output.Errors,
					"Daily living decision of No Award cannot be higher than DWP decision")
			},
		},
		{
			name: "both dimensions not considered is rejected and end date normalized",
			caseData: func() models.CaseData {
				cd := createPipCaseData()
				cd.Pip.DailyLivingQuestion = "notConsidered"
				cd.Pip.DailyLivingActivitiesQuestion = nil
				cd.Pip.PreparingFoodQuestion = ""
				cd.Pip.ComparedToDWPDailyLivingQuestion = ""
				return cd
			},
			validate: func(t *testing.T, output *Output) {
				assert.False(t, output.IsValid)
				assert.Contains(t, output.Errors,
					"At least one of Mobility or Daily Living must be considered")
				assert.Contains(t, output.Errors,
					"End date is not applicable for this decision - please specify 'N/A - No Award'.")
				assert.Equal(t, "na", output.Pip.EndDateType)
			},
		},
		{
			name: "empty activity selection under an award is rejected",
			caseData: func() models.CaseData {
				cd := createPipCaseData()
				cd.Pip.DailyLivingActivitiesQuestion = []string{}
				cd.Pip.PreparingFoodQuestion = ""
				return cd
			},
			validate: func(t *testing.T, output *Output) {
				assert.False(t, output.IsValid)
				require.Len(t, output.Errors, 1)
				assert.Equal(t, "At least one activity must be selected unless there is no award", output.Errors[0])
			},
		},
		{
			name: "non descriptor flow skips the descriptor validators",
			caseData: func() models.CaseData {
				cd := createPipCaseData()
				cd.IsDescriptorFlow = "no"
				cd.Pip.PreparingFoodQuestion = "" // would otherwise mismatch against noAward
				cd.Pip.DailyLivingQuestion = "noAward"
				cd.Pip.ComparedToDWPDailyLivingQuestion = "higher"
				return cd
			},
			validate: func(t *testing.T, output *Output) {
				assert.True(t, output.IsValid)
				assert.Empty(t, output.Errors)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := newTestHandler(t)
			cd := tt.caseData()
			output, err := handler.execute(context.Background(), &Input{CaseData: cd})
			require.NoError(t, err)
			assert.NotEmpty(t, output.EvaluationID)
			assert.Equal(t, cd.CaseID, output.CaseID)
			assert.Equal(t, cd.BenefitCode, output.BenefitCode)
			tt.validate(t, output)
		})
	}
}

func TestHandler_Execute_Esa(t *testing.T) {
	tests := []struct {
		name     string
		caseData func() models.CaseData
		validate func(t *testing.T, output *Output)
	}{
		{
			name:     "fifteen points clears the threshold",
			caseData: createEsaCaseData,
			validate: func(t *testing.T, output *Output) {
				assert.True(t, output.IsValid)
				require.NotNil(t, output.Esa)
				assert.Equal(t, 15, output.Esa.TotalPoints)
				assert.False(t, output.Esa.ShowRegulation29Page)
				assert.Equal(t, "No", output.Esa.Schedule3ActivitiesApply)
			},
		},
		{
			name: "six points shows the regulation 29 page",
			caseData: func() models.CaseData {
				cd := createEsaCaseData()
				cd.Esa.MobilisingUnaidedQuestion = "mobilisingUnaided1c" // 6 points
				cd.Esa.Schedule3ActivitiesApply = ""
				return cd
			},
			validate: func(t *testing.T, output *Output) {
				assert.True(t, output.IsValid)
				assert.Equal(t, 6, output.Esa.TotalPoints)
				assert.True(t, output.Esa.ShowRegulation29Page)
				assert.Equal(t, "Yes", output.Esa.Schedule3ActivitiesApply)
			},
		},
		{
			name: "empty selections across both groups are rejected",
			caseData: func() models.CaseData {
				cd := createEsaCaseData()
				cd.Esa.PhysicalDisabilitiesQuestion = []string{}
				cd.Esa.MobilisingUnaidedQuestion = ""
				return cd
			},
			validate: func(t *testing.T, output *Output) {
				assert.False(t, output.IsValid)
				require.Len(t, output.Errors, 1)
				assert.Equal(t, "At least one activity must be selected.", output.Errors[0])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := newTestHandler(t)
			cd := tt.caseData()
			output, err := handler.execute(context.Background(), &Input{CaseData: cd})
			require.NoError(t, err)
			tt.validate(t, output)
		})
	}
}

// ==========================
// Error Path Tests
// ==========================

func TestHandler_Execute_UnsupportedBenefitCode(t *testing.T) {
	handler := newTestHandler(t)

	output, err := handler.execute(context.Background(), &Input{CaseData: models.CaseData{
		CaseID:      "case-3001",
		BenefitCode: "UC",
	}})

	assert.Nil(t, output)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "benefitCode")
}

func TestHandler_Execute_SchemaViolation(t *testing.T) {
	handler := newTestHandler(t)

	cd := createPipCaseData()
	cd.Pip.DailyLivingQuestion = "superEnhancedRate"

	output, err := handler.execute(context.Background(), &Input{CaseData: cd})

	assert.Nil(t, output)
	require.Error(t, err)
}

func TestHandler_Execute_DecisionNoticeDates(t *testing.T) {
	handler := newTestHandler(t)

	cd := createPipCaseData()
	cd.EndDateType = "setEndDate"
	cd.StartDate = "2024-06-01"
	cd.EndDate = "2024-01-01"

	output, err := handler.execute(context.Background(), &Input{CaseData: cd})
	require.NoError(t, err)

	assert.False(t, output.IsValid)
	assert.Contains(t, output.Errors,
		"Decision notice end date must be after decision notice start date")
}
