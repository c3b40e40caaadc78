// internal/decision/pip/validation_test.go
package pip

import (
	"testing"

	"tribunal-workers/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func standardRateCase() *models.CaseData {
	return &models.CaseData{
		CaseID:           "case-100",
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

func TestValidate_ConsistentStandardRate(t *testing.T) {
	res, err := Validate(standardRateCase())
	require.NoError(t, err)

	assert.True(t, res.IsValid())
	assert.Equal(t, 8, res.DailyLivingPoints)
	assert.Equal(t, 0, res.MobilityPoints)
	assert.Equal(t, "indefinite", res.EndDateType)
	assert.Equal(t, "refused", res.Outcome)
}

func TestValidate_AwardConsistency(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(cd *models.CaseData)
		wantError string
	}{
		{
			name: "standard rate with enhanced points",
			mutate: func(cd *models.CaseData) {
				cd.Pip.DailyLivingActivitiesQuestion = []string{"preparingFood", "takingNutrition"}
				cd.Pip.TakingNutritionQuestion = "takingNutrition2f" // 8 + 10 points
			},
			wantError: "You have previously selected a standard rate award for Daily Living. The points awarded don't match. Please review your previous selection.",
		},
		{
			name: "enhanced rate with standard points",
			mutate: func(cd *models.CaseData) {
				cd.Pip.DailyLivingQuestion = "enhancedRate"
			},
			wantError: "You have previously selected an enhanced rate award for Daily Living. The points awarded don't match. Please review your previous selection.",
		},
		{
			name: "mobility no award with scoring descriptor",
			mutate: func(cd *models.CaseData) {
				cd.Pip.MobilityQuestion = "noAward"
				cd.Pip.MobilityActivitiesQuestion = []string{"movingAround"}
				cd.Pip.MovingAroundQuestion = "movingAround12e" // 12 points
				cd.EndDateType = ""
			},
			wantError: "You have previously selected No Award for Mobility. The points awarded don't match. Please review your previous selection.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cd := standardRateCase()
			tt.mutate(cd)

			res, err := Validate(cd)
			require.NoError(t, err)

			require.Len(t, res.Errors, 1)
			assert.Equal(t, tt.wantError, res.Errors[0])
			assert.Empty(t, res.Outcome)
		})
	}
}

func TestValidate_Comparison(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(cd *models.CaseData)
		wantError string
	}{
		{
			name: "daily living no award cannot be higher",
			mutate: func(cd *models.CaseData) {
				cd.Pip.DailyLivingQuestion = "noAward"
				cd.Pip.DailyLivingActivitiesQuestion = nil
				cd.Pip.PreparingFoodQuestion = ""
				cd.Pip.ComparedToDWPDailyLivingQuestion = "higher"
				cd.EndDateType = "na"
			},
			wantError: "Daily living decision of No Award cannot be higher than DWP decision",
		},
		{
			name: "daily living enhanced rate cannot be lower",
			mutate: func(cd *models.CaseData) {
				cd.Pip.DailyLivingQuestion = "enhancedRate"
				cd.Pip.DailyLivingActivitiesQuestion = []string{"communicating"}
				cd.Pip.PreparingFoodQuestion = ""
				cd.Pip.CommunicatingQuestion = "communicating7e" // 12 points
				cd.Pip.ComparedToDWPDailyLivingQuestion = "lower"
			},
			wantError: "Daily living award at Enhanced Rate cannot be lower than DWP decision",
		},
		{
			name: "mobility no award cannot be higher",
			mutate: func(cd *models.CaseData) {
				cd.Pip.MobilityQuestion = "noAward"
				cd.Pip.MobilityActivitiesQuestion = nil
				cd.Pip.ComparedToDWPMobilityQuestion = "higher"
			},
			wantError: "Mobility decision of No Award cannot be higher than DWP decision",
		},
		{
			name: "mobility enhanced rate cannot be lower",
			mutate: func(cd *models.CaseData) {
				cd.Pip.MobilityQuestion = "enhancedRate"
				cd.Pip.MobilityActivitiesQuestion = []string{"movingAround"}
				cd.Pip.MovingAroundQuestion = "movingAround12f" // 12 points
				cd.Pip.ComparedToDWPMobilityQuestion = "lower"
			},
			wantError: "Mobility award at Enhanced Rate cannot be lower than DWP decision",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cd := standardRateCase()
			tt.mutate(cd)

			res, err := Validate(cd)
			require.NoError(t, err)

			require.Len(t, res.Errors, 1)
			assert.Equal(t, tt.wantError, res.Errors[0])
		})
	}
}

func TestValidate_BothNotConsidered(t *testing.T) {
	cd := standardRateCase()
	cd.Pip.DailyLivingQuestion = "notConsidered"
	cd.Pip.DailyLivingActivitiesQuestion = nil
	cd.Pip.PreparingFoodQuestion = ""
	cd.Pip.ComparedToDWPDailyLivingQuestion = ""
	cd.EndDateType = ""

	res, err := Validate(cd)
	require.NoError(t, err)

	require.Len(t, res.Errors, 1)
	assert.Equal(t, "At least one of Mobility or Daily Living must be considered", res.Errors[0])
	assert.Equal(t, "na", res.EndDateType)
}

func TestValidate_EndDateType(t *testing.T) {
	t.Run("end date not applicable without an award", func(t *testing.T) {
		cd := standardRateCase()
		cd.Pip.DailyLivingQuestion = "noAward"
		cd.Pip.DailyLivingActivitiesQuestion = nil
		cd.Pip.PreparingFoodQuestion = ""
		cd.EndDateType = "indefinite"

		res, err := Validate(cd)
		require.NoError(t, err)

		require.Len(t, res.Errors, 1)
		assert.Equal(t, "End date is not applicable for this decision - please specify 'N/A - No Award'.", res.Errors[0])
		assert.Equal(t, "na", res.EndDateType)
	})

	t.Run("end date required with an award", func(t *testing.T) {
		cd := standardRateCase()
		cd.EndDateType = "na"

		res, err := Validate(cd)
		require.NoError(t, err)

		require.Len(t, res.Errors, 1)
		assert.Equal(t, "An end date must be provided or set to Indefinite for this decision.", res.Errors[0])
		assert.Equal(t, "na", res.EndDateType)
	})

	t.Run("skipped until both award questions answered", func(t *testing.T) {
		cd := standardRateCase()
		cd.Pip.MobilityQuestion = ""
		cd.EndDateType = "na"

		res, err := Validate(cd)
		require.NoError(t, err)

		assert.True(t, res.IsValid())
		assert.Equal(t, "na", res.EndDateType)
	})

	t.Run("normalized even when already na", func(t *testing.T) {
		cd := standardRateCase()
		cd.Pip.DailyLivingQuestion = "noAward"
		cd.Pip.DailyLivingActivitiesQuestion = nil
		cd.Pip.PreparingFoodQuestion = ""
		cd.EndDateType = "na"

		res, err := Validate(cd)
		require.NoError(t, err)

		assert.True(t, res.IsValid())
		assert.Equal(t, "na", res.EndDateType)
	})
}

func TestValidate_ActivitySelection(t *testing.T) {
	t.Run("empty selection under an award is rejected", func(t *testing.T) {
		cd := standardRateCase()
		cd.Pip.DailyLivingActivitiesQuestion = []string{}
		cd.Pip.PreparingFoodQuestion = ""

		res, err := Validate(cd)
		require.NoError(t, err)

		require.Len(t, res.Errors, 1)
		assert.Equal(t, "At least one activity must be selected unless there is no award", res.Errors[0])
	})

	t.Run("nil selection means unanswered and is fine", func(t *testing.T) {
		cd := standardRateCase()
		cd.Pip.DailyLivingActivitiesQuestion = nil
		cd.Pip.PreparingFoodQuestion = ""

		res, err := Validate(cd)
		require.NoError(t, err)

		assert.True(t, res.IsValid())
	})

	t.Run("empty selection with no award is fine", func(t *testing.T) {
		cd := standardRateCase()
		cd.Pip.DailyLivingQuestion = "noAward"
		cd.Pip.DailyLivingActivitiesQuestion = []string{}
		cd.Pip.PreparingFoodQuestion = ""
		cd.EndDateType = "na"

		res, err := Validate(cd)
		require.NoError(t, err)

		assert.True(t, res.IsValid())
	})
}

func TestValidate_Outcome(t *testing.T) {
	t.Run("allowed when decided higher than DWP", func(t *testing.T) {
		cd := standardRateCase()
		cd.Pip.ComparedToDWPDailyLivingQuestion = "higher"

		res, err := Validate(cd)
		require.NoError(t, err)

		assert.True(t, res.IsValid())
		assert.Equal(t, "allowed", res.Outcome)
	})

	t.Run("not derived while either award question is open", func(t *testing.T) {
		cd := standardRateCase()
		cd.Pip.MobilityQuestion = ""

		res, err := Validate(cd)
		require.NoError(t, err)

		assert.True(t, res.IsValid())
		assert.Empty(t, res.Outcome)
	})
}

func TestValidate_SkipsNonDescriptorFlow(t *testing.T) {
	cd := standardRateCase()
	cd.IsDescriptorFlow = "no"
	cd.Pip.DailyLivingQuestion = "noAward"
	cd.Pip.ComparedToDWPDailyLivingQuestion = "higher"

	res, err := Validate(cd)
	require.NoError(t, err)

	assert.True(t, res.IsValid())
	assert.Equal(t, 0, res.DailyLivingPoints)
}

func TestValidate_NilPipSection(t *testing.T) {
	res, err := Validate(&models.CaseData{BenefitCode: "PIP", IsDescriptorFlow: "yes"})
	require.NoError(t, err)
	assert.True(t, res.IsValid())
}

func TestValidate_BadAnswerValue(t *testing.T) {
	cd := standardRateCase()
	cd.Pip.PreparingFoodQuestion = "garbage"

	_, err := Validate(cd)
	assert.Error(t, err)
}
