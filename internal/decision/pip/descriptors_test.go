// internal/decision/pip/descriptors_test.go
package pip

import (
	"testing"

	"tribunal-workers/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Every catalog question must have a descriptor entry with a complete lettered
// sequence starting at "a", and every descriptor must carry text.
func TestDescriptorTable_CoversCatalog(t *testing.T) {
	for _, q := range Catalog().Questions() {
		byLetter, ok := descriptors[q.Key]
		require.True(t, ok, "no descriptors for %s", q.Key)
		require.NotEmpty(t, byLetter, q.Key)

		for i := 0; i < len(byLetter); i++ {
			letter := string(rune('a' + i))
			d, ok := byLetter[letter]
			require.True(t, ok, "%s missing descriptor %q", q.Key, letter)
			assert.Equal(t, letter, d.Letter, q.Key)
			assert.NotEmpty(t, d.Text, "%s descriptor %q", q.Key, letter)
		}

		// The "a" descriptor always scores zero.
		assert.Equal(t, 0, byLetter["a"].Points, q.Key)
	}
}

// No orphan descriptor entries either.
func TestDescriptorTable_NoOrphans(t *testing.T) {
	for key := range descriptors {
		_, err := Catalog().Question(key)
		assert.NoError(t, err, key)
	}
}

func TestScoring_SpotChecks(t *testing.T) {
	cd := &models.CaseData{
		BenefitCode: "PIP",
		Pip: &models.PipCaseData{
			PreparingFoodQuestion:   "preparingFood1f",
			TakingNutritionQuestion: "takingNutrition2f",
			CommunicatingQuestion:   "communicating7e",
			MovingAroundQuestion:    "movingAround12c",
		},
	}

	tests := []struct {
		questionKey string
		points      int
	}{
		{"preparingFood", 8},
		{"takingNutrition", 10},
		{"communicating", 12},
		{"movingAround", 8},
	}

	for _, tt := range tests {
		answer, err := Questions().Answer(cd, tt.questionKey)
		require.NoError(t, err, tt.questionKey)
		require.NotNil(t, answer, tt.questionKey)
		assert.Equal(t, tt.points, answer.Points, tt.questionKey)
	}
}

// The statutory moving around ladder. The aided 20-50 metre descriptor (d)
// scores 10, two above its unaided counterpart (c).
func TestScoring_MovingAroundLadder(t *testing.T) {
	want := map[string]int{"a": 0, "b": 4, "c": 8, "d": 10, "e": 12, "f": 12}

	for letter, points := range want {
		got, err := Questions().Points("movingAround", letter)
		require.NoError(t, err, letter)
		assert.Equal(t, points, got, letter)
	}
}

func TestScoreGroup_SplitsByDimension(t *testing.T) {
	cd := &models.CaseData{
		BenefitCode: "PIP",
		Pip: &models.PipCaseData{
			PreparingFoodQuestion: "preparingFood1f",
			MovingAroundQuestion:  "movingAround12e",
		},
	}

	dailyLiving, err := Questions().ScoreGroup(cd, DailyLivingKey, []string{"preparingFood", "movingAround"})
	require.NoError(t, err)
	assert.Equal(t, 8, dailyLiving)

	mobility, err := Questions().ScoreGroup(cd, MobilityKey, []string{"preparingFood", "movingAround"})
	require.NoError(t, err)
	assert.Equal(t, 12, mobility)
}

func TestScoreGroup_NilCaseDataSection(t *testing.T) {
	cd := &models.CaseData{BenefitCode: "PIP"}

	total, err := Questions().ScoreGroup(cd, DailyLivingKey, []string{"preparingFood"})
	require.NoError(t, err)
	assert.Equal(t, 0, total)
}
