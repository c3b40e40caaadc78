// internal/decision/pip/conditions_test.go
package pip

import (
	"testing"

	"tribunal-workers/internal/decision"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Every point total a dimension can score must satisfy exactly one conditional
// entry, and the matched award must follow the statutory thresholds.
func TestPointsConditions_PartitionTheDomain(t *testing.T) {
	for _, activityType := range []decision.ActivityType{DailyLiving, Mobility} {
		for points := 0; points < decision.PartitionDomain; points++ {
			matched, err := decision.Matching(PointsConditions(), activityType.Key, points)
			require.NoError(t, err, "%s at %d points", activityType.Key, points)

			var want string
			switch {
			case points < 8:
				want = decision.NoAward.Key
			case points < 12:
				want = decision.StandardRate.Key
			default:
				want = decision.EnhancedRate.Key
			}
			assert.Equal(t, want, matched.Award.Key, "%s at %d points", activityType.Key, points)
		}
	}
}

func TestPointsConditions_NotConsideredIsUnconditional(t *testing.T) {
	for _, activityType := range []decision.ActivityType{DailyLiving, Mobility} {
		c, err := decision.ConditionFor(PointsConditions(), activityType.Key, decision.NotConsidered.Key)
		require.NoError(t, err)
		assert.False(t, c.Applicable())
	}
}

func TestValidateAwardConsistency(t *testing.T) {
	tests := []struct {
		name       string
		award      string
		points     int
		mismatched bool
	}{
		{"no award with low points", "noAward", 0, false},
		{"no award at band top", "noAward", 7, false},
		{"no award with standard points", "noAward", 8, true},
		{"standard rate at lower bound", "standardRate", 8, false},
		{"standard rate at upper bound", "standardRate", 11, false},
		{"standard rate below band", "standardRate", 7, true},
		{"standard rate above band", "standardRate", 12, true},
		{"enhanced rate at threshold", "enhancedRate", 12, false},
		{"enhanced rate below threshold", "enhancedRate", 11, true},
		{"not considered ignores points", "notConsidered", 50, false},
		{"unanswered ignores points", "", 50, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, mismatched, err := ValidateAwardConsistency(DailyLiving, tt.award, tt.points)
			require.NoError(t, err)
			assert.Equal(t, tt.mismatched, mismatched)
		})
	}
}

// On a mismatch the message names the award the user selected, not the award
// the points indicate.
func TestValidateAwardConsistency_Messages(t *testing.T) {
	tests := []struct {
		activityType decision.ActivityType
		award        string
		points       int
		want         string
	}{
		{DailyLiving, "standardRate", 18,
			"You have previously selected a standard rate award for Daily Living. The points awarded don't match. Please review your previous selection."},
		{DailyLiving, "enhancedRate", 4,
			"You have previously selected an enhanced rate award for Daily Living. The points awarded don't match. Please review your previous selection."},
		{DailyLiving, "noAward", 10,
			"You have previously selected No Award for Daily Living. The points awarded don't match. Please review your previous selection."},
		{Mobility, "standardRate", 12,
			"You have previously selected a standard rate award for Mobility. The points awarded don't match. Please review your previous selection."},
	}

	for _, tt := range tests {
		msg, mismatched, err := ValidateAwardConsistency(tt.activityType, tt.award, tt.points)
		require.NoError(t, err)
		require.True(t, mismatched)
		assert.Equal(t, tt.want, msg)
	}
}

func TestValidateAwardConsistency_UnknownAward(t *testing.T) {
	_, _, err := ValidateAwardConsistency(DailyLiving, "superRate", 10)
	assert.Error(t, err)
}
