// internal/decision/pip/conditions.go
package pip

import (
	"fmt"

	"tribunal-workers/internal/decision"
)

func rng(low, high int) *decision.PointsRange {
	return &decision.PointsRange{Low: low, High: high}
}

func mismatch(award, activityName string) string {
	return fmt.Sprintf("You have previously selected %s for %s. The points awarded don't match. Please review your previous selection.", award, activityName)
}

// The PIP range partition table. For a dimension being assessed the
// conditional entries partition [0,100): noAward below 8 points, standard rate
// from 8 to below 12, enhanced rate from 12. The 8 and 12 point thresholds are
// statutory and transcribed as-is. notConsidered applies unconditionally when
// the dimension is not being assessed and takes no part in the partition.
// MustPartition re-checks the no-gap/no-overlap invariant at process start.
var pointsConditions = decision.MustPartition([]decision.PointsCondition{
	{ActivityType: DailyLivingKey, Award: decision.NotConsidered},
	{ActivityType: DailyLivingKey, Award: decision.NoAward, Range: rng(0, 8),
		Message: mismatch("No Award", DailyLiving.Name)},
	{ActivityType: DailyLivingKey, Award: decision.StandardRate, Range: rng(8, 12),
		Message: mismatch("a standard rate award", DailyLiving.Name)},
	{ActivityType: DailyLivingKey, Award: decision.EnhancedRate, Range: rng(12, decision.PartitionDomain),
		Message: mismatch("an enhanced rate award", DailyLiving.Name)},

	{ActivityType: MobilityKey, Award: decision.NotConsidered},
	{ActivityType: MobilityKey, Award: decision.NoAward, Range: rng(0, 8),
		Message: mismatch("No Award", Mobility.Name)},
	{ActivityType: MobilityKey, Award: decision.StandardRate, Range: rng(8, 12),
		Message: mismatch("a standard rate award", Mobility.Name)},
	{ActivityType: MobilityKey, Award: decision.EnhancedRate, Range: rng(12, decision.PartitionDomain),
		Message: mismatch("an enhanced rate award", Mobility.Name)},
}, DailyLivingKey, MobilityKey)

// PointsConditions returns the full PIP range table.
func PointsConditions() []decision.PointsCondition {
	out := make([]decision.PointsCondition, len(pointsConditions))
	copy(out, pointsConditions)
	return out
}

// ValidateAwardConsistency checks that the selected award for a dimension
// agrees with its computed point total. On a mismatch it returns the message of
// the condition authored for the selected award. A notConsidered selection is
// unconditionally consistent.
func ValidateAwardConsistency(activityType decision.ActivityType, awardKey string, points int) (string, bool, error) {
	if awardKey == "" || awardKey == decision.NotConsidered.Key {
		return "", false, nil
	}
	matched, err := decision.Matching(pointsConditions, activityType.Key, points)
	if err != nil {
		return "", false, err
	}
	if matched.Award.Key == awardKey {
		return "", false, nil
	}
	selected, err := decision.ConditionFor(pointsConditions, activityType.Key, awardKey)
	if err != nil {
		return "", false, err
	}
	return selected.Message, true, nil
}
