// internal/decision/esa/conditions.go
package esa

import "tribunal-workers/internal/decision"

// The ESA points partition runs over the schedule 2 total across both
// question groups: below 15 points the schedule 2 threshold is not met by
// points alone (the regulation 29 question must then be put); from 15 points
// the claimant has limited capability for work. The 15 point threshold is
// statutory. No award-consistency messages are attached: this event never
// reports a points mismatch for ESA, the entries drive the regulation 29 flag
// and carry the partition invariant.
var (
	pointsLessThanFifteen = decision.PointsCondition{
		ActivityType: WorkCapabilityKey,
		Award:        decision.NoAward,
		Range:        &decision.PointsRange{Low: 0, High: 15},
	}
	pointsGreaterOrEqualToFifteen = decision.PointsCondition{
		ActivityType: WorkCapabilityKey,
		Award:        decision.LowerRate,
		Range:        &decision.PointsRange{Low: 15, High: decision.NoUpperBound},
	}
)

var pointsConditions = decision.MustPartition([]decision.PointsCondition{
	pointsLessThanFifteen,
	pointsGreaterOrEqualToFifteen,
}, WorkCapabilityKey)

// PointsConditions returns the ESA points partition table.
func PointsConditions() []decision.PointsCondition {
	out := make([]decision.PointsCondition, len(pointsConditions))
	copy(out, pointsConditions)
	return out
}
