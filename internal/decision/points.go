// internal/decision/points.go
package decision

import (
	"tribunal-workers/internal/common/errors"
)

// PartitionDomain bounds the point totals a range table must account for.
// Conditional entries for each activity type must cover [0, PartitionDomain)
// exactly once per value.
const PartitionDomain = 100

// NoUpperBound marks a range with no upper limit. Partition checking still
// only inspects [0, PartitionDomain), but totals beyond the domain (possible
// when many high-scoring descriptors are combined) must still match.
const NoUpperBound = int(^uint(0) >> 1)

// PointsRange is a half-open interval [Low, High) of point totals. Boundaries
// are closed-low/open-high so a boundary value belongs to the interval that
// starts at it, never the one that ends at it.
type PointsRange struct {
	Low  int
	High int
}

// Contains reports whether points falls inside the interval.
func (r PointsRange) Contains(points int) bool {
	return points >= r.Low && points < r.High
}

// PointsCondition ties the award type selected for one activity dimension to
// the interval of point totals it is valid for, together with the message shown
// when the selection and the computed total disagree.
type PointsCondition struct {
	ActivityType string
	Award        AwardType
	// Range is nil for unconditional entries: notConsidered applies
	// regardless of points when the dimension is not being assessed.
	Range   *PointsRange
	Message string
}

// Applicable reports whether the condition constrains point totals at all.
func (c PointsCondition) Applicable() bool {
	return c.Range != nil
}

// Matching returns the single conditional entry for the activity type whose
// interval contains points. Zero or multiple matches mean the table itself has
// a gap or an overlap; that is an authoring defect, not a business error.
func Matching(conds []PointsCondition, activityTypeKey string, points int) (PointsCondition, error) {
	var found *PointsCondition
	matches := 0
	for i := range conds {
		c := conds[i]
		if c.ActivityType != activityTypeKey || c.Range == nil {
			continue
		}
		if c.Range.Contains(points) {
			found = &conds[i]
			matches++
		}
	}
	if matches != 1 {
		return PointsCondition{}, errors.NewPointsConditionInvariantError(activityTypeKey, points, matches)
	}
	return *found, nil
}

// ConditionFor returns the entry authored for an award on one activity type.
func ConditionFor(conds []PointsCondition, activityTypeKey, awardKey string) (PointsCondition, error) {
	for _, c := range conds {
		if c.ActivityType == activityTypeKey && c.Award.Key == awardKey {
			return c, nil
		}
	}
	return PointsCondition{}, errors.NewPointsConditionInvariantError(activityTypeKey, -1, 0)
}

// CheckPartition verifies the central table invariant for one activity type:
// every point total in [0, PartitionDomain) satisfies exactly one conditional
// entry.
func CheckPartition(conds []PointsCondition, activityTypeKey string) error {
	for points := 0; points < PartitionDomain; points++ {
		matches := 0
		for _, c := range conds {
			if c.ActivityType != activityTypeKey || c.Range == nil {
				continue
			}
			if c.Range.Contains(points) {
				matches++
			}
		}
		if matches != 1 {
			return errors.NewPointsConditionInvariantError(activityTypeKey, points, matches)
		}
	}
	return nil
}

// MustPartition runs CheckPartition for each activity type at table build time
// so a malformed table fails at process start rather than first under test.
func MustPartition(conds []PointsCondition, activityTypeKeys ...string) []PointsCondition {
	for _, key := range activityTypeKeys {
		if err := CheckPartition(conds, key); err != nil {
			panic(err)
		}
	}
	return conds
}
