// Package decision holds the shared building blocks of the decision notice
// engine: award types, activity question catalogs, descriptor scoring and the
// points range tables each benefit instantiates. Everything here is a static,
// read-only table built at startup; validation passes share nothing and are
// safe to run concurrently.
package decision

// AwardType is an entitlement tier determined for an activity type. The key is
// the stable value persisted on the case record; the label is used when
// composing user-facing messages.
type AwardType struct {
	Key   string
	Label string
}

var (
	NotConsidered = AwardType{Key: "notConsidered", Label: "not considered"}
	NoAward       = AwardType{Key: "noAward", Label: "no award"}
	StandardRate  = AwardType{Key: "standardRate", Label: "standard rate"}
	EnhancedRate  = AwardType{Key: "enhancedRate", Label: "enhanced rate"}
	LowerRate     = AwardType{Key: "lowerRate", Label: "lower rate"}
	HigherRate    = AwardType{Key: "higherRate", Label: "higher rate"}
)

// AwardByKey resolves a persisted award key to its type. False for empty or
// unknown keys.
func AwardByKey(key string) (AwardType, bool) {
	for _, a := range []AwardType{NotConsidered, NoAward, StandardRate, EnhancedRate, LowerRate, HigherRate} {
		if a.Key == key {
			return a, true
		}
	}
	return AwardType{}, false
}

// HasAward reports whether the key denotes an actual entitlement rather than
// noAward or notConsidered.
func HasAward(key string) bool {
	switch key {
	case StandardRate.Key, EnhancedRate.Key, LowerRate.Key, HigherRate.Key:
		return true
	}
	return false
}

// Compared-to-prior answers recorded per activity type.
const (
	ComparedHigher = "higher"
	ComparedLower  = "lower"
	ComparedSame   = "same"
)

// End date type selections for the decision notice.
const (
	EndDateNA         = "na"
	EndDateIndefinite = "indefinite"
	EndDateSetEndDate = "setEndDate"
)

// Decision outcomes.
const (
	OutcomeAllowed = "allowed"
	OutcomeRefused = "refused"
)
