// internal/decision/activity.go
package decision

import (
	"tribunal-workers/internal/common/errors"
	"tribunal-workers/internal/models"
)

// ActivityType is one assessed dimension of a benefit decision, eg. daily
// living or mobility for PIP.
type ActivityType struct {
	Key  string
	Name string
	// Selections returns the activity question keys ticked for this
	// dimension; nil when the question has not been answered yet.
	Selections func(*models.CaseData) []string
}

// ActivityQuestion is a single assessable activity with a pure accessor that
// extracts the claimant's recorded descriptor choice from the case record.
type ActivityQuestion struct {
	Key          string
	Label        string
	ActivityType string
	// Answer returns the recorded choice value (eg. "preparingFood1f"),
	// empty when unanswered.
	Answer func(*models.CaseData) string
}

// Catalog is the closed set of activity questions for one benefit. Built once
// at startup, never mutated.
type Catalog struct {
	questions []ActivityQuestion
	byKey     map[string]ActivityQuestion
}

// NewCatalog builds a catalog, checking that every entry is fully authored.
func NewCatalog(questions []ActivityQuestion) (*Catalog, error) {
	byKey := make(map[string]ActivityQuestion, len(questions))
	for _, q := range questions {
		switch {
		case q.Key == "":
			return nil, errors.NewActivityCatalogInvalidError(q.Key, "missing key")
		case q.Label == "":
			return nil, errors.NewActivityCatalogInvalidError(q.Key, "missing label")
		case q.ActivityType == "":
			return nil, errors.NewActivityCatalogInvalidError(q.Key, "missing activity type")
		case q.Answer == nil:
			return nil, errors.NewActivityCatalogInvalidError(q.Key, "missing answer accessor")
		}
		if _, dup := byKey[q.Key]; dup {
			return nil, errors.NewActivityCatalogInvalidError(q.Key, "duplicate key")
		}
		byKey[q.Key] = q
	}
	return &Catalog{questions: questions, byKey: byKey}, nil
}

// MustNewCatalog is NewCatalog for the static benefit tables; a malformed
// table fails at process start.
func MustNewCatalog(questions []ActivityQuestion) *Catalog {
	c, err := NewCatalog(questions)
	if err != nil {
		panic(err)
	}
	return c
}

// Question looks up a question by key. Unknown or empty keys are a
// configuration error.
func (c *Catalog) Question(key string) (ActivityQuestion, error) {
	if key == "" {
		return ActivityQuestion{}, errors.NewUnknownActivityQuestionError(key)
	}
	q, ok := c.byKey[key]
	if !ok {
		return ActivityQuestion{}, errors.NewUnknownActivityQuestionError(key)
	}
	return q, nil
}

// Questions returns every question in declaration order.
func (c *Catalog) Questions() []ActivityQuestion {
	out := make([]ActivityQuestion, len(c.questions))
	copy(out, c.questions)
	return out
}

// ForActivityType returns the questions belonging to one dimension, in
// declaration order.
func (c *Catalog) ForActivityType(activityTypeKey string) []ActivityQuestion {
	var out []ActivityQuestion
	for _, q := range c.questions {
		if q.ActivityType == activityTypeKey {
			out = append(out, q)
		}
	}
	return out
}
