// internal/decision/descriptor.go
package decision

import (
	"regexp"

	"tribunal-workers/internal/common/errors"
	"tribunal-workers/internal/models"
)

// Descriptor is one lettered answer to an activity question together with the
// points it scores.
type Descriptor struct {
	Letter string
	Points int
	Text   string
}

// DescriptorTable maps questionKey -> answer letter -> descriptor.
type DescriptorTable map[string]map[string]Descriptor

// ActivityAnswer is a recorded descriptor choice resolved against the table.
type ActivityAnswer struct {
	Number string
	Letter string
	Points int
	Text   string
	Value  string
}

// Recorded choice values combine question key, question number and answer
// letter, eg. "preparingFood1f".
var answerValuePattern = regexp.MustCompile(`^([a-zA-Z]+?)(\d+)([a-z])$`)

// QuestionService resolves recorded answers into descriptors and point totals
// for one benefit's catalog. Stateless apart from the static tables.
type QuestionService struct {
	catalog     *Catalog
	descriptors DescriptorTable
}

func NewQuestionService(catalog *Catalog, descriptors DescriptorTable) *QuestionService {
	return &QuestionService{catalog: catalog, descriptors: descriptors}
}

// Catalog returns the question catalog the service scores against.
func (s *QuestionService) Catalog() *Catalog {
	return s.catalog
}

// Points returns the point value for (questionKey, letter).
func (s *QuestionService) Points(questionKey, letter string) (int, error) {
	byLetter, ok := s.descriptors[questionKey]
	if !ok {
		return 0, errors.NewDescriptorNotFoundError(questionKey, letter)
	}
	d, ok := byLetter[letter]
	if !ok {
		return 0, errors.NewDescriptorNotFoundError(questionKey, letter)
	}
	return d.Points, nil
}

// Answer resolves the recorded descriptor choice for an activity question.
// Returns nil when the question is unanswered.
func (s *QuestionService) Answer(cd *models.CaseData, questionKey string) (*ActivityAnswer, error) {
	q, err := s.catalog.Question(questionKey)
	if err != nil {
		return nil, err
	}
	raw := q.Answer(cd)
	if raw == "" {
		return nil, nil
	}
	m := answerValuePattern.FindStringSubmatch(raw)
	if m == nil {
		return nil, errors.NewAnswerFormatError(questionKey, raw)
	}
	letter := m[3]
	byLetter, ok := s.descriptors[questionKey]
	if !ok {
		return nil, errors.NewDescriptorNotFoundError(questionKey, letter)
	}
	d, ok := byLetter[letter]
	if !ok {
		return nil, errors.NewDescriptorNotFoundError(questionKey, letter)
	}
	return &ActivityAnswer{
		Number: m[2],
		Letter: letter,
		Points: d.Points,
		Text:   d.Text,
		Value:  raw,
	}, nil
}

// TotalPoints sums the points of the recorded answers for the given question
// keys. Unanswered questions contribute 0.
func (s *QuestionService) TotalPoints(cd *models.CaseData, questionKeys []string) (int, error) {
	total := 0
	for _, key := range questionKeys {
		answer, err := s.Answer(cd, key)
		if err != nil {
			return 0, err
		}
		if answer != nil {
			total += answer.Points
		}
	}
	return total, nil
}

// ScoreGroup sums, for every catalog question of the activity type whose key
// appears in selectedKeys, the points of the recorded answer. Questions not
// selected or not yet answered contribute 0, so the result is 0 when no
// activities have been selected at all.
func (s *QuestionService) ScoreGroup(cd *models.CaseData, activityTypeKey string, selectedKeys []string) (int, error) {
	selected := make(map[string]bool, len(selectedKeys))
	for _, key := range selectedKeys {
		selected[key] = true
	}
	total := 0
	for _, q := range s.catalog.ForActivityType(activityTypeKey) {
		if !selected[q.Key] {
			continue
		}
		answer, err := s.Answer(cd, q.Key)
		if err != nil {
			return 0, err
		}
		if answer != nil {
			total += answer.Points
		}
	}
	return total, nil
}
