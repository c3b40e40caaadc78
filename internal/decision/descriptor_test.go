// internal/decision/descriptor_test.go
package decision

import (
	"testing"

	"tribunal-workers/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixture catalog with answers held in a map the accessors close over.
func testQuestionService(answers map[string]string) *QuestionService {
	questions := []ActivityQuestion{
		{Key: "climbingStairs", Label: "Climbing stairs", ActivityType: "physical",
			Answer: func(*models.CaseData) string { return answers["climbingStairs"] }},
		{Key: "carryingObjects", Label: "Carrying objects", ActivityType: "physical",
			Answer: func(*models.CaseData) string { return answers["carryingObjects"] }},
		{Key: "rememberingTasks", Label: "Remembering tasks", ActivityType: "cognitive",
			Answer: func(*models.CaseData) string { return answers["rememberingTasks"] }},
	}
	table := DescriptorTable{
		"climbingStairs": {
			"a": {Letter: "a", Points: 0, Text: "Can climb stairs unaided."},
			"b": {Letter: "b", Points: 4, Text: "Needs a handrail to climb stairs."},
			"c": {Letter: "c", Points: 8, Text: "Cannot climb stairs at all."},
		},
		"carryingObjects": {
			"a": {Letter: "a", Points: 0, Text: "Can carry objects unaided."},
			"b": {Letter: "b", Points: 6, Text: "Cannot carry objects heavier than 1kg."},
		},
		"rememberingTasks": {
			"a": {Letter: "a", Points: 0, Text: "Can remember everyday tasks."},
			"b": {Letter: "b", Points: 9, Text: "Cannot remember everyday tasks without prompting."},
		},
	}
	return NewQuestionService(MustNewCatalog(questions), table)
}

func TestQuestionService_Answer(t *testing.T) {
	svc := testQuestionService(map[string]string{
		"climbingStairs": "climbingStairs1b",
	})
	cd := &models.CaseData{}

	answer, err := svc.Answer(cd, "climbingStairs")
	require.NoError(t, err)
	require.NotNil(t, answer)
	assert.Equal(t, "1", answer.Number)
	assert.Equal(t, "b", answer.Letter)
	assert.Equal(t, 4, answer.Points)
	assert.Equal(t, "Needs a handrail to climb stairs.", answer.Text)
	assert.Equal(t, "climbingStairs1b", answer.Value)
}

func TestQuestionService_Answer_Unanswered(t *testing.T) {
	svc := testQuestionService(map[string]string{})

	answer, err := svc.Answer(&models.CaseData{}, "climbingStairs")
	require.NoError(t, err)
	assert.Nil(t, answer)
}

func TestQuestionService_Answer_BadFormat(t *testing.T) {
	tests := []string{
		"1b",               // missing question key
		"climbingStairsb",  // missing number
		"climbingStairs1B", // upper case letter
		"climbingStairs1",  // missing letter
	}
	for _, value := range tests {
		svc := testQuestionService(map[string]string{"climbingStairs": value})
		_, err := svc.Answer(&models.CaseData{}, "climbingStairs")
		assert.Error(t, err, "value=%q", value)
	}
}

func TestQuestionService_Answer_UnknownLetter(t *testing.T) {
	svc := testQuestionService(map[string]string{"carryingObjects": "carryingObjects1z"})

	_, err := svc.Answer(&models.CaseData{}, "carryingObjects")
	assert.Error(t, err)
}

func TestQuestionService_Answer_UnknownQuestion(t *testing.T) {
	svc := testQuestionService(map[string]string{})

	_, err := svc.Answer(&models.CaseData{}, "swimming")
	assert.Error(t, err)

	_, err = svc.Answer(&models.CaseData{}, "")
	assert.Error(t, err)
}

func TestQuestionService_TotalPoints(t *testing.T) {
	svc := testQuestionService(map[string]string{
		"climbingStairs":  "climbingStairs1c",
		"carryingObjects": "carryingObjects1b",
	})

	total, err := svc.TotalPoints(&models.CaseData{}, []string{"climbingStairs", "carryingObjects", "rememberingTasks"})
	require.NoError(t, err)
	assert.Equal(t, 14, total)
}

func TestQuestionService_ScoreGroup(t *testing.T) {
	svc := testQuestionService(map[string]string{
		"climbingStairs":   "climbingStairs1c",
		"carryingObjects":  "carryingObjects1b",
		"rememberingTasks": "rememberingTasks1b",
	})
	cd := &models.CaseData{}

	// Only selected activities count.
	total, err := svc.ScoreGroup(cd, "physical", []string{"climbingStairs"})
	require.NoError(t, err)
	assert.Equal(t, 8, total)

	// Selections from another dimension are ignored.
	total, err = svc.ScoreGroup(cd, "physical", []string{"climbingStairs", "rememberingTasks"})
	require.NoError(t, err)
	assert.Equal(t, 8, total)

	total, err = svc.ScoreGroup(cd, "physical", nil)
	require.NoError(t, err)
	assert.Equal(t, 0, total)
}

func TestNewCatalog_RejectsIncompleteEntries(t *testing.T) {
	answer := func(*models.CaseData) string { return "" }

	tests := []struct {
		name     string
		question ActivityQuestion
	}{
		{"missing key", ActivityQuestion{Label: "L", ActivityType: "t", Answer: answer}},
		{"missing label", ActivityQuestion{Key: "k", ActivityType: "t", Answer: answer}},
		{"missing activity type", ActivityQuestion{Key: "k", Label: "L", Answer: answer}},
		{"missing accessor", ActivityQuestion{Key: "k", Label: "L", ActivityType: "t"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCatalog([]ActivityQuestion{tt.question})
			assert.Error(t, err)
		})
	}
}

func TestNewCatalog_RejectsDuplicateKeys(t *testing.T) {
	answer := func(*models.CaseData) string { return "" }
	_, err := NewCatalog([]ActivityQuestion{
		{Key: "k", Label: "A", ActivityType: "t", Answer: answer},
		{Key: "k", Label: "B", ActivityType: "t", Answer: answer},
	})
	assert.Error(t, err)
}

func TestValidateNoticeDates(t *testing.T) {
	tests := []struct {
		name    string
		start   string
		end     string
		invalid bool
	}{
		{"forwards period", "2024-01-01", "2024-06-01", false},
		{"blank dates", "", "", false},
		{"start only", "2024-01-01", "", false},
		{"inverted period", "2024-06-01", "2024-01-01", true},
		{"same day", "2024-01-01", "2024-01-01", true},
		{"unparseable start", "01/01/2024", "2024-06-01", true},
		{"unparseable end", "2024-01-01", "junk", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg, invalid := ValidateNoticeDates(&models.CaseData{StartDate: tt.start, EndDate: tt.end})
			assert.Equal(t, tt.invalid, invalid)
			if tt.invalid {
				assert.Equal(t, NoticeDatesError, msg)
			}
		})
	}
}
