package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	dbmodels "talent-flow-backend/models/db"
)

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }

func TestValidateAnswerRequired(t *testing.T) {
	question := dbmodels.Question{ID: "q1", Type: dbmodels.QuestionTypeShortText, Required: true}

	assert.Equal(t, []string{MsgFieldRequired}, ValidateAnswer(question, nil))
	assert.Equal(t, []string{MsgFieldRequired}, ValidateAnswer(question, ""))
	assert.Equal(t, []string{MsgFieldRequired}, ValidateAnswer(question, "   "))
	assert.Empty(t, ValidateAnswer(question, "ответ"))

	question.Required = false
	assert.Empty(t, ValidateAnswer(question, nil))
}

func TestValidateAnswerLength(t *testing.T) {
	question := dbmodels.Question{
		ID:   "q1",
		Type: dbmodels.QuestionTypeShortText,
		Validation: &dbmodels.ValidationRules{
			MinLength: intPtr(3),
			MaxLength: intPtr(5),
		},
	}

	assert.Equal(t, []string{"Minimum length is 3 characters"}, ValidateAnswer(question, "ab"))
	assert.Equal(t, []string{"Maximum length is 5 characters"}, ValidateAnswer(question, "abcdef"))
	assert.Empty(t, ValidateAnswer(question, "abcd"))
	// длина считается в рунах, не в байтах
	assert.Empty(t, ValidateAnswer(question, "тест"))
}

func TestValidateAnswerPattern(t *testing.T) {
	question := dbmodels.Question{
		ID:         "q1",
		Type:       dbmodels.QuestionTypeShortText,
		Validation: &dbmodels.ValidationRules{Pattern: `^\d+$`},
	}
	assert.Equal(t, []string{MsgInvalidFormat}, ValidateAnswer(question, "abc"))
	assert.Empty(t, ValidateAnswer(question, "123"))

	// паттерн применяется только к short-text
	question.Type = dbmodels.QuestionTypeLongText
	assert.Empty(t, ValidateAnswer(question, "abc"))

	// некомпилируемый паттерн пропускается без нарушения
	question.Type = dbmodels.QuestionTypeShortText
	question.Validation = &dbmodels.ValidationRules{Pattern: `([`}
	assert.Empty(t, ValidateAnswer(question, "abc"))
}

func TestValidateAnswerNumeric(t *testing.T) {
	question := dbmodels.Question{
		ID:   "q1",
		Type: dbmodels.QuestionTypeNumeric,
		Validation: &dbmodels.ValidationRules{
			Min: floatPtr(1),
			Max: floatPtr(10.5),
		},
	}

	assert.Equal(t, []string{MsgNotValidNumber}, ValidateAnswer(question, "abc"))
	assert.Equal(t, []string{"Minimum value is 1"}, ValidateAnswer(question, "0"))
	assert.Equal(t, []string{"Maximum value is 10.5"}, ValidateAnswer(question, "11"))
	assert.Empty(t, ValidateAnswer(question, "5"))
	assert.Empty(t, ValidateAnswer(question, " 5.5 "))
}

func TestValidateAnswerRuleOrder(t *testing.T) {
	question := dbmodels.Question{
		ID:       "q1",
		Type:     dbmodels.QuestionTypeShortText,
		Required: true,
		Validation: &dbmodels.ValidationRules{
			MinLength: intPtr(5),
			Pattern:   `^\d+$`,
		},
	}
	violations := ValidateAnswer(question, "ab")
	require.Len(t, violations, 2)
	assert.Equal(t, "Minimum length is 5 characters", violations[0])
	assert.Equal(t, MsgInvalidFormat, violations[1])
}

func TestValidateAllOnlyVisible(t *testing.T) {
	sections := dbmodels.AssessmentSections{
		{
			ID: "s1",
			Questions: []dbmodels.Question{
				{ID: "q1", Type: dbmodels.QuestionTypeSingleChoice, Required: true},
				{ID: "q2", Type: dbmodels.QuestionTypeLongText, Required: true, Conditional: &dbmodels.Conditional{
					DependsOn: "q1", Condition: dbmodels.ConditionEquals, Value: "yes",
				}},
			},
		},
	}
	answers := dbmodels.AnswerSet{"q1": "no"}
	visible := VisibleQuestions(sections, answers)

	// скрытый q2 не проверяется, анкета валидна
	violations := ValidateAll(sections, answers, visible)
	assert.Empty(t, violations)

	// q2 стал видимым и не отвечен
	answers["q1"] = "yes"
	visible = VisibleQuestions(sections, answers)
	violations = ValidateAll(sections, answers, visible)
	require.Len(t, violations, 1)
	assert.Equal(t, MsgFieldRequired, violations["q2"])
}

func TestValidateAllFirstMessagePerQuestion(t *testing.T) {
	sections := dbmodels.AssessmentSections{
		{
			ID: "s1",
			Questions: []dbmodels.Question{
				{ID: "q1", Type: dbmodels.QuestionTypeShortText, Validation: &dbmodels.ValidationRules{
					MinLength: intPtr(5),
					Pattern:   `^\d+$`,
				}},
			},
		},
	}
	answers := dbmodels.AnswerSet{"q1": "ab"}
	violations := ValidateAll(sections, answers, VisibleQuestions(sections, answers))
	assert.Equal(t, "Minimum length is 5 characters", violations["q1"])
}
