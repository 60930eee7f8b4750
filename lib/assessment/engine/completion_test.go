package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	dbmodels "talent-flow-backend/models/db"
)

func TestCompletion(t *testing.T) {
	sections := dbmodels.AssessmentSections{
		{
			ID: "s1",
			Questions: []dbmodels.Question{
				{ID: "q1", Type: dbmodels.QuestionTypeShortText},
				{ID: "q2", Type: dbmodels.QuestionTypeShortText},
				{ID: "q3", Type: dbmodels.QuestionTypeShortText},
			},
		},
	}
	answers := dbmodels.AnswerSet{"q1": "a"}
	visible := VisibleQuestions(sections, answers)
	assert.Equal(t, 33, Completion(sections, answers, visible))

	answers["q2"] = "b"
	assert.Equal(t, 67, Completion(sections, answers, visible))

	answers["q3"] = "c"
	assert.Equal(t, 100, Completion(sections, answers, visible))
}

func TestCompletionNoVisibleQuestions(t *testing.T) {
	assert.Equal(t, 0, Completion(dbmodels.AssessmentSections{}, dbmodels.AnswerSet{}, map[string]struct{}{}))
}

// Скрытие вопроса с ответом не уменьшает процент заполнения
func TestCompletionHiddenAnsweredQuestion(t *testing.T) {
	sections := dbmodels.AssessmentSections{
		{
			ID: "s1",
			Questions: []dbmodels.Question{
				{ID: "q1", Type: dbmodels.QuestionTypeSingleChoice},
				{ID: "q2", Type: dbmodels.QuestionTypeLongText, Conditional: &dbmodels.Conditional{
					DependsOn: "q1", Condition: dbmodels.ConditionEquals, Value: "yes",
				}},
			},
		},
	}
	answers := dbmodels.AnswerSet{"q1": "yes", "q2": "опыт есть"}
	assert.Equal(t, 100, Completion(sections, answers, VisibleQuestions(sections, answers)))

	// ответ на q2 остался, но вопрос скрыт и из расчёта исключён
	answers["q1"] = "no"
	assert.Equal(t, 100, Completion(sections, answers, VisibleQuestions(sections, answers)))
}

func TestResponseScore(t *testing.T) {
	assert.Equal(t, 0, ResponseScore(dbmodels.AssessmentSections{}, dbmodels.AnswerSet{}))
	assert.Equal(t, 0, ResponseScore(nil, nil))

	sections := dbmodels.AssessmentSections{
		{
			ID: "s1",
			Questions: []dbmodels.Question{
				{ID: "q1", Type: dbmodels.QuestionTypeShortText},
				{ID: "q2", Type: dbmodels.QuestionTypeShortText},
			},
		},
		{
			ID: "s2",
			Questions: []dbmodels.Question{
				{ID: "q3", Type: dbmodels.QuestionTypeShortText},
				{ID: "q4", Type: dbmodels.QuestionTypeMultiChoice},
			},
		},
	}
	answers := dbmodels.AnswerSet{
		"q1": "a",
		"q2": "",
		"q3": nil,
		"q4": []interface{}{"x"},
	}
	assert.Equal(t, 50, ResponseScore(sections, answers))

	// делитель - все вопросы анкеты, а не только ключи набора ответов
	assert.Equal(t, 25, ResponseScore(sections, dbmodels.AnswerSet{"q1": "a"}))
	assert.Equal(t, 100, ResponseScore(sections, dbmodels.AnswerSet{
		"q1": "a", "q2": "b", "q3": "c", "q4": []interface{}{"x"},
	}))
}
