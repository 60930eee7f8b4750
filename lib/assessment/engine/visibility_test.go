package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	dbmodels "talent-flow-backend/models/db"
)

func sectionsWithConditional(conditional *dbmodels.Conditional) dbmodels.AssessmentSections {
	return dbmodels.AssessmentSections{
		{
			ID: "s1",
			Questions: []dbmodels.Question{
				{ID: "q1", Type: dbmodels.QuestionTypeSingleChoice, Title: "Есть опыт?"},
				{ID: "q2", Type: dbmodels.QuestionTypeLongText, Title: "Опишите опыт", Conditional: conditional},
			},
		},
	}
}

func TestVisibleQuestionsUnconditional(t *testing.T) {
	sections := sectionsWithConditional(nil)
	visible := VisibleQuestions(sections, dbmodels.AnswerSet{})
	assert.Contains(t, visible, "q1")
	assert.Contains(t, visible, "q2")
}

func TestVisibleQuestionsEquals(t *testing.T) {
	sections := sectionsWithConditional(&dbmodels.Conditional{
		DependsOn: "q1",
		Condition: dbmodels.ConditionEquals,
		Value:     "yes",
	})

	visible := VisibleQuestions(sections, dbmodels.AnswerSet{"q1": "yes"})
	assert.Contains(t, visible, "q2")

	visible = VisibleQuestions(sections, dbmodels.AnswerSet{"q1": "no"})
	assert.NotContains(t, visible, "q2")

	// без ответа на зависимость вопрос скрыт
	visible = VisibleQuestions(sections, dbmodels.AnswerSet{})
	assert.NotContains(t, visible, "q2")

	// equals сравнивает только строки
	visible = VisibleQuestions(sections, dbmodels.AnswerSet{"q1": []interface{}{"yes"}})
	assert.NotContains(t, visible, "q2")
}

func TestVisibleQuestionsNotEquals(t *testing.T) {
	sections := sectionsWithConditional(&dbmodels.Conditional{
		DependsOn: "q1",
		Condition: dbmodels.ConditionNotEquals,
		Value:     "no",
	})

	visible := VisibleQuestions(sections, dbmodels.AnswerSet{"q1": "yes"})
	assert.Contains(t, visible, "q2")

	visible = VisibleQuestions(sections, dbmodels.AnswerSet{"q1": "no"})
	assert.NotContains(t, visible, "q2")

	// пустой ответ скрывает вопрос даже при not-equals
	visible = VisibleQuestions(sections, dbmodels.AnswerSet{"q1": ""})
	assert.NotContains(t, visible, "q2")
	visible = VisibleQuestions(sections, dbmodels.AnswerSet{})
	assert.NotContains(t, visible, "q2")

	// нестроковый непустой ответ проходит not-equals
	visible = VisibleQuestions(sections, dbmodels.AnswerSet{"q1": []interface{}{"no"}})
	assert.Contains(t, visible, "q2")
}

func TestVisibleQuestionsContains(t *testing.T) {
	sections := sectionsWithConditional(&dbmodels.Conditional{
		DependsOn: "q1",
		Condition: dbmodels.ConditionContains,
		Value:     "Go",
	})

	// сравнение без учёта регистра по строковому представлению
	visible := VisibleQuestions(sections, dbmodels.AnswerSet{"q1": "golang и python"})
	assert.Contains(t, visible, "q2")

	visible = VisibleQuestions(sections, dbmodels.AnswerSet{"q1": []interface{}{"java", "GO"}})
	assert.Contains(t, visible, "q2")

	visible = VisibleQuestions(sections, dbmodels.AnswerSet{"q1": "python"})
	assert.NotContains(t, visible, "q2")

	visible = VisibleQuestions(sections, dbmodels.AnswerSet{"q1": ""})
	assert.NotContains(t, visible, "q2")
}

func TestVisibleQuestionsUnknownCondition(t *testing.T) {
	sections := sectionsWithConditional(&dbmodels.Conditional{
		DependsOn: "q1",
		Condition: "between",
		Value:     "x",
	})
	visible := VisibleQuestions(sections, dbmodels.AnswerSet{"q1": "x"})
	assert.NotContains(t, visible, "q2")
}

// Видимость плоская: условие оценивается по ответу на зависимость,
// даже если сама зависимость скрыта
func TestVisibleQuestionsOneHop(t *testing.T) {
	sections := dbmodels.AssessmentSections{
		{
			ID: "s1",
			Questions: []dbmodels.Question{
				{ID: "q1", Type: dbmodels.QuestionTypeSingleChoice},
				{ID: "q2", Type: dbmodels.QuestionTypeSingleChoice, Conditional: &dbmodels.Conditional{
					DependsOn: "q1", Condition: dbmodels.ConditionEquals, Value: "yes",
				}},
				{ID: "q3", Type: dbmodels.QuestionTypeLongText, Conditional: &dbmodels.Conditional{
					DependsOn: "q2", Condition: dbmodels.ConditionEquals, Value: "ok",
				}},
			},
		},
	}
	// q2 скрыт (q1 = no), но q3 виден, т.к. ответ на q2 остался в наборе
	visible := VisibleQuestions(sections, dbmodels.AnswerSet{"q1": "no", "q2": "ok"})
	assert.NotContains(t, visible, "q2")
	assert.Contains(t, visible, "q3")
}
