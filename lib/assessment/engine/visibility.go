package engine

import (
	"strings"

	dbmodels "talent-flow-backend/models/db"
)

// VisibleQuestions возвращает множество идентификаторов вопросов,
// которые нужно показывать при текущем наборе ответов.
// Функция чистая, входные данные не изменяются.
//
// Видимость плоская: условие вычисляется по "сырому" ответу на вопрос-зависимость
// за один переход, без транзитивного разрешения цепочек условий. Вопрос, зависящий
// от скрытого вопроса, всё равно оценивается по его ответу - это контракт
// совместимости с исходным поведением, а не упущение
func VisibleQuestions(sections dbmodels.AssessmentSections, answers dbmodels.AnswerSet) map[string]struct{} {
	visible := map[string]struct{}{}
	for _, section := range sections {
		for _, question := range section.Questions {
			if question.Conditional == nil {
				visible[question.ID] = struct{}{}
				continue
			}
			dependentAnswer := answers[question.Conditional.DependsOn]
			if shouldShowQuestion(*question.Conditional, dependentAnswer) {
				visible[question.ID] = struct{}{}
			}
		}
	}
	return visible
}

// Отсутствующий ответ скрывает вопрос для любого вида условия,
// в том числе для not-equals
func shouldShowQuestion(conditional dbmodels.Conditional, dependentAnswer interface{}) bool {
	if !IsTruthy(dependentAnswer) {
		return false
	}
	answerStr, isString := dependentAnswer.(string)
	switch conditional.Condition {
	case dbmodels.ConditionEquals:
		return isString && answerStr == conditional.Value
	case dbmodels.ConditionNotEquals:
		return !isString || answerStr != conditional.Value
	case dbmodels.ConditionContains:
		return strings.Contains(
			strings.ToLower(AnswerString(dependentAnswer)),
			strings.ToLower(conditional.Value),
		)
	default:
		return false
	}
}
