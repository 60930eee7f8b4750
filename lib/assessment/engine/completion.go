package engine

import (
	"math"

	dbmodels "talent-flow-backend/models/db"
)

// Completion - процент заполненных среди видимых вопросов, округлённый до целого.
// При пустом видимом множестве возвращает 0
func Completion(sections dbmodels.AssessmentSections, answers dbmodels.AnswerSet, visible map[string]struct{}) int {
	total := 0
	answered := 0
	for _, section := range sections {
		for _, question := range section.Questions {
			if _, ok := visible[question.ID]; !ok {
				continue
			}
			total++
			if IsAnswered(answers[question.ID]) {
				answered++
			}
		}
	}
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(answered) / float64(total) * 100))
}

// ResponseScore - грубая сводная метрика отправленных ответов:
// доля отвеченных вопросов от общего числа вопросов анкеты,
// скрытые вопросы входят в знаменатель.
// Это не оценка правильности, ключа верных ответов в системе нет
func ResponseScore(sections dbmodels.AssessmentSections, answers dbmodels.AnswerSet) int {
	total := 0
	answered := 0
	for _, section := range sections {
		for _, question := range section.Questions {
			total++
			if IsAnswered(answers[question.ID]) {
				answered++
			}
		}
	}
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(answered) / float64(total) * 100))
}
