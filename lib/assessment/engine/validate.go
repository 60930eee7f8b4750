package engine

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	dbmodels "talent-flow-backend/models/db"
)

// Сообщения показываются кандидату, текст зафиксирован контрактом с фронтом
const (
	MsgFieldRequired  = "This field is required"
	MsgInvalidFormat  = "Invalid format"
	MsgNotValidNumber = "Must be a valid number"
)

// ValidateAnswer проверяет ответ на один вопрос и возвращает нарушения
// в фиксированном порядке правил. Пустой список - ответ валиден.
// Вызывающий код обычно показывает только первое сообщение
func ValidateAnswer(question dbmodels.Question, answer interface{}) []string {
	violations := []string{}
	if question.Required && !IsAnswered(answer) {
		violations = append(violations, MsgFieldRequired)
	}
	if !IsTruthy(answer) || question.Validation == nil {
		return violations
	}
	rules := *question.Validation

	if question.Type.IsText() {
		length := utf8.RuneCountInString(AnswerString(answer))
		if rules.MinLength != nil && length < *rules.MinLength {
			violations = append(violations, fmt.Sprintf("Minimum length is %d characters", *rules.MinLength))
		}
		if rules.MaxLength != nil && length > *rules.MaxLength {
			violations = append(violations, fmt.Sprintf("Maximum length is %d characters", *rules.MaxLength))
		}
		if question.Type == dbmodels.QuestionTypeShortText && rules.Pattern != "" {
			// некомпилируемый шаблон пропускается: валидность шаблонов
			// проверяется при сохранении анкеты, на рантайме кандидата
			// битый шаблон не должен ронять отправку
			re, err := regexp.Compile(rules.Pattern)
			if err == nil && !re.MatchString(AnswerString(answer)) {
				violations = append(violations, MsgInvalidFormat)
			}
		}
	}

	if question.Type == dbmodels.QuestionTypeNumeric {
		numValue, err := strconv.ParseFloat(strings.TrimSpace(AnswerString(answer)), 64)
		if err != nil {
			violations = append(violations, MsgNotValidNumber)
		} else {
			if rules.Min != nil && numValue < *rules.Min {
				violations = append(violations, fmt.Sprintf("Minimum value is %s", formatNumber(*rules.Min)))
			}
			if rules.Max != nil && numValue > *rules.Max {
				violations = append(violations, fmt.Sprintf("Maximum value is %s", formatNumber(*rules.Max)))
			}
		}
	}
	return violations
}

// ValidateAll проверяет только видимые вопросы и собирает по каждому
// первое сообщение. Отправка анкеты допустима, если карта пустая
func ValidateAll(sections dbmodels.AssessmentSections, answers dbmodels.AnswerSet, visible map[string]struct{}) map[string]string {
	result := map[string]string{}
	for _, section := range sections {
		for _, question := range section.Questions {
			if _, ok := visible[question.ID]; !ok {
				continue
			}
			violations := ValidateAnswer(question, answers[question.ID])
			if len(violations) > 0 {
				result[question.ID] = violations[0]
			}
		}
	}
	return result
}
