package engine

import (
	"strconv"
	"strings"
)

// Значения ответов приходят из jsonb/json как interface{}:
// строка (текст, single-choice, numeric), []interface{} (multi-choice),
// map[string]interface{} (дескриптор файла для file-upload)

// IsTruthy повторяет семантику проверки наличия ответа во фронтовой версии:
// пустая строка, 0 и false считаются отсутствием, пустой массив - наличием
func IsTruthy(answer interface{}) bool {
	switch v := answer.(type) {
	case nil:
		return false
	case string:
		return v != ""
	case bool:
		return v
	case float64:
		return v != 0
	case int:
		return v != 0
	default:
		return true
	}
}

// IsAnswered - тест "вопрос отвечен", общий для required-валидации и прогресса:
// ответ присутствует и его строковое представление не пустое после trim.
// Для multi-choice пустой массив означает отсутствие ответа
func IsAnswered(answer interface{}) bool {
	if !IsTruthy(answer) {
		return false
	}
	return strings.TrimSpace(AnswerString(answer)) != ""
}

// AnswerString приводит ответ к строке для сравнений и выгрузок.
// Массив склеивается через запятую, у файла берётся имя
func AnswerString(answer interface{}) string {
	switch v := answer.(type) {
	case nil:
		return ""
	case string:
		return v
	case []string:
		return strings.Join(v, ",")
	case []interface{}:
		parts := make([]string, 0, len(v))
		for _, item := range v {
			parts = append(parts, AnswerString(item))
		}
		return strings.Join(parts, ",")
	case map[string]interface{}:
		name, _ := v["name"].(string)
		return name
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	default:
		return ""
	}
}

func formatNumber(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}
