package dbmodels

import (
	"database/sql/driver"
	"encoding/json"
)

// Типы вопросов анкеты, набор закрытый
type QuestionType string

const (
	QuestionTypeSingleChoice QuestionType = "single-choice"
	QuestionTypeMultiChoice  QuestionType = "multi-choice"
	QuestionTypeShortText    QuestionType = "short-text"
	QuestionTypeLongText     QuestionType = "long-text"
	QuestionTypeNumeric      QuestionType = "numeric"
	QuestionTypeFileUpload   QuestionType = "file-upload"
)

func (t QuestionType) IsValid() bool {
	switch t {
	case QuestionTypeSingleChoice, QuestionTypeMultiChoice, QuestionTypeShortText,
		QuestionTypeLongText, QuestionTypeNumeric, QuestionTypeFileUpload:
		return true
	}
	return false
}

func (t QuestionType) IsChoice() bool {
	return t == QuestionTypeSingleChoice || t == QuestionTypeMultiChoice
}

func (t QuestionType) IsText() bool {
	return t == QuestionTypeShortText || t == QuestionTypeLongText
}

// Условия показа вопроса
type ConditionKind string

const (
	ConditionEquals    ConditionKind = "equals"
	ConditionNotEquals ConditionKind = "not-equals"
	ConditionContains  ConditionKind = "contains"
)

// Анкета по вакансии. Дерево секций хранится в jsonb
type Assessment struct {
	BaseModel
	JobID       string             `gorm:"type:varchar(36);index" json:"jobId"`
	Title       string             `json:"title"`
	Description string             `json:"description,omitempty"`
	Sections    AssessmentSections `gorm:"type:jsonb" json:"sections"`
	IsActive    bool               `gorm:"index" json:"isActive"`
}

type AssessmentSections []AssessmentSection

func (j AssessmentSections) Value() (driver.Value, error) {
	valueString, err := json.Marshal(j)
	return string(valueString), err
}

func (j *AssessmentSections) Scan(value interface{}) error {
	if err := json.Unmarshal(value.([]byte), &j); err != nil {
		return err
	}
	return nil
}

type AssessmentSection struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Questions   []Question `json:"questions"`
	Order       int        `json:"order"` // позиция секции, совпадает с индексом в массиве
}

type Question struct {
	ID          string           `json:"id"`
	Type        QuestionType     `json:"type"`
	Title       string           `json:"title"`
	Description string           `json:"description,omitempty"`
	Required    bool             `json:"required"`
	Options     []QuestionOption `json:"options,omitempty"`    // только для single-choice/multi-choice
	Validation  *ValidationRules `json:"validation,omitempty"` // набор правил зависит от типа
	Conditional *Conditional     `json:"conditional,omitempty"`
}

type QuestionOption struct {
	ID    string `json:"id"`
	Text  string `json:"text"`  // отображаемый текст
	Value string `json:"value"` // сохраняемое значение ответа
}

// nil-поле означает отсутствие правила
type ValidationRules struct {
	MinLength *int     `json:"minLength,omitempty"`
	MaxLength *int     `json:"maxLength,omitempty"`
	Min       *float64 `json:"min,omitempty"`
	Max       *float64 `json:"max,omitempty"`
	Pattern   string   `json:"pattern,omitempty"` // только для short-text
}

// Зависимость показа вопроса от ответа на другой вопрос.
// DependsOn - слабая ссылка, вопрос мог быть удалён
type Conditional struct {
	DependsOn string        `json:"dependsOn"`
	Condition ConditionKind `json:"condition"`
	Value     string        `json:"value"`
}

// AllQuestions возвращает вопросы всех секций в порядке обхода
func (j Assessment) AllQuestions() []Question {
	questions := []Question{}
	for _, section := range j.Sections {
		questions = append(questions, section.Questions...)
	}
	return questions
}

func (j Assessment) FindQuestion(questionID string) *Question {
	for _, section := range j.Sections {
		for idx := range section.Questions {
			if section.Questions[idx].ID == questionID {
				return &section.Questions[idx]
			}
		}
	}
	return nil
}
