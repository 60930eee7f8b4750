package builder

import (
	"fmt"
	"regexp"

	"github.com/google/uuid"
	dbmodels "talent-flow-backend/models/db"
)

// Операции конструктора анкеты. Каждая операция возвращает новое значение
// агрегата, не изменяя исходное и не разделяя с ним вложенные слайсы.
// Идентификаторы генерируются через uuid: id назначается при создании
// и далее не меняется

// SentinelNewID - id несохранённой анкеты
const SentinelNewID = "new"

const (
	defaultSectionTitle  = "New Section"
	defaultQuestionTitle = "New Question"
	defaultOptionText    = "New Option"
)

// Патчи обновлений: nil-поле означает "не менять"

type SectionPatch struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
}

type QuestionPatch struct {
	Type        *dbmodels.QuestionType     `json:"type,omitempty"`
	Title       *string                    `json:"title,omitempty"`
	Description *string                    `json:"description,omitempty"`
	Required    *bool                      `json:"required,omitempty"`
	Options     []dbmodels.QuestionOption  `json:"options,omitempty"`
	Validation  *dbmodels.ValidationRules  `json:"validation,omitempty"`
	Conditional *dbmodels.Conditional      `json:"conditional,omitempty"`
	// Сброс условия показа (Conditional=nil в патче означает "не менять")
	ClearConditional bool `json:"clearConditional,omitempty"`
}

type OptionPatch struct {
	Text  *string `json:"text,omitempty"`
	Value *string `json:"value,omitempty"`
}

// New создаёт пустую анкету для вакансии
func New(jobID string) dbmodels.Assessment {
	rec := dbmodels.Assessment{
		JobID:       jobID,
		Title:       "New Assessment",
		Description: "Assessment description",
		Sections:    dbmodels.AssessmentSections{},
		IsActive:    true,
	}
	rec.ID = SentinelNewID
	return rec
}

// AddSection добавляет секцию в конец, order равен текущему количеству секций
func AddSection(rec dbmodels.Assessment) dbmodels.Assessment {
	section := dbmodels.AssessmentSection{
		ID:        uuid.NewString(),
		Title:     defaultSectionTitle,
		Questions: []dbmodels.Question{},
		Order:     len(rec.Sections),
	}
	rec.Sections = append(cloneSections(rec.Sections), section)
	return rec
}

func UpdateSection(rec dbmodels.Assessment, sectionID string, patch SectionPatch) dbmodels.Assessment {
	sections := cloneSections(rec.Sections)
	for idx := range sections {
		if sections[idx].ID != sectionID {
			continue
		}
		if patch.Title != nil {
			sections[idx].Title = *patch.Title
		}
		if patch.Description != nil {
			sections[idx].Description = *patch.Description
		}
	}
	rec.Sections = sections
	return rec
}

// DeleteSection удаляет секцию вместе со всеми её вопросами,
// order остальных секций выравнивается по индексу
func DeleteSection(rec dbmodels.Assessment, sectionID string) dbmodels.Assessment {
	sections := dbmodels.AssessmentSections{}
	for _, section := range rec.Sections {
		if section.ID == sectionID {
			continue
		}
		section.Order = len(sections)
		section.Questions = cloneQuestions(section.Questions)
		sections = append(sections, section)
	}
	rec.Sections = sections
	return rec
}

// AddQuestion добавляет вопрос в конец секции,
// по умолчанию short-text и required=false
func AddQuestion(rec dbmodels.Assessment, sectionID string) dbmodels.Assessment {
	question := dbmodels.Question{
		ID:       uuid.NewString(),
		Type:     dbmodels.QuestionTypeShortText,
		Title:    defaultQuestionTitle,
		Required: false,
		Options:  []dbmodels.QuestionOption{},
	}
	sections := cloneSections(rec.Sections)
	for idx := range sections {
		if sections[idx].ID == sectionID {
			sections[idx].Questions = append(sections[idx].Questions, question)
		}
	}
	rec.Sections = sections
	return rec
}

func UpdateQuestion(rec dbmodels.Assessment, sectionID, questionID string, patch QuestionPatch) dbmodels.Assessment {
	sections := cloneSections(rec.Sections)
	for sIdx := range sections {
		if sections[sIdx].ID != sectionID {
			continue
		}
		for qIdx := range sections[sIdx].Questions {
			question := &sections[sIdx].Questions[qIdx]
			if question.ID != questionID {
				continue
			}
			if patch.Type != nil {
				question.Type = *patch.Type
			}
			if patch.Title != nil {
				question.Title = *patch.Title
			}
			if patch.Description != nil {
				question.Description = *patch.Description
			}
			if patch.Required != nil {
				question.Required = *patch.Required
			}
			if patch.Options != nil {
				question.Options = patch.Options
			}
			if patch.Validation != nil {
				question.Validation = patch.Validation
			}
			if patch.ClearConditional {
				question.Conditional = nil
			} else if patch.Conditional != nil {
				question.Conditional = patch.Conditional
			}
		}
	}
	rec.Sections = sections
	return rec
}

func DeleteQuestion(rec dbmodels.Assessment, sectionID, questionID string) dbmodels.Assessment {
	sections := cloneSections(rec.Sections)
	for idx := range sections {
		if sections[idx].ID != sectionID {
			continue
		}
		questions := []dbmodels.Question{}
		for _, question := range sections[idx].Questions {
			if question.ID == questionID {
				continue
			}
			questions = append(questions, question)
		}
		sections[idx].Questions = questions
	}
	rec.Sections = sections
	return rec
}

// AddOption добавляет вариант ответа, значение по умолчанию option-{количество}.
// После удалений такое значение может совпасть с существующим,
// дубликаты отсекаются проверкой при сохранении анкеты
func AddOption(rec dbmodels.Assessment, sectionID, questionID string) dbmodels.Assessment {
	sections := cloneSections(rec.Sections)
	for sIdx := range sections {
		if sections[sIdx].ID != sectionID {
			continue
		}
		for qIdx := range sections[sIdx].Questions {
			question := &sections[sIdx].Questions[qIdx]
			if question.ID != questionID {
				continue
			}
			option := dbmodels.QuestionOption{
				ID:    uuid.NewString(),
				Text:  defaultOptionText,
				Value: fmt.Sprintf("option-%d", len(question.Options)),
			}
			question.Options = append(cloneOptions(question.Options), option)
		}
	}
	rec.Sections = sections
	return rec
}

func UpdateOption(rec dbmodels.Assessment, sectionID, questionID, optionID string, patch OptionPatch) dbmodels.Assessment {
	sections := cloneSections(rec.Sections)
	for sIdx := range sections {
		if sections[sIdx].ID != sectionID {
			continue
		}
		for qIdx := range sections[sIdx].Questions {
			question := &sections[sIdx].Questions[qIdx]
			if question.ID != questionID {
				continue
			}
			options := cloneOptions(question.Options)
			for oIdx := range options {
				if options[oIdx].ID != optionID {
					continue
				}
				if patch.Text != nil {
					options[oIdx].Text = *patch.Text
				}
				if patch.Value != nil {
					options[oIdx].Value = *patch.Value
				}
			}
			question.Options = options
		}
	}
	rec.Sections = sections
	return rec
}

func DeleteOption(rec dbmodels.Assessment, sectionID, questionID, optionID string) dbmodels.Assessment {
	sections := cloneSections(rec.Sections)
	for sIdx := range sections {
		if sections[sIdx].ID != sectionID {
			continue
		}
		for qIdx := range sections[sIdx].Questions {
			question := &sections[sIdx].Questions[qIdx]
			if question.ID != questionID {
				continue
			}
			options := []dbmodels.QuestionOption{}
			for _, option := range question.Options {
				if option.ID == optionID {
					continue
				}
				options = append(options, option)
			}
			question.Options = options
		}
	}
	rec.Sections = sections
	return rec
}

// DuplicateOptionValues возвращает вопросы, в которых значения вариантов
// не уникальны внутри вопроса
func DuplicateOptionValues(rec dbmodels.Assessment) []string {
	titles := []string{}
	for _, question := range rec.AllQuestions() {
		if !question.Type.IsChoice() {
			continue
		}
		seen := map[string]struct{}{}
		for _, option := range question.Options {
			if _, ok := seen[option.Value]; ok {
				titles = append(titles, question.Title)
				break
			}
			seen[option.Value] = struct{}{}
		}
	}
	return titles
}

// InvalidPatterns возвращает названия вопросов с некомпилируемым
// регулярным выражением в правиле формата. Рантайм такие шаблоны
// молча пропускает, поэтому опечатка ловится при сохранении
func InvalidPatterns(rec dbmodels.Assessment) []string {
	titles := []string{}
	for _, question := range rec.AllQuestions() {
		if question.Type != dbmodels.QuestionTypeShortText || question.Validation == nil {
			continue
		}
		pattern := question.Validation.Pattern
		if pattern == "" {
			continue
		}
		if _, err := regexp.Compile(pattern); err != nil {
			titles = append(titles, question.Title)
		}
	}
	return titles
}

func cloneSections(sections dbmodels.AssessmentSections) dbmodels.AssessmentSections {
	result := make(dbmodels.AssessmentSections, len(sections))
	copy(result, sections)
	for idx := range result {
		result[idx].Questions = cloneQuestions(result[idx].Questions)
	}
	return result
}

func cloneQuestions(questions []dbmodels.Question) []dbmodels.Question {
	result := make([]dbmodels.Question, len(questions))
	copy(result, questions)
	return result
}

func cloneOptions(options []dbmodels.QuestionOption) []dbmodels.QuestionOption {
	result := make([]dbmodels.QuestionOption, len(options))
	copy(result, options)
	return result
}
