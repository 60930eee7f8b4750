package assessmentapimodels

import (
	"github.com/pkg/errors"
	apimodels "talent-flow-backend/models/api"
	dbmodels "talent-flow-backend/models/db"
)

// Сохранение анкеты: payload - агрегат целиком, формат полей совпадает
// с форматом хранения и выдачи
type SaveRequest struct {
	dbmodels.Assessment
}

func (r SaveRequest) Validate() error {
	for _, section := range r.Sections {
		for _, question := range section.Questions {
			if question.ID == "" {
				return errors.New("у одного из вопросов анкеты отсутствует идентификатор")
			}
			if !question.Type.IsValid() {
				return errors.Errorf("неизвестный тип вопроса: %v", question.Type)
			}
			if question.Conditional != nil {
				switch question.Conditional.Condition {
				case dbmodels.ConditionEquals, dbmodels.ConditionNotEquals, dbmodels.ConditionContains:
				default:
					return errors.Errorf("неизвестное условие показа вопроса: %v", question.Conditional.Condition)
				}
			}
		}
	}
	return nil
}

type ListFilter struct {
	apimodels.Pagination
	JobID    string `json:"jobId,omitempty"`
	IsActive *bool  `json:"isActive,omitempty"`
	Search   string `json:"search,omitempty"`
}

type DuplicateRequest struct {
	JobID string `json:"jobId,omitempty"` // пусто - копия останется на той же вакансии
}

type SubmitRequest struct {
	CandidateID string             `json:"candidateId"`
	Responses   dbmodels.AnswerSet `json:"responses"`
}

func (r SubmitRequest) Validate() error {
	if r.CandidateID == "" {
		return errors.New("не указан идентификатор кандидата")
	}
	return nil
}

// Результат отправки: либо созданная запись ответов,
// либо карта нарушений вопрос -> первое сообщение
type SubmitResult struct {
	Response *dbmodels.AssessmentResponse `json:"response,omitempty"`
	Errors   map[string]string            `json:"errors,omitempty"`
}

type CompletionRequest struct {
	Responses dbmodels.AnswerSet `json:"responses"`
}

type CompletionView struct {
	Completion int `json:"completion"` // процент заполнения видимых вопросов
	Answered   int `json:"answered"`
	Total      int `json:"total"` // количество видимых вопросов
}

type SuggestRequest struct {
	JobID string `json:"jobId"`
}

func (r SuggestRequest) Validate() error {
	if r.JobID == "" {
		return errors.New("не указан идентификатор вакансии")
	}
	return nil
}

// Дескриптор загруженного файла, клиент сохраняет его как значение ответа
type FileAnswerView struct {
	Name         string `json:"name"`
	Size         int64  `json:"size"`
	Type         string `json:"type"`
	LastModified int64  `json:"lastModified"`
	StorageKey   string `json:"storageKey,omitempty"`
}
