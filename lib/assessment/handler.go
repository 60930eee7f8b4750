package assessment

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"talent-flow-backend/config"
	"talent-flow-backend/db"
	"talent-flow-backend/lib/assessment/builder"
	"talent-flow-backend/lib/assessment/engine"
	responsestore "talent-flow-backend/lib/assessment/response-store"
	assessmentstore "talent-flow-backend/lib/assessment/store"
	candidatestore "talent-flow-backend/lib/candidate/store"
	pdfexport "talent-flow-backend/lib/export/pdf"
	xlsexport "talent-flow-backend/lib/export/xls"
	yagptclient "talent-flow-backend/lib/gpt/yagpt-client"
	jobstore "talent-flow-backend/lib/job/store"
	"talent-flow-backend/lib/utils/lock"
	assessmentapimodels "talent-flow-backend/models/api/assessment"
	dbmodels "talent-flow-backend/models/db"

	"github.com/google/uuid"
)

type Provider interface {
	Save(rec dbmodels.Assessment) (result *dbmodels.Assessment, hMsg string, err error)
	GetByID(id string) (*dbmodels.Assessment, error)
	GetByJobID(jobID string) (*dbmodels.Assessment, error)
	List(filter assessmentapimodels.ListFilter) ([]dbmodels.Assessment, int64, error)
	Delete(id string) error
	Duplicate(id, newJobID string) (result *dbmodels.Assessment, hMsg string, err error)
	Submit(assessmentID string, req assessmentapimodels.SubmitRequest) (result assessmentapimodels.SubmitResult, hMsg string, err error)
	Completion(assessmentID string, answers dbmodels.AnswerSet) (view *assessmentapimodels.CompletionView, hMsg string, err error)
	Responses(assessmentID string) ([]dbmodels.AssessmentResponse, error)
	ExportResponsesXLS(assessmentID string) (file *bytes.Buffer, hMsg string, err error)
	GenerateForm(assessmentID string) (pdfFile []byte, hMsg string, err error)
	SuggestQuestions(jobID string) (questions []dbmodels.Question, hMsg string, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		aStore:    assessmentstore.NewInstance(db.DB),
		respStore: responsestore.NewInstance(db.DB),
		jobStore:  jobstore.NewInstance(db.DB),
		candStore: candidatestore.NewInstance(db.DB),
	}
}

type impl struct {
	aStore    assessmentstore.Provider
	respStore responsestore.Provider
	jobStore  jobstore.Provider
	candStore candidatestore.Provider
}

const saveLockWait = 10 * time.Second

// Save сохраняет анкету целиком (create-or-update по id).
// Сохранения одной анкеты сериализуются по id, чтобы два конкурентных
// запроса не перемешали частичные обновления. Побеждает последняя запись,
// оптимистичных блокировок нет - редактор анкеты предполагается один
func (i impl) Save(rec dbmodels.Assessment) (*dbmodels.Assessment, string, error) {
	rec.Title = strings.TrimSpace(rec.Title)
	if rec.Title == "" {
		return nil, "не указано название анкеты", nil
	}
	if rec.JobID == "" {
		return nil, "не указана вакансия анкеты", nil
	}
	jobRec, err := i.jobStore.GetByID(rec.JobID)
	if err != nil {
		return nil, "", errors.Wrap(err, "ошибка получения вакансии")
	}
	if jobRec == nil {
		return nil, "вакансия не найдена", nil
	}
	if titles := builder.DuplicateOptionValues(rec); len(titles) != 0 {
		return nil, fmt.Sprintf("значения вариантов ответа дублируются в вопросах: %v", strings.Join(titles, "; ")), nil
	}
	if titles := builder.InvalidPatterns(rec); len(titles) != 0 {
		return nil, fmt.Sprintf("некорректное регулярное выражение в вопросах: %v", strings.Join(titles, "; ")), nil
	}
	// порядок секций выравнивается по индексу
	for idx := range rec.Sections {
		rec.Sections[idx].Order = idx
	}
	if rec.ID == builder.SentinelNewID {
		rec.ID = ""
	}
	rec.UpdatedAt = time.Now()

	lockKey := "assessment-save:" + rec.ID
	if rec.ID == "" {
		lockKey = "assessment-save:job:" + rec.JobID
	}
	var savedID string
	success, err := lock.WithDelay(context.Background(), lockKey, saveLockWait, func() error {
		var saveErr error
		savedID, saveErr = i.aStore.Save(rec)
		return saveErr
	})
	if err != nil {
		return nil, "", errors.Wrap(err, "ошибка сохранения анкеты")
	}
	if !success {
		return nil, "анкета уже сохраняется, повторите попытку", nil
	}
	result, err := i.aStore.GetByID(savedID)
	if err != nil {
		return nil, "", errors.Wrap(err, "ошибка получения сохранённой анкеты")
	}
	return result, "", nil
}

func (i impl) GetByID(id string) (*dbmodels.Assessment, error) {
	return i.aStore.GetByID(id)
}

func (i impl) GetByJobID(jobID string) (*dbmodels.Assessment, error) {
	return i.aStore.GetByJobID(jobID)
}

func (i impl) List(filter assessmentapimodels.ListFilter) ([]dbmodels.Assessment, int64, error) {
	page, limit := filter.GetPage()
	return i.aStore.List(assessmentstore.ListFilter{
		JobID:    filter.JobID,
		IsActive: filter.IsActive,
		Search:   filter.Search,
		Page:     page,
		Limit:    limit,
	})
}

func (i impl) Delete(id string) error {
	return i.aStore.Delete(id)
}

// Duplicate создаёт копию анкеты с новым id, копия неактивна
func (i impl) Duplicate(id, newJobID string) (*dbmodels.Assessment, string, error) {
	rec, err := i.aStore.GetByID(id)
	if err != nil {
		return nil, "", errors.Wrap(err, "ошибка получения анкеты")
	}
	if rec == nil {
		return nil, "анкета не найдена", nil
	}
	copyRec := *rec
	copyRec.BaseModel = dbmodels.BaseModel{}
	copyRec.Title = "Copy of " + rec.Title
	copyRec.IsActive = false
	if newJobID != "" {
		copyRec.JobID = newJobID
	}
	return i.Save(copyRec)
}

// Submit валидирует видимые вопросы и при успехе создаёт неизменяемую
// запись ответов. Нарушения валидации возвращаются в result.Errors,
// запись при этом не создаётся
func (i impl) Submit(assessmentID string, req assessmentapimodels.SubmitRequest) (assessmentapimodels.SubmitResult, string, error) {
	result := assessmentapimodels.SubmitResult{}
	rec, err := i.aStore.GetByID(assessmentID)
	if err != nil {
		return result, "", errors.Wrap(err, "ошибка получения анкеты")
	}
	if rec == nil {
		return result, "анкета не найдена", nil
	}
	if !rec.IsActive {
		return result, "анкета не активна", nil
	}
	candRec, err := i.candStore.GetByID(req.CandidateID)
	if err != nil {
		return result, "", errors.Wrap(err, "ошибка получения кандидата")
	}
	if candRec == nil {
		return result, "кандидат не найден", nil
	}
	// повторная отправка запрещена, записи ответов неизменяемы
	existing, err := i.respStore.GetByCandidate(rec.ID, req.CandidateID)
	if err != nil {
		return result, "", errors.Wrap(err, "ошибка проверки отправленных ответов")
	}
	if existing != nil {
		return result, "кандидат уже отправил ответы по этой анкете", nil
	}

	visible := engine.VisibleQuestions(rec.Sections, req.Responses)
	violations := engine.ValidateAll(rec.Sections, req.Responses, visible)
	if len(violations) != 0 {
		result.Errors = violations
		return result, "", nil
	}

	respRec := dbmodels.AssessmentResponse{
		AssessmentID: rec.ID,
		CandidateID:  req.CandidateID,
		Responses:    req.Responses,
		SubmittedAt:  time.Now(),
		Score:        engine.ResponseScore(rec.Sections, req.Responses),
	}
	respID, err := i.respStore.Create(respRec)
	if err != nil {
		return result, "", errors.Wrap(err, "ошибка сохранения ответов")
	}
	saved, err := i.respStore.GetByID(respID)
	if err != nil {
		return result, "", errors.Wrap(err, "ошибка получения сохранённых ответов")
	}
	result.Response = saved
	log.
		WithField("assessment_id", rec.ID).
		WithField("candidate_id", req.CandidateID).
		Info("анкета заполнена кандидатом")
	return result, "", nil
}

func (i impl) Completion(assessmentID string, answers dbmodels.AnswerSet) (*assessmentapimodels.CompletionView, string, error) {
	rec, err := i.aStore.GetByID(assessmentID)
	if err != nil {
		return nil, "", errors.Wrap(err, "ошибка получения анкеты")
	}
	if rec == nil {
		return nil, "анкета не найдена", nil
	}
	visible := engine.VisibleQuestions(rec.Sections, answers)
	answered := 0
	for questionID := range visible {
		if engine.IsAnswered(answers[questionID]) {
			answered++
		}
	}
	view := assessmentapimodels.CompletionView{
		Completion: engine.Completion(rec.Sections, answers, visible),
		Answered:   answered,
		Total:      len(visible),
	}
	return &view, "", nil
}

func (i impl) Responses(assessmentID string) ([]dbmodels.AssessmentResponse, error) {
	return i.respStore.ListByAssessmentID(assessmentID)
}

func (i impl) ExportResponsesXLS(assessmentID string) (*bytes.Buffer, string, error) {
	rec, err := i.aStore.GetByID(assessmentID)
	if err != nil {
		return nil, "", errors.Wrap(err, "ошибка получения анкеты")
	}
	if rec == nil {
		return nil, "анкета не найдена", nil
	}
	list, err := i.respStore.ListByAssessmentID(assessmentID)
	if err != nil {
		return nil, "", errors.Wrap(err, "ошибка получения ответов")
	}
	candidateNames := map[string]string{}
	for _, item := range list {
		if _, ok := candidateNames[item.CandidateID]; ok {
			continue
		}
		candRec, err := i.candStore.GetByID(item.CandidateID)
		if err != nil {
			return nil, "", errors.Wrap(err, "ошибка получения кандидата")
		}
		if candRec != nil {
			candidateNames[item.CandidateID] = candRec.Name
		}
	}
	file, err := xlsexport.Instance.ExportResponseList(*rec, list, candidateNames)
	if err != nil {
		return nil, "", errors.Wrap(err, "ошибка выгрузки ответов в xlsx")
	}
	return file, "", nil
}

func (i impl) GenerateForm(assessmentID string) ([]byte, string, error) {
	rec, err := i.aStore.GetByID(assessmentID)
	if err != nil {
		return nil, "", errors.Wrap(err, "ошибка получения анкеты")
	}
	if rec == nil {
		return nil, "анкета не найдена", nil
	}
	pdfFile, err := pdfexport.GenerateAssessmentForm(*rec)
	if err != nil {
		return nil, "", errors.Wrap(err, "ошибка формирования печатной формы анкеты")
	}
	return pdfFile, "", nil
}

// SuggestQuestions генерирует через YandexGPT черновые вопросы
// по описанию вакансии. Черновики не сохраняются, их правит HR в конструкторе
func (i impl) SuggestQuestions(jobID string) ([]dbmodels.Question, string, error) {
	if config.Conf.YandexGPT.IAMToken == "" {
		return nil, "генерация вопросов не настроена", nil
	}
	jobRec, err := i.jobStore.GetByID(jobID)
	if err != nil {
		return nil, "", errors.Wrap(err, "ошибка получения вакансии")
	}
	if jobRec == nil {
		return nil, "вакансия не найдена", nil
	}
	prompt := "Ты - рекрутер. Составь вопросы для анкеты кандидата по вакансии. " +
		"Верни только список вопросов, каждый вопрос с новой строки, без нумерации"
	text := fmt.Sprintf("Вакансия: %s. Описание: %s", jobRec.Title, jobRec.Description)
	generated, err := yagptclient.
		NewClient(config.Conf.YandexGPT.IAMToken, config.Conf.YandexGPT.CatalogID).
		GenerateByPromtAndText(prompt, text)
	if err != nil {
		return nil, "", errors.Wrap(err, "ошибка генерации вопросов через YandexGPT")
	}
	questions := []dbmodels.Question{}
	for _, line := range strings.Split(generated, "\n") {
		title := strings.TrimSpace(line)
		if title == "" {
			continue
		}
		questions = append(questions, dbmodels.Question{
			ID:       uuid.NewString(),
			Type:     dbmodels.QuestionTypeLongText,
			Title:    title,
			Required: false,
		})
	}
	return questions, "", nil
}
