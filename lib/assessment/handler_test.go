package assessment

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"talent-flow-backend/lib/assessment/engine"
	assessmentstore "talent-flow-backend/lib/assessment/store"
	jobstore "talent-flow-backend/lib/job/store"
	assessmentapimodels "talent-flow-backend/models/api/assessment"
	dbmodels "talent-flow-backend/models/db"
)

// Фейковые хранилища в памяти, контракт повторяет store-пакеты:
// отсутствующая запись возвращается как (nil, nil)

type fakeAssessmentStore struct {
	recs map[string]dbmodels.Assessment
}

func (f *fakeAssessmentStore) Save(rec dbmodels.Assessment) (string, error) {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
		rec.CreatedAt = time.Now()
	}
	rec.UpdatedAt = time.Now()
	f.recs[rec.ID] = rec
	return rec.ID, nil
}

func (f *fakeAssessmentStore) GetByID(id string) (*dbmodels.Assessment, error) {
	rec, ok := f.recs[id]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

func (f *fakeAssessmentStore) GetByJobID(jobID string) (*dbmodels.Assessment, error) {
	for _, rec := range f.recs {
		if rec.JobID == jobID {
			result := rec
			return &result, nil
		}
	}
	return nil, nil
}

func (f *fakeAssessmentStore) List(filter assessmentstore.ListFilter) ([]dbmodels.Assessment, int64, error) {
	list := []dbmodels.Assessment{}
	for _, rec := range f.recs {
		list = append(list, rec)
	}
	return list, int64(len(list)), nil
}

func (f *fakeAssessmentStore) Delete(id string) error {
	delete(f.recs, id)
	return nil
}

type fakeResponseStore struct {
	recs map[string]dbmodels.AssessmentResponse
}

func (f *fakeResponseStore) Create(rec dbmodels.AssessmentResponse) (string, error) {
	rec.ID = uuid.NewString()
	f.recs[rec.ID] = rec
	return rec.ID, nil
}

func (f *fakeResponseStore) GetByID(id string) (*dbmodels.AssessmentResponse, error) {
	rec, ok := f.recs[id]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

func (f *fakeResponseStore) ListByAssessmentID(assessmentID string) ([]dbmodels.AssessmentResponse, error) {
	list := []dbmodels.AssessmentResponse{}
	for _, rec := range f.recs {
		if rec.AssessmentID == assessmentID {
			list = append(list, rec)
		}
	}
	return list, nil
}

func (f *fakeResponseStore) GetByCandidate(assessmentID, candidateID string) (*dbmodels.AssessmentResponse, error) {
	for _, rec := range f.recs {
		if rec.AssessmentID == assessmentID && rec.CandidateID == candidateID {
			result := rec
			return &result, nil
		}
	}
	return nil, nil
}

type fakeJobStore struct {
	recs map[string]dbmodels.Job
}

func (f *fakeJobStore) Save(rec dbmodels.Job) (string, error) {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	f.recs[rec.ID] = rec
	return rec.ID, nil
}

func (f *fakeJobStore) GetByID(id string) (*dbmodels.Job, error) {
	rec, ok := f.recs[id]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

func (f *fakeJobStore) List(filter jobstore.ListFilter) ([]dbmodels.Job, int64, error) {
	return nil, 0, nil
}

func (f *fakeJobStore) Delete(id string) error {
	delete(f.recs, id)
	return nil
}

type fakeCandidateStore struct {
	recs map[string]dbmodels.Candidate
}

func (f *fakeCandidateStore) Save(rec dbmodels.Candidate) (string, error) {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	f.recs[rec.ID] = rec
	return rec.ID, nil
}

func (f *fakeCandidateStore) GetByID(id string) (*dbmodels.Candidate, error) {
	rec, ok := f.recs[id]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

func (f *fakeCandidateStore) ListNotInvited(limit int) ([]dbmodels.Candidate, error) {
	return nil, nil
}

func (f *fakeCandidateStore) SetInvited(id string) error {
	return nil
}

func newTestHandler() (impl, *fakeAssessmentStore, *fakeResponseStore, *fakeJobStore, *fakeCandidateStore) {
	aStore := &fakeAssessmentStore{recs: map[string]dbmodels.Assessment{}}
	respStore := &fakeResponseStore{recs: map[string]dbmodels.AssessmentResponse{}}
	jStore := &fakeJobStore{recs: map[string]dbmodels.Job{}}
	cStore := &fakeCandidateStore{recs: map[string]dbmodels.Candidate{}}
	handler := impl{
		aStore:    aStore,
		respStore: respStore,
		jobStore:  jStore,
		candStore: cStore,
	}
	return handler, aStore, respStore, jStore, cStore
}

func addJob(t *testing.T, jStore *fakeJobStore) string {
	jobID, err := jStore.Save(dbmodels.Job{Title: "Go разработчик"})
	require.NoError(t, err)
	return jobID
}

func TestSaveAssignsIDAndStampsUpdatedAt(t *testing.T) {
	handler, _, _, jStore, _ := newTestHandler()
	jobID := addJob(t, jStore)

	rec := dbmodels.Assessment{JobID: jobID, Title: "Анкета"}
	rec.ID = "new"
	saved, hMsg, err := handler.Save(rec)
	require.NoError(t, err)
	require.Empty(t, hMsg)
	require.NotNil(t, saved)
	assert.NotEmpty(t, saved.ID)
	assert.NotEqual(t, "new", saved.ID)
	assert.False(t, saved.UpdatedAt.IsZero())

	// повторное сохранение не меняет id
	resaved, hMsg, err := handler.Save(*saved)
	require.NoError(t, err)
	require.Empty(t, hMsg)
	assert.Equal(t, saved.ID, resaved.ID)
}

func TestSaveValidation(t *testing.T) {
	handler, _, _, jStore, _ := newTestHandler()
	jobID := addJob(t, jStore)

	rec := dbmodels.Assessment{JobID: jobID, Title: "   "}
	saved, hMsg, err := handler.Save(rec)
	require.NoError(t, err)
	assert.Nil(t, saved)
	assert.Equal(t, "не указано название анкеты", hMsg)

	rec = dbmodels.Assessment{Title: "Анкета"}
	_, hMsg, err = handler.Save(rec)
	require.NoError(t, err)
	assert.Equal(t, "не указана вакансия анкеты", hMsg)

	rec = dbmodels.Assessment{JobID: "нет-такой", Title: "Анкета"}
	_, hMsg, err = handler.Save(rec)
	require.NoError(t, err)
	assert.Equal(t, "вакансия не найдена", hMsg)
}

func TestSaveRejectsDuplicateOptionValues(t *testing.T) {
	handler, _, _, jStore, _ := newTestHandler()
	jobID := addJob(t, jStore)

	rec := dbmodels.Assessment{
		JobID: jobID,
		Title: "Анкета",
		Sections: dbmodels.AssessmentSections{
			{
				ID: "s1",
				Questions: []dbmodels.Question{
					{
						ID:    "q1",
						Type:  dbmodels.QuestionTypeSingleChoice,
						Title: "Выбор",
						Options: []dbmodels.QuestionOption{
							{ID: "o1", Value: "a"},
							{ID: "o2", Value: "a"},
						},
					},
				},
			},
		},
	}
	saved, hMsg, err := handler.Save(rec)
	require.NoError(t, err)
	assert.Nil(t, saved)
	assert.Contains(t, hMsg, "Выбор")
}

// Опечатка в регулярном выражении ловится при сохранении,
// рантайм битые шаблоны не проверяет
func TestSaveRejectsInvalidPattern(t *testing.T) {
	handler, _, _, jStore, _ := newTestHandler()
	jobID := addJob(t, jStore)

	rec := dbmodels.Assessment{
		JobID: jobID,
		Title: "Анкета",
		Sections: dbmodels.AssessmentSections{
			{
				ID: "s1",
				Questions: []dbmodels.Question{
					{
						ID:         "q1",
						Type:       dbmodels.QuestionTypeShortText,
						Title:      "Почта",
						Validation: &dbmodels.ValidationRules{Pattern: `[a-z`},
					},
				},
			},
		},
	}
	saved, hMsg, err := handler.Save(rec)
	require.NoError(t, err)
	assert.Nil(t, saved)
	assert.Contains(t, hMsg, "Почта")
}

func TestDuplicate(t *testing.T) {
	handler, _, _, jStore, _ := newTestHandler()
	jobID := addJob(t, jStore)

	original, hMsg, err := handler.Save(dbmodels.Assessment{JobID: jobID, Title: "Анкета", IsActive: true})
	require.NoError(t, err)
	require.Empty(t, hMsg)

	copyRec, hMsg, err := handler.Duplicate(original.ID, "")
	require.NoError(t, err)
	require.Empty(t, hMsg)
	assert.NotEqual(t, original.ID, copyRec.ID)
	assert.Equal(t, "Copy of Анкета", copyRec.Title)
	assert.Equal(t, jobID, copyRec.JobID)
	assert.False(t, copyRec.IsActive)

	_, hMsg, err = handler.Duplicate("нет-такой", "")
	require.NoError(t, err)
	assert.Equal(t, "анкета не найдена", hMsg)
}

func submitFixture(t *testing.T) (impl, string, string, *fakeResponseStore) {
	handler, _, respStore, jStore, cStore := newTestHandler()
	jobID := addJob(t, jStore)
	candidateID, err := cStore.Save(dbmodels.Candidate{Name: "Иванов Иван", JobID: jobID})
	require.NoError(t, err)

	rec := dbmodels.Assessment{
		JobID:    jobID,
		Title:    "Анкета",
		IsActive: true,
		Sections: dbmodels.AssessmentSections{
			{
				ID: "s1",
				Questions: []dbmodels.Question{
					{ID: "q1", Type: dbmodels.QuestionTypeSingleChoice, Title: "Есть опыт?", Required: true},
					{ID: "q2", Type: dbmodels.QuestionTypeLongText, Title: "Опишите опыт", Required: true, Conditional: &dbmodels.Conditional{
						DependsOn: "q1", Condition: dbmodels.ConditionEquals, Value: "yes",
					}},
				},
			},
		},
	}
	saved, hMsg, err := handler.Save(rec)
	require.NoError(t, err)
	require.Empty(t, hMsg)
	return handler, saved.ID, candidateID, respStore
}

func TestSubmitValidationErrors(t *testing.T) {
	handler, assessmentID, candidateID, respStore := submitFixture(t)

	// q2 виден (q1 = yes) и не отвечен, запись не создаётся
	result, hMsg, err := handler.Submit(assessmentID, assessmentapimodels.SubmitRequest{
		CandidateID: candidateID,
		Responses:   dbmodels.AnswerSet{"q1": "yes"},
	})
	require.NoError(t, err)
	require.Empty(t, hMsg)
	assert.Nil(t, result.Response)
	assert.Equal(t, engine.MsgFieldRequired, result.Errors["q2"])
	assert.Empty(t, respStore.recs)
}

func TestSubmitHiddenQuestionNotValidated(t *testing.T) {
	handler, assessmentID, candidateID, _ := submitFixture(t)

	// q1 = no скрывает обязательный q2, отправка проходит
	result, hMsg, err := handler.Submit(assessmentID, assessmentapimodels.SubmitRequest{
		CandidateID: candidateID,
		Responses:   dbmodels.AnswerSet{"q1": "no"},
	})
	require.NoError(t, err)
	require.Empty(t, hMsg)
	require.NotNil(t, result.Response)
	assert.Empty(t, result.Errors)
	assert.Equal(t, assessmentID, result.Response.AssessmentID)
	assert.Equal(t, candidateID, result.Response.CandidateID)
	// скрытый q2 остаётся в знаменателе, отвечен 1 вопрос из 2
	assert.Equal(t, 50, result.Response.Score)
	assert.False(t, result.Response.SubmittedAt.IsZero())
}

func TestSubmitRejectsRepeatedSubmission(t *testing.T) {
	handler, assessmentID, candidateID, _ := submitFixture(t)

	_, hMsg, err := handler.Submit(assessmentID, assessmentapimodels.SubmitRequest{
		CandidateID: candidateID,
		Responses:   dbmodels.AnswerSet{"q1": "no"},
	})
	require.NoError(t, err)
	require.Empty(t, hMsg)

	_, hMsg, err = handler.Submit(assessmentID, assessmentapimodels.SubmitRequest{
		CandidateID: candidateID,
		Responses:   dbmodels.AnswerSet{"q1": "no"},
	})
	require.NoError(t, err)
	assert.Equal(t, "кандидат уже отправил ответы по этой анкете", hMsg)
}

func TestSubmitGuards(t *testing.T) {
	handler, assessmentID, candidateID, _ := submitFixture(t)

	_, hMsg, err := handler.Submit("нет-такой", assessmentapimodels.SubmitRequest{CandidateID: candidateID})
	require.NoError(t, err)
	assert.Equal(t, "анкета не найдена", hMsg)

	_, hMsg, err = handler.Submit(assessmentID, assessmentapimodels.SubmitRequest{CandidateID: "нет-такого"})
	require.NoError(t, err)
	assert.Equal(t, "кандидат не найден", hMsg)

	rec, err := handler.GetByID(assessmentID)
	require.NoError(t, err)
	rec.IsActive = false
	_, hMsg, err = handler.Save(*rec)
	require.NoError(t, err)
	require.Empty(t, hMsg)

	_, hMsg, err = handler.Submit(assessmentID, assessmentapimodels.SubmitRequest{CandidateID: candidateID})
	require.NoError(t, err)
	assert.Equal(t, "анкета не активна", hMsg)
}

func TestCompletionView(t *testing.T) {
	handler, assessmentID, _, _ := submitFixture(t)

	view, hMsg, err := handler.Completion(assessmentID, dbmodels.AnswerSet{})
	require.NoError(t, err)
	require.Empty(t, hMsg)
	assert.Equal(t, 0, view.Completion)
	assert.Equal(t, 1, view.Total) // q2 скрыт без ответа на q1

	view, hMsg, err = handler.Completion(assessmentID, dbmodels.AnswerSet{"q1": "yes"})
	require.NoError(t, err)
	require.Empty(t, hMsg)
	assert.Equal(t, 50, view.Completion)
	assert.Equal(t, 1, view.Answered)
	assert.Equal(t, 2, view.Total)
}
