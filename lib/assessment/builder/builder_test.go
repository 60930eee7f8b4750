package builder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	dbmodels "talent-flow-backend/models/db"
)

func TestNew(t *testing.T) {
	rec := New("job-1")
	assert.Equal(t, SentinelNewID, rec.ID)
	assert.Equal(t, "job-1", rec.JobID)
	assert.Equal(t, "New Assessment", rec.Title)
	assert.True(t, rec.IsActive)
	assert.Empty(t, rec.Sections)
}

func TestAddSection(t *testing.T) {
	rec := AddSection(New("job-1"))
	require.Len(t, rec.Sections, 1)
	assert.NotEmpty(t, rec.Sections[0].ID)
	assert.Equal(t, "New Section", rec.Sections[0].Title)
	assert.Equal(t, 0, rec.Sections[0].Order)

	rec = AddSection(rec)
	require.Len(t, rec.Sections, 2)
	assert.Equal(t, 1, rec.Sections[1].Order)
	assert.NotEqual(t, rec.Sections[0].ID, rec.Sections[1].ID)
}

func TestDeleteSectionReindexesOrder(t *testing.T) {
	rec := AddSection(AddSection(AddSection(New("job-1"))))
	deletedID := rec.Sections[1].ID
	keptID := rec.Sections[2].ID

	rec = DeleteSection(rec, deletedID)
	require.Len(t, rec.Sections, 2)
	assert.Equal(t, keptID, rec.Sections[1].ID)
	assert.Equal(t, 0, rec.Sections[0].Order)
	assert.Equal(t, 1, rec.Sections[1].Order)
}

func TestDeleteSectionRemovesQuestions(t *testing.T) {
	rec := AddSection(New("job-1"))
	sectionID := rec.Sections[0].ID
	rec = AddQuestion(rec, sectionID)

	rec = DeleteSection(rec, sectionID)
	assert.Empty(t, rec.Sections)
	assert.Empty(t, rec.AllQuestions())
}

func TestAddQuestionDefaults(t *testing.T) {
	rec := AddSection(New("job-1"))
	rec = AddQuestion(rec, rec.Sections[0].ID)

	require.Len(t, rec.Sections[0].Questions, 1)
	question := rec.Sections[0].Questions[0]
	assert.NotEmpty(t, question.ID)
	assert.Equal(t, dbmodels.QuestionTypeShortText, question.Type)
	assert.Equal(t, "New Question", question.Title)
	assert.False(t, question.Required)
}

func TestUpdateQuestion(t *testing.T) {
	rec := AddSection(New("job-1"))
	sectionID := rec.Sections[0].ID
	rec = AddQuestion(rec, sectionID)
	questionID := rec.Sections[0].Questions[0].ID

	qType := dbmodels.QuestionTypeNumeric
	title := "Опыт в годах"
	required := true
	rec = UpdateQuestion(rec, sectionID, questionID, QuestionPatch{
		Type:     &qType,
		Title:    &title,
		Required: &required,
	})

	question := rec.Sections[0].Questions[0]
	assert.Equal(t, questionID, question.ID)
	assert.Equal(t, dbmodels.QuestionTypeNumeric, question.Type)
	assert.Equal(t, "Опыт в годах", question.Title)
	assert.True(t, question.Required)
}

func TestUpdateQuestionClearConditional(t *testing.T) {
	rec := AddSection(New("job-1"))
	sectionID := rec.Sections[0].ID
	rec = AddQuestion(rec, sectionID)
	questionID := rec.Sections[0].Questions[0].ID

	conditional := dbmodels.Conditional{DependsOn: "q0", Condition: dbmodels.ConditionEquals, Value: "yes"}
	rec = UpdateQuestion(rec, sectionID, questionID, QuestionPatch{Conditional: &conditional})
	require.NotNil(t, rec.Sections[0].Questions[0].Conditional)

	// nil в патче не трогает условие
	rec = UpdateQuestion(rec, sectionID, questionID, QuestionPatch{})
	require.NotNil(t, rec.Sections[0].Questions[0].Conditional)

	rec = UpdateQuestion(rec, sectionID, questionID, QuestionPatch{ClearConditional: true})
	assert.Nil(t, rec.Sections[0].Questions[0].Conditional)
}

func TestAddOptionDefaults(t *testing.T) {
	rec := AddSection(New("job-1"))
	sectionID := rec.Sections[0].ID
	rec = AddQuestion(rec, sectionID)
	questionID := rec.Sections[0].Questions[0].ID

	rec = AddOption(rec, sectionID, questionID)
	rec = AddOption(rec, sectionID, questionID)

	options := rec.Sections[0].Questions[0].Options
	require.Len(t, options, 2)
	assert.Equal(t, "New Option", options[0].Text)
	assert.Equal(t, "option-0", options[0].Value)
	assert.Equal(t, "option-1", options[1].Value)
}

func TestOperationsDoNotMutateInput(t *testing.T) {
	base := AddSection(New("job-1"))
	sectionID := base.Sections[0].ID
	base = AddQuestion(base, sectionID)
	questionID := base.Sections[0].Questions[0].ID
	base = AddOption(base, sectionID, questionID)

	title := "изменено"
	_ = UpdateSection(base, sectionID, SectionPatch{Title: &title})
	_ = UpdateQuestion(base, sectionID, questionID, QuestionPatch{Title: &title})
	_ = AddQuestion(base, sectionID)
	_ = DeleteQuestion(base, sectionID, questionID)
	_ = AddOption(base, sectionID, questionID)

	assert.Equal(t, "New Section", base.Sections[0].Title)
	require.Len(t, base.Sections[0].Questions, 1)
	assert.Equal(t, "New Question", base.Sections[0].Questions[0].Title)
	assert.Len(t, base.Sections[0].Questions[0].Options, 1)
}

func TestDuplicateOptionValues(t *testing.T) {
	rec := New("job-1")
	rec.Sections = dbmodels.AssessmentSections{
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
				{
					// для не-choice вопросов значения не проверяются
					ID:    "q2",
					Type:  dbmodels.QuestionTypeShortText,
					Title: "Текст",
				},
			},
		},
	}
	assert.Equal(t, []string{"Выбор"}, DuplicateOptionValues(rec))

	rec.Sections[0].Questions[0].Options[1].Value = "b"
	assert.Empty(t, DuplicateOptionValues(rec))
}

func TestInvalidPatterns(t *testing.T) {
	rec := New("job-1")
	rec.Sections = dbmodels.AssessmentSections{
		{
			ID: "s1",
			Questions: []dbmodels.Question{
				{
					ID:         "q1",
					Type:       dbmodels.QuestionTypeShortText,
					Title:      "Телефон",
					Validation: &dbmodels.ValidationRules{Pattern: `^\+7\d{10}$`},
				},
				{
					ID:         "q2",
					Type:       dbmodels.QuestionTypeShortText,
					Title:      "Почта",
					Validation: &dbmodels.ValidationRules{Pattern: `[a-z`},
				},
				{
					// шаблон учитывается только у короткого текста
					ID:         "q3",
					Type:       dbmodels.QuestionTypeLongText,
					Title:      "Описание",
					Validation: &dbmodels.ValidationRules{Pattern: `[a-z`},
				},
			},
		},
	}
	assert.Equal(t, []string{"Почта"}, InvalidPatterns(rec))

	rec.Sections[0].Questions[1].Validation.Pattern = ""
	assert.Empty(t, InvalidPatterns(rec))
}
