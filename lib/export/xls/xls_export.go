package xlsexport

import (
	"bytes"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
	"talent-flow-backend/lib/assessment/engine"
	dbmodels "talent-flow-backend/models/db"
)

type Provider interface {
	ExportResponseList(rec dbmodels.Assessment, list []dbmodels.AssessmentResponse, candidateNames map[string]string) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

// ExportResponseList выгружает ответы по анкете: фиксированные колонки
// плюс колонка на каждый вопрос в порядке обхода секций
func (i impl) ExportResponseList(rec dbmodels.Assessment, list []dbmodels.AssessmentResponse, candidateNames map[string]string) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("ошибка закрытия файла")
		}
	}()
	questions := rec.AllQuestions()
	headers := []string{"Кандидат", "Дата отправки", "Заполненность"}
	for _, question := range questions {
		headers = append(headers, question.Title)
	}

	sheet := "Sheet1"
	row := 0
	row, err := writeHeader(f, sheet, row, headers)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка формирования заголовка в xlsx")
	}
	if len(list) != 0 {
		row, err = writeResponseData(f, sheet, questions, list, candidateNames, headers, row)
		if err != nil {
			return nil, errors.Wrap(err, "ошибка формирования таблицы с данными в xlsx")
		}
	}
	f.SetSheetName(sheet, "Ответы")
	return f.WriteToBuffer()
}

func writeResponseData(f *excelize.File, sheet string, questions []dbmodels.Question,
	list []dbmodels.AssessmentResponse, candidateNames map[string]string, headers []string, row int) (int, error) {
	if err := applyDataCellStyle(f, sheet, 1, row+1, len(headers), len(list)+1); err != nil {
		return row, err
	}
	for _, item := range list {
		row++
		// "Кандидат"
		col := 1
		candidateName := candidateNames[item.CandidateID]
		if candidateName == "" {
			candidateName = item.CandidateID
		}
		if err := writeColumn(f, sheet, col, row, candidateName); err != nil {
			return row, err
		}

		// "Дата отправки"
		col++
		if !item.SubmittedAt.IsZero() {
			if err := writeColumn(f, sheet, col, row, item.SubmittedAt.Format("02.01.2006 15:04")); err != nil {
				return row, err
			}
		}

		// "Заполненность"
		col++
		if err := writeColumn(f, sheet, col, row, item.Score); err != nil {
			return row, err
		}

		for _, question := range questions {
			col++
			if err := writeColumn(f, sheet, col, row, engine.AnswerString(item.Responses[question.ID])); err != nil {
				return row, err
			}
		}
	}
	return row, nil
}
