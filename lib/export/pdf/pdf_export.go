package pdfexport

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"
	dbmodels "talent-flow-backend/models/db"
)

// GenerateAssessmentForm формирует печатную форму анкеты:
// секции и вопросы с вариантами ответов, без учёта условий показа
func GenerateAssessmentForm(rec dbmodels.Assessment) (pdfFile []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("GenerateAssessmentForm panic recover: %v", r)
		}
	}()
	pdf := fpdf.New("P", "mm", "A4", "static/font/")
	pdf.AddPage()
	pdf.AddUTF8Font("Arial", "", "Arial.ttf")
	pdf.AddUTF8Font("Arial", "B", "Arial Bold.ttf")
	pdf.AddUTF8Font("Arial", "I", "Arial Italic.ttf")
	pdf.SetFont("Arial", "B", 16)
	if pdf.Error() != nil {
		return nil, pdf.Error()
	}

	pdf.MultiCell(0, 8, rec.Title, "", "L", false)
	if rec.Description != "" {
		pdf.SetFont("Arial", "", 11)
		pdf.MultiCell(0, 6, rec.Description, "", "L", false)
	}
	pdf.Ln(4)

	questionNum := 0
	for _, section := range rec.Sections {
		pdf.SetFont("Arial", "B", 13)
		pdf.MultiCell(0, 7, section.Title, "", "L", false)
		if section.Description != "" {
			pdf.SetFont("Arial", "I", 10)
			pdf.MultiCell(0, 5, section.Description, "", "L", false)
		}
		pdf.Ln(2)

		for _, question := range section.Questions {
			questionNum++
			title := fmt.Sprintf("%d. %s", questionNum, question.Title)
			if question.Required {
				title += " *"
			}
			pdf.SetFont("Arial", "B", 11)
			pdf.MultiCell(0, 6, title, "", "L", false)
			if question.Description != "" {
				pdf.SetFont("Arial", "I", 9)
				pdf.MultiCell(0, 5, question.Description, "", "L", false)
			}
			pdf.SetFont("Arial", "", 11)
			writeAnswerArea(pdf, question)
			pdf.Ln(3)
		}
		pdf.Ln(3)
	}

	buf := new(bytes.Buffer)
	err = pdf.Output(buf)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeAnswerArea(pdf *fpdf.Fpdf, question dbmodels.Question) {
	switch {
	case question.Type.IsChoice():
		marker := "( )"
		if question.Type == dbmodels.QuestionTypeMultiChoice {
			marker = "[ ]"
		}
		for _, option := range question.Options {
			pdf.MultiCell(0, 6, fmt.Sprintf("  %s %s", marker, option.Text), "", "L", false)
		}
	case question.Type == dbmodels.QuestionTypeLongText:
		for idx := 0; idx < 4; idx++ {
			pdf.MultiCell(0, 7, "_________________________________________________", "", "L", false)
		}
	case question.Type == dbmodels.QuestionTypeFileUpload:
		pdf.MultiCell(0, 6, "  (приложите файл к бумажной форме)", "", "L", false)
	default:
		pdf.MultiCell(0, 7, "_________________________________________________", "", "L", false)
	}
}
