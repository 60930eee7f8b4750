package dbmodels

import (
	"database/sql/driver"
	"encoding/json"
	"time"
)

// Ответы кандидата по анкете. Запись создаётся один раз при отправке и не изменяется
type AssessmentResponse struct {
	BaseModel
	AssessmentID string    `gorm:"type:varchar(36);index" json:"assessmentId"`
	CandidateID  string    `gorm:"type:varchar(36);index" json:"candidateId"`
	Responses    AnswerSet `gorm:"type:jsonb" json:"responses"`
	SubmittedAt  time.Time `json:"submittedAt"`
	Score        int       `json:"score,omitempty"` // доля заполненных ответов, не оценка правильности
}

// Ключ - идентификатор вопроса. Значение зависит от типа вопроса:
// строка, массив строк или дескриптор файла {name,size,type,lastModified}
type AnswerSet map[string]interface{}

func (j AnswerSet) Value() (driver.Value, error) {
	valueString, err := json.Marshal(j)
	return string(valueString), err
}

func (j *AnswerSet) Scan(value interface{}) error {
	if err := json.Unmarshal(value.([]byte), &j); err != nil {
		return err
	}
	return nil
}
