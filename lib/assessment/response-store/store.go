package responsestore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	dbmodels "talent-flow-backend/models/db"
)

// Хранилище ответов кандидатов, записи только добавляются.
// Обновления и удаления по контракту отсутствуют

type Provider interface {
	Create(rec dbmodels.AssessmentResponse) (id string, err error)
	GetByID(id string) (rec *dbmodels.AssessmentResponse, err error)
	ListByAssessmentID(assessmentID string) (list []dbmodels.AssessmentResponse, err error)
	GetByCandidate(assessmentID, candidateID string) (rec *dbmodels.AssessmentResponse, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.AssessmentResponse) (id string, err error) {
	err = i.db.
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.AssessmentResponse, error) {
	rec := dbmodels.AssessmentResponse{}
	err := i.db.
		Where("id = ?", id).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) ListByAssessmentID(assessmentID string) ([]dbmodels.AssessmentResponse, error) {
	list := []dbmodels.AssessmentResponse{}
	err := i.db.
		Where("assessment_id = ?", assessmentID).
		Order("submitted_at desc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) GetByCandidate(assessmentID, candidateID string) (*dbmodels.AssessmentResponse, error) {
	rec := dbmodels.AssessmentResponse{}
	err := i.db.
		Where("assessment_id = ?", assessmentID).
		Where("candidate_id = ?", candidateID).
		Order("submitted_at desc").
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}
