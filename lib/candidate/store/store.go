package candidatestore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	dbmodels "talent-flow-backend/models/db"
)

type Provider interface {
	Save(rec dbmodels.Candidate) (id string, err error)
	GetByID(id string) (rec *dbmodels.Candidate, err error)
	ListNotInvited(limit int) (list []dbmodels.Candidate, err error)
	SetInvited(id string) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Save(rec dbmodels.Candidate) (id string, err error) {
	err = i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.Candidate, error) {
	rec := dbmodels.Candidate{}
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

// ListNotInvited - кандидаты, которым ещё не отправлена ссылка на анкету
// по активной анкете их вакансии
func (i impl) ListNotInvited(limit int) ([]dbmodels.Candidate, error) {
	list := []dbmodels.Candidate{}
	err := i.db.
		Where("assessment_invited = false").
		Where("stage NOT IN ?", []string{dbmodels.CandidateStageHired, dbmodels.CandidateStageRejected}).
		Order("applied_at").
		Limit(limit).
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) SetInvited(id string) error {
	err := i.db.
		Model(&dbmodels.Candidate{}).
		Where("id = ?", id).
		Update("assessment_invited", true).
		Error
	if err != nil {
		return err
	}
	return nil
}
