package assessmentstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	dbmodels "talent-flow-backend/models/db"
)

type Provider interface {
	Save(rec dbmodels.Assessment) (id string, err error)
	GetByID(id string) (rec *dbmodels.Assessment, err error)
	GetByJobID(jobID string) (rec *dbmodels.Assessment, err error)
	List(filter ListFilter) (list []dbmodels.Assessment, rowCount int64, err error)
	Delete(id string) error
}

type ListFilter struct {
	JobID    string
	IsActive *bool
	Search   string
	Page     int
	Limit    int
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Save(rec dbmodels.Assessment) (id string, err error) {
	err = i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.Assessment, error) {
	rec := dbmodels.Assessment{}
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

func (i impl) GetByJobID(jobID string) (*dbmodels.Assessment, error) {
	rec := dbmodels.Assessment{}
	err := i.db.
		Where("job_id = ?", jobID).
		Order("created_at desc").
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

func (i impl) List(filter ListFilter) ([]dbmodels.Assessment, int64, error) {
	list := []dbmodels.Assessment{}
	tx := i.db.Model(&dbmodels.Assessment{})
	if filter.JobID != "" {
		tx = tx.Where("job_id = ?", filter.JobID)
	}
	if filter.IsActive != nil {
		tx = tx.Where("is_active = ?", *filter.IsActive)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		tx = tx.Where("title ILIKE ? OR description ILIKE ?", pattern, pattern)
	}
	var rowCount int64
	err := tx.Count(&rowCount).Error
	if err != nil {
		return nil, 0, err
	}
	if filter.Limit > 0 {
		tx = tx.Offset((filter.Page - 1) * filter.Limit).Limit(filter.Limit)
	}
	err = tx.
		Order("created_at desc").
		Find(&list).
		Error
	if err != nil {
		return nil, 0, err
	}
	return list, rowCount, nil
}

func (i impl) Delete(id string) error {
	rec := dbmodels.Assessment{
		BaseModel: dbmodels.BaseModel{ID: id},
	}
	err := i.db.
		Delete(&rec).
		Error
	if err != nil {
		return err
	}
	return nil
}
