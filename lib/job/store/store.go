package jobstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	dbmodels "talent-flow-backend/models/db"
)

type Provider interface {
	Save(rec dbmodels.Job) (id string, err error)
	GetByID(id string) (rec *dbmodels.Job, err error)
	List(filter ListFilter) (list []dbmodels.Job, rowCount int64, err error)
	Delete(id string) error
}

type ListFilter struct {
	Search string
	Status string
	Sort   string // sort_order/created_at
	Desc   bool
	Page   int
	Limit  int
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Save(rec dbmodels.Job) (id string, err error) {
	err = i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.Job, error) {
	rec := dbmodels.Job{}
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

func (i impl) List(filter ListFilter) ([]dbmodels.Job, int64, error) {
	list := []dbmodels.Job{}
	tx := i.db.Model(&dbmodels.Job{})
	if filter.Status != "" && filter.Status != "all" {
		tx = tx.Where("status = ?", filter.Status)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		tx = tx.Where(
			"title ILIKE ? OR description ILIKE ? OR company ILIKE ? OR location ILIKE ?",
			pattern, pattern, pattern, pattern,
		)
	}
	var rowCount int64
	err := tx.Count(&rowCount).Error
	if err != nil {
		return nil, 0, err
	}
	sortColumn := "sort_order"
	if filter.Sort == "created_at" {
		sortColumn = "created_at"
	}
	if filter.Desc {
		sortColumn += " desc"
	}
	if filter.Limit > 0 {
		tx = tx.Offset((filter.Page - 1) * filter.Limit).Limit(filter.Limit)
	}
	err = tx.
		Order(sortColumn).
		Find(&list).
		Error
	if err != nil {
		return nil, 0, err
	}
	return list, rowCount, nil
}

func (i impl) Delete(id string) error {
	rec := dbmodels.Job{
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
