package job

import (
	"strings"

	"github.com/pkg/errors"
	"talent-flow-backend/db"
	jobstore "talent-flow-backend/lib/job/store"
	"talent-flow-backend/lib/utils/helpers"
	jobapimodels "talent-flow-backend/models/api/job"
	dbmodels "talent-flow-backend/models/db"
)

type Provider interface {
	Create(data jobapimodels.JobData) (id string, err error)
	Update(id string, data jobapimodels.JobData) (hMsg string, err error)
	GetByID(id string) (rec *dbmodels.Job, err error)
	List(filter jobapimodels.ListFilter) (list []dbmodels.Job, rowCount int64, err error)
	Delete(id string) error
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: jobstore.NewInstance(db.DB),
	}
}

type impl struct {
	store jobstore.Provider
}

func (i impl) Create(data jobapimodels.JobData) (string, error) {
	rec := recFromData(dbmodels.Job{}, data)
	if rec.Status == "" {
		rec.Status = dbmodels.JobStatusActive
	}
	id, err := i.store.Save(rec)
	if err != nil {
		return "", errors.Wrap(err, "ошибка создания вакансии")
	}
	return id, nil
}

func (i impl) Update(id string, data jobapimodels.JobData) (string, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return "", errors.Wrap(err, "ошибка получения вакансии")
	}
	if rec == nil {
		return "вакансия не найдена", nil
	}
	updated := recFromData(*rec, data)
	if _, err = i.store.Save(updated); err != nil {
		return "", errors.Wrap(err, "ошибка изменения вакансии")
	}
	return "", nil
}

func (i impl) GetByID(id string) (*dbmodels.Job, error) {
	return i.store.GetByID(id)
}

func (i impl) List(filter jobapimodels.ListFilter) ([]dbmodels.Job, int64, error) {
	page, limit := filter.GetPage()
	return i.store.List(jobstore.ListFilter{
		Search: filter.Search,
		Status: filter.Status,
		Sort:   filter.Sort,
		Desc:   filter.Desc,
		Page:   page,
		Limit:  limit,
	})
}

func (i impl) Delete(id string) error {
	return i.store.Delete(id)
}

func recFromData(rec dbmodels.Job, data jobapimodels.JobData) dbmodels.Job {
	rec.Title = strings.TrimSpace(data.Title)
	rec.Slug = helpers.Slugify(rec.Title)
	if data.Status != "" {
		rec.Status = data.Status
	}
	rec.Tags = data.Tags
	rec.SortOrder = data.Order
	rec.Company = data.Company
	rec.Location = data.Location
	rec.JobType = data.Type
	rec.Salary = data.Salary
	rec.Description = data.Description
	return rec
}
