package jobapimodels

import (
	"strings"

	"github.com/pkg/errors"
	apimodels "talent-flow-backend/models/api"
	dbmodels "talent-flow-backend/models/db"
)

type JobData struct {
	Title       string   `json:"title"`
	Status      string   `json:"status"`
	Tags        []string `json:"tags"`
	Order       int      `json:"order"`
	Company     string   `json:"company,omitempty"`
	Location    string   `json:"location,omitempty"`
	Type        string   `json:"type,omitempty"`
	Salary      string   `json:"salary,omitempty"`
	Description string   `json:"description,omitempty"`
}

func (r JobData) Validate() error {
	if strings.TrimSpace(r.Title) == "" {
		return errors.New("не указано название вакансии")
	}
	if r.Status != "" && r.Status != dbmodels.JobStatusActive && r.Status != dbmodels.JobStatusArchived {
		return errors.Errorf("неизвестный статус вакансии: %v", r.Status)
	}
	return nil
}

type ListFilter struct {
	apimodels.Pagination
	Search string `json:"search,omitempty"`
	Status string `json:"status,omitempty"` // active/archived/all
	Sort   string `json:"sort,omitempty"`   // sort_order/created_at
	Desc   bool   `json:"desc,omitempty"`
}
