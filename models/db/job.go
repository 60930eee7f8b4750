package dbmodels

import (
	"github.com/lib/pq"
)

const (
	JobStatusActive   = "active"
	JobStatusArchived = "archived"
)

// Вакансия
type Job struct {
	BaseModel
	Title       string         `json:"title"`
	Slug        string         `gorm:"index" json:"slug"`
	Status      string         `gorm:"index" json:"status"` // active/archived
	Tags        pq.StringArray `gorm:"type:text[]" json:"tags"`
	SortOrder   int            `gorm:"column:sort_order" json:"order"`
	Company     string         `json:"company,omitempty"`
	Location    string         `json:"location,omitempty"`
	JobType     string         `gorm:"column:job_type" json:"type,omitempty"` // Full-time/Part-time/Contract
	Salary      string         `json:"salary,omitempty"`
	Description string         `json:"description,omitempty"`
}
