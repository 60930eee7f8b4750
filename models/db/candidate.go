package dbmodels

import (
	"time"
)

const (
	CandidateStageApplied  = "applied"
	CandidateStageScreen   = "screen"
	CandidateStageTech     = "tech"
	CandidateStageOffer    = "offer"
	CandidateStageHired    = "hired"
	CandidateStageRejected = "rejected"
)

// Кандидат по вакансии
type Candidate struct {
	BaseModel
	Name      string    `json:"name"`
	Email     string    `gorm:"index" json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Stage     string    `gorm:"index" json:"stage"`
	JobID     string    `gorm:"type:varchar(36);index" json:"jobId"`
	AppliedAt time.Time `json:"appliedAt"`
	// Ссылка на анкету отправлена кандидату (см. invite-worker)
	AssessmentInvited bool `gorm:"index" json:"-"`
}
