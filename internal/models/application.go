package models

import (
	"time"

	"github.com/google/uuid"
)

type ApplicationStatus string

const (
	ApplicationStatusApplied   ApplicationStatus = "Applied"
	ApplicationStatusReviewed  ApplicationStatus = "Reviewed"
	ApplicationStatusInterview ApplicationStatus = "Interview"
	ApplicationStatusRejected  ApplicationStatus = "Rejected"
	ApplicationStatusHired     ApplicationStatus = "Hired"
)

var applicationStatuses = map[ApplicationStatus]bool{
	ApplicationStatusApplied:   true,
	ApplicationStatusReviewed:  true,
	ApplicationStatusInterview: true,
	ApplicationStatusRejected:  true,
	ApplicationStatusHired:     true,
}

func (s ApplicationStatus) Valid() bool {
	return applicationStatuses[s]
}

// NotifiesApplicant reports whether a change to this status sends the
// applicant an email. Applied and Reviewed stay silent.
func (s ApplicationStatus) NotifiesApplicant() bool {
	switch s {
	case ApplicationStatusInterview, ApplicationStatusRejected, ApplicationStatusHired:
		return true
	}
	return false
}

// NormalizeApplicationStatus maps a user-supplied value onto the canonical
// casing, or returns false when it is not one of the five statuses.
func NormalizeApplicationStatus(raw string) (ApplicationStatus, bool) {
	for s := range applicationStatuses {
		if string(s) == raw {
			return s, true
		}
	}
	return "", false
}

type Application struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	ApplicantID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_applicant_job" json:"applicant_id"`
	JobID       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_applicant_job;index" json:"job_id"`

	ResumeLink  string            `gorm:"not null" json:"resume_link"`
	CoverLetter string            `gorm:"size:200" json:"cover_letter"`
	Status      ApplicationStatus `gorm:"type:varchar(20);default:Applied;index" json:"status"`

	AppliedAt time.Time `gorm:"autoCreateTime" json:"applied_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Applicant *User `gorm:"foreignKey:ApplicantID" json:"applicant,omitempty"`
	Job       *Job  `gorm:"foreignKey:JobID" json:"job,omitempty"`
}
