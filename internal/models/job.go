package models

import (
	"time"

	"github.com/google/uuid"
)

type JobStatus string

const (
	JobStatusDraft  JobStatus = "Draft"
	JobStatusOpen   JobStatus = "Open"
	JobStatusClosed JobStatus = "Closed"
)

// jobTransitions is the forward-only lifecycle table. A status may stay
// where it is or advance; it never goes back.
var jobTransitions = map[JobStatus][]JobStatus{
	JobStatusDraft:  {JobStatusDraft, JobStatusOpen},
	JobStatusOpen:   {JobStatusOpen, JobStatusClosed},
	JobStatusClosed: {JobStatusClosed},
}

func (s JobStatus) Valid() bool {
	_, ok := jobTransitions[s]
	return ok
}

// CanTransitionTo reports whether moving from s to next is allowed.
func (s JobStatus) CanTransitionTo(next JobStatus) bool {
	for _, allowed := range jobTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

type Job struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Title       string    `gorm:"size:100;not null" json:"title"`
	Description string    `gorm:"type:text;not null" json:"description"`
	Location    string    `gorm:"size:255" json:"location"`
	Status      JobStatus `gorm:"type:varchar(10);default:Draft;index" json:"status"`

	CreatedByID uuid.UUID `gorm:"type:uuid;index;not null" json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	CreatedBy *User `gorm:"foreignKey:CreatedByID" json:"created_by_user,omitempty"`
}
