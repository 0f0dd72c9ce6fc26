package models

import (
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleApplicant Role = "applicant"
	RoleCompany   Role = "company"
)

type User struct {
	ID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	FullName string    `gorm:"not null" json:"full_name"`
	Email    string    `gorm:"uniqueIndex;not null" json:"email"`

	Password string `gorm:"not null" json:"-"`
	Role     Role   `gorm:"type:varchar(20);not null;index" json:"role"`

	// Accounts start inactive; email verification flips this on.
	IsActive bool `gorm:"default:false" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
