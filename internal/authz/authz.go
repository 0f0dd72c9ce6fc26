// Package authz holds the authorization predicates composed by handlers
// before touching a resource: role checks on the caller plus ownership
// checks tying a resource back to its creator.
package authz

import (
	"github.com/google/uuid"

	"github.com/careerboard/careerboard-api/internal/models"
)

func IsCompany(role string) bool {
	return role == string(models.RoleCompany)
}

func IsApplicant(role string) bool {
	return role == string(models.RoleApplicant)
}

// OwnsJob reports whether userID is the company account that created job.
func OwnsJob(userID uuid.UUID, job *models.Job) bool {
	return job != nil && job.CreatedByID == userID
}

// OwnsApplication reports whether userID owns the job an application was
// submitted against. Only that company may read or move the application.
func OwnsApplication(userID uuid.UUID, app *models.Application) bool {
	return app != nil && OwnsJob(userID, app.Job)
}

// IsApplicantOf reports whether userID is the applicant who submitted app.
func IsApplicantOf(userID uuid.UUID, app *models.Application) bool {
	return app != nil && app.ApplicantID == userID
}
