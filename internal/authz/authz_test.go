package authz

import (
	"testing"

	"github.com/google/uuid"

	"github.com/careerboard/careerboard-api/internal/models"
)

func TestRolePredicates(t *testing.T) {
	if !IsCompany("company") || IsCompany("applicant") || IsCompany("") {
		t.Error("IsCompany misclassifies roles")
	}
	if !IsApplicant("applicant") || IsApplicant("company") || IsApplicant("admin") {
		t.Error("IsApplicant misclassifies roles")
	}
}

func TestOwnsJob(t *testing.T) {
	owner := uuid.New()
	other := uuid.New()
	job := &models.Job{CreatedByID: owner}

	if !OwnsJob(owner, job) {
		t.Error("creator should own the job")
	}
	if OwnsJob(other, job) {
		t.Error("another company must not own the job")
	}
	if OwnsJob(owner, nil) {
		t.Error("nil job is never owned")
	}
}

func TestOwnsApplication(t *testing.T) {
	owner := uuid.New()
	applicant := uuid.New()
	app := &models.Application{
		ApplicantID: applicant,
		Job:         &models.Job{CreatedByID: owner},
	}

	if !OwnsApplication(owner, app) {
		t.Error("job creator should own the application")
	}
	if OwnsApplication(applicant, app) {
		t.Error("applicant is not the owning company")
	}
	if OwnsApplication(owner, &models.Application{}) {
		t.Error("application without a loaded job is never owned")
	}

	if !IsApplicantOf(applicant, app) {
		t.Error("submitter should be the applicant of the application")
	}
	if IsApplicantOf(owner, app) {
		t.Error("company is not the applicant")
	}
}
