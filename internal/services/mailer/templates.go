package mailer

import (
	"fmt"

	"github.com/careerboard/careerboard-api/internal/models"
)

func VerificationEmail(verifyURL string) (subject, body string) {
	return "Verify your email",
		"Click the link to verify your email: " + verifyURL
}

func ReverificationEmail(verifyURL string) (subject, body string) {
	return "New verification link",
		"Your previous link expired. Click here to verify your email: " + verifyURL
}

func NewApplicationEmail(applicantName, jobTitle string) (subject, body string) {
	return "New Job Application",
		fmt.Sprintf("Applicant %s has applied to your job '%s'.", applicantName, jobTitle)
}

var statusNotes = map[models.ApplicationStatus]string{
	models.ApplicationStatusInterview: "You've been selected for an interview!",
	models.ApplicationStatusRejected:  "We regret to inform you...",
	models.ApplicationStatusHired:     "Congratulations! You've been hired.",
}

// StatusUpdateEmail renders the applicant-facing notice for an effective
// status change. Only Interview, Rejected and Hired have a template; other
// statuses return ok=false and send nothing.
func StatusUpdateEmail(applicantName, jobTitle, companyName string, status models.ApplicationStatus) (subject, body string, ok bool) {
	note, ok := statusNotes[status]
	if !ok {
		return "", "", false
	}
	subject = fmt.Sprintf("Update on your application for %s", jobTitle)
	body = fmt.Sprintf(
		"Dear %s,\n\nYour application status for the job '%s' has been updated to '%s'.\n\n%s\n\nBest regards,\n%s Team",
		applicantName, jobTitle, status, note, companyName,
	)
	return subject, body, true
}
