package mailer

import (
	"strings"
	"testing"

	"github.com/careerboard/careerboard-api/internal/models"
)

func TestVerificationEmail(t *testing.T) {
	subject, body := VerificationEmail("http://x/api/auth/verify-email?token=abc")
	if subject != "Verify your email" {
		t.Errorf("subject = %q", subject)
	}
	if !strings.Contains(body, "token=abc") {
		t.Errorf("body missing link: %q", body)
	}

	subject, body = ReverificationEmail("http://x/api/auth/verify-email?token=def")
	if !strings.Contains(subject, "New verification") {
		t.Errorf("subject = %q", subject)
	}
	if !strings.Contains(body, "expired") || !strings.Contains(body, "token=def") {
		t.Errorf("body = %q", body)
	}
}

func TestStatusUpdateEmail(t *testing.T) {
	subject, body, notify := StatusUpdateEmail("Jane Doe", "Go Developer", "Acme Corp", models.ApplicationStatusHired)
	if !notify {
		t.Fatal("Hired should notify")
	}
	if !strings.Contains(subject, "Go Developer") {
		t.Errorf("subject = %q", subject)
	}
	for _, want := range []string{"Jane Doe", "'Go Developer'", "'Hired'", "Congratulations", "Acme Corp Team"} {
		if !strings.Contains(body, want) {
			t.Errorf("body missing %q:\n%s", want, body)
		}
	}

	for _, s := range []models.ApplicationStatus{models.ApplicationStatusApplied, models.ApplicationStatusReviewed} {
		if _, _, notify := StatusUpdateEmail("Jane Doe", "Go Developer", "Acme Corp", s); notify {
			t.Errorf("%s should not notify", s)
		}
	}
}

func TestNewApplicationEmail(t *testing.T) {
	_, body := NewApplicationEmail("Jane Doe", "Go Developer")
	if !strings.Contains(body, "Jane Doe") || !strings.Contains(body, "'Go Developer'") {
		t.Errorf("body = %q", body)
	}
}
