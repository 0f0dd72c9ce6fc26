package handlers

import (
	"strings"
	"testing"
)

func TestValidResumeExt(t *testing.T) {
	valid := []string{"cv.pdf", "cv.PDF", "resume.docx", "my.cv.DocX"}
	invalid := []string{"cv.doc", "cv.txt", "cv.pdf.exe", "cv", ""}

	for _, name := range valid {
		if !validResumeExt(name) {
			t.Errorf("%q should be accepted", name)
		}
	}
	for _, name := range invalid {
		if validResumeExt(name) {
			t.Errorf("%q should be rejected", name)
		}
	}
}

func TestValidTitleAndDescription(t *testing.T) {
	if validTitle("") {
		t.Error("empty title accepted")
	}
	if !validTitle("Go Developer") {
		t.Error("plain title rejected")
	}
	if validTitle(strings.Repeat("x", 101)) {
		t.Error("101-char title accepted")
	}
	if !validTitle(strings.Repeat("x", 100)) {
		t.Error("100-char title rejected")
	}

	if validDescription(strings.Repeat("x", 19)) {
		t.Error("19-char description accepted")
	}
	if !validDescription(strings.Repeat("x", 20)) {
		t.Error("20-char description rejected")
	}
	if validDescription(strings.Repeat("x", 2001)) {
		t.Error("2001-char description accepted")
	}
}

func TestTruncateDescription(t *testing.T) {
	if got := truncateDescription("short", 200); got != "short" {
		t.Errorf("got %q", got)
	}
	long := strings.Repeat("a", 250)
	got := truncateDescription(long, 200)
	if got != strings.Repeat("a", 200)+"..." {
		t.Errorf("got %d chars, want 200 + ellipsis", len(got))
	}
}

func TestTrackOrderClause(t *testing.T) {
	cases := map[string]string{
		"":             "applications.applied_at DESC",
		"-applied_at":  "applications.applied_at DESC",
		"applied_at":   "applications.applied_at ASC",
		"company":      "users.full_name ASC",
		"-company":     "users.full_name DESC",
		"status":       "applications.status ASC",
		"-job_title":   "jobs.title DESC",
		"rm -rf; DROP": "applications.applied_at DESC",
	}

	for in, want := range cases {
		if got := trackOrderClause(in); got != want {
			t.Errorf("trackOrderClause(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestFieldErrorsAdd(t *testing.T) {
	errs := FieldErrors{}
	errs.Add("email", "Email is required")
	errs.Add("email", "Invalid email format")
	errs.Add("role", "Role must be 'applicant' or 'company'")

	if len(errs["email"]) != 2 || len(errs["role"]) != 1 {
		t.Errorf("unexpected contents: %v", errs)
	}
}
