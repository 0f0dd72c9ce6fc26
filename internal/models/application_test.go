package models

import "testing"

func TestApplicationStatusNotifiesApplicant(t *testing.T) {
	notify := []ApplicationStatus{
		ApplicationStatusInterview,
		ApplicationStatusRejected,
		ApplicationStatusHired,
	}
	silent := []ApplicationStatus{
		ApplicationStatusApplied,
		ApplicationStatusReviewed,
	}

	for _, s := range notify {
		if !s.NotifiesApplicant() {
			t.Errorf("%s should notify the applicant", s)
		}
	}
	for _, s := range silent {
		if s.NotifiesApplicant() {
			t.Errorf("%s should not notify the applicant", s)
		}
	}
}

func TestNormalizeApplicationStatus(t *testing.T) {
	cases := []struct {
		in    string
		want  ApplicationStatus
		valid bool
	}{
		{"Applied", ApplicationStatusApplied, true},
		{"Hired", ApplicationStatusHired, true},
		{"hired", "", false},
		{"Pending", "", false},
		{"", "", false},
	}

	for _, tc := range cases {
		got, valid := NormalizeApplicationStatus(tc.in)
		if valid != tc.valid || got != tc.want {
			t.Errorf("NormalizeApplicationStatus(%q) = (%q, %v), want (%q, %v)",
				tc.in, got, valid, tc.want, tc.valid)
		}
	}
}
