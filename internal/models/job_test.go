package models

import "testing"

func TestJobStatusCanTransitionTo(t *testing.T) {
	cases := []struct {
		from    JobStatus
		to      JobStatus
		allowed bool
	}{
		{JobStatusDraft, JobStatusDraft, true},
		{JobStatusDraft, JobStatusOpen, true},
		{JobStatusDraft, JobStatusClosed, false},
		{JobStatusOpen, JobStatusOpen, true},
		{JobStatusOpen, JobStatusClosed, true},
		{JobStatusOpen, JobStatusDraft, false},
		{JobStatusClosed, JobStatusClosed, true},
		{JobStatusClosed, JobStatusOpen, false},
		{JobStatusClosed, JobStatusDraft, false},
	}

	for _, tc := range cases {
		if got := tc.from.CanTransitionTo(tc.to); got != tc.allowed {
			t.Errorf("%s -> %s: got %v, want %v", tc.from, tc.to, got, tc.allowed)
		}
	}
}

func TestJobStatusValid(t *testing.T) {
	for _, s := range []JobStatus{JobStatusDraft, JobStatusOpen, JobStatusClosed} {
		if !s.Valid() {
			t.Errorf("%s should be valid", s)
		}
	}
	for _, s := range []JobStatus{"", "draft", "Archived"} {
		if s.Valid() {
			t.Errorf("%q should be invalid", s)
		}
	}
}
