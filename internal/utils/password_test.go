package utils

import "testing"

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("Sup3r$ecret")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "Sup3r$ecret" {
		t.Fatal("hash must not equal the plaintext")
	}
	if !CheckPassword(hash, "Sup3r$ecret") {
		t.Error("correct password rejected")
	}
	if CheckPassword(hash, "sup3r$ecret") {
		t.Error("wrong password accepted")
	}
}

func TestValidPassword(t *testing.T) {
	cases := []struct {
		pw string
		ok bool
	}{
		{"Sup3r$ecret", true},
		{"Aa1!aaaa", true},
		{"Aa1!aaa", false},  // too short
		{"aa1!aaaa", false}, // no upper
		{"AA1!AAAA", false}, // no lower
		{"Aab!aaaa", false}, // no digit
		{"Aa1aaaaa", false}, // no special
		{"", false},
	}

	for _, tc := range cases {
		if got := ValidPassword(tc.pw); got != tc.ok {
			t.Errorf("ValidPassword(%q) = %v, want %v", tc.pw, got, tc.ok)
		}
	}
}

func TestValidFullName(t *testing.T) {
	cases := []struct {
		name string
		ok   bool
	}{
		{"Jane Doe", true},
		{"Ada Lovelace", true},
		{"Jane", false},
		{"Jane  Doe", false},
		{" Jane Doe", false},
		{"Jane Doe ", false},
		{"Jane Doe Smith", false},
		{"J4ne Doe", false},
		{"Jane D-oe", false},
		{"", false},
	}

	for _, tc := range cases {
		if got := ValidFullName(tc.name); got != tc.ok {
			t.Errorf("ValidFullName(%q) = %v, want %v", tc.name, got, tc.ok)
		}
	}
}
