package helper

import (
	"strings"
	"testing"
)

func TestGenerateSlug(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Shipping", "shipping"},
		{"Summer Sale 2024", "summer-sale-2024"},
		{"  Trimmed  Name  ", "trimmed-name"},
		{"Hello, World!", "hello-world"},
		{"--already--dashed--", "already-dashed"},
		{"ALLCAPS", "allcaps"},
		{"", ""},
		{"!!!", ""},
	}
	for _, tc := range cases {
		if got := GenerateSlug(tc.in); got != tc.want {
			t.Errorf("GenerateSlug(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestGenerateSlugMaxLen(t *testing.T) {
	long := strings.Repeat("ab-", 100)
	got := GenerateSlug(long)
	if len(got) > DefaultSlugMaxLen {
		t.Fatalf("slug too long: %d", len(got))
	}
	if strings.HasSuffix(got, "-") || strings.HasPrefix(got, "-") {
		t.Fatalf("slug has dangling dash: %q", got)
	}
}

func TestValidSlug(t *testing.T) {
	valid := []string{"shipping", "summer-sale-2024", "a", "a-b-c", "123"}
	for _, s := range valid {
		if !ValidSlug(s) {
			t.Errorf("ValidSlug(%q) = false, want true", s)
		}
	}
	invalid := []string{"", "-leading", "trailing-", "double--dash", "UPPER", "with space", "under_score"}
	for _, s := range invalid {
		if ValidSlug(s) {
			t.Errorf("ValidSlug(%q) = true, want false", s)
		}
	}
}

func TestGenerateSlugOutputIsValid(t *testing.T) {
	inputs := []string{"Shipping", "Summer Sale 2024", "Hello, World!", "café au lait"}
	for _, in := range inputs {
		s := GenerateSlug(in)
		if s != "" && !ValidSlug(s) {
			t.Errorf("GenerateSlug(%q) produced invalid slug %q", in, s)
		}
	}
}
