package helper

import (
	"strings"
	"testing"
)

type sampleRequest struct {
	Name   string  `validate:"required,min=2,max=10"`
	Status string  `validate:"omitempty,oneof=active inactive"`
	Price  float64 `validate:"required,gt=0"`
	Email  *string `validate:"omitempty,email"`
}

func TestValidateStructPasses(t *testing.T) {
	req := sampleRequest{Name: "Widget", Status: "active", Price: 9.99}
	if err := ValidateStruct(req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateStructRequired(t *testing.T) {
	err := ValidateStruct(sampleRequest{Price: 1})
	if err == nil {
		t.Fatal("expected error")
	}
	if got := err.Error(); got != "Name is required" {
		t.Errorf("message = %q", got)
	}
}

func TestValidateStructJoinsMessages(t *testing.T) {
	err := ValidateStruct(sampleRequest{})
	if err == nil {
		t.Fatal("expected error")
	}
	msg := err.Error()
	if !strings.Contains(msg, "Name is required") || !strings.Contains(msg, "Price is required") {
		t.Errorf("message = %q", msg)
	}
	if !strings.Contains(msg, ", ") {
		t.Errorf("messages not comma-joined: %q", msg)
	}
}

func TestValidateStructMessages(t *testing.T) {
	bad := "nope"
	cases := []struct {
		name string
		req  sampleRequest
		want string
	}{
		{"min length", sampleRequest{Name: "a", Price: 1}, "Name must be at least 2 characters"},
		{"oneof", sampleRequest{Name: "ok", Status: "archived", Price: 1}, "Status must be one of [active inactive]"},
		{"gt", sampleRequest{Name: "ok", Price: -3}, "Price must be greater than 0"},
		{"email", sampleRequest{Name: "ok", Price: 1, Email: &bad}, "Email must be a valid email"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateStruct(tc.req)
			if err == nil {
				t.Fatal("expected error")
			}
			if err.Error() != tc.want {
				t.Errorf("message = %q, want %q", err.Error(), tc.want)
			}
		})
	}
}
