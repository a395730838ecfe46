package auth

import (
	"errors"
	"testing"
)

func TestCredentialsValidate(t *testing.T) {
	cases := []struct {
		name    string
		cr      Credentials
		field   string
		message string
	}{
		{"missing email", Credentials{Password: "longenough"}, "email", "Email is required"},
		{"bad email", Credentials{Email: "not-an-email", Password: "longenough"}, "email", "Invalid email address"},
		{"missing password", Credentials{Email: "a@b.com"}, "password", "Password is required"},
		{"short password", Credentials{Email: "a@b.com", Password: "short12"}, "password", "Password must be at least 8 characters long"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cr.Validate()
			var verrs ValidationErrors
			if !errors.As(err, &verrs) {
				t.Fatalf("expected ValidationErrors, got %v", err)
			}
			if verrs[tc.field] != tc.message {
				t.Errorf("field %s: got %q, want %q", tc.field, verrs[tc.field], tc.message)
			}
		})
	}

	ok := Credentials{Email: "a@b.com", Password: "12345678"}
	if err := ok.Validate(); err != nil {
		t.Errorf("valid credentials rejected: %v", err)
	}
}

func TestValidEmail(t *testing.T) {
	valid := []string{"a@b.com", "john.doe@hospital.example.org", "x+y@d.co"}
	for _, e := range valid {
		if !ValidEmail(e) {
			t.Errorf("expected %q to validate", e)
		}
	}
	invalid := []string{"", "plain", "@no-user.com", "x@", "a b@c.com", "a@b"}
	for _, e := range invalid {
		if ValidEmail(e) {
			t.Errorf("expected %q to be rejected", e)
		}
	}
}
