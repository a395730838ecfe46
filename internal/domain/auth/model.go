package auth

import (
	"regexp"
	"sort"
	"strings"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+(\.[^\s@]+)*@([a-zA-Z0-9-]+\.)+[a-zA-Z]{2,}$`)

// ValidationErrors maps a field name to its failure message. Validation runs
// before submission; a request carrying any of these never reaches the
// network.
type ValidationErrors map[string]string

func (v ValidationErrors) Error() string {
	fields := make([]string, 0, len(v))
	for f := range v {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return "invalid fields: " + strings.Join(fields, ", ")
}

// ValidEmail reports whether s looks like an email address. Shared by every
// form that collects one.
func ValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// Credentials is the login form.
type Credentials struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

func (cr Credentials) Validate() error {
	errs := ValidationErrors{}
	if cr.Email == "" {
		errs["email"] = "Email is required"
	} else if !ValidEmail(cr.Email) {
		errs["email"] = "Invalid email address"
	}
	if cr.Password == "" {
		errs["password"] = "Password is required"
	} else if len(cr.Password) < 8 {
		errs["password"] = "Password must be at least 8 characters long"
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// LoginResult is the backend's answer to a successful login. The patient
// block is present only for the patient role.
type LoginResult struct {
	AccessToken string `json:"accessToken"`
	UserRole    struct {
		Name string `json:"name"`
	} `json:"userRole"`
	Patient *struct {
		ID int64 `json:"id"`
	} `json:"patient"`
}
