package session

import "strings"

// Role is the closed set of roles the backend issues at login.
type Role string

const (
	RoleSuperAdmin Role = "SUPER_ADMIN"
	RoleDoctor     Role = "DOCTOR"
	RolePatient    Role = "PATIENT"
)

// ParseRole maps a backend role name onto the closed enum. Unknown names are
// rejected so a tampered cookie can never widen access.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleSuperAdmin, RoleDoctor, RolePatient:
		return Role(s), true
	}
	return "", false
}

// Display formats a role name for the header, e.g. SUPER_ADMIN -> Super Admin.
func (r Role) Display() string {
	words := strings.Split(strings.ToLower(string(r)), "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// Resource names a console area for capability checks.
type Resource string

const (
	ResourceDashboard Resource = "dashboard"
	ResourcePatients  Resource = "patients"
	ResourceUsers     Resource = "users"
	ResourceImages    Resource = "images"
	ResourceDiagnoses Resource = "diagnoses"
)

// capabilities is the single table behind every role-based rendering decision.
// It governs navigation links and action affordances only; the backend's token
// check remains the real authorization boundary.
var capabilities = map[Role]map[Resource]bool{
	RoleSuperAdmin: {
		ResourceDashboard: true,
		ResourcePatients:  true,
		ResourceUsers:     true,
		ResourceImages:    true,
		ResourceDiagnoses: true,
	},
	RoleDoctor: {
		ResourceDashboard: true,
		ResourcePatients:  true,
		ResourceImages:    true,
		ResourceDiagnoses: true,
	},
	RolePatient: {
		ResourceDashboard: true,
		ResourceImages:    true,
		ResourceDiagnoses: true,
	},
}

// CanView reports whether the role's console shows the given area.
func CanView(r Role, res Resource) bool {
	return capabilities[r][res]
}

// Session is the client-held record of the authenticated principal. It is
// created at login, cleared at logout or on a 401 from the backend, and holds
// no expiry: staleness is detected reactively via a rejected request.
type Session struct {
	AccessToken string
	Role        Role
	PatientID   string
}

// Authenticated reports whether an access token is present.
func (s Session) Authenticated() bool {
	return s.AccessToken != ""
}

// IsAdmin reports whether the session carries the privileged role.
func (s Session) IsAdmin() bool {
	return s.Role == RoleSuperAdmin
}

// OwnsPatient reports whether the session may act on records for the given
// patient. Staff see every patient; patients are scoped to their own records.
func (s Session) OwnsPatient(patientID string) bool {
	if s.Role != RolePatient {
		return true
	}
	return patientID != "" && patientID == s.PatientID
}
