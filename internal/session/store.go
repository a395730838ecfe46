package session

import (
	"net/http"

	"github.com/gorilla/sessions"
)

const (
	cookieName = "ims-session"

	keyAccessToken = "accessToken"
	keyRole        = "role"
	keyPatientID   = "patientId"
)

// Store persists the session's three keys in an authenticated cookie. Reads
// and writes are synchronous; there is no server-side session state.
type Store struct {
	cookies *sessions.CookieStore
}

// NewStore creates a cookie-backed store. The secret signs (and with a 32 or
// 64 byte value, encrypts) the cookie payload.
func NewStore(secret []byte) *Store {
	cs := sessions.NewCookieStore(secret)
	cs.Options = &sessions.Options{
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	return &Store{cookies: cs}
}

// Get reads the session from the request cookie. A missing or undecodable
// cookie yields the zero Session rather than an error: an unreadable session
// is simply an unauthenticated one.
func (st *Store) Get(r *http.Request) Session {
	cs, err := st.cookies.Get(r, cookieName)
	if err != nil {
		return Session{}
	}

	var s Session
	if tok, ok := cs.Values[keyAccessToken].(string); ok {
		s.AccessToken = tok
	}
	if role, ok := cs.Values[keyRole].(string); ok {
		if parsed, valid := ParseRole(role); valid {
			s.Role = parsed
		}
	}
	if pid, ok := cs.Values[keyPatientID].(string); ok {
		s.PatientID = pid
	}
	return s
}

// Save writes the full session in one shot, so the token is always paired
// with its role and, for patients, the patient id.
func (st *Store) Save(r *http.Request, w http.ResponseWriter, s Session) error {
	cs, _ := st.cookies.Get(r, cookieName)
	cs.Values[keyAccessToken] = s.AccessToken
	cs.Values[keyRole] = string(s.Role)
	if s.Role == RolePatient {
		cs.Values[keyPatientID] = s.PatientID
	} else {
		delete(cs.Values, keyPatientID)
	}
	return cs.Save(r, w)
}

// Clear drops all session keys and expires the cookie.
func (st *Store) Clear(r *http.Request, w http.ResponseWriter) error {
	cs, _ := st.cookies.Get(r, cookieName)
	for k := range cs.Values {
		delete(cs.Values, k)
	}
	cs.Options.MaxAge = -1
	return cs.Save(r, w)
}
