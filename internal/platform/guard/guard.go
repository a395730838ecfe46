// Package guard gates navigation to protected console routes based on the
// session. Two variants exist: Authenticated, which only requires a token,
// and Admin, which additionally requires the privileged role and soft-denies
// everyone else back to the dashboard so "logged in but not allowed" is
// distinguishable from "not logged in".
package guard

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/imagems/console/internal/session"
)

// State is the guard's resolution for one navigation attempt.
type State int

const (
	// Unknown is the initial state before the session has been read.
	Unknown State = iota
	// Allow renders the route.
	Allow
	// DenyLogin redirects to the login page.
	DenyLogin
	// DenyDashboard is the soft-deny for authenticated users lacking the
	// required role.
	DenyDashboard
)

// Decision pairs a resolved state with its redirect target, if any.
type Decision struct {
	State    State
	Redirect string
}

// Authenticated resolves the plain guard: any access token allows.
func Authenticated(s session.Session) Decision {
	if !s.Authenticated() {
		return Decision{State: DenyLogin, Redirect: "/login"}
	}
	return Decision{State: Allow}
}

// Admin resolves the privileged guard. Order matters: the role check runs
// only for authenticated sessions, so a missing token always lands on login.
func Admin(s session.Session) Decision {
	if !s.Authenticated() {
		return Decision{State: DenyLogin, Redirect: "/login"}
	}
	if !s.IsAdmin() {
		return Decision{State: DenyDashboard, Redirect: "/dashboard"}
	}
	return Decision{State: Allow}
}

func middlewareFor(resolve func(session.Session) Decision) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			d := resolve(session.FromContext(c.Request().Context()))
			if d.State != Allow {
				return c.Redirect(http.StatusSeeOther, d.Redirect)
			}
			return next(c)
		}
	}
}

// RequireAuthenticated wraps a route group with the Authenticated guard.
func RequireAuthenticated() echo.MiddlewareFunc {
	return middlewareFor(Authenticated)
}

// RequireAdmin wraps a route group with the Admin guard.
func RequireAdmin() echo.MiddlewareFunc {
	return middlewareFor(Admin)
}

// RequireOwnPatient scopes a patient-bound route to the patient's own records.
// Staff pass through untouched; a patient asking for another patient's id is
// soft-denied to the dashboard. The real enforcement stays server-side in the
// backend; this only shapes what the console will render.
func RequireOwnPatient(param string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			s := session.FromContext(c.Request().Context())
			if !s.OwnsPatient(c.Param(param)) {
				return c.Redirect(http.StatusSeeOther, "/dashboard")
			}
			return next(c)
		}
	}
}
