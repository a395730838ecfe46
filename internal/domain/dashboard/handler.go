// Package dashboard renders the landing page shown after login: one card per
// console area the session's role may enter.
package dashboard

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/imagems/console/internal/session"
)

// Card is one navigation tile on the dashboard.
type Card struct {
	Title    string `json:"title"`
	Resource string `json:"resource"`
	Href     string `json:"href"`
}

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

func (h *Handler) RegisterRoutes(app *echo.Group) {
	app.GET("/dashboard", h.Show)
}

// Show lists the cards for the session's role. Patients get links scoped to
// their own record; staff get the collection pages.
func (h *Handler) Show(c echo.Context) error {
	s := session.FromContext(c.Request().Context())
	return c.JSON(http.StatusOK, map[string]any{
		"role":  s.Role.Display(),
		"cards": CardsFor(s),
	})
}

// CardsFor derives the dashboard tiles from the capability table.
func CardsFor(s session.Session) []Card {
	cards := []Card{}
	add := func(res session.Resource, title, href string) {
		if session.CanView(s.Role, res) {
			cards = append(cards, Card{Title: title, Resource: string(res), Href: href})
		}
	}

	add(session.ResourcePatients, "Patients", "/patients")
	add(session.ResourceUsers, "Users", "/users")
	if s.Role == session.RolePatient {
		add(session.ResourceImages, "My Images", "/patients/"+s.PatientID+"/images")
		add(session.ResourceDiagnoses, "My Diagnoses", "/patients/"+s.PatientID+"/diagnoses")
	} else {
		add(session.ResourceImages, "Images", "/patients")
		add(session.ResourceDiagnoses, "Diagnoses", "/patients")
	}
	return cards
}
