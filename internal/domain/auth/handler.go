package auth

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/imagems/console/internal/session"
)

type Handler struct {
	repo   Repository
	store  *session.Store
	logger zerolog.Logger
}

func NewHandler(repo Repository, store *session.Store, logger zerolog.Logger) *Handler {
	return &Handler{repo: repo, store: store, logger: logger}
}

// RegisterRoutes mounts the public auth surface; none of these routes sit
// behind a guard.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.GET("/", h.Welcome)
	e.GET("/login", h.LoginPage)
	e.POST("/login", h.Login)
	e.POST("/logout", h.Logout)
}

func (h *Handler) Welcome(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"name":    "IMS System",
		"message": "Welcome to the Image Management System",
	})
}

func (h *Handler) LoginPage(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"message": "Login to your account",
	})
}

func (h *Handler) Login(c echo.Context) error {
	var cr Credentials
	if err := c.Bind(&cr); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := cr.Validate(); err != nil {
		var verrs ValidationErrors
		if errors.As(err, &verrs) {
			return c.JSON(http.StatusUnprocessableEntity, map[string]any{"errors": verrs})
		}
		return err
	}

	res, err := h.repo.Login(c.Request().Context(), cr.Email, cr.Password)
	if err != nil {
		// Login failures are handled here, not by the global 401
		// interceptor: there is no session to clear yet.
		return c.JSON(http.StatusUnauthorized, map[string]string{
			"message": "Invalid email or password",
		})
	}

	role, ok := session.ParseRole(res.UserRole.Name)
	if !ok {
		h.logger.Error().Str("role", res.UserRole.Name).Msg("backend returned unknown role")
		return c.JSON(http.StatusUnauthorized, map[string]string{
			"message": "Invalid email or password",
		})
	}

	s := session.Session{AccessToken: res.AccessToken, Role: role}
	if role == session.RolePatient && res.Patient != nil {
		s.PatientID = strconv.FormatInt(res.Patient.ID, 10)
	}
	if err := h.store.Save(c.Request(), c.Response(), s); err != nil {
		return err
	}

	h.logLogin(res.AccessToken, role)
	return c.Redirect(http.StatusSeeOther, "/dashboard")
}

// logLogin records who logged in, from the token's own claims. The parse is
// deliberately unverified: the backend already authenticated the token, and
// the console never enforces expiry client-side.
func (h *Handler) logLogin(token string, role session.Role) {
	evt := h.logger.Info().Str("role", string(role))
	claims := jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err == nil {
		evt = evt.Str("subject", claims.Subject)
		if claims.ExpiresAt != nil {
			evt = evt.Time("token_expires", claims.ExpiresAt.Time)
		}
	}
	evt.Msg("login")
}

func (h *Handler) Logout(c echo.Context) error {
	if err := h.store.Clear(c.Request(), c.Response()); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/login")
}
