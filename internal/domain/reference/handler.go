package reference

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/imagems/console/internal/platform/guard"
)

type Handler struct {
	repo Repository
}

func NewHandler(repo Repository) *Handler {
	return &Handler{repo: repo}
}

func (h *Handler) RegisterRoutes(app *echo.Group) {
	app.GET("/reference/disease-types", h.DiseaseTypes)
	app.GET("/reference/image-types", h.ImageTypes)
	// User roles feed the user form, which is admin-only.
	app.GET("/reference/user-roles", h.UserRoles, guard.RequireAdmin())
}

func (h *Handler) DiseaseTypes(c echo.Context) error {
	items, err := h.repo.DiseaseTypes(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, Options(items))
}

func (h *Handler) ImageTypes(c echo.Context) error {
	items, err := h.repo.ImageTypes(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, Options(items))
}

func (h *Handler) UserRoles(c echo.Context) error {
	items, err := h.repo.UserRoles(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, Options(items))
}
