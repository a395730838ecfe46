package user

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/imagems/console/internal/domain/auth"
	"github.com/imagems/console/internal/platform/confirm"
	"github.com/imagems/console/internal/platform/guard"
	"github.com/imagems/console/internal/platform/listctl"
	"github.com/imagems/console/pkg/pagination"
)

type Handler struct {
	repo     Repository
	pageSize int
}

func NewHandler(repo Repository, pageSize int) *Handler {
	return &Handler{repo: repo, pageSize: pageSize}
}

// RegisterRoutes mounts the user administration pages. The whole group is
// gated on the privileged role; non-admin sessions land back on the
// dashboard.
func (h *Handler) RegisterRoutes(app *echo.Group) {
	users := app.Group("/users", guard.RequireAdmin())
	users.GET("", h.List)
	users.POST("", h.Create)
	users.GET("/:id", h.Get)
	users.PUT("/:id", h.Update)
	users.POST("/:id/delete", h.RequestDelete)
	users.POST("/:id/delete/confirm", h.ConfirmDelete)
	users.POST("/:id/delete/cancel", h.CancelDelete)
}

func (h *Handler) controller(c echo.Context) *listctl.Controller[User] {
	q := pagination.FromContext(c)
	ctl := listctl.New(h.repo.List, h.pageSize)
	ctl.Restore(q.Page, q.Search)
	return ctl
}

func (h *Handler) List(c echo.Context) error {
	ctl := h.controller(c)
	if err := ctl.Refresh(c.Request().Context()); err != nil {
		return err
	}
	res := pagination.Result[User]{Content: ctl.Content(), TotalPages: ctl.TotalPages()}
	return c.JSON(http.StatusOK, pagination.NewResponse(res, ctl.Query()))
}

func (h *Handler) Get(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	u, err := h.repo.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, u)
}

func (h *Handler) Create(c echo.Context) error {
	var in Input
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := in.Validate(); err != nil {
		return validationResponse(c, err)
	}
	u, err := h.repo.Create(c.Request().Context(), in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, map[string]any{
		"message": "User created succesfully",
		"user":    u,
	})
}

func (h *Handler) Update(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	var in Input
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := in.Validate(); err != nil {
		return validationResponse(c, err)
	}
	u, err := h.repo.Update(c.Request().Context(), id, in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]any{
		"message": "User updated succesfully",
		"user":    u,
	})
}

func (h *Handler) RequestDelete(c echo.Context) error {
	if _, err := parseID(c); err != nil {
		return err
	}
	flow := h.flow(nil)
	flow.Request(c.Param("id"))
	return c.JSON(http.StatusOK, map[string]string{
		"target":  flow.Target(),
		"message": "This action cannot be undone. This will permanently delete the user.",
	})
}

func (h *Handler) ConfirmDelete(c echo.Context) error {
	if _, err := parseID(c); err != nil {
		return err
	}
	ctl := h.controller(c)
	flow := h.flow(ctl)
	flow.Request(c.Param("id"))
	if err := flow.Confirm(c.Request().Context()); err != nil {
		return err
	}
	res := pagination.Result[User]{Content: ctl.Content(), TotalPages: ctl.TotalPages()}
	return c.JSON(http.StatusOK, map[string]any{
		"message": "User deleted succesfully",
		"list":    pagination.NewResponse(res, ctl.Query()),
	})
}

func (h *Handler) CancelDelete(c echo.Context) error {
	flow := h.flow(nil)
	flow.Request(c.Param("id"))
	if err := flow.Cancel(); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Delete cancelled"})
}

func (h *Handler) flow(ctl *listctl.Controller[User]) *confirm.Flow {
	return confirm.New(
		func(ctx context.Context, target string) error {
			id, err := strconv.ParseInt(target, 10, 64)
			if err != nil {
				return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
			}
			return h.repo.Delete(ctx, id)
		},
		func(ctx context.Context) error {
			if ctl == nil {
				return nil
			}
			return ctl.Refresh(ctx)
		},
	)
}

func parseID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return id, nil
}

func validationResponse(c echo.Context, err error) error {
	var verrs auth.ValidationErrors
	if errors.As(err, &verrs) {
		return c.JSON(http.StatusUnprocessableEntity, map[string]any{"errors": verrs})
	}
	return err
}
