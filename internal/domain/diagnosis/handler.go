package diagnosis

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
	"github.com/imagems/console/internal/session"
	"github.com/imagems/console/pkg/pagination"
)

type Handler struct {
	repo     Repository
	pageSize int
}

func NewHandler(repo Repository, pageSize int) *Handler {
	return &Handler{repo: repo, pageSize: pageSize}
}

// RegisterRoutes mounts the diagnosis pages. Listing, creation and deletion
// hang off the owning patient; single-record routes carry the patient in the
// patientId query parameter.
func (h *Handler) RegisterRoutes(app *echo.Group) {
	owned := app.Group("/patients/:id/diagnoses", guard.RequireOwnPatient("id"))
	owned.GET("", h.List)
	owned.POST("", h.Create)
	owned.POST("/:diagID/delete", h.RequestDelete)
	owned.POST("/:diagID/delete/confirm", h.ConfirmDelete)
	owned.POST("/:diagID/delete/cancel", h.CancelDelete)

	app.GET("/diagnoses/:diagID", h.Get)
	app.PUT("/diagnoses/:diagID", h.Update)
}

func (h *Handler) controller(c echo.Context, patientID int64) *listctl.Controller[Diagnosis] {
	q := pagination.FromContext(c)
	fetch := func(ctx context.Context, q pagination.Query) (pagination.Result[Diagnosis], error) {
		return h.repo.ListByPatient(ctx, patientID, q)
	}
	ctl := listctl.New(fetch, h.pageSize)
	ctl.Restore(q.Page, q.Search)
	return ctl
}

func (h *Handler) List(c echo.Context) error {
	patientID, err := paramID(c, "id")
	if err != nil {
		return err
	}
	ctl := h.controller(c, patientID)
	if err := ctl.Refresh(c.Request().Context()); err != nil {
		return err
	}
	res := pagination.Result[Diagnosis]{Content: ctl.Content(), TotalPages: ctl.TotalPages()}
	return c.JSON(http.StatusOK, pagination.NewResponse(res, ctl.Query()))
}

func (h *Handler) Get(c echo.Context) error {
	id, err := paramID(c, "diagID")
	if err != nil {
		return err
	}
	if !patientScopeAllowed(c) {
		return c.Redirect(http.StatusSeeOther, "/dashboard")
	}
	d, err := h.repo.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, d)
}

func (h *Handler) Create(c echo.Context) error {
	patientID, err := paramID(c, "id")
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
	d, err := h.repo.Create(c.Request().Context(), patientID, in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, map[string]any{
		"message":   "Diagnosis created succesfully",
		"diagnosis": d,
	})
}

func (h *Handler) Update(c echo.Context) error {
	id, err := paramID(c, "diagID")
	if err != nil {
		return err
	}
	if !patientScopeAllowed(c) {
		return c.Redirect(http.StatusSeeOther, "/dashboard")
	}
	patientID, err := strconv.ParseInt(c.QueryParam("patientId"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "patientId is required")
	}
	var in Input
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := in.Validate(); err != nil {
		return validationResponse(c, err)
	}
	d, err := h.repo.Update(c.Request().Context(), id, patientID, in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]any{
		"message":   "Diagnosis updated succesfully",
		"diagnosis": d,
	})
}

func (h *Handler) RequestDelete(c echo.Context) error {
	if _, err := paramID(c, "diagID"); err != nil {
		return err
	}
	flow := h.flow(nil)
	flow.Request(c.Param("diagID"))
	return c.JSON(http.StatusOK, map[string]string{
		"target":  flow.Target(),
		"message": "This action cannot be undone. This will permanently delete the diagnosis.",
	})
}

func (h *Handler) ConfirmDelete(c echo.Context) error {
	patientID, err := paramID(c, "id")
	if err != nil {
		return err
	}
	if _, err := paramID(c, "diagID"); err != nil {
		return err
	}
	ctl := h.controller(c, patientID)
	flow := h.flow(ctl)
	flow.Request(c.Param("diagID"))
	if err := flow.Confirm(c.Request().Context()); err != nil {
		return err
	}
	res := pagination.Result[Diagnosis]{Content: ctl.Content(), TotalPages: ctl.TotalPages()}
	return c.JSON(http.StatusOK, map[string]any{
		"message": "Diagnosis deleted succesfully",
		"list":    pagination.NewResponse(res, ctl.Query()),
	})
}

func (h *Handler) CancelDelete(c echo.Context) error {
	flow := h.flow(nil)
	flow.Request(c.Param("diagID"))
	if err := flow.Cancel(); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Delete cancelled"})
}

func (h *Handler) flow(ctl *listctl.Controller[Diagnosis]) *confirm.Flow {
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

// patientScopeAllowed applies the own-records rule on routes that carry the
// patient in the query string rather than the path. Callers must stop and
// redirect on a false return; nothing may reach the backend after a denial.
func patientScopeAllowed(c echo.Context) bool {
	s := session.FromContext(c.Request().Context())
	return s.OwnsPatient(c.QueryParam("patientId"))
}

func paramID(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
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
