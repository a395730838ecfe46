package image

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/imagems/console/internal/domain/auth"
	"github.com/imagems/console/internal/platform/confirm"
	"github.com/imagems/console/internal/platform/datauri"
	"github.com/imagems/console/internal/platform/guard"
	"github.com/imagems/console/internal/platform/listctl"
	"github.com/imagems/console/internal/session"
	"github.com/imagems/console/pkg/pagination"
)

// maxUploadBytes caps a single image upload.
const maxUploadBytes = 10 << 20

type Handler struct {
	repo     Repository
	pageSize int
}

func NewHandler(repo Repository, pageSize int) *Handler {
	return &Handler{repo: repo, pageSize: pageSize}
}

// RegisterRoutes mounts the image pages. Listing and uploads hang off the
// owning patient; single-image routes carry the patient in the patientId
// query parameter instead.
func (h *Handler) RegisterRoutes(app *echo.Group) {
	owned := app.Group("/patients/:id/images", guard.RequireOwnPatient("id"))
	owned.GET("", h.List)
	owned.POST("", h.Upload)
	owned.POST("/:imageID/delete", h.RequestDelete)
	owned.POST("/:imageID/delete/confirm", h.ConfirmDelete)
	owned.POST("/:imageID/delete/cancel", h.CancelDelete)

	app.GET("/images/:imageID", h.Get)
	app.PUT("/images/:imageID", h.Update)
}

func (h *Handler) controller(c echo.Context, patientID int64) *listctl.Controller[Image] {
	q := pagination.FromContext(c)
	fetch := func(ctx context.Context, q pagination.Query) (pagination.Result[Image], error) {
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
	res := pagination.Result[Image]{Content: ctl.Content(), TotalPages: ctl.TotalPages()}
	return c.JSON(http.StatusOK, pagination.NewResponse(res, ctl.Query()))
}

// Upload accepts a multipart form with the image file and its lookup
// selections, converts the file to a data URI and forwards it. Non-image
// files are rejected before anything is sent.
func (h *Handler) Upload(c echo.Context) error {
	patientID, err := paramID(c, "id")
	if err != nil {
		return err
	}

	fh, err := c.FormFile("file")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "image file is required")
	}
	if fh.Size > maxUploadBytes {
		return echo.NewHTTPError(http.StatusRequestEntityTooLarge, "image too large")
	}
	mime := fh.Header.Get("Content-Type")
	if err := datauri.ValidateImage(mime); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "Only image files are allowed")
	}

	src, err := fh.Open()
	if err != nil {
		return err
	}
	defer src.Close()
	data, err := io.ReadAll(src)
	if err != nil {
		return err
	}

	in := Input{
		DiseaseType: c.Request().Form["diseaseTypes"],
		ImageType:   c.Request().Form["imageTypes"],
		Base64:      datauri.Encode(datauri.File{Name: fh.Filename, MIMEType: mime, Data: data}),
	}
	if err := in.Validate(); err != nil {
		return validationResponse(c, err)
	}

	img, err := h.repo.Create(c.Request().Context(), patientID, in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, map[string]any{
		"message": "Image uploaded succesfully",
		"image":   img,
	})
}

func (h *Handler) Get(c echo.Context) error {
	id, err := paramID(c, "imageID")
	if err != nil {
		return err
	}
	if !patientScopeAllowed(c) {
		return c.Redirect(http.StatusSeeOther, "/dashboard")
	}
	img, err := h.repo.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	f, err := img.Decode()
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]any{
		"image":    img,
		"fileName": f.Name,
		"mimeType": f.MIMEType,
	})
}

func (h *Handler) Update(c echo.Context) error {
	id, err := paramID(c, "imageID")
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
	img, err := h.repo.Update(c.Request().Context(), id, patientID, in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]any{
		"message": "Image updated succesfully",
		"image":   img,
	})
}

func (h *Handler) RequestDelete(c echo.Context) error {
	if _, err := paramID(c, "imageID"); err != nil {
		return err
	}
	flow := h.flow(nil)
	flow.Request(c.Param("imageID"))
	return c.JSON(http.StatusOK, map[string]string{
		"target":  flow.Target(),
		"message": "This action cannot be undone. This will permanently delete the image.",
	})
}

func (h *Handler) ConfirmDelete(c echo.Context) error {
	patientID, err := paramID(c, "id")
	if err != nil {
		return err
	}
	if _, err := paramID(c, "imageID"); err != nil {
		return err
	}
	ctl := h.controller(c, patientID)
	flow := h.flow(ctl)
	flow.Request(c.Param("imageID"))
	if err := flow.Confirm(c.Request().Context()); err != nil {
		return err
	}
	res := pagination.Result[Image]{Content: ctl.Content(), TotalPages: ctl.TotalPages()}
	return c.JSON(http.StatusOK, map[string]any{
		"message": "Image deleted succesfully",
		"list":    pagination.NewResponse(res, ctl.Query()),
	})
}

func (h *Handler) CancelDelete(c echo.Context) error {
	flow := h.flow(nil)
	flow.Request(c.Param("imageID"))
	if err := flow.Cancel(); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Delete cancelled"})
}

func (h *Handler) flow(ctl *listctl.Controller[Image]) *confirm.Flow {
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
