package image

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/imagems/console/internal/platform/datauri"
	"github.com/imagems/console/internal/session"
	"github.com/imagems/console/pkg/pagination"
)

type mockRepo struct {
	images    map[int64]*Image
	created   []Input
	createdTo []int64
	listCalls []pagination.Query
	deleted   []int64
	gets      []int64
	updated   []int64
}

func newMockRepo() *mockRepo {
	return &mockRepo{images: make(map[int64]*Image)}
}

func (m *mockRepo) ListByPatient(_ context.Context, _ int64, q pagination.Query) (pagination.Result[Image], error) {
	m.listCalls = append(m.listCalls, q)
	var all []Image
	for _, img := range m.images {
		all = append(all, *img)
	}
	return pagination.Result[Image]{Content: all, TotalPages: 1}, nil
}

func (m *mockRepo) Get(_ context.Context, id int64) (*Image, error) {
	m.gets = append(m.gets, id)
	img, ok := m.images[id]
	if !ok {
		return nil, fmt.Errorf("not found")
	}
	return img, nil
}

func (m *mockRepo) Create(_ context.Context, patientID int64, in Input) (*Image, error) {
	m.created = append(m.created, in)
	m.createdTo = append(m.createdTo, patientID)
	id := int64(len(m.images) + 1)
	img := &Image{ID: id, Base64: in.Base64}
	m.images[id] = img
	return img, nil
}

func (m *mockRepo) Update(_ context.Context, id, _ int64, in Input) (*Image, error) {
	m.updated = append(m.updated, id)
	img, ok := m.images[id]
	if !ok {
		return nil, fmt.Errorf("not found")
	}
	img.Base64 = in.Base64
	return img, nil
}

func (m *mockRepo) Delete(_ context.Context, id int64) error {
	delete(m.images, id)
	m.deleted = append(m.deleted, id)
	return nil
}

func newServer(repo Repository) *echo.Echo {
	e := echo.New()
	NewHandler(repo, 5).RegisterRoutes(e.Group(""))
	return e
}

func staffCtx(req *http.Request) *http.Request {
	s := session.Session{AccessToken: "t", Role: session.RoleDoctor}
	return req.WithContext(session.NewContext(req.Context(), s))
}

func multipartUpload(t *testing.T, filename, mimeType string, data []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	hdr := textproto.MIMEHeader{}
	hdr.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename=%q`, filename))
	hdr.Set("Content-Type", mimeType)
	part, err := w.CreatePart(hdr)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := part.Write(data); err != nil {
		t.Fatal(err)
	}
	if err := w.WriteField("diseaseTypes", "3"); err != nil {
		t.Fatal(err)
	}
	if err := w.WriteField("imageTypes", "1"); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	return &buf, w.FormDataContentType()
}

func TestUpload_EncodesDataURI(t *testing.T) {
	repo := newMockRepo()
	e := newServer(repo)

	raw := []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a, 1, 2, 3}
	body, contentType := multipartUpload(t, "scan.png", "image/png", raw)

	req := staffCtx(httptest.NewRequest("POST", "/patients/4/images", body))
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	if len(repo.created) != 1 || repo.createdTo[0] != 4 {
		t.Fatalf("expected one create for patient 4, got %v", repo.createdTo)
	}

	f, err := datauri.Decode(repo.created[0].Base64)
	if err != nil {
		t.Fatalf("stored value is not a data URI: %v", err)
	}
	if f.Name != "scan.png" || f.MIMEType != "image/png" {
		t.Errorf("metadata lost: %+v", f)
	}
	if !bytes.Equal(f.Data, raw) {
		t.Error("decoded bytes differ from the upload")
	}
}

func TestUpload_RejectsNonImage(t *testing.T) {
	repo := newMockRepo()
	e := newServer(repo)

	body, contentType := multipartUpload(t, "notes.txt", "text/plain", []byte("hello"))
	req := staffCtx(httptest.NewRequest("POST", "/patients/4/images", body))
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Only image files are allowed") {
		t.Errorf("expected the image-only message, got %s", rec.Body.String())
	}
	if len(repo.created) != 0 {
		t.Error("rejected upload must never reach the backend")
	}
}

func TestGet_DecodesStoredImage(t *testing.T) {
	repo := newMockRepo()
	raw := []byte{0xff, 0xd8, 0xff, 0xe0, 9, 8, 7}
	repo.images[5] = &Image{
		ID:     5,
		Base64: datauri.Encode(datauri.File{Name: "xray.jpg", MIMEType: "image/jpeg", Data: raw}),
	}
	e := newServer(repo)

	req := staffCtx(httptest.NewRequest("GET", "/images/5?patientId=4", nil))
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	for _, want := range []string{`"fileName":"xray.jpg"`, `"mimeType":"image/jpeg"`} {
		if !strings.Contains(rec.Body.String(), want) {
			t.Errorf("expected %s in response, got %s", want, rec.Body.String())
		}
	}
}

func TestConfirmDelete_RefetchesPatientList(t *testing.T) {
	repo := newMockRepo()
	repo.images[2] = &Image{ID: 2}
	e := newServer(repo)

	req := staffCtx(httptest.NewRequest("POST", "/patients/4/images/2/delete/confirm?page=1", nil))
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if len(repo.deleted) != 1 || repo.deleted[0] != 2 {
		t.Errorf("expected image 2 deleted, got %v", repo.deleted)
	}
	if len(repo.listCalls) != 1 {
		t.Fatalf("expected exactly one refetch, got %d", len(repo.listCalls))
	}
	if repo.listCalls[0].Page != 1 {
		t.Errorf("refetch must keep the prior page, got %d", repo.listCalls[0].Page)
	}
}

func TestPatientScope_QueryParam(t *testing.T) {
	repo := newMockRepo()
	repo.images[5] = &Image{ID: 5, Base64: datauri.Encode(datauri.File{Data: []byte{1}})}
	e := newServer(repo)

	own := session.Session{AccessToken: "t", Role: session.RolePatient, PatientID: "4"}

	req := httptest.NewRequest("GET", "/images/5?patientId=4", nil)
	req = req.WithContext(session.NewContext(req.Context(), own))
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("patient must read own image, got %d", rec.Code)
	}

	getsBefore := len(repo.gets)
	req = httptest.NewRequest("GET", "/images/5?patientId=9", nil)
	req = req.WithContext(session.NewContext(req.Context(), own))
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusSeeOther || rec.Header().Get("Location") != "/dashboard" {
		t.Errorf("patient must be soft-denied another patient's image, got %d", rec.Code)
	}
	if len(repo.gets) != getsBefore {
		t.Error("a denied request must never reach the backend")
	}
	if strings.Contains(rec.Body.String(), "imagebase64") {
		t.Error("the record must not leak into the redirect body")
	}
}

func TestPatientScope_UpdateDenied(t *testing.T) {
	repo := newMockRepo()
	repo.images[5] = &Image{ID: 5}
	e := newServer(repo)

	own := session.Session{AccessToken: "t", Role: session.RolePatient, PatientID: "4"}
	body := `{"diseaseTypes":["3"],"imageTypes":["1"],"imagebase64":"data:image/png;base64,AQ=="}`
	req := httptest.NewRequest("PUT", "/images/5?patientId=9", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req = req.WithContext(session.NewContext(req.Context(), own))
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusSeeOther || rec.Header().Get("Location") != "/dashboard" {
		t.Fatalf("expected soft-deny, got %d", rec.Code)
	}
	if len(repo.updated) != 0 {
		t.Error("a denied update must never reach the backend")
	}
}
