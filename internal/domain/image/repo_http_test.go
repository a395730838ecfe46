package image

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/imagems/console/internal/gateway"
	"github.com/imagems/console/pkg/pagination"
)

func TestListByPatient_WireFormat(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/app/images/patient/4" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("page") != "2" || q.Get("size") != "5" {
			t.Errorf("unexpected query %v", q)
		}
		w.Write([]byte(`{"content":[{"id":1,"imagebase64":"data:image/png;base64,AQ=="}],"totalPages":2}`))
	}))
	defer srv.Close()

	repo := NewHTTPRepository(gateway.NewClient(srv.URL, nil))
	res, err := repo.ListByPatient(context.Background(), 4, pagination.Query{Page: 1, Size: 5})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if res.TotalPages != 2 || len(res.Content) != 1 {
		t.Errorf("unexpected result %+v", res)
	}
}

func TestCreate_PatientScopedPathAndBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/v1/app/images/patient/4" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		var body map[string]any
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decode: %v", err)
		}
		patient, _ := body["patient"].(map[string]any)
		if patient["id"] != float64(4) {
			t.Errorf("expected nested patient ref, got %v", body["patient"])
		}
		disease, _ := body["diseaseTypes"].(map[string]any)
		if disease["id"] != "3" {
			t.Errorf("expected disease ref collapsed to first selection, got %v", body["diseaseTypes"])
		}
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id":11}`))
	}))
	defer srv.Close()

	repo := NewHTTPRepository(gateway.NewClient(srv.URL, nil))
	in := Input{DiseaseType: []string{"3", "5"}, ImageType: []string{"1"}, Base64: "data:image/png;base64,AQ=="}
	img, err := repo.Create(context.Background(), 4, in)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if img.ID != 11 {
		t.Errorf("unexpected image %+v", img)
	}
}

func TestUpdate_IDInPath(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut || r.URL.Path != "/api/v1/app/images/11" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		w.Write([]byte(`{"id":11}`))
	}))
	defer srv.Close()

	repo := NewHTTPRepository(gateway.NewClient(srv.URL, nil))
	in := Input{DiseaseType: []string{"3"}, ImageType: []string{"1"}, Base64: "data:image/png;base64,AQ=="}
	if _, err := repo.Update(context.Background(), 11, 4, in); err != nil {
		t.Fatalf("update: %v", err)
	}
}

func TestDelete_Path(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete || r.URL.Path != "/api/v1/app/images/11" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	repo := NewHTTPRepository(gateway.NewClient(srv.URL, nil))
	if err := repo.Delete(context.Background(), 11); err != nil {
		t.Fatalf("delete: %v", err)
	}
}
