package diagnosis

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
		if r.URL.Path != "/api/v1/app/diagnoses/patient/9" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.URL.Query().Get("page") != "1" {
			t.Errorf("unexpected query %v", r.URL.Query())
		}
		w.Write([]byte(`{"content":[{"id":2,"diagnosis":"Melanoma","cost":1500}],"totalPages":1}`))
	}))
	defer srv.Close()

	repo := NewHTTPRepository(gateway.NewClient(srv.URL, nil))
	res, err := repo.ListByPatient(context.Background(), 9, pagination.Query{Page: 0, Size: 5})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(res.Content) != 1 || res.Content[0].Cost != 1500 {
		t.Errorf("unexpected result %+v", res)
	}
}

func TestCreate_EmbedsPatientRef(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/v1/app/diagnoses/patient/9" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		var body map[string]any
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decode: %v", err)
		}
		patient, _ := body["patient"].(map[string]any)
		if patient["id"] != float64(9) {
			t.Errorf("expected nested patient ref, got %v", body["patient"])
		}
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id":7,"diagnosis":"Melanoma"}`))
	}))
	defer srv.Close()

	repo := NewHTTPRepository(gateway.NewClient(srv.URL, nil))
	d, err := repo.Create(context.Background(), 9, Input{Diagnosis: "Melanoma", Cost: 1500})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if d.ID != 7 {
		t.Errorf("unexpected diagnosis %+v", d)
	}
}

func TestUpdate_IDInPath(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut || r.URL.Path != "/api/v1/app/diagnoses/7" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		w.Write([]byte(`{"id":7}`))
	}))
	defer srv.Close()

	repo := NewHTTPRepository(gateway.NewClient(srv.URL, nil))
	if _, err := repo.Update(context.Background(), 7, 9, Input{Diagnosis: "Melanoma"}); err != nil {
		t.Fatalf("update: %v", err)
	}
}
