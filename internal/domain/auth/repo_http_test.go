package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/imagems/console/internal/gateway"
)

func TestHTTPRepository_Login(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/v1/app/auth/login" {
			t.Errorf("unexpected call %s %s", r.Method, r.URL.Path)
		}
		var body map[string]string
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		// The backend names the email field "username".
		if body["username"] != "a@b.com" || body["password"] != "12345678" {
			t.Errorf("unexpected payload %v", body)
		}
		w.Write([]byte(`{"accessToken":"tok","userRole":{"name":"SUPER_ADMIN"}}`))
	}))
	defer srv.Close()

	repo := NewHTTPRepository(gateway.NewClient(srv.URL, nil))
	res, err := repo.Login(context.Background(), "a@b.com", "12345678")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if res.AccessToken != "tok" || res.UserRole.Name != "SUPER_ADMIN" {
		t.Errorf("unexpected result %+v", res)
	}
}
