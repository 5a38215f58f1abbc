package routes

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	humachi "github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"

	"github.com/neshama/memorial/internal/platform/auth"
	"github.com/neshama/memorial/internal/platform/kv"
	memorialsvc "github.com/neshama/memorial/internal/service/memorial"
)

func setupRouter(t *testing.T) *chi.Mux {
	t.Helper()
	memorialService := memorialsvc.NewStore(kv.NewMemory())
	sessionService := auth.NewService()
	verifier := auth.NewSessionVerifier(sessionService, func(context.Context) []string { return nil })

	router := chi.NewRouter()
	cfg := huma.DefaultConfig("Test", "1.0.0")
	cfg.Servers = []*huma.Server{{URL: "/v1"}}
	var api huma.API
	router.Route("/v1", func(r chi.Router) {
		api = humachi.New(r, cfg)
	})
	Register(api, verifier, sessionService, memorialService)
	return router
}

func TestRegisteredRoutes(t *testing.T) {
	router := setupRouter(t)

	tests := []struct {
		method string
		path   string
		want   int
	}{
		{http.MethodGet, "/v1/profiles", http.StatusOK},
		{http.MethodGet, "/v1/profiles/demo-1", http.StatusOK},
		{http.MethodGet, "/v1/community", http.StatusOK},
		{http.MethodGet, "/v1/admin/config", http.StatusUnauthorized},
		{http.MethodGet, "/v1/auth/sessions", http.StatusUnauthorized},
		{http.MethodPost, "/v1/profiles/drafts", http.StatusCreated},
	}
	for _, tt := range tests {
		req := httptest.NewRequest(tt.method, tt.path, nil)
		req.Header.Set("Accept", "application/json")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		if rec.Code != tt.want {
			t.Errorf("%s %s = %d, want %d", tt.method, tt.path, rec.Code, tt.want)
		}
	}
}

func TestAPIPrefixInLinks(t *testing.T) {
	router := setupRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/profiles?limit=1", nil)
	req.Header.Set("Accept", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	link := rec.Header().Get("Link")
	if link == "" {
		t.Fatal("expected Link header")
	}
	if got := link[:len("</v1/profiles")]; got != "</v1/profiles" {
		t.Fatalf("pagination links should carry the /v1 prefix, got %q", link)
	}
}
