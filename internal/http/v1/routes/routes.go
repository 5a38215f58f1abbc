package routes

import (
	"net/url"

	"github.com/danielgtaylor/huma/v2"

	"github.com/neshama/memorial/internal/http/v1/admin"
	"github.com/neshama/memorial/internal/http/v1/profiles"
	"github.com/neshama/memorial/internal/http/v1/sessions"
	"github.com/neshama/memorial/internal/platform/auth"
	memorialsvc "github.com/neshama/memorial/internal/service/memorial"
)

// Register wires all HTTP routes into the provided API router.
func Register(
	api huma.API,
	verifier auth.Verifier,
	sessionService *auth.Service,
	memorialService memorialsvc.Service,
) {
	prefix := apiPrefix(api)

	// Apply auth middleware for protected endpoints
	api.UseMiddleware(auth.NewAuthMiddleware(api, verifier))

	profiles.Register(api, memorialService, prefix)
	sessions.Register(api, sessionService, verifier)
	admin.Register(api, memorialService, prefix)
}

func apiPrefix(api huma.API) string {
	for _, s := range api.OpenAPI().Servers {
		if u, err := url.Parse(s.URL); err == nil && u.Path != "" {
			return u.Path
		}
	}
	return ""
}
