package admin

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"slices"

	"github.com/danielgtaylor/huma/v2"

	"github.com/neshama/memorial/internal/http/v1/profiles"
	"github.com/neshama/memorial/internal/platform/auth"
	"github.com/neshama/memorial/internal/platform/pagination"
	memorialsvc "github.com/neshama/memorial/internal/service/memorial"
)

const visitCursorType = "visit"

var adminSecurity = []map[string][]string{
	{"bearerAuth": {}},
}

// Register wires super-admin routes into the provided API router.
func Register(api huma.API, svc memorialsvc.Service, prefix string) {
	huma.Register(api, huma.Operation{
		OperationID:   "admin-create-profile",
		Method:        http.MethodPost,
		Path:          "/admin/profiles",
		Summary:       "Create a profile for a customer",
		Description:   "Creates and persists a private free-tier profile owned by the given address. The customer fills in the details afterwards.",
		Tags:          []string{"Admin"},
		DefaultStatus: http.StatusCreated,
		Security:      adminSecurity,
	}, func(ctx context.Context, input *ProfileCreateInput) (*ProfileCreateOutput, error) {
		user, err := requireAdmin(ctx)
		if err != nil {
			return nil, err
		}

		created, err := svc.CreateForOwner(ctx, input.Body.Email, user.Email)
		if err != nil {
			return nil, mapServiceError(err)
		}
		return &ProfileCreateOutput{Body: profiles.FromService(created)}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "admin-list-visits",
		Method:      http.MethodGet,
		Path:        "/admin/visits",
		Summary:     "List visit logs",
		Description: "Returns the retained visit log, newest first, with cursor-based pagination.",
		Tags:        []string{"Admin"},
		Security:    adminSecurity,
	}, func(ctx context.Context, input *VisitsListInput) (*VisitsListOutput, error) {
		if _, err := requireAdmin(ctx); err != nil {
			return nil, err
		}

		cursor, err := pagination.DecodeCursor(input.Cursor)
		if err != nil {
			return nil, huma.Error400BadRequest("invalid cursor format")
		}
		if cursor.Type != "" && cursor.Type != visitCursorType {
			return nil, huma.Error400BadRequest("cursor type mismatch")
		}

		all, err := svc.VisitLogs(ctx)
		if err != nil {
			return nil, mapServiceError(err)
		}

		if cursor.Value != "" && findVisitIndex(all, cursor.Value) == -1 {
			return nil, huma.Error400BadRequest("cursor references unknown entry")
		}

		result := pagination.Paginate(
			all,
			cursor,
			input.DefaultLimit(),
			visitCursorType,
			func(v memorialsvc.VisitLog) string { return v.ID },
			prefix+"/admin/visits",
			url.Values{},
		)

		page := make([]VisitLog, len(result.Items))
		for i, v := range result.Items {
			page[i] = fromServiceVisit(v)
		}
		return &VisitsListOutput{
			Link: result.LinkHeader,
			Body: VisitsData{
				Visits: page,
				Total:  result.Total,
			},
		}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "admin-get-config",
		Method:      http.MethodGet,
		Path:        "/admin/config",
		Summary:     "Get system settings",
		Description: "Returns the effective settings record. Missing stored fields fall back to built-in defaults.",
		Tags:        []string{"Admin"},
		Security:    adminSecurity,
	}, func(ctx context.Context, _ *struct{}) (*ConfigGetOutput, error) {
		if _, err := requireAdmin(ctx); err != nil {
			return nil, err
		}

		cfg, err := svc.Config(ctx)
		if err != nil {
			return nil, mapServiceError(err)
		}
		return &ConfigGetOutput{Body: fromServiceConfig(cfg)}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "admin-save-config",
		Method:      http.MethodPut,
		Path:        "/admin/config",
		Summary:     "Replace system settings",
		Description: "Persists the full settings record. Super-admin changes take effect on the next request.",
		Tags:        []string{"Admin"},
		Security:    adminSecurity,
	}, func(ctx context.Context, input *ConfigSaveInput) (*ConfigSaveOutput, error) {
		if _, err := requireAdmin(ctx); err != nil {
			return nil, err
		}

		cfg := toServiceConfig(input.Body)
		if err := svc.SaveConfig(ctx, cfg); err != nil {
			return nil, mapServiceError(err)
		}
		return &ConfigSaveOutput{Body: fromServiceConfig(cfg)}, nil
	})
}

func requireAdmin(ctx context.Context) (*auth.User, error) {
	user := auth.UserFromContext(ctx)
	if user == nil || !user.IsAdmin {
		return nil, huma.Error403Forbidden("super admin access required")
	}
	return user, nil
}

func findVisitIndex(visits []memorialsvc.VisitLog, id string) int {
	return slices.IndexFunc(visits, func(v memorialsvc.VisitLog) bool {
		return v.ID == id
	})
}

func mapServiceError(err error) error {
	if errors.Is(err, memorialsvc.ErrCapacityExceeded) {
		return huma.Error422UnprocessableEntity("data exceeds storage capacity")
	}
	return huma.Error500InternalServerError("internal error")
}
