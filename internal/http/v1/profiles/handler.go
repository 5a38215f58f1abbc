package profiles

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"slices"

	"github.com/danielgtaylor/huma/v2"

	"github.com/neshama/memorial/internal/platform/auth"
	"github.com/neshama/memorial/internal/platform/pagination"
	memorialsvc "github.com/neshama/memorial/internal/service/memorial"
)

const cursorType = "profile"

// Register wires profile and community routes into the provided API router.
func Register(api huma.API, svc memorialsvc.Service, prefix string) {
	huma.Register(api, huma.Operation{
		OperationID: "list-profiles",
		Method:      http.MethodGet,
		Path:        "/profiles",
		Summary:     "List memorial profiles",
		Description: "Returns a paginated list of memorial profiles. Use the cursor from the Link header to navigate between pages.",
		Tags:        []string{"Profiles"},
	}, func(ctx context.Context, input *ProfilesListInput) (*ProfilesListOutput, error) {
		cursor, err := pagination.DecodeCursor(input.Cursor)
		if err != nil {
			return nil, huma.Error400BadRequest("invalid cursor format")
		}
		if cursor.Type != "" && cursor.Type != cursorType {
			return nil, huma.Error400BadRequest("cursor type mismatch")
		}

		all, err := svc.List(ctx)
		if err != nil {
			return nil, mapServiceError(err)
		}

		if cursor.Value != "" && findProfileIndex(all, cursor.Value) == -1 {
			return nil, huma.Error400BadRequest("cursor references unknown profile")
		}

		result := pagination.Paginate(
			all,
			cursor,
			input.DefaultLimit(),
			cursorType,
			func(p memorialsvc.Profile) string { return p.ID },
			prefix+"/profiles",
			url.Values{},
		)

		page := make([]Profile, len(result.Items))
		for i := range result.Items {
			page[i] = FromService(&result.Items[i])
		}
		return &ProfilesListOutput{
			Link: result.LinkHeader,
			Body: ListData{
				Profiles: page,
				Total:    result.Total,
			},
		}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "get-profile",
		Method:      http.MethodGet,
		Path:        "/profiles/{id}",
		Summary:     "Get a memorial profile",
		Description: "Retrieves a single profile by identifier. The visit is recorded in the visit log.",
		Tags:        []string{"Profiles"},
	}, func(ctx context.Context, input *ProfileGetInput) (*ProfileGetOutput, error) {
		p, err := svc.Get(ctx, input.ID)
		if err != nil {
			return nil, mapServiceError(err)
		}

		visitor := ""
		if user := auth.UserFromContext(ctx); user != nil {
			visitor = user.Email
		}
		svc.LogVisit(ctx, p, visitor, memorialsvc.ActionVisit)

		return &ProfileGetOutput{Body: FromService(p)}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "save-profile",
		Method:      http.MethodPut,
		Path:        "/profiles/{id}",
		Summary:     "Create or replace a memorial profile",
		Description: "Persists a full profile record. Milestone entries are synchronized from the dates on the record, and the stored name is normalized without the honorific suffix.",
		Tags:        []string{"Profiles"},
	}, func(ctx context.Context, input *ProfileSaveInput) (*ProfileSaveOutput, error) {
		actor := ""
		if user := auth.UserFromContext(ctx); user != nil {
			actor = user.Email
		}

		p := ToService(input.Body)
		p.ID = input.ID

		saved, err := svc.Save(ctx, p, actor)
		if err != nil {
			return nil, mapServiceError(err)
		}
		return &ProfileSaveOutput{Body: FromService(saved)}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID:   "create-draft",
		Method:        http.MethodPost,
		Path:          "/profiles/drafts",
		Summary:       "Create a draft profile",
		Description:   "Returns a pre-filled draft profile with a fresh identifier. Nothing is persisted until the draft is saved.",
		Tags:          []string{"Profiles"},
		DefaultStatus: http.StatusCreated,
	}, func(_ context.Context, _ *struct{}) (*DraftCreateOutput, error) {
		return &DraftCreateOutput{Body: FromService(svc.NewDraft())}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID:   "log-visit",
		Method:        http.MethodPost,
		Path:          "/profiles/{id}/visits",
		Summary:       "Record a profile visit",
		Description:   "Appends an entry to the visit log. Failures to persist the log never surface to the visitor.",
		Tags:          []string{"Profiles"},
		DefaultStatus: http.StatusAccepted,
	}, func(ctx context.Context, input *VisitLogInput) (*struct{}, error) {
		p, err := svc.Get(ctx, input.ID)
		if err != nil {
			return nil, mapServiceError(err)
		}

		visitor := input.Body.VisitorEmail
		if visitor == "" {
			if user := auth.UserFromContext(ctx); user != nil {
				visitor = user.Email
			}
		}
		svc.LogVisit(ctx, p, visitor, memorialsvc.ActionVisit)
		return nil, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "community-profiles",
		Method:      http.MethodGet,
		Path:        "/community",
		Summary:     "List community profiles",
		Description: "Returns the public community selection: featured profiles in their stored order, backfilled with the most recently updated public profiles.",
		Tags:        []string{"Community"},
	}, func(ctx context.Context, _ *struct{}) (*CommunityOutput, error) {
		selection, err := svc.Community(ctx)
		if err != nil {
			return nil, mapServiceError(err)
		}

		out := make([]Profile, len(selection))
		for i := range selection {
			out[i] = FromService(&selection[i])
		}
		return &CommunityOutput{Body: CommunityData{Profiles: out}}, nil
	})
}

func findProfileIndex(profiles []memorialsvc.Profile, id string) int {
	return slices.IndexFunc(profiles, func(p memorialsvc.Profile) bool {
		return p.ID == id
	})
}

func mapServiceError(err error) error {
	switch {
	case errors.Is(err, memorialsvc.ErrNotFound):
		return huma.Error404NotFound("profile not found")
	case errors.Is(err, memorialsvc.ErrCapacityExceeded):
		return huma.Error422UnprocessableEntity("profile data exceeds storage capacity")
	default:
		return huma.Error500InternalServerError("internal error")
	}
}
