package profiles

import "github.com/neshama/memorial/internal/platform/pagination"

// ProfilesListInput defines query parameters for listing profiles.
type ProfilesListInput struct {
	pagination.Params
}

// ProfileGetInput identifies a single profile.
type ProfileGetInput struct {
	ID string `path:"id" doc:"Profile identifier" example:"demo-1"`
}

// ProfileSaveInput carries a full profile record to persist.
type ProfileSaveInput struct {
	ID   string `path:"id" doc:"Profile identifier" example:"demo-1"`
	Body Profile
}

// VisitLogInput records a page visit.
type VisitLogInput struct {
	ID   string `path:"id" doc:"Profile identifier" example:"demo-1"`
	Body struct {
		VisitorEmail string `json:"visitorEmail,omitempty" doc:"Visitor email; omitted visits are logged as guest" format:"email"`
	}
}
