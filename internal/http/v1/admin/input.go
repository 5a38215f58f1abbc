package admin

import "github.com/neshama/memorial/internal/platform/pagination"

// ProfileCreateInput creates a managed profile for a customer.
type ProfileCreateInput struct {
	Body struct {
		Email string `json:"email" doc:"Owner's contact address" format:"email" example:"family@example.com"`
	}
}

// VisitsListInput defines query parameters for listing visit logs.
type VisitsListInput struct {
	pagination.Params
}

// ConfigSaveInput carries a full settings record to persist.
type ConfigSaveInput struct {
	Body SystemConfig
}
