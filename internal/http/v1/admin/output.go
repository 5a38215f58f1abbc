package admin

import (
	"github.com/neshama/memorial/internal/http/v1/profiles"
)

// ProfileCreateOutput wraps a profile created on behalf of a customer.
type ProfileCreateOutput struct {
	Body profiles.Profile
}

// VisitsData is the response body containing paginated visit logs.
type VisitsData struct {
	Visits []VisitLog `json:"visits" doc:"Page of visit log entries, newest first"`
	Total  int        `json:"total"  doc:"Total number of retained entries"       example:"42"`
}

// VisitsListOutput is the response wrapper with pagination Link header.
type VisitsListOutput struct {
	Link string `header:"Link" doc:"RFC 8288 pagination links"`
	Body VisitsData
}

// ConfigGetOutput wraps the effective settings record.
type ConfigGetOutput struct {
	Body SystemConfig
}

// ConfigSaveOutput wraps the settings record as persisted.
type ConfigSaveOutput struct {
	Body SystemConfig
}
