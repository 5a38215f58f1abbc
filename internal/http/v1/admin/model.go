package admin

import (
	memorialsvc "github.com/neshama/memorial/internal/service/memorial"
)

// VisitLog is one audit entry from the visit log.
type VisitLog struct {
	ID           string `json:"id"           doc:"Unique entry identifier"`
	ProfileID    string `json:"profileId"    doc:"Visited profile"`
	ProfileName  string `json:"profileName"  doc:"Profile name captured at log time"`
	VisitorEmail string `json:"visitorEmail" doc:"Visitor email, or guest"            example:"guest"`
	Timestamp    int64  `json:"timestamp"    doc:"Visit time, epoch milliseconds"`
	ActionType   string `json:"actionType"   doc:"What the visitor did"               enum:"visit,update,create"`
}

// Pricing is the landing-page price pair.
type Pricing struct {
	OriginalPrice int    `json:"originalPrice" doc:"Crossed-out reference price" example:"300"`
	CurrentPrice  int    `json:"currentPrice"  doc:"Actual charged price"        example:"150"`
	Currency      string `json:"currency"      doc:"Currency symbol"             example:"₪"`
}

// SystemConfig is the process-wide settings record.
type SystemConfig struct {
	SuperAdminEmails []string `json:"superAdminEmails" doc:"Addresses granted super-admin rights"`
	ProjectName      string   `json:"projectName"      doc:"Site display name"`
	Pricing          Pricing  `json:"pricing"`
}

func fromServiceVisit(v memorialsvc.VisitLog) VisitLog {
	return VisitLog{
		ID:           v.ID,
		ProfileID:    v.ProfileID,
		ProfileName:  v.ProfileName,
		VisitorEmail: v.VisitorEmail,
		Timestamp:    v.Timestamp,
		ActionType:   string(v.ActionType),
	}
}

func fromServiceConfig(cfg memorialsvc.SystemConfig) SystemConfig {
	return SystemConfig{
		SuperAdminEmails: cfg.SuperAdminEmails,
		ProjectName:      cfg.ProjectName,
		Pricing:          Pricing(cfg.Pricing),
	}
}

func toServiceConfig(cfg SystemConfig) memorialsvc.SystemConfig {
	return memorialsvc.SystemConfig{
		SuperAdminEmails: cfg.SuperAdminEmails,
		ProjectName:      cfg.ProjectName,
		Pricing:          memorialsvc.Pricing(cfg.Pricing),
	}
}
