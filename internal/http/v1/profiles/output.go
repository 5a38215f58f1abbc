package profiles

// ListData is the response body containing paginated profiles.
type ListData struct {
	Profiles []Profile `json:"profiles" doc:"Page of memorial profiles"`
	Total    int       `json:"total"    doc:"Total number of stored profiles" example:"2"`
}

// ProfilesListOutput is the response wrapper with pagination Link header.
type ProfilesListOutput struct {
	Link string `header:"Link" doc:"RFC 8288 pagination links"`
	Body ListData
}

// ProfileGetOutput wraps a single profile response.
type ProfileGetOutput struct {
	Body Profile
}

// ProfileSaveOutput wraps the persisted profile as stored, with the
// display projection applied.
type ProfileSaveOutput struct {
	Body Profile
}

// DraftCreateOutput wraps a freshly generated draft profile.
type DraftCreateOutput struct {
	Body Profile
}

// CommunityData is the response body for the community listing.
type CommunityData struct {
	Profiles []Profile `json:"profiles" doc:"Featured profiles followed by recently updated ones"`
}

// CommunityOutput wraps the community listing response.
type CommunityOutput struct {
	Body CommunityData
}
