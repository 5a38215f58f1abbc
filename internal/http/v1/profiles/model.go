package profiles

import (
	memorialsvc "github.com/neshama/memorial/internal/service/memorial"
)

// Memory represents one timeline entry on a profile.
type Memory struct {
	ID           string   `json:"id,omitempty"           doc:"Unique identifier (assigned by the server for milestones)"`
	Year         int      `json:"year"                   doc:"Year used as the timeline sort key"         example:"1954"`
	Author       string   `json:"author"                 doc:"Display name of the entry's author"`
	Content      string   `json:"content"                doc:"Free-text content"`
	IsOfficial   bool     `json:"isOfficial"             doc:"True for family/administrator milestones, false for guest entries"`
	CreatedAt    int64    `json:"createdAt"              doc:"Creation time, epoch milliseconds"`
	MediaType    string   `json:"mediaType,omitempty"    doc:"Attached media kind: image, video or audio"`
	MediaURL     string   `json:"mediaUrl,omitempty"     doc:"Media URL or base64 payload"`
	LocationName string   `json:"locationName,omitempty" doc:"Optional location label"`
	LocationURL  string   `json:"locationUrl,omitempty"  doc:"Optional map link"`
	Tags         []string `json:"tags,omitempty"         doc:"Semantic tags; birth and death mark auto-synced milestones"`
}

// RelatedPerson is a cross-link to another deceased individual's memorial.
type RelatedPerson struct {
	ID               string `json:"id,omitempty"`
	Name             string `json:"name"                       doc:"Full name"`
	Relation         string `json:"relation"                   doc:"Relation to the profile, e.g. brother, spouse"`
	ImageURL         string `json:"imageUrl,omitempty"`
	BirthDate        string `json:"birthDate,omitempty"        doc:"ISO date"`
	DeathDate        string `json:"deathDate,omitempty"        doc:"ISO date"`
	ShortDescription string `json:"shortDescription,omitempty"`
	MemorialURL      string `json:"memorialUrl,omitempty"      doc:"External link to their own memorial page"`
}

// Profile represents a memorial page record. Names returned by the API
// always carry the honorific display suffix; submitted names may carry it
// or not.
type Profile struct {
	ID               string          `json:"id"                         doc:"Unique identifier"`
	FullName         string          `json:"fullName"                   doc:"Display name"`
	BirthYear        int             `json:"birthYear"                  example:"1954"`
	BirthDate        string          `json:"birthDate,omitempty"        doc:"Full birth date, YYYY-MM-DD"`
	DeathYear        int             `json:"deathYear"                  example:"2023"`
	DeathDate        string          `json:"deathDate,omitempty"        doc:"Full death date, YYYY-MM-DD"`
	HebrewDeathDate  string          `json:"hebrewDeathDate,omitempty"  doc:"Death date in the Hebrew calendar"`
	HeroImage        string          `json:"heroImage,omitempty"        doc:"Header image URL or base64 payload"`
	Bio              string          `json:"bio"                        doc:"Long free-text biography"`
	ShortDescription string          `json:"shortDescription,omitempty" doc:"One-line description"`
	GraveLocation    string          `json:"graveLocation,omitempty"`
	WazeLink         string          `json:"wazeLink,omitempty"         doc:"Navigation link to the grave"`
	PlaylistURL      string          `json:"playlistUrl,omitempty"      doc:"External media playlist link"`
	Email            string          `json:"email"                      doc:"Owner's contact email"`
	Memories         []Memory        `json:"memories"`
	FamilyMembers    []RelatedPerson `json:"familyMembers"`

	IsPublic           bool   `json:"isPublic"                     doc:"Whether the page is publicly visible"`
	IsDraft            bool   `json:"isDraft,omitempty"            doc:"True for an unsaved in-memory draft"`
	SubscriptionExpiry int64  `json:"subscriptionExpiry,omitempty" doc:"Subscription expiry, epoch milliseconds"`
	AccountType        string `json:"accountType,omitempty"        doc:"Publishing tier"                          enum:"free,standard"`
	ShowInCommunity    bool   `json:"showInCommunity,omitempty"    doc:"Featured in the community listing"`
	LastUpdated        int64  `json:"lastUpdated,omitempty"        doc:"Last write time, epoch milliseconds"`
	LastUpdatedBy      string `json:"lastUpdatedBy,omitempty"      doc:"Identifier of the last writer"`
}

// FromService converts a service profile to its HTTP representation.
func FromService(p *memorialsvc.Profile) Profile {
	memories := make([]Memory, len(p.Memories))
	for i, m := range p.Memories {
		memories[i] = Memory{
			ID:           m.ID,
			Year:         m.Year,
			Author:       m.Author,
			Content:      m.Content,
			IsOfficial:   m.IsOfficial,
			CreatedAt:    m.CreatedAt,
			MediaType:    string(m.MediaType),
			MediaURL:     m.MediaURL,
			LocationName: m.LocationName,
			LocationURL:  m.LocationURL,
			Tags:         m.Tags,
		}
	}
	family := make([]RelatedPerson, len(p.FamilyMembers))
	for i, r := range p.FamilyMembers {
		family[i] = RelatedPerson(r)
	}
	return Profile{
		ID:               p.ID,
		FullName:         p.FullName,
		BirthYear:        p.BirthYear,
		BirthDate:        p.BirthDate,
		DeathYear:        p.DeathYear,
		DeathDate:        p.DeathDate,
		HebrewDeathDate:  p.HebrewDeathDate,
		HeroImage:        p.HeroImage,
		Bio:              p.Bio,
		ShortDescription: p.ShortDescription,
		GraveLocation:    p.GraveLocation,
		WazeLink:         p.WazeLink,
		PlaylistURL:      p.PlaylistURL,
		Email:            p.Email,
		Memories:         memories,
		FamilyMembers:    family,

		IsPublic:           p.IsPublic,
		IsDraft:            p.IsDraft,
		SubscriptionExpiry: p.SubscriptionExpiry,
		AccountType:        string(p.AccountType),
		ShowInCommunity:    p.ShowInCommunity,
		LastUpdated:        p.LastUpdated,
		LastUpdatedBy:      p.LastUpdatedBy,
	}
}

// ToService converts an HTTP profile back to the service representation.
func ToService(p Profile) memorialsvc.Profile {
	memories := make([]memorialsvc.Memory, len(p.Memories))
	for i, m := range p.Memories {
		memories[i] = memorialsvc.Memory{
			ID:           m.ID,
			Year:         m.Year,
			Author:       m.Author,
			Content:      m.Content,
			IsOfficial:   m.IsOfficial,
			CreatedAt:    m.CreatedAt,
			MediaType:    memorialsvc.MediaType(m.MediaType),
			MediaURL:     m.MediaURL,
			LocationName: m.LocationName,
			LocationURL:  m.LocationURL,
			Tags:         m.Tags,
		}
	}
	family := make([]memorialsvc.RelatedPerson, len(p.FamilyMembers))
	for i, r := range p.FamilyMembers {
		family[i] = memorialsvc.RelatedPerson(r)
	}
	return memorialsvc.Profile{
		ID:               p.ID,
		FullName:         p.FullName,
		BirthYear:        p.BirthYear,
		BirthDate:        p.BirthDate,
		DeathYear:        p.DeathYear,
		DeathDate:        p.DeathDate,
		HebrewDeathDate:  p.HebrewDeathDate,
		HeroImage:        p.HeroImage,
		Bio:              p.Bio,
		ShortDescription: p.ShortDescription,
		GraveLocation:    p.GraveLocation,
		WazeLink:         p.WazeLink,
		PlaylistURL:      p.PlaylistURL,
		Email:            p.Email,
		Memories:         memories,
		FamilyMembers:    family,

		IsPublic:           p.IsPublic,
		IsDraft:            p.IsDraft,
		SubscriptionExpiry: p.SubscriptionExpiry,
		AccountType:        memorialsvc.AccountType(p.AccountType),
		ShowInCommunity:    p.ShowInCommunity,
		LastUpdated:        p.LastUpdated,
		LastUpdatedBy:      p.LastUpdatedBy,
	}
}
