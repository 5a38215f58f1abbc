package memorial

import (
	"context"
	"errors"
)

// Service errors
var (
	ErrNotFound         = errors.New("profile not found")
	ErrCapacityExceeded = errors.New("profile collection exceeds storage capacity")
)

// MediaType tags the kind of media attached to a memory.
type MediaType string

const (
	MediaImage MediaType = "image"
	MediaVideo MediaType = "video"
	MediaAudio MediaType = "audio"
)

// AccountType distinguishes profiles that publish for free from those that
// require a paid step before going public.
type AccountType string

const (
	AccountFree     AccountType = "free"
	AccountStandard AccountType = "standard"
)

// VisitAction classifies a visit log entry.
type VisitAction string

const (
	ActionVisit  VisitAction = "visit"
	ActionUpdate VisitAction = "update"
	ActionCreate VisitAction = "create"
)

// Memory is a single timeline entry owned by exactly one profile. Entries
// tagged TagBirth or TagDeath are maintained by milestone synchronization;
// everything else is free-form and never auto-modified.
type Memory struct {
	ID           string    `json:"id"`
	Year         int       `json:"year"`
	Author       string    `json:"author"`
	Content      string    `json:"content"`
	IsOfficial   bool      `json:"isOfficial"`
	CreatedAt    int64     `json:"createdAt"` // epoch milliseconds
	MediaType    MediaType `json:"mediaType,omitempty"`
	MediaURL     string    `json:"mediaUrl,omitempty"`
	LocationName string    `json:"locationName,omitempty"`
	LocationURL  string    `json:"locationUrl,omitempty"`
	Tags         []string  `json:"tags,omitempty"`
}

// Semantic memory tags recognized by milestone synchronization.
const (
	TagBirth = "birth"
	TagDeath = "death"
)

// RelatedPerson is a lightweight cross-reference to another deceased
// individual. MemorialURL is an opaque external link, not a key into this
// system's own collection, so no referential integrity applies.
type RelatedPerson struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Relation         string `json:"relation"`
	ImageURL         string `json:"imageUrl,omitempty"`
	BirthDate        string `json:"birthDate,omitempty"`
	DeathDate        string `json:"deathDate,omitempty"`
	ShortDescription string `json:"shortDescription,omitempty"`
	MemorialURL      string `json:"memorialUrl,omitempty"`
}

// Profile is a memorial page's full record. FullName is persisted WITHOUT
// the honorific suffix; read paths apply it via DisplayName. Timestamps
// persisted by the original data set are epoch milliseconds and stay that
// way in the stored JSON.
type Profile struct {
	ID               string          `json:"id"`
	FullName         string          `json:"fullName"`
	BirthYear        int             `json:"birthYear"`
	BirthDate        string          `json:"birthDate,omitempty"` // YYYY-MM-DD
	DeathYear        int             `json:"deathYear"`
	DeathDate        string          `json:"deathDate,omitempty"` // YYYY-MM-DD
	HebrewDeathDate  string          `json:"hebrewDeathDate,omitempty"`
	HeroImage        string          `json:"heroImage,omitempty"` // URL or base64
	Bio              string          `json:"bio"`
	ShortDescription string          `json:"shortDescription,omitempty"`
	GraveLocation    string          `json:"graveLocation,omitempty"`
	WazeLink         string          `json:"wazeLink,omitempty"`
	PlaylistURL      string          `json:"playlistUrl,omitempty"`
	Email            string          `json:"email"` // owner's contact identifier
	Memories         []Memory        `json:"memories"`
	FamilyMembers    []RelatedPerson `json:"familyMembers"`

	IsPublic           bool        `json:"isPublic"`
	IsDraft            bool        `json:"isDraft,omitempty"`
	SubscriptionExpiry int64       `json:"subscriptionExpiry,omitempty"`
	AccountType        AccountType `json:"accountType,omitempty"`
	ShowInCommunity    bool        `json:"showInCommunity,omitempty"`
	LastUpdated        int64       `json:"lastUpdated,omitempty"`
	LastUpdatedBy      string      `json:"lastUpdatedBy,omitempty"`
}

// VisitLog is an append-only audit record. ProfileName is captured at log
// time, not a live reference.
type VisitLog struct {
	ID           string      `json:"id"`
	ProfileID    string      `json:"profileId"`
	ProfileName  string      `json:"profileName"`
	VisitorEmail string      `json:"visitorEmail"`
	Timestamp    int64       `json:"timestamp"`
	ActionType   VisitAction `json:"actionType"`
}

// Pricing is the landing-page price pair: a crossed-out reference price and
// the actual charged price.
type Pricing struct {
	OriginalPrice int    `json:"originalPrice"`
	CurrentPrice  int    `json:"currentPrice"`
	Currency      string `json:"currency"`
}

// SystemConfig is the process-wide singleton settings record.
type SystemConfig struct {
	SuperAdminEmails []string `json:"superAdminEmails"`
	ProjectName      string   `json:"projectName"`
	Pricing          Pricing  `json:"pricing"`
}

// Service defines memorial profile operations.
//
// Read operations apply the honorific display suffix to every profile name;
// Save accepts names with or without the suffix and persists the stripped
// form. See Store for concurrency semantics.
type Service interface {
	List(ctx context.Context) ([]Profile, error)
	Get(ctx context.Context, id string) (*Profile, error)
	Save(ctx context.Context, p Profile, actor string) (*Profile, error)
	NewDraft() *Profile
	CreateForOwner(ctx context.Context, ownerEmail, actor string) (*Profile, error)
	Community(ctx context.Context) ([]Profile, error)
	LogVisit(ctx context.Context, p *Profile, visitorEmail string, action VisitAction)
	VisitLogs(ctx context.Context) ([]VisitLog, error)
	Config(ctx context.Context) (SystemConfig, error)
	SaveConfig(ctx context.Context, cfg SystemConfig) error
}
