package memorial

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/neshama/memorial/internal/platform/kv"
	applog "github.com/neshama/memorial/internal/platform/logging"
)

// Storage keys. Schema migration is key-version bumping: a bumped key is
// simply absent on first read and triggers reseeding.
const (
	profilesKey     = "profiles_v6"
	visitLogsKey    = "visit_logs_v1"
	systemConfigKey = "system_config_v1"
)

const (
	// maxCollectionBytes caps the serialized profile collection. A save
	// that would exceed it is rejected before anything is persisted.
	maxCollectionBytes = 4_500_000

	// maxVisitLogEntries bounds the audit log; oldest entries are evicted.
	maxVisitLogEntries = 2000

	// communityMinimum is the target size of the landing-page listing.
	communityMinimum = 5

	// defaultActor stamps writes that carry no user context.
	defaultActor = "system"

	// guestVisitor marks visit log entries from anonymous viewers.
	guestVisitor = "guest"
)

// Store implements Service over a key-value blob substrate.
//
// Every save reads the entire profile collection, replaces one entry and
// writes the whole collection back. A mutex serializes writers within this
// process, but across processes the semantics are last-writer-wins at the
// granularity of the full collection, matching the system this store
// replaces. There is no per-record versioning.
type Store struct {
	kv    kv.Store
	mu    sync.Mutex // profiles blob read-modify-write
	logMu sync.Mutex // visit log blob read-modify-write
	now   func() time.Time
}

// NewStore creates a store over the given substrate.
func NewStore(store kv.Store) *Store {
	return &Store{kv: store, now: time.Now}
}

// categorizeError converts errors to audit-safe categories.
func categorizeError(err error) string {
	switch {
	case errors.Is(err, ErrNotFound):
		return "not_found"
	case errors.Is(err, ErrCapacityExceeded):
		return "capacity_exceeded"
	default:
		return "storage_error"
	}
}

// load reads the persisted collection in storage form (names stripped).
// A missing key seeds demo data; an unparseable blob degrades to an empty
// collection rather than failing the caller. Callers hold s.mu.
func (s *Store) load(ctx context.Context) ([]Profile, error) {
	raw, ok, err := s.kv.Get(ctx, profilesKey)
	if err != nil {
		return nil, fmt.Errorf("read profile collection: %w", err)
	}
	if !ok {
		profiles := seedProfiles(s.now())
		if err := s.persist(ctx, profiles); err != nil {
			applog.LogError(ctx, "seeding profile collection failed", err)
		}
		return profiles, nil
	}

	var profiles []Profile
	if err := json.Unmarshal([]byte(raw), &profiles); err != nil {
		applog.LogError(ctx, "profile collection unparseable, serving empty", err)
		return []Profile{}, nil
	}
	return profiles, nil
}

// persist writes the full collection back, enforcing the size ceiling.
func (s *Store) persist(ctx context.Context, profiles []Profile) error {
	data, err := json.Marshal(profiles)
	if err != nil {
		return fmt.Errorf("serialize profile collection: %w", err)
	}
	if len(data) > maxCollectionBytes {
		return ErrCapacityExceeded
	}
	if err := s.kv.Set(ctx, profilesKey, string(data)); err != nil {
		return fmt.Errorf("write profile collection: %w", err)
	}
	return nil
}

// List returns every profile with the honorific suffix applied. Storage
// faults degrade to an empty collection so a broken blob never takes the
// surrounding UI down with it.
func (s *Store) List(ctx context.Context) ([]Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	profiles, err := s.load(ctx)
	if err != nil {
		applog.LogError(ctx, "listing profiles failed, serving empty", err)
		return []Profile{}, nil
	}
	return projectDisplay(profiles), nil
}

// Get returns the profile with the given id, suffix applied, or ErrNotFound.
func (s *Store) Get(ctx context.Context, id string) (*Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	profiles, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range profiles {
		if profiles[i].ID == id {
			out := profiles[i]
			out.FullName = DisplayName(out.FullName)
			return &out, nil
		}
	}
	return nil, ErrNotFound
}

// Save creates or updates a profile. The incoming name may carry the
// honorific suffix (callers round-trip records from List/Get); it is
// stripped before persistence and re-applied on the returned record.
// Milestone memories are synchronized from the birth/death date fields on
// every save; clearing a date never retracts a previously generated
// milestone.
//
// On ErrCapacityExceeded or a storage fault nothing is persisted; the
// previous collection state remains visible.
func (s *Store) Save(ctx context.Context, p Profile, actor string) (*Profile, error) {
	if actor == "" {
		actor = defaultActor
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	p.FullName = StorageName(p.FullName)
	p.LastUpdated = now.UnixMilli()
	p.LastUpdatedBy = actor
	syncMilestones(&p, now)

	profiles, err := s.load(ctx)
	if err != nil {
		applog.LogAuditEvent(ctx, "save", actor, "profile", p.ID, "failure",
			map[string]any{"error": categorizeError(err)})
		return nil, err
	}

	action := ActionCreate
	replaced := false
	for i := range profiles {
		if profiles[i].ID == p.ID {
			profiles[i] = p
			action = ActionUpdate
			replaced = true
			break
		}
	}
	if !replaced {
		profiles = append(profiles, p)
	}

	if err := s.persist(ctx, profiles); err != nil {
		applog.LogAuditEvent(ctx, string(action), actor, "profile", p.ID, "failure",
			map[string]any{"error": categorizeError(err)})
		return nil, err
	}

	applog.LogAuditEvent(ctx, string(action), actor, "profile", p.ID, "success", nil)
	s.logVisit(ctx, &p, actor, action)

	out := p
	out.FullName = DisplayName(out.FullName)
	return &out, nil
}

// NewDraft returns a fresh in-memory profile with placeholder content. It
// is not persisted until an explicit Save.
func (s *Store) NewDraft() *Profile {
	return &Profile{
		ID:               "draft-" + uuid.NewString(),
		FullName:         "שם הנפטר/ת",
		BirthYear:        1950,
		DeathYear:        2024,
		HeroImage:        "https://images.unsplash.com/photo-1494548162494-384bba4ab999?auto=format&fit=crop&w=1920&q=80",
		Bio:              "כאן תוכלו לכתוב את סיפור החיים המרגש...",
		ShortDescription: "משפט קצר שמתאר את המהות...",
		Memories:         []Memory{},
		FamilyMembers:    []RelatedPerson{},
		IsPublic:         false,
		IsDraft:          true,
	}
}

// CreateForOwner builds an empty profile owned by the given email and
// persists it immediately: private, complimentary tier, no draft flag.
// Back-office operation.
func (s *Store) CreateForOwner(ctx context.Context, ownerEmail, actor string) (*Profile, error) {
	p := s.NewDraft()
	p.Email = ownerEmail
	p.IsDraft = false
	p.IsPublic = false
	p.AccountType = AccountFree
	return s.Save(ctx, *p, actor)
}

// Community computes the curated landing-page listing: public profiles
// only, explicitly featured ones first in their stored order, then the
// remaining public profiles by most-recent update, deduplicated, up to
// max(5, featured count) entries.
func (s *Store) Community(ctx context.Context) ([]Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	profiles, err := s.load(ctx)
	if err != nil {
		applog.LogError(ctx, "community listing failed, serving empty", err)
		return []Profile{}, nil
	}

	var featured, rest []Profile
	for _, p := range profiles {
		if !p.IsPublic {
			continue
		}
		if p.ShowInCommunity {
			featured = append(featured, p)
		} else {
			rest = append(rest, p)
		}
	}
	sort.SliceStable(rest, func(i, j int) bool {
		return rest[i].LastUpdated > rest[j].LastUpdated
	})

	target := communityMinimum
	if len(featured) > target {
		target = len(featured)
	}

	result := featured
	for _, p := range rest {
		if len(result) >= target {
			break
		}
		result = append(result, p)
	}
	return projectDisplay(result), nil
}

// LogVisit appends an audit entry for the given profile. Fire-and-forget:
// failures are logged and never surfaced, so a broken audit blob cannot
// block a page render.
func (s *Store) LogVisit(ctx context.Context, p *Profile, visitorEmail string, action VisitAction) {
	if visitorEmail == "" {
		visitorEmail = guestVisitor
	}
	if action == "" {
		action = ActionVisit
	}
	s.logVisit(ctx, p, visitorEmail, action)
}

func (s *Store) logVisit(ctx context.Context, p *Profile, visitorEmail string, action VisitAction) {
	s.logMu.Lock()
	defer s.logMu.Unlock()

	logs := s.loadVisitLogs(ctx)
	entry := VisitLog{
		ID:           uuid.NewString(),
		ProfileID:    p.ID,
		ProfileName:  DisplayName(p.FullName),
		VisitorEmail: visitorEmail,
		Timestamp:    s.now().UnixMilli(),
		ActionType:   action,
	}
	logs = append([]VisitLog{entry}, logs...)
	if len(logs) > maxVisitLogEntries {
		logs = logs[:maxVisitLogEntries]
	}

	data, err := json.Marshal(logs)
	if err != nil {
		applog.LogError(ctx, "serialize visit log failed", err)
		return
	}
	if err := s.kv.Set(ctx, visitLogsKey, string(data)); err != nil {
		applog.LogError(ctx, "write visit log failed", err)
	}
}

// loadVisitLogs reads the audit list, degrading to empty on any fault.
func (s *Store) loadVisitLogs(ctx context.Context) []VisitLog {
	raw, ok, err := s.kv.Get(ctx, visitLogsKey)
	if err != nil {
		applog.LogError(ctx, "read visit log failed", err)
		return nil
	}
	if !ok {
		return nil
	}
	var logs []VisitLog
	if err := json.Unmarshal([]byte(raw), &logs); err != nil {
		applog.LogError(ctx, "visit log unparseable, starting fresh", err)
		return nil
	}
	return logs
}

// VisitLogs returns the retained audit entries, newest first.
func (s *Store) VisitLogs(ctx context.Context) ([]VisitLog, error) {
	s.logMu.Lock()
	defer s.logMu.Unlock()

	logs := s.loadVisitLogs(ctx)
	if logs == nil {
		logs = []VisitLog{}
	}
	return logs, nil
}

// defaultConfig holds the hard-coded settings a fresh deployment starts
// with and that partially-shaped stored records are merged over.
func defaultConfig() SystemConfig {
	return SystemConfig{
		SuperAdminEmails: []string{"admin@neshama.app"},
		ProjectName:      "נשמה",
		Pricing: Pricing{
			OriginalPrice: 300,
			CurrentPrice:  150,
			Currency:      "₪",
		},
	}
}

// Config returns the persisted settings merged over defaults. Missing or
// malformed fields fall back field-wise; this never fails the caller.
func (s *Store) Config(ctx context.Context) (SystemConfig, error) {
	defaults := defaultConfig()

	raw, ok, err := s.kv.Get(ctx, systemConfigKey)
	if err != nil {
		applog.LogError(ctx, "read system config failed, serving defaults", err)
		return defaults, nil
	}
	if !ok {
		return defaults, nil
	}

	var cfg SystemConfig
	if err := json.Unmarshal([]byte(raw), &cfg); err != nil {
		applog.LogError(ctx, "system config unparseable, serving defaults", err)
		return defaults, nil
	}

	if len(cfg.SuperAdminEmails) == 0 {
		cfg.SuperAdminEmails = defaults.SuperAdminEmails
	}
	if cfg.ProjectName == "" {
		cfg.ProjectName = defaults.ProjectName
	}
	if cfg.Pricing.OriginalPrice == 0 {
		cfg.Pricing.OriginalPrice = defaults.Pricing.OriginalPrice
	}
	if cfg.Pricing.CurrentPrice == 0 {
		cfg.Pricing.CurrentPrice = defaults.Pricing.CurrentPrice
	}
	if cfg.Pricing.Currency == "" {
		cfg.Pricing.Currency = defaults.Pricing.Currency
	}
	return cfg, nil
}

// SaveConfig overwrites the persisted settings wholesale.
func (s *Store) SaveConfig(ctx context.Context, cfg SystemConfig) error {
	data, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("serialize system config: %w", err)
	}
	if err := s.kv.Set(ctx, systemConfigKey, string(data)); err != nil {
		return fmt.Errorf("write system config: %w", err)
	}
	return nil
}

// projectDisplay applies the honorific suffix to a copy of each profile.
func projectDisplay(profiles []Profile) []Profile {
	out := make([]Profile, len(profiles))
	for i, p := range profiles {
		p.FullName = DisplayName(p.FullName)
		out[i] = p
	}
	return out
}

// Compile-time interface check
var _ Service = (*Store)(nil)
