package memorial

import (
	"strings"
	"testing"
	"time"
)

func TestSyncMilestonesCreatesBirthAndDeath(t *testing.T) {
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	p := &Profile{
		ID:        "p1",
		BirthDate: "1954-05-14",
		DeathDate: "2023-11-24",
	}

	syncMilestones(p, now)

	birth := findTagged(p.Memories, TagBirth)
	if birth == nil {
		t.Fatal("expected birth milestone to be created")
	}
	if birth.Year != 1954 {
		t.Errorf("birth year = %d, want 1954", birth.Year)
	}
	if !strings.Contains(birth.Content, "14.05.1954") {
		t.Errorf("birth content should render date day-first, got %q", birth.Content)
	}
	if !birth.IsOfficial {
		t.Error("birth milestone should be official")
	}
	if birth.Author != systemAuthor {
		t.Errorf("birth author = %q, want %q", birth.Author, systemAuthor)
	}
	if birth.CreatedAt != now.UnixMilli() {
		t.Errorf("birth createdAt = %d, want %d", birth.CreatedAt, now.UnixMilli())
	}

	death := findTagged(p.Memories, TagDeath)
	if death == nil {
		t.Fatal("expected death milestone to be created")
	}
	if death.Year != 2023 {
		t.Errorf("death year = %d, want 2023", death.Year)
	}
	if death.Content != deathContent {
		t.Errorf("death content = %q, want epitaph", death.Content)
	}
}

func TestSyncMilestonesUpdatesExistingBirth(t *testing.T) {
	p := &Profile{
		BirthDate: "1960-01-02",
		Memories: []Memory{
			{ID: "m1", Year: 1954, Content: "old text", Tags: []string{TagBirth}},
		},
	}

	syncMilestones(p, time.Now())

	if len(p.Memories) != 1 {
		t.Fatalf("expected existing milestone to be updated in place, got %d memories", len(p.Memories))
	}
	if p.Memories[0].Year != 1960 {
		t.Errorf("year = %d, want 1960", p.Memories[0].Year)
	}
	if !strings.Contains(p.Memories[0].Content, "02.01.1960") {
		t.Errorf("content should be regenerated, got %q", p.Memories[0].Content)
	}
	if p.Memories[0].ID != "m1" {
		t.Errorf("id changed to %q", p.Memories[0].ID)
	}
}

func TestSyncMilestonesDeathKeepsEditedContent(t *testing.T) {
	edited := "טקסט שנערך ידנית על ידי המשפחה"
	p := &Profile{
		DeathDate: "2024-03-15",
		Memories: []Memory{
			{ID: "m9", Year: 2023, Content: edited, Tags: []string{TagDeath}},
		},
	}

	syncMilestones(p, time.Now())

	if p.Memories[0].Year != 2024 {
		t.Errorf("year = %d, want 2024", p.Memories[0].Year)
	}
	if p.Memories[0].Content != edited {
		t.Errorf("death content was overwritten: %q", p.Memories[0].Content)
	}
}

func TestSyncMilestonesNoDatesNoChanges(t *testing.T) {
	p := &Profile{Memories: []Memory{{ID: "m1", Year: 2000, Content: "free-form"}}}
	syncMilestones(p, time.Now())
	if len(p.Memories) != 1 {
		t.Fatalf("expected no new memories, got %d", len(p.Memories))
	}
}

func TestSyncMilestonesClearedDateKeepsMilestone(t *testing.T) {
	p := &Profile{
		BirthDate: "", // cleared after a previous sync
		Memories: []Memory{
			{ID: "auto-birth-x", Year: 1954, Tags: []string{TagBirth}},
		},
	}
	syncMilestones(p, time.Now())
	if findTagged(p.Memories, TagBirth) == nil {
		t.Fatal("clearing the date must not retract the milestone")
	}
}

func TestSyncMilestonesMalformedDateIgnored(t *testing.T) {
	p := &Profile{BirthDate: "not-a-date"}
	syncMilestones(p, time.Now())
	if len(p.Memories) != 0 {
		t.Fatalf("malformed date should not create a milestone, got %d memories", len(p.Memories))
	}
}

func TestBirthContentReversesISODate(t *testing.T) {
	got := birthContent("1987-12-03")
	if !strings.Contains(got, "03.12.1987") {
		t.Fatalf("expected day-first date in %q", got)
	}
}

func TestIsoYear(t *testing.T) {
	tests := []struct {
		in     string
		want   int
		wantOK bool
	}{
		{"1954-05-14", 1954, true},
		{"2024", 2024, true},
		{"abcd-01-01", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		got, ok := isoYear(tt.in)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("isoYear(%q) = (%d, %v), want (%d, %v)", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}
