package memorial

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// systemAuthor labels auto-generated milestone memories.
const systemAuthor = "מערכת"

// deathContent is the fixed epitaph used for auto-generated death milestones.
const deathContent = "הלך/ה לעולמו/ה. יהי זכרו/ה ברוך."

// birthContent builds the auto-generated birth milestone text from an ISO
// date, rendered day-first as the site displays dates.
func birthContent(isoDate string) string {
	parts := strings.Split(isoDate, "-")
	for i, j := 0, len(parts)-1; i < j; i, j = i+1, j-1 {
		parts[i], parts[j] = parts[j], parts[i]
	}
	return fmt.Sprintf("נולד/ה בתאריך %s. תחילתו של מסע החיים.", strings.Join(parts, "."))
}

// isoYear extracts the calendar year from a YYYY-MM-DD string.
func isoYear(isoDate string) (int, bool) {
	year, err := strconv.Atoi(strings.SplitN(isoDate, "-", 2)[0])
	if err != nil {
		return 0, false
	}
	return year, true
}

// findTagged returns the first memory carrying the given tag, or nil.
func findTagged(memories []Memory, tag string) *Memory {
	for i := range memories {
		for _, t := range memories[i].Tags {
			if t == tag {
				return &memories[i]
			}
		}
	}
	return nil
}

// syncMilestones reconciles the profile's birth/death milestone memories
// with its date fields. Runs on every save, never on read.
//
// Birth: an existing birth-tagged memory gets its year and content
// regenerated; otherwise a new official memory is appended. Death: same,
// except an existing memory only gets its year overwritten (the epitaph is
// not re-stamped over a manually edited text beyond creation).
//
// Clearing a date field does NOT retract a previously generated milestone;
// stale milestones accumulate. Inherited from the original system.
func syncMilestones(p *Profile, now time.Time) {
	if p.BirthDate != "" {
		if year, ok := isoYear(p.BirthDate); ok {
			if m := findTagged(p.Memories, TagBirth); m != nil {
				m.Year = year
				m.Content = birthContent(p.BirthDate)
			} else {
				p.Memories = append(p.Memories, Memory{
					ID:         "auto-birth-" + uuid.NewString(),
					Year:       year,
					Author:     systemAuthor,
					Content:    birthContent(p.BirthDate),
					IsOfficial: true,
					CreatedAt:  now.UnixMilli(),
					Tags:       []string{TagBirth},
				})
			}
		}
	}

	if p.DeathDate != "" {
		if year, ok := isoYear(p.DeathDate); ok {
			if m := findTagged(p.Memories, TagDeath); m != nil {
				m.Year = year
			} else {
				p.Memories = append(p.Memories, Memory{
					ID:         "auto-death-" + uuid.NewString(),
					Year:       year,
					Author:     systemAuthor,
					Content:    deathContent,
					IsOfficial: true,
					CreatedAt:  now.UnixMilli(),
					Tags:       []string{TagDeath},
				})
			}
		}
	}
}
