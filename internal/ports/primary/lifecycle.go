// Package primary defines the primary ports (driving adapters) for the
// application. These are the interfaces the presentation layer and the
// scheduler call into.
package primary

import "context"

// LifecycleService defines the primary port for the day-change lifecycle
// engine. This is the sole entry point the scheduler invokes.
type LifecycleService interface {
	// RunDayChange executes one full day-change cycle: birth resolution,
	// aging and death resolution, vendor restock. All randomness flows
	// through a single generator built from seed, so identical seeds
	// against identical data produce identical summaries.
	//
	// Every known server gets a summary, including servers with no births
	// or deaths. A corrupt record is skipped; a store failure aborts the
	// run and propagates.
	RunDayChange(ctx context.Context, seed int64) (map[int64]*DayChangeSummary, error)
}

// BirthOutcome records how a newborn's kennel placement went.
// A failed placement is an outcome for presentation, never an engine error.
type BirthOutcome string

const (
	// BirthPlaced means the newborn joined its mother's kennel.
	BirthPlaced BirthOutcome = "placed"
	// BirthAbandoned means the mother has no kennel; the newborn is
	// unkenneled.
	BirthAbandoned BirthOutcome = "abandoned"
	// BirthCrushed means the mother's kennel was at capacity; the newborn
	// is unkenneled.
	BirthCrushed BirthOutcome = "crushed"
)

// BirthEvent records one resolved pregnancy.
type BirthEvent struct {
	ServerID int64
	MotherID int64
	ChildID  int64
	Outcome  BirthOutcome
}

// DeathEvent records one death from the aging pass.
type DeathEvent struct {
	ServerID int64
	PoochID  int64
}

// DayChangeSummary is the per-server result of one day change. Births and
// deaths keep the order the engine processed them in.
type DayChangeSummary struct {
	ServerID int64
	Births   []BirthEvent
	Deaths   []DeathEvent
}

// MentionedPoochIDs returns every pooch ID referenced by the summary's
// events, deduplicated, preserving first-seen order. The presentation
// layer uses this to build its "mentioned pooches" picker.
func (s *DayChangeSummary) MentionedPoochIDs() []int64 {
	seen := make(map[int64]bool)
	var out []int64

	add := func(id int64) {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}

	for _, birth := range s.Births {
		add(birth.MotherID)
		add(birth.ChildID)
	}
	for _, death := range s.Deaths {
		add(death.PoochID)
	}

	return out
}
