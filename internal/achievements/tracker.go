package achievements

// Score and streak thresholds that unlock achievements.
const (
	StreakMaster   = 5
	StreakFire     = 10
	StreakMegaFire = 20
	ScoreHunter    = 1000
	ScoreDestroyer = 5000
	LevelCrusher   = 4
	LevelDemon     = 5
	LevelGod       = 6
)

// Check evaluates every achievement predicate against the values after
// a correct answer has been applied. Streak predicates match exactly and
// fire once per run; score and level predicates are inclusive and fire
// again on every later correct answer.
func Check(score, streak, level int) []Achievement {
	var out []Achievement
	if streak == StreakMaster {
		out = append(out, Achievement{Message: "Streak Master", Type: TypeStreak})
	}
	if streak == StreakFire {
		out = append(out, Achievement{Message: "On Fire", Type: TypeFire})
	}
	if streak == StreakMegaFire {
		out = append(out, Achievement{Message: "UNSTOPPABLE FORCE", Type: TypeMegaFire})
	}
	if score >= ScoreHunter {
		out = append(out, Achievement{Message: "Score Hunter", Type: TypeScore})
	}
	if score >= ScoreDestroyer {
		out = append(out, Achievement{Message: "SCORE DESTROYER", Type: TypeMegaScore})
	}
	if level >= LevelCrusher {
		out = append(out, Achievement{Message: "Level Crusher", Type: TypeLevel})
	}
	if level >= LevelDemon {
		out = append(out, Achievement{Message: "MATH DEMON UNLOCKED", Type: TypeDemon})
	}
	if level >= LevelGod {
		out = append(out, Achievement{Message: "CALCULATION GOD MODE", Type: TypeGod})
	}
	return out
}

// Tracker owns the append-only achievement log of one session.
type Tracker struct {
	// Dedupe suppresses score and level achievements whose type is
	// already in the log. Streak achievements are unaffected because a
	// new run can legitimately earn them again.
	Dedupe bool

	log  []Achievement
	seen map[Type]bool
}

// NewTracker creates an empty tracker.
func NewTracker(dedupe bool) *Tracker {
	return &Tracker{Dedupe: dedupe, seen: make(map[Type]bool)}
}

// Record runs Check and appends the results to the log. It returns only
// the achievements that were appended.
func (t *Tracker) Record(score, streak, level int) []Achievement {
	if t.seen == nil {
		t.seen = make(map[Type]bool)
	}
	var added []Achievement
	for _, a := range Check(score, streak, level) {
		if t.Dedupe && !a.Type.isStreak() && t.seen[a.Type] {
			continue
		}
		t.seen[a.Type] = true
		t.log = append(t.log, a)
		added = append(added, a)
	}
	return added
}

// All returns a copy of the full log in unlock order.
func (t *Tracker) All() []Achievement {
	out := make([]Achievement, len(t.log))
	copy(out, t.log)
	return out
}

// Recent returns a copy of the last n entries, oldest first.
func (t *Tracker) Recent(n int) []Achievement {
	if n <= 0 {
		return nil
	}
	start := len(t.log) - n
	if start < 0 {
		start = 0
	}
	out := make([]Achievement, len(t.log)-start)
	copy(out, t.log[start:])
	return out
}

// Len returns the number of logged achievements.
func (t *Tracker) Len() int { return len(t.log) }

func (t Type) isStreak() bool {
	return t == TypeStreak || t == TypeFire || t == TypeMegaFire
}
