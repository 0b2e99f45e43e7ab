package problemgen

import (
	"fmt"

	"github.com/abhisek/mathrush/internal/levels"
)

// Generator produces questions for a difficulty level.
type Generator interface {
	// Generate returns a question whose template is eligible at level.
	// It never fails; exhaustion yields the fallback question.
	Generate(level int) Question
}

// PoolGenerator picks templates uniformly from the pool and retries
// ineligible picks up to a bounded number of attempts.
type PoolGenerator struct {
	rng  Rand
	pool []Template
	cfg  Config
}

var _ Generator = (*PoolGenerator)(nil)

// New creates a PoolGenerator over the standard pool.
func New(rng Rand, cfg Config) *PoolGenerator {
	return NewWithPool(rng, cfg, Pool())
}

// NewWithPool creates a PoolGenerator over a custom pool.
func NewWithPool(rng Rand, cfg Config, templates []Template) *PoolGenerator {
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = DefaultConfig().MaxAttempts
	}
	return &PoolGenerator{rng: rng, pool: templates, cfg: cfg}
}

// Generate implements Generator.
func (g *PoolGenerator) Generate(level int) Question {
	level = levels.Clamp(level)
	if len(g.pool) > 0 {
		for attempt := 0; attempt < g.cfg.MaxAttempts; attempt++ {
			t := g.pool[g.rng.IntN(len(g.pool))]
			q, ok := t.Generate(g.rng, level)
			if !ok {
				continue
			}
			if err := g.validate(&q, level); err != nil {
				continue
			}
			return q
		}
	}
	return fallback(g.rng, levels.Get(level))
}

// validate runs all configured validators; the first failure wins.
func (g *PoolGenerator) validate(q *Question, level int) *ValidationError {
	for _, v := range g.cfg.Validators {
		if err := v.Validate(q, level); err != nil {
			return err
		}
	}
	return nil
}

// fallback is served when every attempt hit an ineligible template.
// The accepted answer is 0 rather than a+b; scoring keeps that quirk.
func fallback(r Rand, lc levels.Config) Question {
	a := inclusive(r, lc.Min, lc.Max)
	b := inclusive(r, lc.Min, lc.Max)
	return Question{
		Text:     fmt.Sprintf("%d + %d", a, b),
		Answer:   0,
		Hint:     "Add the two numbers together",
		Category: CategoryBasic,
	}
}
