package problemgen

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/mathrush/internal/levels"
)

// scriptedRand replays fixed values (modulo n) and counts calls.
type scriptedRand struct {
	vals  []int
	calls int
}

func (s *scriptedRand) IntN(n int) int {
	v := 0
	if s.calls < len(s.vals) {
		v = s.vals[s.calls]
	}
	s.calls++
	return v % n
}

// rejectAll fails every question.
type rejectAll struct{}

func (rejectAll) Name() string { return "reject-all" }
func (rejectAll) Validate(*Question, int) *ValidationError {
	return &ValidationError{Validator: "reject-all", Message: "no"}
}

func TestGenerate_ValidAtEveryLevel(t *testing.T) {
	for level := levels.MinLevel; level <= levels.MaxLevel; level++ {
		t.Run(fmt.Sprintf("level %d", level), func(t *testing.T) {
			gen := New(NewRand(uint64(level)*7919), DefaultConfig())
			for i := 0; i < 1000; i++ {
				q := gen.Generate(level)
				require.LessOrEqual(t, GateFor(q.Category), level, "category %s served at level %d", q.Category, level)
				require.NotEmpty(t, q.Text)
				require.NotEmpty(t, q.Hint)
			}
		})
	}
}

func TestGenerate_HighLevelsReachGatedTemplates(t *testing.T) {
	gen := New(NewRand(42), DefaultConfig())
	seen := make(map[Category]bool)
	for i := 0; i < 2000; i++ {
		seen[gen.Generate(6).Category] = true
	}
	for _, tmpl := range Pool() {
		assert.True(t, seen[tmpl.Category], "category %s never generated at level 6", tmpl.Category)
	}
}

func TestGenerate_SameSeedSameQuestions(t *testing.T) {
	a := New(NewRand(1234), DefaultConfig())
	b := New(NewRand(1234), DefaultConfig())
	for i := 0; i < 50; i++ {
		level := i%levels.MaxLevel + 1
		assert.Equal(t, a.Generate(level), b.Generate(level))
	}
}

func TestGenerate_FallbackAfterMaxAttempts(t *testing.T) {
	// Every pick lands on a level-6 template while playing level 1.
	gated := []Template{{Category: CategoryModular, Gate: 6, build: modular}}
	rng := &scriptedRand{}
	gen := NewWithPool(rng, DefaultConfig(), gated)

	q := gen.Generate(1)

	assert.Equal(t, CategoryBasic, q.Category)
	assert.Equal(t, 0, q.Answer, "fallback keeps the placeholder answer")
	assert.Equal(t, "1 + 1", q.Text)
	assert.Equal(t, 20+2, rng.calls, "20 selections then two operands")
}

func TestGenerate_FallbackOperandsInDomain(t *testing.T) {
	gated := []Template{{Category: CategoryModular, Gate: 6, build: modular}}
	rng := &scriptedRand{vals: make([]int, 20)}
	rng.vals = append(rng.vals, 9, 4)
	gen := NewWithPool(rng, DefaultConfig(), gated)

	q := gen.Generate(1)
	assert.Equal(t, "10 + 5", q.Text)
}

func TestGenerate_ValidatorRejectionsSpendAttempts(t *testing.T) {
	cfg := Config{MaxAttempts: 3, Validators: []Validator{rejectAll{}}}
	gen := New(NewRand(9), cfg)

	q := gen.Generate(6)
	assert.Equal(t, CategoryBasic, q.Category)
}

func TestGenerate_NoValidators(t *testing.T) {
	gen := New(NewRand(9), Config{})
	q := gen.Generate(6)
	assert.NotEqual(t, CategoryBasic, q.Category)
}

func TestGenerate_ClampsLevel(t *testing.T) {
	gen := New(NewRand(5), DefaultConfig())
	for i := 0; i < 200; i++ {
		q := gen.Generate(0)
		assert.Equal(t, 1, GateFor(q.Category))
	}
}

func TestDefaultValidators_AcceptStandardPool(t *testing.T) {
	rng := NewRand(314)
	validators := DefaultConfig().Validators
	for _, tmpl := range Pool() {
		for level := max(tmpl.Gate, levels.MinLevel); level <= levels.MaxLevel; level++ {
			for i := 0; i < 50; i++ {
				q, ok := tmpl.Generate(rng, level)
				require.True(t, ok)
				for _, v := range validators {
					assert.Nil(t, v.Validate(&q, level), "%s rejected %s at level %d: %s", v.Name(), tmpl.Category, level, q.Text)
				}
			}
		}
	}
}
