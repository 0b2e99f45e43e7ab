package problemgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func templateFor(t *testing.T, c Category) Template {
	t.Helper()
	for _, tmpl := range Pool() {
		if tmpl.Category == c {
			return tmpl
		}
	}
	t.Fatalf("no template for %s", c)
	return Template{}
}

func TestPool_Gates(t *testing.T) {
	want := map[Category]int{
		CategoryMystery:          1,
		CategorySpeed:            1,
		CategoryPattern:          1,
		CategoryProduction:       1,
		CategoryScaling:          3,
		CategoryProbability:      4,
		CategoryOrderOps:         2,
		CategoryInverse:          1,
		CategoryRatio:            3,
		CategorySequence:         1,
		CategoryMegaWord:         5,
		CategoryExponential:      5,
		CategoryPercentageChain:  5,
		CategoryComplexRatio:     5,
		CategorySystemDisguised:  6,
		CategoryPrimeFactors:     6,
		CategoryCompoundInterest: 6,
		CategoryGeometricSeries:  6,
		CategoryModular:          6,
		CategoryCombinations:     6,
	}

	pool := Pool()
	require.Len(t, pool, len(want))
	for _, tmpl := range pool {
		assert.Equal(t, want[tmpl.Category], tmpl.Gate, "gate for %s", tmpl.Category)
	}
}

func TestTemplate_BelowGateConsumesNoRandomness(t *testing.T) {
	rng := &scriptedRand{}
	_, ok := templateFor(t, CategoryCombinations).Generate(rng, 5)
	assert.False(t, ok)
	assert.Equal(t, 0, rng.calls)
}

func TestTemplates_ScriptedValues(t *testing.T) {
	tests := []struct {
		category   Category
		level      int
		vals       []int
		wantAnswer int
		wantText   string
	}{
		{
			category:   CategoryMystery,
			level:      1,
			vals:       []int{6, 3},
			wantAnswer: 4,
			wantText:   "There are 7 items total. You can see 3. How many are hidden?",
		},
		{
			category:   CategorySpeed,
			level:      1,
			vals:       []int{14, 1},
			wantAnswer: 8,
			wantText:   "Travel 24 km in 3 hours. What's your speed per hour?",
		},
		{
			category:   CategoryPattern,
			level:      1,
			vals:       []int{2, 1},
			wantAnswer: 81,
			wantText:   "Pattern: 3, 9, 27. Next number?",
		},
		{
			category:   CategoryProduction,
			level:      1,
			vals:       []int{3, 1, 2},
			wantAnswer: 60,
			wantText:   "5 workers each make 3 items per hour. Total in 4 hours?",
		},
		{
			category:   CategoryScaling,
			level:      3,
			vals:       []int{7, 2},
			wantAnswer: 48,
			wantText:   "Original size: 12. Scale it up 4x. New size?",
		},
		{
			category:   CategoryProbability,
			level:      4,
			vals:       []int{0, 1},
			wantAnswer: 20,
			wantText:   "2 winning tickets out of 10 total. What percentage wins?",
		},
		{
			category:   CategoryOrderOps,
			level:      2,
			vals:       []int{0, 1, 2},
			wantAnswer: 17,
			wantText:   "5 + 3 × 4 = ?",
		},
		{
			category:   CategoryInverse,
			level:      2,
			vals:       []int{19, 5},
			wantAnswer: 20,
			wantText:   "Some number minus 5 equals 15. What's the number?",
		},
		{
			category:   CategoryRatio,
			level:      3,
			vals:       []int{1, 2, 3},
			wantAnswer: 15,
			wantText:   "Ratio is 2:3. If first part is 10, what's second part?",
		},
		{
			category:   CategorySequence,
			level:      1,
			vals:       []int{1, 2},
			wantAnswer: 17,
			wantText:   "Sequence: 2, 7, 12, ?, 22. Missing number?",
		},
		{
			category:   CategoryMegaWord,
			level:      5,
			vals:       []int{0, 0, 0, 0, 0, 5},
			wantAnswer: 1037,
			wantText:   "3 factories, 4 machines each, 6 items/machine/hour, 8h/day for 2 days. 10% defective. Good items?",
		},
		{
			category:   CategoryExponential,
			level:      5,
			vals:       []int{1, 0, 0},
			wantAnswer: 48,
			wantText:   "Population starts at 3, 2x every period. After 4 periods?",
		},
		{
			category:   CategoryPercentageChain,
			level:      5,
			vals:       []int{100, 5, 5, 25},
			wantAnswer: 300,
			wantText:   "Start: 200. +25%, then -20%, then +50%. Final value?",
		},
		{
			category:   CategoryComplexRatio,
			level:      5,
			vals:       []int{0, 0, 0, 0},
			wantAnswer: 50,
			wantText:   "Ratio 3:4:2. Total is 150. First part equals?",
		},
		{
			category:   CategorySystemDisguised,
			level:      6,
			vals:       []int{5, 9},
			wantAnswer: 12,
			wantText:   "Two numbers sum to 22. Their difference is 2. What is the larger number?",
		},
		{
			category:   CategoryPrimeFactors,
			level:      6,
			vals:       []int{2, 0, 1, 0},
			wantAnswer: 8,
			wantText:   "875 = 5^3 × 7^1. How many total factors does 875 have?",
		},
		{
			category:   CategoryCompoundInterest,
			level:      6,
			vals:       []int{0, 2, 0},
			wantAnswer: 21,
			wantText:   "$100 at 10% compound interest for 2 years. Total interest earned?",
		},
		{
			category:   CategoryGeometricSeries,
			level:      6,
			vals:       []int{0, 0, 0},
			wantAnswer: 30,
			wantText:   "Series: 2 + 4 + 8 + ... (4 terms). Sum?",
		},
		{
			category:   CategoryModular,
			level:      6,
			vals:       []int{50, 0},
			wantAnswer: 2,
			wantText:   "What is 100 mod 7? (remainder when 100 is divided by 7)",
		},
		{
			category:   CategoryCombinations,
			level:      6,
			vals:       []int{4, 1},
			wantAnswer: 120,
			wantText:   "Choose 3 items from 10 items. How many ways?",
		},
	}

	for _, tt := range tests {
		t.Run(string(tt.category), func(t *testing.T) {
			q, ok := templateFor(t, tt.category).Generate(&scriptedRand{vals: tt.vals}, tt.level)
			require.True(t, ok)
			assert.Equal(t, tt.category, q.Category)
			assert.Equal(t, tt.wantAnswer, q.Answer)
			assert.Equal(t, tt.wantText, q.Text)
			assert.NotEmpty(t, q.Hint)
		})
	}
}

func TestTemplates_DomainRangeFollowsLevel(t *testing.T) {
	rng := NewRand(77)
	mystery := templateFor(t, CategoryMystery)
	for i := 0; i < 500; i++ {
		q, ok := mystery.Generate(rng, 1)
		require.True(t, ok)
		assert.GreaterOrEqual(t, q.Answer, 1)
		assert.LessOrEqual(t, q.Answer, 10)
	}
}

func TestTemplates_AnswersNonNegative(t *testing.T) {
	rng := NewRand(2024)
	for _, tmpl := range Pool() {
		for i := 0; i < 200; i++ {
			q, ok := tmpl.Generate(rng, 6)
			require.True(t, ok)
			assert.GreaterOrEqual(t, q.Answer, 0, "category %s: %s", tmpl.Category, q.Text)
		}
	}
}

func TestPrimeFactors_DistinctPrimes(t *testing.T) {
	tmpl := templateFor(t, CategoryPrimeFactors)
	// i = 3 picks 7; j = 3 would also pick 7 and must be bumped to 11.
	q, ok := tmpl.Generate(&scriptedRand{vals: []int{3, 1, 0, 0}}, 6)
	require.True(t, ok)
	assert.Contains(t, q.Text, "539 = 7^2 × 11^1")
	assert.Equal(t, 6, q.Answer)
}
