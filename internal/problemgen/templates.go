package problemgen

import (
	"fmt"
	"math"

	"github.com/abhisek/mathrush/internal/levels"
)

// Template is one entry of the question pool.
type Template struct {
	Category Category

	// Gate is the minimum level at which the template is eligible.
	Gate int

	build func(r Rand, lc levels.Config) Question
}

// Generate draws fresh parameters and returns a question. ok is false when
// level is below the template's gate; no randomness is consumed then.
func (t Template) Generate(r Rand, level int) (q Question, ok bool) {
	if level < t.Gate {
		return Question{}, false
	}
	q = t.build(r, levels.Get(level))
	q.Category = t.Category
	return q, true
}

// Pool returns the fixed catalog of question templates.
func Pool() []Template {
	out := make([]Template, len(pool))
	copy(out, pool)
	return out
}

// GateFor returns the gate of the template producing c. The fallback
// category has gate 1.
func GateFor(c Category) int {
	for _, t := range pool {
		if t.Category == c {
			return t.Gate
		}
	}
	return levels.MinLevel
}

var pool = []Template{
	{Category: CategoryMystery, Gate: 1, build: mystery},
	{Category: CategorySpeed, Gate: 1, build: speed},
	{Category: CategoryPattern, Gate: 1, build: pattern},
	{Category: CategoryProduction, Gate: 1, build: production},
	{Category: CategoryScaling, Gate: 3, build: scaling},
	{Category: CategoryProbability, Gate: 4, build: probability},
	{Category: CategoryOrderOps, Gate: 2, build: orderOps},
	{Category: CategoryInverse, Gate: 1, build: inverse},
	{Category: CategoryRatio, Gate: 3, build: ratio},
	{Category: CategorySequence, Gate: 1, build: sequence},
	{Category: CategoryMegaWord, Gate: 5, build: megaWord},
	{Category: CategoryExponential, Gate: 5, build: exponential},
	{Category: CategoryPercentageChain, Gate: 5, build: percentageChain},
	{Category: CategoryComplexRatio, Gate: 5, build: complexRatio},
	{Category: CategorySystemDisguised, Gate: 6, build: systemDisguised},
	{Category: CategoryPrimeFactors, Gate: 6, build: primeFactors},
	{Category: CategoryCompoundInterest, Gate: 6, build: compoundInterest},
	{Category: CategoryGeometricSeries, Gate: 6, build: geometricSeries},
	{Category: CategoryModular, Gate: 6, build: modular},
	{Category: CategoryCombinations, Gate: 6, build: combinations},
}

func mystery(r Rand, lc levels.Config) Question {
	total := inclusive(r, lc.Min, lc.Max)
	visible := r.IntN(total)
	return Question{
		Text:   fmt.Sprintf("There are %d items total. You can see %d. How many are hidden?", total, visible),
		Answer: total - visible,
		Hint:   fmt.Sprintf("Total minus visible: %d - %d", total, visible),
	}
}

func speed(r Rand, _ levels.Config) Question {
	distance := between(r, 10, 30)
	hours := pick(r, 2, 3, 4, 5)
	return Question{
		Text:   fmt.Sprintf("Travel %d km in %d hours. What's your speed per hour?", distance, hours),
		Answer: distance / hours,
		Hint:   fmt.Sprintf("Distance divided by time: %d ÷ %d", distance, hours),
	}
}

func pattern(r Rand, _ levels.Config) Question {
	start := inclusive(r, 1, 5)
	mult := pick(r, 2, 3)
	return Question{
		Text:   fmt.Sprintf("Pattern: %d, %d, %d. Next number?", start, start*mult, start*mult*mult),
		Answer: start * mult * mult * mult,
		Hint:   fmt.Sprintf("Each number is multiplied by %d", mult),
	}
}

func production(r Rand, _ levels.Config) Question {
	workers := between(r, 2, 10)
	output := between(r, 2, 7)
	hours := between(r, 2, 6)
	return Question{
		Text:   fmt.Sprintf("%d workers each make %d items per hour. Total in %d hours?", workers, output, hours),
		Answer: workers * output * hours,
		Hint:   fmt.Sprintf("Workers × output × hours: %d × %d × %d", workers, output, hours),
	}
}

func scaling(r Rand, _ levels.Config) Question {
	original := between(r, 5, 25)
	scale := pick(r, 2, 3, 4)
	return Question{
		Text:   fmt.Sprintf("Original size: %d. Scale it up %dx. New size?", original, scale),
		Answer: original * scale,
		Hint:   fmt.Sprintf("Multiply by scale factor: %d × %d", original, scale),
	}
}

func probability(r Rand, _ levels.Config) Question {
	total := pick(r, 10, 20, 100)
	favorable := total / pick(r, 2, 4, 5)
	return Question{
		Text:   fmt.Sprintf("%d winning tickets out of %d total. What percentage wins?", favorable, total),
		Answer: int(math.Round(float64(favorable) / float64(total) * 100)),
		Hint:   fmt.Sprintf("(Winning ÷ Total) × 100: (%d ÷ %d) × 100", favorable, total),
	}
}

func orderOps(r Rand, _ levels.Config) Question {
	a := between(r, 5, 20)
	b := between(r, 2, 12)
	c := between(r, 2, 10)
	return Question{
		Text:   fmt.Sprintf("%d + %d × %d = ?", a, b, c),
		Answer: a + b*c,
		Hint:   fmt.Sprintf("Multiplication first: %d + (%d × %d) = %d + %d", a, b, c, a, b*c),
	}
}

func inverse(r Rand, lc levels.Config) Question {
	result := inclusive(r, lc.Min, lc.Max)
	sub := r.IntN(result)
	return Question{
		Text:   fmt.Sprintf("Some number minus %d equals %d. What's the number?", sub, result-sub),
		Answer: result,
		Hint:   fmt.Sprintf("Add back what was subtracted: %d + %d", result-sub, sub),
	}
}

func ratio(r Rand, _ levels.Config) Question {
	r1 := between(r, 1, 6)
	r2 := between(r, 1, 6)
	k := between(r, 2, 10)
	return Question{
		Text:   fmt.Sprintf("Ratio is %d:%d. If first part is %d, what's second part?", r1, r2, r1*k),
		Answer: r2 * k,
		Hint:   fmt.Sprintf("Keep the same ratio: %d ÷ %d = %d, so %d × %d", r1*k, r1, k, r2, k),
	}
}

func sequence(r Rand, _ levels.Config) Question {
	start := between(r, 1, 11)
	step := pick(r, 3, 4, 5, 7)
	return Question{
		Text: fmt.Sprintf("Sequence: %d, %d, %d, ?, %d. Missing number?",
			start, start+step, start+2*step, start+4*step),
		Answer: start + 3*step,
		Hint:   fmt.Sprintf("Increases by %d each time", step),
	}
}

func megaWord(r Rand, _ levels.Config) Question {
	factories := between(r, 3, 8)
	machines := between(r, 4, 12)
	items := between(r, 6, 18)
	hours := between(r, 8, 12)
	days := between(r, 2, 5)
	defectRate := between(r, 5, 20)

	total := factories * machines * items * hours * days
	defective := total * defectRate / 100
	return Question{
		Text: fmt.Sprintf("%d factories, %d machines each, %d items/machine/hour, %dh/day for %d days. %d%% defective. Good items?",
			factories, machines, items, hours, days, defectRate),
		Answer: total - defective,
		Hint: fmt.Sprintf("Total items = %d×%d×%d×%d×%d = %d. Defective = %d%% of %d = %d",
			factories, machines, items, hours, days, total, defectRate, total, defective),
	}
}

func exponential(r Rand, _ levels.Config) Question {
	initial := between(r, 2, 10)
	rate := pick(r, 2, 3, 4)
	periods := between(r, 4, 8)
	growth := ipow(rate, periods)
	return Question{
		Text:   fmt.Sprintf("Population starts at %d, %dx every period. After %d periods?", initial, rate, periods),
		Answer: initial * growth,
		Hint:   fmt.Sprintf("%d × %d^%d = %d × %d", initial, rate, periods, initial, growth),
	}
}

func percentageChain(r Rand, _ levels.Config) Question {
	start := between(r, 100, 500)
	inc1 := between(r, 20, 50)
	dec := between(r, 15, 40)
	inc2 := between(r, 25, 60)

	step1 := start * (100 + inc1) / 100
	step2 := step1 * (100 - dec) / 100
	final := step2 * (100 + inc2) / 100
	return Question{
		Text:   fmt.Sprintf("Start: %d. +%d%%, then -%d%%, then +%d%%. Final value?", start, inc1, dec, inc2),
		Answer: final,
		Hint:   fmt.Sprintf("%d → %d → %d → %d", start, step1, step2, final),
	}
}

func complexRatio(r Rand, _ levels.Config) Question {
	a := between(r, 3, 10)
	b := between(r, 4, 13)
	c := between(r, 2, 8)
	total := between(r, 150, 350)
	sum := a + b + c
	return Question{
		Text:   fmt.Sprintf("Ratio %d:%d:%d. Total is %d. First part equals?", a, b, c, total),
		Answer: a * total / sum,
		Hint:   fmt.Sprintf("Sum of ratio = %d. First part = (%d/%d) × %d", sum, a, sum, total),
	}
}

func systemDisguised(r Rand, _ levels.Config) Question {
	x := between(r, 5, 20)
	y := between(r, 3, 15)
	sum := x + y
	diff := x - y
	if diff < 0 {
		diff = -diff
	}
	return Question{
		Text:   fmt.Sprintf("Two numbers sum to %d. Their difference is %d. What is the larger number?", sum, diff),
		Answer: max(x, y),
		Hint:   fmt.Sprintf("If sum = %d and difference = %d, then larger = (%d + %d)/2", sum, diff, sum, diff),
	}
}

var smallPrimes = []int{2, 3, 5, 7, 11, 13}

func primeFactors(r Rand, _ levels.Config) Question {
	i := r.IntN(4)
	j := r.IntN(4) + 2
	if j == i {
		// p1 and p2 must differ or the divisor count is wrong.
		j++
	}
	p1, p2 := smallPrimes[i], smallPrimes[j]
	exp1 := between(r, 2, 5)
	exp2 := between(r, 1, 3)

	number := ipow(p1, exp1) * ipow(p2, exp2)
	return Question{
		Text: fmt.Sprintf("%d = %d^%d × %d^%d. How many total factors does %d have?",
			number, p1, exp1, p2, exp2, number),
		Answer: (exp1 + 1) * (exp2 + 1),
		Hint:   fmt.Sprintf("For p^a × q^b, factors = (a+1)(b+1) = (%d+1)(%d+1)", exp1, exp2),
	}
}

func compoundInterest(r Rand, _ levels.Config) Question {
	principal := between(r, 100, 600)
	rate := pick(r, 5, 8, 10, 12)
	years := between(r, 2, 5)

	amount := int(math.Floor(float64(principal) * math.Pow(1+float64(rate)/100, float64(years))))
	return Question{
		Text: fmt.Sprintf("$%d at %d%% compound interest for %d years. Total interest earned?",
			principal, rate, years),
		Answer: amount - principal,
		Hint: fmt.Sprintf("Amount = %d × (1 + %d/100)^%d = %d. Interest = %d - %d",
			principal, rate, years, amount, amount, principal),
	}
}

func geometricSeries(r Rand, _ levels.Config) Question {
	first := between(r, 2, 8)
	ratio := pick(r, 2, 3)
	terms := between(r, 4, 7)

	sum := 0
	for i := 0; i < terms; i++ {
		sum += first * ipow(ratio, i)
	}
	return Question{
		Text: fmt.Sprintf("Series: %d + %d + %d + ... (%d terms). Sum?",
			first, first*ratio, first*ratio*ratio, terms),
		Answer: sum,
		Hint:   fmt.Sprintf("Geometric series: %d(%d^%d - 1)/(%d - 1)", first, ratio, terms, ratio),
	}
}

func modular(r Rand, _ levels.Config) Question {
	base := between(r, 50, 130)
	mod := pick(r, 7, 11, 13)
	return Question{
		Text:   fmt.Sprintf("What is %d mod %d? (remainder when %d is divided by %d)", base, mod, base, mod),
		Answer: base % mod,
		Hint:   fmt.Sprintf("%d ÷ %d = %d remainder %d", base, mod, base/mod, base%mod),
	}
}

func combinations(r Rand, _ levels.Config) Question {
	total := between(r, 6, 11)
	choose := between(r, 2, 5)

	// Each partial product is C(total, i+1), so the division is exact.
	ways := 1
	for i := 0; i < choose; i++ {
		ways = ways * (total - i) / (i + 1)
	}
	return Question{
		Text:   fmt.Sprintf("Choose %d items from %d items. How many ways?", choose, total),
		Answer: ways,
		Hint:   fmt.Sprintf("C(%d,%d) = %d!/(%d! × %d!)", total, choose, total, choose, total-choose),
	}
}

// ipow returns base^exp for small non-negative exponents.
func ipow(base, exp int) int {
	out := 1
	for i := 0; i < exp; i++ {
		out *= base
	}
	return out
}
