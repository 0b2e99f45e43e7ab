package problemgen

import "strconv"

// Question represents a generated math question ready for display.
type Question struct {
	// Text is the question prompt, with every sampled value spelled out,
	// e.g. "Travel 24 km in 3 hours. What's your speed per hour?"
	Text string

	// Answer is the accepted integer answer.
	Answer int

	// Hint is a short worked hint, revealed on request at a cost.
	Hint string

	// Category identifies the template that produced the question.
	Category Category
}

// AnswerString returns the accepted answer formatted for display.
func (q Question) AnswerString() string {
	return strconv.Itoa(q.Answer)
}

// Category names a question template.
type Category string

const (
	CategoryMystery          Category = "mystery"
	CategorySpeed            Category = "speed"
	CategoryPattern          Category = "pattern"
	CategoryProduction       Category = "production"
	CategoryScaling          Category = "scaling"
	CategoryProbability      Category = "probability"
	CategoryOrderOps         Category = "order_ops"
	CategoryInverse          Category = "inverse"
	CategoryRatio            Category = "ratio"
	CategorySequence         Category = "sequence"
	CategoryMegaWord         Category = "mega_word"
	CategoryExponential      Category = "exponential"
	CategoryPercentageChain  Category = "percentage_chain"
	CategoryComplexRatio     Category = "complex_ratio"
	CategorySystemDisguised  Category = "system_disguised"
	CategoryPrimeFactors     Category = "prime_factors"
	CategoryCompoundInterest Category = "compound_interest"
	CategoryGeometricSeries  Category = "geometric_series"
	CategoryModular          Category = "modular"
	CategoryCombinations     Category = "combinations"

	// CategoryBasic is only produced by the exhaustion fallback.
	CategoryBasic Category = "basic"
)

// DisplayName returns a human-readable label for the category.
func (c Category) DisplayName() string {
	switch c {
	case CategoryMystery:
		return "Mystery Box"
	case CategorySpeed:
		return "Speed"
	case CategoryPattern:
		return "Pattern"
	case CategoryProduction:
		return "Production"
	case CategoryScaling:
		return "Scaling"
	case CategoryProbability:
		return "Probability"
	case CategoryOrderOps:
		return "Order of Operations"
	case CategoryInverse:
		return "Inverse"
	case CategoryRatio:
		return "Ratio"
	case CategorySequence:
		return "Sequence"
	case CategoryMegaWord:
		return "Mega Word Problem"
	case CategoryExponential:
		return "Exponential Growth"
	case CategoryPercentageChain:
		return "Percentage Chain"
	case CategoryComplexRatio:
		return "Complex Ratio"
	case CategorySystemDisguised:
		return "Hidden System"
	case CategoryPrimeFactors:
		return "Prime Factors"
	case CategoryCompoundInterest:
		return "Compound Interest"
	case CategoryGeometricSeries:
		return "Geometric Series"
	case CategoryModular:
		return "Modular Arithmetic"
	case CategoryCombinations:
		return "Combinations"
	case CategoryBasic:
		return "Basic"
	default:
		return string(c)
	}
}
