package problemgen

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
)

var errNotComputable = errors.New("not computable")

// MathCheckValidator independently recomputes the answer of questions that
// are bare arithmetic, such as "5 + 3 × 4 = ?" or "What is 100 mod 7?".
// Word problems pass through.
type MathCheckValidator struct{}

func (v *MathCheckValidator) Name() string { return "math-check" }

func (v *MathCheckValidator) Validate(q *Question, _ int) *ValidationError {
	computed, err := computeAnswer(q.Text)
	if err != nil {
		return nil
	}
	if computed != q.Answer {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("computed %d but question claims %d", computed, q.Answer),
		}
	}
	return nil
}

var (
	// A whole question that is an expression: "a op b op c = ?"
	exprRe  = regexp.MustCompile(`^\s*(\d+(?:\s*[+\-*×÷]\s*\d+)+)\s*=\s*\?\s*$`)
	tokenRe = regexp.MustCompile(`\d+|[+\-*×÷]`)

	modRe = regexp.MustCompile(`^What is (\d+) mod (\d+)\?`)
)

// computeAnswer extracts and evaluates the arithmetic in text.
func computeAnswer(text string) (int, error) {
	if m := modRe.FindStringSubmatch(text); m != nil {
		a, _ := strconv.Atoi(m[1])
		b, _ := strconv.Atoi(m[2])
		if b == 0 {
			return 0, errNotComputable
		}
		return a % b, nil
	}

	m := exprRe.FindStringSubmatch(text)
	if m == nil {
		return 0, errNotComputable
	}
	return evalExpr(tokenRe.FindAllString(m[1], -1))
}

// evalExpr evaluates alternating number/operator tokens with
// multiplication and division binding tighter than addition and
// subtraction. Division must be exact.
func evalExpr(tokens []string) (int, error) {
	if len(tokens)%2 == 0 {
		return 0, errNotComputable
	}

	var sum int
	sign := 1
	term, err := strconv.Atoi(tokens[0])
	if err != nil {
		return 0, err
	}

	for i := 1; i < len(tokens); i += 2 {
		n, err := strconv.Atoi(tokens[i+1])
		if err != nil {
			return 0, err
		}
		switch normalizeOp(tokens[i]) {
		case "*":
			term *= n
		case "/":
			if n == 0 || term%n != 0 {
				return 0, errNotComputable
			}
			term /= n
		case "+":
			sum += sign * term
			sign, term = 1, n
		case "-":
			sum += sign * term
			sign, term = -1, n
		}
	}
	return sum + sign*term, nil
}

// normalizeOp normalizes multiplication and division symbols.
func normalizeOp(op string) string {
	switch op {
	case "×":
		return "*"
	case "÷":
		return "/"
	default:
		return op
	}
}
