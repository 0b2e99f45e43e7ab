package problemgen

import "fmt"

// Validator checks a generated question before it is served.
// Implementations should be stateless.
type Validator interface {
	// Name returns a short identifier for error messages and logging.
	Name() string

	// Validate returns nil if q may be served at level.
	Validate(q *Question, level int) *ValidationError
}

// ValidationError describes why a question failed validation.
type ValidationError struct {
	Validator string // Name of the validator that failed
	Message   string // Human-readable description of the failure
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validator %q: %s", e.Validator, e.Message)
}

// GateValidator rejects questions whose template is gated above level.
type GateValidator struct{}

func (v *GateValidator) Name() string { return "gate" }

func (v *GateValidator) Validate(q *Question, level int) *ValidationError {
	if gate := GateFor(q.Category); gate > level {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("category %s requires level %d, have %d", q.Category, gate, level),
		}
	}
	return nil
}
