package problemgen

import "strings"

// StructuralValidator checks that required fields are present and within
// length limits, and that the prompt shows concrete numbers.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(q *Question, _ int) *ValidationError {
	if q.Text == "" {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "question text is empty",
		}
	}
	if len(q.Text) > 500 {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "question text exceeds 500 characters",
		}
	}
	if !strings.ContainsAny(q.Text, "0123456789") {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "question text has no numbers",
		}
	}
	if q.Hint == "" {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "hint is empty",
		}
	}
	if q.Category == "" {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "category is empty",
		}
	}
	if q.Answer < 0 {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "answer is negative",
		}
	}
	return nil
}
