package problemgen

import (
	"strings"
	"testing"
)

func validQuestion() *Question {
	return &Question{
		Text:     "Travel 24 km in 3 hours. What's your speed per hour?",
		Answer:   8,
		Hint:     "Distance divided by time: 24 ÷ 3",
		Category: CategorySpeed,
	}
}

func TestStructural_ValidQuestion(t *testing.T) {
	v := &StructuralValidator{}
	if err := v.Validate(validQuestion(), 1); err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
}

func TestStructural_Failures(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(q *Question)
	}{
		{"empty text", func(q *Question) { q.Text = "" }},
		{"text too long", func(q *Question) { q.Text = strings.Repeat("9", 501) }},
		{"no numbers", func(q *Question) { q.Text = "How fast?" }},
		{"empty hint", func(q *Question) { q.Hint = "" }},
		{"empty category", func(q *Question) { q.Category = "" }},
		{"negative answer", func(q *Question) { q.Answer = -1 }},
	}

	v := &StructuralValidator{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := validQuestion()
			tt.mutate(q)
			err := v.Validate(q, 1)
			if err == nil {
				t.Fatal("expected validation error")
			}
			if err.Validator != "structural" {
				t.Errorf("expected validator %q, got %q", "structural", err.Validator)
			}
		})
	}
}
