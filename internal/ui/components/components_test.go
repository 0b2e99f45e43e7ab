package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mathrush/internal/ui/theme"
)

func TestTextInput_NumericFilter(t *testing.T) {
	ti := NewTextInput("answer", true, 10)
	for _, r := range "4a2.-x5" {
		ti, _ = ti.Update(tea.KeyPressMsg{Code: r, Text: string(r)})
	}
	if got := ti.Value(); got != "42.-5" {
		t.Errorf("Value() = %q, want %q", got, "42.-5")
	}
}

func TestTextInput_Reset(t *testing.T) {
	ti := NewTextInput("answer", true, 10)
	ti.Model.SetValue("12")
	ti.Submit(true)
	ti.Reset()
	if ti.Value() != "" {
		t.Errorf("Value() = %q after reset", ti.Value())
	}
	if strings.Contains(ti.View(), "✓") {
		t.Error("reset input still shows the submission mark")
	}
}

func TestEnergyBar_Colors(t *testing.T) {
	tests := []struct {
		energy int
		want   any
	}{
		{100, theme.Success},
		{51, theme.Success},
		{50, theme.Accent},
		{25, theme.Error},
		{0, theme.Error},
	}
	for _, tt := range tests {
		if got := EnergyBar(tt.energy, 40).Fill; got != tt.want {
			t.Errorf("EnergyBar(%d).Fill = %v, want %v", tt.energy, got, tt.want)
		}
	}
}

func TestProgressBar_View(t *testing.T) {
	view := EnergyBar(85, 40).View()
	if !strings.Contains(view, "Energy") || !strings.Contains(view, "85%") {
		t.Errorf("unexpected bar: %q", view)
	}
}

func TestMascot_Moods(t *testing.T) {
	seen := map[string]bool{}
	for _, mood := range []string{"neutral", "happy", "excited", "focused", "confused"} {
		art := Mascot(mood)
		if art == "" {
			t.Fatalf("no art for %s", mood)
		}
		seen[mascotFaces[mood]] = true
	}
	if len(seen) != 5 {
		t.Errorf("expected 5 distinct faces, got %d", len(seen))
	}
	if !strings.Contains(Mascot("sleepy"), "◉ ◉") {
		t.Error("unknown mood should fall back to the neutral face")
	}
}
