package viz

import (
	"strings"
	"testing"
)

func TestSpeedBar(t *testing.T) {
	tests := []struct {
		speed float64
		want  string
	}{
		{0.015, "[----------]"},
		{0.02, "[=====-----]"},
		{0.025, "[==========]"},
		{0.035, "[==========]+"},
		{0.01, "[----------]"},
	}

	for _, tt := range tests {
		if got := SpeedBar(tt.speed, 0.015, 0.025, 10); got != tt.want {
			t.Errorf("SpeedBar(%v) = %q, want %q", tt.speed, got, tt.want)
		}
	}
}

func TestGradientText(t *testing.T) {
	if GradientText("", ThemeSpace.SkyOuter, ThemeSpace.SkyInner) != "" {
		t.Error("empty text should render empty")
	}

	out := GradientText("ORBIT", ThemeSpace.SkyOuter, ThemeSpace.SkyInner)
	for _, r := range "ORBIT" {
		if !strings.ContainsRune(out, r) {
			t.Errorf("gradient text lost %q", r)
		}
	}
}

func TestThemes(t *testing.T) {
	if GetTheme("nebula").Name != "nebula" {
		t.Error("GetTheme did not find nebula")
	}
	if GetTheme("missing").Name != ThemeSpace.Name {
		t.Error("unknown theme should fall back to space")
	}

	names := ThemeNames()
	cur := GetTheme(names[len(names)-1])
	if NextTheme(cur).Name != names[0] {
		t.Error("NextTheme should wrap around")
	}
}
