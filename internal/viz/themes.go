package viz

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/orbitrace/internal/orbit"
)

// Theme defines the sky gradient and panel colors.
type Theme struct {
	Name      string
	SkyOuter  orbit.Color
	SkyInner  orbit.Color
	Ring      orbit.Color
	Star      orbit.Color
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Muted     lipgloss.Color
	Success   lipgloss.Color
	Warning   lipgloss.Color
}

var (
	ThemeSpace = Theme{
		Name:      "space",
		SkyOuter:  orbit.Color{R: 25, G: 25, B: 50},
		SkyInner:  orbit.Color{R: 75, G: 50, B: 150},
		Ring:      orbit.Color{R: 150, G: 150, B: 150},
		Star:      orbit.White,
		Primary:   lipgloss.Color("#ffcc00"),
		Secondary: lipgloss.Color("#00ffff"),
		Muted:     lipgloss.Color("#666688"),
		Success:   lipgloss.Color("#00ff88"),
		Warning:   lipgloss.Color("#ffaa00"),
	}

	ThemeNebula = Theme{
		Name:      "nebula",
		SkyOuter:  orbit.Color{R: 20, G: 5, B: 30},
		SkyInner:  orbit.Color{R: 140, G: 30, B: 90},
		Ring:      orbit.Color{R: 200, G: 140, B: 200},
		Star:      orbit.Color{R: 255, G: 230, B: 250},
		Primary:   lipgloss.Color("#ff9ff3"),
		Secondary: lipgloss.Color("#feca57"),
		Muted:     lipgloss.Color("#8b6b8c"),
		Success:   lipgloss.Color("#5fd068"),
		Warning:   lipgloss.Color("#ffc048"),
	}

	ThemeMinimal = Theme{
		Name:      "minimal",
		SkyOuter:  orbit.Color{R: 0, G: 0, B: 0},
		SkyInner:  orbit.Color{R: 30, G: 30, B: 30},
		Ring:      orbit.Color{R: 90, G: 90, B: 90},
		Star:      orbit.Color{R: 180, G: 180, B: 180},
		Primary:   lipgloss.Color("#ffffff"),
		Secondary: lipgloss.Color("#0088ff"),
		Muted:     lipgloss.Color("#888888"),
		Success:   lipgloss.Color("#00ff00"),
		Warning:   lipgloss.Color("#ffaa00"),
	}

	Themes = []Theme{
		ThemeSpace,
		ThemeNebula,
		ThemeMinimal,
	}
)

// GetTheme returns a theme by name, falling back to space.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeSpace
}

// NextTheme returns the theme after current, wrapping around.
func NextTheme(current Theme) Theme {
	for i, t := range Themes {
		if t.Name == current.Name {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return Themes[0]
}

func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
