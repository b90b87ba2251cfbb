package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/orbitrace/internal/orbit"
)

var (
	canvasStyle = lipgloss.NewStyle().Padding(1, 2)
	panelStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(1, 2).Width(46)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(8)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
	bannerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ffffff")).Border(lipgloss.RoundedBorder()).Padding(0, 2)
)

// GradientText colors each rune of text along a Lab blend from start to end.
func GradientText(text string, start, end orbit.Color) string {
	runes := []rune(text)
	if len(runes) == 0 {
		return ""
	}

	var b strings.Builder
	for i, r := range runes {
		t := 0.0
		if len(runes) > 1 {
			t = float64(i) / float64(len(runes)-1)
		}
		c := start.Blend(end, t)
		b.WriteString(lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(c.Hex())).Render(string(r)))
	}
	return b.String()
}

// SpeedBar shows where speed sits inside [lo, hi]. A boosted speed above hi
// gets a trailing '+'.
func SpeedBar(speed, lo, hi float64, width int) string {
	ratio := 0.0
	if hi > lo {
		ratio = (speed - lo) / (hi - lo)
	}
	ratio = orbit.Clamp(ratio, 0, 1)

	filled := int(ratio * float64(width))
	bar := "[" + strings.Repeat("=", filled) + strings.Repeat("-", width-filled) + "]"
	if speed > hi {
		bar += "+"
	}
	return bar
}

func Separator(width int, muted lipgloss.Color) string {
	mid := width / 2
	left := strings.Repeat("─", mid-3)
	right := strings.Repeat("─", width-mid-3)
	return lipgloss.NewStyle().Foreground(muted).Render(left + " ◆ " + right)
}
