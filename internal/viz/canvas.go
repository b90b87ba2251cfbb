package viz

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/orbitrace/internal/orbit"
)

// Braille Patterns: 2x4 dots
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

const blank = 0x2800

// Canvas is a braille grid with one foreground and one background color per
// cell. A cell holds 2x4 sub-pixels; the last color written to a cell wins.
type Canvas struct {
	Width, Height int
	Grid          [][]rune
	Fg, Bg        [][]string
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{
		Width:  w,
		Height: h,
		Grid:   make([][]rune, h),
		Fg:     make([][]string, h),
		Bg:     make([][]string, h),
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
		c.Fg[i] = make([]string, w)
		c.Bg[i] = make([]string, w)
	}
	c.Clear()
	return c
}

// SubWidth and SubHeight give the canvas size in sub-pixels.
func (c *Canvas) SubWidth() int  { return c.Width * 2 }
func (c *Canvas) SubHeight() int { return c.Height * 4 }

func (c *Canvas) cell(x, y int) (row, col int, ok bool) {
	if x < 0 || y < 0 {
		return 0, 0, false
	}
	col, row = x/2, y/4
	if col >= c.Width || row >= c.Height {
		return 0, 0, false
	}
	return row, col, true
}

// Set lights the sub-pixel (x, y), keeping the cell's color.
func (c *Canvas) Set(x, y int) {
	row, col, ok := c.cell(x, y)
	if !ok {
		return
	}
	c.Grid[row][col] |= rune(pixelMap[y%4][x%2])
}

func (c *Canvas) SetColor(x, y int, color orbit.Color) {
	row, col, ok := c.cell(x, y)
	if !ok {
		return
	}
	c.Grid[row][col] |= rune(pixelMap[y%4][x%2])
	c.Fg[row][col] = color.Hex()
}

// Clear empties the grid and foreground colors. Backgrounds are kept.
func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = blank
			c.Fg[i][j] = ""
		}
	}
}

// Paint sets every cell background from fn(col, row).
func (c *Canvas) Paint(fn func(col, row int) orbit.Color) {
	for i := range c.Bg {
		for j := range c.Bg[i] {
			c.Bg[i][j] = fn(j, i).Hex()
		}
	}
}

// Circle plots a ring of radius r sub-pixels.
func (c *Canvas) Circle(cx, cy int, r float64, color orbit.Color) {
	steps := int(2*math.Pi*r) + 8
	for i := 0; i < steps; i++ {
		a := 2 * math.Pi * float64(i) / float64(steps)
		c.SetColor(cx+int(math.Round(math.Cos(a)*r)), cy+int(math.Round(math.Sin(a)*r)), color)
	}
}

// Disc fills a circle of radius r sub-pixels.
func (c *Canvas) Disc(cx, cy int, r float64, color orbit.Color) {
	ri := int(math.Ceil(r))
	for dy := -ri; dy <= ri; dy++ {
		for dx := -ri; dx <= ri; dx++ {
			if float64(dx*dx+dy*dy) <= r*r {
				c.SetColor(cx+dx, cy+dy, color)
			}
		}
	}
}

func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.Grid {
		b.WriteString(string(row) + "\n")
	}
	return b.String()
}

// Render returns the grid with colors applied, styling runs of equally
// colored cells together.
func (c *Canvas) Render() string {
	styles := make(map[[2]string]lipgloss.Style)
	style := func(fg, bg string) lipgloss.Style {
		key := [2]string{fg, bg}
		if s, ok := styles[key]; ok {
			return s
		}
		s := lipgloss.NewStyle()
		if fg != "" {
			s = s.Foreground(lipgloss.Color(fg))
		}
		if bg != "" {
			s = s.Background(lipgloss.Color(bg))
		}
		styles[key] = s
		return s
	}

	var b strings.Builder
	for i, row := range c.Grid {
		start := 0
		for j := 1; j <= len(row); j++ {
			if j < len(row) && c.Fg[i][j] == c.Fg[i][start] && c.Bg[i][j] == c.Bg[i][start] {
				continue
			}
			b.WriteString(style(c.Fg[i][start], c.Bg[i][start]).Render(string(row[start:j])))
			start = j
		}
		b.WriteString("\n")
	}
	return b.String()
}
