package viz

import (
	"fmt"
	"io"
	"log"
	"math"
	"math/rand"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/orbitrace/internal/orbit"
	"github.com/san-kum/orbitrace/internal/race"
)

const (
	width           = 60
	height          = 30
	historyCapacity = 600
	numStars        = 120
	sunRadius       = 4.0
	margin          = 6.0
)

type TickMsg time.Time

type star struct{ x, y int }

// Model renders a race and feeds it frame ticks and keyboard commands.
type Model struct {
	race     *race.Race
	fps      int
	canvas   *Canvas
	stars    []star
	theme    Theme
	spread   []float64
	lastErr  error
	showHelp bool
}

func NewModel(r *race.Race, fps int) Model {
	if fps <= 0 {
		fps = 60
	}
	m := Model{
		race:   r,
		fps:    fps,
		canvas: NewCanvas(width, height),
		theme:  ThemeSpace,
		spread: make([]float64, 0, historyCapacity),
	}

	// Star positions only decorate, so a fixed seed keeps frames stable.
	rng := rand.New(rand.NewSource(1))
	m.stars = make([]star, numStars)
	for i := range m.stars {
		m.stars[i] = star{x: rng.Intn(m.canvas.SubWidth()), y: rng.Intn(m.canvas.SubHeight())}
	}
	m.paintSky()
	return m
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

// Update handles input events and steps the race.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case TickMsg:
		if m.race.Tick() {
			m.spread = append(m.spread, m.race.Snapshot().Spread())
			if len(m.spread) > historyCapacity {
				m.spread = m.spread[1:]
			}
		}
		return m, m.tick()
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	key := msg.String()
	switch key {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "enter":
		if m.race.Phase() == race.Finished {
			m.reset()
		} else if m.race.Start() {
			log.Printf("race started")
		}
	case "r":
		m.reset()
	case "t":
		m.theme = NextTheme(m.theme)
		m.paintSky()
	case "?":
		m.showHelp = !m.showHelp
	default:
		if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
			i := int(key[0] - '1')
			m.lastErr = m.race.BoostDefault(i)
			if m.lastErr != nil {
				log.Printf("boost: %v", m.lastErr)
			}
		}
	}
	return m, nil
}

func (m *Model) reset() {
	if m.race.Reset() {
		log.Printf("race reset")
	}
	m.spread = m.spread[:0]
	m.lastErr = nil
}

// paintSky fills the canvas background with a radial gradient, brightest at
// the center.
func (m *Model) paintSky() {
	cx, cy := float64(width)/2, float64(height)/2
	maxR := math.Hypot(cx, cy*2)
	m.canvas.Paint(func(col, row int) orbit.Color {
		// Cells are about twice as tall as wide.
		d := math.Hypot(float64(col)-cx, (float64(row)-cy)*2) / maxR
		return m.theme.SkyInner.Blend(m.theme.SkyOuter, orbit.Clamp(d, 0, 1))
	})
}

// scale maps orbital distance to sub-pixels so the widest ring fits.
func (m *Model) scale(s race.Snapshot) float64 {
	maxDist := 0.0
	for _, b := range s.Bodies {
		maxDist = math.Max(maxDist, b.Distance+b.Size/2)
	}
	if maxDist == 0 {
		return 1
	}
	room := math.Min(float64(m.canvas.SubWidth()), float64(m.canvas.SubHeight()))/2 - margin
	return room / maxDist
}

func (m *Model) draw(s race.Snapshot) {
	m.canvas.Clear()
	for _, st := range m.stars {
		m.canvas.SetColor(st.x, st.y, m.theme.Star)
	}

	cx, cy := m.canvas.SubWidth()/2, m.canvas.SubHeight()/2
	scale := m.scale(s)
	for _, b := range s.Bodies {
		m.canvas.Circle(cx, cy, b.Distance*scale, m.theme.Ring)
	}
	m.canvas.Disc(cx, cy, sunRadius, orbit.Sun)
	for _, b := range s.Bodies {
		x, y := b.Position(float64(cx), float64(cy), scale)
		m.canvas.Disc(int(math.Round(x)), int(math.Round(y)), math.Max(1, b.Size/2*scale), b.Color)
	}
}

// View renders the sky on the left and the standings on the right.
func (m Model) View() string {
	s := m.race.Snapshot()
	p := m.race.Params()
	m.draw(s)
	canvasView := canvasStyle.Render(m.canvas.Render())

	var b strings.Builder
	b.WriteString(GradientText("ORBIT RACE", m.theme.SkyInner.Blend(orbit.White, 0.5), orbit.Sun) + "\n\n")
	b.WriteString(labelStyle.Render("Phase") + m.phaseLabel(s.Phase) + "\n")
	b.WriteString(labelStyle.Render("Tick") + valueStyle.Render(fmt.Sprintf("%d", s.Tick)) + "\n")
	b.WriteString(labelStyle.Render("Laps") + valueStyle.Render(fmt.Sprintf("%d to win", p.LapsToWin)) + "\n\n")

	for i, body := range s.Bodies {
		leader := ""
		if body.Leader {
			leader = " (leader)"
		}
		line := fmt.Sprintf("Planet %d: %d orbits%s", i+1, body.Orbits, leader)
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(body.Color.Hex())).Render(line) + "\n")
		b.WriteString("  " + valueStyle.Render(fmt.Sprintf("%s %.4f", SpeedBar(body.Speed, p.MinSpeed, p.MaxSpeed, 12), body.Speed)) + "\n")
	}

	if len(m.spread) > 1 {
		chart := asciigraph.Plot(m.spread, asciigraph.Height(4), asciigraph.Width(30), asciigraph.Caption("spread (rad)"))
		b.WriteString(graphStyle.Render(chart) + "\n")
	}

	if s.Phase == race.Finished {
		banner := fmt.Sprintf("Planet %d Wins!\nPress ENTER to restart", s.Winner+1)
		b.WriteString("\n" + bannerStyle.BorderForeground(lipgloss.Color(s.Bodies[s.Winner].Color.Hex())).Render(banner) + "\n")
	} else if s.Phase == race.Idle {
		b.WriteString("\n" + lipgloss.NewStyle().Foreground(m.theme.Secondary).Render("Press ENTER to start") + "\n")
	}
	if m.lastErr != nil {
		b.WriteString(lipgloss.NewStyle().Foreground(m.theme.Warning).Render(m.lastErr.Error()) + "\n")
	}

	b.WriteString(helpStyle.Render(Separator(30, m.theme.Muted) + "\nENTER:Start/Restart R:Reset\n1-9:Boost T:Theme ?:Help Q:Quit"))
	panelView := panelStyle.Render(b.String())
	mainView := lipgloss.JoinHorizontal(lipgloss.Top, canvasView, panelView)
	if m.showHelp {
		return `
╔══════════════════════════════════════╗
║           KEYBOARD SHORTCUTS         ║
╠══════════════════════════════════════╣
║  Enter    - Start / restart the race ║
║  R        - Reset to the start line  ║
║  1-9      - Boost a planet           ║
║  T        - Cycle themes             ║
║  ?        - Toggle this help         ║
║  Q        - Quit                     ║
╚══════════════════════════════════════╝
` + "\n\n" + mainView
	}
	return mainView
}

func (m Model) phaseLabel(p race.Phase) string {
	style := lipgloss.NewStyle().Bold(true)
	switch p {
	case race.Running:
		style = style.Foreground(m.theme.Success)
	case race.Finished:
		style = style.Foreground(m.theme.Primary)
	default:
		style = style.Foreground(m.theme.Muted)
	}
	return style.Render(strings.ToUpper(p.String()))
}

// finishLogger writes the result of every race to the debug log.
type finishLogger struct{}

func (finishLogger) OnTick(race.Snapshot) {}

func (finishLogger) OnFinish(s race.Snapshot) {
	log.Printf("planet %d wins after %d ticks", s.Winner+1, s.Tick)
}

// Run starts the interactive race. With a non-empty logPath, debug output
// goes to that file; otherwise it is discarded because the terminal belongs
// to the program.
func Run(r *race.Race, fps int, logPath string) error {
	if logPath != "" {
		f, err := tea.LogToFile(logPath, "orbitrace")
		if err != nil {
			return fmt.Errorf("open log: %w", err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	r.AddObserver(finishLogger{})
	_, err := tea.NewProgram(NewModel(r, fps), tea.WithAltScreen()).Run()
	return err
}
