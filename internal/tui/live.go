// Package tui provides the live flight view: a precomputed trajectory
// replayed in the terminal at a fixed frame rate.
package tui

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/spudsim/internal/ballistics"
)

const (
	graphWidth  = 70
	graphHeight = 12
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(14)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	doneStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("82")).Bold(true)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

type TickMsg time.Time

// Model replays a flight path. The simulation itself runs before the
// program starts; the view only steps a playhead.
type Model struct {
	flight   *ballistics.Flight
	angle    float64
	playHead int
	stride   int // path samples advanced per frame
	paused   bool
	done     bool
	fps      int
}

// NewModel builds a replay over a flight recorded with RecordPath.
func NewModel(flight *ballistics.Flight, angle float64, fps int) Model {
	if fps <= 0 {
		fps = 30
	}
	// Replay in roughly real time: dt=0.01 means 100 samples per second.
	stride := 100 / fps
	if stride < 1 {
		stride = 1
	}
	return Model{flight: flight, angle: angle, stride: stride, fps: fps}
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case " ":
			m.paused = !m.paused
		case "r":
			m.playHead = 0
			m.done = false
		}
	case TickMsg:
		if !m.paused && !m.done {
			m.playHead += m.stride
			if m.playHead >= len(m.flight.Path)-1 {
				m.playHead = len(m.flight.Path) - 1
				m.done = true
			}
		}
		return m, m.tick()
	}
	return m, nil
}

func (m Model) View() string {
	if len(m.flight.Path) == 0 {
		return "no path recorded\n"
	}

	s := m.flight.Path[m.playHead]

	altitudes := make([]float64, m.playHead+1)
	for i := 0; i <= m.playHead; i++ {
		altitudes[i] = m.flight.Path[i].Z
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("flight — %.0f° launch", m.angle)))
	b.WriteString("\n")

	graph := asciigraph.Plot(altitudes,
		asciigraph.Height(graphHeight),
		asciigraph.Width(graphWidth),
		asciigraph.Caption("altitude (m)"),
	)
	b.WriteString(graphStyle.Render(graph))
	b.WriteString("\n\n")

	row := func(label, value string) {
		b.WriteString(labelStyle.Render(label))
		b.WriteString(valueStyle.Render(value))
		b.WriteString("\n")
	}
	row("time", fmt.Sprintf("%.2f s", s.T))
	row("altitude", fmt.Sprintf("%.1f m", s.Z))
	row("downrange", fmt.Sprintf("%.1f m", planarDistance(s)))
	row("speed", fmt.Sprintf("%.1f m/s", s.Speed()))

	if m.done {
		b.WriteString("\n")
		b.WriteString(doneStyle.Render(fmt.Sprintf(
			"impact: range %.1f m, time %.2f s, speed %.2f m/s, drift %.2f m",
			m.flight.Range, m.flight.Time, m.flight.ImpactSpeed, m.flight.Drift)))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("space pause · r restart · q quit"))
	b.WriteString("\n")
	return b.String()
}

func planarDistance(s ballistics.State) float64 {
	return math.Hypot(s.X, s.Y)
}

// Run starts the replay program.
func Run(flight *ballistics.Flight, angle float64, fps int) error {
	p := tea.NewProgram(NewModel(flight, angle, fps))
	_, err := p.Run()
	return err
}
