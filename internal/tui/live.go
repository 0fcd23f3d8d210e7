// Package tui provides a live terminal view of a discrete orbit as it is
// generated.
package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/phaseline/internal/dynamo"
)

const (
	graphWidth  = 80
	graphHeight = 16
	windowSize  = 120
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(10)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

type TickMsg time.Time

// Model steps a discrete map at a fixed tick and plots a scrolling window of
// the orbit.
type Model struct {
	f       dynamo.Map
	mapName string
	x0      float64
	x       float64
	step    int
	window  []float64
	running bool
	fps     int
}

func NewModel(f dynamo.Map, mapName string, x0 float64, fps int) Model {
	if fps < 1 {
		fps = 30
	}
	return Model{
		f:       f,
		mapName: mapName,
		x0:      x0,
		x:       x0,
		window:  append(make([]float64, 0, windowSize), x0),
		running: true,
		fps:     fps,
	}
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
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			m.x = m.x0
			m.step = 0
			m.window = append(m.window[:0], m.x0)
		}
	case TickMsg:
		if m.running {
			m.x = m.f(m.x)
			m.step++
			m.window = append(m.window, m.x)
			if len(m.window) > windowSize {
				m.window = m.window[1:]
			}
		}
		return m, m.tick()
	}
	return m, nil
}

func (m Model) View() string {
	graph := asciigraph.Plot(m.window,
		asciigraph.Height(graphHeight),
		asciigraph.Width(graphWidth),
	)

	status := "running"
	if !m.running {
		status = "paused"
	}

	view := headerStyle.Render(fmt.Sprintf("phaseline live: %s", m.mapName)) + "\n"
	view += graphStyle.Render(graph) + "\n"
	view += labelStyle.Render("step") + valueStyle.Render(fmt.Sprintf("%d", m.step)) + "\n"
	view += labelStyle.Render("x") + valueStyle.Render(fmt.Sprintf("%.8f", m.x)) + "\n"
	view += labelStyle.Render("status") + valueStyle.Render(status) + "\n"
	view += helpStyle.Render("space pause · r reset · q quit")
	return view
}

// Run starts the live viewer and blocks until quit.
func Run(f dynamo.Map, mapName string, x0 float64, fps int) error {
	p := tea.NewProgram(NewModel(f, mapName, x0, fps))
	_, err := p.Run()
	return err
}
