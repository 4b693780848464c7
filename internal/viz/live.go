package viz

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/finnegancarroll/graphdrift/internal/frame"
	"github.com/guptarohit/asciigraph"
)

const (
	defaultWidth    = 60
	defaultHeight   = 20
	panelWidth      = 34
	fpsHistoryLimit = 120
	tickInterval    = time.Second / 60
)

var (
	canvasStyle = lipgloss.NewStyle().Padding(1, 2)
	statsStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(1, 2).Width(panelWidth)
	headerStyle = lipgloss.NewStyle().Bold(true).MarginBottom(1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(12)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

type TickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg { return TickMsg(t) })
}

// Model steps a frame loop on every tick and draws it on a braille canvas.
type Model struct {
	loop        *frame.Loop
	canvas      *Canvas
	fpsHistory  []float64
	reflections int
	running     bool
	theme       int
	maxFrames   int
	policy      string
	err         error
}

// NewModel draws loop into a canvas sized for a typical terminal. Unknown
// theme names fall back to the minimal theme.
func NewModel(loop *frame.Loop, policy, theme string, maxFrames int) Model {
	canvas := NewCanvas(defaultWidth, defaultHeight)
	loop.SetRenderer(frame.RendererFunc(func(segments []float32) error {
		canvas.DrawSegments(segments)
		return nil
	}))
	return Model{
		loop:       loop,
		canvas:     canvas,
		fpsHistory: make([]float64, 0, fpsHistoryLimit),
		running:    true,
		theme:      themeIndex(theme),
		maxFrames:  maxFrames,
		policy:     policy,
	}
}

func (m Model) Init() tea.Cmd {
	return tick()
}

func (m Model) Err() error { return m.err }

// Update handles input, resizes and frame ticks.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case " ":
			m.running = !m.running
			if m.running {
				m.loop.ResetRate()
			}
		case "t":
			m.theme = (m.theme + 1) % len(Themes)
		}
	case tea.WindowSizeMsg:
		w := msg.Width - panelWidth - 6
		h := msg.Height - 4
		m.canvas.Resize(w, h)
	case TickMsg:
		if !m.running {
			return m, tick()
		}
		if err := m.loop.Tick(); err != nil {
			m.err = err
			return m, tea.Quit
		}
		last := m.loop.Last()
		m.reflections += last.Reflections
		m.fpsHistory = append(m.fpsHistory, last.FPS)
		if len(m.fpsHistory) > fpsHistoryLimit {
			m.fpsHistory = m.fpsHistory[1:]
		}
		if m.maxFrames > 0 && m.loop.Frame() >= m.maxFrames {
			return m, tea.Quit
		}
		return m, tick()
	}
	return m, nil
}

func (m Model) View() string {
	theme := Themes[m.theme]
	canvasView := canvasStyle.Foreground(theme.Line).Render(m.canvas.String())

	status := "RUNNING"
	if !m.running {
		status = "PAUSED"
	}

	var s strings.Builder
	s.WriteString(headerStyle.Foreground(theme.Accent).Render("GRAPHDRIFT") + "\n")
	s.WriteString(status + "\n\n")
	if len(m.fpsHistory) > 1 {
		chart := asciigraph.Plot(m.fpsHistory, asciigraph.Height(4), asciigraph.Width(panelWidth-12), asciigraph.Caption("fps"))
		s.WriteString(lipgloss.NewStyle().Foreground(theme.Accent).Render(chart) + "\n\n")
	}
	s.WriteString(labelStyle.Render("Frame") + valueStyle.Render(fmt.Sprintf("%d", m.loop.Frame())) + "\n")
	s.WriteString(labelStyle.Render("FPS") + valueStyle.Render(fmt.Sprintf("%.1f", m.loop.FPS())) + "\n")
	s.WriteString(labelStyle.Render("Vertices") + valueStyle.Render(fmt.Sprintf("%d", m.loop.Scene().Len())) + "\n")
	s.WriteString(labelStyle.Render("Edges") + valueStyle.Render(fmt.Sprintf("%d", len(m.loop.Scene().Edges))) + "\n")
	s.WriteString(labelStyle.Render("Bounces") + valueStyle.Render(fmt.Sprintf("%d", m.reflections)) + "\n")
	s.WriteString(labelStyle.Render("Policy") + valueStyle.Render(m.policy) + "\n")
	s.WriteString(labelStyle.Render("Theme") + valueStyle.Render(theme.Name) + "\n")
	s.WriteString(helpStyle.Foreground(theme.Muted).Render("SP:Pause T:Theme Q:Quit"))

	return lipgloss.JoinHorizontal(lipgloss.Top, canvasView, statsStyle.Render(s.String()))
}

// Run blocks until the user quits, ctx is done or the frame budget is spent.
func Run(ctx context.Context, loop *frame.Loop, policy, theme string, maxFrames int) error {
	p := tea.NewProgram(NewModel(loop, policy, theme, maxFrames), tea.WithAltScreen(), tea.WithContext(ctx))
	final, err := p.Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return err
	}
	if m, ok := final.(Model); ok {
		return m.Err()
	}
	return nil
}
