package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/solarsim/internal/config"
	"github.com/san-kum/solarsim/internal/metrics"
	"github.com/san-kum/solarsim/internal/solar"
)

const historyCapacity = 600

type TickMsg time.Time

// Model holds the live view's simulation and UI state.
type Model struct {
	cfg           *config.Config
	sys           *solar.System
	tick          int
	stepsPerFrame int
	fps           int
	running       bool
	err           error
	selected      int
	histories     [][]float64
	drift         *metrics.EnergyDrift
}

// NewModel wraps an already-built system for interactive viewing.
// stepsPerFrame batches integration ticks per frame so the orbit is
// visible at terminal frame rates.
func NewModel(cfg *config.Config, sys *solar.System, stepsPerFrame, fps int) Model {
	if stepsPerFrame < 1 {
		stepsPerFrame = 1
	}
	if fps < 1 || fps > 120 {
		fps = 30
	}
	drift := metrics.NewEnergyDrift()
	drift.Observe(sys.Energy())

	return Model{
		cfg:           cfg,
		sys:           sys,
		stepsPerFrame: stepsPerFrame,
		fps:           fps,
		running:       true,
		histories:     make([][]float64, sys.Len()),
		drift:         drift,
	}
}

func (m Model) tickCmd() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd { return m.tickCmd() }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			if m.err == nil && !m.finished() {
				m.running = !m.running
			}
		case "r":
			m.reset()
		case "tab":
			m.cycleSelected()
		}
	case TickMsg:
		if m.running {
			m.step()
		}
		return m, m.tickCmd()
	}
	return m, nil
}

func (m Model) finished() bool { return m.tick >= m.cfg.Iterations }

// step advances the system by up to stepsPerFrame ticks. An advance
// failure freezes the view with the error on display.
func (m *Model) step() {
	for i := 0; i < m.stepsPerFrame; i++ {
		if m.finished() {
			m.running = false
			break
		}
		if err := m.sys.Advance(); err != nil {
			m.err = err
			m.running = false
			break
		}
		m.tick++
	}
	m.drift.Observe(m.sys.Energy())
	m.record()
}

func (m *Model) record() {
	primary := m.sys.PrimaryBody()
	for i, o := range m.sys.OrbitingBodies() {
		m.histories[i] = append(m.histories[i], o.DistanceFromBody(primary))
		if len(m.histories[i]) > historyCapacity {
			m.histories[i] = m.histories[i][1:]
		}
	}
}

func (m *Model) reset() {
	sys, err := m.cfg.BuildSystem()
	if err != nil {
		m.err = err
		m.running = false
		return
	}
	m.sys = sys
	m.tick = 0
	m.err = nil
	m.running = true
	m.selected = 0
	m.histories = make([][]float64, sys.Len())
	m.drift.Reset()
	m.drift.Observe(sys.Energy())
}

func (m *Model) cycleSelected() {
	if m.sys.Len() == 0 {
		return
	}
	m.selected = (m.selected + 1) % m.sys.Len()
}

func (m Model) statusLine() string {
	switch {
	case m.err != nil:
		return statusError.Render("ERROR ") + m.err.Error()
	case m.finished():
		return statusPaused.Render("FINISHED")
	case m.running:
		return statusRunning.Render("RUNNING")
	default:
		return statusPaused.Render("PAUSED")
	}
}

// View renders the live dashboard: status, per-planet table, and a
// distance chart for the selected planet.
func (m Model) View() string {
	var s strings.Builder
	s.WriteString(headerStyle.Render(strings.ToUpper(m.cfg.Name)) + "\n")
	s.WriteString(m.statusLine() + "\n\n")

	s.WriteString(labelStyle.Render("Tick") + valueStyle.Render(fmt.Sprintf("%d / %d", m.tick, m.cfg.Iterations)) + "\n")
	s.WriteString(labelStyle.Render("Energy") + valueStyle.Render(fmt.Sprintf("%.4f", m.sys.Energy())) + "\n")
	s.WriteString(labelStyle.Render("Drift") + valueStyle.Render(fmt.Sprintf("%.3e", m.drift.Value())) + "\n\n")

	primary := m.sys.PrimaryBody()
	bodies := m.sys.OrbitingBodies()
	for i, o := range bodies {
		pos := o.Position()
		line := fmt.Sprintf("%-10s x=%9.2f  y=%9.2f  d=%9.2f  v=%7.2f",
			o.Name(), pos.X, pos.Y, o.DistanceFromBody(primary), o.Velocity().Len())
		if i == m.selected {
			s.WriteString(activeStyle.Render("> "+line) + "\n")
		} else {
			s.WriteString("  " + labelStyle.Render(line) + "\n")
		}
	}

	if m.selected < len(m.histories) && len(m.histories[m.selected]) > 1 {
		chart := asciigraph.Plot(m.histories[m.selected],
			asciigraph.Height(6), asciigraph.Width(50),
			asciigraph.Caption(bodies[m.selected].Name()+" distance"))
		s.WriteString("\n" + graphStyle.Render(chart) + "\n")
	}

	s.WriteString(helpStyle.Render("\nSP:Pause R:Reset TAB:Planet Q:Quit"))
	return s.String()
}
