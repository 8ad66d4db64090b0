package viz

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/gbfsviz/internal/ctxlog"
	"github.com/san-kum/gbfsviz/internal/grid"
	"github.com/san-kum/gbfsviz/internal/search"
)

const (
	MsgGoalReached = "Goal Reached!"
	MsgNoPath      = "No Path Found!"

	minSpeed = 0.25
	maxSpeed = 8.0
)

type phase int

const (
	phaseSearch phase = iota
	phaseMove
	phaseDone
)

func (p phase) String() string {
	switch p {
	case phaseSearch:
		return "SEARCHING"
	case phaseMove:
		return "MOVING"
	default:
		return "DONE"
	}
}

// TickMsg advances the animation. Ticks scheduled before the last reset, or
// by another Model, carry a different generation and are dropped.
type TickMsg struct {
	Time time.Time
	gen  uint64
}

// tickGen is shared by all models so a relaunched Model never accepts a
// tick left over from the one it replaced.
var tickGen atomic.Uint64

// Options configures a Model.
type Options struct {
	Title       string
	StepDelay   time.Duration
	SearchDelay time.Duration
	// ShowSearch animates the frontier expansion before moving the token.
	ShowSearch bool
	Theme      string
}

// Model animates the agent along a precomputed route. With ShowSearch the
// route is produced one expansion per tick by a search.Stepper instead.
type Model struct {
	grid  *grid.Grid
	start grid.Cell
	goal  grid.Cell
	opts  Options

	stepper  *search.Stepper
	path     []grid.Cell
	visited  []grid.Cell
	frontier []grid.Cell
	steps    int

	phase      phase
	gen        uint64
	pos        int
	heuristics []float64

	theme      Theme
	speed      float64
	running    bool
	showSearch bool
	showHelp   bool
	width      int
	logger     *slog.Logger
}

// NewModel prepares the animation. Without ShowSearch the route is computed
// immediately.
func NewModel(ctx context.Context, g *grid.Grid, start, goal grid.Cell, opts Options) Model {
	if opts.StepDelay <= 0 {
		opts.StepDelay = 400 * time.Millisecond
	}
	if opts.SearchDelay <= 0 {
		opts.SearchDelay = 100 * time.Millisecond
	}
	m := Model{
		grid:       g,
		start:      start,
		goal:       goal,
		opts:       opts,
		theme:      GetTheme(opts.Theme),
		speed:      1.0,
		running:    true,
		showSearch: opts.ShowSearch,
		width:      80,
		logger:     ctxlog.FromContext(ctx),
	}
	m.reset()
	return m
}

// reset restarts the animation from the beginning, keeping display
// preferences.
func (m *Model) reset() {
	m.gen = tickGen.Add(1)
	m.pos = -1
	m.heuristics = m.heuristics[:0]
	m.stepper = nil
	if m.opts.ShowSearch {
		m.stepper = search.NewStepper(m.grid, m.start, m.goal)
		snap := m.stepper.Snapshot()
		m.path, m.visited, m.frontier, m.steps = nil, snap.Visited, snap.Frontier, 0
		m.phase = phaseSearch
		return
	}
	res := search.Run(m.grid, m.start, m.goal)
	m.path, m.visited, m.frontier, m.steps = res.Path, res.Expanded, nil, res.Steps
	m.phase = phaseMove
	m.logger.Debug("route computed", "found", res.Found, "length", len(res.Path), "expanded", len(res.Expanded))
}

func (m Model) delay() time.Duration {
	d := m.opts.StepDelay
	if m.phase == phaseSearch {
		d = m.opts.SearchDelay
	}
	return time.Duration(float64(d) / m.speed)
}

func (m Model) tick() tea.Cmd {
	gen := m.gen
	return tea.Tick(m.delay(), func(t time.Time) tea.Msg { return TickMsg{Time: t, gen: gen} })
}

func (m Model) Init() tea.Cmd { return m.tick() }

// Update handles key presses and advances the animation on each tick.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
	case TickMsg:
		if msg.gen != m.gen {
			return m, nil
		}
		if m.running {
			m.advance()
		}
		if m.phase == phaseDone {
			return m, nil
		}
		return m, m.tick()
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case " ":
		m.running = !m.running
	case "n", "right":
		if !m.running {
			m.advance()
		}
	case "r":
		// reset drops the pending tick, so a fresh chain is always started.
		m.reset()
		return m, m.tick()
	case "s":
		m.showSearch = !m.showSearch
	case "t":
		m.theme = NextTheme(m.theme.Name)
	case "+", "=":
		m.speed = min(m.speed*2, maxSpeed)
	case "-", "_":
		m.speed = max(m.speed/2, minSpeed)
	case "?":
		m.showHelp = !m.showHelp
	}
	return m, nil
}

// advance performs one animation step: a search expansion while searching,
// otherwise one cell of token movement.
func (m *Model) advance() {
	switch m.phase {
	case phaseSearch:
		snap := m.stepper.Step()
		m.visited, m.frontier, m.steps = snap.Visited, snap.Frontier, snap.StepIndex
		if snap.Done {
			m.path = snap.Path
			m.phase = phaseMove
			m.logger.Debug("search finished", "found", snap.Found, "steps", snap.StepIndex, "length", len(snap.Path))
		}
	case phaseMove:
		if len(m.path) == 0 {
			m.phase = phaseDone
			m.logger.Info("no path found", "start", m.start, "goal", m.goal)
			return
		}
		m.pos++
		m.heuristics = append(m.heuristics, float64(search.Manhattan(m.path[m.pos], m.goal)))
		if m.pos == len(m.path)-1 {
			m.phase = phaseDone
			m.logger.Info("goal reached", "length", len(m.path))
		}
	}
}

// Outcome is the end-of-run banner, empty while animating.
func (m Model) Outcome() string {
	if m.phase != phaseDone {
		return ""
	}
	if len(m.path) == 0 {
		return MsgNoPath
	}
	return MsgGoalReached
}

func (m Model) token() *grid.Cell {
	if m.pos < 0 || m.pos >= len(m.path) {
		return nil
	}
	c := m.path[m.pos]
	return &c
}

// View renders the board next to the stats panel.
func (m Model) View() string {
	st := newStyles(m.theme)

	layers := Layers{Token: m.token()}
	if m.pos > 0 {
		layers.Trail = m.path[:m.pos]
	}
	if m.showSearch {
		layers.Visited, layers.Frontier = m.visited, m.frontier
	}
	board := st.board.Render(RenderGrid(m.grid, m.start, m.goal, m.theme, layers))

	var s strings.Builder
	title := m.opts.Title
	if title == "" {
		title = "GBFS PATHFINDING"
	}
	s.WriteString(st.title.Render(GradientText(strings.ToUpper(title), m.theme.Primary, m.theme.Goal)) + "\n")

	status := st.running.Render(m.phase.String())
	if !m.running && m.phase != phaseDone {
		status = st.paused.Render("PAUSED")
	}
	s.WriteString(status + "\n\n")

	row := func(label, value string) {
		s.WriteString(st.label.Render(label) + st.value.Render(value) + "\n")
	}
	row("Start", m.start.String())
	row("Goal", m.goal.String())
	row("Expanded", fmt.Sprintf("%d", len(m.visited)))
	row("Steps", fmt.Sprintf("%d", m.steps))
	if m.phase == phaseSearch {
		row("Frontier", fmt.Sprintf("%d", len(m.frontier)))
	} else {
		row("Route", fmt.Sprintf("%d cells", len(m.path)))
	}
	row("Speed", fmt.Sprintf("%.2fx", m.speed))
	row("Theme", m.theme.Name)

	if len(m.path) > 0 && m.phase != phaseSearch {
		done := float64(m.pos+1) / float64(len(m.path))
		s.WriteString("\n" + st.progress.Render(ProgressBar(done, 24)) + "\n")
	}
	if len(m.heuristics) > 1 {
		chart := asciigraph.Plot(m.heuristics, asciigraph.Height(4), asciigraph.Width(30), asciigraph.Caption("h to goal"))
		s.WriteString("\n" + st.graph.Render(chart) + "\n")
	}

	switch m.Outcome() {
	case MsgGoalReached:
		s.WriteString("\n" + st.success.Render(MsgGoalReached) + "\n")
	case MsgNoPath:
		s.WriteString("\n" + st.failure.Render(MsgNoPath) + "\n")
	}

	s.WriteString(st.keyHint.Render("SP:Pause N:Step R:Reset Q:Quit\nS:Search T:Theme +/-:Speed ?:Help"))
	view := lipgloss.JoinHorizontal(lipgloss.Top, board, st.panel.Render(s.String()))
	if m.showHelp {
		return helpText + "\n\n" + view
	}
	return view
}

const helpText = `
╔══════════════════════════════════════╗
║           KEYBOARD SHORTCUTS         ║
╠══════════════════════════════════════╣
║  Space    - Pause/Resume             ║
║  N / →    - Single step (paused)     ║
║  R        - Restart                  ║
║  S        - Toggle search overlay    ║
║  T        - Cycle themes             ║
║  + / -    - Faster / slower          ║
║  ?        - Toggle this help         ║
║  Q        - Quit                     ║
╚══════════════════════════════════════╝`

// Run starts the interactive program and blocks until it exits or ctx is
// cancelled.
func Run(ctx context.Context, m Model) error {
	_, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	return err
}
