package viz

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/gbfsviz/internal/config"
	"github.com/san-kum/gbfsviz/internal/ctxlog"
)

var presetInfo = map[string]string{
	"classic":   "the 5x7 demo maze",
	"corridor":  "one wall, one way down",
	"sealed":    "goal boxed in by walls",
	"open":      "no walls, ties everywhere",
	"detour":    "greedy takes the long way",
	"wallstart": "start cell is a wall",
}

const (
	stateMenu = iota
	stateSim
)

// App is the preset picker wrapping a Model. The zero value is not usable;
// call NewApp.
type App struct {
	ctx     context.Context
	state   int
	cursor  int
	presets []string
	base    *config.Config
	live    Model
	err     error
}

// NewApp lists the built-in presets. base supplies delays, theme and
// search display for every preset launched from the menu.
func NewApp(ctx context.Context, base *config.Config) App {
	return App{
		ctx:     ctx,
		state:   stateMenu,
		presets: config.ListPresets(),
		base:    base,
	}
}

func (a App) Init() tea.Cmd { return nil }

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if a.state == stateSim {
		if k, ok := msg.(tea.KeyMsg); ok && k.String() == "m" {
			a.state = stateMenu
			return a, nil
		}
		next, cmd := a.live.Update(msg)
		a.live = next.(Model)
		return a, cmd
	}

	k, ok := msg.(tea.KeyMsg)
	if !ok {
		return a, nil
	}
	switch k.String() {
	case "q", "ctrl+c", "esc":
		return a, tea.Quit
	case "up", "k":
		if a.cursor > 0 {
			a.cursor--
		}
	case "down", "j":
		if a.cursor < len(a.presets)-1 {
			a.cursor++
		}
	case "enter", " ":
		return a.launch(a.presets[a.cursor])
	}
	return a, nil
}

func (a App) launch(name string) (App, tea.Cmd) {
	cfg := config.GetPreset(name)
	cfg.StepDelay, cfg.SearchDelay = a.base.StepDelay, a.base.SearchDelay
	cfg.ShowSearch, cfg.Theme = a.base.ShowSearch, a.base.Theme

	m, err := ModelFromConfig(a.ctx, cfg)
	if err != nil {
		a.err = err
		ctxlog.FromContext(a.ctx).Error("cannot launch preset", "preset", name, "error", err)
		return a, nil
	}
	a.err = nil
	a.live = m
	a.state = stateSim
	return a, m.Init()
}

func (a App) View() string {
	if a.state == stateSim {
		return a.live.View() + "\n" + lipgloss.NewStyle().Foreground(ThemeClassic.Muted).Render("M:Menu")
	}

	th := GetTheme(a.base.Theme)
	st := newStyles(th)
	var b strings.Builder
	b.WriteString(st.title.Render(GradientText("PAC-MAN PATHFINDING USING GBFS", th.Primary, th.Goal)) + "\n")
	for i, name := range a.presets {
		line := fmt.Sprintf("%-10s %s", name, presetInfo[name])
		if i == a.cursor {
			b.WriteString(st.running.Render("> "+line) + "\n")
		} else {
			b.WriteString("  " + st.label.UnsetWidth().Render(line) + "\n")
		}
	}
	if a.err != nil {
		b.WriteString("\n" + st.failure.Render(a.err.Error()) + "\n")
	}
	b.WriteString(st.keyHint.Render("↑↓:Select Enter:Start Q:Quit"))
	return b.String()
}

// ModelFromConfig builds a Model for the maze, endpoints and timings in cfg.
func ModelFromConfig(ctx context.Context, cfg *config.Config) (Model, error) {
	if err := cfg.Validate(); err != nil {
		return Model{}, err
	}
	g, err := cfg.Grid()
	if err != nil {
		return Model{}, err
	}
	start, goal, err := cfg.Endpoints(g)
	if err != nil {
		return Model{}, err
	}
	return NewModel(ctx, g, start, goal, Options{
		Title:       cfg.Name,
		StepDelay:   seconds(cfg.StepDelay),
		SearchDelay: seconds(cfg.SearchDelay),
		ShowSearch:  cfg.ShowSearch,
		Theme:       cfg.Theme,
	}), nil
}

func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}

// RunApp starts the preset picker and blocks until it exits.
func RunApp(ctx context.Context, base *config.Config) error {
	_, err := tea.NewProgram(NewApp(ctx, base), tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	return err
}
