package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/gbfsviz/internal/grid"
)

const (
	DefaultStepDelay   = 0.4
	DefaultSearchDelay = 0.1
	DefaultTheme       = "classic"
	DefaultCellSize    = 60
	DefaultPreset      = "classic"
)

var (
	ErrNoStart      = errors.New("config: no start cell given and no S marker in maze")
	ErrNoGoal       = errors.New("config: no goal cell given and no G marker in maze")
	ErrOutOfBounds  = errors.New("config: cell outside maze")
	ErrInvalidDelay = errors.New("config: delays must be positive")
	ErrInvalidField = errors.New("config: invalid field")
	ErrUnknownTheme = errors.New("config: unknown theme")
)

var validate = validator.New()

type Config struct {
	Name        string    `yaml:"name"`
	Maze        []string  `yaml:"maze" validate:"min=1"`
	Start       *Position `yaml:"start,omitempty"`
	Goal        *Position `yaml:"goal,omitempty"`
	StepDelay   float64   `yaml:"step_delay" validate:"gt=0"`
	SearchDelay float64   `yaml:"search_delay" validate:"gt=0"`
	ShowSearch  bool      `yaml:"show_search"`
	Theme       string    `yaml:"theme" validate:"required,oneof=classic cyberpunk retro ocean minimal"`
	CellSize    int       `yaml:"cell_size" validate:"gt=0,lte=1000"`
}

type Position struct {
	Row int `yaml:"row" validate:"gte=0"`
	Col int `yaml:"col" validate:"gte=0"`
}

func (p Position) Cell() grid.Cell { return grid.Cell{Row: p.Row, Col: p.Col} }

// DefaultConfig returns the classic maze with the default animation settings.
func DefaultConfig() *Config {
	return GetPreset(DefaultPreset)
}

// Load reads a YAML file over DefaultConfig, so omitted keys keep their
// defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

func Parse(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	// A maze in the document replaces the default one wholesale, along with
	// its endpoints.
	var probe struct {
		Maze []string `yaml:"maze"`
	}
	if err := yaml.Unmarshal(data, &probe); err != nil {
		return nil, err
	}
	if len(probe.Maze) > 0 {
		cfg.Name, cfg.Maze, cfg.Start, cfg.Goal = "", nil, nil, nil
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Marshal(cfg *Config) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// Grid parses the maze rows.
func (c *Config) Grid() (*grid.Grid, error) {
	g, err := grid.Parse(c.Maze)
	if err != nil {
		return nil, fmt.Errorf("maze %q: %w", c.Name, err)
	}
	return g, nil
}

// Endpoints returns the explicit start and goal, falling back to the S and
// G markers of g when a position is omitted.
func (c *Config) Endpoints(g *grid.Grid) (start, goal grid.Cell, err error) {
	if c.Start != nil {
		start = c.Start.Cell()
	} else if cell, ok := g.Find(grid.Start); ok {
		start = cell
	} else {
		return start, goal, ErrNoStart
	}

	if c.Goal != nil {
		goal = c.Goal.Cell()
	} else if cell, ok := g.Find(grid.Goal); ok {
		goal = cell
	} else {
		return start, goal, ErrNoGoal
	}

	if !g.InBounds(start) {
		return start, goal, fmt.Errorf("%w: start %v", ErrOutOfBounds, start)
	}
	if !g.InBounds(goal) {
		return start, goal, fmt.Errorf("%w: goal %v", ErrOutOfBounds, goal)
	}
	return start, goal, nil
}

// Validate checks that the config describes a searchable maze.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return err
		}
		fe := fieldErrs[0]
		switch fe.Field() {
		case "StepDelay", "SearchDelay":
			return fmt.Errorf("%w: %s=%v", ErrInvalidDelay, fe.Field(), fe.Value())
		case "Theme":
			if fe.Tag() == "oneof" {
				return fmt.Errorf("%w: %q (available: %s)", ErrUnknownTheme, c.Theme, fe.Param())
			}
		case "Row", "Col":
			return fmt.Errorf("%w: %s", ErrOutOfBounds, fe.Namespace())
		}
		return fmt.Errorf("%w: %s failed %q", ErrInvalidField, fe.Namespace(), fe.Tag())
	}
	g, err := c.Grid()
	if err != nil {
		return err
	}
	_, _, err = c.Endpoints(g)
	return err
}

// Clone returns a deep copy so presets are never mutated by callers.
func (c *Config) Clone() *Config {
	cp := *c
	cp.Maze = append([]string(nil), c.Maze...)
	if c.Start != nil {
		s := *c.Start
		cp.Start = &s
	}
	if c.Goal != nil {
		g := *c.Goal
		cp.Goal = &g
	}
	return &cp
}
