package config

import "sort"

func preset(name string, start, goal *Position, maze ...string) *Config {
	return &Config{
		Name:        name,
		Maze:        maze,
		Start:       start,
		Goal:        goal,
		StepDelay:   DefaultStepDelay,
		SearchDelay: DefaultSearchDelay,
		Theme:       DefaultTheme,
		CellSize:    DefaultCellSize,
	}
}

var Presets = map[string]*Config{
	"classic": preset("classic", &Position{0, 0}, &Position{4, 6},
		"S . . # . . .",
		"# # . # . # .",
		". . . . . # .",
		". # # # . . .",
		". . . # . # G",
	),
	"corridor": preset("corridor", &Position{0, 0}, &Position{2, 1},
		"S .",
		"# .",
		". G",
	),
	"sealed": preset("sealed", nil, nil,
		"S . . . .",
		". . . # .",
		". . # G #",
		". . . # .",
		". . . . .",
	),
	"open": preset("open", nil, nil,
		"S . . . .",
		". . . . .",
		". . . . .",
		". . . . .",
		". . . . G",
	),
	// Greedy expansion is drawn into the upper pocket; the route is 13
	// cells where 9 would do.
	"detour": preset("detour", nil, nil,
		"# # . . . . .",
		"# # . . . # .",
		"S # . . # . G",
		". . . . . . .",
		". . . . . # .",
	),
	// Start sits on a wall; the search still expands from it.
	"wallstart": preset("wallstart", &Position{0, 0}, nil,
		"# . . .",
		". . # .",
		". . . G",
	),
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg.Clone()
}

// ListPresets returns the preset names in sorted order.
func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
