package viz

import "github.com/charmbracelet/lipgloss"

// Theme defines the colour scheme for grid cells and the side panel.
type Theme struct {
	Name     string
	Primary  lipgloss.Color
	Wall     lipgloss.Color
	Free     lipgloss.Color
	Outline  lipgloss.Color
	Start    lipgloss.Color
	Goal     lipgloss.Color
	Token    lipgloss.Color
	Trail    lipgloss.Color
	Visited  lipgloss.Color
	Frontier lipgloss.Color
	Text     lipgloss.Color
	Muted    lipgloss.Color
	Success  lipgloss.Color
	Error    lipgloss.Color
}

// Available themes
var (
	// Grey walls on black, blue start, red goal and a yellow Pac-Man.
	ThemeClassic = Theme{
		Name:     "classic",
		Primary:  lipgloss.Color("#ffff00"),
		Wall:     lipgloss.Color("#808080"),
		Free:     lipgloss.Color("#000000"),
		Outline:  lipgloss.Color("#ffffff"),
		Start:    lipgloss.Color("#0000ff"),
		Goal:     lipgloss.Color("#ff0000"),
		Token:    lipgloss.Color("#ffff00"),
		Trail:    lipgloss.Color("#ffd700"),
		Visited:  lipgloss.Color("#333355"),
		Frontier: lipgloss.Color("#6666aa"),
		Text:     lipgloss.Color("#ffffff"),
		Muted:    lipgloss.Color("#888888"),
		Success:  lipgloss.Color("#00ff00"),
		Error:    lipgloss.Color("#ff0000"),
	}

	ThemeCyberpunk = Theme{
		Name:     "cyberpunk",
		Primary:  lipgloss.Color("#ff00ff"),
		Wall:     lipgloss.Color("#ff00ff"),
		Free:     lipgloss.Color("#0a0a0a"),
		Outline:  lipgloss.Color("#444466"),
		Start:    lipgloss.Color("#00ffff"),
		Goal:     lipgloss.Color("#ff8800"),
		Token:    lipgloss.Color("#ffff00"),
		Trail:    lipgloss.Color("#00ffff"),
		Visited:  lipgloss.Color("#1a001a"),
		Frontier: lipgloss.Color("#660066"),
		Text:     lipgloss.Color("#ffffff"),
		Muted:    lipgloss.Color("#666666"),
		Success:  lipgloss.Color("#00ff00"),
		Error:    lipgloss.Color("#ff0000"),
	}

	ThemeRetroGreen = Theme{
		Name:     "retro",
		Primary:  lipgloss.Color("#00ff00"),
		Wall:     lipgloss.Color("#00cc00"),
		Free:     lipgloss.Color("#001100"),
		Outline:  lipgloss.Color("#005500"),
		Start:    lipgloss.Color("#88ff88"),
		Goal:     lipgloss.Color("#ffff00"),
		Token:    lipgloss.Color("#88ff88"),
		Trail:    lipgloss.Color("#00ff00"),
		Visited:  lipgloss.Color("#003300"),
		Frontier: lipgloss.Color("#006600"),
		Text:     lipgloss.Color("#00ff00"),
		Muted:    lipgloss.Color("#005500"),
		Success:  lipgloss.Color("#88ff88"),
		Error:    lipgloss.Color("#ff0000"),
	}

	ThemeOcean = Theme{
		Name:     "ocean",
		Primary:  lipgloss.Color("#00a8cc"),
		Wall:     lipgloss.Color("#0077be"),
		Free:     lipgloss.Color("#001a33"),
		Outline:  lipgloss.Color("#4488aa"),
		Start:    lipgloss.Color("#00ff88"),
		Goal:     lipgloss.Color("#ff4444"),
		Token:    lipgloss.Color("#ffd700"),
		Trail:    lipgloss.Color("#ffcc00"),
		Visited:  lipgloss.Color("#002b4d"),
		Frontier: lipgloss.Color("#004477"),
		Text:     lipgloss.Color("#e0f0ff"),
		Muted:    lipgloss.Color("#4488aa"),
		Success:  lipgloss.Color("#00ff88"),
		Error:    lipgloss.Color("#ff4444"),
	}

	ThemeMinimal = Theme{
		Name:     "minimal",
		Primary:  lipgloss.Color("#ffffff"),
		Wall:     lipgloss.Color("#cccccc"),
		Free:     lipgloss.Color("#000000"),
		Outline:  lipgloss.Color("#888888"),
		Start:    lipgloss.Color("#0088ff"),
		Goal:     lipgloss.Color("#ffaa00"),
		Token:    lipgloss.Color("#ffffff"),
		Trail:    lipgloss.Color("#0088ff"),
		Visited:  lipgloss.Color("#222222"),
		Frontier: lipgloss.Color("#444444"),
		Text:     lipgloss.Color("#ffffff"),
		Muted:    lipgloss.Color("#888888"),
		Success:  lipgloss.Color("#00ff00"),
		Error:    lipgloss.Color("#ff0000"),
	}

	Themes = []Theme{
		ThemeClassic,
		ThemeCyberpunk,
		ThemeRetroGreen,
		ThemeOcean,
		ThemeMinimal,
	}
)

// GetTheme returns a theme by name, falling back to classic.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeClassic
}

// NextTheme returns the theme after name in cycling order.
func NextTheme(name string) Theme {
	for i, t := range Themes {
		if t.Name == name {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return ThemeClassic
}

// ThemeNames returns list of available theme names
func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
