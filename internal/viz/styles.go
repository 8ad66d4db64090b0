package viz

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// styles are derived from the active theme on every render.
type styles struct {
	panel    lipgloss.Style
	board    lipgloss.Style
	title    lipgloss.Style
	label    lipgloss.Style
	value    lipgloss.Style
	running  lipgloss.Style
	paused   lipgloss.Style
	success  lipgloss.Style
	failure  lipgloss.Style
	keyHint  lipgloss.Style
	graph    lipgloss.Style
	progress lipgloss.Style
}

func newStyles(th Theme) styles {
	return styles{
		panel: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(th.Muted).
			Padding(0, 2).
			Width(40),
		board: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(th.Outline).
			Padding(0, 1),
		title:    lipgloss.NewStyle().Bold(true).Foreground(th.Primary).MarginBottom(1),
		label:    lipgloss.NewStyle().Foreground(th.Muted).Width(12),
		value:    lipgloss.NewStyle().Foreground(th.Text),
		running:  lipgloss.NewStyle().Bold(true).Foreground(th.Success),
		paused:   lipgloss.NewStyle().Bold(true).Foreground(th.Goal),
		success:  lipgloss.NewStyle().Bold(true).Foreground(th.Success),
		failure:  lipgloss.NewStyle().Bold(true).Foreground(th.Error),
		keyHint:  lipgloss.NewStyle().Foreground(th.Muted).Italic(true).MarginTop(1),
		graph:    lipgloss.NewStyle().Foreground(th.Trail),
		progress: lipgloss.NewStyle().Foreground(th.Token),
	}
}

// GradientText colours each character of text along a linear gradient.
func GradientText(text string, startColor, endColor lipgloss.Color) string {
	if len(text) == 0 {
		return ""
	}
	sr, sg, sb := parseHex(string(startColor))
	er, eg, eb := parseHex(string(endColor))

	var result strings.Builder
	runes := []rune(text)
	n := len(runes)
	for i, c := range runes {
		t := 0.0
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		r := int(float64(sr) + t*float64(er-sr))
		g := int(float64(sg) + t*float64(eg-sg))
		b := int(float64(sb) + t*float64(eb-sb))
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", r, g, b)))
		result.WriteString(style.Render(string(c)))
	}
	return result.String()
}

// ProgressBar renders a filled bar for percent in [0, 1].
func ProgressBar(percent float64, width int) string {
	filled := int(percent * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

func parseHex(hex string) (r, g, b int) {
	if len(hex) != 7 || hex[0] != '#' {
		return 255, 255, 255
	}
	v, err := strconv.ParseUint(hex[1:], 16, 32)
	if err != nil {
		return 255, 255, 255
	}
	return int(v >> 16 & 0xff), int(v >> 8 & 0xff), int(v & 0xff)
}
