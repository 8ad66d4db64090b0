package tui

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/san-kum/gbfsviz/internal/grid"
	"github.com/san-kum/gbfsviz/internal/search"
)

const (
	clearScreen = "\033[2J\033[H"
	hideCursor  = "\033[?25l"
	showCursor  = "\033[?25h"

	goalReached = "Goal Reached!"
	noPath      = "No Path Found!"
)

// LiveRenderer plays a route back as plain text frames, one per step.
type LiveRenderer struct {
	out   io.Writer
	delay time.Duration
	ansi  bool
	title string
}

// NewLiveRenderer writes frames to out. With ansi set, each frame clears
// the screen and the cursor is hidden during playback.
func NewLiveRenderer(out io.Writer, delay time.Duration, ansi bool) *LiveRenderer {
	return &LiveRenderer{out: out, delay: delay, ansi: ansi, title: "gbfs"}
}

func (r *LiveRenderer) SetTitle(title string) { r.title = title }

// Play renders one frame per element of path and then the outcome line.
// It returns ctx.Err() if cancelled between frames.
func (r *LiveRenderer) Play(ctx context.Context, g *grid.Grid, start, goal grid.Cell, path []grid.Cell) error {
	r.Start()
	defer r.Stop()

	var ticker *time.Ticker
	if r.delay > 0 {
		ticker = time.NewTicker(r.delay)
		defer ticker.Stop()
	}

	for i := range path {
		if i > 0 && ticker != nil {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-ticker.C:
			}
		} else if err := ctx.Err(); err != nil {
			return err
		}
		r.render(g, start, goal, path, i)
	}

	if len(path) == 0 {
		r.render(g, start, goal, nil, -1)
		_, err := fmt.Fprintf(r.out, "  %s\n", noPath)
		return err
	}
	_, err := fmt.Fprintf(r.out, "  %s\n", goalReached)
	return err
}

func (r *LiveRenderer) render(g *grid.Grid, start, goal grid.Cell, path []grid.Cell, pos int) {
	var b strings.Builder
	if r.ansi {
		b.WriteString(clearScreen)
	}
	if pos >= 0 {
		fmt.Fprintf(&b, "  %s  step %d/%d  h=%d\n", r.title, pos+1, len(path), search.Manhattan(path[pos], goal))
	} else {
		fmt.Fprintf(&b, "  %s\n", r.title)
	}
	b.WriteString("  " + strings.Repeat("-", g.Cols()*2) + "\n")

	trail := make(map[grid.Cell]bool, pos+1)
	for i := 0; i < pos; i++ {
		trail[path[i]] = true
	}
	for row := 0; row < g.Rows(); row++ {
		b.WriteString("  ")
		for col := 0; col < g.Cols(); col++ {
			c := grid.Cell{Row: row, Col: col}
			switch {
			case pos >= 0 && path[pos] == c:
				b.WriteString("@ ")
			case c == start:
				b.WriteString("S ")
			case c == goal:
				b.WriteString("G ")
			case trail[c]:
				b.WriteString("o ")
			case g.IsWall(c):
				b.WriteString("# ")
			default:
				b.WriteString(". ")
			}
		}
		b.WriteString("\n")
	}
	b.WriteString("  " + strings.Repeat("-", g.Cols()*2) + "\n")
	fmt.Fprint(r.out, b.String())
}

func (r *LiveRenderer) Start() {
	if r.ansi {
		fmt.Fprint(r.out, hideCursor)
	}
}

func (r *LiveRenderer) Stop() {
	if r.ansi {
		fmt.Fprint(r.out, showCursor)
	}
}
