package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/san-kum/gbfsviz/internal/config"
	"github.com/san-kum/gbfsviz/internal/ctxlog"
	"github.com/san-kum/gbfsviz/internal/export"
	"github.com/san-kum/gbfsviz/internal/grid"
	"github.com/san-kum/gbfsviz/internal/search"
	"github.com/san-kum/gbfsviz/internal/tui"
	"github.com/san-kum/gbfsviz/internal/viz"
)

var (
	logLevel  string
	logFormat string
	logFile   string
	logOut    *os.File

	preset      string
	configFile  string
	stepDelay   float64
	searchDelay float64
	theme       string
	showSearch  bool

	format   string
	noANSI   bool
	outFile  string
	cellSize int
	repeat   int
)

// main registers the commands and runs the root command with a context
// cancelled on interrupt. It exits with status 1 if the command fails.
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := newRootCmd().ExecuteContext(ctx)
	// PersistentPostRunE is skipped when a command fails.
	closeLog()
	if err != nil {
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "gbfsviz",
		Short: "greedy best-first search pathfinding visualizer",
		// Without a preset or config the preset picker is shown.
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("preset") && configFile == "" {
				cfg, err := loadConfig(cmd)
				if err != nil {
					return err
				}
				return viz.RunApp(cmd.Context(), cfg)
			}
			return runInteractive(cmd, args)
		},
		PersistentPreRunE:  setupLogging,
		PersistentPostRunE: teardownLogging,
		SilenceUsage:       true,
	}
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "log format: text or json")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "write logs to file (interactive mode discards logs otherwise)")
	addMazeFlags(rootCmd)

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "search once and print the route",
		Args:  cobra.NoArgs,
		RunE:  runSearch,
	}
	addMazeFlags(runCmd)
	runCmd.Flags().StringVar(&format, "format", "text", "output format: text or json")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "play the route back as plain terminal frames",
		Args:  cobra.NoArgs,
		RunE:  runLive,
	}
	addMazeFlags(liveCmd)
	liveCmd.Flags().BoolVar(&noANSI, "no-ansi", false, "do not clear the screen between frames")

	traceCmd := &cobra.Command{
		Use:   "trace",
		Short: "print the search one expansion at a time",
		Args:  cobra.NoArgs,
		RunE:  runTrace,
	}
	addMazeFlags(traceCmd)

	profileCmd := &cobra.Command{
		Use:   "profile",
		Short: "plot the heuristic distance to goal along the route",
		Args:  cobra.NoArgs,
		RunE:  runProfile,
	}
	addMazeFlags(profileCmd)

	svgCmd := &cobra.Command{
		Use:   "export-svg",
		Short: "render the maze and route as SVG",
		Args:  cobra.NoArgs,
		RunE:  runExportSVG,
	}
	addMazeFlags(svgCmd)
	svgCmd.Flags().StringVarP(&outFile, "out", "o", "", "output file (default stdout)")
	svgCmd.Flags().IntVar(&cellSize, "cell-size", config.DefaultCellSize, "cell size in pixels")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list built-in mazes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			for _, name := range config.ListPresets() {
				cfg := config.GetPreset(name)
				fmt.Fprintf(w, "%s:\n", name)
				for _, row := range cfg.Maze {
					fmt.Fprintf(w, "  %s\n", row)
				}
			}
			return nil
		},
	}

	themesCmd := &cobra.Command{
		Use:   "themes",
		Short: "list color themes",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range viz.ThemeNames() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
		},
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "print the resolved configuration as yaml",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			data, err := config.Marshal(cfg)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
	addMazeFlags(configCmd)

	compareCmd := &cobra.Command{
		Use:   "compare [preset...]",
		Short: "search several presets concurrently and tabulate the results",
		RunE:  runCompare,
	}
	compareCmd.Flags().IntVar(&repeat, "repeat", 1, "run the batch this many times and report the mean batch time")

	rootCmd.AddCommand(runCmd, liveCmd, traceCmd, profileCmd, svgCmd, presetsCmd, themesCmd, configCmd, compareCmd)
	return rootCmd
}

func addMazeFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&preset, "preset", config.DefaultPreset, "built-in maze")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().Float64Var(&stepDelay, "delay", config.DefaultStepDelay, "seconds per movement step")
	cmd.Flags().Float64Var(&searchDelay, "search-delay", config.DefaultSearchDelay, "seconds per search expansion")
	cmd.Flags().StringVar(&theme, "theme", config.DefaultTheme, "color theme")
	cmd.Flags().BoolVar(&showSearch, "show-search", false, "animate the search before moving")
}

func setupLogging(cmd *cobra.Command, args []string) error {
	var w io.Writer = cmd.ErrOrStderr()
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		logOut = f
		w = f
	} else if cmd.Root() == cmd {
		w = io.Discard
	}
	logger := ctxlog.New(strings.ToLower(logLevel), strings.ToLower(logFormat), w)
	cmd.SetContext(ctxlog.WithLogger(cmd.Context(), logger))
	logger.Debug("logger ready", "command", cmd.Name(), "level", logLevel)
	return nil
}

func teardownLogging(cmd *cobra.Command, args []string) error {
	return closeLog()
}

// closeLog closes the --log-file handle, if one is open.
func closeLog() error {
	if logOut == nil {
		return nil
	}
	err := logOut.Close()
	logOut = nil
	return err
}

// loadConfig resolves the preset, then the config file, then any flag set
// explicitly on the command line.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	logger := ctxlog.FromContext(cmd.Context())

	cfg := config.GetPreset(preset)
	if cfg == nil {
		return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
	}

	if configFile != "" {
		fileCfg, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		if cmd.Flags().Changed("preset") {
			fileCfg.Name, fileCfg.Maze, fileCfg.Start, fileCfg.Goal = cfg.Name, cfg.Maze, cfg.Start, cfg.Goal
		}
		cfg = fileCfg
		logger.Debug("config loaded", "path", configFile)
	}

	if cmd.Flags().Changed("delay") {
		cfg.StepDelay = stepDelay
	}
	if cmd.Flags().Changed("search-delay") {
		cfg.SearchDelay = searchDelay
	}
	if cmd.Flags().Changed("theme") {
		cfg.Theme = theme
	}
	if cmd.Flags().Changed("show-search") {
		cfg.ShowSearch = showSearch
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	logger.Debug("config resolved", "maze", cfg.Name, "step_delay", cfg.StepDelay, "theme", cfg.Theme)
	return cfg, nil
}

// problem is a resolved maze with its endpoints.
type problem struct {
	cfg   *config.Config
	grid  *grid.Grid
	start grid.Cell
	goal  grid.Cell
}

func loadProblem(cmd *cobra.Command) (*problem, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	g, err := cfg.Grid()
	if err != nil {
		return nil, err
	}
	start, goal, err := cfg.Endpoints(g)
	if err != nil {
		return nil, err
	}
	return &problem{cfg: cfg, grid: g, start: start, goal: goal}, nil
}

func runInteractive(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	m, err := viz.ModelFromConfig(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	return viz.Run(cmd.Context(), m)
}

type runOutput struct {
	Maze        string   `json:"maze"`
	Start       [2]int   `json:"start"`
	Goal        [2]int   `json:"goal"`
	Found       bool     `json:"found"`
	Path        [][2]int `json:"path"`
	Expanded    int      `json:"expanded"`
	Discovered  int      `json:"discovered"`
	MaxFrontier int      `json:"max_frontier"`
	Steps       int      `json:"steps"`
	ElapsedNs   int64    `json:"elapsed_ns"`
}

func pair(c grid.Cell) [2]int { return [2]int{c.Row, c.Col} }

func runSearch(cmd *cobra.Command, args []string) error {
	p, err := loadProblem(cmd)
	if err != nil {
		return err
	}
	logger := ctxlog.FromContext(cmd.Context())

	begin := time.Now()
	res := search.Run(p.grid, p.start, p.goal)
	elapsed := time.Since(begin)
	logger.Info("search complete", "maze", p.cfg.Name, "found", res.Found, "length", len(res.Path), "elapsed", elapsed)

	w := cmd.OutOrStdout()
	switch format {
	case "json":
		out := runOutput{
			Maze:        p.cfg.Name,
			Start:       pair(p.start),
			Goal:        pair(p.goal),
			Found:       res.Found,
			Path:        make([][2]int, len(res.Path)),
			Expanded:    len(res.Expanded),
			Discovered:  res.Discovered,
			MaxFrontier: res.MaxFrontier,
			Steps:       res.Steps,
			ElapsedNs:   elapsed.Nanoseconds(),
		}
		for i, c := range res.Path {
			out.Path[i] = pair(c)
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	case "text":
		if !res.Found {
			fmt.Fprintln(w, "No Path Found!")
		} else {
			parts := make([]string, len(res.Path))
			for i, c := range res.Path {
				parts[i] = c.String()
			}
			fmt.Fprintln(w, strings.Join(parts, " -> "))
		}
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintf(tw, "\nmaze\t%s\n", p.cfg.Name)
		fmt.Fprintf(tw, "route\t%d cells\n", len(res.Path))
		fmt.Fprintf(tw, "expanded\t%d\n", len(res.Expanded))
		fmt.Fprintf(tw, "discovered\t%d\n", res.Discovered)
		fmt.Fprintf(tw, "max frontier\t%d\n", res.MaxFrontier)
		fmt.Fprintf(tw, "elapsed\t%v\n", elapsed)
		return tw.Flush()
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

func runLive(cmd *cobra.Command, args []string) error {
	p, err := loadProblem(cmd)
	if err != nil {
		return err
	}
	path := search.Search(p.grid, p.start, p.goal)
	delay := time.Duration(p.cfg.StepDelay * float64(time.Second))
	r := tui.NewLiveRenderer(cmd.OutOrStdout(), delay, !noANSI)
	r.SetTitle(p.cfg.Name)
	return r.Play(cmd.Context(), p.grid, p.start, p.goal, path)
}

func runTrace(cmd *cobra.Command, args []string) error {
	p, err := loadProblem(cmd)
	if err != nil {
		return err
	}
	w := cmd.OutOrStdout()
	s := search.NewStepper(p.grid, p.start, p.goal)
	for !s.Done() {
		snap := s.Step()
		fmt.Fprintf(w, "step %3d  pop %-7s h=%-3d frontier=%v\n",
			snap.StepIndex, snap.Current, search.Manhattan(snap.Current, p.goal), snap.Frontier)
	}
	res := s.Result()
	if res.Found {
		fmt.Fprintf(w, "goal reached after %d steps, route %d cells\n", res.Steps, len(res.Path))
	} else {
		fmt.Fprintf(w, "frontier exhausted after %d steps, no path\n", res.Steps)
	}
	return nil
}

func runProfile(cmd *cobra.Command, args []string) error {
	p, err := loadProblem(cmd)
	if err != nil {
		return err
	}
	path := search.Search(p.grid, p.start, p.goal)
	w := cmd.OutOrStdout()
	if len(path) == 0 {
		fmt.Fprintln(w, "No Path Found!")
		return nil
	}

	h := make([]float64, len(path))
	for i, c := range path {
		h[i] = float64(search.Manhattan(c, p.goal))
	}
	chart := asciigraph.Plot(h,
		asciigraph.Height(8),
		asciigraph.Width(60),
		asciigraph.Caption(fmt.Sprintf("%s: manhattan distance to goal per step", p.cfg.Name)))
	fmt.Fprintln(w, chart)
	return nil
}

func runExportSVG(cmd *cobra.Command, args []string) error {
	p, err := loadProblem(cmd)
	if err != nil {
		return err
	}
	size := p.cfg.CellSize
	if cmd.Flags().Changed("cell-size") {
		size = cellSize
	}
	path := search.Search(p.grid, p.start, p.goal)
	doc := export.GridToSVG(p.grid, p.start, p.goal, path, size, viz.GetTheme(p.cfg.Theme))

	if outFile == "" {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), doc)
		return err
	}
	if err := os.WriteFile(outFile, []byte(doc+"\n"), 0644); err != nil {
		return err
	}
	ctxlog.FromContext(cmd.Context()).Info("svg written", "path", outFile)
	return nil
}

func runCompare(cmd *cobra.Command, args []string) error {
	names := args
	if len(names) == 0 {
		names = config.ListPresets()
	}

	problems := make([]search.Problem, 0, len(names))
	for _, name := range names {
		cfg := config.GetPreset(name)
		if cfg == nil {
			return fmt.Errorf("unknown preset: %s (available: %v)", name, config.ListPresets())
		}
		g, err := cfg.Grid()
		if err != nil {
			return fmt.Errorf("preset %s: %w", name, err)
		}
		start, goal, err := cfg.Endpoints(g)
		if err != nil {
			return fmt.Errorf("preset %s: %w", name, err)
		}
		problems = append(problems, search.Problem{Name: name, Grid: g, Start: start, Goal: goal})
	}

	if repeat < 1 {
		return fmt.Errorf("repeat must be at least 1, got %d", repeat)
	}

	var bar *progressbar.ProgressBar
	if repeat > 1 {
		bar = progressbar.NewOptions(repeat,
			progressbar.OptionSetWriter(cmd.ErrOrStderr()),
			progressbar.OptionSetWidth(30),
			progressbar.OptionShowCount(),
			progressbar.OptionClearOnFinish(),
			progressbar.OptionSetDescription("searching"))
	}

	var results []search.Result
	begin := time.Now()
	for i := 0; i < repeat; i++ {
		var err error
		results, err = search.RunBatch(cmd.Context(), problems)
		if err != nil {
			return err
		}
		if bar != nil {
			_ = bar.Add(1)
		}
	}
	mean := time.Since(begin) / time.Duration(repeat)
	if bar != nil {
		_ = bar.Finish()
	}
	ctxlog.FromContext(cmd.Context()).Info("batch complete", "presets", len(problems), "repeat", repeat, "mean", mean)

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "PRESET\tFOUND\tROUTE\tEXPANDED\tDISCOVERED\tMAX FRONTIER")
	for i, res := range results {
		fmt.Fprintf(tw, "%s\t%v\t%d\t%d\t%d\t%d\n",
			problems[i].Name, res.Found, len(res.Path), len(res.Expanded), res.Discovered, res.MaxFrontier)
	}
	if repeat > 1 {
		fmt.Fprintf(tw, "\nmean batch time\t%v\n", mean)
	}
	return tw.Flush()
}
