package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/rook-computer/pascalviz/internal/app"
	"github.com/rook-computer/pascalviz/internal/app/screens"
	"github.com/rook-computer/pascalviz/internal/config"
	"github.com/rook-computer/pascalviz/internal/history"
	"github.com/rook-computer/pascalviz/internal/pascal"
	"github.com/rook-computer/pascalviz/internal/render"
	"github.com/rook-computer/pascalviz/internal/state"
	"github.com/rook-computer/pascalviz/internal/tui"
	"github.com/rook-computer/pascalviz/internal/web"
)

var (
	configFile string
	debug      bool
	stdioLog   string

	mode       string
	rows       int
	canvasSize int
	background string
	foreground string
	grid       bool
	output     string
	noHistory  bool
	dryRun     bool
	force      bool
	device     string
	listenAddr string
	devMode    bool
	limit      int
	statsRows  int

	logger app.Logger = app.NoopLogger{}
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "pascalviz",
		Short:         "draw Pascal's triangle and its modulo colouring",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Best-effort: keep panics and console output when the
			// framebuffer hides the terminal.
			logPath := stdioLog
			if logPath == "" {
				logPath = os.Getenv("PASCALVIZ_STDIO_LOG")
			}
			if logPath != "" {
				if err := redirectStdIO(logPath); err != nil {
					fmt.Fprintln(os.Stderr, "stdio log redirect error:", err)
				}
			}
			logger = app.NewCharmLogger(os.Stderr, debug)
			return nil
		},
	}
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&stdioLog, "stdio-log", "", "redirect stdout+stderr (including panics) to this file; also configurable via PASCALVIZ_STDIO_LOG")

	renderCmd := &cobra.Command{
		Use:   "render",
		Short: "render the triangle to a PNG or SVG file",
		RunE:  runRender,
	}
	addDrawingFlags(renderCmd)
	renderCmd.Flags().StringVarP(&output, "output", "o", "", "output file (.png or .svg)")
	renderCmd.Flags().BoolVar(&noHistory, "no-history", false, "do not record the run")
	renderCmd.Flags().BoolVar(&dryRun, "dry-run", false, "compute and time the drawing without writing a file")

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "show the triangle on the Linux framebuffer until F4, Escape or Q",
		RunE:  runShow,
	}
	addDrawingFlags(showCmd)
	showCmd.Flags().StringVar(&device, "device", render.DefaultFramebuffer, "framebuffer device")
	showCmd.Flags().BoolVar(&noHistory, "no-history", false, "do not record the run")
	showCmd.Flags().StringVar(&listenAddr, "listen", "", "also serve the HTTP API on this address while showing")

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "serve rendered triangles over HTTP",
		RunE:  runServe,
	}
	addDrawingFlags(serveCmd)
	serveCmd.Flags().StringVar(&listenAddr, "listen", "", "http listen address; also configurable via "+config.EnvListenAddr)
	serveCmd.Flags().BoolVar(&devMode, "dev", false, "enable permissive CORS; also configurable via "+config.EnvDevMode)

	statsCmd := &cobra.Command{
		Use:   "stats",
		Short: "plot how many cells per row the modulo colouring leaves dark",
		RunE:  runStats,
	}
	statsCmd.Flags().IntVar(&statsRows, "rows", 64, "number of rows")

	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "list recent rendering runs",
		RunE:  runHistory,
	}
	historyCmd.Flags().IntVar(&limit, "limit", 20, "number of runs to list")

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "browse the triangle in the terminal",
		RunE:  runTUI,
	}
	tuiCmd.Flags().StringVar(&mode, "mode", "", "numeric or modulo")
	tuiCmd.Flags().IntVar(&rows, "rows", tuiDefaultRows, "initial number of rows, unless the config file or "+config.EnvRows+" sets them")

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "manage configuration files",
	}
	configInitCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "write the default configuration of a mode as YAML",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runConfigInit,
	}
	configInitCmd.Flags().StringVar(&mode, "mode", string(config.ModeModulo), "numeric or modulo")
	configInitCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	configCmd.AddCommand(configInitCmd)

	rootCmd.AddCommand(renderCmd, showCmd, serveCmd, statsCmd, historyCmd, tuiCmd, configCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

const (
	tuiDefaultRows    = 16
	defaultConfigPath = "pascalviz.yaml"
)

func addDrawingFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&mode, "mode", "", "numeric or modulo (default modulo)")
	cmd.Flags().IntVar(&rows, "rows", 0, "number of rows")
	cmd.Flags().IntVar(&canvasSize, "size", 0, "canvas width and height in pixels")
	cmd.Flags().StringVar(&background, "background", "", "background colour (name or #rrggbb)")
	cmd.Flags().StringVar(&foreground, "foreground", "", "text or cell colour (name or #rrggbb)")
	cmd.Flags().BoolVar(&grid, "grid", true, "draw grid lines")
}

// loadConfig layers the config file (or mode defaults), PASCALVIZ_*
// variables and explicit flags.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	var cfg *config.Config
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	} else {
		cfg = config.Default(config.ModeModulo)
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("mode") {
		m, err := config.ParseMode(mode)
		if err != nil {
			return nil, err
		}
		cfg.SwitchMode(m)
	}
	if flags.Changed("rows") {
		cfg.Rows = rows
	}
	if flags.Changed("size") {
		cfg.CanvasSize = canvasSize
	}
	if flags.Changed("background") {
		cfg.Background = background
	}
	if flags.Changed("foreground") {
		cfg.Foreground = foreground
	}
	if flags.Changed("grid") {
		cfg.Grid = grid
	}
	if flags.Changed("output") {
		cfg.Output = output
	}
	if flags.Changed("listen") {
		cfg.Listen = listenAddr
	}
	if flags.Changed("dev") {
		cfg.DevMode = devMode
	}
	return cfg, nil
}

func openHistory(cfg *config.Config) *history.Store {
	if noHistory {
		return nil
	}
	st, err := history.Open(cfg.HistoryDB)
	if err != nil {
		logger.Errorf("history", "could not open history database: %v", err)
		return nil
	}
	return st
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	theme, _ := cfg.Theme()

	if dryRun {
		discard := render.NewDiscardRenderer(cfg.CanvasSize)
		cfg.Output = "dry-run"
		a := app.New(cfg, state.NewStore(), discard, nil)
		a.Logger = logger
		if err := a.Run(cmd.Context()); err != nil {
			return err
		}
		info := a.Store.Snapshot().Render
		fmt.Printf("dry run: %d rows, step %.0fpx, %d draw calls in %s\n",
			info.RowsRendered, cfg.Step(), discard.Ops(), info.Duration().Round(time.Millisecond))
		return nil
	}

	a := app.New(cfg, state.NewStore(), render.NewFileRenderer(cfg.Output, cfg.CanvasSize, theme.Background), nil)
	a.Logger = logger
	if st := openHistory(cfg); st != nil {
		defer st.Close()
		a.History = st
	}
	return a.Run(cmd.Context())
}

func runShow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	theme, _ := cfg.Theme()
	cfg.Output = device

	fbRenderer := render.NewFBRenderer(cfg.CanvasSize, theme.Background)
	fbRenderer.Device = device

	store := state.NewStore()
	var server web.Server
	if cmd.Flags().Changed("listen") {
		httpServer := web.NewHTTPServer(listenAddr, web.APIV1Deps{Base: cfg, Store: store, Render: screens.RenderImage})
		httpServer.DevMode = cfg.DevMode
		server = httpServer
	}

	a := app.New(cfg, store, fbRenderer, server)
	a.Logger = logger
	a.Console = true
	if st := openHistory(cfg); st != nil {
		defer st.Close()
		a.History = st
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := a.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	server := web.NewHTTPServer(cfg.Listen, web.APIV1Deps{
		Base:   cfg,
		Store:  state.NewStore(),
		Render: screens.RenderImage,
	})
	server.DevMode = cfg.DevMode
	server.Logger = logger
	if err := server.Start(ctx); err != nil {
		return err
	}

	fmt.Println("pascalviz listening on", server.Addr)
	fmt.Println("API: http://" + displayAddr(server.Addr) + "/api/v1/triangle.png")

	<-ctx.Done()
	return server.Stop()
}

func displayAddr(addr string) string {
	// Best-effort for display; don't attempt full URL parsing here.
	if len(addr) > 0 && addr[0] == ':' {
		return "127.0.0.1" + addr
	}
	if strings.HasPrefix(addr, "[::]:") {
		return "127.0.0.1" + strings.TrimPrefix(addr, "[::]")
	}
	return addr
}

func runStats(cmd *cobra.Command, args []string) error {
	if statsRows <= 1 || statsRows > config.MaxRows {
		return fmt.Errorf("rows must be between 2 and %d", config.MaxRows)
	}
	counts := pascal.DivisibleCounts(statsRows)
	series := make([]float64, len(counts))
	total := 0
	for i, n := range counts {
		series[i] = float64(n)
		total += n
	}

	graph := asciigraph.Plot(series,
		asciigraph.Height(15),
		asciigraph.Width(min(statsRows, 100)),
		asciigraph.Caption(fmt.Sprintf("divisible cells per row (row r uses modulus r-1), %d rows", statsRows)),
	)
	fmt.Println(graph)
	cells := statsRows * (statsRows + 1) / 2
	fmt.Printf("\n%d of %d cells divisible (%.1f%%)\n", total, cells, 100*float64(total)/float64(cells))
	return nil
}

func runHistory(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	st := openHistory(cfg)
	if st == nil {
		return errors.New("history database unavailable")
	}
	defer st.Close()

	runs, err := st.Recent(limit)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no runs recorded")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tWHEN\tMODE\tROWS\tSIZE\tDURATION\tOUTPUT\tERROR")
	for _, r := range runs {
		fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%d\t%s\t%s\t%s\n",
			r.ID, r.CreatedAt.Format(time.DateTime), r.Mode, r.Rows, r.CanvasSize,
			r.Duration.Round(time.Millisecond), r.Output, r.Err)
	}
	return w.Flush()
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	applyTUIRows(cmd, cfg)
	return tui.Run(*cfg)
}

// applyTUIRows starts the viewer small unless --rows, the config file or
// the environment chose a row count.
func applyTUIRows(cmd *cobra.Command, cfg *config.Config) {
	if cmd.Flags().Changed("rows") || configFile != "" || os.Getenv(config.EnvRows) != "" {
		return
	}
	cfg.Rows = tuiDefaultRows
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	path := defaultConfigPath
	if len(args) == 1 {
		path = args[0]
	}
	m, err := config.ParseMode(mode)
	if err != nil {
		return err
	}
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}
	if err := config.Save(path, config.Default(m)); err != nil {
		return err
	}
	fmt.Println("wrote", path)
	return nil
}
