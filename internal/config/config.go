package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/rook-computer/pascalviz/internal/render"
	"github.com/rook-computer/pascalviz/internal/render/layout"
)

type Mode string

const (
	ModeNumeric Mode = "numeric"
	ModeModulo  Mode = "modulo"
)

func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case ModeNumeric:
		return ModeNumeric, nil
	case ModeModulo, "mod", "mod2":
		return ModeModulo, nil
	default:
		return "", fmt.Errorf("%w: unknown mode %q (want numeric or modulo)", ErrInvalid, s)
	}
}

const (
	DefaultModuloRows       = 800
	DefaultModuloCanvasSize = 1600
	DefaultNumericRows      = 20
	DefaultNumericCanvas    = 1500
	DefaultListenAddr       = ":8080"
	DefaultHistoryDB        = "~/.pascalviz/history.db"

	// MaxRows and MaxCanvasSize bound the work and memory a single
	// request can ask for. An RGBA canvas at MaxCanvasSize is 256 MiB.
	MaxRows       = 4096
	MaxCanvasSize = 8192
)

const (
	EnvRows       = "PASCALVIZ_ROWS"
	EnvCanvasSize = "PASCALVIZ_CANVAS_SIZE"
	EnvMode       = "PASCALVIZ_MODE"
	EnvBackground = "PASCALVIZ_BACKGROUND"
	EnvForeground = "PASCALVIZ_FOREGROUND"
	EnvGrid       = "PASCALVIZ_GRID"
	EnvOutput     = "PASCALVIZ_OUTPUT"
	EnvHistoryDB  = "PASCALVIZ_HISTORY_DB"
	EnvListenAddr = "PASCALVIZ_LISTEN"
	EnvDevMode    = "PASCALVIZ_DEV"
)

var ErrInvalid = errors.New("invalid config")

type Config struct {
	Mode       Mode   `yaml:"mode"`
	Rows       int    `yaml:"rows"`
	CanvasSize int    `yaml:"canvas_size"`
	Background string `yaml:"background"`
	Foreground string `yaml:"foreground"`
	GridColor  string `yaml:"grid_color"`
	Grid       bool   `yaml:"grid"`
	Output     string `yaml:"output"`
	HistoryDB  string `yaml:"history_db"`
	Listen     string `yaml:"listen"`
	DevMode    bool   `yaml:"dev_mode"`
}

// Default returns the settings the given mode was designed around: an
// 800-row yellow-on-black modulo picture on 1600px, or a 20-row numeric
// triangle on 1500px.
func Default(mode Mode) *Config {
	cfg := &Config{
		Mode:      mode,
		Grid:      true,
		Output:    "pascal.png",
		HistoryDB: DefaultHistoryDB,
		Listen:    DefaultListenAddr,
	}
	theme := render.ModuloTheme
	if mode == ModeNumeric {
		theme = render.NumericTheme
		cfg.Rows = DefaultNumericRows
		cfg.CanvasSize = DefaultNumericCanvas
	} else {
		cfg.Mode = ModeModulo
		cfg.Rows = DefaultModuloRows
		cfg.CanvasSize = DefaultModuloCanvasSize
	}
	cfg.Background = render.Hex(theme.Background)
	cfg.Foreground = render.Hex(theme.Foreground)
	cfg.GridColor = render.Hex(theme.Grid)
	return cfg
}

// Load reads a YAML file over the defaults of the mode it names.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var probe struct {
		Mode string `yaml:"mode"`
	}
	if err := yaml.Unmarshal(data, &probe); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	mode := ModeModulo
	if probe.Mode != "" {
		if mode, err = ParseMode(probe.Mode); err != nil {
			return nil, err
		}
	}
	cfg := Default(mode)
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	cfg.Mode = mode
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// SwitchMode replaces the drawing settings with the defaults of mode. The
// output path, history database and server settings are kept. Switching to
// the current mode is a no-op.
func (c *Config) SwitchMode(mode Mode) {
	if mode == c.Mode {
		return
	}
	keep := *c
	*c = *Default(mode)
	c.Output, c.HistoryDB, c.Listen, c.DevMode = keep.Output, keep.HistoryDB, keep.Listen, keep.DevMode
}

// ApplyEnv overrides fields from PASCALVIZ_* variables.
func (c *Config) ApplyEnv() error {
	if raw := os.Getenv(EnvMode); raw != "" {
		mode, err := ParseMode(raw)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvMode, err)
		}
		c.SwitchMode(mode)
	}
	if err := envInt(EnvRows, &c.Rows); err != nil {
		return err
	}
	if err := envInt(EnvCanvasSize, &c.CanvasSize); err != nil {
		return err
	}
	if err := envBool(EnvGrid, &c.Grid); err != nil {
		return err
	}
	if err := envBool(EnvDevMode, &c.DevMode); err != nil {
		return err
	}
	envString(EnvBackground, &c.Background)
	envString(EnvForeground, &c.Foreground)
	envString(EnvOutput, &c.Output)
	envString(EnvHistoryDB, &c.HistoryDB)
	envString(EnvListenAddr, &c.Listen)
	return nil
}

func envString(name string, dst *string) {
	if raw := os.Getenv(name); raw != "" {
		*dst = raw
	}
}

func envInt(name string, dst *int) error {
	raw := os.Getenv(name)
	if raw == "" {
		return nil
	}
	parsed, err := strconv.Atoi(raw)
	if err != nil {
		return fmt.Errorf("%s must be an integer (got %q): %w", name, raw, err)
	}
	*dst = parsed
	return nil
}

func envBool(name string, dst *bool) error {
	raw := os.Getenv(name)
	if raw == "" {
		return nil
	}
	parsed, err := strconv.ParseBool(raw)
	if err != nil {
		return fmt.Errorf("%s must be a boolean (got %q): %w", name, raw, err)
	}
	*dst = parsed
	return nil
}

// Validate checks ranges and colours. Errors wrap ErrInvalid.
func (c *Config) Validate() error {
	if _, err := ParseMode(string(c.Mode)); err != nil {
		return err
	}
	if c.Rows <= 0 {
		return fmt.Errorf("%w: rows must be positive (got %d)", ErrInvalid, c.Rows)
	}
	if c.Rows > MaxRows {
		return fmt.Errorf("%w: rows must be at most %d (got %d)", ErrInvalid, MaxRows, c.Rows)
	}
	if c.CanvasSize <= 0 {
		return fmt.Errorf("%w: canvas size must be positive (got %d)", ErrInvalid, c.CanvasSize)
	}
	if c.CanvasSize > MaxCanvasSize {
		return fmt.Errorf("%w: canvas size must be at most %d (got %d)", ErrInvalid, MaxCanvasSize, c.CanvasSize)
	}
	if layout.Step(c.CanvasSize, c.Rows) < 1 {
		return fmt.Errorf("%w: canvas size %d is too small for %d rows", ErrInvalid, c.CanvasSize, c.Rows)
	}
	if _, err := c.Theme(); err != nil {
		return err
	}
	return nil
}

// Step is the cell size for this config.
func (c *Config) Step() float64 {
	return layout.Step(c.CanvasSize, c.Rows)
}

// Theme parses the configured colours.
func (c *Config) Theme() (render.Theme, error) {
	var theme render.Theme
	for _, field := range []struct {
		name  string
		value string
		dst   *color.RGBA
	}{
		{"background", c.Background, &theme.Background},
		{"foreground", c.Foreground, &theme.Foreground},
		{"grid_color", c.GridColor, &theme.Grid},
	} {
		parsed, err := render.ParseColor(field.value)
		if err != nil {
			return render.Theme{}, fmt.Errorf("%w: %s: %v", ErrInvalid, field.name, err)
		}
		*field.dst = parsed
	}
	return theme, nil
}
