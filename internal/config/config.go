package config

import (
	"fmt"
	"image/color"
	"os"
	"time"

	"github.com/finnegancarroll/graphdrift/internal/frame"
	"github.com/finnegancarroll/graphdrift/internal/motion"
	"github.com/finnegancarroll/graphdrift/internal/scene"
	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"
)

const (
	DefaultCrossSeconds   = 20.0
	DefaultInitialFPS     = 60.0
	DefaultRateInterval   = 50 * time.Millisecond
	DefaultFrameInterval  = 16 * time.Millisecond
	DefaultWidth          = 1280
	DefaultHeight         = 720
	DefaultLineColor      = "#c8c8c8"
	DefaultBackground     = "#0a0a0a"
	DefaultLineWidth      = 1.5
	DefaultSampleCoverage = 0.7
)

// Backends that can display the animation.
const (
	BackendWindow   = "window"
	BackendGL       = "gl"
	BackendTerminal = "terminal"
)

type Config struct {
	Topology      string        `yaml:"topology"`
	Seed          int64         `yaml:"seed"`
	CrossSeconds  float64       `yaml:"cross_seconds"`
	Policy        string        `yaml:"policy"`
	InitialFPS    float64       `yaml:"initial_fps"`
	RateInterval  time.Duration `yaml:"rate_interval"`
	FrameInterval time.Duration `yaml:"frame_interval"`
	MaxFrames     int           `yaml:"max_frames"`
	Backend       string        `yaml:"backend"`
	Window        WindowConfig  `yaml:"window"`
	Style         StyleConfig   `yaml:"style"`
}

type WindowConfig struct {
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	Title     string `yaml:"title"`
	Resizable bool   `yaml:"resizable"`
}

type StyleConfig struct {
	LineColor      string  `yaml:"line_color"`
	Background     string  `yaml:"background"`
	LineWidth      float64 `yaml:"line_width"`
	Antialias      bool    `yaml:"antialias"`
	SampleCoverage float64 `yaml:"sample_coverage"`
}

func DefaultConfig() *Config {
	return &Config{
		Topology:      "default",
		CrossSeconds:  DefaultCrossSeconds,
		Policy:        motion.Discard.String(),
		InitialFPS:    DefaultInitialFPS,
		RateInterval:  DefaultRateInterval,
		FrameInterval: DefaultFrameInterval,
		Backend:       BackendWindow,
		Window: WindowConfig{
			Width:     DefaultWidth,
			Height:    DefaultHeight,
			Title:     "graphdrift",
			Resizable: true,
		},
		Style: StyleConfig{
			LineColor:      DefaultLineColor,
			Background:     DefaultBackground,
			LineWidth:      DefaultLineWidth,
			Antialias:      true,
			SampleCoverage: DefaultSampleCoverage,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate reports the first field out of range.
func (c *Config) Validate() error {
	if _, err := scene.GetTopology(c.Topology); err != nil {
		return fmt.Errorf("topology: %w", err)
	}
	if _, err := motion.ParsePolicy(c.Policy); err != nil {
		return fmt.Errorf("policy: %w", err)
	}
	if c.CrossSeconds <= 0 {
		return fmt.Errorf("cross_seconds must be positive, got %f", c.CrossSeconds)
	}
	if c.InitialFPS < 0 {
		return fmt.Errorf("initial_fps must be non-negative, got %f", c.InitialFPS)
	}
	if c.RateInterval <= 0 {
		return fmt.Errorf("rate_interval must be positive, got %v", c.RateInterval)
	}
	if c.FrameInterval < 0 {
		return fmt.Errorf("frame_interval must be non-negative, got %v", c.FrameInterval)
	}
	if c.MaxFrames < 0 {
		return fmt.Errorf("max_frames must be non-negative, got %d", c.MaxFrames)
	}
	switch c.Backend {
	case BackendWindow, BackendGL, BackendTerminal:
	default:
		return fmt.Errorf("unknown backend: %s (available: %s, %s, %s)", c.Backend, BackendWindow, BackendGL, BackendTerminal)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if _, err := c.LineRGBA(); err != nil {
		return fmt.Errorf("style.line_color: %w", err)
	}
	if _, err := c.BackgroundRGBA(); err != nil {
		return fmt.Errorf("style.background: %w", err)
	}
	if c.Style.LineWidth <= 0 {
		return fmt.Errorf("style.line_width must be positive, got %f", c.Style.LineWidth)
	}
	if c.Style.SampleCoverage < 0 || c.Style.SampleCoverage > 1 {
		return fmt.Errorf("style.sample_coverage must be in [0, 1], got %f", c.Style.SampleCoverage)
	}
	return nil
}

func (c *Config) MotionPolicy() motion.Policy {
	p, _ := motion.ParsePolicy(c.Policy)
	return p
}

func (c *Config) FrameConfig() frame.Config {
	return frame.Config{
		CrossSeconds: c.CrossSeconds,
		InitialFPS:   c.InitialFPS,
		RateInterval: c.RateInterval,
	}
}

func (c *Config) LineRGBA() (color.RGBA, error) {
	return parseColor(c.Style.LineColor)
}

func (c *Config) BackgroundRGBA() (color.RGBA, error) {
	return parseColor(c.Style.Background)
}

func parseColor(hex string) (color.RGBA, error) {
	col, err := colorful.Hex(hex)
	if err != nil {
		return color.RGBA{}, err
	}
	r, g, b := col.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}
