// Package config loads viewer settings: built-in defaults, then an optional
// TOML file, then VECVIEW_* environment variables.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/kelseyhightower/envconfig"
	"github.com/pelletier/go-toml/v2"

	"vecview/internal/camera"
	"vecview/internal/render"
	"vecview/internal/rgb"
	"vecview/internal/viewer"
)

// ErrInvalid marks each setting Validate rejects.
var ErrInvalid = errors.New("invalid setting")

// EnvPrefix prefixes every environment override, e.g. VECVIEW_FRAME_RATE.
const EnvPrefix = "vecview"

// Config holds every tunable. Environment variables have no defaults of
// their own so that unset variables keep the file or built-in value.
type Config struct {
	FrameRate    int     `toml:"frame_rate" envconfig:"FRAME_RATE"`
	ZoomFloor    float64 `toml:"zoom_floor" envconfig:"ZOOM_FLOOR"`
	ZoomCeiling  float64 `toml:"zoom_ceiling" envconfig:"ZOOM_CEILING"`
	ZoomFactor   float64 `toml:"zoom_factor" envconfig:"ZOOM_FACTOR"`
	RotationStep float64 `toml:"rotation_step" envconfig:"ROTATION_STEP"`

	DrawStroke  string  `toml:"draw_stroke" envconfig:"DRAW_STROKE"`
	FrameStroke string  `toml:"frame_stroke" envconfig:"FRAME_STROKE"`
	ClearColor  string  `toml:"clear_color" envconfig:"CLEAR_COLOR"`
	LineWidth   float64 `toml:"line_width" envconfig:"LINE_WIDTH"`

	ShowFrame bool `toml:"show_frame" envconfig:"SHOW_FRAME"`
	Persist   bool `toml:"persist" envconfig:"PERSIST"`
	Watch     bool `toml:"watch" envconfig:"WATCH"`

	WindowWidth  int `toml:"window_width" envconfig:"WINDOW_WIDTH"`
	WindowHeight int `toml:"window_height" envconfig:"WINDOW_HEIGHT"`

	LogFile  string `toml:"log_file" envconfig:"LOG_FILE"`
	LogLevel string `toml:"log_level" envconfig:"LOG_LEVEL"`
}

// Default returns the built-in settings.
func Default() Config {
	cam := camera.DefaultOptions()
	return Config{
		FrameRate:    render.DefaultRate,
		ZoomFloor:    cam.ZoomFloor,
		ZoomCeiling:  cam.ZoomCeiling,
		ZoomFactor:   cam.ZoomFactor,
		RotationStep: cam.RotationStep,
		DrawStroke:   viewer.DefaultStroke,
		FrameStroke:  "#9CA3AF",
		ClearColor:   "#FFFFFF",
		LineWidth:    1.5,
		WindowWidth:  800,
		WindowHeight: 800,
		LogFile:      "vecview.log",
		LogLevel:     "info",
	}
}

// Load builds the configuration. path may be empty; a named file that does
// not exist is an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("config: %w", err)
		}
		if err := decode(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: %s: %w", path, err)
		}
	}
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

func decode(data []byte, cfg *Config) error {
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	return dec.Decode(cfg)
}

// Validate rejects settings the viewer cannot run with.
func (c Config) Validate() error {
	var errs []error
	if c.FrameRate <= 0 {
		errs = append(errs, fmt.Errorf("%w: frame_rate %d must be positive", ErrInvalid, c.FrameRate))
	}
	if c.ZoomFloor <= 0 || c.ZoomCeiling < c.ZoomFloor {
		errs = append(errs, fmt.Errorf("%w: zoom bounds [%g, %g]", ErrInvalid, c.ZoomFloor, c.ZoomCeiling))
	}
	if c.ZoomFactor <= 1 {
		errs = append(errs, fmt.Errorf("%w: zoom_factor %g must exceed 1", ErrInvalid, c.ZoomFactor))
	}
	if c.RotationStep == 0 {
		errs = append(errs, fmt.Errorf("%w: rotation_step must be non-zero", ErrInvalid))
	}
	for name, hex := range map[string]string{
		"draw_stroke":  c.DrawStroke,
		"frame_stroke": c.FrameStroke,
		"clear_color":  c.ClearColor,
	} {
		if !rgb.Decode(hex).Valid() {
			errs = append(errs, fmt.Errorf("%w: %s %q is not #RRGGBB", ErrInvalid, name, hex))
		}
	}
	if c.WindowWidth <= 0 || c.WindowHeight <= 0 {
		errs = append(errs, fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.WindowWidth, c.WindowHeight))
	}
	if _, err := c.Level(); err != nil {
		errs = append(errs, fmt.Errorf("%w: %w", ErrInvalid, err))
	}
	return errors.Join(errs...)
}

// Level parses LogLevel.
func (c Config) Level() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("log_level %q: %w", c.LogLevel, err)
	}
	return lvl, nil
}

// Background decodes ClearColor.
func (c Config) Background() rgb.RGB { return rgb.Decode(c.ClearColor) }

// CameraOptions returns the camera bounds.
func (c Config) CameraOptions() camera.Options {
	return camera.Options{
		ZoomFloor:    c.ZoomFloor,
		ZoomCeiling:  c.ZoomCeiling,
		ZoomFactor:   c.ZoomFactor,
		RotationStep: c.RotationStep,
	}
}

// ViewerOptions returns the controller options for this configuration.
func (c Config) ViewerOptions(log *slog.Logger) viewer.Options {
	return viewer.Options{
		Camera:      c.CameraOptions(),
		FrameRate:   c.FrameRate,
		DrawStroke:  c.DrawStroke,
		FrameStroke: c.FrameStroke,
		ShowFrame:   c.ShowFrame,
		Logger:      log,
	}
}
