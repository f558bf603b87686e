package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "vecview.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, 24, cfg.FrameRate)
	assert.Equal(t, 0.1, cfg.ZoomFloor)
	assert.Equal(t, 10.0, cfg.ZoomCeiling)
	assert.Equal(t, 1.1, cfg.ZoomFactor)
	assert.Equal(t, 5.0, cfg.RotationStep)
	assert.Equal(t, "#000000", cfg.DrawStroke)
}

func TestFileThenEnv(t *testing.T) {
	path := writeFile(t, `
frame_rate = 30
rotation_step = 15.0
show_frame = true
draw_stroke = "#FF00FF"
`)
	t.Setenv("VECVIEW_FRAME_RATE", "60")
	t.Setenv("VECVIEW_PERSIST", "true")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 60, cfg.FrameRate, "env wins over file")
	assert.Equal(t, 15.0, cfg.RotationStep)
	assert.True(t, cfg.ShowFrame)
	assert.True(t, cfg.Persist)
	assert.Equal(t, "#FF00FF", cfg.DrawStroke)
	assert.Equal(t, 0.1, cfg.ZoomFloor, "unset keys keep defaults")
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)

	_, err = Load(writeFile(t, `frame_rte = 30`))
	assert.Error(t, err, "unknown keys are rejected")

	_, err = Load(writeFile(t, `frame_rate = "fast"`))
	assert.Error(t, err)

	t.Setenv("VECVIEW_FRAME_RATE", "zero")
	_, err = Load("")
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"frame rate", func(c *Config) { c.FrameRate = 0 }, "frame_rate"},
		{"zoom bounds", func(c *Config) { c.ZoomCeiling = 0.05 }, "zoom bounds"},
		{"zoom factor", func(c *Config) { c.ZoomFactor = 1 }, "zoom_factor"},
		{"rotation", func(c *Config) { c.RotationStep = 0 }, "rotation_step"},
		{"stroke", func(c *Config) { c.DrawStroke = "#abc" }, "draw_stroke"},
		{"window", func(c *Config) { c.WindowHeight = -1 }, "window size"},
		{"log level", func(c *Config) { c.LogLevel = "loud" }, "log_level"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalid)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}

func TestValidateCollectsEveryField(t *testing.T) {
	cfg := Default()
	cfg.FrameRate = 0
	cfg.ClearColor = "white"
	err := cfg.Validate()
	require.Error(t, err)

	joined, ok := err.(interface{ Unwrap() []error })
	require.True(t, ok)
	errs := joined.Unwrap()
	require.Len(t, errs, 2)
	for _, e := range errs {
		assert.ErrorIs(t, e, ErrInvalid)
	}
	assert.Contains(t, errs[0].Error(), "frame_rate")
	assert.Contains(t, errs[1].Error(), "clear_color")

	_, err = Load(writeFile(t, "frame_rate = -1\n"))
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestDerivedOptions(t *testing.T) {
	cfg := Default()
	cfg.LogLevel = "debug"
	lvl, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, lvl)

	opts := cfg.ViewerOptions(nil)
	assert.Equal(t, cfg.FrameRate, opts.FrameRate)
	assert.Equal(t, cfg.ZoomCeiling, opts.Camera.ZoomCeiling)
	assert.Equal(t, "#ffffff", cfg.Background().Hex())
}
