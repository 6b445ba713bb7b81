// Package config loads the YAML settings file of the synscapes tools.
package config

import (
	"os"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/nvr-ai/synscapes/images"
)

// Viewer backends.
const (
	BackendExec   = "exec"
	BackendWindow = "window"
)

// Config holds every setting that is not a per-invocation flag.
type Config struct {
	Viewer   Viewer   `yaml:"viewer"`
	Render   Render   `yaml:"render"`
	Colorize Colorize `yaml:"colorize"`
	Log      Log      `yaml:"log"`
}

// Viewer selects how images are displayed.
type Viewer struct {
	// Backend is "exec" (external program) or "window" (OpenCV window).
	Backend string `yaml:"backend"`
	// Command is the external viewer command line. Image paths are appended.
	Command string `yaml:"command"`
	// Size names a display preset such as "720p". It overrides MaxWidth and
	// MaxHeight when set.
	Size      string `yaml:"size"`
	MaxWidth  int    `yaml:"max_width"`
	MaxHeight int    `yaml:"max_height"`
}

// Bounds returns the largest size an image may be shown at.
func (v Viewer) Bounds() (width, height int) {
	if r, ok := images.ResolutionByName(v.Size); ok {
		return r.Width, r.Height
	}
	return v.MaxWidth, v.MaxHeight
}

// Render holds the annotation appearance.
type Render struct {
	Threshold     float64 `yaml:"threshold"`
	ClassAlpha    float64 `yaml:"class_alpha"`
	InstanceAlpha float64 `yaml:"instance_alpha"`
	BoxLineWidth  float64 `yaml:"box_line_width"`
	AxisLineWidth float64 `yaml:"axis_line_width"`
	FontSize      float64 `yaml:"font_size"`
}

// Colorize configures batch conversion of class maps.
type Colorize struct {
	Workers int `yaml:"workers"`
}

// Log configures the console logger.
type Log struct {
	Level string `yaml:"level"`
}

// Default returns the compiled-in settings.
func Default() *Config {
	return &Config{
		Viewer: Viewer{
			Backend:   BackendExec,
			Command:   "feh",
			MaxWidth:  1440,
			MaxHeight: 720,
		},
		Render: Render{
			Threshold:     90,
			ClassAlpha:    0.66,
			InstanceAlpha: 0.5,
			BoxLineWidth:  3,
			AxisLineWidth: 2,
			FontSize:      14,
		},
		Colorize: Colorize{Workers: 4},
		Log:      Log{Level: "info"},
	}
}

// Load reads path over the defaults. An empty path yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read config")
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrapf(err, "parse config %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrapf(err, "invalid config %s", path)
	}
	return cfg, nil
}

// Validate checks that every setting is usable.
func (c *Config) Validate() error {
	switch c.Viewer.Backend {
	case BackendExec:
		if c.Viewer.Command == "" {
			return errors.New("viewer.command must be set for the exec backend")
		}
	case BackendWindow:
	default:
		return errors.Errorf("unknown viewer.backend %q", c.Viewer.Backend)
	}
	if _, ok := images.ResolutionByName(c.Viewer.Size); c.Viewer.Size != "" && !ok {
		known := make([]string, 0, len(images.Resolutions()))
		for _, r := range images.Resolutions() {
			known = append(known, r.String())
		}
		return errors.Errorf("unknown viewer.size %q, expected one of: %s", c.Viewer.Size, strings.Join(known, ", "))
	}
	if c.Viewer.MaxWidth < 0 || c.Viewer.MaxHeight < 0 {
		return errors.New("viewer size limits must not be negative")
	}

	r := c.Render
	if r.Threshold < 0 || r.Threshold > 100 {
		return errors.Errorf("render.threshold %g outside [0, 100]", r.Threshold)
	}
	for name, a := range map[string]float64{"class_alpha": r.ClassAlpha, "instance_alpha": r.InstanceAlpha} {
		if a < 0 || a > 1 {
			return errors.Errorf("render.%s %g outside [0, 1]", name, a)
		}
	}
	if r.BoxLineWidth <= 0 || r.AxisLineWidth <= 0 || r.FontSize <= 0 {
		return errors.New("render line widths and font size must be positive")
	}

	if c.Colorize.Workers <= 0 {
		return errors.Errorf("colorize.workers must be positive, got %d", c.Colorize.Workers)
	}
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		return errors.Wrap(err, "log.level")
	}
	return nil
}
