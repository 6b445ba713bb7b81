package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "synscapes.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "feh", cfg.Viewer.Command)
	assert.Equal(t, 90.0, cfg.Render.Threshold)
	assert.Equal(t, 0.66, cfg.Render.ClassAlpha)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
viewer:
  backend: window
  max_width: 800
render:
  threshold: 50
log:
  level: debug
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, BackendWindow, cfg.Viewer.Backend)
	assert.Equal(t, 800, cfg.Viewer.MaxWidth)
	assert.Equal(t, 720, cfg.Viewer.MaxHeight)
	assert.Equal(t, 50.0, cfg.Render.Threshold)
	assert.Equal(t, 3.0, cfg.Render.BoxLineWidth)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := map[string]string{
		"backend":   "viewer:\n  backend: vr\n",
		"command":   "viewer:\n  command: \"\"\n",
		"threshold": "render:\n  threshold: 150\n",
		"alpha":     "render:\n  class_alpha: 2\n",
		"width":     "render:\n  box_line_width: 0\n",
		"workers":   "colorize:\n  workers: 0\n",
		"level":     "log:\n  level: loud\n",
		"size":      "viewer:\n  size: imax\n",
		"yaml":      "viewer: [",
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeConfig(t, body))
			assert.Error(t, err)
		})
	}

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestUnknownSizeListsPresets(t *testing.T) {
	cfg := Default()
	cfg.Viewer.Size = "imax"
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "720p (1280x720, 0.92MP)")
	assert.Contains(t, err.Error(), "synscapes (1440x720, 1.04MP)")
}

func TestViewerBounds(t *testing.T) {
	v := Default().Viewer
	w, h := v.Bounds()
	assert.Equal(t, 1440, w)
	assert.Equal(t, 720, h)

	v.Size = "720p"
	w, h = v.Bounds()
	assert.Equal(t, 1280, w)
	assert.Equal(t, 720, h)
}
