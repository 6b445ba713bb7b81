package viewer

import (
	"context"
	"image"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nvr-ai/synscapes/config"
)

type recordingViewer struct {
	paths  []string
	exists bool
}

func (r *recordingViewer) Show(_ context.Context, paths ...string) error {
	r.paths = append(r.paths, paths...)
	_, err := os.Stat(paths[0])
	r.exists = err == nil
	return nil
}

func TestNewExecParsesCommand(t *testing.T) {
	e, err := NewExec(`feh -F --title "SynScapes %f"`)
	require.NoError(t, err)
	assert.Equal(t, "feh", e.Name)
	assert.Equal(t, []string{"-F", "--title", "SynScapes %f"}, e.Args)

	cmd := e.Command(context.Background(), "/data/img rgb/1.png", "/data/2.png")
	assert.Equal(t, []string{"feh", "-F", "--title", "SynScapes %f", "/data/img rgb/1.png", "/data/2.png"}, cmd.Args)

	_, err = NewExec("   ")
	assert.Error(t, err)
	_, err = NewExec(`feh "unterminated`)
	assert.Error(t, err)
}

func TestExecShow(t *testing.T) {
	ok, err := NewExec("true")
	require.NoError(t, err)
	assert.NoError(t, ok.Show(context.Background(), "a.png"))
	assert.NoError(t, ok.Show(context.Background()))

	fail, err := NewExec("false")
	require.NoError(t, err)
	assert.Error(t, fail.Show(context.Background(), "a.png"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.Error(t, ok.Show(ctx, "a.png"))
}

func TestNewSelectsBackend(t *testing.T) {
	v, err := New(config.Default().Viewer)
	require.NoError(t, err)
	assert.IsType(t, &Exec{}, v)

	v, err = New(config.Viewer{Backend: config.BackendWindow, MaxWidth: 640, MaxHeight: 480})
	require.NoError(t, err)
	require.IsType(t, &Window{}, v)
	assert.Equal(t, 640, v.(*Window).MaxWidth)

	v, err = New(config.Viewer{Backend: config.BackendWindow, Size: "1080p"})
	require.NoError(t, err)
	assert.Equal(t, 1080, v.(*Window).MaxHeight)

	_, err = New(config.Viewer{Backend: "hologram"})
	assert.Error(t, err)
}

func TestWindowWithoutImagesIsNoop(t *testing.T) {
	w := &Window{Title: "test"}
	assert.NoError(t, w.Show(context.Background()))
}

func TestShowImageUsesTemporaryFile(t *testing.T) {
	rec := &recordingViewer{}
	require.NoError(t, ShowImage(context.Background(), rec, image.NewRGBA(image.Rect(0, 0, 4, 4))))
	require.Len(t, rec.paths, 1)
	assert.True(t, rec.exists, "image exists while shown")
	_, err := os.Stat(rec.paths[0])
	assert.True(t, os.IsNotExist(err), "image removed afterwards")
}
