// Package viewer displays images on screen, either by handing them to an
// external program or in an OpenCV window.
package viewer

import (
	"context"
	"image"
	"os"

	"github.com/pkg/errors"

	"github.com/nvr-ai/synscapes/config"
	"github.com/nvr-ai/synscapes/images"
)

// Viewer shows a sequence of images and returns once the user is done.
type Viewer interface {
	Show(ctx context.Context, paths ...string) error
}

// New builds the viewer selected by cfg.
func New(cfg config.Viewer) (Viewer, error) {
	switch cfg.Backend {
	case config.BackendExec, "":
		command := cfg.Command
		if command == "" {
			command = DefaultCommand
		}
		return NewExec(command)
	case config.BackendWindow:
		w, h := cfg.Bounds()
		return &Window{Title: "synscapes", MaxWidth: w, MaxHeight: h}, nil
	default:
		return nil, errors.Errorf("unknown viewer backend %q", cfg.Backend)
	}
}

// ShowImage writes img to a temporary PNG, shows it with v and removes the
// file afterwards.
func ShowImage(ctx context.Context, v Viewer, img image.Image) error {
	f, err := os.CreateTemp("", "synscapes-*.png")
	if err != nil {
		return errors.Wrap(err, "create temporary image")
	}
	path := f.Name()
	f.Close()
	defer os.Remove(path)

	if err := images.Save(img, path); err != nil {
		return err
	}
	return v.Show(ctx, path)
}
