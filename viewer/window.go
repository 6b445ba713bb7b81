package viewer

import (
	"context"

	"github.com/pkg/errors"
	"gocv.io/x/gocv"

	"github.com/nvr-ai/synscapes/images"
)

const keyEsc = 27

// Window shows images one at a time in an OpenCV window. Any key advances to
// the next image; q or Esc closes the window.
type Window struct {
	Title     string
	MaxWidth  int
	MaxHeight int
}

// Show blocks until every image was dismissed or the user quits.
func (w *Window) Show(ctx context.Context, paths ...string) error {
	if len(paths) == 0 {
		return nil
	}
	window := gocv.NewWindow(w.Title)
	defer window.Close()

	for _, p := range paths {
		if err := ctx.Err(); err != nil {
			return err
		}
		quit, err := w.showOne(window, p)
		if err != nil {
			return err
		}
		if quit {
			return nil
		}
	}
	return nil
}

func (w *Window) showOne(window *gocv.Window, path string) (bool, error) {
	img, err := images.Load(path)
	if err != nil {
		return false, err
	}
	mat, err := gocv.ImageToMatRGB(images.Fit(img, w.MaxWidth, w.MaxHeight))
	if err != nil {
		return false, errors.Wrapf(err, "convert %s", path)
	}
	defer mat.Close()

	window.SetWindowTitle(w.Title + " - " + path)
	window.IMShow(mat)
	key := window.WaitKey(0)
	return key == 'q' || key == keyEsc, nil
}
