package images

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"github.com/nfnt/resize"
	"github.com/pkg/errors"
)

// ContactSheet tiles thumbnails of the images at paths into a grid.
//
// Arguments:
// - paths: Image files, laid out row-major in the order given.
// - columns: Number of thumbnails per row.
// - thumbWidth: Width of every thumbnail; height follows the aspect ratio.
//
// Returns:
// - The sheet, black where a cell is shorter than the tallest thumbnail.
// - error: If paths is empty, a dimension is not positive or an image fails to load.
func ContactSheet(paths []string, columns, thumbWidth int) (*image.NRGBA, error) {
	if len(paths) == 0 {
		return nil, errors.New("no images for contact sheet")
	}
	if columns <= 0 || thumbWidth <= 0 {
		return nil, errors.Errorf("invalid sheet geometry: %d columns of width %d", columns, thumbWidth)
	}

	thumbs := make([]image.Image, len(paths))
	cellHeight := 0
	for i, p := range paths {
		img, err := Load(p)
		if err != nil {
			return nil, err
		}
		thumbs[i] = resize.Resize(uint(thumbWidth), 0, img, resize.Lanczos3)
		cellHeight = max(cellHeight, thumbs[i].Bounds().Dy())
	}

	columns = min(columns, len(paths))
	rows := (len(paths) + columns - 1) / columns
	sheet := imaging.New(columns*thumbWidth, rows*cellHeight, color.Black)
	for i, thumb := range thumbs {
		pos := image.Pt((i%columns)*thumbWidth, (i/columns)*cellHeight)
		sheet = imaging.Paste(sheet, thumb, pos)
	}
	return sheet, nil
}

// Fit scales img down to fit within maxWidth x maxHeight, keeping its aspect
// ratio. Images that already fit are returned unchanged.
func Fit(img image.Image, maxWidth, maxHeight int) image.Image {
	if maxWidth <= 0 || maxHeight <= 0 {
		return img
	}
	return resize.Thumbnail(uint(maxWidth), uint(maxHeight), img, resize.Bilinear)
}
