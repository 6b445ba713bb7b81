package images

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"github.com/nfnt/resize"
	"github.com/pkg/errors"
)

// ClassAt reads the 8-bit class id stored at (x, y) of a class map.
func ClassAt(img image.Image, x, y int) int {
	if g, ok := img.(*image.Gray); ok {
		return int(g.GrayAt(x, y).Y)
	}
	return int(color.GrayModel.Convert(img.At(x, y)).(color.Gray).Y)
}

// InstanceAt reads the instance id stored at (x, y) of an instance map.
// 16-bit maps keep their full range.
func InstanceAt(img image.Image, x, y int) int {
	switch m := img.(type) {
	case *image.Gray:
		return int(m.GrayAt(x, y).Y)
	case *image.Gray16:
		return int(m.Gray16At(x, y).Y)
	default:
		return int(color.Gray16Model.Convert(img.At(x, y)).(color.Gray16).Y)
	}
}

// ColorizeClasses maps every pixel of a class id map to its palette colour.
//
// Arguments:
// - img: A class map, usually *image.Gray with one class id per pixel.
//
// Returns:
// - An opaque RGBA image of the same bounds.
func ColorizeClasses(img image.Image) *image.RGBA {
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	Parallel(b.Dy(), func(start, end int) {
		for y := start; y < end; y++ {
			for x := 0; x < b.Dx(); x++ {
				dst.SetRGBA(x, y, PaletteColor(ClassAt(img, b.Min.X+x, b.Min.Y+y)))
			}
		}
	})
	return dst
}

// ColorizeInstances maps every pixel of an instance map to a stable colour.
// Background pixels stay transparent.
func ColorizeInstances(img image.Image) *image.NRGBA {
	b := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	Parallel(b.Dy(), func(start, end int) {
		for y := start; y < end; y++ {
			for x := 0; x < b.Dx(); x++ {
				dst.SetNRGBA(x, y, InstanceColor(InstanceAt(img, b.Min.X+x, b.Min.Y+y)))
			}
		}
	})
	return dst
}

// Blend composites overlay on top of base at the given opacity. An overlay of
// a different size is scaled to base with nearest-neighbour sampling so that
// label boundaries are not smeared.
func Blend(base, overlay image.Image, alpha float64) (*image.NRGBA, error) {
	if alpha < 0 || alpha > 1 {
		return nil, errors.Errorf("overlay alpha %g outside [0, 1]", alpha)
	}
	bs := base.Bounds().Size()
	if overlay.Bounds().Size() != bs {
		overlay = resize.Resize(uint(bs.X), uint(bs.Y), overlay, resize.NearestNeighbor)
	}
	return imaging.Overlay(base, overlay, base.Bounds().Min, alpha), nil
}
