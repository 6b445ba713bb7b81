package common

import (
	"image"
	"strconv"

	"github.com/nvr-ai/synscapes/metadata"
)

// ClassNames maps the SynScapes instance class ids to display names.
var ClassNames = map[int]string{
	24: "person",
	25: "rider",
	26: "car",
	27: "truck",
	28: "bus",
	31: "train",
	32: "motorcyclist",
	33: "bicyclist",
}

// ClassName returns the display name of a class id. Ids without a name
// render as "class <id>".
func ClassName(id int) string {
	if name, ok := ClassNames[id]; ok {
		return name
	}
	return "class " + strconv.Itoa(id)
}

// BoundingBox is a labelled 2D box in pixel coordinates.
type BoundingBox struct {
	Label          string
	Class          int
	X1, Y1, X2, Y2 float64
}

// FromNormalized scales a normalized metadata box to an image of size w x h.
//
// Arguments:
// - b: The box with coordinates in [0, 1].
// - class: The instance class id, used for the label.
// - w, h: Image dimensions in pixels.
//
// Returns:
// - The box in pixel coordinates.
//
// @example
// box := FromNormalized(metadata.BBox2D{XMin: 0.1, XMax: 0.3, YMin: 0.2, YMax: 0.6}, 26, 1440, 720)
// fmt.Println(box.X1, box.Y1, box.Width(), box.Height()) // 144 144 288 288
func FromNormalized(b metadata.BBox2D, class int, w, h float64) BoundingBox {
	return BoundingBox{
		Label: ClassName(class),
		Class: class,
		X1:    b.XMin * w,
		Y1:    b.YMin * h,
		X2:    b.XMax * w,
		Y2:    b.YMax * h,
	}
}

// Width is the horizontal extent in pixels.
func (b *BoundingBox) Width() float64 { return b.X2 - b.X1 }

// Height is the vertical extent in pixels.
func (b *BoundingBox) Height() float64 { return b.Y2 - b.Y1 }

// ToRect converts the bounding box to an image.Rectangle.
//
// This won't be entirely precise due to conversion to integral rectangles.
func (b *BoundingBox) ToRect() image.Rectangle {
	return image.Rect(int(b.X1), int(b.Y1), int(b.X2), int(b.Y2)).Canon()
}

// Cull reports whether an instance should be hidden. thresholdPercent is a
// percentage; occlusion and (when present) truncation are fractions.
func Cull(occluded, truncated float64, hasTruncation bool, thresholdPercent float64) bool {
	limit := thresholdPercent / 100
	if occluded > limit {
		return true
	}
	return hasTruncation && truncated > limit
}
