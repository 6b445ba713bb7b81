package images

import (
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// ClassPalette is the Cityscapes colour of each class id 0..33.
var ClassPalette = []color.RGBA{
	{0, 0, 0, 255},
	{0, 0, 0, 255},
	{0, 0, 0, 255},
	{0, 0, 0, 255},
	{0, 0, 0, 255},
	{111, 74, 0, 255},
	{81, 0, 81, 255},
	{128, 64, 128, 255},
	{244, 35, 232, 255},
	{250, 170, 160, 255},
	{230, 150, 140, 255},
	{70, 70, 70, 255},
	{102, 102, 156, 255},
	{190, 153, 153, 255},
	{180, 165, 180, 255},
	{150, 100, 100, 255},
	{150, 120, 90, 255},
	{153, 153, 153, 255},
	{153, 153, 153, 255},
	{250, 170, 30, 255},
	{220, 220, 0, 255},
	{107, 142, 35, 255},
	{152, 251, 152, 255},
	{70, 130, 180, 255},
	{220, 20, 60, 255},
	{255, 0, 0, 255},
	{0, 0, 142, 255},
	{0, 0, 70, 255},
	{0, 60, 100, 255},
	{0, 0, 90, 255},
	{0, 0, 110, 255},
	{0, 80, 100, 255},
	{0, 0, 230, 255},
	{119, 11, 32, 255},
}

var tableau20Hex = []string{
	"#1f77b4", "#aec7e8", "#ff7f0e", "#ffbb78", "#2ca02c",
	"#98df8a", "#d62728", "#ff9896", "#9467bd", "#c5b0d5",
	"#8c564b", "#c49c94", "#e377c2", "#f7b6d2", "#7f7f7f",
	"#c7c7c7", "#bcbd22", "#dbdb8d", "#17becf", "#9edae5",
}

// Tableau20 is the categorical palette used for annotation boxes.
var Tableau20 = func() []color.RGBA {
	out := make([]color.RGBA, len(tableau20Hex))
	for i, hex := range tableau20Hex {
		c, err := colorful.Hex(hex)
		if err != nil {
			panic(err)
		}
		r, g, b := c.RGB255()
		out[i] = color.RGBA{r, g, b, 255}
	}
	return out
}()

// PaletteColor returns the class palette colour for id. Ids past the end of
// the palette clamp to its last entry.
func PaletteColor(id int) color.RGBA {
	if id < 0 {
		id = 0
	}
	if id >= len(ClassPalette) {
		id = len(ClassPalette) - 1
	}
	return ClassPalette[id]
}

// ClassColor is the box colour for a class id, tableau20[id % 20].
func ClassColor(id int) color.RGBA {
	if id < 0 {
		id = -id
	}
	return Tableau20[id%len(Tableau20)]
}

// goldenAngle spreads consecutive instance ids around the hue circle.
const goldenAngle = 137.50776405003785

// InstanceColor is a stable colour for an instance id. Id 0 is background and
// fully transparent.
func InstanceColor(id int) color.NRGBA {
	if id == 0 {
		return color.NRGBA{}
	}
	h := math.Mod(float64(id)*goldenAngle, 360)
	r, g, b := colorful.Hsv(h, 0.75, 0.95).Clamped().RGB255()
	return color.NRGBA{r, g, b, 255}
}

// WithAlpha returns c with its alpha channel set to a in [0, 1].
func WithAlpha(c color.Color, a float64) color.NRGBA {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	n.A = uint8(Clamp(a, 0, 1)*255 + 0.5)
	return n
}

// Gray is an opaque gray level in [0, 1].
func Gray(level float64) color.RGBA {
	v := uint8(Clamp(level, 0, 1)*255 + 0.5)
	return color.RGBA{v, v, v, 255}
}
