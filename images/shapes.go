package images

import (
	"image"
	"image/color"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font/gofont/goregular"
)

var font *truetype.Font

// init sets up the font used for labels.
func init() {
	var err error
	font, err = truetype.Parse(goregular.TTF)
	if err != nil {
		panic(err)
	}
}

// labelPadding is the gap between label text and its background box.
const labelPadding = 3

// Canvas draws annotations on a copy of an image.
type Canvas struct {
	dc *gg.Context
}

// NewCanvas copies img into a drawable RGBA context.
func NewCanvas(img image.Image, fontSize float64) *Canvas {
	dc := gg.NewContextForImage(img)
	dc.SetFontFace(truetype.NewFace(font, &truetype.Options{Size: fontSize}))
	return &Canvas{dc: dc}
}

// Width of the canvas in pixels.
func (c *Canvas) Width() int { return c.dc.Width() }

// Height of the canvas in pixels.
func (c *Canvas) Height() int { return c.dc.Height() }

// Rectangle strokes an unfilled rectangle with its top-left corner at (x, y).
func (c *Canvas) Rectangle(x, y, w, h float64, col color.Color, width float64) {
	c.dc.SetColor(col)
	c.dc.SetLineWidth(width)
	c.dc.DrawRectangle(x, y, w, h)
	c.dc.Stroke()
}

// Line strokes a segment from (x1, y1) to (x2, y2).
func (c *Canvas) Line(x1, y1, x2, y2 float64, col color.Color, width float64) {
	c.dc.SetColor(col)
	c.dc.SetLineWidth(width)
	c.dc.DrawLine(x1, y1, x2, y2)
	c.dc.Stroke()
}

// Label writes text with its baseline at (x, y) over a box filled with bg.
func (c *Canvas) Label(text string, x, y float64, fg, bg color.Color) {
	w, h := c.dc.MeasureString(text)
	c.dc.SetColor(bg)
	c.dc.DrawRectangle(x-labelPadding, y-h-labelPadding, w+2*labelPadding, h+2*labelPadding)
	c.dc.Fill()

	c.dc.SetColor(fg)
	c.dc.DrawString(text, x, y)
}

// Image returns the drawn result.
func (c *Canvas) Image() image.Image {
	return c.dc.Image()
}
