package common

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nvr-ai/synscapes/metadata"
)

func TestFromNormalized(t *testing.T) {
	box := FromNormalized(metadata.BBox2D{XMin: 0.1, XMax: 0.3, YMin: 0.2, YMax: 0.6}, 26, 1440, 720)

	assert.Equal(t, "car", box.Label)
	assert.InDelta(t, 144, box.X1, 1e-9)
	assert.InDelta(t, 144, box.Y1, 1e-9)
	assert.InDelta(t, 288, box.Width(), 1e-9)
	assert.InDelta(t, 288, box.Height(), 1e-9)
	assert.Equal(t, image.Rect(144, 144, 432, 432), box.ToRect())
}

// ToRect is used to place labels on screen, so reversed corners must not
// produce an empty rectangle.
func TestToRectCanonical(t *testing.T) {
	box := BoundingBox{X1: 50, Y1: 40, X2: 10, Y2: 20}
	assert.Equal(t, image.Rect(10, 20, 50, 40), box.ToRect())
}

func TestClassName(t *testing.T) {
	assert.Equal(t, "person", ClassName(24))
	assert.Equal(t, "bicyclist", ClassName(33))
	assert.Equal(t, "class 29", ClassName(29))
}

func TestCull(t *testing.T) {
	tests := []struct {
		name          string
		occluded      float64
		truncated     float64
		hasTruncation bool
		threshold     float64
		want          bool
	}{
		{"visible", 0.2, 0, true, 90, false},
		{"at threshold is kept", 0.9, 0, true, 90, false},
		{"occluded", 0.95, 0, true, 90, true},
		{"truncated", 0.1, 0.95, true, 90, true},
		{"truncation absent", 0.1, 0.95, false, 90, false},
		{"zero threshold", 0.01, 0, false, 0, true},
		{"hundred keeps all", 1, 1, true, 100, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Cull(tt.occluded, tt.truncated, tt.hasTruncation, tt.threshold))
		})
	}
}
