package images

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolutionByName(t *testing.T) {
	r, ok := ResolutionByName("SynScapes")
	assert.True(t, ok)
	assert.Equal(t, 1440, r.Width)
	assert.Equal(t, 720, r.Height)
	assert.Equal(t, 1.04, r.MegaPixels())
	assert.Equal(t, "synscapes (1440x720, 1.04MP)", r.String())

	_, ok = ResolutionByName("VGA")
	assert.False(t, ok)
	assert.Zero(t, Resolution{}.MegaPixels())
}

func TestResolutionsOrdered(t *testing.T) {
	all := Resolutions()
	assert.Len(t, all, len(resolutions))
	for i := 1; i < len(all); i++ {
		assert.LessOrEqual(t, all[i-1].Width*all[i-1].Height, all[i].Width*all[i].Height)
	}
}
