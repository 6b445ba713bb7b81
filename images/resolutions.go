package images

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// Resolution is a named display size used to bound on-screen images.
type Resolution struct {
	Name   string
	Width  int
	Height int
}

// MegaPixels returns the pixel count in millions, rounded to two decimals.
func (r Resolution) MegaPixels() float64 {
	if r.Width <= 0 || r.Height <= 0 {
		return 0
	}
	return math.Round(float64(r.Width*r.Height)/1_000_000*100) / 100
}

// String returns a human-readable summary of the resolution.
func (r Resolution) String() string {
	return fmt.Sprintf("%s (%dx%d, %.2fMP)", r.Name, r.Width, r.Height, r.MegaPixels())
}

// resolutions are keyed by lower-case name.
var resolutions = map[string]Resolution{
	"nhd":       {Name: "nHD", Width: 640, Height: 360},
	"qhd540":    {Name: "qHD540", Width: 960, Height: 540},
	"720p":      {Name: "720p", Width: 1280, Height: 720},
	"synscapes": {Name: "synscapes", Width: 1440, Height: 720},
	"hd+":       {Name: "HD+", Width: 1600, Height: 900},
	"1080p":     {Name: "1080p", Width: 1920, Height: 1080},
	"1440p":     {Name: "1440p", Width: 2560, Height: 1440},
	"4k":        {Name: "4K", Width: 3840, Height: 2160},
}

// Resolutions returns every preset ordered by pixel count.
func Resolutions() []Resolution {
	all := make([]Resolution, 0, len(resolutions))
	for _, r := range resolutions {
		all = append(all, r)
	}
	sort.Slice(all, func(i, j int) bool {
		return all[i].Width*all[i].Height < all[j].Width*all[j].Height
	})
	return all
}

// ResolutionByName looks up a preset, ignoring case.
func ResolutionByName(name string) (Resolution, bool) {
	r, ok := resolutions[strings.ToLower(name)]
	return r, ok
}
