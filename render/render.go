// Package render draws SynScapes annotations over an RGB image.
package render

import (
	"image"
	"image/color"
	"sort"
	"strconv"

	"github.com/golang/geo/r3"
	"github.com/pkg/errors"

	"github.com/nvr-ai/synscapes/common"
	"github.com/nvr-ai/synscapes/geometry"
	"github.com/nvr-ai/synscapes/images"
	"github.com/nvr-ai/synscapes/metadata"
)

// Kind selects what is drawn over the RGB image.
type Kind string

const (
	Kind2D       Kind = "2d"
	Kind3D       Kind = "3d"
	KindClass    Kind = "class"
	KindInstance Kind = "instance"
)

// Kinds lists every supported visualization.
var Kinds = []Kind{Kind2D, Kind3D, KindClass, KindInstance}

// ParseKind validates a visualization name.
func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds {
		if string(k) == s {
			return k, nil
		}
	}
	return "", errors.Errorf("unknown visualization type %q", s)
}

// NeedsAux reports whether k overlays a label map rather than boxes.
func (k Kind) NeedsAux() bool {
	return k == KindClass || k == KindInstance
}

// Options control the appearance of a rendering.
type Options struct {
	Kind Kind
	// Threshold is the occlusion/truncation percentage above which
	// instances are culled.
	Threshold float64
	// DarkText draws labels in black instead of light grey.
	DarkText bool
	// FullBox draws all twelve edges of 3D boxes instead of the three axes.
	FullBox bool

	BoxLineWidth  float64
	AxisLineWidth float64
	FontSize      float64
	ClassAlpha    float64
	InstanceAlpha float64
}

// DefaultOptions returns the stock appearance for k.
func DefaultOptions(k Kind) Options {
	return Options{
		Kind:          k,
		Threshold:     90,
		BoxLineWidth:  3,
		AxisLineWidth: 2,
		FontSize:      14,
		ClassAlpha:    0.66,
		InstanceAlpha: 0.5,
	}
}

// labelAlpha is the opacity of the coloured box behind each label.
const labelAlpha = 0.5

func (o Options) textColor() color.Color {
	if o.DarkText {
		return color.Black
	}
	return images.Gray(0.9)
}

// Render draws the annotations of meta over base. aux is the class or
// instance map and is only read for those kinds.
func Render(base image.Image, meta *metadata.Metadata, aux image.Image, opts Options) (image.Image, error) {
	switch opts.Kind {
	case Kind2D:
		return draw2D(base, meta, opts), nil
	case Kind3D:
		return draw3D(base, meta, opts)
	case KindClass:
		if aux == nil {
			return nil, errors.New("class visualization needs a class map")
		}
		return images.Blend(base, images.ColorizeClasses(aux), opts.ClassAlpha)
	case KindInstance:
		if aux == nil {
			return nil, errors.New("instance visualization needs an instance map")
		}
		return images.Blend(base, images.ColorizeInstances(aux), opts.InstanceAlpha)
	default:
		return nil, errors.Errorf("unknown visualization type %q", opts.Kind)
	}
}

// instanceIDs returns the keys of m in numeric order so that overlapping
// boxes are drawn deterministically.
func instanceIDs[V any](m map[string]V) []string {
	ids := make([]string, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		a, errA := strconv.Atoi(ids[i])
		b, errB := strconv.Atoi(ids[j])
		if errA != nil || errB != nil {
			return ids[i] < ids[j]
		}
		return a < b
	})
	return ids
}

func culled(meta *metadata.Metadata, id string, threshold float64) bool {
	occ, trunc, hasTrunc := meta.Occlusion(id)
	return common.Cull(occ, trunc, hasTrunc, threshold)
}

func draw2D(base image.Image, meta *metadata.Metadata, opts Options) image.Image {
	canvas := images.NewCanvas(base, opts.FontSize)
	w, h := float64(canvas.Width()), float64(canvas.Height())
	bounds := image.Rect(0, 0, canvas.Width(), canvas.Height())

	for _, id := range instanceIDs(meta.Instance.BBox2D) {
		if culled(meta, id, opts.Threshold) {
			continue
		}
		class := meta.Instance.Class[id]
		box := common.FromNormalized(meta.Instance.BBox2D[id], class, w, h)
		// Labels of boxes truncated by the image border stay on screen.
		visible := box.ToRect().Intersect(bounds)
		if visible.Empty() {
			continue
		}
		c := images.ClassColor(class)

		canvas.Rectangle(box.X1, box.Y1, box.Width(), box.Height(), c, opts.BoxLineWidth)
		canvas.Label(box.Label, float64(visible.Min.X), float64(visible.Min.Y)-2, opts.textColor(), images.WithAlpha(c, labelAlpha))
	}
	return canvas.Image()
}

// boxEdges are corner index pairs of a parallelepiped whose corner i is
// origin + (i&1)·X + (i>>1&1)·Y + (i>>2&1)·Z.
var boxEdges = [12][2]int{
	{0, 1}, {0, 2}, {0, 4},
	{1, 3}, {1, 5}, {2, 3},
	{2, 6}, {4, 5}, {4, 6},
	{3, 7}, {5, 7}, {6, 7},
}

var (
	// axisCorners are the origin and the tips of the X, Y and Z edges.
	axisCorners = [4]int{0, 1, 2, 4}
	allCorners  = [8]int{0, 1, 2, 3, 4, 5, 6, 7}
)

func inFront(px [8]geometry.Projection, corners []int) bool {
	for _, i := range corners {
		if !px[i].InFront() {
			return false
		}
	}
	return true
}

func vec(a [3]float64) r3.Vector {
	return r3.Vector{X: a[0], Y: a[1], Z: a[2]}
}

// Corners returns the eight vehicle-space corners of b.
func Corners(b metadata.BBox3D) [8]r3.Vector {
	o, x, y, z := vec(b.Origin), vec(b.X), vec(b.Y), vec(b.Z)
	var out [8]r3.Vector
	for i := range out {
		p := o
		if i&1 != 0 {
			p = p.Add(x)
		}
		if i&2 != 0 {
			p = p.Add(y)
		}
		if i&4 != 0 {
			p = p.Add(z)
		}
		out[i] = p
	}
	return out
}

func draw3D(base image.Image, meta *metadata.Metadata, opts Options) (image.Image, error) {
	cam, err := geometry.NewCamera(meta.Camera)
	if err != nil {
		return nil, err
	}
	canvas := images.NewCanvas(base, opts.FontSize)

	for _, id := range instanceIDs(meta.Instance.BBox3D) {
		if culled(meta, id, opts.Threshold) {
			continue
		}
		corners := Corners(meta.Instance.BBox3D[id])
		var px [8]geometry.Projection
		for i, p := range corners {
			px[i] = cam.Project(p)
		}
		drawn := axisCorners[:]
		if opts.FullBox {
			drawn = allCorners[:]
		}
		// Points behind the camera would project mirrored.
		if !inFront(px, drawn) {
			continue
		}

		class := meta.Instance.Class[id]
		c := images.ClassColor(class)
		if opts.FullBox {
			for _, e := range boxEdges {
				canvas.Line(px[e[0]].U, px[e[0]].V, px[e[1]].U, px[e[1]].V, c, opts.AxisLineWidth)
			}
		} else {
			o := px[0]
			for _, tip := range []geometry.Projection{px[1], px[2], px[4]} {
				canvas.Line(o.U, o.V, tip.U, tip.V, c, opts.AxisLineWidth)
			}
		}
		canvas.Label(common.ClassName(class), px[0].U+2, px[0].V-2, opts.textColor(), images.WithAlpha(c, labelAlpha))
	}
	return canvas.Image(), nil
}
