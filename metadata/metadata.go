// Package metadata decodes SynScapes per-image metadata documents and
// implements the filter/sort/subsample pipeline used for browsing.
package metadata

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"

	"github.com/pkg/errors"
	"github.com/spf13/cast"
)

// Metadata is the JSON document stored in meta/<idx>.json.
type Metadata struct {
	Scene    map[string]any `json:"scene"`
	Instance Instance       `json:"instance"`
	Camera   Camera         `json:"camera"`
}

// Instance holds per-instance annotations keyed by instance id.
type Instance struct {
	BBox2D    map[string]BBox2D  `json:"bbox2d"`
	BBox3D    map[string]BBox3D  `json:"bbox3d"`
	Class     map[string]int     `json:"class"`
	Occluded  map[string]float64 `json:"occluded"`
	Truncated map[string]float64 `json:"truncated"`
}

// BBox2D is an axis-aligned box in normalized image coordinates.
type BBox2D struct {
	XMin float64 `json:"xmin"`
	XMax float64 `json:"xmax"`
	YMin float64 `json:"ymin"`
	YMax float64 `json:"ymax"`
}

// BBox3D is an oriented box in vehicle space. X, Y and Z are edge vectors
// relative to Origin.
type BBox3D struct {
	Origin [3]float64 `json:"origin"`
	X      [3]float64 `json:"x"`
	Y      [3]float64 `json:"y"`
	Z      [3]float64 `json:"z"`
}

// Camera holds the sensor calibration for one image.
type Camera struct {
	Intrinsic Intrinsic `json:"intrinsic"`
	Extrinsic Extrinsic `json:"extrinsic"`
}

// Intrinsic are pinhole parameters in pixels.
type Intrinsic struct {
	Fx   float64 `json:"fx"`
	Fy   float64 `json:"fy"`
	U0   float64 `json:"u0"`
	V0   float64 `json:"v0"`
	ResX int     `json:"resx"`
	ResY int     `json:"resy"`
}

// Extrinsic is the sensor pose in vehicle space. Angles are in degrees.
type Extrinsic struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Z     float64 `json:"z"`
	Roll  float64 `json:"roll"`
	Pitch float64 `json:"pitch"`
	Yaw   float64 `json:"yaw"`
}

// SceneValue returns a scene field as a number.
func (m *Metadata) SceneValue(key string) (float64, error) {
	raw, ok := m.Scene[key]
	if !ok || raw == nil {
		return 0, errors.Errorf("scene field %q not present", key)
	}
	v, err := cast.ToFloat64E(raw)
	if err != nil {
		return 0, errors.Wrapf(err, "scene field %q", key)
	}
	return v, nil
}

// Occlusion returns the occluded and truncated fractions of an instance.
// hasTruncation is false when the document carries no truncation entry.
func (m *Metadata) Occlusion(id string) (occluded, truncated float64, hasTruncation bool) {
	occluded = m.Instance.Occluded[id]
	truncated, hasTruncation = m.Instance.Truncated[id]
	return occluded, truncated, hasTruncation
}

// Read decodes the metadata document for idx from dir.
func Read(dir string, idx int) (*Metadata, error) {
	path := filepath.Join(dir, strconv.Itoa(idx)+".json")
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open metadata")
	}
	defer f.Close()

	m := &Metadata{}
	if err := json.NewDecoder(f).Decode(m); err != nil {
		return nil, errors.Wrapf(err, "decode %s", path)
	}
	return m, nil
}

// ReadMany reads the documents for every index.
func ReadMany(dir string, indices []int) (map[int]*Metadata, error) {
	out := make(map[int]*Metadata, len(indices))
	for _, idx := range indices {
		if _, ok := out[idx]; ok {
			continue
		}
		m, err := Read(dir, idx)
		if err != nil {
			return nil, err
		}
		out[idx] = m
	}
	return out, nil
}
