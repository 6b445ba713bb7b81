package metadata

import (
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleDoc = `{
  "scene": {"ego_speed": 12.5, "num_cars": 3, "road_material_type": "2", "sky_contrast": null},
  "instance": {
    "bbox2d": {"5": {"xmin": 0.1, "xmax": 0.3, "ymin": 0.2, "ymax": 0.6}},
    "bbox3d": {"5": {"origin": [10, 1, 0], "x": [4, 0, 0], "y": [0, 2, 0], "z": [0, 0, 1.5]}},
    "class": {"5": 26},
    "occluded": {"5": 0.25},
    "truncated": {"5": 0.0}
  },
  "camera": {
    "intrinsic": {"fx": 1590.83, "fy": 1592.79, "u0": 771.31, "v0": 360.79, "resx": 1440, "resy": 720},
    "extrinsic": {"x": 1.7, "y": 0.1, "z": 1.22, "roll": 0, "pitch": 0.5, "yaw": 0}
  }
}`

func TestRead(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "4.json"), []byte(sampleDoc), 0o644))

	m, err := Read(dir, 4)
	require.NoError(t, err)

	assert.Equal(t, 26, m.Instance.Class["5"])
	assert.Equal(t, BBox2D{XMin: 0.1, XMax: 0.3, YMin: 0.2, YMax: 0.6}, m.Instance.BBox2D["5"])
	assert.Equal(t, [3]float64{10, 1, 0}, m.Instance.BBox3D["5"].Origin)
	assert.Equal(t, 1440, m.Camera.Intrinsic.ResX)
	assert.InDelta(t, 0.5, m.Camera.Extrinsic.Pitch, 1e-9)

	occ, trunc, ok := m.Occlusion("5")
	assert.InDelta(t, 0.25, occ, 1e-9)
	assert.Zero(t, trunc)
	assert.True(t, ok)

	_, _, ok = m.Occlusion("99")
	assert.False(t, ok)
}

func TestReadErrors(t *testing.T) {
	dir := t.TempDir()
	_, err := Read(dir, 1)
	assert.Error(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "2.json"), []byte("{"), 0o644))
	_, err = Read(dir, 2)
	assert.ErrorContains(t, err, "decode")
}

func TestSceneValue(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "0.json"), []byte(sampleDoc), 0o644))
	m, err := Read(dir, 0)
	require.NoError(t, err)

	tests := []struct {
		key     string
		want    float64
		wantErr bool
	}{
		{key: "ego_speed", want: 12.5},
		{key: "num_cars", want: 3},
		{key: "road_material_type", want: 2},
		{key: "sky_contrast", wantErr: true},
		{key: "wall_height", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			v, err := m.SceneValue(tt.key)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.want, v, 1e-9)
		})
	}
}

func TestReadMany(t *testing.T) {
	dir := t.TempDir()
	for _, idx := range []int{1, 2} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, strconv.Itoa(idx)+".json"), []byte(sampleDoc), 0o644))
	}
	records, err := ReadMany(dir, []int{1, 2, 1})
	require.NoError(t, err)
	assert.Len(t, records, 2)

	_, err = ReadMany(dir, []int{1, 3})
	assert.Error(t, err)
}
