package geometry

import (
	"testing"

	"github.com/golang/geo/r3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nvr-ai/synscapes/metadata"
)

func testCamera(t *testing.T) *Camera {
	t.Helper()
	cam, err := NewCamera(metadata.Camera{
		Intrinsic: metadata.Intrinsic{Fx: 1000, Fy: 1000, U0: 720, V0: 360},
		Extrinsic: metadata.Extrinsic{X: 1.7, Y: 0.1, Z: 1.22},
	})
	require.NoError(t, err)
	return cam
}

func TestProjectOpticalAxis(t *testing.T) {
	cam := testCamera(t)

	p := cam.Project(r3.Vector{X: 11.7, Y: 0.1, Z: 1.22})
	assert.InDelta(t, 720, p.U, eps)
	assert.InDelta(t, 360, p.V, eps)
	assert.InDelta(t, 10, p.Depth, eps)
	assert.True(t, p.InFront())
}

func TestProjectLeftAndUp(t *testing.T) {
	cam := testCamera(t)

	// One metre left and up at ten metres lands up-left of the principal point.
	p := cam.Project(r3.Vector{X: 11.7, Y: 1.1, Z: 2.22})
	assert.InDelta(t, 620, p.U, eps)
	assert.InDelta(t, 260, p.V, eps)
}

func TestProjectBehindCamera(t *testing.T) {
	cam := testCamera(t)
	p := cam.Project(r3.Vector{X: -5, Y: 0.1, Z: 1.22})
	assert.False(t, p.InFront())
	assert.Less(t, p.Depth, 0.0)
}

func TestProjectSensorMatchesFormula(t *testing.T) {
	c := Pinhole{Fx: 1590.83, Fy: 1592.79, U0: 771.31, V0: 360.79}
	s := r3.Vector{X: 23.5, Y: -3.25, Z: 0.75}
	p := c.ProjectSensor(s)
	assert.InDelta(t, -s.Y*c.Fx/s.X+c.U0, p.U, eps)
	assert.InDelta(t, -s.Z*c.Fy/s.X+c.V0, p.V, eps)
	assert.InDelta(t, s.X, p.Depth, eps)
}
