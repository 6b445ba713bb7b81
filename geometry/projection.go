package geometry

import (
	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/mat"

	"github.com/nvr-ai/synscapes/metadata"
)

// Pinhole holds the projection parameters of the SynScapes camera. The
// sensor frame looks down +X with +Y to the left and +Z up.
type Pinhole struct {
	Fx, Fy float64
	U0, V0 float64
}

// NewPinhole copies the intrinsic parameters out of a metadata document.
func NewPinhole(in metadata.Intrinsic) Pinhole {
	return Pinhole{Fx: in.Fx, Fy: in.Fy, U0: in.U0, V0: in.V0}
}

// Projection is an image-plane position with the depth along the optical axis.
type Projection struct {
	U, V  float64
	Depth float64
}

// InFront reports whether the projected point lies ahead of the camera.
func (p Projection) InFront() bool {
	return p.Depth > 0
}

// ProjectSensor projects a point already expressed in the sensor frame.
// A point on the sensor plane (depth 0) yields infinite coordinates.
func (c Pinhole) ProjectSensor(s r3.Vector) Projection {
	return Projection{
		U:     -s.Y*c.Fx/s.X + c.U0,
		V:     -s.Z*c.Fy/s.X + c.V0,
		Depth: s.X,
	}
}

// Project maps a vehicle-space point through xform (see VehicleToSensor) and
// onto the image plane.
func (c Pinhole) Project(xform mat.Matrix, p r3.Vector) Projection {
	return c.ProjectSensor(Apply(xform, p))
}

// Camera bundles the intrinsics with the vehicle-to-sensor transform of one
// image.
type Camera struct {
	Pinhole
	VehicleToSensor *mat.Dense
}

// NewCamera builds a Camera from the calibration block of a metadata document.
func NewCamera(cam metadata.Camera) (*Camera, error) {
	xform, err := VehicleToSensor(cam.Extrinsic)
	if err != nil {
		return nil, err
	}
	return &Camera{Pinhole: NewPinhole(cam.Intrinsic), VehicleToSensor: xform}, nil
}

// Project maps a vehicle-space point onto the image plane.
func (c *Camera) Project(p r3.Vector) Projection {
	return c.Pinhole.Project(c.VehicleToSensor, p)
}
