// Package geometry maps vehicle-space points onto the image plane of the
// SynScapes camera.
package geometry

import (
	"math"

	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"

	"github.com/nvr-ai/synscapes/metadata"
)

// RotationFromEuler returns the 4x4 homogeneous rotation R = Rz·Ry·Rx for
// roll (x), pitch (y) and yaw (z) in radians.
func RotationFromEuler(roll, pitch, yaw float64) *mat.Dense {
	cr, sr := math.Cos(roll), math.Sin(roll)
	cp, sp := math.Cos(pitch), math.Sin(pitch)
	cy, sy := math.Cos(yaw), math.Sin(yaw)

	rx := mat.NewDense(3, 3, []float64{
		1, 0, 0,
		0, cr, -sr,
		0, sr, cr,
	})
	ry := mat.NewDense(3, 3, []float64{
		cp, 0, sp,
		0, 1, 0,
		-sp, 0, cp,
	})
	rz := mat.NewDense(3, 3, []float64{
		cy, -sy, 0,
		sy, cy, 0,
		0, 0, 1,
	})

	var ryx, r mat.Dense
	ryx.Mul(ry, rx)
	r.Mul(rz, &ryx)

	r4 := identity4()
	r4.Slice(0, 3, 0, 3).(*mat.Dense).Copy(&r)
	return r4
}

// Translation returns the 4x4 homogeneous translation by t.
func Translation(t r3.Vector) *mat.Dense {
	m := identity4()
	m.Set(0, 3, t.X)
	m.Set(1, 3, t.Y)
	m.Set(2, 3, t.Z)
	return m
}

// SensorToVehicle is the sensor pose T·R built from the camera extrinsics.
func SensorToVehicle(ext metadata.Extrinsic) *mat.Dense {
	r := RotationFromEuler(radians(ext.Roll), radians(ext.Pitch), radians(ext.Yaw))
	t := Translation(r3.Vector{X: ext.X, Y: ext.Y, Z: ext.Z})
	var tr mat.Dense
	tr.Mul(t, r)
	return &tr
}

// VehicleToSensor inverts the sensor pose so that vehicle-space points can be
// expressed in the sensor frame.
func VehicleToSensor(ext metadata.Extrinsic) (*mat.Dense, error) {
	var inv mat.Dense
	if err := inv.Inverse(SensorToVehicle(ext)); err != nil {
		return nil, errors.Wrap(err, "invert sensor pose")
	}
	return &inv, nil
}

// Apply transforms p by the homogeneous matrix m.
func Apply(m mat.Matrix, p r3.Vector) r3.Vector {
	h := mat.NewVecDense(4, []float64{p.X, p.Y, p.Z, 1})
	var out mat.VecDense
	out.MulVec(m, h)
	return r3.Vector{X: out.AtVec(0), Y: out.AtVec(1), Z: out.AtVec(2)}
}

func identity4() *mat.Dense {
	m := mat.NewDense(4, 4, nil)
	for i := 0; i < 4; i++ {
		m.Set(i, i, 1)
	}
	return m
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
