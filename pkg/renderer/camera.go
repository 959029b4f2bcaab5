package renderer

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// Camera turns normalized device coordinates into primary rays.
// ndc.X spans [-aspect, aspect] and ndc.Y spans [-1, 1] with +Y up.
type Camera interface {
	SampleRay(ndc, u core.Vec2) core.Ray
}

// cameraFrame is the orthonormal frame shared by both camera models
type cameraFrame struct {
	origin  core.Vec3
	forward core.Vec3
	right   core.Vec3
	up      core.Vec3
	focal   float64 // distance to the image plane for a unit half-height
}

func newCameraFrame(origin, lookAt core.Vec3, vfov float64) cameraFrame {
	forward := lookAt.Subtract(origin).Normalize()
	right := forward.Cross(core.NewVec3(0, 1, 0))
	if right.LengthSquared() < 1e-12 {
		// looking straight up or down
		right = core.NewVec3(1, 0, 0)
	}
	right = right.Normalize()
	up := right.Cross(forward).Normalize()

	return cameraFrame{
		origin:  origin,
		forward: forward,
		right:   right,
		up:      up,
		focal:   1 / math.Tan(vfov*math.Pi/360),
	}
}

// PinholeCamera is an ideal pinhole with vertical field of view in degrees
type PinholeCamera struct {
	frame cameraFrame
}

// NewPinholeCamera creates a pinhole camera at origin looking at lookAt
func NewPinholeCamera(origin, lookAt core.Vec3, vfov float64) *PinholeCamera {
	return &PinholeCamera{frame: newCameraFrame(origin, lookAt, vfov)}
}

// SampleRay implements Camera. The lens sample is ignored.
func (c *PinholeCamera) SampleRay(ndc, u core.Vec2) core.Ray {
	f := c.frame
	dir := f.right.Multiply(ndc.X).
		Add(f.up.Multiply(ndc.Y)).
		Add(f.forward.Multiply(f.focal))
	return core.NewRay(f.origin, dir.Normalize())
}

// ThinLensCamera adds depth of field. Points at FocusDistance along the
// view direction stay sharp; Aperture is the lens diameter.
type ThinLensCamera struct {
	frame         cameraFrame
	Aperture      float64
	FocusDistance float64
}

// NewThinLensCamera creates a thin lens camera. A zero aperture behaves like a pinhole.
func NewThinLensCamera(origin, lookAt core.Vec3, vfov, aperture, focusDistance float64) *ThinLensCamera {
	return &ThinLensCamera{
		frame:         newCameraFrame(origin, lookAt, vfov),
		Aperture:      aperture,
		FocusDistance: focusDistance,
	}
}

// SampleRay implements Camera. u picks a point on the lens disk.
func (c *ThinLensCamera) SampleRay(ndc, u core.Vec2) core.Ray {
	f := c.frame
	pinhole := f.right.Multiply(ndc.X).
		Add(f.up.Multiply(ndc.Y)).
		Add(f.forward.Multiply(f.focal))

	// the pinhole ray through the pixel meets the plane of focus at focus
	focus := f.origin.Add(pinhole.Multiply(c.FocusDistance / f.focal))

	disk := core.SamplePointInUnitDisk(u).Multiply(c.Aperture / 2)
	lens := f.origin.Add(f.right.Multiply(disk.X)).Add(f.up.Multiply(disk.Y))

	return core.NewRay(lens, focus.Subtract(lens).Normalize())
}
