package renderer

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/polyfan/go-fan-raytracer/pkg/core"
	"github.com/polyfan/go-fan-raytracer/pkg/scene"
)

// Camera generates primary rays by a pinhole projection: each pixel's ray
// is the facing direction rotated by a per-pixel yaw about the up axis and
// pitch about the right axis, with the aperture angle spread across the
// image width.
type Camera struct {
	origin   core.Vec3
	facing   core.Vec3
	up       core.Vec3
	right    core.Vec3
	aperture float64 // Horizontal aperture angle in radians
}

// NewCamera creates a camera at origin looking along facing.
// apertureDegrees is the horizontal field of view.
func NewCamera(origin, facing, up core.Vec3, apertureDegrees float64) *Camera {
	facing = facing.Normalize()
	up = up.Normalize()

	return &Camera{
		origin:   origin,
		facing:   facing,
		up:       up,
		right:    facing.Cross(up).Normalize(),
		aperture: apertureDegrees * math.Pi / 180.0,
	}
}

// NewCameraFromView creates a camera for a scene view
func NewCameraFromView(v scene.View) *Camera {
	return NewCamera(v.Origin, v.Facing, v.Up, v.Aperture)
}

// Ray returns the primary ray for pixel (x, y) in a width×height image.
// Pixel (0,0) is the top-left corner; the image center looks exactly along
// the facing direction.
func (c *Camera) Ray(x, y, width, height int) core.Ray {
	pixelAngle := c.aperture / float64(width)

	yaw := (float64(x) - float64(width)/2) * pixelAngle
	pitch := (float64(y) - float64(height)/2) * pixelAngle

	q := mgl64.QuatRotate(-yaw, mgl64.Vec3{c.up.X, c.up.Y, c.up.Z}).
		Mul(mgl64.QuatRotate(-pitch, mgl64.Vec3{c.right.X, c.right.Y, c.right.Z}))
	d := q.Rotate(mgl64.Vec3{c.facing.X, c.facing.Y, c.facing.Z})

	return core.NewRay(c.origin, core.NewVec3(d.X(), d.Y(), d.Z()))
}
