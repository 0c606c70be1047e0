package material

import "github.com/polyfan/go-fan-raytracer/pkg/core"

// Matte represents a perfectly diffuse opaque reflector
type Matte struct {
	Albedo core.Vec3 // Base color/reflectance
}

// NewMatte creates a new matte material
func NewMatte(albedo core.Vec3) *Matte {
	return &Matte{Albedo: albedo}
}

// Emitted implements the Material interface; matte surfaces emit nothing
func (m *Matte) Emitted() core.Vec3 {
	return core.Vec3{}
}

// Reflected returns the albedo when the incoming and outgoing rays sit on
// opposite sides of the surface, black otherwise. A grazing incoming ray
// (exactly perpendicular to the normal) reflects nothing. The comparisons
// are exact, matching the intersection code.
func (m *Matte) Reflected(normal, incoming, outgoing core.Vec3) core.Vec3 {
	v := incoming.Dot(normal)
	if v == 0 {
		// Incoming ray grazes the surface
		return core.Vec3{}
	}

	if outgoing.Dot(normal)/v > 0 {
		// Rays are on the same side of the surface
		return core.Vec3{}
	}

	return m.Albedo
}
