package material

import "github.com/polyfan/go-fan-raytracer/pkg/core"

// Light represents a pure emitter
type Light struct {
	Emission core.Vec3 // Emitted light color/intensity
}

// NewLight creates a new light-emitting material
func NewLight(emission core.Vec3) *Light {
	return &Light{Emission: emission}
}

// Emitted returns the emitted light for this material
func (l *Light) Emitted() core.Vec3 {
	return l.Emission
}

// Reflected implements the Material interface. Lights don't reflect - they
// only emit, so the tracer never recurses past one.
func (l *Light) Reflected(normal, incoming, outgoing core.Vec3) core.Vec3 {
	return core.Vec3{}
}
