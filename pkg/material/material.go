// Package material describes what light does at a surface: what the
// surface emits on its own and how much of an incoming ray it reflects
// toward an outgoing one. Implementations are pure functions of their
// stored color and the query vectors, so a single material value can be
// shared by any number of triangles and concurrent traces.
package material

import "github.com/polyfan/go-fan-raytracer/pkg/core"

// Material is the capability a triangle exposes to the tracer. New
// variants (mirror, glass) plug in here without touching the tracer.
type Material interface {
	// Emitted returns the light the surface radiates by itself.
	Emitted() core.Vec3

	// Reflected returns the per-channel weight applied to light arriving
	// along incoming and leaving along outgoing, given the surface normal.
	// Black means the pairing contributes nothing. Cosine falloff is the
	// caller's job, not the material's.
	Reflected(normal, incoming, outgoing core.Vec3) core.Vec3
}
