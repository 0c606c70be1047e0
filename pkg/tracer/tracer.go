// Package tracer implements the deterministic light gather: every hit
// point branches into the same fixed fan of sample directions, recursing
// to a bounded depth. There is no randomness anywhere, so a scene always
// renders to the same image.
package tracer

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/polyfan/go-fan-raytracer/pkg/core"
	"github.com/polyfan/go-fan-raytracer/pkg/geometry"
	"github.com/polyfan/go-fan-raytracer/pkg/scene"
)

// Tracer holds the precomputed direction fan and the recursion bound.
// Construct once per render configuration; safe for concurrent use.
type Tracer struct {
	directions []core.Vec3
	maxDepth   int
}

// NewTracer creates a tracer with a rayCount² direction fan. The fan is
// built by stepping two Euler angles over [0°, 360°) in rayCount equal
// increments and rotating the reference direction (1,0,0), which spreads
// the directions over the whole sphere. Restricting to the hemisphere a
// surface can actually see happens per hit, through the material's
// same-side test, not here. Total work grows as (rayCount²)^maxDepth, so
// both parameters want to stay small.
func NewTracer(rayCount, maxDepth int) *Tracer {
	step := 2 * math.Pi / float64(rayCount)
	reference := mgl64.Vec3{1, 0, 0}

	directions := make([]core.Vec3, 0, rayCount*rayCount)
	for x := 0; x < rayCount; x++ {
		for y := 0; y < rayCount; y++ {
			// The Y rotation swings the reference around the equator, the
			// X rotation then tilts that circle; composed in this order the
			// X step is applied last, otherwise it would spin the reference
			// about its own axis and do nothing.
			q := mgl64.QuatRotate(float64(x)*step, mgl64.Vec3{1, 0, 0}).
				Mul(mgl64.QuatRotate(float64(y)*step, mgl64.Vec3{0, 1, 0}))
			d := q.Rotate(reference)
			directions = append(directions, core.NewVec3(d.X(), d.Y(), d.Z()))
		}
	}

	return &Tracer{
		directions: directions,
		maxDepth:   maxDepth,
	}
}

// Directions returns the sample direction fan
func (t *Tracer) Directions() []core.Vec3 {
	return t.directions
}

// MaxDepth returns the recursion bound
func (t *Tracer) MaxDepth() int {
	return t.maxDepth
}

// Trace gathers the light arriving along a primary ray. Rays that escape
// the scene contribute black; environment terms like a sun or sky are the
// renderer's business, layered outside this function.
func (t *Tracer) Trace(s *scene.Scene, ray core.Ray) core.Vec3 {
	return t.trace(s, ray, nil, 0)
}

// trace is the recursive gather. exclude carries the triangle the ray just
// left, so a bounce origin sitting exactly on that surface cannot re-hit
// it at distance zero.
func (t *Tracer) trace(s *scene.Scene, ray core.Ray, exclude *geometry.Triangle, depth int) core.Vec3 {
	if depth > t.maxDepth {
		return core.Vec3{}
	}

	hitPoint, triangle, ok := geometry.NearestHit(s.Triangles, ray, exclude)
	if !ok {
		return core.Vec3{}
	}

	normal := triangle.Normal()
	accumulated := triangle.Material.Emitted()

	for _, dir := range t.directions {
		reflected := triangle.Material.Reflected(normal, dir, ray.Direction)
		if reflected.IsZero() {
			// Wrong side of the surface, or the material absorbs this
			// pairing. Skipping here is what keeps the effective branching
			// factor below rayCount².
			continue
		}

		// Cosine falloff for light arriving along this direction
		lambert := math.Abs(dir.Dot(normal))

		bounce := core.NewRay(hitPoint, dir)
		incoming := t.trace(s, bounce, triangle, depth+1)

		accumulated = accumulated.Add(incoming.MultiplyVec(reflected).Multiply(lambert))
	}

	return accumulated
}
