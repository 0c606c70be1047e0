package geometry

import (
	"errors"

	"github.com/polyfan/go-fan-raytracer/pkg/core"
	"github.com/polyfan/go-fan-raytracer/pkg/material"
)

// ErrDegenerateGeometry is returned when a triangle's vertices are
// collinear and no face normal exists.
var ErrDegenerateGeometry = errors.New("geometry: degenerate triangle")

// Triangle represents a single flat triangle defined by three vertices.
// Immutable after construction; identity (pointer value) distinguishes
// triangles during traversal, not geometry.
type Triangle struct {
	Vertices [3]core.Vec3      // The three vertices, winding order fixes the front face
	Plane    Plane             // Cached containing plane
	Material material.Material // Material of the triangle
}

// Hit contains the transient result of one ray-triangle intersection test
type Hit struct {
	Point    core.Vec3 // Point of intersection
	Distance float64   // Parameter t along the ray
}

// NewTriangle creates a new triangle from three vertices, precomputing its
// plane. Collinear vertices are rejected with ErrDegenerateGeometry rather
// than letting a zero-length normal poison later intersection math.
func NewTriangle(v0, v1, v2 core.Vec3, mat material.Material) (*Triangle, error) {
	if v1.Subtract(v0).Cross(v2.Subtract(v0)).IsZero() {
		return nil, ErrDegenerateGeometry
	}

	return &Triangle{
		Vertices: [3]core.Vec3{v0, v1, v2},
		Plane:    newPlane(v0, v1, v2),
		Material: mat,
	}, nil
}

// Normal returns the triangle's unit face normal
func (t *Triangle) Normal() core.Vec3 {
	return t.Plane.Normal
}

// Hit tests if a ray intersects the triangle. The comparisons against
// zero are exact: a ray lying in the plane never hits, and a hit exactly at
// the ray origin is rejected. Points exactly on an edge count as inside.
func (t *Triangle) Hit(ray core.Ray) (Hit, bool) {
	n := t.Plane.Normal

	denom := n.Dot(ray.Direction)
	if denom == 0 {
		// Ray is parallel to the plane
		return Hit{}, false
	}

	// Signed distance along the ray to the plane
	d := (t.Plane.Offset - n.Dot(ray.Origin)) / denom
	if d <= 0 {
		// Plane is behind the ray
		return Hit{}, false
	}

	p := ray.At(d)

	// Same-side containment: the candidate point must lie on the normal's
	// side of all three edge half-planes.
	for i := 0; i < 3; i++ {
		edge := t.Vertices[(i+1)%3].Subtract(t.Vertices[i])
		c := p.Subtract(t.Vertices[i])

		if n.Dot(edge.Cross(c)) < 0 {
			return Hit{}, false
		}
	}

	return Hit{Point: p, Distance: d}, true
}

// NearestHit finds the closest triangle hit by the ray via a linear scan.
// exclude skips one triangle by identity, so a bounce ray whose origin sits
// exactly on a surface cannot immediately re-hit it. Ties on distance go to
// the earlier triangle in the slice.
func NearestHit(triangles []*Triangle, ray core.Ray, exclude *Triangle) (core.Vec3, *Triangle, bool) {
	var closest Hit
	var closestTriangle *Triangle

	for _, tri := range triangles {
		if tri == exclude {
			continue
		}

		hit, ok := tri.Hit(ray)
		if !ok {
			continue
		}

		if closestTriangle == nil || closest.Distance > hit.Distance {
			closest = hit
			closestTriangle = tri
		}
	}

	if closestTriangle == nil {
		return core.Vec3{}, nil, false
	}
	return closest.Point, closestTriangle, true
}
