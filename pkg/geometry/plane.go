package geometry

import "github.com/polyfan/go-fan-raytracer/pkg/core"

// Plane is the normal/offset form of the infinite plane containing a
// triangle: Offset = Normal · p for every point p on the plane.
type Plane struct {
	Normal core.Vec3 // Unit surface normal
	Offset float64   // Signed distance from the origin along the normal
}

// newPlane derives the plane spanned by three points. The normal follows
// the winding order of the points, so it also decides which side of the
// triangle is front-facing. Collinear points produce a zero normal, which
// NewTriangle rejects.
func newPlane(v0, v1, v2 core.Vec3) Plane {
	n := v1.Subtract(v0).Cross(v2.Subtract(v0)).Normalize()
	return Plane{Normal: n, Offset: n.Dot(v0)}
}
