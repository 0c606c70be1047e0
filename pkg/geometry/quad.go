package geometry

import (
	"github.com/polyfan/go-fan-raytracer/pkg/core"
	"github.com/polyfan/go-fan-raytracer/pkg/material"
)

// NewQuad builds a parallelogram from a corner and two side vectors as a
// pair of triangles sharing the corner-to-far-corner diagonal. The two
// halves wind in opposite directions, so their normals point to opposite
// sides; that is harmless because materials treat both sides of a surface
// symmetrically. Walls, floors and panel lights are all built from this.
func NewQuad(corner, u, v core.Vec3, mat material.Material) ([]*Triangle, error) {
	b := corner.Add(u)
	c := corner.Add(v)
	d := b.Add(v)

	first, err := NewTriangle(corner, b, d, mat)
	if err != nil {
		return nil, err
	}
	second, err := NewTriangle(corner, c, d, mat)
	if err != nil {
		return nil, err
	}

	return []*Triangle{first, second}, nil
}
