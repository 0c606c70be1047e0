package geometry

import (
	"errors"
	"math"
	"testing"

	"github.com/polyfan/go-fan-raytracer/pkg/core"
	"github.com/polyfan/go-fan-raytracer/pkg/material"
)

func TestNewQuad(t *testing.T) {
	corner := core.NewVec3(-1, 0, -1)
	u := core.NewVec3(2, 0, 0)
	v := core.NewVec3(0, 0, 2)

	quad, err := NewQuad(corner, u, v, material.NewMatte(core.NewVec3(0.4, 0.4, 0.4)))
	if err != nil {
		t.Fatalf("NewQuad: %v", err)
	}
	if len(quad) != 2 {
		t.Fatalf("Expected 2 triangles, got %d", len(quad))
	}

	// Both halves lie in the quad's plane
	const tolerance = 1e-12
	for i, tri := range quad {
		if math.Abs(math.Abs(tri.Normal().Y)-1) > tolerance {
			t.Errorf("Triangle %d: expected normal along Y, got %v", i, tri.Normal())
		}
	}

	// A vertical ray through each half must hit exactly one of the two
	// triangles: (0.5,-0.5) is on the u-side half, (-0.5,0.5) on the v-side.
	for _, target := range []core.Vec3{
		core.NewVec3(0.5, 0, -0.5),
		core.NewVec3(-0.5, 0, 0.5),
	} {
		ray := core.NewRay(core.NewVec3(target.X, 5, target.Z), core.NewVec3(0, -1, 0))
		hits := 0
		for _, tri := range quad {
			if _, ok := tri.Hit(ray); ok {
				hits++
			}
		}
		if hits != 1 {
			t.Errorf("Expected exactly 1 hit through %v, got %d", target, hits)
		}
	}

	// The shared diagonal is covered (both triangles report the on-edge hit)
	diag := core.NewRay(core.NewVec3(0, 5, 0), core.NewVec3(0, -1, 0))
	hits := 0
	for _, tri := range quad {
		if _, ok := tri.Hit(diag); ok {
			hits++
		}
	}
	if hits != 2 {
		t.Errorf("Expected both halves to claim the shared diagonal, got %d", hits)
	}
}

func TestNewQuad_Degenerate(t *testing.T) {
	// Parallel side vectors span no area
	_, err := NewQuad(
		core.NewVec3(0, 0, 0),
		core.NewVec3(1, 0, 0),
		core.NewVec3(2, 0, 0),
		material.NewMatte(core.NewVec3(1, 1, 1)),
	)
	if !errors.Is(err, ErrDegenerateGeometry) {
		t.Errorf("Expected ErrDegenerateGeometry, got %v", err)
	}
}
