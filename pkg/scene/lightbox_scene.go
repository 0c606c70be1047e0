package scene

import (
	"github.com/polyfan/go-fan-raytracer/pkg/core"
	"github.com/polyfan/go-fan-raytracer/pkg/material"
)

// NewLightboxScene creates a closed box with colored side walls and a
// single emissive ceiling panel. Nothing else lights it, so every matte
// surface the camera sees is lit purely by bounces that reach the panel.
func NewLightboxScene() *Scene {
	s := &Scene{
		Background: core.NewVec3(0, 0, 0),
	}

	white := material.NewMatte(core.NewVec3(0.73, 0.73, 0.73))
	red := material.NewMatte(core.NewVec3(0.65, 0.05, 0.05))
	green := material.NewMatte(core.NewVec3(0.12, 0.45, 0.15))

	// Box interior spans x,y in [-2,2], z in [-7,-3]; the front face is
	// left open for the camera.
	mustQuad(s, core.NewVec3(-2, -2, -3), core.NewVec3(4, 0, 0), core.NewVec3(0, 0, -4), white) // floor
	mustQuad(s, core.NewVec3(-2, 2, -3), core.NewVec3(4, 0, 0), core.NewVec3(0, 0, -4), white)  // ceiling
	mustQuad(s, core.NewVec3(-2, -2, -7), core.NewVec3(4, 0, 0), core.NewVec3(0, 4, 0), white)  // back wall
	mustQuad(s, core.NewVec3(-2, -2, -3), core.NewVec3(0, 0, -4), core.NewVec3(0, 4, 0), red)   // left wall
	mustQuad(s, core.NewVec3(2, -2, -3), core.NewVec3(0, 0, -4), core.NewVec3(0, 4, 0), green)  // right wall

	// Ceiling panel, dropped just below the ceiling so it cannot be
	// coplanar with it.
	panel := material.NewLight(core.NewVec3(4, 4, 4))
	mustQuad(s, core.NewVec3(-1, 1.95, -4.5), core.NewVec3(2, 0, 0), core.NewVec3(0, 0, -1), panel)

	s.Views = []View{
		{
			Name:     "front",
			Origin:   core.NewVec3(0, 0, 2),
			Facing:   core.NewVec3(0, 0, -1),
			Up:       core.NewVec3(0, 1, 0),
			Aperture: 45,
		},
	}

	return s
}

func mustQuad(s *Scene, corner, u, v core.Vec3, mat material.Material) {
	if err := s.AddQuad(corner, u, v, mat); err != nil {
		panic(err)
	}
}
