package scene

import (
	"math"

	"github.com/polyfan/go-fan-raytracer/pkg/core"
	"github.com/polyfan/go-fan-raytracer/pkg/material"
)

// NewDefaultScene creates the default scene: four colored matte triangles
// floating above a grey floor, lit by a directional sun. The four views
// circle the same geometry so the composite render shows it from every
// side.
func NewDefaultScene() *Scene {
	s := &Scene{
		Background: core.NewVec3(0, 0, 0),
		Sun: &Sun{
			Direction:     core.NewVec3(1, 1, 1).Normalize(),
			Color:         core.NewVec3(1, 1, 1),
			AngularRadius: 30.0 * math.Pi / 180.0,
		},
	}

	s.Add(
		mustTriangle(
			core.NewVec3(2, 1, -8), core.NewVec3(0, 0, -10), core.NewVec3(-1, 1, -9),
			material.NewMatte(core.NewVec3(0.5, 0.02, 0.02)),
		),
		mustTriangle(
			core.NewVec3(1, 1, -12), core.NewVec3(0, 3, -8), core.NewVec3(-3, -3, -8),
			material.NewMatte(core.NewVec3(0.02, 0.02, 0.5)),
		),
		mustTriangle(
			core.NewVec3(2, 0, -8), core.NewVec3(2, 0, -15), core.NewVec3(1.5, -3, -15),
			material.NewMatte(core.NewVec3(0.02, 0.5, 0.02)),
		),
		mustTriangle(
			core.NewVec3(-2, -1, -2), core.NewVec3(-1, 2, -12), core.NewVec3(1.5, -2, -5),
			material.NewMatte(core.NewVec3(0.4, 0.4, 0.02)),
		),
	)

	// Floor
	grey := material.NewMatte(core.NewVec3(0.4, 0.4, 0.4))
	s.Add(
		mustTriangle(
			core.NewVec3(-50, -5, 50), core.NewVec3(-50, -5, -50), core.NewVec3(50, -5, -50),
			grey,
		),
		mustTriangle(
			core.NewVec3(50, -5, -50), core.NewVec3(50, -5, 50), core.NewVec3(-50, -5, 50),
			grey,
		),
	)

	up := core.NewVec3(0, 1, 0)
	s.Views = []View{
		{Name: "front", Origin: core.NewVec3(0, 0, 10), Facing: core.NewVec3(0, 0, -1), Up: up, Aperture: 30},
		{Name: "back", Origin: core.NewVec3(0, 0, -25), Facing: core.NewVec3(0, 0, 1), Up: up, Aperture: 30},
		{Name: "right", Origin: core.NewVec3(20, 0, -10), Facing: core.NewVec3(-1, 0, 0), Up: up, Aperture: 30},
		{Name: "left", Origin: core.NewVec3(-20, 0, -10), Facing: core.NewVec3(1, 0, 0), Up: up, Aperture: 30},
	}

	return s
}
