// Package scene holds the immutable triangle collections the tracer runs
// against, plus the environment terms and camera views the renderer layers
// on top of it.
package scene

import (
	"fmt"

	"github.com/polyfan/go-fan-raytracer/pkg/core"
	"github.com/polyfan/go-fan-raytracer/pkg/geometry"
	"github.com/polyfan/go-fan-raytracer/pkg/material"
)

// Sun is a directional environment light. It is not part of the transport
// core: the renderer applies it only when a primary ray escapes the scene.
type Sun struct {
	Direction     core.Vec3 // Unit direction toward the sun
	Color         core.Vec3
	AngularRadius float64 // Half-angle of the sun disc in radians
}

// View is a named camera position for a scene
type View struct {
	Name     string
	Origin   core.Vec3
	Facing   core.Vec3
	Up       core.Vec3
	Aperture float64 // Horizontal aperture angle in degrees
}

// Scene contains all the elements needed for rendering. It is read-only
// during a render, so any number of traces may share it.
type Scene struct {
	Triangles  []*geometry.Triangle
	Background core.Vec3 // Color for primary rays that miss everything
	Sun        *Sun      // Optional directional environment light
	Views      []View
}

// Add appends triangles to the scene
func (s *Scene) Add(triangles ...*geometry.Triangle) {
	s.Triangles = append(s.Triangles, triangles...)
}

// AddTriangle builds a triangle and adds it to the scene
func (s *Scene) AddTriangle(v0, v1, v2 core.Vec3, mat material.Material) error {
	tri, err := geometry.NewTriangle(v0, v1, v2, mat)
	if err != nil {
		return err
	}
	s.Add(tri)
	return nil
}

// AddQuad builds a parallelogram from a corner and two side vectors and
// adds both of its triangles to the scene
func (s *Scene) AddQuad(corner, u, v core.Vec3, mat material.Material) error {
	quad, err := geometry.NewQuad(corner, u, v, mat)
	if err != nil {
		return err
	}
	s.Add(quad...)
	return nil
}

// ByName returns one of the canned scenes
func ByName(name string) (*Scene, error) {
	switch name {
	case "default":
		return NewDefaultScene(), nil
	case "lightbox":
		return NewLightboxScene(), nil
	}
	return nil, fmt.Errorf("scene: unknown scene %q", name)
}

// Names lists the canned scenes
func Names() []string {
	return []string{"default", "lightbox"}
}

// mustTriangle wraps NewTriangle for compiled-in scene data, where a
// degenerate triangle is a programming error.
func mustTriangle(v0, v1, v2 core.Vec3, mat material.Material) *geometry.Triangle {
	tri, err := geometry.NewTriangle(v0, v1, v2, mat)
	if err != nil {
		panic(err)
	}
	return tri
}
