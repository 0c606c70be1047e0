package main

import (
	"testing"

	"github.com/polyfan/go-fan-raytracer/pkg/renderer"
	"github.com/polyfan/go-fan-raytracer/pkg/scene"
	"github.com/polyfan/go-fan-raytracer/pkg/tracer"
)

func TestPickView(t *testing.T) {
	s := scene.NewDefaultScene()

	view, err := pickView(s, "")
	if err != nil {
		t.Fatalf("pickView default: %v", err)
	}
	if view.Name != s.Views[0].Name {
		t.Errorf("Expected the first view %q, got %q", s.Views[0].Name, view.Name)
	}

	view, err = pickView(s, "back")
	if err != nil {
		t.Fatalf("pickView back: %v", err)
	}
	if view.Name != "back" {
		t.Errorf("Expected view back, got %q", view.Name)
	}

	if _, err := pickView(s, "sideways"); err == nil {
		t.Error("Expected an error for an unknown view")
	}
}

func TestRenderQuad(t *testing.T) {
	s := scene.NewDefaultScene()
	const width, height = 8, 6
	r := renderer.NewRenderer(s, tracer.NewTracer(2, 1), renderer.Config{
		Width:  width,
		Height: height,
	}, nil)

	img := renderQuad(r, s, width, height)

	bounds := img.Bounds()
	if bounds.Dx() != 2*width+1 || bounds.Dy() != 2*height+1 {
		t.Fatalf("Expected %dx%d composite, got %dx%d",
			2*width+1, 2*height+1, bounds.Dx(), bounds.Dy())
	}

	// The divider lines stay white
	for _, p := range []struct{ x, y int }{
		{x: width, y: 0},
		{x: width, y: 2 * height},
		{x: 0, y: height},
		{x: 2 * width, y: height},
	} {
		r32, g32, b32, _ := img.At(p.x, p.y).RGBA()
		if r32 != 0xffff || g32 != 0xffff || b32 != 0xffff {
			t.Errorf("Expected white divider at (%d,%d)", p.x, p.y)
		}
	}
}
