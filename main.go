package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/polyfan/go-fan-raytracer/pkg/renderer"
	"github.com/polyfan/go-fan-raytracer/pkg/scene"
	"github.com/polyfan/go-fan-raytracer/pkg/tracer"
)

func main() {
	sceneName := flag.String("scene", "default", "Scene to render: "+strings.Join(scene.Names(), ", "))
	viewName := flag.String("view", "", "Camera view to render (default: the scene's first view)")
	quad := flag.Bool("quad", false, "Render the scene's first four views as one composite image")
	rays := flag.Int("rays", 6, "Fan resolution; each bounce samples rays*rays directions")
	depth := flag.Int("depth", 3, "Maximum bounce depth")
	width := flag.Int("width", 500, "Image width in pixels")
	height := flag.Int("height", 300, "Image height in pixels")
	workers := flag.Int("workers", 0, "Parallel workers (0 = all CPUs)")
	outputDir := flag.String("output", "output", "Output directory")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		fmt.Println("Fan Raytracer")
		fmt.Println("Usage: fan-raytracer [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Output will be saved to <output>/<scene>/render_<timestamp>.png")
		return
	}

	if *rays <= 0 || *depth < 0 {
		log.Fatal("rays must be positive and depth non-negative")
	}

	logger := log.New(os.Stdout, "", log.LstdFlags)

	s, err := scene.ByName(*sceneName)
	if err != nil {
		log.Fatal(err)
	}

	t := tracer.NewTracer(*rays, *depth)
	r := renderer.NewRenderer(s, t, renderer.Config{
		Width:      *width,
		Height:     *height,
		NumWorkers: *workers,
	}, logger)

	var img image.Image
	if *quad {
		img = renderQuad(r, s, *width, *height)
	} else {
		view, err := pickView(s, *viewName)
		if err != nil {
			log.Fatal(err)
		}
		img, _ = r.Render(renderer.NewCameraFromView(view))
	}

	dir := filepath.Join(*outputDir, *sceneName)
	if err := os.MkdirAll(dir, 0755); err != nil {
		log.Fatalf("Error creating output directory: %v", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	filename := filepath.Join(dir, fmt.Sprintf("render_%s.png", timestamp))

	file, err := os.Create(filename)
	if err != nil {
		log.Fatalf("Error creating file: %v", err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		log.Fatalf("Error saving PNG: %v", err)
	}

	logger.Printf("Render saved as %s", filename)
}

// pickView selects a named view, defaulting to the scene's first
func pickView(s *scene.Scene, name string) (scene.View, error) {
	if name == "" {
		return s.Views[0], nil
	}
	for _, v := range s.Views {
		if v.Name == name {
			return v, nil
		}
	}
	return scene.View{}, fmt.Errorf("scene has no view %q", name)
}

// renderQuad renders up to four views of the scene into one composite
// image, separated by one-pixel white dividers.
func renderQuad(r *renderer.Renderer, s *scene.Scene, width, height int) image.Image {
	views := s.Views
	if len(views) > 4 {
		views = views[:4]
	}

	img := image.NewRGBA(image.Rect(0, 0, 2*width+1, 2*height+1))
	white := &image.Uniform{C: color.RGBA{R: 255, G: 255, B: 255, A: 255}}
	draw.Draw(img, image.Rect(0, height, 2*width+1, height+1), white, image.Point{}, draw.Src)
	draw.Draw(img, image.Rect(width, 0, width+1, 2*height+1), white, image.Point{}, draw.Src)

	// Quadrant order: top-left, bottom-left, top-right, bottom-right
	offsets := []image.Point{
		{X: 0, Y: 0},
		{X: 0, Y: height + 1},
		{X: width + 1, Y: 0},
		{X: width + 1, Y: height + 1},
	}

	for i, view := range views {
		pane, _ := r.Render(renderer.NewCameraFromView(view))
		rect := image.Rectangle{Min: offsets[i], Max: offsets[i].Add(image.Point{X: width, Y: height})}
		draw.Draw(img, rect, pane, image.Point{}, draw.Src)
	}

	return img
}
