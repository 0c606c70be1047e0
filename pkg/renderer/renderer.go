package renderer

import (
	"image"
	"image/color"
	"io"
	"log"
	"math"
	"runtime"
	"sync"
	"time"

	"github.com/polyfan/go-fan-raytracer/pkg/core"
	"github.com/polyfan/go-fan-raytracer/pkg/geometry"
	"github.com/polyfan/go-fan-raytracer/pkg/scene"
	"github.com/polyfan/go-fan-raytracer/pkg/tracer"
)

// Config contains rendering configuration
type Config struct {
	Width      int     // Image width in pixels
	Height     int     // Image height in pixels
	NumWorkers int     // Parallel workers; 0 means runtime.NumCPU()
	Gamma      float64 // Gamma for the color mapping; 0 means 2.0
}

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	Width       int
	Height      int
	Workers     int
	PrimaryRays int
	Elapsed     time.Duration
}

// Renderer drives one full pass over the image: a primary ray per pixel
// through the tracer, environment terms on misses, then the color mapping
// to 8-bit RGBA. The tracer and scene are read-only during a render, so
// rows are rendered in parallel without locking.
type Renderer struct {
	scene  *scene.Scene
	tracer *tracer.Tracer
	config Config
	logger core.Logger
}

// NewRenderer creates a renderer. A nil logger silences progress output.
func NewRenderer(s *scene.Scene, t *tracer.Tracer, config Config, logger core.Logger) *Renderer {
	if config.NumWorkers <= 0 {
		config.NumWorkers = runtime.NumCPU()
	}
	if config.Gamma == 0 {
		config.Gamma = 2.0
	}
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	return &Renderer{
		scene:  s,
		tracer: t,
		config: config,
		logger: logger,
	}
}

// Render renders one full image from the given camera
func (r *Renderer) Render(camera *Camera) (*image.RGBA, RenderStats) {
	start := time.Now()
	img := image.NewRGBA(image.Rect(0, 0, r.config.Width, r.config.Height))

	r.logger.Printf("Rendering %dx%d with %d workers, %d sample directions, max depth %d",
		r.config.Width, r.config.Height, r.config.NumWorkers,
		len(r.tracer.Directions()), r.tracer.MaxDepth())

	rows := make(chan int, r.config.Height)
	for y := 0; y < r.config.Height; y++ {
		rows <- y
	}
	close(rows)

	var wg sync.WaitGroup
	for w := 0; w < r.config.NumWorkers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for y := range rows {
				r.renderRow(img, camera, y)
			}
		}()
	}
	wg.Wait()

	stats := RenderStats{
		Width:       r.config.Width,
		Height:      r.config.Height,
		Workers:     r.config.NumWorkers,
		PrimaryRays: r.config.Width * r.config.Height,
		Elapsed:     time.Since(start),
	}
	r.logger.Printf("Render completed in %v (%d primary rays)", stats.Elapsed, stats.PrimaryRays)

	return img, stats
}

// renderRow renders a single row of pixels. Rows are disjoint, so workers
// write to the image without synchronization.
func (r *Renderer) renderRow(img *image.RGBA, camera *Camera, y int) {
	for x := 0; x < r.config.Width; x++ {
		ray := camera.Ray(x, y, r.config.Width, r.config.Height)
		img.SetRGBA(x, y, r.vec3ToColor(r.pixelColor(ray)))
	}
}

// pixelColor computes the color for one primary ray. The transport core
// returns black for rays that escape the scene; the environment terms
// (sun, background) are applied here, outside it, and only for primary
// rays.
func (r *Renderer) pixelColor(ray core.Ray) core.Vec3 {
	if _, _, ok := geometry.NearestHit(r.scene.Triangles, ray, nil); !ok {
		return r.skyColor(ray)
	}
	return r.tracer.Trace(r.scene, ray)
}

// skyColor returns the environment color for an escaped primary ray
func (r *Renderer) skyColor(ray core.Ray) core.Vec3 {
	sun := r.scene.Sun
	if sun == nil {
		return r.scene.Background
	}

	if ray.Direction.Normalize().Dot(sun.Direction) > math.Cos(sun.AngularRadius) {
		return sun.Color
	}
	return r.scene.Background
}

// vec3ToColor converts a Vec3 color to RGBA with gamma correction and clamping
func (r *Renderer) vec3ToColor(colorVec core.Vec3) color.RGBA {
	colorVec = colorVec.GammaCorrect(r.config.Gamma)
	colorVec = colorVec.Clamp(0.0, 1.0)

	return color.RGBA{
		R: uint8(255 * colorVec.X),
		G: uint8(255 * colorVec.Y),
		B: uint8(255 * colorVec.Z),
		A: 255,
	}
}
