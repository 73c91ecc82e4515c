package renderer

import (
	"fmt"
	"image"

	"github.com/df07/go-sphere-raytracer/pkg/core"
	"github.com/df07/go-sphere-raytracer/pkg/geometry"
	"github.com/df07/go-sphere-raytracer/pkg/integrator"
)

// SamplingConfig contains rendering configuration
type SamplingConfig struct {
	SamplesPerPixel int // Number of rays per pixel
	MaxDepth        int // Maximum ray bounce depth
}

// DefaultSamplingConfig returns sensible default values
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		SamplesPerPixel: 100,
		MaxDepth:        50,
	}
}

// Merge returns c with every non-zero field of override applied
func (c SamplingConfig) Merge(override SamplingConfig) SamplingConfig {
	if override.SamplesPerPixel != 0 {
		c.SamplesPerPixel = override.SamplesPerPixel
	}
	if override.MaxDepth != 0 {
		c.MaxDepth = override.MaxDepth
	}
	return c
}

// Validate rejects configurations that cannot produce an image
func (c SamplingConfig) Validate() error {
	if c.SamplesPerPixel < 1 {
		return fmt.Errorf("samples per pixel must be positive, got %d", c.SamplesPerPixel)
	}
	if c.MaxDepth < 1 {
		return fmt.Errorf("max depth must be positive, got %d", c.MaxDepth)
	}
	return nil
}

// Scene interface to avoid circular imports
type Scene interface {
	GetCamera() *Camera
	GetWorld() geometry.Shape
	GetSamplingConfig() SamplingConfig
}

// Raytracer turns a scene into pixels. All of its state is read-only while
// rendering, so one Raytracer is shared by every worker.
type Raytracer struct {
	scene      Scene
	width      int
	height     int
	config     SamplingConfig
	integrator integrator.Integrator
	logger     core.Logger
}

// NewRaytracer creates a new raytracer using the scene's sampling configuration
func NewRaytracer(scene Scene, width, height int) *Raytracer {
	rt := &Raytracer{
		scene:  scene,
		width:  width,
		height: height,
		logger: core.NopLogger{},
	}
	rt.SetSamplingConfig(DefaultSamplingConfig().Merge(scene.GetSamplingConfig()))
	return rt
}

// SetSamplingConfig updates the sampling configuration
func (rt *Raytracer) SetSamplingConfig(config SamplingConfig) {
	rt.config = config
	rt.integrator = integrator.NewPathTracingIntegrator(config.MaxDepth)
}

// SetIntegrator replaces the light transport algorithm
func (rt *Raytracer) SetIntegrator(integratorInst integrator.Integrator) {
	rt.integrator = integratorInst
}

// SetLogger sets the destination for progress output
func (rt *Raytracer) SetLogger(logger core.Logger) {
	rt.logger = logger
}

// SamplingConfig returns the active sampling configuration
func (rt *Raytracer) SamplingConfig() SamplingConfig {
	return rt.config
}

// viewportDenominators returns the divisors mapping pixel indices to [0,1].
// A one-pixel dimension has no span, so its jitter alone covers the viewport.
func (rt *Raytracer) viewportDenominators() (float64, float64) {
	return float64(max(rt.width-1, 1)), float64(max(rt.height-1, 1))
}

// samplePixel accumulates SamplesPerPixel jittered samples for pixel (i, j),
// where j counts rows upward from the bottom of the image
func (rt *Raytracer) samplePixel(i, j int, sampler core.Sampler) PixelStats {
	camera := rt.scene.GetCamera()
	world := rt.scene.GetWorld()
	du, dv := rt.viewportDenominators()

	var ps PixelStats
	for sample := 0; sample < rt.config.SamplesPerPixel; sample++ {
		u := (float64(i) + sampler.Get1D()) / du
		v := (float64(j) + sampler.Get1D()) / dv

		ray := camera.GetRay(u, v)
		ps.AddSample(rt.integrator.RayColor(ray, world, sampler))
	}
	return ps
}

// RenderBounds renders the pixels inside bounds (raster coordinates, row 0 at
// the top) into fb. Raster row y shows world row height-1-y.
func (rt *Raytracer) RenderBounds(bounds image.Rectangle, fb *Framebuffer, sampler core.Sampler) RenderStats {
	stats := RenderStats{TotalPixels: bounds.Dx() * bounds.Dy(), Tiles: 1}

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		j := rt.height - 1 - y
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			ps := rt.samplePixel(x, j, sampler)
			fb.Set(x, y, ps.ToRGBA())
			stats.TotalSamples += ps.SampleCount
		}
	}

	return stats
}

// RenderPass renders the whole image on the calling goroutine. It walks the
// same tiles with the same per-tile random streams as Render, so both produce
// identical bytes.
func (rt *Raytracer) RenderPass(config RenderConfig) (*Framebuffer, RenderStats) {
	fb := NewFramebuffer(rt.width, rt.height)
	stats := RenderStats{Workers: 1}

	for _, tile := range NewTileGrid(rt.width, rt.height, config.TileSize) {
		stats.merge(rt.RenderBounds(tile.Bounds, fb, tile.Sampler(config.Seed)))
	}

	stats.finalize()
	return fb, stats
}
