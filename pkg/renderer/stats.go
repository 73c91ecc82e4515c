package renderer

import (
	"image/color"
	"math"
	"time"

	"github.com/df07/go-sphere-raytracer/pkg/core"
)

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels    int           // Total number of pixels rendered
	TotalSamples   int           // Total number of samples taken
	AverageSamples float64       // Average samples per pixel
	Tiles          int           // Number of tiles rendered
	Workers        int           // Number of workers used
	Elapsed        time.Duration // Wall time of the render
}

// merge folds the counts of a tile into the running totals
func (s *RenderStats) merge(other RenderStats) {
	s.TotalPixels += other.TotalPixels
	s.TotalSamples += other.TotalSamples
	s.Tiles += other.Tiles
}

// finalize calculates derived statistics after all pixels are rendered
func (s *RenderStats) finalize() {
	if s.TotalPixels > 0 {
		s.AverageSamples = float64(s.TotalSamples) / float64(s.TotalPixels)
	}
}

// PixelStats accumulates radiance samples for a single pixel
type PixelStats struct {
	ColorAccum  core.Color // RGB accumulator
	SampleCount int        // Number of samples taken
}

// AddSample adds a new color sample to the pixel statistics
func (ps *PixelStats) AddSample(c core.Color) {
	ps.ColorAccum.AddAssign(c)
	ps.SampleCount++
}

// GetColor returns the current average color for this pixel
func (ps *PixelStats) GetColor() core.Color {
	if ps.SampleCount == 0 {
		return core.Vec3{X: 0, Y: 0, Z: 0}
	}
	return ps.ColorAccum.Divide(float64(ps.SampleCount))
}

// ToRGBA gamma-corrects the average color and quantizes it to 8 bits per channel
func (ps *PixelStats) ToRGBA() color.RGBA {
	avg := ps.GetColor()
	return color.RGBA{
		R: quantize(avg.X),
		G: quantize(avg.Y),
		B: quantize(avg.Z),
		A: 255,
	}
}

// quantize applies gamma 2 (square root) and maps [0, 0.999] onto 0..255.
// A NaN channel, from a degenerate ray or a negative input, becomes 0.
func quantize(linear float64) uint8 {
	encoded := math.Sqrt(linear)
	if math.IsNaN(encoded) {
		return 0
	}
	return uint8(max(0, min(0.999, encoded)) * 256)
}
