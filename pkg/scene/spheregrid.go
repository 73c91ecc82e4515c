package scene

import (
	"math"

	"github.com/df07/go-sphere-raytracer/pkg/core"
	"github.com/df07/go-sphere-raytracer/pkg/geometry"
	"github.com/df07/go-sphere-raytracer/pkg/material"
	"github.com/df07/go-sphere-raytracer/pkg/renderer"
)

// oklchToRGB converts OKLCH color values to RGB
// L: lightness (0-1), C: chroma (0-0.4+), H: hue (0-360 degrees)
func oklchToRGB(l, c, h float64) core.Vec3 {
	hRad := h * math.Pi / 180.0

	// Convert from OKLCH to OKLAB
	a := c * math.Cos(hRad)
	b := c * math.Sin(hRad)

	// OKLAB to LMS
	l_ := l + 0.3963377774*a + 0.2158037573*b
	m_ := l - 0.1055613458*a - 0.0638541728*b
	s_ := l - 0.0894841775*a - 1.2914855480*b

	// Cube the values
	l_ = l_ * l_ * l_
	m_ = m_ * m_ * m_
	s_ = s_ * s_ * s_

	// Convert LMS to linear RGB
	r := +4.0767416621*l_ - 3.3077115913*m_ + 0.2309699292*s_
	g := -1.2684380046*l_ + 2.6097574011*m_ - 0.3413193965*s_
	blue := -0.0041960863*l_ - 0.7034186147*m_ + 1.7076147010*s_

	// Clamp to [0, 1] range
	r = math.Max(0, math.Min(1, r))
	g = math.Max(0, math.Min(1, g))
	blue = math.Max(0, math.Min(1, blue))

	return core.NewVec3(r, g, blue)
}

// NewSphereGridScene creates a scene with a grid of small spheres receding
// from the camera, alternating diffuse and mirror materials in a checkerboard
func NewSphereGridScene() *Scene {
	const (
		columns   = 9
		rows      = 6
		spacing   = 0.5
		radius    = 0.18
		groundY   = -0.5
		nearestZ  = -1.5
		lightness = 0.7
	)

	world := geometry.NewSurfaceList(
		geometry.NewSphere(core.NewVec3(0, groundY-100, -3), 100, material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))),
	)

	for row := 0; row < rows; row++ {
		for col := 0; col < columns; col++ {
			x := (float64(col) - float64(columns-1)/2) * spacing
			z := nearestZ - float64(row)*spacing
			center := core.NewVec3(x, groundY+radius, z)

			// Hue sweeps across columns, chroma grows with distance
			hue := float64(col) / float64(columns) * 360.0
			chroma := 0.05 + 0.2*float64(row)/float64(rows-1)
			albedo := oklchToRGB(lightness+0.05*math.Sin(float64(row+col)), chroma, hue)

			mat := material.NewLambertian(albedo)
			if (row+col)%2 == 1 {
				mat = material.NewMetal(albedo)
			}
			world.Add(geometry.NewSphere(center, radius, mat))
		}
	}

	return New("sphere-grid", DefaultWidth, DefaultHeight, world, renderer.SamplingConfig{
		SamplesPerPixel: 100,
		MaxDepth:        40,
	})
}
