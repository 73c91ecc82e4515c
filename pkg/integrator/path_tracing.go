package integrator

import (
	"github.com/df07/go-sphere-raytracer/pkg/core"
	"github.com/df07/go-sphere-raytracer/pkg/geometry"
)

// Intersection bounds for every traced ray. The lower bound keeps a scattered
// ray from re-hitting the surface it starts on.
const (
	TMin = 0.001
	TMax = 1e7
)

var (
	black   = core.NewVec3(0, 0, 0)
	white   = core.NewVec3(1, 1, 1)
	skyBlue = core.NewVec3(0.5, 0.7, 1.0)
)

// PathTracingIntegrator implements unidirectional path tracing with a fixed bounce cap
type PathTracingIntegrator struct {
	MaxDepth int
}

// NewPathTracingIntegrator creates a new path tracing integrator
func NewPathTracingIntegrator(maxDepth int) *PathTracingIntegrator {
	return &PathTracingIntegrator{MaxDepth: maxDepth}
}

// RayColor computes the color for a single ray.
//
// Each bounce multiplies the path throughput by the material attenuation;
// the path ends black when the depth budget runs out or a material absorbs,
// and picks up the background when it escapes the scene.
func (pt *PathTracingIntegrator) RayColor(ray core.Ray, world geometry.Shape, sampler core.Sampler) core.Color {
	throughput := white

	for depth := pt.MaxDepth; depth > 0; depth-- {
		hit, isHit := world.Hit(ray, TMin, TMax)
		if !isHit {
			return throughput.MultiplyVec(Background(ray))
		}

		scatter, didScatter := hit.Material.Scatter(ray, *hit, sampler)
		if !didScatter {
			return black
		}

		throughput = throughput.MultiplyVec(scatter.Attenuation)
		ray = scatter.Scattered
	}

	// If we've exceeded the ray bounce limit, no more light is gathered
	return black
}

// Background returns the sky gradient seen along ray:
// white looking straight down, sky blue looking straight up.
func Background(ray core.Ray) core.Color {
	unitDirection := ray.Direction.UnitVector()
	t := 0.5 * (unitDirection.Y + 1.0)
	return core.Lerp(white, skyBlue, t)
}
