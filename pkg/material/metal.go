package material

import (
	"github.com/df07/go-sphere-raytracer/pkg/core"
)

// NewMetal creates a perfect mirror tinted by albedo
func NewMetal(albedo core.Color) Material {
	return Material{Kind: KindMetal, Albedo: albedo}
}

// scatterMetal reflects the incoming direction about the normal.
// Reflections that end up below the surface are absorbed.
func scatterMetal(albedo core.Color, rayIn core.Ray, hit HitRecord) (ScatterResult, bool) {
	reflected := core.Reflect(rayIn.Direction.UnitVector(), hit.Normal)
	scattered := core.NewRay(hit.Point, reflected)

	return ScatterResult{
		Scattered:   scattered,
		Attenuation: albedo,
	}, scattered.Direction.Dot(hit.Normal) > 0
}
