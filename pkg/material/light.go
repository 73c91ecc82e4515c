package material

import (
	"github.com/df07/go-sphere-raytracer/pkg/core"
)

// NewLight creates a material meant to mark light-bearing surfaces.
// It scatters exactly like a Lambertian surface and adds no emission.
func NewLight(albedo core.Color) Material {
	return Material{Kind: KindLight, Albedo: albedo}
}
