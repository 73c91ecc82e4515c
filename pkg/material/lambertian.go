package material

import (
	"github.com/df07/go-sphere-raytracer/pkg/core"
)

// NewLambertian creates a perfectly diffuse material
func NewLambertian(albedo core.Color) Material {
	return Material{Kind: KindLambertian, Albedo: albedo}
}

// scatterDiffuse bounces toward normal + random unit vector
func scatterDiffuse(albedo core.Color, hit HitRecord, sampler core.Sampler) ScatterResult {
	scatterDirection := hit.Normal.Add(core.RandomUnitVector(sampler))

	// Catch the random vector cancelling the normal
	if scatterDirection.NearZero() {
		scatterDirection = hit.Normal
	}

	return ScatterResult{
		Scattered:   core.NewRay(hit.Point, scatterDirection),
		Attenuation: albedo,
	}
}
