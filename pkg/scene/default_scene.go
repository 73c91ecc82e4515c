package scene

import (
	"github.com/df07/go-sphere-raytracer/pkg/core"
	"github.com/df07/go-sphere-raytracer/pkg/geometry"
	"github.com/df07/go-sphere-raytracer/pkg/material"
	"github.com/df07/go-sphere-raytracer/pkg/renderer"
)

// Default image size: 16:9
const (
	DefaultWidth  = 400
	DefaultHeight = 225
)

// newDefaultWorld builds a gray ground with a red diffuse sphere flanked by two mirrors
func newDefaultWorld() *geometry.SurfaceList {
	ground := material.NewLambertian(core.NewVec3(0.8, 0.8, 0.8))
	red := material.NewLambertian(core.NewVec3(0.8, 0.1, 0.1))
	silver := material.NewMetal(core.NewVec3(0.9, 0.9, 0.9))
	blue := material.NewMetal(core.NewVec3(0.2, 0.2, 0.9))

	return geometry.NewSurfaceList(
		geometry.NewSphere(core.NewVec3(0, -100.5, -1.2), 100, ground),
		geometry.NewSphere(core.NewVec3(-1, 0, -1.2), 0.5, red),
		geometry.NewSphere(core.NewVec3(0, 0, -1.2), 0.5, silver),
		geometry.NewSphere(core.NewVec3(1, 0, -1.2), 0.5, blue),
	)
}

// NewDefaultScene creates the default scene with spheres on a large ground sphere
func NewDefaultScene() *Scene {
	return New("default", DefaultWidth, DefaultHeight, newDefaultWorld(), renderer.DefaultSamplingConfig())
}

// NewLightScene adds a warm light-material sphere floating above the default scene
func NewLightScene() *Scene {
	world := newDefaultWorld()
	world.Add(geometry.NewSphere(core.NewVec3(0, 1.1, -1.6), 0.4, material.NewLight(core.NewVec3(1.0, 0.9, 0.7))))
	return New("light", DefaultWidth, DefaultHeight, world, renderer.DefaultSamplingConfig())
}
