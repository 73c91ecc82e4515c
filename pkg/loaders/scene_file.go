package loaders

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/sauerbraten/jsonfile"

	"github.com/df07/go-sphere-raytracer/pkg/core"
	"github.com/df07/go-sphere-raytracer/pkg/geometry"
	"github.com/df07/go-sphere-raytracer/pkg/material"
	"github.com/df07/go-sphere-raytracer/pkg/renderer"
	"github.com/df07/go-sphere-raytracer/pkg/scene"
)

// SceneFile is the on-disk description of a sphere scene. Files are JSON
// and may contain // line comments.
type SceneFile struct {
	Name            string                  `json:"name"`
	Width           int                     `json:"width"`
	Height          int                     `json:"height"`
	SamplesPerPixel int                     `json:"samplesPerPixel"`
	MaxDepth        int                     `json:"maxDepth"`
	Materials       map[string]MaterialSpec `json:"materials"`
	Spheres         []SphereSpec            `json:"spheres"`
}

// MaterialSpec names a material kind and its albedo
type MaterialSpec struct {
	Kind   string     `json:"kind"`
	Albedo [3]float64 `json:"albedo"`
}

// SphereSpec places a sphere and refers to a material by name
type SphereSpec struct {
	Center   [3]float64 `json:"center"`
	Radius   float64    `json:"radius"`
	Material string     `json:"material"`
}

// LoadSceneFile parses and validates the scene file at path
func LoadSceneFile(path string) (*scene.Scene, error) {
	var file SceneFile
	if err := jsonfile.ParseFile(path, &file); err != nil {
		return nil, fmt.Errorf("failed to parse scene file %s: %w", path, err)
	}

	if file.Name == "" {
		file.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	s, err := file.Build()
	if err != nil {
		return nil, fmt.Errorf("scene file %s: %w", path, err)
	}
	return s, nil
}

// Build turns the description into a validated scene. Each zero dimension
// and sampling field falls back to its default.
func (f *SceneFile) Build() (*scene.Scene, error) {
	materials := make(map[string]material.Material, len(f.Materials))
	for name, spec := range f.Materials {
		kind, err := material.ParseKind(spec.Kind)
		if err != nil {
			return nil, fmt.Errorf("material %q: %w", name, err)
		}
		materials[name] = material.Material{Kind: kind, Albedo: vec3(spec.Albedo)}
	}

	world := geometry.NewSurfaceList()
	for i, sphere := range f.Spheres {
		mat, ok := materials[sphere.Material]
		if !ok {
			return nil, fmt.Errorf("sphere %d: undefined material %q", i, sphere.Material)
		}
		world.Add(geometry.NewSphere(vec3(sphere.Center), sphere.Radius, mat))
	}

	width, height := f.Width, f.Height
	if width == 0 {
		width = scene.DefaultWidth
	}
	if height == 0 {
		height = scene.DefaultHeight
	}

	config := renderer.DefaultSamplingConfig().Merge(renderer.SamplingConfig{
		SamplesPerPixel: f.SamplesPerPixel,
		MaxDepth:        f.MaxDepth,
	})

	s := scene.New(f.Name, width, height, world, config)
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func vec3(v [3]float64) core.Vec3 {
	return core.NewVec3(v[0], v[1], v[2])
}
