package scene

import (
	"errors"
	"fmt"
	"math"

	"github.com/df07/go-sphere-raytracer/pkg/core"
	"github.com/df07/go-sphere-raytracer/pkg/geometry"
	"github.com/df07/go-sphere-raytracer/pkg/renderer"
)

var (
	// ErrInvalidDimensions is returned for images smaller than one pixel
	ErrInvalidDimensions = errors.New("invalid image dimensions")
	// ErrEmptyWorld is returned for scenes with nothing to hit
	ErrEmptyWorld = errors.New("scene has no surfaces")
	// ErrInvalidSphere is returned for spheres with a non-positive or non-finite radius
	ErrInvalidSphere = errors.New("invalid sphere")
	// ErrInvalidAlbedo is returned for material albedo channels outside [0,1]
	ErrInvalidAlbedo = errors.New("albedo out of range")
)

// Scene contains all the elements needed for rendering. It is built once and
// never mutated while a render is in flight.
type Scene struct {
	Name           string
	Width, Height  int
	World          *geometry.SurfaceList
	Camera         *renderer.Camera
	SamplingConfig renderer.SamplingConfig
}

// New creates a scene whose camera matches the image dimensions
func New(name string, width, height int, world *geometry.SurfaceList, config renderer.SamplingConfig) *Scene {
	return &Scene{
		Name:           name,
		Width:          width,
		Height:         height,
		World:          world,
		Camera:         renderer.NewCamera(width, height),
		SamplingConfig: config,
	}
}

// GetCamera returns the scene camera
func (s *Scene) GetCamera() *renderer.Camera { return s.Camera }

// GetWorld returns the surfaces rays are traced against
func (s *Scene) GetWorld() geometry.Shape { return s.World }

// GetSamplingConfig returns the scene's sampling settings
func (s *Scene) GetSamplingConfig() renderer.SamplingConfig { return s.SamplingConfig }

// Resize returns a copy of the scene rendered at a different resolution.
// The world is shared; only the camera is rebuilt.
func (s *Scene) Resize(width, height int) *Scene {
	return New(s.Name, width, height, s.World, s.SamplingConfig)
}

// Validate rejects scenes that cannot be rendered. Everything that could go
// wrong during a render is caught here, before it starts.
func (s *Scene) Validate() error {
	if s.Width < 1 || s.Height < 1 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, s.Width, s.Height)
	}
	if err := s.SamplingConfig.Validate(); err != nil {
		return fmt.Errorf("scene %q: %w", s.Name, err)
	}
	if s.World == nil || s.World.Len() == 0 {
		return fmt.Errorf("scene %q: %w", s.Name, ErrEmptyWorld)
	}
	for i, shape := range s.World.Shapes {
		sphere, ok := shape.(*geometry.Sphere)
		if !ok {
			continue
		}
		if !(sphere.Radius > 0) || math.IsInf(sphere.Radius, 0) {
			return fmt.Errorf("scene %q: %w: shape %d has radius %v", s.Name, ErrInvalidSphere, i, sphere.Radius)
		}
		if !albedoInRange(sphere.Material.Albedo) {
			return fmt.Errorf("scene %q: %w: shape %d has albedo %v", s.Name, ErrInvalidAlbedo, i, sphere.Material.Albedo)
		}
	}
	return nil
}

// albedoInRange reports whether every channel lies in [0,1]. NaN fails.
func albedoInRange(c core.Color) bool {
	for i := 0; i < 3; i++ {
		if v := c.Index(i); !(v >= 0 && v <= 1) {
			return false
		}
	}
	return true
}

// GetPrimitiveCount returns the total number of primitive objects in the scene
func (s *Scene) GetPrimitiveCount() int {
	if s.World == nil {
		return 0
	}
	return s.World.Len()
}
