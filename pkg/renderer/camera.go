package renderer

import (
	"github.com/df07/go-sphere-raytracer/pkg/core"
)

const (
	viewportHeight = 2.0
	focalLength    = 1.0
)

// Camera generates rays for rendering. It is immutable once built and safe
// for concurrent use.
type Camera struct {
	origin          core.Point3
	lowerLeftCorner core.Point3
	horizontal      core.Vec3
	vertical        core.Vec3
}

// NewCamera creates a camera at the origin looking down -Z whose viewport
// matches the aspect ratio of a width x height image
func NewCamera(width, height int) *Camera {
	aspectRatio := float64(width) / float64(height)
	viewportWidth := aspectRatio * viewportHeight

	origin := core.NewVec3(0, 0, 0)
	horizontal := core.NewVec3(viewportWidth, 0, 0)
	vertical := core.NewVec3(0, viewportHeight, 0)
	lowerLeftCorner := origin.Subtract(horizontal.Divide(2)).
		Subtract(vertical.Divide(2)).
		Subtract(core.NewVec3(0, 0, focalLength))

	return &Camera{
		origin:          origin,
		horizontal:      horizontal,
		vertical:        vertical,
		lowerLeftCorner: lowerLeftCorner,
	}
}

// GetRay generates a ray for viewport coordinates (u, v) where 0 <= u,v <= 1.
// (0,0) is the bottom-left of the viewport and (1,1) the top-right.
func (c *Camera) GetRay(u, v float64) core.Ray {
	direction := c.lowerLeftCorner.
		Add(c.horizontal.Multiply(u)).
		Add(c.vertical.Multiply(v)).
		Subtract(c.origin)

	return core.NewRay(c.origin, direction)
}

// Origin returns the eye point
func (c *Camera) Origin() core.Point3 {
	return c.origin
}

// LowerLeftCorner returns the world-space bottom-left corner of the viewport
func (c *Camera) LowerLeftCorner() core.Point3 {
	return c.lowerLeftCorner
}
