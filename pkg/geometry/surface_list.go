package geometry

import (
	"github.com/df07/go-sphere-raytracer/pkg/core"
	"github.com/df07/go-sphere-raytracer/pkg/material"
)

// SurfaceList aggregates shapes and reports the closest hit across all of them.
// Intersection is a linear scan in insertion order.
type SurfaceList struct {
	Shapes []Shape
}

// NewSurfaceList creates a list holding the given shapes
func NewSurfaceList(shapes ...Shape) *SurfaceList {
	return &SurfaceList{Shapes: shapes}
}

// Add appends a shape to the list
func (l *SurfaceList) Add(shape Shape) {
	l.Shapes = append(l.Shapes, shape)
}

// Len returns the number of shapes in the list
func (l *SurfaceList) Len() int {
	return len(l.Shapes)
}

// Hit returns the closest intersection with tMin < t < tMax.
// Each hit narrows the upper bound, so on equal t the earlier shape wins.
func (l *SurfaceList) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	var closestHit *material.HitRecord
	closestSoFar := tMax

	for _, shape := range l.Shapes {
		if hit, isHit := shape.Hit(ray, tMin, closestSoFar); isHit {
			closestSoFar = hit.T
			closestHit = hit
		}
	}

	return closestHit, closestHit != nil
}
