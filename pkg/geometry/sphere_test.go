package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-sphere-raytracer/pkg/core"
	"github.com/df07/go-sphere-raytracer/pkg/material"
)

var gray = material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))

func vecNear(a, b core.Vec3, tol float64) bool {
	return math.Abs(a.X-b.X) <= tol && math.Abs(a.Y-b.Y) <= tol && math.Abs(a.Z-b.Z) <= tol
}

func TestSphere_Hit_Miss(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, gray)

	tests := []struct {
		name      string
		origin    core.Vec3
		direction core.Vec3
	}{
		{"parallel offset", core.NewVec3(2, 0, 0), core.NewVec3(0, 1, 0)},
		{"perpendicular offset beyond radius", core.NewVec3(1.5, 0, 5), core.NewVec3(0, 0, -1)},
		{"pointing away", core.NewVec3(0, 0, 5), core.NewVec3(0, 0, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, isHit := sphere.Hit(core.NewRay(tt.origin, tt.direction), 0.001, 1000.0)
			if isHit {
				t.Errorf("Expected miss, but got hit at t=%f", hit.T)
			}
			if hit != nil {
				t.Error("Miss should return a nil record")
			}
		})
	}
}

func TestSphere_Hit_FrontAndBackFace(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, gray)

	tests := []struct {
		name           string
		rayOrigin      core.Vec3
		rayDirection   core.Vec3
		expectedT      float64
		expectedFront  bool
		expectedNormal core.Vec3
	}{
		{
			name:           "front face hit",
			rayOrigin:      core.NewVec3(0, 0, 2),
			rayDirection:   core.NewVec3(0, 0, -1),
			expectedT:      1.0,
			expectedFront:  true,
			expectedNormal: core.NewVec3(0, 0, 1),
		},
		{
			name:           "back face hit",
			rayOrigin:      core.NewVec3(0, 0, 0),
			rayDirection:   core.NewVec3(0, 0, 1),
			expectedT:      1.0,
			expectedFront:  false,
			expectedNormal: core.NewVec3(0, 0, -1),
		},
		{
			name:           "unnormalized direction scales t",
			rayOrigin:      core.NewVec3(0, 0, 3),
			rayDirection:   core.NewVec3(0, 0, -2),
			expectedT:      1.0,
			expectedFront:  true,
			expectedNormal: core.NewVec3(0, 0, 1),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := core.NewRay(tt.rayOrigin, tt.rayDirection)
			hit, isHit := sphere.Hit(ray, 0.001, 1000.0)

			if !isHit {
				t.Fatal("Expected hit, but got miss")
			}
			if math.Abs(hit.T-tt.expectedT) > 1e-9 {
				t.Errorf("Expected t=%f, got t=%f", tt.expectedT, hit.T)
			}
			if hit.FrontFace != tt.expectedFront {
				t.Errorf("Expected front face %t, got %t", tt.expectedFront, hit.FrontFace)
			}
			if !vecNear(hit.Normal, tt.expectedNormal, 1e-9) {
				t.Errorf("Expected normal %v, got %v", tt.expectedNormal, hit.Normal)
			}
			if hit.Normal.Dot(ray.Direction) > 0 {
				t.Error("Stored normal must oppose the incoming ray")
			}
			if hit.Material != gray {
				t.Errorf("Expected material %v, got %v", gray, hit.Material)
			}
		})
	}
}

func TestSphere_Hit_AimedAtCenter(t *testing.T) {
	tests := []struct {
		name   string
		origin core.Vec3
		center core.Vec3
		radius float64
	}{
		{"unit sphere down -z", core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -3), 1},
		{"offset sphere", core.NewVec3(1, 2, 3), core.NewVec3(-4, 6, -2), 2.5},
		{"large ground sphere", core.NewVec3(0, 0, 0), core.NewVec3(0, -100.5, -1.2), 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sphere := NewSphere(tt.center, tt.radius, gray)
			toCenter := tt.center.Subtract(tt.origin)
			ray := core.NewRay(tt.origin, toCenter.UnitVector())

			hit, isHit := sphere.Hit(ray, 0.001, 1e7)
			if !isHit {
				t.Fatal("Expected hit, but got miss")
			}

			expectedT := toCenter.Length() - tt.radius
			if math.Abs(hit.T-expectedT) > 1e-9 {
				t.Errorf("Expected t=%f, got %f", expectedT, hit.T)
			}

			outward := hit.Point.Subtract(tt.center).Divide(tt.radius)
			if !vecNear(hit.Normal, outward, 1e-9) {
				t.Errorf("Expected normal %v, got %v", outward, hit.Normal)
			}
			if math.Abs(hit.Normal.Length()-1) > 1e-9 {
				t.Errorf("Normal should be unit length, got %f", hit.Normal.Length())
			}
			if !hit.FrontFace {
				t.Error("Hit from outside should be front facing")
			}
		})
	}
}

func TestSphere_Hit_GlancingHit(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, gray)
	ray := core.NewRay(core.NewVec3(1, 0, 2), core.NewVec3(0, 0, -1))

	hit, isHit := sphere.Hit(ray, 0.001, 1000.0)
	if !isHit {
		t.Fatal("Expected tangent ray to hit")
	}
	if math.Abs(hit.T-2.0) > 1e-9 {
		t.Errorf("Expected t=2, got %f", hit.T)
	}
}

func TestSphere_Hit_RespectsInterval(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, gray)
	ray := core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1))
	// Roots are t=4 and t=6

	tests := []struct {
		name      string
		tMin      float64
		tMax      float64
		expectHit bool
		expectedT float64
	}{
		{"both roots admissible", 0.001, 100, true, 4},
		{"near root excluded by tMin", 5, 100, true, 6},
		{"both roots beyond tMax", 0.001, 3, false, 0},
		{"both roots before tMin", 7, 100, false, 0},
		{"open upper bound", 0.001, 4, false, 0},
		{"open lower bound takes far root", 4, 100, true, 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, isHit := sphere.Hit(ray, tt.tMin, tt.tMax)
			if isHit != tt.expectHit {
				t.Fatalf("Expected hit=%t, got %t", tt.expectHit, isHit)
			}
			if isHit && math.Abs(hit.T-tt.expectedT) > 1e-9 {
				t.Errorf("Expected t=%f, got %f", tt.expectedT, hit.T)
			}
		})
	}
}
