package material

import (
	"errors"
	"math"
	"testing"

	"github.com/df07/go-sphere-raytracer/pkg/core"
)

func TestMetal_PerfectReflection(t *testing.T) {
	albedo := core.NewVec3(0.9, 0.9, 0.9)
	metal := NewMetal(albedo)
	sampler := core.NewSeededSampler(42)

	// Ray hitting surface at 45 degrees, unnormalized on purpose
	rayIn := core.NewRay(core.NewVec3(0, 1, 1), core.NewVec3(0, -3, -3))
	hit := HitRecord{
		Point:  core.NewVec3(0, 0, 0),
		Normal: core.NewVec3(0, 0, 1),
	}

	scatter, didScatter := metal.Scatter(rayIn, hit, sampler)
	if !didScatter {
		t.Fatal("Expected metal to scatter")
	}

	expected := core.NewVec3(0, -1, 1).UnitVector()
	dir := scatter.Scattered.Direction
	if math.Abs(dir.X-expected.X) > 1e-9 || math.Abs(dir.Y-expected.Y) > 1e-9 || math.Abs(dir.Z-expected.Z) > 1e-9 {
		t.Errorf("Expected reflection %v, got %v", expected, dir)
	}
	if math.Abs(dir.Length()-1) > 1e-9 {
		t.Errorf("Reflection of a unit vector should be unit length, got %f", dir.Length())
	}
	if scatter.Attenuation != albedo {
		t.Errorf("Expected attenuation %v, got %v", albedo, scatter.Attenuation)
	}
	if scatter.Scattered.Origin != hit.Point {
		t.Errorf("Scattered ray should start at hit point, got %v", scatter.Scattered.Origin)
	}
}

func TestMetal_AbsorbsReflectionBelowSurface(t *testing.T) {
	metal := NewMetal(core.NewVec3(1, 1, 1))
	sampler := core.NewSeededSampler(42)

	tests := []struct {
		name      string
		direction core.Vec3
	}{
		// Incoming along the normal reflects to -normal
		{"along normal", core.NewVec3(0, 0, 1)},
		// Grazing ray reflects to a direction perpendicular to the normal
		{"grazing", core.NewVec3(1, 0, 0)},
	}

	hit := HitRecord{Point: core.NewVec3(0, 0, 0), Normal: core.NewVec3(0, 0, 1)}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scatter, didScatter := metal.Scatter(core.NewRay(core.NewVec3(0, 0, -1), tt.direction), hit, sampler)
			if didScatter {
				t.Errorf("Expected absorption, got scatter %v", scatter.Scattered.Direction)
			}
			if scatter.Scattered.Direction.Dot(hit.Normal) > 0 {
				t.Errorf("Absorbed reflection should not leave above the surface")
			}
		})
	}
}

func TestKind_ParseAndString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		kind    Kind
		wantErr bool
	}{
		{"lambertian", "lambertian", KindLambertian, false},
		{"metal mixed case", " Metal ", KindMetal, false},
		{"light", "light", KindLight, false},
		{"unknown", "glass", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kind, err := ParseKind(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownKind) {
					t.Fatalf("Expected ErrUnknownKind, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if kind != tt.kind {
				t.Errorf("Expected %v, got %v", tt.kind, kind)
			}
			if roundTrip, _ := ParseKind(kind.String()); roundTrip != kind {
				t.Errorf("String %q does not parse back to %v", kind.String(), kind)
			}
		})
	}
}

func TestMaterial_UnknownKindAbsorbs(t *testing.T) {
	m := Material{Kind: Kind(99), Albedo: core.NewVec3(1, 1, 1)}
	hit := HitRecord{Normal: core.NewVec3(0, 1, 0)}
	if _, ok := m.Scatter(core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0)), hit, core.NewSeededSampler(1)); ok {
		t.Error("Unknown material kind should absorb")
	}
}
