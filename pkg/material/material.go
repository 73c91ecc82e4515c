package material

import (
	"errors"
	"fmt"
	"strings"

	"github.com/df07/go-sphere-raytracer/pkg/core"
)

// ErrUnknownKind is returned when a material kind name is not recognized
var ErrUnknownKind = errors.New("unknown material kind")

// Kind selects the scattering behavior of a Material
type Kind int

const (
	KindLambertian Kind = iota
	KindMetal
	KindLight
)

var kindNames = map[Kind]string{
	KindLambertian: "lambertian",
	KindMetal:      "metal",
	KindLight:      "light",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind maps a scene-file name such as "metal" to its Kind
func ParseKind(name string) (Kind, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	for kind, kindName := range kindNames {
		if kindName == normalized {
			return kind, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, name)
}

// Material is a closed set of surface behaviors. It is a small value type;
// surfaces hold a copy and never mutate it.
type Material struct {
	Kind   Kind
	Albedo core.Color // Per-channel reflectance in [0,1]
}

// Scatter computes the outgoing ray and attenuation for a ray striking hit.
// The boolean is false when the material absorbs the ray.
func (m Material) Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	switch m.Kind {
	case KindLambertian, KindLight:
		return scatterDiffuse(m.Albedo, hit, sampler), true
	case KindMetal:
		return scatterMetal(m.Albedo, rayIn, hit)
	}
	return ScatterResult{}, false
}

func (m Material) String() string {
	return fmt.Sprintf("%s%v", m.Kind, m.Albedo)
}
