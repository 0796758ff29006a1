package material

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// Metal represents a metallic material with specular reflection
type Metal struct {
	Albedo ColorSource // Metal color
	Fuzz   float64     // 0.0 = perfect mirror, 1.0 = very fuzzy
}

// NewMetal creates a new metal material
func NewMetal(albedo core.Vec3, fuzz float64) *Metal {
	return NewTexturedMetal(NewSolidColor(albedo), fuzz)
}

// NewTexturedMetal creates a metal whose tint comes from a color source
func NewTexturedMetal(albedo ColorSource, fuzz float64) *Metal {
	return &Metal{Albedo: albedo, Fuzz: min(max(fuzz, 0.0), 1.0)}
}

// Scatter implements the Material interface for metal scattering.
// Rays perturbed below the surface are absorbed.
func (m *Metal) Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	reflected := rayIn.Direction.Normalize().Reflect(hit.Normal)

	if m.Fuzz > 0 {
		perturbation := core.SampleInHemisphere(hit.Normal, sampler.Get3D()).Multiply(m.Fuzz)
		reflected = reflected.Add(perturbation)
	}

	if reflected.Dot(hit.Normal) <= 0 {
		return ScatterResult{}, false
	}

	return ScatterResult{
		Scattered:   core.NewRay(hit.Point, reflected),
		Attenuation: m.Albedo.Evaluate(hit.UV, hit.Point),
	}, true
}
