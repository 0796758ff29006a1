package integrator

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
)

const (
	// hitEpsilon offsets the start of every ray query to avoid re-hitting the surface it left
	hitEpsilon = 0.001
)

// PathTracingIntegrator implements unidirectional path tracing with a fixed bounce limit
type PathTracingIntegrator struct {
	MaxDepth   int
	Background Background
}

// NewPathTracingIntegrator creates a new path tracing integrator.
// A nil background is treated as black.
func NewPathTracingIntegrator(maxDepth int, background Background) *PathTracingIntegrator {
	if background == nil {
		background = NewUniformBackground(core.Vec3{})
	}
	return &PathTracingIntegrator{
		MaxDepth:   maxDepth,
		Background: background,
	}
}

// RayColor computes the color for a single camera ray
func (pt *PathTracingIntegrator) RayColor(ray core.Ray, world geometry.Shape, sampler core.Sampler) core.Vec3 {
	return pt.RayColorDepth(ray, world, sampler, pt.MaxDepth)
}

// RayColorDepth follows ray through world for at most depth bounces.
// Each bounce adds the surface emission to the attenuated radiance of the scattered ray.
func (pt *PathTracingIntegrator) RayColorDepth(ray core.Ray, world geometry.Shape, sampler core.Sampler, depth int) core.Vec3 {
	// If we've exceeded the ray bounce limit, no more light is gathered
	if depth <= 0 {
		return core.Vec3{}
	}

	hit, isHit := world.Hit(ray, hitEpsilon, math.Inf(1))
	if !isHit {
		return pt.Background.Color(ray)
	}

	colorEmitted := material.Emitted(ray, *hit)

	scatter, didScatter := hit.Material.Scatter(ray, *hit, sampler)
	if !didScatter {
		// Absorbed or purely emissive: the path ends here
		return colorEmitted
	}

	incoming := pt.RayColorDepth(scatter.Scattered, world, sampler, depth-1)
	return colorEmitted.Add(scatter.Attenuation.MultiplyVec(incoming))
}
