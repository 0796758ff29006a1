package integrator

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
)

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// RayColor computes the radiance arriving along ray from world.
	// Implementations must be safe for concurrent use; all randomness comes from sampler.
	RayColor(ray core.Ray, world geometry.Shape, sampler core.Sampler) core.Vec3
}
