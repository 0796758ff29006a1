package integrator

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// Background supplies the radiance of rays that leave the scene without a hit
type Background interface {
	Color(ray core.Ray) core.Vec3
}

// UniformBackground emits the same color in every direction
type UniformBackground struct {
	Emission core.Vec3
}

// NewUniformBackground creates a constant background
func NewUniformBackground(emission core.Vec3) *UniformBackground {
	return &UniformBackground{Emission: emission}
}

// Color returns the constant emission
func (ub *UniformBackground) Color(ray core.Ray) core.Vec3 {
	return ub.Emission
}

// GradientBackground blends from BottomColor to TopColor on the ray's vertical direction
type GradientBackground struct {
	TopColor    core.Vec3
	BottomColor core.Vec3
}

// NewGradientBackground creates a vertical gradient background
func NewGradientBackground(topColor, bottomColor core.Vec3) *GradientBackground {
	return &GradientBackground{TopColor: topColor, BottomColor: bottomColor}
}

// NewSkyBackground returns the classic white-to-blue sky gradient
func NewSkyBackground() *GradientBackground {
	return NewGradientBackground(core.NewVec3(0.5, 0.7, 1.0), core.NewVec3(1.0, 1.0, 1.0))
}

// Color maps the unit direction's Y from [-1,1] to a blend factor in [0,1]
func (gb *GradientBackground) Color(ray core.Ray) core.Vec3 {
	direction := ray.Direction.Normalize()
	t := 0.5 * (direction.Y + 1.0)
	return gb.BottomColor.Multiply(1.0 - t).Add(gb.TopColor.Multiply(t))
}
