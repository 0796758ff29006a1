package material

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// ColorSource provides spatially-varying colors for materials
type ColorSource interface {
	// Evaluate returns color at given UV coordinates and 3D point
	// UV is used for image textures, point for procedural textures
	Evaluate(uv core.Vec2, point core.Vec3) core.Vec3
}

// SolidColor provides uniform color
type SolidColor struct {
	Color core.Vec3
}

// NewSolidColor creates a new solid color source
func NewSolidColor(color core.Vec3) *SolidColor {
	return &SolidColor{Color: color}
}

// Evaluate returns the solid color regardless of UV or position
func (s *SolidColor) Evaluate(uv core.Vec2, point core.Vec3) core.Vec3 {
	return s.Color
}

// Checker is a solid 3D checkerboard. The pattern depends only on the
// world-space point, never on UV.
type Checker struct {
	Odd       ColorSource
	Even      ColorSource
	Frequency float64
}

// NewChecker creates a checkerboard alternating between two color sources
func NewChecker(odd, even ColorSource, frequency float64) *Checker {
	return &Checker{Odd: odd, Even: even, Frequency: frequency}
}

// NewSolidChecker creates a checkerboard of two solid colors
func NewSolidChecker(odd, even core.Vec3, frequency float64) *Checker {
	return NewChecker(NewSolidColor(odd), NewSolidColor(even), frequency)
}

// Evaluate selects Odd where sin(fx)*sin(fy)*sin(fz) is negative, Even otherwise
func (c *Checker) Evaluate(uv core.Vec2, point core.Vec3) core.Vec3 {
	f := c.Frequency
	sines := math.Sin(f*point.X) * math.Sin(f*point.Y) * math.Sin(f*point.Z)
	if sines < 0 {
		return c.Odd.Evaluate(uv, point)
	}
	return c.Even.Evaluate(uv, point)
}
