package material

import (
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

func TestMetal_PerfectMirror(t *testing.T) {
	metal := NewMetal(core.NewVec3(0.9, 0.9, 0.9), 0.0)
	sampler := core.NewSeededSampler(42)

	hit := HitRecord{
		Point:     core.NewVec3(0, 0, 0),
		Normal:    core.NewVec3(0, 1, 0),
		FrontFace: true,
		Material:  metal,
	}
	// Unnormalized incoming direction; the reflection must still be a unit vector
	ray := core.NewRay(core.NewVec3(-2, 2, 0), core.NewVec3(2, -2, 0))

	scatter, didScatter := metal.Scatter(ray, hit, sampler)
	if !didScatter {
		t.Fatal("Expected mirror reflection to scatter")
	}

	expected := core.NewVec3(1, 1, 0).Normalize()
	if scatter.Scattered.Direction.Subtract(expected).Length() > 1e-9 {
		t.Errorf("Expected reflected direction %v, got %v", expected, scatter.Scattered.Direction)
	}
	if scatter.Attenuation != core.NewVec3(0.9, 0.9, 0.9) {
		t.Errorf("Expected albedo attenuation, got %v", scatter.Attenuation)
	}
}

func TestMetal_FuzzClamped(t *testing.T) {
	tests := []struct {
		input    float64
		expected float64
	}{
		{-0.5, 0},
		{0.3, 0.3},
		{2.0, 1.0},
	}

	for _, tt := range tests {
		if got := NewMetal(core.NewVec3(1, 1, 1), tt.input).Fuzz; got != tt.expected {
			t.Errorf("NewMetal fuzz %f: expected %f, got %f", tt.input, tt.expected, got)
		}
	}
}

func TestMetal_FuzzyReflectionStaysAboveSurface(t *testing.T) {
	metal := NewMetal(core.NewVec3(0.8, 0.6, 0.2), 1.0)
	sampler := core.NewSeededSampler(5)
	normal := core.NewVec3(0, 1, 0)
	hit := HitRecord{Point: core.Vec3{}, Normal: normal, FrontFace: true}

	// Grazing incidence: many perturbed reflections would go below the surface
	ray := core.NewRay(core.NewVec3(-1, 0.01, 0), core.NewVec3(1, -0.01, 0))

	scattered, absorbed := 0, 0
	for i := 0; i < 1000; i++ {
		scatter, didScatter := metal.Scatter(ray, hit, sampler)
		if !didScatter {
			absorbed++
			continue
		}
		scattered++
		if scatter.Scattered.Direction.Dot(normal) <= 0 {
			t.Fatalf("Scattered direction %v points into the surface", scatter.Scattered.Direction)
		}
	}
	if scattered == 0 {
		t.Error("Expected at least some fuzzy reflections to escape")
	}
	t.Logf("scattered=%d absorbed=%d", scattered, absorbed)
}

func TestMetal_AbsorbsBelowSurface(t *testing.T) {
	metal := NewMetal(core.NewVec3(1, 1, 1), 0)
	// A normal on the same side as the ray direction reflects into the surface
	hit := HitRecord{Normal: core.NewVec3(0, 1, 0)}
	ray := core.NewRay(core.NewVec3(0, -1, 0), core.NewVec3(0, 1, 0))

	if _, didScatter := metal.Scatter(ray, hit, core.NewSeededSampler(1)); didScatter {
		t.Error("Expected reflection into the surface to be absorbed")
	}
}
