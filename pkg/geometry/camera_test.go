package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

func testCameraConfig() CameraConfig {
	return CameraConfig{
		LookFrom:    core.NewVec3(0, 0, 0),
		LookAt:      core.NewVec3(0, 0, -1),
		Up:          core.NewVec3(0, 1, 0),
		VFov:        90,
		AspectRatio: 2.0,
	}
}

func TestCamera_CenterRayLooksForward(t *testing.T) {
	camera := NewCamera(testCameraConfig())
	sampler := core.NewSeededSampler(1)

	ray := camera.GetRay(0.5, 0.5, sampler)
	direction := ray.Direction.Normalize()

	if !ray.Origin.Equals(core.NewVec3(0, 0, 0)) {
		t.Errorf("Expected pinhole origin at LookFrom, got %v", ray.Origin)
	}
	if !direction.Equals(core.NewVec3(0, 0, -1)) {
		t.Errorf("Expected center ray toward -Z, got %v", direction)
	}
	if !camera.GetCameraForward().Equals(core.NewVec3(0, 0, -1)) {
		t.Errorf("Expected forward -Z, got %v", camera.GetCameraForward())
	}
}

func TestCamera_ViewportOrientation(t *testing.T) {
	camera := NewCamera(testCameraConfig())
	sampler := core.NewSeededSampler(1)

	// With VFov 90 and aspect 2 the focus-plane viewport spans x in [-2,2] and y in [-1,1]
	tests := []struct {
		name     string
		s, t     float64
		expected core.Vec3
	}{
		{"top left", 0, 0, core.NewVec3(-2, 1, -1)},
		{"top right", 1, 0, core.NewVec3(2, 1, -1)},
		{"bottom left", 0, 1, core.NewVec3(-2, -1, -1)},
		{"bottom right", 1, 1, core.NewVec3(2, -1, -1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := camera.GetRay(tt.s, tt.t, sampler)
			if !ray.Direction.Equals(tt.expected) {
				t.Errorf("Expected direction %v, got %v", tt.expected, ray.Direction)
			}
		})
	}
}

func TestCamera_AutoFocusDistance(t *testing.T) {
	config := testCameraConfig()
	config.LookAt = core.NewVec3(0, 0, -4)
	camera := NewCamera(config)

	// The viewport sits on the LookAt plane when no focus distance is given
	ray := camera.GetRay(0.5, 0.5, core.NewSeededSampler(1))
	if !ray.At(1).Equals(core.NewVec3(0, 0, -4)) {
		t.Errorf("Expected center ray to reach LookAt at t=1, got %v", ray.At(1))
	}
}

func TestCamera_ThinLens(t *testing.T) {
	config := testCameraConfig()
	config.Aperture = 0.5
	config.FocusDistance = 3
	camera := NewCamera(config)
	sampler := core.NewSeededSampler(9)

	focusPoint := camera.GetRay(0.25, 0.75, sampler).At(1)
	for i := 0; i < 200; i++ {
		ray := camera.GetRay(0.25, 0.75, sampler)

		offset := ray.Origin.Subtract(config.LookFrom)
		if offset.Length() > config.Aperture/2+1e-9 {
			t.Fatalf("Lens origin %v outside aperture radius %f", ray.Origin, config.Aperture/2)
		}
		if math.Abs(offset.Z) > 1e-9 {
			t.Fatalf("Lens origin %v not on the lens plane", ray.Origin)
		}
		// Every lens sample for the same (s, t) converges on the focus plane
		if !ray.At(1).Equals(focusPoint) {
			t.Fatalf("Expected ray to pass through %v, got %v", focusPoint, ray.At(1))
		}
	}
}

func TestCamera_Config(t *testing.T) {
	config := testCameraConfig()
	camera := NewCamera(config)
	if camera.Config() != config {
		t.Errorf("Expected config %+v, got %+v", config, camera.Config())
	}
}
