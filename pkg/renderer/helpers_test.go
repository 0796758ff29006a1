package renderer

import (
	"sync"
	"sync/atomic"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
)

// MockScene serves a fixed camera and world
type MockScene struct {
	camera *geometry.Camera
	world  geometry.Shape
}

func (m *MockScene) GetCamera() *geometry.Camera { return m.camera }
func (m *MockScene) GetWorld() geometry.Shape    { return m.world }

// MockIntegrator returns a fixed color and counts calls; safe for concurrent use
type MockIntegrator struct {
	returnColor core.Vec3
	callCount   atomic.Int64

	mu         sync.Mutex
	record     bool
	directions []core.Vec3
}

func (m *MockIntegrator) RayColor(ray core.Ray, world geometry.Shape, sampler core.Sampler) core.Vec3 {
	m.callCount.Add(1)
	if m.record {
		m.mu.Lock()
		m.directions = append(m.directions, ray.Direction)
		m.mu.Unlock()
	}
	return m.returnColor
}

// PanicIntegrator panics on rays through the lower half of the image
type PanicIntegrator struct{}

func (PanicIntegrator) RayColor(ray core.Ray, world geometry.Shape, sampler core.Sampler) core.Vec3 {
	if ray.Direction.Y < 0 {
		panic("bad ray")
	}
	return core.Vec3{}
}

// squareCamera is a pinhole at the origin looking down -Z whose focus-plane
// viewport spans [-1,1] on both axes, so a ray direction maps back to (s, t)
func squareCamera() *geometry.Camera {
	return geometry.NewCamera(geometry.CameraConfig{
		LookFrom:    core.NewVec3(0, 0, 0),
		LookAt:      core.NewVec3(0, 0, -1),
		Up:          core.NewVec3(0, 1, 0),
		VFov:        90,
		AspectRatio: 1,
	})
}

// viewportCoords inverts squareCamera's ray generation
func viewportCoords(direction core.Vec3) (s, t float64) {
	return (direction.X + 1) / 2, (1 - direction.Y) / 2
}
