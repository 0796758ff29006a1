package scene

import (
	"fmt"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Scene contains all the elements needed for rendering
type Scene struct {
	Camera         *geometry.Camera
	CameraConfig   geometry.CameraConfig
	Shapes         []geometry.Shape      // Top-level objects; may include nested BVHs
	BVH            *geometry.BVH         // Acceleration structure built by Preprocess
	Background     integrator.Background // Radiance of rays that escape the scene
	SamplingConfig SamplingConfig
}

// SamplingConfig holds the scene's recommended render settings
type SamplingConfig struct {
	SamplesPerPixel int // Iterations of the 2x2 stratified grid per pixel
	MaxDepth        int // Maximum ray bounce depth
}

// DefaultSamplingConfig returns sensible default values
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		SamplesPerPixel: 10,
		MaxDepth:        32,
	}
}

// Preprocess builds the BVH over the scene's shapes.
// It must complete before the scene is rendered.
func (s *Scene) Preprocess() error {
	bvh, err := geometry.NewBVH(s.Shapes)
	if err != nil {
		return fmt.Errorf("failed to build BVH: %w", err)
	}
	s.BVH = bvh
	return nil
}

// GetCamera returns the scene camera
func (s *Scene) GetCamera() *geometry.Camera {
	return s.Camera
}

// GetWorld returns the shape rays are traced against. Before Preprocess it
// falls back to a flat list of the scene's shapes.
func (s *Scene) GetWorld() geometry.Shape {
	if s.BVH != nil {
		return s.BVH
	}
	return geometry.NewShapeList(s.Shapes...)
}

// GetPrimitiveCount returns the total number of primitive objects in the scene
func (s *Scene) GetPrimitiveCount() int {
	count := 0
	for _, shape := range s.Shapes {
		count += countPrimitivesInShape(shape)
	}
	return count
}

// countPrimitivesInShape counts primitives in a single shape, handling aggregates
func countPrimitivesInShape(shape geometry.Shape) int {
	switch obj := shape.(type) {
	case *geometry.BVH:
		return countPrimitivesInNode(obj.Root)
	case *geometry.ShapeList:
		count := 0
		for _, child := range obj.Shapes {
			count += countPrimitivesInShape(child)
		}
		return count
	default:
		// Regular shapes count as 1 primitive each
		return 1
	}
}

func countPrimitivesInNode(node *geometry.BVHNode) int {
	if node == nil {
		return 0
	}
	if node.IsLeaf() {
		return countPrimitivesInShape(node.Shape)
	}
	return countPrimitivesInNode(node.Left) + countPrimitivesInNode(node.Right)
}

// AddSphere adds a sphere to the scene
func (s *Scene) AddSphere(center core.Vec3, radius float64, mat material.Material) {
	s.Shapes = append(s.Shapes, geometry.NewSphere(center, radius, mat))
}

// AddSphereLight adds an emissive sphere to the scene
func (s *Scene) AddSphereLight(center core.Vec3, radius float64, emission core.Vec3) {
	s.AddSphere(center, radius, material.NewEmissive(emission))
}

// newScene creates an empty scene around a camera configuration
func newScene(cameraConfig geometry.CameraConfig, background integrator.Background) *Scene {
	return &Scene{
		Camera:         geometry.NewCamera(cameraConfig),
		CameraConfig:   cameraConfig,
		Shapes:         make([]geometry.Shape, 0),
		Background:     background,
		SamplingConfig: DefaultSamplingConfig(),
	}
}
