package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/material"
)

// NewLightsScene creates spheres lit only by emissive spheres against a black background
func NewLightsScene(opts Options) (*Scene, error) {
	cameraConfig := geometry.CameraConfig{
		LookFrom:    core.NewVec3(26, 3, 6),
		LookAt:      core.NewVec3(0, 2, 0),
		Up:          core.NewVec3(0, 1, 0),
		VFov:        20,
		AspectRatio: opts.aspectRatio(),
	}
	s := newScene(cameraConfig, integrator.NewUniformBackground(core.Vec3{}))
	s.SamplingConfig = SamplingConfig{SamplesPerPixel: 100, MaxDepth: 50}

	ground := material.NewTexturedLambertian(material.NewSolidChecker(
		core.NewVec3(0.2, 0.3, 0.1),
		core.NewVec3(0.9, 0.9, 0.9),
		10.0,
	))
	s.AddSphere(core.NewVec3(0, -1000, 0), 1000, ground)
	s.AddSphere(core.NewVec3(0, 2, 0), 2, material.NewLambertian(core.NewVec3(0.7, 0.3, 0.3)))
	s.AddSphere(core.NewVec3(0, 2, -4.5), 1.5, material.NewMetal(core.NewVec3(0.8, 0.85, 0.88), 0.05))

	s.AddSphereLight(core.NewVec3(0, 7, 0), 2, core.NewVec3(4, 4, 4))
	s.AddSphereLight(core.NewVec3(4, 1, 3), 0.6, core.NewVec3(6, 3, 1))

	return s, nil
}
