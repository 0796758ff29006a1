package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/material"
)

// NewSimpleScene creates a diffuse and a fuzzy metal sphere on a checkered ground sphere
func NewSimpleScene(opts Options) (*Scene, error) {
	cameraConfig := geometry.CameraConfig{
		LookFrom:    core.NewVec3(0, 1, 4),
		LookAt:      core.NewVec3(0, 0, -1),
		Up:          core.NewVec3(0, 1, 0),
		VFov:        20,
		AspectRatio: opts.aspectRatio(),
		Aperture:    0.1,
	}
	s := newScene(cameraConfig, integrator.NewSkyBackground())

	ground := material.NewTexturedLambertian(material.NewSolidChecker(
		core.NewVec3(0.8, 0.8, 0.0),
		core.NewVec3(0.8, 0.2, 0.0),
		10.0,
	))

	s.AddSphere(core.NewVec3(0.6, 0, -1), 0.5, material.NewLambertian(core.NewVec3(0.1, 0.2, 0.5)))
	s.AddSphere(core.NewVec3(-0.6, 0, -1), 0.5, material.NewMetal(core.NewVec3(0.8, 0.8, 0.8), 0.4))
	s.AddSphere(core.NewVec3(0, -100.5, 0), 100, ground)

	return s, nil
}
