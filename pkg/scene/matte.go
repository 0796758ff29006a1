package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/material"
)

// MatteBackground is the uniform sky color of the matte scene
var MatteBackground = core.NewVec3(0.7, 0.8, 1.0)

// NewMatteScene creates a single grey diffuse sphere lit only by a uniform background
func NewMatteScene(opts Options) (*Scene, error) {
	cameraConfig := geometry.CameraConfig{
		LookFrom:    core.NewVec3(0, 0, 0),
		LookAt:      core.NewVec3(0, 0, -1),
		Up:          core.NewVec3(0, 1, 0),
		VFov:        90,
		AspectRatio: opts.aspectRatio(),
	}
	s := newScene(cameraConfig, integrator.NewUniformBackground(MatteBackground))

	s.AddSphere(core.NewVec3(0, 0, -1), 0.5, material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5)))

	return s, nil
}
