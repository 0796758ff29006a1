package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/loaders"
	"github.com/df07/go-pathtracer/pkg/material"
)

// maxTextureSize bounds the longer side of loaded textures
const maxTextureSize = 2048

// NewTexturedScene wraps an image texture around a globe. Without a texture
// path the globe shows a UV debug pattern.
func NewTexturedScene(opts Options) (*Scene, error) {
	var texture material.ColorSource
	if opts.Texture != "" {
		imageTexture, err := loaders.LoadImageTexture(opts.Texture, maxTextureSize)
		if err != nil {
			return nil, err
		}
		texture = imageTexture
	} else {
		texture = material.NewUVDebugTexture(256, 128)
	}

	cameraConfig := geometry.CameraConfig{
		LookFrom:    core.NewVec3(0, 2, 12),
		LookAt:      core.NewVec3(0, 0, 0),
		Up:          core.NewVec3(0, 1, 0),
		VFov:        20,
		AspectRatio: opts.aspectRatio(),
	}
	s := newScene(cameraConfig, integrator.NewSkyBackground())

	s.AddSphere(core.NewVec3(0, 0, 0), 2, material.NewTexturedLambertian(texture))
	s.AddSphere(core.NewVec3(0, -1002, 0), 1000, material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5)))

	return s, nil
}
