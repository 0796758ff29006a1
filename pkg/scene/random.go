package scene

import (
	"fmt"
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/material"
)

// NewRandomScene creates a grid of small randomly coloured spheres, held in
// their own BVH, around three large feature spheres. The layout depends only on opts.Seed.
func NewRandomScene(opts Options) (*Scene, error) {
	cameraConfig := geometry.CameraConfig{
		LookFrom:    core.NewVec3(13, 2, 3),
		LookAt:      core.NewVec3(0, 0, 0),
		Up:          core.NewVec3(0, 1, 0),
		VFov:        20,
		AspectRatio: opts.aspectRatio(),
		Aperture:    0.1,
	}
	s := newScene(cameraConfig, integrator.NewSkyBackground())
	s.SamplingConfig.SamplesPerPixel = 25

	random := rand.New(rand.NewSource(opts.Seed))

	s.AddSphere(core.NewVec3(0, -1000, 0), 1000, material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5)))

	small := make([]geometry.Shape, 0, 22*22)
	clearing := core.NewVec3(4, 0.2, 0)
	for a := -11; a < 11; a++ {
		for b := -11; b < 11; b++ {
			chooseMat := random.Float64()
			center := core.NewVec3(float64(a)+0.9*random.Float64(), 0.2, float64(b)+0.9*random.Float64())
			if center.Subtract(clearing).Length() <= 0.9 {
				continue
			}

			var mat material.Material
			switch {
			case chooseMat < 0.8:
				albedo := randomColor(random, 0, 1).MultiplyVec(randomColor(random, 0, 1))
				mat = material.NewLambertian(albedo)
			case chooseMat < 0.95:
				albedo := randomColor(random, 0.5, 1)
				mat = material.NewMetal(albedo, 0.5*random.Float64())
			default:
				mat = material.NewDielectric(1.5)
			}
			small = append(small, geometry.NewSphere(center, 0.2, mat))
		}
	}

	cluster, err := geometry.NewBVH(small)
	if err != nil {
		return nil, fmt.Errorf("failed to build sphere cluster: %w", err)
	}
	s.Shapes = append(s.Shapes, cluster)

	s.AddSphere(core.NewVec3(0, 1, 0), 1, material.NewDielectric(1.5))
	s.AddSphere(core.NewVec3(-4, 1, 0), 1, material.NewLambertian(core.NewVec3(0.4, 0.2, 0.1)))
	s.AddSphere(core.NewVec3(4, 1, 0), 1, material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0))

	return s, nil
}

// randomColor returns a color with each channel uniform in [lo, hi)
func randomColor(random *rand.Rand, lo, hi float64) core.Vec3 {
	span := hi - lo
	return core.NewVec3(
		lo+span*random.Float64(),
		lo+span*random.Float64(),
		lo+span*random.Float64(),
	)
}
