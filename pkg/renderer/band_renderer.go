package renderer

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/integrator"
)

// strataPerAxis is the side of the stratified sub-pixel grid
const strataPerAxis = 2

// Scene interface to avoid circular imports
type Scene interface {
	GetCamera() *geometry.Camera
	GetWorld() geometry.Shape
}

// BandStats counts the work done for one band
type BandStats struct {
	Rows   int
	Pixels int
	Rays   int64
}

// BandRenderer handles the actual rendering of individual bands using an integrator
type BandRenderer struct {
	scene           Scene
	integrator      integrator.Integrator
	width, height   int
	samplesPerPixel int
}

// NewBandRenderer creates a new band renderer with the given scene and integrator
func NewBandRenderer(scene Scene, integratorInst integrator.Integrator, width, height, samplesPerPixel int) *BandRenderer {
	return &BandRenderer{
		scene:           scene,
		integrator:      integratorInst,
		width:           width,
		height:          height,
		samplesPerPixel: samplesPerPixel,
	}
}

// RenderBand writes the final color of every pixel in the band's rows to buffer.
// Only rows owned by the band are touched, so bands may run concurrently on one buffer.
func (br *BandRenderer) RenderBand(band *Band, buffer *PixelBuffer) BandStats {
	camera := br.scene.GetCamera()
	world := br.scene.GetWorld()
	sampler := core.NewRandomSampler(band.Random)

	stats := BandStats{Rows: band.Rows()}
	for y := band.MinY; y < band.MaxY; y++ {
		row := buffer.Row(y)
		for x := 0; x < br.width; x++ {
			row[x] = br.samplePixel(camera, world, x, y, sampler)
			stats.Pixels++
		}
	}
	stats.Rays = int64(stats.Pixels) * int64(br.raysPerPixel())
	return stats
}

// samplePixel averages samplesPerPixel passes over a 2x2 grid, each ray jittered within its stratum
func (br *BandRenderer) samplePixel(camera *geometry.Camera, world geometry.Shape, x, y int, sampler core.Sampler) core.Vec3 {
	var colorAccum core.Vec3
	for s := 0; s < br.samplesPerPixel; s++ {
		for sy := 0; sy < strataPerAxis; sy++ {
			for sx := 0; sx < strataPerAxis; sx++ {
				u := (float64(x) + (float64(sx)+sampler.Get1D())/strataPerAxis) / float64(br.width)
				v := (float64(y) + (float64(sy)+sampler.Get1D())/strataPerAxis) / float64(br.height)

				ray := camera.GetRay(u, v, sampler)
				colorAccum = colorAccum.Add(br.integrator.RayColor(ray, world, sampler))
			}
		}
	}
	return colorAccum.Multiply(1.0 / float64(br.raysPerPixel()))
}

func (br *BandRenderer) raysPerPixel() int {
	return br.samplesPerPixel * strataPerAxis * strataPerAxis
}
