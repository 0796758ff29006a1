package renderer

import (
	"image"
	"image/color"

	"github.com/df07/go-pathtracer/pkg/core"
)

// PixelBuffer holds linear, un-clamped colors in row-major order with a top-left origin
type PixelBuffer struct {
	Width  int
	Height int
	Pixels []core.Vec3
}

// NewPixelBuffer allocates a black buffer
func NewPixelBuffer(width, height int) *PixelBuffer {
	return &PixelBuffer{
		Width:  width,
		Height: height,
		Pixels: make([]core.Vec3, width*height),
	}
}

// At returns the color at (x, y)
func (pb *PixelBuffer) At(x, y int) core.Vec3 {
	return pb.Pixels[y*pb.Width+x]
}

// Set stores the color at (x, y)
func (pb *PixelBuffer) Set(x, y int, c core.Vec3) {
	pb.Pixels[y*pb.Width+x] = c
}

// Row returns the slice backing row y
func (pb *PixelBuffer) Row(y int) []core.Vec3 {
	return pb.Pixels[y*pb.Width : (y+1)*pb.Width]
}

// ToRGBA gamma corrects, clamps and quantizes the buffer to 8 bits per channel
func (pb *PixelBuffer) ToRGBA(gamma float64) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, pb.Width, pb.Height))
	for y := 0; y < pb.Height; y++ {
		for x := 0; x < pb.Width; x++ {
			img.SetRGBA(x, y, Vec3ToColor(pb.At(x, y), gamma))
		}
	}
	return img
}

// Vec3ToColor converts a linear color to RGBA with gamma correction and clamping
func Vec3ToColor(colorVec core.Vec3, gamma float64) color.RGBA {
	colorVec = colorVec.GammaCorrect(gamma)
	colorVec = colorVec.Clamp(0.0, 1.0)

	return color.RGBA{
		R: uint8(255.999 * colorVec.X),
		G: uint8(255.999 * colorVec.Y),
		B: uint8(255.999 * colorVec.Z),
		A: 255,
	}
}
