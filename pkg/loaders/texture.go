package loaders

import (
	"image"

	"github.com/df07/go-pathtracer/pkg/material"
	xdraw "golang.org/x/image/draw"
)

// LoadImageTexture loads an image file as a texture. When maxSize is positive
// and the image's longer side exceeds it, the image is downscaled with
// Catmull-Rom resampling so its longer side equals maxSize.
func LoadImageTexture(filename string, maxSize int) (*material.ImageTexture, error) {
	img, err := decodeFile(filename)
	if err != nil {
		return nil, err
	}

	data := imageToData(downscale(img, maxSize))
	return material.NewImageTexture(data.Width, data.Height, data.Pixels), nil
}

// downscale returns img unchanged when it already fits within maxSize
func downscale(img image.Image, maxSize int) image.Image {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	longest := max(width, height)
	if maxSize <= 0 || longest <= maxSize {
		return img
	}

	newWidth := max(1, width*maxSize/longest)
	newHeight := max(1, height*maxSize/longest)

	dst := image.NewRGBA(image.Rect(0, 0, newWidth, newHeight))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, xdraw.Src, nil)
	return dst
}
