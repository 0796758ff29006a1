package loaders

import (
	"bufio"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/df07/go-pathtracer/pkg/renderer"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// ErrUnsupportedFormat is returned when an output extension has no encoder
var ErrUnsupportedFormat = errors.New("unsupported image format")

// SaveImage gamma corrects and clamps the buffer, then encodes it by the
// extension of filename: .png, .jpg/.jpeg, .bmp, .tif/.tiff or .ppm.
func SaveImage(filename string, buffer *renderer.PixelBuffer, gamma float64) (err error) {
	encode, err := encoderFor(filename)
	if err != nil {
		return err
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close output file: %w", cerr)
		}
		if err != nil {
			os.Remove(filename)
		}
	}()

	w := bufio.NewWriter(file)
	if err := encode(w, buffer.ToRGBA(gamma)); err != nil {
		return fmt.Errorf("failed to encode %s: %w", filename, err)
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to write %s: %w", filename, err)
	}
	return nil
}

type encodeFunc func(w io.Writer, img *image.RGBA) error

func encoderFor(filename string) (encodeFunc, error) {
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".png":
		return func(w io.Writer, img *image.RGBA) error { return png.Encode(w, img) }, nil
	case ".jpg", ".jpeg":
		return func(w io.Writer, img *image.RGBA) error {
			return jpeg.Encode(w, img, &jpeg.Options{Quality: 95})
		}, nil
	case ".bmp":
		return func(w io.Writer, img *image.RGBA) error { return bmp.Encode(w, img) }, nil
	case ".tif", ".tiff":
		return func(w io.Writer, img *image.RGBA) error {
			return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
		}, nil
	case ".ppm":
		return WritePPM, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

// WritePPM writes img as a binary (P6) portable pixmap
func WritePPM(w io.Writer, img *image.RGBA) error {
	bounds := img.Bounds()
	if _, err := fmt.Fprintf(w, "P6\n%d %d\n255\n", bounds.Dx(), bounds.Dy()); err != nil {
		return err
	}

	row := make([]byte, 3*bounds.Dx())
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := img.RGBAAt(x, y)
			i := 3 * (x - bounds.Min.X)
			row[i], row[i+1], row[i+2] = c.R, c.G, c.B
		}
		if _, err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}
