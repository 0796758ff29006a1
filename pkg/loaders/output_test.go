package loaders

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

func testBuffer() *renderer.PixelBuffer {
	buffer := renderer.NewPixelBuffer(3, 2)
	buffer.Set(0, 0, core.NewVec3(1, 0, 0))
	buffer.Set(1, 0, core.NewVec3(0, 1, 0))
	buffer.Set(2, 0, core.NewVec3(0, 0, 1))
	buffer.Set(0, 1, core.NewVec3(4, 4, 4)) // Over range clamps to white
	buffer.Set(2, 1, core.NewVec3(0.25, 0.25, 0.25))
	return buffer
}

// Lossless formats must read back exactly what was written
func TestSaveImage_LosslessFormats(t *testing.T) {
	expected := []core.Vec3{
		core.NewVec3(1, 0, 0), core.NewVec3(0, 1, 0), core.NewVec3(0, 0, 1),
		core.NewVec3(1, 1, 1), core.NewVec3(0, 0, 0), core.NewVec3(127.0/255, 127.0/255, 127.0/255),
	}

	for _, name := range []string{"out.png", "out.bmp", "out.tif", "out.TIFF"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)
			if err := SaveImage(path, testBuffer(), 2.0); err != nil {
				t.Fatalf("SaveImage failed: %v", err)
			}

			data, err := LoadImage(path)
			if err != nil {
				t.Fatalf("LoadImage failed: %v", err)
			}
			if data.Width != 3 || data.Height != 2 {
				t.Fatalf("Expected 3x2 image, got %dx%d", data.Width, data.Height)
			}
			for i, want := range expected {
				if data.Pixels[i].Subtract(want).Length() > 1e-6 {
					t.Errorf("Pixel %d: expected %v, got %v", i, want, data.Pixels[i])
				}
			}
		})
	}
}

func TestSaveImage_JPEG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.jpg")
	if err := SaveImage(path, testBuffer(), 2.0); err != nil {
		t.Fatalf("SaveImage failed: %v", err)
	}
	data, err := LoadImage(path)
	if err != nil {
		t.Fatalf("LoadImage failed: %v", err)
	}
	if data.Width != 3 || data.Height != 2 {
		t.Errorf("Expected 3x2 image, got %dx%d", data.Width, data.Height)
	}
}

func TestSaveImage_PPM(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.ppm")
	if err := SaveImage(path, testBuffer(), 2.0); err != nil {
		t.Fatalf("SaveImage failed: %v", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	header := []byte("P6\n3 2\n255\n")
	if !bytes.HasPrefix(content, header) {
		t.Fatalf("Expected P6 header, got %q", content[:min(len(content), len(header))])
	}
	pixels := content[len(header):]
	expected := []byte{
		255, 0, 0, 0, 255, 0, 0, 0, 255,
		255, 255, 255, 0, 0, 0, 127, 127, 127,
	}
	if !bytes.Equal(pixels, expected) {
		t.Errorf("Expected pixel bytes %v, got %v", expected, pixels)
	}
}

func TestSaveImage_UnsupportedFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.exr")
	err := SaveImage(path, testBuffer(), 2.0)
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("Expected ErrUnsupportedFormat, got %v", err)
	}
	if _, statErr := os.Stat(path); !os.IsNotExist(statErr) {
		t.Error("Expected no file to be created for an unsupported format")
	}
}

// A failed encode must not leave a partial file behind.
func TestSaveImage_EncodeFailureRemovesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.png")
	err := SaveImage(path, renderer.NewPixelBuffer(0, 0), 2.0)
	if err == nil {
		t.Fatal("Expected encoding a 0x0 image as PNG to fail")
	}
	if _, statErr := os.Stat(path); !os.IsNotExist(statErr) {
		t.Errorf("Expected %s to be removed after the failed encode, stat error: %v", path, statErr)
	}
}
