package renderer

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is returned when a RenderConfig cannot produce an image
var ErrInvalidConfig = errors.New("invalid render config")

// RenderConfig contains rendering configuration
type RenderConfig struct {
	Width           int   // Image width in pixels
	Height          int   // Image height in pixels
	SamplesPerPixel int   // Iterations of the 2x2 stratified grid per pixel
	RowsPerBand     int   // Rows rendered by one worker task
	NumWorkers      int   // Number of parallel workers (0 = DefaultWorkerCount)
	Seed            int64 // Base seed for all band generators
}

// DefaultRenderConfig returns sensible default values
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		Width:           400,
		Height:          225,
		SamplesPerPixel: 10,
		RowsPerBand:     1,
		NumWorkers:      0,
		Seed:            42,
	}
}

// Validate reports the first field that makes the configuration unusable
func (c RenderConfig) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: image size %dx%d must be positive", ErrInvalidConfig, c.Width, c.Height)
	case c.SamplesPerPixel <= 0:
		return fmt.Errorf("%w: samples per pixel %d must be positive", ErrInvalidConfig, c.SamplesPerPixel)
	case c.RowsPerBand <= 0:
		return fmt.Errorf("%w: rows per band %d must be positive", ErrInvalidConfig, c.RowsPerBand)
	case c.NumWorkers < 0:
		return fmt.Errorf("%w: worker count %d must not be negative", ErrInvalidConfig, c.NumWorkers)
	}
	return nil
}
