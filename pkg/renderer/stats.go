package renderer

import (
	"fmt"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	Width            int
	Height           int
	Bands            int
	Workers          int
	TotalRays        int64
	Duration         time.Duration
	AverageLuminance float64 // Mean linear luminance of the final image
}

// RaysPerSecond returns the tracing throughput, or 0 before any time has elapsed
func (s RenderStats) RaysPerSecond() float64 {
	if s.Duration <= 0 {
		return 0
	}
	return float64(s.TotalRays) / s.Duration.Seconds()
}

// String formats the stats with digit grouping
func (s RenderStats) String() string {
	p := message.NewPrinter(language.English)
	size := fmt.Sprintf("%dx%d", s.Width, s.Height)
	return p.Sprintf("%s image, %d bands on %d workers, %d rays in %v (%.0f rays/s), mean luminance %.4f",
		size, s.Bands, s.Workers, s.TotalRays, s.Duration.Round(time.Millisecond),
		s.RaysPerSecond(), s.AverageLuminance)
}

// AverageLuminance returns the mean luminance of the buffer's linear colors
func AverageLuminance(buffer *PixelBuffer) float64 {
	if len(buffer.Pixels) == 0 {
		return 0
	}

	var total float64
	for _, c := range buffer.Pixels {
		total += c.Luminance()
	}
	return total / float64(len(buffer.Pixels))
}
